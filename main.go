package main

import "github.com/rallysim/turbo-rally/cmd"

func main() {
	cmd.Execute()
}
