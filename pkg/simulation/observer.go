package simulation

import (
	"fmt"
	"io"
	"os"
)

// Observer receives race progress events. Calls happen synchronously and in
// lap order during Race.Run.
type Observer interface {
	LapCompleted(lap int, minutes float64)
	RaceCompleted(totalMinutes float64)
}

// ConsoleObserver writes progress lines to an io.Writer.
type ConsoleObserver struct {
	w io.Writer
}

func NewConsoleObserver(w io.Writer) *ConsoleObserver {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleObserver{w: w}
}

func (o *ConsoleObserver) LapCompleted(lap int, minutes float64) {
	fmt.Fprintf(o.w, "Lap %d: %.2f minutes\n", lap, minutes)
}

func (o *ConsoleObserver) RaceCompleted(totalMinutes float64) {
	fmt.Fprintf(o.w, "Total race time: %.2f minutes\n", totalMinutes)
}

// NopObserver discards all events. Used when no observer is configured.
type NopObserver struct{}

func (NopObserver) LapCompleted(lap int, minutes float64) {}
func (NopObserver) RaceCompleted(totalMinutes float64)    {}
