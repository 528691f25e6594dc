package catalog

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rallysim/turbo-rally/pkg/catalog"
	"github.com/rallysim/turbo-rally/pkg/config"
)

func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "lists the available vehicles and tracks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showCatalog(cmd.OutOrStdout())
		},
	}
	return cmd
}

func showCatalog(out io.Writer) error {
	cat := catalog.Default()
	if config.CatalogFile != "" {
		var err error
		if cat, err = catalog.FromFile(config.CatalogFile); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "Vehicles:")
	for i, v := range cat.Vehicles {
		fmt.Fprintf(out, " %d. %s (Speed:%g, Handling:%g, Acc:%g)\n",
			i+1, v.Name, v.Speed, v.Handling, v.Acceleration)
	}
	fmt.Fprintln(out, "Tracks:")
	for i, t := range cat.Tracks {
		fmt.Fprintf(out, " %d. %s - terrain: %s, length: %gkm, obstacles: %d\n",
			i+1, t.Name, t.Terrain, t.LengthKm, len(t.Obstacles))
	}
	return nil
}
