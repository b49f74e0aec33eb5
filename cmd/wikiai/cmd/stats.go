package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wikiai/wikiai/pkg/catalog"
)

// NewStatsCommand creates the stats command with app dependencies.
func NewStatsCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog summary counts",
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			stats := catalog.ComputeStats(repo.List())
			out := c.OutOrStdout()
			fmt.Fprintf(out, "Tools:      %d\n", stats.Total)
			fmt.Fprintf(out, "Categories: %d\n", stats.Categories)
			fmt.Fprintf(out, "Free:       %d\n", stats.Free)
			return nil
		},
	}
}
