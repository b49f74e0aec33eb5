package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikiai/wikiai/pkg/errors"
	"github.com/wikiai/wikiai/pkg/logging"
)

// NewImportCommand creates the import command with app dependencies.
func NewImportCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import tools from a JSON export",
		Long: `Import reads a JSON array of tool records and creates each one.
Records that fail validation are reported and skipped; the rest are
committed. Pass - to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			var data []byte
			if args[0] == "-" {
				data, err = io.ReadAll(c.InOrStdin())
				if err != nil {
					return errors.WrapIO("read", "stdin", err)
				}
			} else {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return errors.WrapIO("read", args[0], err)
				}
			}

			report, err := repo.Import(data)
			if err != nil {
				return err
			}
			logging.Ctx(c.Context()).Debug().
				Int("imported", report.Imported).
				Int("failed", len(report.Failures)).
				Msg("Import finished")

			out := c.OutOrStdout()
			fmt.Fprintf(out, "Imported %d tool(s)\n", report.Imported)
			for _, failure := range report.Failures {
				fmt.Fprintf(out, "  skipped %s\n", failure)
			}
			return nil
		},
	}
}
