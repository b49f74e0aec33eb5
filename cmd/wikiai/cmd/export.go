package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikiai/wikiai/pkg/errors"
)

// NewExportCommand creates the export command with app dependencies.
func NewExportCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as JSON",
		Example: `  wikiai export
  wikiai export --output tools.json`,
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			data, err := repo.Export()
			if err != nil {
				return err
			}

			output, _ := c.Flags().GetString("output")
			if output == "" {
				fmt.Fprintln(c.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return errors.WrapIO("write", output, err)
			}
			fmt.Fprintf(c.OutOrStdout(), "Exported catalog to %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "file to write instead of stdout")
	return cmd
}
