package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCategoryCommand creates the category command with app dependencies.
func NewCategoryCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "category",
		Aliases: []string{"categories"},
		Short:   "Manage the category taxonomy",
		Example: `  wikiai category list
  wikiai category add "Voice Cloning"
  wikiai category remove "Voice Cloning"`,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List defined categories",
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}
			for _, name := range repo.Categories() {
				fmt.Fprintln(c.OutOrStdout(), name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}
			if err := repo.AddCategory(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Added category %q\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a category",
		Long: `Remove deletes the category from the taxonomy. Tools that reference
it keep the reference; they are not modified or deleted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}
			if err := repo.RemoveCategory(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Removed category %q\n", args[0])
			return nil
		},
	})

	return cmd
}
