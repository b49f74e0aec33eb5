package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewBrandCommand creates the brand command with app dependencies.
func NewBrandCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Manage the site brand",
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the current brand title and tagline",
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}
			brand := repo.Brand()
			fmt.Fprintf(c.OutOrStdout(), "%s\n%s\n", brand.Title, brand.Tagline)
			return nil
		},
	})

	set := &cobra.Command{
		Use:   "set",
		Short: "Update the brand title and tagline",
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			flags := c.Flags()
			title, _ := flags.GetString("title")
			tagline, _ := flags.GetString("tagline")

			current := repo.Brand()
			if !flags.Changed("title") {
				title = current.Title
			}
			if !flags.Changed("tagline") {
				tagline = current.Tagline
			}

			repo.SetBrand(title, tagline)
			fmt.Fprintln(c.OutOrStdout(), "Brand updated")
			return nil
		},
	}
	set.Flags().String("title", "", "brand title")
	set.Flags().String("tagline", "", "brand tagline")
	cmd.AddCommand(set)

	return cmd
}
