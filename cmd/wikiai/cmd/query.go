package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wikiai/wikiai/pkg/catalog"
	"github.com/wikiai/wikiai/pkg/errors"
)

// NewQueryCommand creates the query command with app dependencies.
func NewQueryCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search and filter the catalog",
		Example: `  wikiai query --search chat
  wikiai query --pricing free --category LLM
  wikiai query --sort name`,
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			flags := c.Flags()
			search, _ := flags.GetString("search")
			pricing, _ := flags.GetString("pricing")
			category, _ := flags.GetString("category")
			sortBy, _ := flags.GetString("sort")

			if pricing != "" && !catalog.Pricing(pricing).Valid() {
				return &errors.ValidationError{
					Entity: "query",
					Violations: []errors.FieldViolation{
						{Field: "pricing", Message: fmt.Sprintf("unknown pricing tier %q", pricing)},
					},
				}
			}
			mode := catalog.SortMode(sortBy)
			if !mode.Valid() {
				return &errors.ValidationError{
					Entity: "query",
					Violations: []errors.FieldViolation{
						{Field: "sort", Message: fmt.Sprintf("unknown sort mode %q", sortBy)},
					},
				}
			}

			results := catalog.Query(repo.List(), catalog.QueryParams{
				Search:   search,
				Pricing:  catalog.Pricing(pricing),
				Category: category,
				Sort:     mode,
			})

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME\tPRICING\tTRENDING\tCATEGORIES")
			for _, tool := range results {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					tool.Slug, tool.Name, tool.Pricing, tool.Trending,
					strings.Join(tool.Categories, ", "))
			}
			return w.Flush()
		},
	}

	flags := cmd.Flags()
	flags.String("search", "", "substring to match against names, descriptions, tags, and categories")
	flags.String("pricing", "", "exact pricing tier (free|limited|unlimited)")
	flags.String("category", "", "category the tool must belong to")
	flags.String("sort", catalog.SortTrending.String(), "result order (trending|newest|name)")

	return cmd
}
