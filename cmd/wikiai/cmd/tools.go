package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wikiai/wikiai/pkg/catalog"
)

// NewToolsCommand creates the tools command with app dependencies.
func NewToolsCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Manage catalog tools",
		Example: `  wikiai tools list
  wikiai tools add --name "ChatGPT" --url https://chat.openai.com --category LLM --pricing limited
  wikiai tools edit chatgpt --trending 95
  wikiai tools remove chatgpt`,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}

	cmd.AddCommand(newToolsListCommand(app))
	cmd.AddCommand(newToolsAddCommand(app))
	cmd.AddCommand(newToolsEditCommand(app))
	cmd.AddCommand(newToolsRemoveCommand(app))

	return cmd
}

func newToolsListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tools in insertion order",
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME\tPRICING\tTRENDING\tCATEGORIES")
			for _, tool := range repo.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					tool.Slug, tool.Name, tool.Pricing, tool.Trending,
					strings.Join(tool.Categories, ", "))
			}
			return w.Flush()
		},
	}
}

// toolFlags registers the shared tool field flags on c.
func toolFlags(c *cobra.Command) {
	flags := c.Flags()
	flags.String("name", "", "display name")
	flags.String("slug", "", "URL-safe identifier (derived from name when omitted)")
	flags.String("url", "", "link to the tool")
	flags.String("logo", "", "link to a logo image")
	flags.String("short", "", "one-line summary")
	flags.String("description-en", "", "long description, English")
	flags.String("description-fa", "", "long description, Persian")
	flags.StringSlice("category", nil, "category (repeatable)")
	flags.String("pricing", "", "pricing tier (free|limited|unlimited)")
	flags.StringSlice("tag", nil, "free-form tag (repeatable)")
	flags.StringSlice("feature", nil, "feature bullet (repeatable)")
	flags.StringSlice("lang", nil, "supported language code (repeatable)")
	flags.Int("trending", 0, "trending score")
}

// draftFromFlags builds a tool draft from the flag values on c.
func draftFromFlags(c *cobra.Command) catalog.Tool {
	flags := c.Flags()
	name, _ := flags.GetString("name")
	slug, _ := flags.GetString("slug")
	url, _ := flags.GetString("url")
	logo, _ := flags.GetString("logo")
	short, _ := flags.GetString("short")
	descEN, _ := flags.GetString("description-en")
	descFA, _ := flags.GetString("description-fa")
	categories, _ := flags.GetStringSlice("category")
	pricing, _ := flags.GetString("pricing")
	tags, _ := flags.GetStringSlice("tag")
	features, _ := flags.GetStringSlice("feature")
	langs, _ := flags.GetStringSlice("lang")
	trending, _ := flags.GetInt("trending")

	return catalog.Tool{
		Name:          name,
		Slug:          slug,
		URL:           url,
		Logo:          logo,
		Short:         short,
		DescriptionEN: descEN,
		DescriptionFA: descFA,
		Categories:    categories,
		Pricing:       catalog.Pricing(pricing),
		Tags:          tags,
		Features:      features,
		LangSupport:   langs,
		Trending:      trending,
	}
}

func newToolsAddCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new tool",
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			tool, err := repo.Create(draftFromFlags(c))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Created %s (%s)\n", tool.Name, tool.Slug)
			return nil
		},
	}
	toolFlags(cmd)
	return cmd
}

func newToolsEditCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id-or-slug>",
		Short: "Edit an existing tool",
		Long: `Edit applies only the flags that were set; other fields are left
unchanged. The id and slug of a tool cannot be edited.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			tool, err := resolveTool(repo, args[0])
			if err != nil {
				return err
			}

			updated, err := repo.Update(tool.ID, patchFromFlags(c))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Updated %s (%s)\n", updated.Name, updated.Slug)
			return nil
		},
	}
	toolFlags(cmd)
	return cmd
}

// patchFromFlags builds a patch carrying only the flags set on c.
func patchFromFlags(c *cobra.Command) catalog.ToolPatch {
	flags := c.Flags()
	patch := catalog.ToolPatch{}

	if flags.Changed("name") {
		v, _ := flags.GetString("name")
		patch.Name = &v
	}
	if flags.Changed("url") {
		v, _ := flags.GetString("url")
		patch.URL = &v
	}
	if flags.Changed("logo") {
		v, _ := flags.GetString("logo")
		patch.Logo = &v
	}
	if flags.Changed("short") {
		v, _ := flags.GetString("short")
		patch.Short = &v
	}
	if flags.Changed("description-en") {
		v, _ := flags.GetString("description-en")
		patch.DescriptionEN = &v
	}
	if flags.Changed("description-fa") {
		v, _ := flags.GetString("description-fa")
		patch.DescriptionFA = &v
	}
	if flags.Changed("category") {
		v, _ := flags.GetStringSlice("category")
		patch.Categories = &v
	}
	if flags.Changed("pricing") {
		s, _ := flags.GetString("pricing")
		v := catalog.Pricing(s)
		patch.Pricing = &v
	}
	if flags.Changed("tag") {
		v, _ := flags.GetStringSlice("tag")
		patch.Tags = &v
	}
	if flags.Changed("feature") {
		v, _ := flags.GetStringSlice("feature")
		patch.Features = &v
	}
	if flags.Changed("lang") {
		v, _ := flags.GetStringSlice("lang")
		patch.LangSupport = &v
	}
	if flags.Changed("trending") {
		v, _ := flags.GetInt("trending")
		patch.Trending = &v
	}

	return patch
}

func newToolsRemoveCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id-or-slug>",
		Short: "Delete a tool from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			repo, err := app.Repository()
			if err != nil {
				return err
			}

			tool, err := resolveTool(repo, args[0])
			if err != nil {
				return err
			}
			if err := repo.Delete(tool.ID); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Removed %s\n", tool.Slug)
			return nil
		},
	}
}

// resolveTool finds a tool by slug first, then by id.
func resolveTool(repo *catalog.Repository, ref string) (catalog.Tool, error) {
	if tool, err := repo.ToolBySlug(ref); err == nil {
		return tool, nil
	}
	return repo.Tool(ref)
}
