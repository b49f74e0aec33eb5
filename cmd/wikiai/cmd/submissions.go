package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wikiai/wikiai/pkg/logging"
)

// NewSubmissionsCommand creates the submissions command with app dependencies.
func NewSubmissionsCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "submissions",
		Aliases: []string{"submission"},
		Short:   "Manage pending tool submissions",
		Example: `  wikiai submissions list
  wikiai submissions submit --name "New Tool" --url https://example.com
  wikiai submissions approve <id>
  wikiai submissions reject <id>`,
		RunE: func(c *cobra.Command, args []string) error {
			return c.Help()
		},
	}

	cmd.AddCommand(newSubmissionsListCommand(app))
	cmd.AddCommand(newSubmissionsSubmitCommand(app))
	cmd.AddCommand(newSubmissionsApproveCommand(app))
	cmd.AddCommand(newSubmissionsRejectCommand(app))

	return cmd
}

func newSubmissionsListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pending submissions in arrival order",
		RunE: func(c *cobra.Command, args []string) error {
			queue, err := app.Queue()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tURL\tSUBMITTED")
			for _, sub := range queue.List() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					sub.ID, sub.Draft.Name, sub.Draft.URL,
					sub.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}
}

func newSubmissionsSubmitCommand(app AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Queue a tool for moderation",
		Long: `Submit checks only that a name and url are present. Full validation
happens when a moderator approves the submission.`,
		RunE: func(c *cobra.Command, args []string) error {
			queue, err := app.Queue()
			if err != nil {
				return err
			}

			sub, err := queue.Submit(draftFromFlags(c))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Submitted %s (%s)\n", sub.Draft.Name, sub.ID)
			return nil
		},
	}
	toolFlags(cmd)
	return cmd
}

func newSubmissionsApproveCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a submission into the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			queue, err := app.Queue()
			if err != nil {
				return err
			}

			tool, err := queue.Approve(args[0])
			if err != nil {
				return err
			}
			logging.Ctx(c.Context()).Debug().
				Str("submission", args[0]).
				Str("slug", tool.Slug).
				Msg("Submission approved")
			fmt.Fprintf(c.OutOrStdout(), "Approved %s (%s)\n", tool.Name, tool.Slug)
			return nil
		},
	}
}

func newSubmissionsRejectCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject and discard a submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			queue, err := app.Queue()
			if err != nil {
				return err
			}

			if err := queue.Reject(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Rejected %s\n", args[0])
			return nil
		},
	}
}
