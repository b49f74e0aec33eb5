package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wikiai/wikiai/cmd/wikiai/cmd"
	"github.com/wikiai/wikiai/pkg/logging"
)

// Execute builds the root command tree and runs it with the given args.
func (a *App) Execute(args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.Execute()
}

// rootCommand assembles the wikiai command tree.
func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wikiai",
		Short: "Browse and curate a local AI-tool directory",
		Long: `wikiai is a local catalog of AI tools: search, filter, and sort the
directory, curate its taxonomy, and moderate user-submitted entries.
All state persists under the data directory between runs.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", a.version, a.commit, a.date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			// Re-resolve flag-driven settings after cobra parsed flags.
			a.config.Verbose = viper.GetBool("verbose")
			a.config.Quiet = viper.GetBool("quiet")
			a.config.LogLevel = viper.GetString("log_level")
			if dir := viper.GetString("data_dir"); dir != "" {
				a.config.DataDir = dir
			}
			logger := NewLogger(a.config)
			a.logger = &logger

			// Commands read the logger from their context.
			c.SetContext(logging.WithLogger(c.Context(), a.logger))
		},
	}

	flags := root.PersistentFlags()
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.BoolP("quiet", "q", false, "only log warnings and errors")
	flags.String("log-level", "", "explicit log level (trace|debug|info|warn|error|disabled)")
	flags.String("data-dir", "", "directory holding the persisted catalog state")
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("data_dir", flags.Lookup("data-dir"))

	root.AddCommand(cmd.NewToolsCommand(a))
	root.AddCommand(cmd.NewQueryCommand(a))
	root.AddCommand(cmd.NewStatsCommand(a))
	root.AddCommand(cmd.NewCategoryCommand(a))
	root.AddCommand(cmd.NewBrandCommand(a))
	root.AddCommand(cmd.NewSubmissionsCommand(a))
	root.AddCommand(cmd.NewExportCommand(a))
	root.AddCommand(cmd.NewImportCommand(a))

	return root
}
