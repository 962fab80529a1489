package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/navkeep/navkeep/pkg/navkeep"
)

type rootOpts struct {
	logLevel string
	logPath  string
	debug    bool
}

var rootOpt rootOpts

var longRootCmdDescription = `navkeep inspects route tables and replays navigation sequences
through the view retention policy, showing which views are kept alive,
reattached or rebuilt at every step.
`

// NewRootCmd builds the navkeep command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "navkeep",
		Short:         "Inspect view retention decisions for a route table",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			navkeep.Init(navkeep.Options{
				LogPath:  rootOpt.logPath,
				LogLevel: rootOpt.logLevel,
				Debug:    rootOpt.debug,
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&rootOpt.logLevel, "log-level", "info", "application log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootOpt.logPath, "log-path", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&rootOpt.debug, "debug", false, "log every reuse decision")

	rootCmd.AddCommand(NewRoutesCmd())
	rootCmd.AddCommand(NewReplayCmd())
	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := NewRootCmd().Execute()
	if err != nil {
		navkeep.GetLogger().Error("navkeep failed", "error", err)
	}
	navkeep.Close()
	if err != nil {
		os.Exit(1)
	}
}
