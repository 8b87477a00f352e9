package cmd

import (
	"github.com/spf13/cobra"

	"binstrap/internal/logger"
)

// debug indicates whether debug logging should be enabled.
// It is toggled via the global `--debug` flag.
var debug bool

// Version is the build version stamped by main.
var Version = "dev"

// rootCmd is the base command for the binstrap CLI.
var rootCmd = &cobra.Command{
	Use:   "binstrap",
	Short: "Bootstrap installer for GitHub-released CLI tools",

	// Runtime failures should not dump the flag help.
	SilenceUsage: true,

	// PersistentPreRun runs before any subcommand and initializes the
	// logger from the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute registers global flags and runs the selected subcommand.
// The returned error decides the process exit code in main.
func Execute(version string) error {
	Version = version
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return rootCmd.Execute()
}
