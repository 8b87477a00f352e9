package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd prints the binstrap build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("binstrap %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
