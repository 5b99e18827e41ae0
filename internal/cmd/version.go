package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pickline %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", GitCommit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", BuildDate)
	},
}
