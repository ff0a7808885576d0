package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"argscan/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the argscan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "argscan", version.Version)
		if version.GitCommit != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "commit:", version.GitCommit)
		}
		if version.BuildDate != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "built: ", version.BuildDate)
		}
	},
}
