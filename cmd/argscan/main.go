package main

import (
	"os"

	"github.com/spf13/cobra"

	"argscan"
	"argscan/diag"
	"argscan/internal/version"
)

var rootCmd = &cobra.Command{
	Use:          "argscan",
	Short:        "Formatted text scanner with compiler style diagnostics",
	Long:         `argscan runs scanning patterns against input strings and renders failures the way a compiler would, with a caret pointing at the offending span.`,
	SilenceUsage: true,
}

var colorFlag string

var colorModes = argscan.NewVariants(map[string]diag.Mode{
	"auto":   diag.ModeAutoStderr,
	"always": diag.ModeAlways,
	"never":  diag.ModeNever,
})

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "colorize diagnostics (auto|always|never)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// colorMode resolves the --color flag to a diagnostic color policy.
func colorMode() (diag.Mode, error) {
	return colorModes.Parse(colorFlag)
}
