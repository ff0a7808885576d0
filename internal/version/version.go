package version

import "github.com/fatih/color"

// Build metadata for the argscan CLI, overridable at link time through
// -ldflags.
var (
	// Version is the semantic version, with each component styled for
	// terminal output.
	Version = styled("0", color.FgYellow) + "." +
		styled("1", color.FgGreen) + "." +
		styled("0", color.FgBlue) + "-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

func styled(s string, attr color.Attribute) string {
	return color.New(attr, color.Bold).Sprint(s)
}
