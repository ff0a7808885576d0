package diag

import (
	"os"

	"golang.org/x/term"
)

// Mode determines when rendered diagnostics use ANSI color.
type Mode uint8

const (
	// ModeNever disables color. This is the zero value so that plain
	// `diag.Error` values render deterministically.
	ModeNever Mode = iota
	// ModeAlways enables color unconditionally.
	ModeAlways
	// ModeAutoStderr enables color when stderr is a terminal.
	ModeAutoStderr
	// ModeAutoStdout enables color when stdout is a terminal.
	ModeAutoStdout
)

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	case ModeAutoStderr:
		return "auto-stderr"
	case ModeAutoStdout:
		return "auto-stdout"
	}
	return "never"
}

// On resolves the policy against the current process streams.
func (m Mode) On() bool {
	switch m {
	case ModeAlways:
		return true
	case ModeAutoStderr:
		return isTerminal(os.Stderr)
	case ModeAutoStdout:
		return isTerminal(os.Stdout)
	}
	return false
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
