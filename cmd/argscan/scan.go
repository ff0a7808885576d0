package main

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"argscan"
	"argscan/diag"
	"argscan/scan"
)

var (
	patternFlag  string
	patternsFile string
	patternName  string
)

func init() {
	scanCmd.Flags().StringVarP(&patternFlag, "pattern", "p", "", "pattern to scan with")
	scanCmd.Flags().StringVar(&patternsFile, "patterns", "", "TOML file with named patterns in a [patterns] table")
	scanCmd.Flags().StringVar(&patternName, "name", "", "pattern to pick from the --patterns file")
}

var scanCmd = &cobra.Command{
	Use:   "scan [inputs...]",
	Short: "Run a scanning pattern against each input",
	Long: `Runs a scanning pattern against each input string. Slots name the type
to decode and may carry a format after a colon:

  argscan scan -p '{ipv4}:{uint}' 127.0.0.1:8080
  argscan scan -p '{int:x}-{int:x}' 1f-ff0

Slot types: int, uint, float, bool, char, str, ipv4, addrport. Matching
inputs print their decoded fields; failures render a diagnostic with a
caret pointing at the offending span.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runScan,
}

type patternFile struct {
	Patterns map[string]string `toml:"patterns"`
}

func runScan(cmd *cobra.Command, args []string) error {
	mode, err := colorMode()
	if err != nil {
		return err
	}

	pattern := patternFlag
	if patternsFile != "" {
		var pf patternFile
		if _, err := toml.DecodeFile(patternsFile, &pf); err != nil {
			return err
		}
		p, ok := pf.Patterns[patternName]
		if !ok {
			return fmt.Errorf("no pattern named %q in %s", patternName, patternsFile)
		}
		pattern = p
	}
	if pattern == "" {
		return errors.New("set --pattern, or --patterns together with --name")
	}

	targets, fields, err := slotTargets(pattern)
	if err != nil {
		return err
	}
	compiled, err := argscan.Compile(pattern, targets...)
	if err != nil {
		return err
	}

	failed := 0
	for _, input := range args {
		if err := compiled.Run(scan.FromString(input)); err != nil {
			failed++
			var de *diag.Error
			if errors.As(err, &de) {
				fmt.Fprint(cmd.ErrOrStderr(), de.Render(mode.On()))
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), input)
		for _, f := range fields {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s = %s\n", f.name, f.value())
		}
	}
	if failed != 0 {
		return fmt.Errorf("%d of %d inputs did not match", failed, len(args))
	}
	return nil
}

// field is one decoded slot of the pattern: its type name and a formatter
// reading the decoded value out of the bound target.
type field struct {
	name  string
	value func() string
}

// slotTargets walks the pattern and builds one typed target per slot,
// keyed by the slot's name.
func slotTargets(pattern string) ([]any, []field, error) {
	var targets []any
	var fields []field
	rs := []rune(pattern)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '{':
			if i+1 < len(rs) && rs[i+1] == '{' {
				i++
				continue
			}
			j := i + 1
			for j < len(rs) && rs[j] != '}' {
				j++
			}
			if j == len(rs) {
				return nil, nil, fmt.Errorf("unterminated `{` in pattern %q", pattern)
			}
			name := string(rs[i+1 : j])
			if k := strings.IndexByte(name, ':'); k >= 0 {
				name = name[:k]
			}
			t, f, err := typedSlot(name)
			if err != nil {
				return nil, nil, err
			}
			targets = append(targets, t)
			fields = append(fields, f)
			i = j
		case '}':
			if i+1 < len(rs) && rs[i+1] == '}' {
				i++
			}
		}
	}
	return targets, fields, nil
}

func typedSlot(name string) (any, field, error) {
	switch name {
	case "int":
		p := new(int64)
		return p, field{name, func() string { return strconv.FormatInt(*p, 10) }}, nil
	case "uint":
		p := new(uint64)
		return p, field{name, func() string { return strconv.FormatUint(*p, 10) }}, nil
	case "float":
		p := new(float64)
		return p, field{name, func() string { return strconv.FormatFloat(*p, 'g', -1, 64) }}, nil
	case "bool":
		p := new(bool)
		return p, field{name, func() string { return strconv.FormatBool(*p) }}, nil
	case "char":
		p := new(rune)
		return scan.CharTarget(p), field{name, func() string { return string(*p) }}, nil
	case "str":
		p := new(string)
		return p, field{name, func() string { return *p }}, nil
	case "ipv4":
		p := new(netip.Addr)
		return p, field{name, func() string { return p.String() }}, nil
	case "addrport":
		p := new(netip.AddrPort)
		return p, field{name, func() string { return p.String() }}, nil
	}
	return nil, field{}, fmt.Errorf(
		"unknown slot type %q (use int, uint, float, bool, char, str, ipv4 or addrport)", name)
}
