package argscan

import (
	"fmt"
	"strings"

	"argscan/diag"
	"argscan/scan"
)

// Pattern is a compiled scanning pattern: an instruction sequence that can
// be run against any reader. Compile once, run many times.
type Pattern struct {
	instrs []scan.Instr
}

// Compile turns a pattern string and a positional target list into a
// Pattern. Text outside braces must match the input exactly; each `{...}`
// binds the next target, with an optional format after `:` (the part
// before `:` is a free-form label). `{{` and `}}` stand for literal
// braces; a stray `}` is an error, as is a slot count that does not match
// the number of targets.
func Compile(pattern string, targets ...any) (*Pattern, error) {
	var instrs []scan.Instr
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() != 0 {
			instrs = append(instrs, scan.Lit(lit.String()))
			lit.Reset()
		}
	}

	used := 0
	rs := []rune(pattern)
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '{':
			if i+1 < len(rs) && rs[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			j := i + 1
			for j < len(rs) && rs[j] != '}' {
				j++
			}
			if j == len(rs) {
				return nil, fmt.Errorf(
					"argscan: unterminated `{` in pattern %q", pattern)
			}
			var f *scan.Fmt
			body := string(rs[i+1 : j])
			if k := strings.IndexByte(body, ':'); k >= 0 {
				f = scan.NewFmt(body[k+1:])
			}
			if used >= len(targets) {
				return nil, fmt.Errorf(
					"argscan: pattern %q has more slots than the %d given targets",
					pattern, len(targets))
			}
			t, ok := TargetFor(targets[used])
			if !ok {
				return nil, fmt.Errorf(
					"argscan: target %d has unsupported type %T",
					used, targets[used])
			}
			flushLit()
			instrs = append(instrs, scan.Slot(t, f))
			used++
			i = j
		case '}':
			if i+1 < len(rs) && rs[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("argscan: stray `}` in pattern %q", pattern)
		default:
			lit.WriteRune(rs[i])
		}
	}
	flushLit()

	if used != len(targets) {
		return nil, fmt.Errorf(
			"argscan: pattern %q has %d slots but %d targets were given",
			pattern, used, len(targets))
	}
	return &Pattern{instrs: instrs}, nil
}

// Run executes the pattern against r in full mode, requiring all input to
// be consumed.
func (p *Pattern) Run(r *scan.Reader) error {
	return scan.Parsef(r, p.instrs...)
}

// RunPart executes the pattern against r, leaving any remaining input for
// the caller together with the last trailing error.
func (p *Pattern) RunPart(r *scan.Reader) (*diag.Error, error) {
	return scan.ParsefPart(r, p.instrs...)
}

// Parsef compiles the pattern and runs it against s in full mode.
func Parsef(s, pattern string, targets ...any) error {
	p, err := Compile(pattern, targets...)
	if err != nil {
		return err
	}
	return p.Run(scan.FromString(s))
}

// ParsefPart compiles the pattern and runs it against r, stopping where
// the pattern ends.
func ParsefPart(r *scan.Reader, pattern string, targets ...any) (*diag.Error, error) {
	p, err := Compile(pattern, targets...)
	if err != nil {
		return nil, err
	}
	return p.RunPart(r)
}
