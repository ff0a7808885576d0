package scan

import (
	"math"

	"fortio.org/safecast"
)

// Fmt is the format attached to one slot of a pattern. The format text is
// parsed lazily on first query and the result is memoized; a Fmt never
// changes after that. A nil *Fmt behaves as the empty format.
//
// Grammar, left to right:
//
//	[trim-char] trim-marker    `<` trims right, `^` both, `>` left;
//	                           a character before the marker overrides the
//	                           default whitespace trim set
//	[min][..[max]]             length bounds in characters; a bare number
//	                           means exactly that many
//	radix letter               `d`, `x` or `o`, case insensitive
//	custom                     whatever remains, passed to the decoder
type Fmt struct {
	text string

	parsed   bool
	err      error
	trim     TrimSide
	trimChar rune
	minLen   int
	maxLen   int
	radix    int
	custom   string
}

// NewFmt creates a format from its textual form.
func NewFmt(text string) *Fmt {
	return &Fmt{text: text}
}

// TrimSide returns which sides of the field are trimmed.
func (f *Fmt) TrimSide() TrimSide {
	if f == nil {
		return TrimNone
	}
	f.parse()
	return f.trim
}

// trims reports whether c belongs to the trim set of the format.
func (f *Fmt) trims(c rune) bool {
	if f == nil {
		return asciiSpace(c)
	}
	f.parse()
	if f.trimChar != 0 {
		return c == f.trimChar
	}
	return asciiSpace(c)
}

// MinLen returns the minimum field length in characters, 0 when unbounded.
func (f *Fmt) MinLen() int {
	if f == nil {
		return 0
	}
	f.parse()
	return f.minLen
}

// MaxLen returns the maximum field length in characters, or a very large
// value when unbounded.
func (f *Fmt) MaxLen() int {
	if f == nil || !f.parseOK() {
		return math.MaxInt
	}
	if f.maxLen < 0 {
		return math.MaxInt
	}
	return f.maxLen
}

// Radix returns the numeric base of the format, or 0 when unspecified.
func (f *Fmt) Radix() int {
	if f == nil {
		return 0
	}
	f.parse()
	return f.radix
}

// Custom returns the residual format text for decoder specific options.
func (f *Fmt) Custom() string {
	if f == nil {
		return ""
	}
	f.parse()
	return f.custom
}

// Err returns the error of the memoized parse, if the format text was
// malformed.
func (f *Fmt) Err() error {
	if f == nil {
		return nil
	}
	f.parse()
	return f.err
}

func (f *Fmt) parseOK() bool {
	f.parse()
	return f.err == nil
}

func (f *Fmt) parse() {
	if f.parsed {
		return
	}
	f.parsed = true
	f.maxLen = -1

	r := FromString(f.text)

	c1, ok, err := r.Peek()
	if err != nil {
		f.err = err
		return
	}
	if ok {
		// a marker in the second position wins, so `^^` is trim-both
		// with `^` as the trim character, not a bare marker
		_, _, _ = r.Next()
		c2, ok2, err := r.Peek()
		if err != nil {
			f.err = err
			return
		}
		if t, isMarker := trimSideFrom(c2); ok2 && isMarker {
			f.trim = t
			f.trimChar = c1
			_, _, _ = r.Next()
		} else if t, isMarker := trimSideFrom(c1); isMarker {
			f.trim = t
		} else {
			r.Unnext(c1)
		}
	}

	if f.err = f.parseRange(r); f.err != nil {
		return
	}

	c, ok, err := r.Peek()
	if err != nil {
		f.err = err
		return
	}
	if ok {
		switch c {
		case 'd', 'D':
			f.radix = 10
		case 'x', 'X':
			f.radix = 16
		case 'o', 'O':
			f.radix = 8
		}
		if f.radix != 0 {
			_, _, _ = r.Next()
		}
	}

	rest, err := r.ReadAll(nil)
	if err != nil {
		f.err = err
		return
	}
	f.custom = string(rest)
}

// parseRange consumes `min`, `min..`, `min..max`, `..max` or `..`; numbers
// are read with the integer decoder.
func (f *Fmt) parseRange(r *Reader) error {
	first, hasFirst, err := f.readLen(r)
	if err != nil {
		return err
	}

	dots, err := r.IsNext('.')
	if err != nil {
		return err
	}
	if dots {
		// only a full `..` is a range separator; a lone dot belongs to
		// the custom text
		second, err := r.IsNext('.')
		if err != nil {
			return err
		}
		if !second {
			r.Unnext('.')
			dots = false
		}
	}
	if !dots {
		if hasFirst {
			f.minLen = first
			f.maxLen = first
		}
		return nil
	}

	if hasFirst {
		f.minLen = first
	}
	second, hasSecond, err := f.readLen(r)
	if err != nil {
		return err
	}
	if hasSecond {
		f.maxLen = second
	}
	return nil
}

func (f *Fmt) readLen(r *Reader) (int, bool, error) {
	c, ok, err := r.Peek()
	if err != nil {
		return 0, false, err
	}
	if !ok || c < '0' || c > '9' {
		return 0, false, nil
	}
	v, _, err := ReadInt[uint64](r, nil)
	if err != nil {
		return 0, false, err
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, false, r.ErrValue("Length `%d` is too large.", v)
	}
	return n, true, nil
}
