// Package diag holds the structured error model for argument parsing and
// formatted scanning. An Error is anchored to one argument of a snapshotted
// argument list and to a byte span within it; rendering produces a
// multi-line, width-bounded message with a caret line pointing at the span.
package diag

import (
	"fmt"
	"strings"
)

// Span is a half-open byte range within one argument's text.
type Span struct {
	Start int
	End   int
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Error is a structured argument error. Fields may be adjusted through the
// chainable With*/span methods while the error propagates upward; each
// adjustment keeps the span valid for the owning argument.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// Args is the snapshot of the argument list at the time of raising.
	Args []string
	// ErrIdx is the index of the erroneous argument in Args.
	ErrIdx int
	// Span is the invalid byte range within Args[ErrIdx].
	Span Span
	// Inline is the short message placed next to the caret run.
	Inline string
	// Long is the more descriptive headline message.
	Long string
	// Hint suggests how to fix the error.
	Hint string
	// Color determines when rendering uses ANSI color.
	Color Mode
	// Announce prefixes the headline with "argument error:"/"error:".
	Announce bool
	// Wrapped holds the underlying error for KindIo.
	Wrapped error
}

// New creates an empty error of the given kind.
func New(kind Kind) *Error {
	return &Error{Kind: kind, Announce: true}
}

// FromMsg creates an error with an inline message spanning the whole of the
// erroneous argument.
func FromMsg(kind Kind, msg, arg string) *Error {
	return &Error{
		Kind:     kind,
		Args:     []string{arg},
		Span:     Span{0, len(arg)},
		Inline:   msg,
		Announce: true,
	}
}

// Parse creates a FailedToParse error with the given inline message.
func Parse(msg, arg string) *Error {
	return FromMsg(KindFailedToParse, msg, arg)
}

// Value creates an InvalidValue error with the given inline message.
func Value(msg, arg string) *Error {
	return FromMsg(KindInvalidValue, msg, arg)
}

// IO wraps an I/O failure.
func IO(err error) *Error {
	return &Error{Kind: KindIo, Announce: true, Wrapped: err}
}

// Error renders the full multi-line diagnostic.
func (e *Error) Error() string {
	return e.render(e.Color.On())
}

// Render renders the diagnostic with color explicitly on or off, ignoring
// the error's own color policy. Rendering is pure: the same record always
// produces the same text.
func (e *Error) Render(color bool) string {
	return e.render(color)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// headline picks the banner message: the long message if present, then the
// inline one, then the kind's default.
func (e *Error) headline() string {
	if e.Long != "" {
		return e.Long
	}
	return e.inline()
}

func (e *Error) inline() string {
	if e.Inline != "" {
		return e.Inline
	}
	if e.Kind == KindIo && e.Wrapped != nil {
		return e.Wrapped.Error()
	}
	return e.Kind.Message()
}

// clampSpan restores the span invariant for the current owning argument:
// 0 <= Start <= End <= len(arg). A violated span is widened to the whole
// argument rather than silently truncated to nonsense.
func (e *Error) clampSpan() {
	if e.ErrIdx < 0 || e.ErrIdx >= len(e.Args) {
		return
	}
	n := len(e.Args[e.ErrIdx])
	if e.Span.Start < 0 || e.Span.End < e.Span.Start || e.Span.End > n {
		e.Span = Span{0, n}
	}
}

// Spanned sets the error span.
func (e *Error) Spanned(start, end int) *Error {
	e.Span = Span{start, end}
	return e
}

// SpanStart moves the start of the span, keeping it before the end.
func (e *Error) SpanStart(start int) *Error {
	e.Span.Start = min(start, e.Span.End)
	return e
}

// ShiftSpan moves the span right by cnt bytes and replaces the owning
// argument text. Used when an inner parse's private substring turns out to
// be a known sub-range of the caller's real argument.
func (e *Error) ShiftSpan(cnt int, newArg string) *Error {
	e.Span.Start += cnt
	e.Span.End += cnt
	e.ensureArg()
	e.Args[e.ErrIdx] = newArg
	e.clampSpan()
	return e
}

// PartOf replaces the owning argument with arg, of which the old argument
// text is a sub-part. The span is shifted by the position of the old text
// within arg; if the old text cannot be found, the span falls back to the
// whole of arg.
func (e *Error) PartOf(arg string) *Error {
	e.ensureArg()
	old := e.Args[e.ErrIdx]
	if idx := strings.Index(arg, old); idx >= 0 && old != arg {
		e.Span.Start += idx
		e.Span.End += idx
	} else if old != arg {
		e.Span = Span{0, len(arg)}
	}
	e.Args[e.ErrIdx] = arg
	e.clampSpan()
	return e
}

// PostfixOf replaces the owning argument with arg, treating the old
// argument text as a suffix of it. The span shifts by the length delta,
// handling both growth and shrink.
func (e *Error) PostfixOf(arg string) *Error {
	e.ensureArg()
	d := len(arg) - len(e.Args[e.ErrIdx])
	e.Span.Start += d
	e.Span.End += d
	e.Args[e.ErrIdx] = arg
	e.clampSpan()
	return e
}

// AddArgs replaces the snapshot with the full argument list, pointing the
// error at index idx. If the old owning text is a substring of args[idx],
// the span is shifted to keep addressing the same bytes.
func (e *Error) AddArgs(args []string, idx int) *Error {
	if idx < 0 || idx >= len(args) {
		return e
	}
	e.ensureArg()
	old := e.Args[e.ErrIdx]
	if len(old) != len(args[idx]) {
		if shift := strings.Index(args[idx], old); shift >= 0 {
			e.Span.Start += shift
			e.Span.End += shift
		}
	}
	e.Args = args
	e.ErrIdx = idx
	e.clampSpan()
	return e
}

// WithInline sets the short message inlined with the caret run.
func (e *Error) WithInline(format string, a ...any) *Error {
	e.Inline = fmt.Sprintf(format, a...)
	return e
}

// WithLong sets the headline message.
func (e *Error) WithLong(format string, a ...any) *Error {
	e.Long = fmt.Sprintf(format, a...)
	return e
}

// WithHint sets the fix-it hint.
func (e *Error) WithHint(format string, a ...any) *Error {
	e.Hint = fmt.Sprintf(format, a...)
	return e
}

// WithColor sets the color policy.
func (e *Error) WithColor(mode Mode) *Error {
	e.Color = mode
	return e
}

// NoColor disables color for this error.
func (e *Error) NoColor() *Error {
	return e.WithColor(ModeNever)
}

// WithAnnounce controls the "argument error:" prefix.
func (e *Error) WithAnnounce(on bool) *Error {
	e.Announce = on
	return e
}

// ensureArg guarantees at least one owning argument so that the span
// transforms have something to anchor to.
func (e *Error) ensureArg() {
	if len(e.Args) == 0 {
		e.Args = []string{""}
		e.ErrIdx = 0
	}
	if e.ErrIdx < 0 || e.ErrIdx >= len(e.Args) {
		e.ErrIdx = 0
	}
}
