// Package scan implements formatted scanning of text: a character cursor
// over several kinds of sources, a format mini-language for slots, per-type
// value decoders and a small pattern engine that composes them.
package scan

import (
	"unicode/utf8"

	"argscan/diag"
)

// Reader is a character cursor over a single source. It tracks the byte
// position of the cursor and keeps a small undo stack so that lookahead can
// be pushed back. A Reader exclusively owns its source.
type Reader struct {
	src source
	// undone holds pushed-back characters, top of stack last consumed
	// first.
	undone []rune
	// pos is the number of bytes consumed so far.
	pos int
}

func newReader(src source) *Reader {
	return &Reader{src: src}
}

// Peek returns the next character without consuming it. ok is false at end
// of input. Peeking is repeatable.
func (r *Reader) Peek() (c rune, ok bool, err error) {
	if n := len(r.undone); n != 0 {
		return r.undone[n-1], true, nil
	}
	c, ok, err = r.src.next()
	if err != nil {
		return 0, false, r.mapErrPeek(err)
	}
	if !ok {
		return 0, false, nil
	}
	r.undone = append(r.undone, c)
	return c, true, nil
}

// Next consumes and returns the next character, advancing the position by
// its encoded byte length. ok is false at end of input.
func (r *Reader) Next() (c rune, ok bool, err error) {
	if n := len(r.undone); n != 0 {
		c = r.undone[n-1]
		r.undone = r.undone[:n-1]
		r.pos += utf8.RuneLen(c)
		return c, true, nil
	}
	c, ok, err = r.src.next()
	if err != nil {
		return 0, false, r.mapErrPeek(err)
	}
	if !ok {
		return 0, false, nil
	}
	r.pos += utf8.RuneLen(c)
	return c, true, nil
}

// Unnext pushes c back in front of the cursor, rewinding the position by
// its byte length. The next Peek or Next yields c again.
func (r *Reader) Unnext(c rune) {
	r.undone = append(r.undone, c)
	r.pos -= utf8.RuneLen(c)
}

// Prepend pushes the characters of s back in front of the cursor so that
// they are consumed again in order.
func (r *Reader) Prepend(s string) {
	cs := []rune(s)
	for i := len(cs) - 1; i >= 0; i-- {
		r.Unnext(cs[i])
	}
}

// SkipWhile consumes characters for as long as pred holds and returns how
// many were skipped.
func (r *Reader) SkipWhile(pred func(rune) bool) (int, error) {
	cnt := 0
	for {
		c, ok, err := r.Peek()
		if err != nil {
			return cnt, err
		}
		if !ok || !pred(c) {
			return cnt, nil
		}
		_, _, _ = r.Next()
		cnt++
	}
}

// IsNext consumes the next character if it equals c and reports whether it
// did.
func (r *Reader) IsNext(c rune) (bool, error) {
	n, ok, err := r.Peek()
	if err != nil || !ok || n != c {
		return false, err
	}
	_, _, _ = r.Next()
	return true, nil
}

// Expect consumes exactly the characters of lit. The first mismatch or a
// premature end of input fails, naming the expected character.
func (r *Reader) Expect(lit string) error {
	for _, want := range lit {
		c, ok, err := r.Next()
		if err != nil {
			return err
		}
		if !ok {
			return r.ErrParsePeek("Unexpected end of string.").
				WithInline("Expected `%c` to form `%s`.", want, lit)
		}
		if c != want {
			return r.ErrParse("Unexpected character `%c`.", c).
				WithInline("Expected `%c` to form `%s`.", want, lit)
		}
	}
	return nil
}

// ReadTo appends up to maxChars characters to buf and returns the extended
// buffer.
func (r *Reader) ReadTo(buf []rune, maxChars int) ([]rune, error) {
	for range maxChars {
		c, ok, err := r.Next()
		if err != nil {
			return buf, err
		}
		if !ok {
			return buf, nil
		}
		buf = append(buf, c)
	}
	return buf, nil
}

// ReadAll appends all remaining characters to buf and returns the extended
// buffer.
func (r *Reader) ReadAll(buf []rune) ([]rune, error) {
	for {
		c, ok, err := r.Next()
		if err != nil {
			return buf, err
		}
		if !ok {
			return buf, nil
		}
		buf = append(buf, c)
	}
}

// Pos returns the byte offset just past the last consumed character, or 0
// if nothing has been consumed yet.
func (r *Reader) Pos() int {
	return r.pos
}

// TrimLeft consumes leading trim characters if f trims the left side.
func (r *Reader) TrimLeft(f *Fmt) error {
	if !f.TrimSide().left() {
		return nil
	}
	_, err := r.SkipWhile(f.trims)
	return err
}

// TrimRight consumes trim characters following a field if f trims the
// right side.
func (r *Reader) TrimRight(f *Fmt) error {
	if !f.TrimSide().right() {
		return nil
	}
	_, err := r.SkipWhile(f.trims)
	return err
}

// ErrParse creates a parse error located at the last consumed character.
func (r *Reader) ErrParse(format string, a ...any) *diag.Error {
	return r.mapErr(diag.New(diag.KindFailedToParse).WithLong(format, a...))
}

// ErrParsePeek creates a parse error located at the cursor, in front of the
// next character.
func (r *Reader) ErrParsePeek(format string, a ...any) *diag.Error {
	return r.peekSpan(diag.New(diag.KindFailedToParse).WithLong(format, a...))
}

// ErrValue creates an invalid value error located at the last consumed
// character.
func (r *Reader) ErrValue(format string, a ...any) *diag.Error {
	return r.mapErr(diag.New(diag.KindInvalidValue).WithLong(format, a...))
}

// mapErr anchors e into the source text, if there is one, with the span on
// the byte before the cursor.
func (r *Reader) mapErr(e *diag.Error) *diag.Error {
	text, ok := r.src.fullText()
	if !ok {
		return e
	}
	start := max(r.pos-1, 0)
	return e.ShiftSpan(0, text).Spanned(start, r.pos)
}

// peekSpan anchors e into the source text with an empty span at the cursor.
func (r *Reader) peekSpan(e *diag.Error) *diag.Error {
	text, ok := r.src.fullText()
	if !ok {
		return e
	}
	return e.ShiftSpan(0, text).Spanned(r.pos, r.pos)
}

func (r *Reader) mapErrPeek(err error) error {
	if e, ok := err.(*diag.Error); ok {
		return r.peekSpan(e)
	}
	return err
}

func asciiSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
