package scan

import (
	"bufio"
	"io"
	"iter"
	"unicode/utf8"
)

// source is one of the five character suppliers a Reader can own. A source
// belongs to exactly one Reader for the Reader's whole lifetime.
type source interface {
	// next yields the next character. ok is false at end of input.
	next() (c rune, ok bool, err error)
	// fullText returns the complete backing text for sources that have
	// one. Errors raised over such sources get their span anchored into
	// this text.
	fullText() (string, bool)
}

// textSource supplies characters from a string, which Go guarantees to be
// immutable (the "borrowed text" case).
type textSource struct {
	text string
	off  int
}

func (s *textSource) next() (rune, bool, error) {
	if s.off >= len(s.text) {
		return 0, false, nil
	}
	c, size := utf8.DecodeRuneInString(s.text[s.off:])
	s.off += size
	return c, true, nil
}

func (s *textSource) fullText() (string, bool) {
	return s.text, true
}

// bytesSource supplies characters from an owned byte buffer, validating the
// encoding with the same byte-level decoder as the stream source.
type bytesSource struct {
	buf []byte
	off int
}

func (s *bytesSource) next() (rune, bool, error) {
	return decodeUTF8(func() (byte, error) {
		if s.off >= len(s.buf) {
			return 0, io.EOF
		}
		b := s.buf[s.off]
		s.off++
		return b, nil
	})
}

func (s *bytesSource) fullText() (string, bool) {
	return string(s.buf), true
}

// streamSource decodes characters from a byte stream. Reads block like any
// synchronous I/O read.
type streamSource struct {
	br *bufio.Reader
}

func (s *streamSource) next() (rune, bool, error) {
	return decodeUTF8(s.br.ReadByte)
}

func (s *streamSource) fullText() (string, bool) {
	return "", false
}

// runeSource supplies characters from a pulled rune sequence.
type runeSource struct {
	pull func() (rune, bool)
	stop func()
	done bool
}

func (s *runeSource) next() (rune, bool, error) {
	if s.done {
		return 0, false, nil
	}
	c, ok := s.pull()
	if !ok {
		s.done = true
		s.stop()
		return 0, false, nil
	}
	return c, true, nil
}

func (s *runeSource) fullText() (string, bool) {
	return "", false
}

// runeErrSource supplies characters from a fallible rune sequence.
type runeErrSource struct {
	pull func() (rune, error, bool)
	stop func()
	done bool
}

func (s *runeErrSource) next() (rune, bool, error) {
	if s.done {
		return 0, false, nil
	}
	c, err, ok := s.pull()
	if !ok {
		s.done = true
		s.stop()
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return c, true, nil
}

func (s *runeErrSource) fullText() (string, bool) {
	return "", false
}

// FromString creates a Reader over a text buffer.
func FromString(s string) *Reader {
	return newReader(&textSource{text: s})
}

// FromBytes creates a Reader over a byte buffer. The buffer is validated as
// UTF-8 while it is consumed; it must not be mutated while the Reader is
// alive.
func FromBytes(b []byte) *Reader {
	return newReader(&bytesSource{buf: b})
}

// FromReader creates a Reader over a byte stream.
func FromReader(r io.Reader) *Reader {
	return newReader(&streamSource{br: bufio.NewReader(r)})
}

// FromRunes creates a Reader over a character sequence.
func FromRunes(seq iter.Seq[rune]) *Reader {
	pull, stop := iter.Pull(seq)
	return newReader(&runeSource{pull: pull, stop: stop})
}

// FromRuneErrs creates a Reader over a fallible character sequence.
func FromRuneErrs(seq iter.Seq2[rune, error]) *Reader {
	pull, stop := iter.Pull2(seq)
	return newReader(&runeErrSource{pull: pull, stop: stop})
}
