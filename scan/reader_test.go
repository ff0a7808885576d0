package scan

import (
	"errors"
	"strings"
	"testing"

	"argscan/diag"
)

func mustNext(t *testing.T, r *Reader) rune {
	t.Helper()
	c, ok, err := r.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !ok {
		t.Fatalf("next: unexpected end of input")
	}
	return c
}

func TestReaderPeekNext(t *testing.T) {
	r := FromString("abc")

	for range 2 {
		c, ok, err := r.Peek()
		if err != nil || !ok || c != 'a' {
			t.Fatalf("peek = %q, %v, %v", c, ok, err)
		}
	}
	if r.Pos() != 0 {
		t.Errorf("pos after peek = %d, want 0", r.Pos())
	}

	if c := mustNext(t, r); c != 'a' {
		t.Errorf("next = %q, want a", c)
	}
	if r.Pos() != 1 {
		t.Errorf("pos = %d, want 1", r.Pos())
	}

	if c := mustNext(t, r); c != 'b' {
		t.Errorf("next = %q, want b", c)
	}
	if c := mustNext(t, r); c != 'c' {
		t.Errorf("next = %q, want c", c)
	}
	if _, ok, err := r.Next(); ok || err != nil {
		t.Errorf("next past end = %v, %v", ok, err)
	}
}

func TestReaderPosMultibyte(t *testing.T) {
	r := FromString("héx")
	mustNext(t, r)
	if r.Pos() != 1 {
		t.Errorf("pos = %d, want 1", r.Pos())
	}
	if c := mustNext(t, r); c != 'é' {
		t.Errorf("next = %q, want é", c)
	}
	if r.Pos() != 3 {
		t.Errorf("pos = %d, want 3", r.Pos())
	}
}

func TestReaderUnnext(t *testing.T) {
	r := FromString("ab")
	mustNext(t, r)
	r.Unnext('a')
	if r.Pos() != 0 {
		t.Errorf("pos after unnext = %d, want 0", r.Pos())
	}
	if c := mustNext(t, r); c != 'a' {
		t.Errorf("next = %q, want a", c)
	}
}

func TestReaderPrepend(t *testing.T) {
	r := FromString("c")
	mustNext(t, r)
	r.Prepend("ab")
	var got []rune
	for {
		c, ok, err := r.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, c)
	}
	if string(got) != "ab" {
		t.Errorf("read %q, want ab", string(got))
	}
}

func TestReaderSkipWhile(t *testing.T) {
	r := FromString("   x")
	cnt, err := r.SkipWhile(asciiSpace)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if cnt != 3 {
		t.Errorf("skipped %d, want 3", cnt)
	}
	if c := mustNext(t, r); c != 'x' {
		t.Errorf("next = %q, want x", c)
	}
}

func TestReaderIsNext(t *testing.T) {
	r := FromString("ab")
	if ok, _ := r.IsNext('x'); ok {
		t.Errorf("IsNext(x) consumed a mismatch")
	}
	if ok, _ := r.IsNext('a'); !ok {
		t.Errorf("IsNext(a) = false")
	}
	if c := mustNext(t, r); c != 'b' {
		t.Errorf("next = %q, want b", c)
	}
}

func TestReaderExpect(t *testing.T) {
	if err := FromString("a+b!").Expect("a+b"); err != nil {
		t.Fatalf("expect: %v", err)
	}

	err := FromString("a-b").Expect("a+b")
	if err == nil {
		t.Fatalf("expect on mismatch succeeded")
	}
	if !strings.Contains(err.Error(), "Unexpected character `-`.") {
		t.Errorf("error = %q", err)
	}
	if !strings.Contains(err.Error(), "Expected `+` to form `a+b`.") {
		t.Errorf("error = %q", err)
	}
	e, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if e.Span != (diag.Span{Start: 1, End: 2}) {
		t.Errorf("span = %+v", e.Span)
	}
	if len(e.Args) != 1 || e.Args[0] != "a-b" {
		t.Errorf("args = %v", e.Args)
	}

	err = FromString("a").Expect("ab")
	if err == nil || !strings.Contains(err.Error(), "Unexpected end of string.") {
		t.Errorf("error = %v", err)
	}
}

func TestReaderReadToReadAll(t *testing.T) {
	r := FromString("abcdef")
	buf, err := r.ReadTo(nil, 2)
	if err != nil {
		t.Fatalf("read to: %v", err)
	}
	if string(buf) != "ab" {
		t.Errorf("read to = %q", string(buf))
	}
	buf, err = r.ReadAll(buf)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if string(buf) != "abcdef" {
		t.Errorf("read all = %q", string(buf))
	}
}

func TestReaderSources(t *testing.T) {
	check := func(t *testing.T, r *Reader) {
		t.Helper()
		buf, err := r.ReadAll(nil)
		if err != nil {
			t.Fatalf("read all: %v", err)
		}
		if string(buf) != "héλ!" {
			t.Errorf("read %q, want héλ!", string(buf))
		}
	}

	t.Run("string", func(t *testing.T) { check(t, FromString("héλ!")) })
	t.Run("bytes", func(t *testing.T) { check(t, FromBytes([]byte("héλ!"))) })
	t.Run("stream", func(t *testing.T) {
		check(t, FromReader(strings.NewReader("héλ!")))
	})
	t.Run("runes", func(t *testing.T) {
		check(t, FromRunes(func(yield func(rune) bool) {
			for _, c := range "héλ!" {
				if !yield(c) {
					return
				}
			}
		}))
	})
	t.Run("rune-errs", func(t *testing.T) {
		check(t, FromRuneErrs(func(yield func(rune, error) bool) {
			for _, c := range "héλ!" {
				if !yield(c, nil) {
					return
				}
			}
		}))
	})
}

func TestReaderRuneErrSourceError(t *testing.T) {
	boom := errors.New("boom")
	r := FromRuneErrs(func(yield func(rune, error) bool) {
		if !yield('a', nil) {
			return
		}
		yield(0, boom)
	})
	if c := mustNext(t, r); c != 'a' {
		t.Fatalf("next = %q, want a", c)
	}
	if _, _, err := r.Next(); !errors.Is(err, boom) {
		t.Errorf("next error = %v, want boom", err)
	}
}
