package diag

import (
	"strings"
	"testing"
)

func TestRenderSingleArg(t *testing.T) {
	e := Parse("Invalid digit `x`.", "12x4").Spanned(2, 3)
	want := "argument error: Invalid digit `x`.\n" +
		"--> arg0:2..3\n" +
		" |\n" +
		" $ 12x4\n" +
		" |   ^ Invalid digit `x`.\n"
	if got := e.Render(false); got != want {
		t.Errorf("render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderMultiArgCaretAlignment(t *testing.T) {
	e := Parse("Invalid value.", "abc").
		AddArgs([]string{"-n", "abc", "-v"}, 1)
	want := "argument error: Invalid value.\n" +
		"--> arg1:0..3\n" +
		" |\n" +
		" $ -n abc -v\n" +
		" |    ^^^ Invalid value.\n"
	if got := e.Render(false); got != want {
		t.Errorf("render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderHint(t *testing.T) {
	e := Parse("bad", "x").WithHint("Try `%s` instead.", "y")
	got := e.Render(false)
	if !strings.HasSuffix(got, "hint: Try `y` instead.\n") {
		t.Errorf("render =\n%s", got)
	}
}

func TestRenderLongHeadlineInlineCaret(t *testing.T) {
	e := Parse("inline part", "ab").
		WithLong("Headline part.").
		Spanned(0, 2)
	got := e.Render(false)
	if !strings.HasPrefix(got, "argument error: Headline part.\n") {
		t.Errorf("render =\n%s", got)
	}
	if !strings.Contains(got, "^^ inline part\n") {
		t.Errorf("render =\n%s", got)
	}
}

func TestRenderNoArgs(t *testing.T) {
	e := New(KindNoMoreArguments).WithHint("Pass a value.")
	want := "error: No more arguments.\nhint: Pass a value.\n"
	if got := e.Render(false); got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRenderNoAnnounce(t *testing.T) {
	e := Parse("bad", "x").WithAnnounce(false)
	if got := e.Render(false); strings.Contains(got, "argument error:") {
		t.Errorf("render =\n%s", got)
	}
}

func TestRenderEmptySpanGetsOneCaret(t *testing.T) {
	e := Parse("Expected more arguments.", "-p").Spanned(2, 2)
	want := "argument error: Expected more arguments.\n" +
		"--> arg0:2..2\n" +
		" |\n" +
		" $ -p\n" +
		" |   ^ Expected more arguments.\n"
	if got := e.Render(false); got != want {
		t.Errorf("render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderWindowTruncation(t *testing.T) {
	long := strings.Repeat("a", 100)

	e := Parse("bad", "bad").AddArgs([]string{long, "bad"}, 1)
	got := e.Render(false)
	if !strings.Contains(got, " $ ... bad\n") {
		t.Errorf("left truncation missing:\n%s", got)
	}
	if !strings.Contains(got, " |     ^^^ bad\n") {
		t.Errorf("caret after left marker wrong:\n%s", got)
	}

	e = Parse("bad", "bad").AddArgs([]string{"bad", long}, 0)
	got = e.Render(false)
	if !strings.Contains(got, " $ bad ...\n") {
		t.Errorf("right truncation missing:\n%s", got)
	}
}

func TestRenderWindowKeepsCloseNeighbors(t *testing.T) {
	args := []string{"prog", "--mode", "fast", "--level", "9z", "--out", "x.bin"}
	e := Parse("Invalid digit `z`.", "9z").AddArgs(args, 4).Spanned(1, 2)
	got := e.Render(false)
	if !strings.Contains(got, "prog --mode fast --level 9z --out x.bin") {
		t.Errorf("window dropped arguments that fit:\n%s", got)
	}
	if !strings.Contains(got, "--> arg4:1..2\n") {
		t.Errorf("location line wrong:\n%s", got)
	}
}

func TestRenderSpanClampedToArg(t *testing.T) {
	e := Parse("bad", "ab")
	e.Span = Span{1, 9}
	got := e.Render(false)
	if !strings.Contains(got, " |  ^ bad\n") {
		t.Errorf("render =\n%s", got)
	}
}

func TestRenderNegativeSpanStart(t *testing.T) {
	// the exported field can be assigned without going through the
	// clamping transforms
	e := Parse("bad", "ab")
	e.Span = Span{-3, -1}
	got := e.Render(false)
	if !strings.Contains(got, " | ^ bad\n") {
		t.Errorf("render =\n%s", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	e := Parse("bad", "12x4").Spanned(2, 3).WithHint("fix it")
	first := e.Render(false)
	second := e.Render(false)
	if first != second {
		t.Errorf("render changed between calls:\n%s\n%s", first, second)
	}
}

func TestRenderColor(t *testing.T) {
	e := Parse("bad", "12x4").Spanned(2, 3)
	plain := e.Render(false)
	colored := e.Render(true)
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("plain render has escapes:\n%q", plain)
	}
	if !strings.Contains(colored, "\x1b[31m") {
		t.Errorf("colored render has no red escape:\n%q", colored)
	}
	strip := func(s string) string {
		for {
			i := strings.Index(s, "\x1b[")
			if i < 0 {
				return s
			}
			j := strings.IndexByte(s[i:], 'm')
			if j < 0 {
				return s
			}
			s = s[:i] + s[i+j+1:]
		}
	}
	if strip(colored) != plain {
		t.Errorf("color changed layout:\n%q\n%q", strip(colored), plain)
	}
}

func TestRenderErrorUsesColorPolicy(t *testing.T) {
	e := Parse("bad", "x").WithColor(ModeAlways)
	if !strings.Contains(e.Error(), "\x1b[") {
		t.Errorf("ModeAlways produced no escapes")
	}
	e = Parse("bad", "x").NoColor()
	if strings.Contains(e.Error(), "\x1b[") {
		t.Errorf("ModeNever produced escapes")
	}
}

func TestArgWindow(t *testing.T) {
	args := []string{"aa", "bb", "cc"}
	start, end, leftCut, rightCut := argWindow(args, 1)
	if start != 0 || end != 2 || leftCut || rightCut {
		t.Errorf("window = %d..%d, cuts %v %v", start, end, leftCut, rightCut)
	}

	long := strings.Repeat("x", 200)
	start, end, leftCut, rightCut = argWindow([]string{long, "mid", long}, 1)
	if start != 1 || end != 1 || !leftCut || !rightCut {
		t.Errorf("window = %d..%d, cuts %v %v", start, end, leftCut, rightCut)
	}
}
