package argscan_test

import (
	"strings"
	"testing"

	"argscan"
	"argscan/scan"
)

func TestParsefBasic(t *testing.T) {
	var a, b int
	if err := argscan.Parsef("10-20", "{}-{}", &a, &b); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a != 10 || b != 20 {
		t.Errorf("a, b = %d, %d", a, b)
	}
}

func TestParsefSlotFormat(t *testing.T) {
	var n int
	if err := argscan.Parsef("fea", "{num:x}", &n); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n != 0xfea {
		t.Errorf("n = %#x", n)
	}
}

func TestParsefBraceEscapes(t *testing.T) {
	var n int
	if err := argscan.Parsef("{5}", "{{{}}}", &n); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n != 5 {
		t.Errorf("n = %d", n)
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := argscan.Compile("a}b"); err == nil ||
		!strings.Contains(err.Error(), "stray `}`") {
		t.Errorf("stray brace: %v", err)
	}
	if _, err := argscan.Compile("{x"); err == nil ||
		!strings.Contains(err.Error(), "unterminated") {
		t.Errorf("unterminated: %v", err)
	}
	if _, err := argscan.Compile("{}"); err == nil {
		t.Errorf("missing target accepted")
	}
	var a, b int
	if _, err := argscan.Compile("{}", &a, &b); err == nil {
		t.Errorf("extra target accepted")
	}
	type odd struct{}
	if _, err := argscan.Compile("{}", &odd{}); err == nil ||
		!strings.Contains(err.Error(), "unsupported type") {
		t.Errorf("unsupported target: %v", err)
	}
}

func TestPatternReuse(t *testing.T) {
	var n int
	p, err := argscan.Compile("n={}", &n)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	for _, tt := range []struct {
		in   string
		want int
	}{{"n=1", 1}, {"n=2", 2}} {
		if err := p.Run(scan.FromString(tt.in)); err != nil {
			t.Fatalf("run %q: %v", tt.in, err)
		}
		if n != tt.want {
			t.Errorf("n = %d, want %d", n, tt.want)
		}
	}
}

func TestParsefPartStopsEarly(t *testing.T) {
	r := scan.FromString("12;rest")
	var n int
	tr, err := argscan.ParsefPart(r, "{}", &n)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n != 12 || tr == nil {
		t.Errorf("n, trailing = %d, %v", n, tr)
	}
	rest, err := r.ReadAll(nil)
	if err != nil {
		t.Fatalf("read rest: %v", err)
	}
	if string(rest) != ";rest" {
		t.Errorf("rest = %q", string(rest))
	}
}

func TestParsefCustomTarget(t *testing.T) {
	var c rune
	if err := argscan.Parsef("x", "{}", scan.CharTarget(&c)); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c != 'x' {
		t.Errorf("c = %q", c)
	}
}
