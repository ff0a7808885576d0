package scan

import (
	"net/netip"
	"strings"
	"testing"

	"argscan/diag"
)

func TestParsefLiteralsAndSlots(t *testing.T) {
	var a, b int
	err := Parsef(FromString("10-20"),
		Slot(IntTarget(&a), nil), Lit("-"), Slot(IntTarget(&b), nil))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a != 10 || b != 20 {
		t.Errorf("a, b = %d, %d", a, b)
	}
}

func TestParsefUnusedInput(t *testing.T) {
	err := Parsef(FromString("abX"), Lit("ab"))
	if err == nil {
		t.Fatalf("leftover accepted")
	}
	if !strings.Contains(err.Error(), "Unused input.") {
		t.Errorf("error = %q", err)
	}
	e, ok := err.(*diag.Error)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if e.Span != (diag.Span{Start: 2, End: 3}) {
		t.Errorf("span = %+v", e.Span)
	}
}

func TestParsefTrailingExplainsLeftover(t *testing.T) {
	var n int
	err := Parsef(FromString("12x"), Slot(IntTarget(&n), nil))
	if err == nil {
		t.Fatalf("leftover accepted")
	}
	// the slot's trailing error names the stopping character instead of
	// the generic leftover message
	if !strings.Contains(err.Error(), "Invalid digit `x`.") {
		t.Errorf("error = %q", err)
	}
}

func TestParsefPartLeavesRest(t *testing.T) {
	r := FromString("12x")
	var n int
	tr, err := ParsefPart(r, Slot(IntTarget(&n), nil))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n != 12 {
		t.Errorf("n = %d", n)
	}
	if tr == nil {
		t.Errorf("missing trailing error")
	}
	if c := mustNext(t, r); c != 'x' {
		t.Errorf("leftover = %q", c)
	}
}

func TestParsefAddrWithPrefix(t *testing.T) {
	var ip netip.Addr
	var prefix uint8
	instrs := []Instr{
		Slot(IPv4Target(&ip), nil), Lit("/"), Slot(IntTarget(&prefix), nil),
	}

	if err := Parsef(FromString("127.5.20.1/24"), instrs...); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ip != netip.AddrFrom4([4]byte{127, 5, 20, 1}) || prefix != 24 {
		t.Errorf("ip, prefix = %v, %d", ip, prefix)
	}

	if err := Parsef(FromString("127.5.20.1/24xyz"), instrs...); err == nil {
		t.Errorf("full mode accepted leftover")
	}

	r := FromString("127.5.20.1/24xyz")
	if _, err := ParsefPart(r, instrs...); err != nil {
		t.Fatalf("partial: %v", err)
	}
	rest, err := r.ReadAll(nil)
	if err != nil {
		t.Fatalf("read rest: %v", err)
	}
	if string(rest) != "xyz" {
		t.Errorf("rest = %q", string(rest))
	}
}

func TestParsefLiteralMismatchAborts(t *testing.T) {
	var n int
	err := Parsef(FromString("1x-2"),
		Slot(IntTarget(&n), nil), Lit("-"), Slot(IntTarget(&n), nil))
	if err == nil {
		t.Fatalf("mismatch accepted")
	}
	if !strings.Contains(err.Error(), "Unexpected character `x`.") {
		t.Errorf("error = %q", err)
	}
	if !strings.Contains(err.Error(), "Expected `-` to form `-`.") {
		t.Errorf("error = %q", err)
	}
}

func TestParsefFullIgnoresTrailingWhenExhausted(t *testing.T) {
	// a trailing error from an inner slot does not fail the pattern when
	// a later literal consumed the stopping character
	var a, b int
	err := Parsef(FromString("1:2"),
		Slot(IntTarget(&a), nil), Lit(":"), Slot(IntTarget(&b), nil))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a != 1 || b != 2 {
		t.Errorf("a, b = %d, %d", a, b)
	}
}

func TestFuncTarget(t *testing.T) {
	var hi, lo int
	pair := FuncTarget(func(r *Reader, f *Fmt) (*diag.Error, error) {
		return ParsefPart(r,
			Lit("("), Slot(IntTarget(&hi), nil), Lit(","),
			Slot(IntTarget(&lo), nil), Lit(")"))
	})
	if err := Parsef(FromString("(3,7)"), Slot(pair, nil)); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if hi != 3 || lo != 7 {
		t.Errorf("hi, lo = %d, %d", hi, lo)
	}
}
