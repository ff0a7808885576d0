package scan

import (
	"net/netip"

	"argscan/diag"
)

// Target is a destination a slot decodes into. SetFromRead overwrites the
// destination from the reader under the given format and returns the
// decoder's optional trailing error.
type Target interface {
	SetFromRead(r *Reader, f *Fmt) (*diag.Error, error)
}

// Instr is one step of a pattern: either a literal to consume exactly, or a
// slot decoding into a target.
type Instr struct {
	lit    string
	target Target
	fmt    *Fmt
	isLit  bool
}

// Lit creates a literal instruction.
func Lit(s string) Instr {
	return Instr{lit: s, isLit: true}
}

// Slot creates a slot instruction decoding into t under format f. A nil
// format means the default.
func Slot(t Target, f *Fmt) Instr {
	return Instr{target: t, fmt: f}
}

// Parsef runs the instructions against the reader and requires all input to
// be consumed. A leftover is reported through the last slot's trailing
// error when there is one, since that names the character that actually
// stopped the scan.
func Parsef(r *Reader, instrs ...Instr) error {
	_, err := run(r, instrs, true)
	return err
}

// ParsefPart runs the instructions against the reader and stops there,
// leaving any remaining input for the caller. The last slot's trailing
// error, if any, is returned for the caller to judge.
func ParsefPart(r *Reader, instrs ...Instr) (*diag.Error, error) {
	return run(r, instrs, false)
}

func run(r *Reader, instrs []Instr, full bool) (*diag.Error, error) {
	var pending *diag.Error
	for _, in := range instrs {
		if in.isLit {
			if err := r.Expect(in.lit); err != nil {
				return nil, err
			}
			continue
		}
		tr, err := in.target.SetFromRead(r, in.fmt)
		if err != nil {
			return nil, err
		}
		pending = tr
	}
	if !full {
		return pending, nil
	}

	_, ok, err := r.Peek()
	if err != nil {
		return nil, err
	}
	if ok {
		if pending != nil {
			return nil, pending
		}
		return nil, r.errUnused()
	}
	return nil, nil
}

// errUnused reports input left over after a full pattern run, spanning
// everything from the cursor to the end of the text.
func (r *Reader) errUnused() *diag.Error {
	e := diag.New(diag.KindFailedToParse).WithLong("Unused input.")
	if text, ok := r.src.fullText(); ok {
		e.ShiftSpan(0, text).Spanned(r.pos, len(text))
	}
	return e
}

type intTarget[T Integer] struct{ p *T }

func (t intTarget[T]) SetFromRead(r *Reader, f *Fmt) (*diag.Error, error) {
	v, tr, err := ReadInt[T](r, f)
	if err != nil {
		return nil, err
	}
	*t.p = v
	return tr, nil
}

// IntTarget makes a slot target out of any integer variable.
func IntTarget[T Integer](p *T) Target {
	return intTarget[T]{p}
}

type floatTarget[T Float] struct{ p *T }

func (t floatTarget[T]) SetFromRead(r *Reader, f *Fmt) (*diag.Error, error) {
	v, tr, err := ReadFloat[T](r, f)
	if err != nil {
		return nil, err
	}
	*t.p = v
	return tr, nil
}

// FloatTarget makes a slot target out of a float variable.
func FloatTarget[T Float](p *T) Target {
	return floatTarget[T]{p}
}

type boolTarget struct{ p *bool }

func (t boolTarget) SetFromRead(r *Reader, f *Fmt) (*diag.Error, error) {
	v, tr, err := ReadBool(r, f)
	if err != nil {
		return nil, err
	}
	*t.p = v
	return tr, nil
}

// BoolTarget makes a slot target out of a bool variable.
func BoolTarget(p *bool) Target {
	return boolTarget{p}
}

type charTarget struct{ p *rune }

func (t charTarget) SetFromRead(r *Reader, f *Fmt) (*diag.Error, error) {
	v, tr, err := ReadChar(r, f)
	if err != nil {
		return nil, err
	}
	*t.p = v
	return tr, nil
}

// CharTarget makes a slot target out of a rune variable. It exists apart
// from IntTarget because a rune is an int32 and would otherwise decode as a
// number.
func CharTarget(p *rune) Target {
	return charTarget{p}
}

type stringTarget struct{ p *string }

func (t stringTarget) SetFromRead(r *Reader, f *Fmt) (*diag.Error, error) {
	v, tr, err := ReadString(r, f)
	if err != nil {
		return nil, err
	}
	*t.p = v
	return tr, nil
}

// StringTarget makes a slot target out of a string variable.
func StringTarget(p *string) Target {
	return stringTarget{p}
}

type ipv4Target struct{ p *netip.Addr }

func (t ipv4Target) SetFromRead(r *Reader, f *Fmt) (*diag.Error, error) {
	v, tr, err := ReadIPv4(r, f)
	if err != nil {
		return nil, err
	}
	*t.p = v
	return tr, nil
}

// IPv4Target makes a slot target out of an address variable.
func IPv4Target(p *netip.Addr) Target {
	return ipv4Target{p}
}

type addrPortTarget struct{ p *netip.AddrPort }

func (t addrPortTarget) SetFromRead(r *Reader, f *Fmt) (*diag.Error, error) {
	v, tr, err := ReadAddrPort(r, f)
	if err != nil {
		return nil, err
	}
	*t.p = v
	return tr, nil
}

// AddrPortTarget makes a slot target out of an address and port variable.
func AddrPortTarget(p *netip.AddrPort) Target {
	return addrPortTarget{p}
}

type funcTarget func(r *Reader, f *Fmt) (*diag.Error, error)

func (t funcTarget) SetFromRead(r *Reader, f *Fmt) (*diag.Error, error) {
	return t(r, f)
}

// FuncTarget makes a slot target out of a decode function.
func FuncTarget(fn func(r *Reader, f *Fmt) (*diag.Error, error)) Target {
	return funcTarget(fn)
}
