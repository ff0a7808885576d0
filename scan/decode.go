package scan

import (
	"errors"
	"net/netip"
	"strconv"
	"strings"

	"argscan/diag"
)

// Integer is the constraint of the integer decoder.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the constraint of the float decoder.
type Float interface {
	~float32 | ~float64
}

// Decoders share one contract: decode a value from the reader under the
// given format and return the value, an optional non-fatal trailing error
// and an optional fatal error. A trailing error describes a character that
// stopped the decode without being consumed; callers that match further
// input may recover from it, callers that require exhaustion surface it.

// ReadInt decodes an integer. The radix and the maximum number of digits
// come from the format; accumulation is overflow checked per digit against
// the limits of T.
func ReadInt[T Integer](r *Reader, f *Fmt) (T, *diag.Error, error) {
	if err := f.Err(); err != nil {
		return 0, nil, err
	}
	if err := r.TrimLeft(f); err != nil {
		return 0, nil, err
	}
	startPos := r.Pos()

	neg := false
	if isSigned[T]() {
		var err error
		if neg, err = r.IsNext('-'); err != nil {
			return 0, nil, err
		}
	}

	radix := f.Radix()
	if radix == 0 {
		radix = 10
	}
	limit := magLimit[T](neg)
	budget := f.MaxLen()

	var mag uint64
	var cnt int
	var trailing *diag.Error
	for cnt < budget {
		c, ok, err := r.Peek()
		if err != nil {
			return 0, nil, err
		}
		if !ok {
			break
		}
		d, isDigit := digitVal(c, radix)
		if !isDigit {
			if cnt != 0 {
				trailing = r.ErrParsePeek("Invalid digit `%c`.", c)
			}
			break
		}
		if mag > (limit-d)/uint64(radix) {
			lo, hi := rangeOf[T]()
			return 0, nil, r.ErrValue("Number doesn't fit the target type.").
				SpanStart(startPos).
				WithHint("Value must be in range from `%s` to `%s`.", lo, hi)
		}
		mag = mag*uint64(radix) + d
		_, _, _ = r.Next()
		cnt++
	}
	if cnt == 0 {
		return 0, nil, r.ErrParsePeek("Expected at least one digit.")
	}

	if neg {
		return -T(mag), trailing, nil
	}
	return T(mag), trailing, nil
}

// ReadFloat decodes a floating point number: optional sign, digits, an
// optional fractional part and an optional e/E exponent read with the
// integer decoder. The digits are kept as text and converted in one
// correctly rounded step; the sign is applied last.
func ReadFloat[T Float](r *Reader, f *Fmt) (T, *diag.Error, error) {
	if err := f.Err(); err != nil {
		return 0, nil, err
	}
	if err := r.TrimLeft(f); err != nil {
		return 0, nil, err
	}

	neg, err := r.IsNext('-')
	if err != nil {
		return 0, nil, err
	}
	if !neg {
		if _, err := r.IsNext('+'); err != nil {
			return 0, nil, err
		}
	}

	var num strings.Builder
	zeros, err := r.SkipWhile(func(c rune) bool { return c == '0' })
	if err != nil {
		return 0, nil, err
	}
	intDigits, err := readDigits(r, &num)
	if err != nil {
		return 0, nil, err
	}
	if intDigits == 0 && zeros > 0 {
		num.WriteByte('0')
	}

	dot, err := r.IsNext('.')
	if err != nil {
		return 0, nil, err
	}
	fracDigits := 0
	if dot {
		num.WriteByte('.')
		if fracDigits, err = readDigits(r, &num); err != nil {
			return 0, nil, err
		}
	}
	if intDigits+fracDigits == 0 && zeros == 0 {
		return 0, nil, r.ErrParsePeek("Expected at least one digit.")
	}

	var trailing *diag.Error
	c, ok, err := r.Peek()
	if err != nil {
		return 0, nil, err
	}
	if ok && (c == 'e' || c == 'E') {
		_, _, _ = r.Next()
		exp, tr, err := ReadInt[int64](r, nil)
		if err != nil {
			return 0, nil, err
		}
		trailing = tr
		num.WriteByte('e')
		num.WriteString(strconv.FormatInt(exp, 10))
	} else if ok {
		trailing = r.ErrParsePeek("Invalid digit `%c`.", c)
	}

	v, perr := strconv.ParseFloat(num.String(), floatBits[T]())
	if perr != nil && !errors.Is(perr, strconv.ErrRange) {
		return 0, nil, r.ErrValue("Invalid number `%s`.", num.String())
	}
	if neg {
		v = -v
	}
	return T(v), trailing, nil
}

// ReadBool decodes `true` or `false`. The first character commits to one of
// the two literals.
func ReadBool(r *Reader, f *Fmt) (bool, *diag.Error, error) {
	if err := f.Err(); err != nil {
		return false, nil, err
	}
	if err := r.TrimLeft(f); err != nil {
		return false, nil, err
	}
	c, ok, err := r.Peek()
	if err != nil {
		return false, nil, err
	}
	if ok {
		switch c {
		case 't':
			_, _, _ = r.Next()
			return true, nil, r.Expect("rue")
		case 'f':
			_, _, _ = r.Next()
			return false, nil, r.Expect("alse")
		}
	}
	return false, nil, r.ErrParsePeek("Expected `true` or `false`.")
}

// ReadChar decodes exactly one character.
func ReadChar(r *Reader, f *Fmt) (rune, *diag.Error, error) {
	if err := f.Err(); err != nil {
		return 0, nil, err
	}
	if err := r.TrimLeft(f); err != nil {
		return 0, nil, err
	}
	c, ok, err := r.Next()
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, r.ErrParsePeek("Unexpected end of string.")
	}
	return c, nil, nil
}

// ReadString decodes a bounded string. At least the minimum number of
// characters is read unconditionally; right trimming applies only to the
// part beyond the minimum. Trim characters directly following the field are
// consumed as well.
func ReadString(r *Reader, f *Fmt) (string, *diag.Error, error) {
	if err := f.Err(); err != nil {
		return "", nil, err
	}
	if err := r.TrimLeft(f); err != nil {
		return "", nil, err
	}
	minLen := f.MinLen()
	maxLen := f.MaxLen()

	buf, err := r.ReadTo(nil, minLen)
	if err != nil {
		return "", nil, err
	}
	if len(buf) < minLen {
		return "", nil, r.ErrParsePeek(
			"Expected at least `%d` characters but there were only `%d` characters.",
			minLen, len(buf),
		)
	}
	if buf, err = r.ReadTo(buf, maxLen-minLen); err != nil {
		return "", nil, err
	}

	if f.TrimSide().right() {
		for len(buf) > minLen && f.trims(buf[len(buf)-1]) {
			buf = buf[:len(buf)-1]
		}
	}
	if err := r.TrimRight(f); err != nil {
		return "", nil, err
	}

	var trailing *diag.Error
	if c, ok, err := r.Peek(); err != nil {
		return "", nil, err
	} else if ok {
		trailing = r.ErrParsePeek(
			"String is too long. Expected at most `%d` characters.", maxLen,
		).WithInline("Unexpected character `%c`.", c)
	}
	return string(buf), trailing, nil
}

// ReadIPv4 decodes a dotted quad address by running its own pattern of four
// integer slots separated by `.` literals.
func ReadIPv4(r *Reader, f *Fmt) (netip.Addr, *diag.Error, error) {
	if err := f.Err(); err != nil {
		return netip.Addr{}, nil, err
	}
	var o [4]uint8
	tr, err := run(r, []Instr{
		Slot(IntTarget(&o[0]), nil), Lit("."),
		Slot(IntTarget(&o[1]), nil), Lit("."),
		Slot(IntTarget(&o[2]), nil), Lit("."),
		Slot(IntTarget(&o[3]), nil),
	}, false)
	if err != nil {
		return netip.Addr{}, nil, err
	}
	return netip.AddrFrom4(o), tr, nil
}

// ReadAddrPort decodes `a.b.c.d:port`, recursing through the address
// decoder for the host part.
func ReadAddrPort(r *Reader, f *Fmt) (netip.AddrPort, *diag.Error, error) {
	if err := f.Err(); err != nil {
		return netip.AddrPort{}, nil, err
	}
	var addr netip.Addr
	var port uint16
	tr, err := run(r, []Instr{
		Slot(IPv4Target(&addr), nil), Lit(":"),
		Slot(IntTarget(&port), nil),
	}, false)
	if err != nil {
		return netip.AddrPort{}, nil, err
	}
	return netip.AddrPortFrom(addr, port), tr, nil
}

func readDigits(r *Reader, b *strings.Builder) (int, error) {
	return r.SkipWhile(func(c rune) bool {
		if c < '0' || c > '9' {
			return false
		}
		b.WriteRune(c)
		return true
	})
}

func digitVal(c rune, radix int) (uint64, bool) {
	var d uint64
	switch {
	case c >= '0' && c <= '9':
		d = uint64(c - '0')
	case c >= 'a' && c <= 'z':
		d = uint64(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	if d >= uint64(radix) {
		return 0, false
	}
	return d, true
}

func isSigned[T Integer]() bool {
	var z T
	return ^z < z
}

// magLimit returns the largest magnitude T can hold, as an unsigned value.
// For signed types the negative side holds one more than the positive one.
func magLimit[T Integer](neg bool) uint64 {
	var z T
	if ^z > z {
		return uint64(^z)
	}
	v := T(1)
	for v<<1 > v {
		v <<= 1
	}
	m := uint64(v + (v - 1))
	if neg {
		return m + 1
	}
	return m
}

func rangeOf[T Integer]() (string, string) {
	if !isSigned[T]() {
		return "0", strconv.FormatUint(magLimit[T](false), 10)
	}
	m := magLimit[T](false)
	return "-" + strconv.FormatUint(m+1, 10), strconv.FormatUint(m, 10)
}

func floatBits[T Float]() int {
	if T(1<<24)+1 == T(1<<24) {
		return 32
	}
	return 64
}
