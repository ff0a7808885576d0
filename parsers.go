package argscan

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"argscan/diag"
	"argscan/scan"
)

// KeyValArg splits arg at the first occurrence of sep and parses both
// sides, so `"key=value"` with sep '=' yields the parsed key and value. A
// missing separator is an error. Parse errors inside either side are
// shifted so that they point into arg itself.
func KeyValArg[K, V any](arg string, sep rune) (K, V, error) {
	var k K
	var v V
	i := strings.IndexRune(arg, sep)
	if i < 0 {
		return k, v, errMissingSep(arg, sep)
	}

	k, err := ParseArg[K](arg[:i])
	if err != nil {
		return k, v, shiftInto(err, 0, arg)
	}
	v, err = ParseArg[V](arg[i+utf8.RuneLen(sep):])
	if err != nil {
		return k, v, shiftInto(err, i+utf8.RuneLen(sep), arg)
	}
	return k, v, nil
}

// KeyMValArg splits arg at the first occurrence of sep and parses both
// sides. Without a separator the whole argument is the key and the third
// result is false.
func KeyMValArg[K, V any](arg string, sep rune) (K, V, bool, error) {
	var v V
	if !strings.ContainsRune(arg, sep) {
		k, err := ParseArg[K](arg)
		return k, v, false, err
	}
	k, v, err := KeyValArg[K, V](arg, sep)
	return k, v, err == nil, err
}

// KeyArg parses the part of arg before sep, or the whole of arg when
// there is no separator.
func KeyArg[T any](arg string, sep rune) (T, error) {
	k, _, _, err := KeyMValArg[T, string](arg, sep)
	return k, err
}

// ValArg parses the part of arg after sep; a missing separator is an
// error.
func ValArg[T any](arg string, sep rune) (T, error) {
	_, v, err := KeyValArg[string, T](arg, sep)
	return v, err
}

// MValArg parses the part of arg after sep, if there is one.
func MValArg[T any](arg string, sep rune) (T, bool, error) {
	_, v, has, err := KeyMValArg[string, T](arg, sep)
	return v, has, err
}

// BoolArg matches the lowercased arg against custom true and false words,
// so flags can accept pairs like yes/no or always/never.
func BoolArg(t, f, arg string) (bool, error) {
	switch strings.ToLower(arg) {
	case t:
		return true, nil
	case f:
		return false, nil
	}
	return false, diag.New(diag.KindFailedToParse).
		WithInline("Invalid value.").
		WithLong("Invalid value `%s`", arg).
		WithHint("Expected `%s` or `%s`", t, f).
		AddArgs([]string{arg}, 0).
		Spanned(0, len(arg))
}

// OptBoolArg matches the lowercased arg against custom true, false and
// neutral words. The second result is false for the neutral word.
func OptBoolArg(t, f, n, arg string) (bool, bool, error) {
	switch strings.ToLower(arg) {
	case t:
		return true, true, nil
	case f:
		return false, true, nil
	case n:
		return false, false, nil
	}
	return false, false, diag.New(diag.KindFailedToParse).
		WithInline("Invalid value.").
		WithLong("Invalid value `%s`", arg).
		WithHint("Expected `%s`, `%s` or `%s`", t, f, n).
		AddArgs([]string{arg}, 0).
		Spanned(0, len(arg))
}

// SplitArg splits arg by sep and parses every piece. Splitting happens
// before parsing, so pieces cannot themselves contain the separator; see
// ArgList for the other order.
func SplitArg[T any](arg, sep string) ([]T, error) {
	pieces := strings.Split(arg, sep)
	res := make([]T, 0, len(pieces))
	for _, s := range pieces {
		v, err := ParseArg[T](s)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// ArgList parses values of type T from arg, expecting sep between
// consecutive values. The decoder runs first and the separator is matched
// after it, so values may contain the separator text if their decoder
// consumes it.
func ArgList[T any](arg, sep string) ([]T, error) {
	return ArgListFunc(arg, sep, func(r *scan.Reader) (T, error) {
		var v T
		t, ok := TargetFor(&v)
		if !ok {
			return v, fmt.Errorf("argscan: cannot parse into %T", &v)
		}
		_, err := scan.ParsefPart(r, scan.Slot(t, nil))
		return v, err
	})
}

// ArgListFunc parses values from arg with the given decode function,
// expecting sep between consecutive values.
func ArgListFunc[T any](arg, sep string, read func(*scan.Reader) (T, error)) ([]T, error) {
	r := scan.FromString(arg)
	var res []T
	for {
		v, err := read(r)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
		_, more, err := r.Peek()
		if err != nil {
			return nil, err
		}
		if !more {
			return res, nil
		}
		if err := r.Expect(sep); err != nil {
			return nil, err
		}
	}
}

func errMissingSep(arg string, sep rune) *diag.Error {
	return diag.New(diag.KindNoValue).
		WithInline("Missing separator `%c`.", sep).
		WithLong("Missing separator `%c` for key value pair.", sep).
		WithHint("Use the separator `%c` to split the argument into key and value.", sep).
		AddArgs([]string{arg}, 0).
		Spanned(0, len(arg))
}

func shiftInto(err error, cnt int, arg string) error {
	if e, ok := err.(*diag.Error); ok {
		return e.ShiftSpan(cnt, arg)
	}
	return err
}
