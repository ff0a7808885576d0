package argscan

import (
	"fmt"
	"net/netip"

	"argscan/scan"
)

// TargetFor returns a slot target writing through p. p is a pointer to one
// of the supported value types, or anything that already implements
// scan.Target.
//
// A *rune matches the *int32 case and decodes as a number; use
// scan.CharTarget to read a single character.
func TargetFor(p any) (scan.Target, bool) {
	switch v := p.(type) {
	case scan.Target:
		return v, true
	case *int:
		return scan.IntTarget(v), true
	case *int8:
		return scan.IntTarget(v), true
	case *int16:
		return scan.IntTarget(v), true
	case *int32:
		return scan.IntTarget(v), true
	case *int64:
		return scan.IntTarget(v), true
	case *uint:
		return scan.IntTarget(v), true
	case *uint8:
		return scan.IntTarget(v), true
	case *uint16:
		return scan.IntTarget(v), true
	case *uint32:
		return scan.IntTarget(v), true
	case *uint64:
		return scan.IntTarget(v), true
	case *uintptr:
		return scan.IntTarget(v), true
	case *float32:
		return scan.FloatTarget(v), true
	case *float64:
		return scan.FloatTarget(v), true
	case *bool:
		return scan.BoolTarget(v), true
	case *string:
		return scan.StringTarget(v), true
	case *netip.Addr:
		return scan.IPv4Target(v), true
	case *netip.AddrPort:
		return scan.AddrPortTarget(v), true
	}
	return nil, false
}

// ParseArg parses the whole of arg into a value of type T. It is a full
// mode run of a single slot pattern, so any input that the decoder of T
// does not consume is an error.
func ParseArg[T any](arg string) (T, error) {
	var v T
	t, ok := TargetFor(&v)
	if !ok {
		return v, fmt.Errorf("argscan: cannot parse into %T", &v)
	}
	if err := scan.Parsef(scan.FromString(arg), scan.Slot(t, nil)); err != nil {
		return v, err
	}
	return v, nil
}
