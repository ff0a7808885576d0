package scan

// TrimSide selects which end(s) of a field are trimmed before length
// constraints apply.
type TrimSide uint8

const (
	TrimNone TrimSide = iota
	TrimLeft
	TrimRight
	TrimBoth
)

// trimSideFrom maps a format marker to its trim side:
// `<` trims right, `^` trims both, `>` trims left.
func trimSideFrom(c rune) (TrimSide, bool) {
	switch c {
	case '<':
		return TrimRight, true
	case '^':
		return TrimBoth, true
	case '>':
		return TrimLeft, true
	}
	return TrimNone, false
}

func (t TrimSide) left() bool {
	return t == TrimLeft || t == TrimBoth
}

func (t TrimSide) right() bool {
	return t == TrimRight || t == TrimBoth
}

func (t TrimSide) String() string {
	switch t {
	case TrimLeft:
		return "left"
	case TrimRight:
		return "right"
	case TrimBoth:
		return "both"
	}
	return "none"
}
