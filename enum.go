package argscan

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"argscan/diag"
)

// Variants is a table mapping literal spellings to values of an
// enumeration type. Lookup is case folded, so `Always`, `ALWAYS` and
// `always` all match the same variant.
type Variants[T any] struct {
	byName map[string]T
	names  []string
}

// NewVariants builds a variant table from spelling to value pairs.
func NewVariants[T any](m map[string]T) *Variants[T] {
	fold := cases.Fold()
	v := &Variants[T]{byName: make(map[string]T, len(m))}
	for name, val := range m {
		v.byName[fold.String(name)] = val
		v.names = append(v.names, name)
	}
	sort.Strings(v.names)
	return v
}

// Names returns the accepted spellings, sorted.
func (v *Variants[T]) Names() []string {
	return v.names
}

// Parse looks arg up in the table. Unknown spellings produce a diagnostic
// listing the accepted ones.
func (v *Variants[T]) Parse(arg string) (T, error) {
	if val, ok := v.byName[cases.Fold().String(arg)]; ok {
		return val, nil
	}
	var zero T
	return zero, diag.New(diag.KindInvalidValue).
		WithInline("Unknown variant.").
		WithLong("Unknown variant `%s`.", arg).
		WithHint("Expected one of %s.", v.nameList()).
		AddArgs([]string{arg}, 0).
		Spanned(0, len(arg))
}

func (v *Variants[T]) nameList() string {
	var b strings.Builder
	for i, n := range v.names {
		if i != 0 {
			if i == len(v.names)-1 {
				b.WriteString(" or ")
			} else {
				b.WriteString(", ")
			}
		}
		b.WriteByte('`')
		b.WriteString(n)
		b.WriteByte('`')
	}
	return b.String()
}
