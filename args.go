package argscan

import (
	"os"

	"argscan/diag"
)

// Args is a cursor over a tokenized argument list. The cursor sits between
// arguments: Next consumes the one in front of it, Cur returns the one
// last consumed. Failed parses produce diagnostics that snapshot the whole
// list, so rendered errors can show the argument in its context.
type Args struct {
	args []string
	cur  int
}

// NewArgs creates a cursor over args. The first argument is not skipped.
func NewArgs(args []string) *Args {
	return &Args{args: args}
}

// OSArgs creates a cursor over os.Args with the program name skipped.
func OSArgs() *Args {
	return &Args{args: os.Args, cur: 1}
}

// Next consumes and returns the next argument.
func (a *Args) Next() (string, bool) {
	if a.cur >= len(a.args) {
		return "", false
	}
	a.cur++
	return a.args[a.cur-1], true
}

// Peek returns the argument the next call to Next would consume.
func (a *Args) Peek() (string, bool) {
	return a.Get(a.cur)
}

// Cur returns the last consumed argument.
func (a *Args) Cur() (string, bool) {
	if a.cur == 0 {
		return "", false
	}
	return a.args[a.cur-1], true
}

// Get returns the argument at the given index.
func (a *Args) Get(idx int) (string, bool) {
	if idx < 0 || idx >= len(a.args) {
		return "", false
	}
	return a.args[idx], true
}

// Jump moves the cursor so that the argument at idx is the next one, and
// returns the argument before it.
func (a *Args) Jump(idx int) (string, bool) {
	a.cur = max(min(idx, len(a.args)), 0)
	return a.Cur()
}

// SkipArgs is equivalent to calling Next cnt times.
func (a *Args) SkipArgs(cnt int) (string, bool) {
	return a.Jump(a.cur + cnt)
}

// SkipAll skips all remaining arguments and returns the last one.
func (a *Args) SkipAll() (string, bool) {
	return a.Jump(len(a.args))
}

// Reset moves the cursor back to the start.
func (a *Args) Reset() {
	a.Jump(0)
}

// NextIdx returns the index of the next argument.
func (a *Args) NextIdx() (int, bool) {
	if a.cur >= len(a.args) {
		return 0, false
	}
	return a.cur, true
}

// CurIdx returns the index of the last consumed argument.
func (a *Args) CurIdx() (int, bool) {
	if a.cur == 0 || a.cur-1 >= len(a.args) {
		return 0, false
	}
	return a.cur - 1, true
}

// Remaining returns the arguments after the cursor.
func (a *Args) Remaining() []string {
	return a.args[min(a.cur, len(a.args)):]
}

// CurRemaining returns the arguments after the cursor, including the last
// consumed one.
func (a *Args) CurRemaining() []string {
	return a.args[min(max(a.cur-1, 0), len(a.args)):]
}

// All returns the whole argument list.
func (a *Args) All() []string {
	return a.args
}

// MapErr adds the argument list snapshot to e, pointing it at the last
// consumed argument. Errors produced through the typed accessors get this
// automatically; use it when parsing an argument by hand.
func (a *Args) MapErr(e *diag.Error) *diag.Error {
	return e.AddArgs(a.args, max(a.cur-1, 0))
}

func (a *Args) wrap(err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*diag.Error); ok {
		return a.MapErr(e)
	}
	return err
}

// ErrUnknownArgument creates the diagnostic for an unrecognized last
// argument.
func (a *Args) ErrUnknownArgument() *diag.Error {
	e := diag.New(diag.KindUnknownArgument).WithInline("Unknown argument.")
	arg, ok := a.Cur()
	if ok {
		e.WithLong("Unknown argument `%s`", arg)
	}
	return e.AddArgs(a.args, max(a.cur-1, 0)).Spanned(0, len(arg))
}

// ErrNoMoreArguments creates the diagnostic for a missing expected
// argument, pointing past the end of the last one.
func (a *Args) ErrNoMoreArguments() *diag.Error {
	e := diag.New(diag.KindNoMoreArguments).
		WithInline("Expected more arguments.")
	if len(a.args) == 0 {
		return e
	}
	last := a.args[len(a.args)-1]
	return e.WithLong("Expected more arguments after the argument `%s`.", last).
		AddArgs(a.args, len(a.args)-1).
		Spanned(len(last), len(last))
}

// ErrInvalidValue creates the diagnostic for an invalid value within the
// last argument.
func (a *Args) ErrInvalidValue(value string) *diag.Error {
	return a.MapErr(diag.Value("Invalid value for argument.", value))
}

// NextArg consumes and parses the next argument.
func NextArg[T any](a *Args) (T, error) {
	arg, ok := a.Next()
	if !ok {
		var zero T
		return zero, a.ErrNoMoreArguments()
	}
	v, err := ParseArg[T](arg)
	return v, a.wrap(err)
}

// CurArg parses the last consumed argument. On a fresh cursor there is no
// such argument, which is a usage bug reported as its own kind.
func CurArg[T any](a *Args) (T, error) {
	arg, ok := a.Cur()
	if !ok {
		var zero T
		return zero, diag.New(diag.KindNoLastArgument)
	}
	v, err := ParseArg[T](arg)
	return v, a.wrap(err)
}

// NextKeyVal consumes the next argument and splits it into a parsed key
// and value at the separator.
func NextKeyVal[K, V any](a *Args, sep rune) (K, V, error) {
	arg, ok := a.Next()
	if !ok {
		var k K
		var v V
		return k, v, a.ErrNoMoreArguments()
	}
	k, v, err := KeyValArg[K, V](arg, sep)
	return k, v, a.wrap(err)
}

// NextKeyMVal consumes the next argument and splits it into a parsed key
// and optional value; without separator the whole argument is the key.
func NextKeyMVal[K, V any](a *Args, sep rune) (K, V, bool, error) {
	arg, ok := a.Next()
	if !ok {
		var k K
		var v V
		return k, v, false, a.ErrNoMoreArguments()
	}
	k, v, has, err := KeyMValArg[K, V](arg, sep)
	return k, v, has, a.wrap(err)
}

// NextKey consumes the next argument and parses the part before the
// separator, or the whole argument when there is none.
func NextKey[T any](a *Args, sep rune) (T, error) {
	k, _, _, err := NextKeyMVal[T, string](a, sep)
	return k, err
}

// NextVal consumes the next argument and parses the part after the
// separator; a missing separator is an error.
func NextVal[T any](a *Args, sep rune) (T, error) {
	_, v, err := NextKeyVal[string, T](a, sep)
	return v, err
}

// NextMVal consumes the next argument and parses the part after the
// separator, if there is one.
func NextMVal[T any](a *Args, sep rune) (T, bool, error) {
	_, v, has, err := NextKeyMVal[string, T](a, sep)
	return v, has, err
}

// CurVal parses the part of the last argument after the separator.
func CurVal[T any](a *Args, sep rune) (T, error) {
	arg, ok := a.Cur()
	if !ok {
		var zero T
		return zero, diag.New(diag.KindNoLastArgument)
	}
	_, v, err := KeyValArg[string, T](arg, sep)
	return v, a.wrap(err)
}

// CurMVal parses the part of the last argument after the separator, if
// there is one.
func CurMVal[T any](a *Args, sep rune) (T, bool, error) {
	arg, ok := a.Cur()
	if !ok {
		var zero T
		return zero, false, diag.New(diag.KindNoLastArgument)
	}
	_, v, has, err := KeyMValArg[string, T](arg, sep)
	return v, has, a.wrap(err)
}

// CurValOrNext parses the value after the separator in the last argument,
// or, when the last argument has no separator, the whole next argument.
// This is the usual handling of `--flag=value` versus `--flag value`.
func CurValOrNext[T any](a *Args, sep rune) (T, error) {
	v, has, err := CurMVal[T](a, sep)
	if err != nil || has {
		return v, err
	}
	return NextArg[T](a)
}

// NextBool consumes the next argument and matches it, lowercased, against
// the given true and false words.
func (a *Args) NextBool(t, f string) (bool, error) {
	arg, ok := a.Next()
	if !ok {
		return false, a.ErrNoMoreArguments()
	}
	v, err := BoolArg(t, f, arg)
	if err != nil {
		return false, a.wrap(err)
	}
	return v, nil
}

// NextOptBool consumes the next argument and matches it, lowercased,
// against the given true, false and neutral words. The second result is
// false for the neutral word.
func (a *Args) NextOptBool(t, f, n string) (bool, bool, error) {
	arg, ok := a.Next()
	if !ok {
		return false, false, a.ErrNoMoreArguments()
	}
	v, some, err := OptBoolArg(t, f, n, arg)
	if err != nil {
		return false, false, a.wrap(err)
	}
	return v, some, nil
}
