package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

const (
	// maxWidth is the total display budget of one rendered line.
	maxWidth = 80
	// gutterWidth is reserved for the window marker and decorations.
	gutterWidth = 11
	// windowWidth is what remains for the argument window itself.
	windowWidth = maxWidth - gutterWidth
)

// palette carries the styles used by the renderer. Styles are forced on or
// off per palette so that rendering ignores the global NoColor detection.
type palette struct {
	err    *color.Color
	bold   *color.Color
	frame  *color.Color
	faint  *color.Color
	advice *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		err:    color.New(color.FgRed),
		bold:   color.New(color.Bold),
		frame:  color.New(color.FgBlue),
		faint:  color.New(color.FgHiBlack),
		advice: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.bold, p.frame, p.faint, p.advice} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// render produces the full multi-line diagnostic text.
//
// Layout:
//
//	argument error: <headline>
//	--> arg<idx>:<start>..<end>
//	 |
//	 $ [...] <window args...> [...]
//	 |<spaces><carets> <inline message>
//	hint: <hint>
func (e *Error) render(useColor bool) string {
	p := newPalette(useColor)
	var b strings.Builder

	if len(e.Args) == 0 {
		if e.Announce {
			b.WriteString(p.err.Sprint("error:"))
			b.WriteByte(' ')
		}
		b.WriteString(p.bold.Sprint(e.headline()))
		b.WriteByte('\n')
		if e.Hint != "" {
			fmt.Fprintf(&b, "%s %s\n", p.advice.Sprint("hint:"), e.Hint)
		}
		return b.String()
	}

	errIdx := min(max(e.ErrIdx, 0), len(e.Args)-1)
	arg := e.Args[errIdx]
	spanStart := min(max(e.Span.Start, 0), len(arg))
	spanEnd := min(max(e.Span.End, spanStart), len(arg))

	if e.Announce {
		b.WriteString(p.err.Sprint("argument error:"))
		b.WriteByte(' ')
	}
	b.WriteString(p.bold.Sprint(e.headline()))
	b.WriteByte('\n')

	fmt.Fprintf(&b, "%sarg%d:%d..%d\n", p.frame.Sprint("--> "), errIdx, e.Span.Start, e.Span.End)
	b.WriteString(p.frame.Sprint(" |"))
	b.WriteByte('\n')

	start, end, leftCut, rightCut := argWindow(e.Args, errIdx)

	var prefix int
	if leftCut {
		fmt.Fprintf(&b, " %s %s ", p.frame.Sprint("$"), p.faint.Sprint("..."))
		prefix = 7
	} else {
		fmt.Fprintf(&b, " %s ", p.frame.Sprint("$"))
		prefix = 3
	}

	caretCol := prefix
	for i := start; i <= end; i++ {
		if i > start {
			b.WriteByte(' ')
		}
		b.WriteString(e.Args[i])
		if i < errIdx {
			caretCol += runewidth.StringWidth(e.Args[i]) + 1
		}
	}
	caretCol += runewidth.StringWidth(arg[:spanStart])
	if rightCut {
		fmt.Fprintf(&b, " %s", p.faint.Sprint("..."))
	}
	b.WriteByte('\n')

	carets := max(runewidth.StringWidth(arg[spanStart:spanEnd]), 1)
	b.WriteString(p.frame.Sprint(" |"))
	b.WriteString(strings.Repeat(" ", caretCol-2))
	b.WriteString(p.err.Sprintf("%s %s", strings.Repeat("^", carets), e.inline()))
	b.WriteByte('\n')

	if e.Hint != "" {
		fmt.Fprintf(&b, "%s %s\n", p.advice.Sprint("hint:"), e.Hint)
	}
	return b.String()
}

// argWindow grows a contiguous range of argument indices around errIdx,
// alternately extending left and right one argument at a time. A side stops
// once the next argument would push the window past the width budget.
// Reports whether either side was truncated.
func argWindow(args []string, errIdx int) (start, end int, leftCut, rightCut bool) {
	width := func(i int) int { return runewidth.StringWidth(args[i]) }

	start, end = errIdx, errIdx
	used := width(errIdx)
	leftDone := start == 0
	rightDone := end == len(args)-1

	for !leftDone || !rightDone {
		if !leftDone {
			if add := width(start-1) + 1; used+add <= windowWidth {
				used += add
				start--
				leftDone = start == 0
			} else {
				leftDone = true
			}
		}
		if !rightDone {
			if add := width(end+1) + 1; used+add <= windowWidth {
				used += add
				end++
				rightDone = end == len(args)-1
			} else {
				rightDone = true
			}
		}
	}
	return start, end, start > 0, end < len(args)-1
}
