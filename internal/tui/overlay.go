package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// layer is a rendered block placed at a cell offset on the screen.
type layer struct {
	rows []string
	w    int
}

func newLayer(s string) layer {
	rows := strings.Split(s, "\n")
	l := layer{rows: rows}
	for _, r := range rows {
		l.w = max(l.w, ansi.StringWidth(r))
	}
	return l
}

// stamp draws top over base with its top-left corner at (x, y). Rows outside
// the first height rows of base are left alone. The layer is opaque: every
// cell it covers is replaced, including trailing blanks on short rows.
func stamp(base string, top layer, x, y, width, height int) string {
	screen := strings.Split(base, "\n")
	limit := min(len(screen), height)
	for i, row := range top.rows {
		at := y + i
		if at < 0 || at >= limit {
			continue
		}
		screen[at] = splice(screen[at], fit(row, top.w), x, width)
	}
	return strings.Join(screen, "\n")
}

// splice replaces the cells of line starting at column x with seg and keeps
// the line at least width cells wide.
func splice(line, seg string, x, width int) string {
	line = fit(line, max(width, x))
	head := fit(ansi.Truncate(line, x, ""), x)
	end := x + ansi.StringWidth(seg)
	tail := ansi.TruncateLeft(line, end, "")
	return head + seg + fit(tail, width-end)
}

// stampCenter draws s in the middle of a width x height base.
func stampCenter(base, s string, width, height int) string {
	top := newLayer(s)
	x := max((width-top.w)/2, 0)
	y := max((height-len(top.rows))/2, 0)
	return stamp(base, top, x, y, width, height)
}

// fit pads s with blanks to at least n cells. It never shortens.
func fit(s string, n int) string {
	if gap := n - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// cell clips s to exactly width cells so table columns line up.
func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return fit(ansi.Truncate(s, width, "…"), width)
}
