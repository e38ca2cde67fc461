package sorted

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Lane palette, diff-like: operand A blue, operand B red, shared pairs green.
var (
	laneAColor    = color.New(color.FgBlue)
	laneBColor    = color.New(color.FgRed)
	laneBothColor = color.New(color.FgGreen)
)

// Merge2Console renders the interleaving of a merge onto w in three aligned
// lanes (for debugging purposes): operand A on top, operand B beneath it and
// the merged output M at the bottom. Every column is one emitted element,
// marked in the lane(s) of the operand(s) it stems from:
//
//	A | 2   4   6 8
//	B |   3   5
//	M | 2 3 4 5 6 8
//
// If w is a terminal, lanes are colorized and truncated to the terminal
// width; otherwise output is plain and truncated at a default width.
// Elements are rendered with fmt's %v verb. Elements an operation discards
// do not show up; use a Sum merge to inspect the complete interleaving.
func Merge2Console[E any](m Merged[E], w io.Writer) error {
	width := lineWidth(w)
	_, painted := terminalFd(w)

	var rowA, rowB, rowM strings.Builder
	used := len("A | ")
	truncated := false
	for v, from := range m.lanes() {
		cell := fmt.Sprintf("%v", v)
		cw := utf8.RuneCountInString(cell) + 1
		if used+cw > width {
			truncated = true
			break
		}
		used += cw
		padded := cell + " "
		blank := strings.Repeat(" ", cw)
		switch from {
		case fromA:
			rowA.WriteString(paint(painted, laneAColor, padded))
			rowB.WriteString(blank)
			rowM.WriteString(paint(painted, laneAColor, padded))
		case fromB:
			rowA.WriteString(blank)
			rowB.WriteString(paint(painted, laneBColor, padded))
			rowM.WriteString(paint(painted, laneBColor, padded))
		default:
			rowA.WriteString(paint(painted, laneBothColor, padded))
			rowB.WriteString(paint(painted, laneBothColor, padded))
			rowM.WriteString(paint(painted, laneBothColor, padded))
		}
	}

	var out strings.Builder
	for _, lane := range []struct {
		label string
		row   *strings.Builder
	}{
		{"A | ", &rowA},
		{"B | ", &rowB},
		{"M | ", &rowM},
	} {
		out.WriteString(strings.TrimRight(lane.label+lane.row.String(), " "))
		if truncated {
			out.WriteString(" …")
		}
		out.WriteString("\n")
	}
	if _, err := io.WriteString(w, out.String()); err != nil {
		T().Errorf("merge console: %s", err.Error())
		return err
	}
	return nil
}

func paint(on bool, c *color.Color, s string) string {
	if !on {
		return s
	}
	return c.Sprint(s)
}

// terminalFd reports whether w writes to a terminal, and its descriptor.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// lineWidth determines a target line length for lane output, from the
// terminal's properties if w is interactive.
func lineWidth(w io.Writer) int {
	fd, ok := terminalFd(w)
	if !ok {
		return 65
	}
	cols, _, err := term.GetSize(fd)
	if err != nil {
		return 65
	}
	switch {
	case cols > 65:
		return cols - 10
	case cols > 30:
		return cols - 5
	case cols > 10:
		return cols
	default:
		return 10
	}
}
