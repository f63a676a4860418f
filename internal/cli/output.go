package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dundun/dundun/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGreen + s + colorReset
}

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return colorRed + s + colorReset
}

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string {
	if !colorEnabled {
		return s
	}
	return colorYellow + s + colorReset
}

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGray + s + colorReset
}

// StatusLabel returns the list-view marker for a streak status.
// Completed streaks get a check, live runs a dot, everything else a dash.
func StatusLabel(st model.Status) string {
	switch st {
	case model.StatusDone:
		return Green("✓ done")
	case model.StatusDue:
		return Yellow("• due")
	case model.StatusLapsed:
		return Red("- lapsed")
	default:
		return Gray("- new")
	}
}

// Days formats a day count as "1 day" or "N days".
func Days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// DefaultMaxTitleWidth is the default maximum visible width for title columns.
const DefaultMaxTitleWidth = 40

// Table lays out rows in columns sized to their widest cell.
// Widths are measured without ANSI color codes.
type Table struct {
	rows [][]string
	cols []column
}

type column struct {
	width      int
	maxWidth   int // 0 means unlimited
	alignRight bool
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

func (t *Table) column(i int) *column {
	for len(t.cols) <= i {
		t.cols = append(t.cols, column{})
	}
	return &t.cols[i]
}

// SetMaxWidth caps the visible width of a column. Longer cells are
// truncated with "...". Call before AddRow.
func (t *Table) SetMaxWidth(col, maxWidth int) {
	t.column(col).maxWidth = maxWidth
}

// SetAlignRight pads a column on the left so numbers line up.
func (t *Table) SetAlignRight(col int) {
	t.column(col).alignRight = true
}

// AddRow adds a row to the table. Rows may have different lengths.
func (t *Table) AddRow(cells ...string) {
	for i, cell := range cells {
		c := t.column(i)
		w := visibleWidth(cell)
		if c.maxWidth > 0 && w > c.maxWidth {
			w = c.maxWidth
		}
		c.width = max(c.width, w)
	}
	t.rows = append(t.rows, cells)
}

// Render writes the table to w with columns separated by two spaces.
// Left-aligned cells in the last column of a row are not padded.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, len(row))
		for i, cell := range row {
			c := t.cols[i]
			if c.maxWidth > 0 {
				cell = Truncate(cell, c.maxWidth)
			}
			pad := strings.Repeat(" ", c.width-visibleWidth(cell))
			switch {
			case c.alignRight:
				parts[i] = pad + cell
			case i == len(row)-1:
				parts[i] = cell
			default:
				parts[i] = cell + pad
			}
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate shortens s to at most maxWidth visible characters, ending in
// "..." when there is room for it. Color codes are kept, and a reset is
// appended if any were cut off.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth {
		return s
	}

	const ellipsis = "..."
	keep, tail := maxWidth, ""
	if maxWidth >= len(ellipsis) {
		keep, tail = maxWidth-len(ellipsis), ellipsis
	}

	var b strings.Builder
	colored := false
	visible := 0
	walkANSI(s, func(r rune, escape bool) bool {
		if escape {
			colored = true
			b.WriteRune(r)
			return true
		}
		if visible == keep {
			return false
		}
		b.WriteRune(r)
		visible++
		return true
	})

	b.WriteString(tail)
	if colored && tail != "" {
		b.WriteString(colorReset)
	}
	return b.String()
}

// visibleWidth returns the number of runes in s outside ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	walkANSI(s, func(_ rune, escape bool) bool {
		if !escape {
			width++
		}
		return true
	})
	return width
}

// walkANSI calls fn for each rune of s, flagging runes that belong to an
// ANSI color sequence. Walking stops when fn returns false.
func walkANSI(s string, fn func(r rune, escape bool) bool) {
	inEscape := false
	for _, r := range s {
		escape := inEscape || r == '\033'
		switch {
		case r == '\033':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		}
		if !fn(r, escape) {
			return
		}
	}
}
