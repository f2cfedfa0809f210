package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// layout is the table shape shared by the bordered and plain renderers.
type layout struct {
	title  string
	header []string
	rows   [][]string
	widths []int
	aligns []Alignment
}

func writeTable[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return missing(Table, "Rower", items[0])
	}

	var l layout
	l.rows = make([][]string, len(items))
	for i, item := range items {
		l.rows[i] = any(item).(Rower).Row()
	}
	if h, ok := first.(Headed); ok {
		l.header = h.Header()
	}
	if t, ok := first.(Titled); ok {
		l.title = t.Title()
	}
	border := BorderRounded
	if b, ok := first.(Bordered); ok {
		border = b.Border()
	}
	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}

	l.widths = columnWidths(l.header, l.rows)
	l.aligns = extendAligns(aligns, len(l.widths))

	if bc, ok := borderSets[border]; ok {
		return l.renderBordered(w, bc)
	}
	return l.renderPlain(w)
}

func columnWidths(header []string, rows [][]string) []int {
	n := len(header)
	for _, row := range rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

func (l layout) renderPlain(w io.Writer) error {
	if l.title != "" {
		if _, err := fmt.Fprintln(w, l.title); err != nil {
			return err
		}
	}
	if len(l.header) > 0 {
		if err := l.plainRow(w, l.header); err != nil {
			return err
		}
		sep := make([]string, len(l.widths))
		for i, width := range l.widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
			return err
		}
	}
	for _, row := range l.rows {
		if err := l.plainRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func (l layout) plainRow(w io.Writer, cells []string) error {
	parts := make([]string, len(l.widths))
	for i, width := range l.widths {
		parts[i] = alignCell(cellAt(cells, i), width, l.aligns[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

func (l layout) renderBordered(w io.Writer, bc borderChars) error {
	if l.title != "" {
		if err := l.hline(w, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		title := alignCell(l.title, innerWidth(l.widths)-2, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, title, bc.vertical); err != nil {
			return err
		}
		if err := l.hline(w, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := l.hline(w, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}

	if len(l.header) > 0 {
		if err := l.borderedRow(w, l.header, bc.vertical); err != nil {
			return err
		}
		if err := l.hline(w, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range l.rows {
		if err := l.borderedRow(w, row, bc.vertical); err != nil {
			return err
		}
	}
	return l.hline(w, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// innerWidth is the width between the outer borders: every cell plus one
// space of padding per side, and one separator between cells.
func innerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func (l layout) hline(w io.Writer, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range l.widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(l.widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func (l layout) borderedRow(w io.Writer, cells []string, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range l.widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cellAt(cells, i), width, l.aligns[i]))
		sb.WriteString(" ")
		if i < len(l.widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
