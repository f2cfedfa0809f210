package output

import (
	"fmt"
	"io"
	"strings"
)

func writeMarkdown[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return missing(Markdown, "Rower", items[0])
	}
	h, ok := first.(Headed)
	if !ok {
		return missing(Markdown, "Headed", items[0])
	}

	header := h.Header()
	rows := make([][]string, len(items))
	for i, item := range items {
		rows[i] = escapePipes(any(item).(Rower).Row())
	}

	widths := columnWidths(header, rows)
	for i := range widths {
		// Room for the ":-:" alignment marker.
		widths[i] = max(widths[i], 3)
	}
	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}
	aligns = extendAligns(aligns, len(widths))

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}
	sep := make([]string, len(widths))
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		padded[i] = alignCell(cellAt(cells, i), width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

func escapePipes(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return out
}
