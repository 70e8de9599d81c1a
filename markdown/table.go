package markdown

import "strings"

// EscapeCell makes a string safe for use inside a Markdown table cell.
// Pipes are escaped and newlines become spaces.
func EscapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// Table renders a Markdown table with the given header and data rows.
// Every data row is padded or truncated to the header's column count,
// and cell content is escaped via EscapeCell.
func Table(header []string, rows [][]string) string {
	if len(header) == 0 {
		return ""
	}

	var b strings.Builder
	writeRow(&b, header, len(header))

	b.WriteString("|")
	for range header {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(&b, row, len(header))
	}

	return b.String()
}

// writeRow writes a single table row padded or truncated to width cells.
func writeRow(b *strings.Builder, cells []string, width int) {
	b.WriteString("|")
	for i := 0; i < width; i++ {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(" " + EscapeCell(cell) + " |")
	}
	b.WriteString("\n")
}
