// Package csvdoc converts delimited tabular text to Markdown tables with
// numeric column summaries.
package csvdoc

import "strings"

// ParseLine splits a single physical line into fields. A quote character
// toggles in-quotes state, a doubled quote inside a quoted field is an
// escaped literal quote, and the delimiter only ends a field outside
// quotes. Fields are trimmed of surrounding whitespace.
//
// Because input is split into lines before field parsing, quoted fields
// cannot span multiple physical lines. Such input is silently split at the
// line break; this is a documented limitation of the parser.
func ParseLine(line string, delimiter rune) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))

	return fields
}

// Parse splits delimited text into rows of fields. The text is split on
// newlines first; blank lines are skipped.
func Parse(text string, delimiter rune) [][]string {
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, ParseLine(line, delimiter))
	}
	return rows
}
