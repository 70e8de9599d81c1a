package csvdoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/mdconv/markdown"
)

// sampleSize is the number of data rows inspected per column when deciding
// whether a column is numeric.
const sampleSize = 10

// numericThreshold is the fraction of non-empty sampled values that must
// parse as numbers for a column to be treated as numeric.
const numericThreshold = 0.7

// ErrNoData is returned when the input contains no rows at all.
var ErrNoData = errors.New("no tabular data found")

// Convert renders delimited text as a Markdown table. Row 0 is the header;
// every data row is padded or truncated to the header's width. After the
// table, a statistics block is appended for each numeric column in header
// order.
func Convert(text string, delimiter rune) (string, error) {
	rows := Parse(text, delimiter)
	if len(rows) == 0 {
		return "", ErrNoData
	}

	header := rows[0]
	data := rows[1:]

	var b strings.Builder
	b.WriteString(markdown.Table(header, data))

	stats := columnStats(header, data)
	if len(stats) > 0 {
		b.WriteString("\n## Column Statistics\n\n")
		for _, s := range stats {
			b.WriteString(fmt.Sprintf("### %s\n\n", s.name))
			b.WriteString(fmt.Sprintf("- Count: %d\n", s.count))
			b.WriteString(fmt.Sprintf("- Average: %.2f\n", s.sum/float64(s.count)))
			b.WriteString(fmt.Sprintf("- Min: %s\n", formatNumber(s.min)))
			b.WriteString(fmt.Sprintf("- Max: %s\n\n", formatNumber(s.max)))
		}
	}

	return b.String(), nil
}

// columnSummary accumulates statistics for one numeric column.
type columnSummary struct {
	name  string
	count int
	sum   float64
	min   float64
	max   float64
}

// columnStats returns a summary for every numeric column, in header order.
// A column is numeric when at least 70% of the non-empty values in a sample
// of the first ten data rows parse as floating-point numbers.
func columnStats(header []string, data [][]string) []columnSummary {
	var stats []columnSummary

	for col, name := range header {
		if !isNumericColumn(col, data) {
			continue
		}

		s := columnSummary{name: name}
		for _, row := range data {
			if col >= len(row) {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				continue
			}
			if s.count == 0 || v < s.min {
				s.min = v
			}
			if s.count == 0 || v > s.max {
				s.max = v
			}
			s.sum += v
			s.count++
		}
		if s.count > 0 {
			stats = append(stats, s)
		}
	}

	return stats
}

// isNumericColumn samples the first ten data rows of a column.
func isNumericColumn(col int, data [][]string) bool {
	nonEmpty, numeric := 0, 0

	for i := 0; i < len(data) && i < sampleSize; i++ {
		if col >= len(data[i]) {
			continue
		}
		v := strings.TrimSpace(data[i][col])
		if v == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(v, 64); err == nil {
			numeric++
		}
	}

	if nonEmpty == 0 {
		return false
	}
	return float64(numeric)/float64(nonEmpty) >= numericThreshold
}

// formatNumber renders a float without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
