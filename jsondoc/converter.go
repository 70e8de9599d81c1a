package jsondoc

import (
	"fmt"
	"strings"

	"github.com/tsawler/mdconv/markdown"
)

const (
	// wideObjectThreshold is the property count above which an object gets
	// a property-summary table ahead of its detailed section.
	wideObjectThreshold = 10

	// frequencyThreshold is the array length above which a scalar array is
	// rendered as a frequency table instead of a numbered list.
	frequencyThreshold = 20

	// longStringThreshold is the string length above which a property value
	// is rendered as a fenced block instead of inline text.
	longStringThreshold = 100

	// previewLimit is the maximum preview length in the property summary.
	previewLimit = 50
)

// Convert renders JSON text as Markdown. Malformed input is not an error:
// the raw text is embedded in a fenced block under an "Invalid JSON"
// heading so a batch conversion still produces a document.
func Convert(text string) string {
	v, err := Parse(text)
	if err != nil {
		var b strings.Builder
		b.WriteString("# Invalid JSON\n\n")
		b.WriteString(fmt.Sprintf("Error: %s\n\n", err.Error()))
		b.WriteString("```\n")
		b.WriteString(strings.TrimSpace(text))
		b.WriteString("\n```\n")
		return b.String()
	}

	return renderValue(v, 2)
}

// renderValue dispatches on the root value's kind. level is the heading
// level used for the value's own sections; recursion only ever increases
// it, capping at 6.
func renderValue(v Value, level int) string {
	switch v.Kind {
	case Object:
		return renderObject(v, level)
	case Array:
		return renderArray(v, level)
	default:
		return renderScalar(v)
	}
}

// renderScalar renders a lone scalar root.
func renderScalar(v Value) string {
	return fmt.Sprintf("Type: %s\n\nValue:\n\n```\n%s\n```\n", v.Kind, v.scalarText())
}

// renderObject renders an object as one section per property. Objects with
// more than ten properties get a summary table first.
func renderObject(v Value, level int) string {
	var b strings.Builder
	childLevel := level

	if len(v.Members) > wideObjectThreshold {
		b.WriteString(heading(capLevel(level), "Property Summary"))
		b.WriteString("\n")

		rows := make([][]string, 0, len(v.Members))
		for _, m := range v.Members {
			rows = append(rows, []string{m.Key, typeTag(m.Value), preview(m.Value)})
		}
		b.WriteString(markdown.Table([]string{"Property", "Type", "Preview"}, rows))
		b.WriteString("\n")

		b.WriteString(heading(capLevel(level), "Detailed Content"))
		b.WriteString("\n")
		childLevel = level + 1
	}

	for _, m := range v.Members {
		b.WriteString(heading(capLevel(childLevel), m.Key))
		b.WriteString("\n")
		b.WriteString(renderProperty(m.Value, childLevel+1))
		b.WriteString("\n")
	}

	return b.String()
}

// renderProperty renders a single property value beneath its heading.
func renderProperty(v Value, level int) string {
	switch v.Kind {
	case Object, Array:
		return renderValue(v, level)
	case String:
		if len(v.Str) > longStringThreshold {
			return fmt.Sprintf("```\n%s\n```\n", v.Str)
		}
		return v.Str + "\n"
	default:
		return v.scalarText() + "\n"
	}
}

// renderArray picks a table for arrays of objects, a frequency table for
// long scalar arrays, and a numbered list otherwise.
func renderArray(v Value, level int) string {
	if len(v.Items) == 0 {
		return "*Empty array*\n"
	}

	if allObjects(v.Items) {
		return renderObjectTable(v.Items)
	}

	if len(v.Items) > frequencyThreshold {
		return renderFrequencyTable(v.Items)
	}

	var b strings.Builder
	for i, item := range v.Items {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, cellText(item)))
	}
	return b.String()
}

// renderObjectTable renders an array of objects as a table whose columns
// are the union of all element keys in first-seen order.
func renderObjectTable(items []Value) string {
	var columns []string
	seen := make(map[string]bool)
	for _, item := range items {
		for _, m := range item.Members {
			if !seen[m.Key] {
				seen[m.Key] = true
				columns = append(columns, m.Key)
			}
		}
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		byKey := make(map[string]Value, len(item.Members))
		for _, m := range item.Members {
			byKey[m.Key] = m.Value
		}

		row := make([]string, len(columns))
		for i, col := range columns {
			if cell, ok := byKey[col]; ok {
				row[i] = cellText(cell)
			}
		}
		rows = append(rows, row)
	}

	return markdown.Table(columns, rows)
}

// renderFrequencyTable groups elements by string representation and emits
// counts in descending order, ties broken by first appearance.
func renderFrequencyTable(items []Value) string {
	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		key := item.scalarText()
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	// Stable selection sort keeps first-seen order among equal counts.
	// Selection is tracked by index so an empty-string key is a valid pick.
	sorted := make([]string, 0, len(order))
	used := make([]bool, len(order))
	for len(sorted) < len(order) {
		bestIdx := -1
		for i, key := range order {
			if used[i] {
				continue
			}
			if bestIdx == -1 || counts[key] > counts[order[bestIdx]] {
				bestIdx = i
			}
		}
		used[bestIdx] = true
		sorted = append(sorted, order[bestIdx])
	}

	rows := make([][]string, 0, len(sorted))
	for _, key := range sorted {
		rows = append(rows, []string{key, fmt.Sprintf("%d", counts[key])})
	}
	return markdown.Table([]string{"Value", "Count"}, rows)
}

// cellText renders a value for use inside a table cell or list item.
// Nested structures become compact inline JSON.
func cellText(v Value) string {
	switch v.Kind {
	case Object, Array:
		return v.JSON()
	default:
		return v.scalarText()
	}
}

// typeTag returns the summary-table type label: arrays show their length,
// everything else shows its type name.
func typeTag(v Value) string {
	if v.Kind == Array {
		return fmt.Sprintf("Array[%d]", len(v.Items))
	}
	return v.Kind.String()
}

// preview truncates a value's compact representation for the summary table.
func preview(v Value) string {
	s := v.scalarText()
	runes := []rune(s)
	if len(runes) > previewLimit {
		return string(runes[:previewLimit]) + "..."
	}
	return s
}

// allObjects reports whether every element is an object.
func allObjects(items []Value) bool {
	for _, item := range items {
		if item.Kind != Object {
			return false
		}
	}
	return true
}

// heading renders a Markdown heading line at the given level.
func heading(level int, text string) string {
	return strings.Repeat("#", level) + " " + text + "\n"
}

// capLevel clamps a heading level to Markdown's maximum of 6.
func capLevel(level int) int {
	if level > 6 {
		return 6
	}
	return level
}
