package htmldoc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// defaultRules builds the rule table: one rule per tag family, everything
// else falls through to generic tag stripping.
func defaultRules() map[string]RenderFunc {
	rules := map[string]RenderFunc{
		"p":          paragraphRule,
		"div":        paragraphRule,
		"br":         breakRule,
		"hr":         ruleLiteral("\n\n---\n\n"),
		"a":          linkRule,
		"strong":     wrapRule("**"),
		"b":          wrapRule("**"),
		"em":         wrapRule("*"),
		"i":          wrapRule("*"),
		"ul":         listRule(false),
		"ol":         listRule(true),
		"table":      tableRule,
		"pre":        preRule,
		"code":       codeRule,
		"blockquote": blockquoteRule,
		"img":        imageRule,
	}

	for level := 1; level <= 6; level++ {
		rules[fmt.Sprintf("h%d", level)] = headingRule(level)
	}

	return rules
}

// ruleLiteral emits fixed text regardless of content.
func ruleLiteral(text string) RenderFunc {
	return func(t *Transformer, n *html.Node, st state) string {
		return text
	}
}

// headingRule renders hN elements as Markdown headings.
func headingRule(level int) RenderFunc {
	marker := strings.Repeat("#", level)
	return func(t *Transformer, n *html.Node, st state) string {
		text := t.inlineText(n, st)
		if text == "" {
			return ""
		}
		return "\n\n" + marker + " " + text + "\n\n"
	}
}

// paragraphRule renders p and block-level div content with collapsed
// whitespace, separated from neighbors by a blank line.
func paragraphRule(t *Transformer, n *html.Node, st state) string {
	inner := t.renderChildren(n, st)
	if strings.TrimSpace(inner) == "" {
		return ""
	}
	if hasBlockChild(n) {
		// A container div: children already produced their own blocks.
		return inner
	}
	// Text nodes are already whitespace-collapsed; trimming here preserves
	// hard breaks emitted by <br>.
	return "\n\n" + strings.TrimSpace(inner) + "\n\n"
}

// breakRule emits a soft break inside list items and a Markdown hard break
// (two trailing spaces) elsewhere.
func breakRule(t *Transformer, n *html.Node, st state) string {
	if st.inList {
		return "\n"
	}
	return "  \n"
}

// linkRule renders anchors as [text](href), falling back to the bare text
// when no href is present.
func linkRule(t *Transformer, n *html.Node, st state) string {
	text := t.inlineText(n, st)
	href := attrValue(n, "href")
	if text == "" {
		return ""
	}
	if href == "" || strings.HasPrefix(href, "javascript:") {
		return text
	}
	return "[" + text + "](" + href + ")"
}

// wrapRule surrounds inline content with an emphasis marker.
func wrapRule(marker string) RenderFunc {
	return func(t *Transformer, n *html.Node, st state) string {
		text := t.inlineText(n, st)
		if text == "" {
			return ""
		}
		return marker + text + marker
	}
}

// listRule walks direct li children. Ordered items render as "N. ",
// unordered as "- "; continuation lines are indented to hang under the
// marker (three spaces for ordered, two for unordered).
func listRule(ordered bool) RenderFunc {
	return func(t *Transformer, n *html.Node, st state) string {
		itemState := state{inList: true}

		var b strings.Builder
		b.WriteString("\n\n")
		counter := 0
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.Data != "li" {
				continue
			}
			counter++

			marker := "- "
			continuation := "  "
			if ordered {
				marker = fmt.Sprintf("%d. ", counter)
				continuation = "   "
			}

			content := strings.TrimSpace(t.renderChildren(c, itemState))
			lines := strings.Split(content, "\n")
			b.WriteString(marker + strings.TrimSpace(lines[0]) + "\n")
			for _, line := range lines[1:] {
				line = strings.TrimSpace(line)
				if line == "" {
					continue
				}
				b.WriteString(continuation + line + "\n")
			}
		}
		b.WriteString("\n")
		return b.String()
	}
}

// tableRule walks a table row by row. A row counts as a header row when it
// contains any th cells; when no row does, the first row serves as the
// header so the output is still a well-formed Markdown table.
func tableRule(t *Transformer, n *html.Node, st state) string {
	var header []string
	var rows [][]string

	for _, tr := range collectRows(n) {
		cells, isHeader := t.rowCells(tr, st)
		if len(cells) == 0 {
			continue
		}
		if isHeader && header == nil {
			header = cells
			continue
		}
		rows = append(rows, cells)
	}

	if header == nil {
		if len(rows) == 0 {
			return ""
		}
		header = rows[0]
		rows = rows[1:]
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(header)) + "\n")
	for _, row := range rows {
		for len(row) < len(header) {
			row = append(row, "")
		}
		b.WriteString("| " + strings.Join(row[:len(header)], " | ") + " |\n")
	}
	b.WriteString("\n")
	return b.String()
}

// collectRows gathers tr elements from the table and its sections.
func collectRows(table *html.Node) []*html.Node {
	var trs []*html.Node
	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "tr":
			trs = append(trs, c)
		case "thead", "tbody", "tfoot":
			for r := c.FirstChild; r != nil; r = r.NextSibling {
				if r.Type == html.ElementNode && r.Data == "tr" {
					trs = append(trs, r)
				}
			}
		}
	}
	return trs
}

// rowCells renders the cells of one row and reports whether the row
// contains any header-cell markers.
func (t *Transformer) rowCells(tr *html.Node, st state) ([]string, bool) {
	var cells []string
	isHeader := false
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data == "th" {
			isHeader = true
		}
		if c.Data == "th" || c.Data == "td" {
			cell := t.inlineText(c, st)
			cell = strings.ReplaceAll(cell, "|", `\|`)
			cells = append(cells, cell)
		}
	}
	return cells, isHeader
}

// preRule renders block code as a fenced block, taking the language from a
// language-X class token on the pre or its code child.
func preRule(t *Transformer, n *html.Node, st state) string {
	lang := languageToken(n)
	if code := findElement(n, "code"); code != nil && lang == "" {
		lang = languageToken(code)
	}

	text := t.renderChildren(n, state{inCode: true})
	text = strings.Trim(text, "\n")
	return "\n\n```" + lang + "\n" + text + "\n```\n\n"
}

// codeRule wraps inline code in backticks. Code inside pre is handled by
// preRule and passes through verbatim.
func codeRule(t *Transformer, n *html.Node, st state) string {
	if st.inCode {
		return t.renderChildren(n, st)
	}
	text := t.inlineText(n, st)
	if text == "" {
		return ""
	}
	return "`" + text + "`"
}

// blockquoteRule prefixes every line of the quoted content with "> ".
func blockquoteRule(t *Transformer, n *html.Node, st state) string {
	content := strings.TrimSpace(t.renderChildren(n, st))
	if content == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	for _, line := range strings.Split(content, "\n") {
		b.WriteString("> " + strings.TrimSpace(line) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// imageRule renders images as Markdown image links when alt text or a
// source is available.
func imageRule(t *Transformer, n *html.Node, st state) string {
	src := attrValue(n, "src")
	alt := attrValue(n, "alt")
	if src == "" || strings.HasPrefix(src, "data:") {
		return alt
	}
	return "![" + alt + "](" + src + ")"
}

// languageToken extracts X from a language-X class token.
func languageToken(n *html.Node) string {
	for _, token := range strings.Fields(attrValue(n, "class")) {
		if strings.HasPrefix(token, "language-") {
			return strings.TrimPrefix(token, "language-")
		}
	}
	return ""
}

// hasBlockChild reports whether an element has block-level child elements,
// which makes it a container rather than a text paragraph.
var blockTags = map[string]bool{
	"p": true, "div": true, "ul": true, "ol": true, "table": true,
	"pre": true, "blockquote": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "section": true, "article": true,
	"header": true, "footer": true, "main": true, "aside": true, "nav": true,
}

func hasBlockChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockTags[c.Data] {
			return true
		}
	}
	return false
}
