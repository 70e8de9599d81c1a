// Package htmldoc converts hypertext markup to Markdown.
//
// The conversion is a generic tag-stripping transform with a declarative
// rule table layered on top: each tag family that needs more than stripping
// (headings, lists, tables, code, blockquotes, breaks) has one rule. The
// rule table is fixed when a Transformer is constructed, so concurrent
// conversions never observe partially configured state.
package htmldoc

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// state carries rendering context down the tree.
type state struct {
	inList bool // soft line breaks instead of hard breaks
	inCode bool // whitespace passes through verbatim
}

// RenderFunc renders one element and its subtree.
type RenderFunc func(t *Transformer, n *html.Node, st state) string

// Transformer converts parsed HTML to Markdown using an immutable rule set.
type Transformer struct {
	rules map[string]RenderFunc
}

// NewTransformer returns a Transformer with the default rule table.
func NewTransformer() *Transformer {
	return &Transformer{rules: defaultRules()}
}

// Convert parses hypertext markup and renders the body as Markdown.
func Convert(markup string) (string, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("parsing markup: %w", err)
	}

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}

	return NewTransformer().Render(body), nil
}

// Render converts a parsed node subtree to Markdown.
func (t *Transformer) Render(n *html.Node) string {
	return strings.TrimSpace(t.renderChildren(n, state{}))
}

// renderNode dispatches a single node through the rule table.
func (t *Transformer) renderNode(n *html.Node, st state) string {
	switch n.Type {
	case html.TextNode:
		if st.inCode {
			return n.Data
		}
		return collapseSpace(n.Data)
	case html.ElementNode:
		if skippedElements[n.Data] {
			return ""
		}
		if rule, ok := t.rules[n.Data]; ok {
			return rule(t, n, st)
		}
		// Generic tag stripping: unknown elements contribute their children.
		return t.renderChildren(n, st)
	case html.DocumentNode:
		return t.renderChildren(n, st)
	default:
		return ""
	}
}

// renderChildren concatenates the renderings of all child nodes.
func (t *Transformer) renderChildren(n *html.Node, st state) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(t.renderNode(c, st))
	}
	return b.String()
}

// inlineText renders a subtree and flattens it to single-line text.
func (t *Transformer) inlineText(n *html.Node, st state) string {
	return strings.TrimSpace(collapseSpace(t.renderChildren(n, st)))
}

// skippedElements contribute nothing to the output.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
	"head":     true,
	"title":    true,
	"meta":     true,
	"link":     true,
	"svg":      true,
}

var spaceRuns = regexp.MustCompile(`[ \t\r\n]+`)

// collapseSpace reduces whitespace runs to single spaces without trimming,
// so adjacent inline fragments keep their separating space.
func collapseSpace(s string) string {
	return spaceRuns.ReplaceAllString(s, " ")
}

// findElement returns the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// hasClassToken reports whether the element's class attribute contains the
// exact token.
func hasClassToken(n *html.Node, token string) bool {
	for _, t := range strings.Fields(attrValue(n, "class")) {
		if t == token {
			return true
		}
	}
	return false
}
