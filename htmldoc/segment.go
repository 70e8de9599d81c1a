package htmldoc

import (
	"strings"

	"golang.org/x/net/html"
)

// segmentSelector matches elements by tag name and exact class token.
// An empty class matches any element with the given tag.
type segmentSelector struct {
	tag   string
	class string
}

// segmentSelectors is the prioritized list tried in order; the first
// selector with any matches wins. It covers the markup emitted by the
// common slide-deck frameworks.
var segmentSelectors = []segmentSelector{
	{tag: "section", class: "slide"},
	{tag: "div", class: "slide"},
	{tag: "section", class: "step"},
	{tag: "div", class: "step"},
	{tag: "div", class: "swiper-slide"},
	{tag: "section", class: ""},
}

// mainContentSelectors identify a single designated content element when
// no slide segments exist.
var mainContentSelectors = []segmentSelector{
	{tag: "main", class: ""},
	{tag: "article", class: ""},
	{tag: "div", class: "content"},
	{tag: "div", class: "main"},
}

// FindSegments locates slide-like sub-regions of a parsed document. The
// prioritized selectors are tried first; failing those, any container whose
// class or id contains a "slide" or "page" token is accepted. Returns nil
// when the document has no detectable segments.
func FindSegments(doc *html.Node) []*html.Node {
	root := findElement(doc, "body")
	if root == nil {
		root = doc
	}

	for _, sel := range segmentSelectors {
		matches := collectMatches(root, sel)
		if len(matches) > 0 {
			return matches
		}
	}

	return collectTokenMatches(root)
}

// FindMainContent returns the designated main-content element, or the body,
// or nil when neither exists.
func FindMainContent(doc *html.Node) *html.Node {
	for _, sel := range mainContentSelectors {
		if matches := collectMatches(doc, sel); len(matches) > 0 {
			return matches[0]
		}
	}
	return findElement(doc, "body")
}

// collectMatches gathers elements matching a selector in document order.
// Matched subtrees are not descended into, so nested matches collapse onto
// their outermost container.
func collectMatches(n *html.Node, sel segmentSelector) []*html.Node {
	var matches []*html.Node
	walkSegments(n, func(node *html.Node) bool {
		if node.Data != sel.tag {
			return false
		}
		return sel.class == "" || hasClassToken(node, sel.class)
	}, &matches)
	return matches
}

// collectTokenMatches gathers container elements whose class or id carries
// a token containing "slide" or "page".
func collectTokenMatches(n *html.Node) []*html.Node {
	var matches []*html.Node
	walkSegments(n, func(node *html.Node) bool {
		if node.Data != "div" && node.Data != "section" && node.Data != "article" {
			return false
		}
		tokens := strings.Fields(attrValue(node, "class"))
		tokens = append(tokens, attrValue(node, "id"))
		for _, token := range tokens {
			lower := strings.ToLower(token)
			if strings.Contains(lower, "slide") || strings.Contains(lower, "page") {
				return true
			}
		}
		return false
	}, &matches)
	return matches
}

// walkSegments appends matching elements without descending into matches.
func walkSegments(n *html.Node, match func(*html.Node) bool, out *[]*html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			*out = append(*out, c)
			continue
		}
		walkSegments(c, match, out)
	}
}
