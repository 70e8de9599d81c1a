package htmldoc

import (
	"regexp"
	"strings"
)

var (
	xmlDeclRe    = regexp.MustCompile(`<\?[^?]*\?>`)
	doctypeRe    = regexp.MustCompile(`(?i)<!DOCTYPE[^>]*>`)
	commentRe    = regexp.MustCompile(`(?s)<!--.*?-->`)
	cdataRe      = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)
	selfClosedRe = regexp.MustCompile(`<([A-Za-z][A-Za-z0-9_:.-]*)((?:[^<>"']|"[^"]*"|'[^']*')*?)\s*/>`)
	tagNameRe    = regexp.MustCompile(`</?[A-Za-z][A-Za-z0-9_:.-]*`)
	closeTagRe   = regexp.MustCompile(`</[A-Za-z][A-Za-z0-9_:.-]*>`)
)

// PrepareXML normalizes semi-structured angle-bracket markup so the
// hypertext transform applies unchanged: processing instructions, doctypes,
// and comments are dropped, CDATA sections are unwrapped, self-closing tags
// are expanded into open/close pairs, and tag names are lower-cased to
// match the parser's case folding.
func PrepareXML(text string) string {
	text = xmlDeclRe.ReplaceAllString(text, "")
	text = doctypeRe.ReplaceAllString(text, "")
	text = commentRe.ReplaceAllString(text, "")
	text = cdataRe.ReplaceAllString(text, "$1")
	text = selfClosedRe.ReplaceAllString(text, "<$1$2></$1>")
	text = tagNameRe.ReplaceAllStringFunc(text, strings.ToLower)
	// A space after each closing tag keeps words from gluing together once
	// the element structure is stripped.
	text = closeTagRe.ReplaceAllString(text, "$0 ")
	return text
}

// ConvertXML runs generic markup through the XML pre-pass and then the
// standard transform. Element structure beyond the known tag families is
// stripped, leaving the text content.
func ConvertXML(text string) (string, error) {
	return Convert(PrepareXML(text))
}
