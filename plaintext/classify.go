// Package plaintext infers Markdown structure from unmarked plain text.
//
// Each non-blank line is classified by an ordered list of heuristic rules
// (header, list, code, quote) with first-match-wins semantics; anything
// unmatched passes through as a paragraph. The heuristics are deliberately
// approximate: all-caps prose will be read as a heading and code-like prose
// as code. That trade-off is inherent to structure inference on input that
// carries no markup.
package plaintext

import (
	"regexp"
	"strings"
	"unicode"
)

// LineClass identifies how a line of input is interpreted.
type LineClass int

const (
	// Paragraph is the fallback class for unmatched lines.
	Paragraph LineClass = iota
	// Header is a line rendered as a Markdown heading.
	Header
	// List is a bulleted, numbered, lettered, or roman-numeral list item.
	List
	// Code is a line rendered inside an indented code block.
	Code
	// Quote is a line rendered as a blockquote.
	Quote
	// Blank is an empty separator line.
	Blank
)

// lineContext carries everything a classification rule may inspect.
type lineContext struct {
	raw     string // original line, indentation intact
	trimmed string
	next    string // next line, trimmed; empty at end of input
	first   bool   // true for the first non-blank line of the document
}

// rule pairs a predicate with a renderer. Rules are evaluated in order and
// the first match wins.
type rule struct {
	class  LineClass
	match  func(ctx lineContext) bool
	render func(ctx lineContext) string
}

// rules is the fixed classification order: header, list, code, quote.
var rules = []rule{
	{Header, isHeader, renderHeader},
	{List, isList, renderList},
	{Code, isCode, renderCode},
	{Quote, isQuote, renderQuote},
}

// Classify returns the class the ordered rules assign to a line. It exists
// for inspection and testing; Convert applies the same rules.
func Classify(raw, next string, first bool) LineClass {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Blank
	}
	ctx := lineContext{raw: raw, trimmed: trimmed, next: strings.TrimSpace(next), first: first}
	for _, r := range rules {
		if r.match(ctx) {
			return r.class
		}
	}
	return Paragraph
}

// Header heuristics.

var (
	headerKeywords = regexp.MustCompile(`^(Chapter|Section|Part|Article|Introduction|Conclusion|Summary|Overview|Background)\s`)
	numberedCapsRe = regexp.MustCompile(`^\d+\.\s+[A-Z]`)
	underlineRe    = regexp.MustCompile(`^(=+|-+)$`)
	headerPunct    = ".,:;!?'&()-"
	level1Prefixes = []string{"Chapter", "Part"}
)

func isHeader(ctx lineContext) bool {
	if isAllCapsHeading(ctx.trimmed) {
		return true
	}
	if hasUnderline(ctx) {
		return true
	}
	if numberedCapsRe.MatchString(ctx.trimmed) && strings.ToUpper(ctx.trimmed) == ctx.trimmed {
		return true
	}
	return headerKeywords.MatchString(ctx.trimmed)
}

// hasUnderline reports whether the following line is a ===/--- underline.
func hasUnderline(ctx lineContext) bool {
	return ctx.next != "" && underlineRe.MatchString(ctx.next)
}

// isAllCapsHeading reports whether a line longer than three characters
// consists entirely of upper-case letters, digits, spaces, and a restricted
// punctuation set, with at least one letter present.
func isAllCapsHeading(s string) bool {
	if len(s) <= 3 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case unicode.IsDigit(r) || r == ' ':
		case strings.ContainsRune(headerPunct, r):
		default:
			return false
		}
	}
	return hasLetter
}

// headerLevel assigns the heading depth for a classified header line.
func headerLevel(ctx lineContext) int {
	for _, p := range level1Prefixes {
		if strings.HasPrefix(ctx.trimmed, p) {
			return 1
		}
	}
	if ctx.first {
		return 1
	}
	if len(ctx.trimmed) < 30 && strings.ToUpper(ctx.trimmed) == ctx.trimmed {
		return 2
	}
	if strings.HasPrefix(ctx.trimmed, "Section") {
		return 2
	}
	return 3
}

func renderHeader(ctx lineContext) string {
	return strings.Repeat("#", headerLevel(ctx)) + " " + ctx.trimmed
}

// List heuristics.

var (
	bulletRe   = regexp.MustCompile(`^([-*•])\s+(.*)$`)
	numberedRe = regexp.MustCompile(`^\d+\.\s+`)
	letteredRe = regexp.MustCompile(`^[a-zA-Z][.)]\s+(.*)$`)
	romanRe    = regexp.MustCompile(`^(?i)[ivxlcdm]{2,}[.)]\s+(.*)$`)
)

func isList(ctx lineContext) bool {
	return bulletRe.MatchString(ctx.trimmed) ||
		numberedRe.MatchString(ctx.trimmed) ||
		letteredRe.MatchString(ctx.trimmed) ||
		romanRe.MatchString(ctx.trimmed)
}

func renderList(ctx lineContext) string {
	if m := bulletRe.FindStringSubmatch(ctx.trimmed); m != nil {
		if m[1] == "•" {
			return "- " + m[2]
		}
		return ctx.trimmed // existing - and * bullets pass through
	}
	if numberedRe.MatchString(ctx.trimmed) {
		return ctx.trimmed // numbered markers pass through
	}
	if m := romanRe.FindStringSubmatch(ctx.trimmed); m != nil {
		return "- " + m[1]
	}
	if m := letteredRe.FindStringSubmatch(ctx.trimmed); m != nil {
		return "- " + m[1]
	}
	return ctx.trimmed
}

// Code heuristics.

var (
	codeKeywordRe = regexp.MustCompile(`\b(function|var|let|const|if|else|for|while|class|def|import|export)\b`)
	codePunct     = "{}();"
)

func isCode(ctx lineContext) bool {
	if strings.HasPrefix(ctx.raw, "    ") {
		return true
	}
	if strings.ContainsAny(ctx.trimmed, codePunct) && !startsUpper(ctx.trimmed) {
		return true
	}
	return codeKeywordRe.MatchString(ctx.trimmed)
}

func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

func renderCode(ctx lineContext) string {
	// Already-indented lines keep their internal indentation.
	if strings.HasPrefix(ctx.raw, "    ") {
		return ctx.raw
	}
	return "    " + ctx.trimmed
}

// Quote heuristics.

var quoteChars = []string{`"`, "'", "“", "‘"}

func isQuote(ctx lineContext) bool {
	if strings.HasPrefix(ctx.trimmed, ">") {
		return true
	}
	if isWrappedInQuotes(ctx.trimmed) {
		return true
	}
	if strings.HasPrefix(ctx.trimmed, "Quote:") {
		return true
	}
	for _, q := range quoteChars {
		if strings.HasPrefix(ctx.trimmed, q) {
			return true
		}
	}
	return false
}

// isWrappedInQuotes reports whether the line is fully enclosed in matching
// single or double quotes.
func isWrappedInQuotes(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'"))
}

func renderQuote(ctx lineContext) string {
	content := strings.TrimSpace(strings.TrimPrefix(ctx.trimmed, ">"))
	return "> " + content
}
