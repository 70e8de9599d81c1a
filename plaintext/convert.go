package plaintext

import (
	"regexp"
	"strings"
)

var (
	excessNewlines = regexp.MustCompile(`\n{4,}`)
	urlRe          = regexp.MustCompile(`https?://[^\s<>"]+`)
	emailRe        = regexp.MustCompile(`(^|\s)([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)
)

// Convert reconstructs Markdown from unmarked plain text. Lines are
// classified one at a time with the ordered heuristic rules; blank lines
// pass through as separators. After reconstruction, runs of four or more
// newlines collapse to three and bare URLs and e-mail addresses become
// Markdown links.
func Convert(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	out := make([]string, 0, len(lines))
	firstSeen := false

	for i := 0; i < len(lines); i++ {
		raw := lines[i]
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			out = append(out, "")
			continue
		}

		next := ""
		if i+1 < len(lines) {
			next = strings.TrimSpace(lines[i+1])
		}

		ctx := lineContext{raw: raw, trimmed: trimmed, next: next, first: !firstSeen}
		firstSeen = true

		rendered := trimmed
		for _, r := range rules {
			if r.match(ctx) {
				rendered = r.render(ctx)
				break
			}
		}
		out = append(out, rendered)

		// An underline following a header is decoration, not content.
		if isHeader(ctx) && hasUnderline(ctx) {
			i++
		}
	}

	result := strings.Join(out, "\n")
	result = excessNewlines.ReplaceAllString(result, "\n\n\n")
	return autoLink(result)
}

// autoLink rewrites bare URLs and e-mail addresses as Markdown links. The
// whitespace around each match is left untouched.
func autoLink(s string) string {
	s = urlRe.ReplaceAllStringFunc(s, func(url string) string {
		// Trailing sentence punctuation belongs to the prose, not the URL.
		trimmed := strings.TrimRight(url, ".,;:!?")
		tail := url[len(trimmed):]
		return "[" + trimmed + "](" + trimmed + ")" + tail
	})
	s = emailRe.ReplaceAllString(s, "$1[$2](mailto:$2)")
	return s
}
