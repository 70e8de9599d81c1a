// Package markdown provides shared Markdown rendering helpers and the
// cleanup pass applied to every converter's output.
package markdown

import (
	"regexp"
	"strings"
)

var (
	excessNewlines   = regexp.MustCompile(`\n{4,}`)
	headingLine      = regexp.MustCompile(`^#{1,6} `)
	sentenceSpacing  = regexp.MustCompile(`([.!?])([A-Z])`)
	separatorSpacing = regexp.MustCompile(`([,;:])([A-Za-z])`)
)

// Cleanup normalizes generated Markdown. It collapses runs of blank lines,
// ensures headings are separated from surrounding content by a blank line,
// strips trailing whitespace from each line, fixes missing spaces after
// sentence punctuation, and guarantees exactly one trailing newline.
//
// Cleanup is idempotent: running it on already-cleaned content returns the
// content unchanged.
func Cleanup(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	// At most two consecutive blank lines survive.
	s = excessNewlines.ReplaceAllString(s, "\n\n\n")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimRight(line, " \t")

		if headingLine.MatchString(line) {
			if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
				out = append(out, "")
			}
			out = append(out, line)
			if i+1 < len(lines) && strings.TrimSpace(lines[i+1]) != "" {
				out = append(out, "")
			}
			continue
		}

		out = append(out, line)
	}
	s = strings.Join(out, "\n")

	s = sentenceSpacing.ReplaceAllString(s, "$1 $2")
	s = separatorSpacing.ReplaceAllString(s, "$1 $2")

	return strings.TrimSpace(s) + "\n"
}
