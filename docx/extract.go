package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrMissingContent is returned when the package lacks the document body
// part (word/document.xml).
var ErrMissingContent = errors.New("missing document content part")

// documentPart is the zip member holding the document body.
const documentPart = "word/document.xml"

// emptyPlaceholder is emitted when a document contains no readable text.
const emptyPlaceholder = "*No readable content found in document.*"

// Convert extracts Markdown from raw .docx bytes.
func Convert(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening ZIP archive: %w", err)
	}

	for _, f := range zr.File {
		if f.Name != documentPart {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", documentPart, err)
		}
		defer rc.Close()

		body, err := io.ReadAll(rc)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", documentPart, err)
		}
		return ConvertDocument(string(body))
	}

	return "", ErrMissingContent
}

// ConvertDocument extracts Markdown from already-unpacked document-body
// markup. Paragraphs are joined with a blank line; a document whose
// paragraphs are all empty yields an explicit placeholder.
func ConvertDocument(markup string) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal([]byte(markup), &doc); err != nil {
		return "", fmt.Errorf("unmarshaling document body: %w", err)
	}
	if doc.Body == nil {
		return "", ErrMissingContent
	}

	var paragraphs []string
	for _, p := range doc.Body.Paragraphs {
		if text := renderParagraph(p); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	if len(paragraphs) == 0 {
		return emptyPlaceholder + "\n", nil
	}
	return strings.Join(paragraphs, "\n\n") + "\n", nil
}

// renderParagraph merges a paragraph's runs, applies run formatting, and
// prefixes heading markers derived from the paragraph style.
func renderParagraph(p paragraphXML) string {
	runs := p.Runs
	for _, link := range p.Hyperlinks {
		runs = append(runs, link.Runs...)
	}

	var acc strings.Builder
	for _, run := range runs {
		raw := runText(run)
		if raw == "" {
			continue
		}

		text := raw
		bold := run.Properties.Bold.enabled()
		italic := run.Properties.Italic.enabled()
		if (bold || italic) && strings.TrimSpace(raw) != "" {
			// Emphasis markers must hug the text, so boundary whitespace
			// moves outside the markers.
			text = strings.TrimSpace(raw)
			if bold {
				text = "**" + text + "**"
			}
			if italic {
				text = "*" + text + "*"
			}
			if startsWithSpace(raw) {
				text = " " + text
			}
			if endsWithSpace(raw) {
				text = text + " "
			}
		}

		// Word sometimes drops the space at a run boundary; restore it
		// unless either side already provides whitespace.
		if acc.Len() > 0 && !endsWithSpace(acc.String()) && !startsWithSpace(text) {
			acc.WriteString(" ")
		}
		acc.WriteString(text)
	}

	text := strings.TrimSpace(collapseSpace(acc.String()))
	if text == "" {
		return ""
	}

	if level := headingLevel(p); level > 0 {
		return strings.Repeat("#", level) + " " + text
	}
	return text
}

// runText concatenates a run's text nodes, tabs, and breaks.
func runText(run runXML) string {
	var parts []string
	for _, t := range run.Text {
		parts = append(parts, t.Value)
	}
	for range run.Tabs {
		parts = append(parts, "\t")
	}
	for range run.Breaks {
		parts = append(parts, "\n")
	}
	return strings.Join(parts, "")
}

var headingStyleRe = regexp.MustCompile(`(?i)^heading\s*([1-9])`)

// headingLevel derives the Markdown heading level from the paragraph
// style: Heading<N> maps to N, Title to 1, Subtitle to 2; failing those,
// an explicit outline level maps to min(level+1, 6). Zero means body text.
func headingLevel(p paragraphXML) int {
	style := p.Properties.Style.Val

	if m := headingStyleRe.FindStringSubmatch(style); m != nil {
		level, _ := strconv.Atoi(m[1])
		if level > 6 {
			return 6
		}
		return level
	}
	if strings.Contains(style, "Subtitle") {
		return 2
	}
	if strings.Contains(style, "Title") {
		return 1
	}

	if v := p.Properties.OutlineLvl.Val; v != "" {
		if level, err := strconv.Atoi(v); err == nil && level >= 0 {
			if level+1 > 6 {
				return 6
			}
			return level + 1
		}
	}

	return 0
}

var spaceRuns = regexp.MustCompile(`[ \t\r\n]+`)

func collapseSpace(s string) string {
	return spaceRuns.ReplaceAllString(s, " ")
}

func endsWithSpace(s string) bool {
	return strings.HasSuffix(s, " ") || strings.HasSuffix(s, "\t") || strings.HasSuffix(s, "\n")
}

func startsWithSpace(s string) bool {
	return strings.HasPrefix(s, " ") || strings.HasPrefix(s, "\t") || strings.HasPrefix(s, "\n")
}
