package mdconv

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/mdconv/htmldoc"
	"github.com/tsawler/mdconv/markdown"
)

// ConvertMarkup converts a hypertext string that may decompose into slide
// segments. When segments are detected it returns one document per
// segment (slide_NN.md) plus a concatenated full_presentation.md; when
// none are, it returns a single whole-page document. A page with no
// extractable content at all fails with an EmptyResult error.
func ConvertMarkup(markupText, sourceLabel string) ([]Document, error) {
	doc, err := html.Parse(strings.NewReader(markupText))
	if err != nil {
		return nil, newError(MalformedInput, sourceLabel, err)
	}

	tr := htmldoc.NewTransformer()

	if segments := htmldoc.FindSegments(doc); len(segments) > 0 {
		docs := make([]Document, 0, len(segments)+1)
		parts := make([]string, 0, len(segments))
		for i, seg := range segments {
			content := markdown.Cleanup(tr.Render(seg))
			docs = append(docs, Document{
				Name:    fmt.Sprintf("slide_%02d.md", i+1),
				Content: content,
			})
			parts = append(parts, strings.TrimSpace(content))
		}
		full := markdown.Cleanup(strings.Join(parts, "\n\n---\n\n"))
		docs = append(docs, Document{Name: "full_presentation.md", Content: full})
		return docs, nil
	}

	var content string
	if node := htmldoc.FindMainContent(doc); node != nil {
		content = tr.Render(node)
	}
	if strings.TrimSpace(content) == "" {
		return nil, newError(EmptyResult, sourceLabel, fmt.Errorf("no extractable content"))
	}

	return []Document{{Name: outputName(sourceLabel), Content: markdown.Cleanup(content)}}, nil
}
