package mdconv

import (
	"errors"
	"strings"
	"testing"
)

func TestConvertMarkup_Segments(t *testing.T) {
	markup := `<html><body>
		<div class="slide"><h1>First</h1></div>
		<div class="slide"><h1>Second</h1></div>
	</body></html>`

	docs, err := ConvertMarkup(markup, "deck.html")
	if err != nil {
		t.Fatalf("ConvertMarkup() error = %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3 (two slides + full)", len(docs))
	}

	if docs[0].Name != "slide_01.md" || docs[1].Name != "slide_02.md" {
		t.Errorf("slide names = %q, %q", docs[0].Name, docs[1].Name)
	}
	if docs[2].Name != "full_presentation.md" {
		t.Errorf("docs[2].Name = %q, want full_presentation.md", docs[2].Name)
	}

	if !strings.Contains(docs[0].Content, "# First") {
		t.Errorf("slide 1 content:\n%s", docs[0].Content)
	}
	full := docs[2].Content
	if !strings.Contains(full, "# First") || !strings.Contains(full, "# Second") {
		t.Errorf("full presentation should contain both slides:\n%s", full)
	}
}

func TestConvertMarkup_WholePageFallback(t *testing.T) {
	docs, err := ConvertMarkup("<html><body><p>just a page</p></body></html>", "page.html")
	if err != nil {
		t.Fatalf("ConvertMarkup() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if docs[0].Name != "page.md" {
		t.Errorf("docs[0].Name = %q, want page.md", docs[0].Name)
	}
	if !strings.Contains(docs[0].Content, "just a page") {
		t.Errorf("content:\n%s", docs[0].Content)
	}
}

func TestConvertMarkup_MainContentPreferred(t *testing.T) {
	markup := `<html><body><nav>menu items</nav><main><p>the article</p></main></body></html>`
	docs, err := ConvertMarkup(markup, "article.html")
	if err != nil {
		t.Fatalf("ConvertMarkup() error = %v", err)
	}
	if strings.Contains(docs[0].Content, "menu items") {
		t.Errorf("navigation should be excluded when a main element exists:\n%s", docs[0].Content)
	}
}

func TestConvertMarkup_Empty(t *testing.T) {
	_, err := ConvertMarkup("<html><body>   </body></html>", "empty.html")
	var convErr *ConversionError
	if !errors.As(err, &convErr) || convErr.Kind != EmptyResult {
		t.Fatalf("error = %v, want EmptyResult", err)
	}
}
