package htmldoc

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return doc
}

func TestFindSegments_SlideClass(t *testing.T) {
	doc := parse(t, `<body>
		<div class="slide">one</div>
		<div class="slide">two</div>
		<div class="footer">not a slide</div>
	</body>`)

	segments := FindSegments(doc)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
}

func TestFindSegments_BareSections(t *testing.T) {
	doc := parse(t, `<body><section>a</section><section>b</section><section>c</section></body>`)
	segments := FindSegments(doc)
	if len(segments) != 3 {
		t.Fatalf("got %d segments, want 3", len(segments))
	}
}

func TestFindSegments_PriorityOrder(t *testing.T) {
	// slide-classed sections outrank bare sections.
	doc := parse(t, `<body>
		<section class="slide">real slide</section>
		<section>just a section</section>
	</body>`)

	segments := FindSegments(doc)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1 (only the slide-classed section)", len(segments))
	}
	if !strings.Contains(NewTransformer().Render(segments[0]), "real slide") {
		t.Errorf("wrong segment selected")
	}
}

func TestFindSegments_TokenFallback(t *testing.T) {
	doc := parse(t, `<body>
		<div class="deck-page-1">first</div>
		<div id="slideWrapper2">second</div>
		<div class="unrelated">nope</div>
	</body>`)

	segments := FindSegments(doc)
	if len(segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(segments))
	}
}

func TestFindSegments_NestedMatchesCollapse(t *testing.T) {
	doc := parse(t, `<body><div class="slide">outer<div class="slide">inner</div></div></body>`)
	segments := FindSegments(doc)
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1 (outermost only)", len(segments))
	}
}

func TestFindSegments_None(t *testing.T) {
	doc := parse(t, `<body><p>plain page</p></body>`)
	if segments := FindSegments(doc); segments != nil {
		t.Fatalf("got %d segments, want none", len(segments))
	}
}

func TestFindMainContent(t *testing.T) {
	doc := parse(t, `<body><nav>menu</nav><main><p>content</p></main></body>`)
	node := FindMainContent(doc)
	if node == nil || node.Data != "main" {
		t.Fatalf("FindMainContent() = %v, want main element", node)
	}

	doc = parse(t, `<body><p>just a body</p></body>`)
	node = FindMainContent(doc)
	if node == nil || node.Data != "body" {
		t.Fatalf("FindMainContent() fallback = %v, want body", node)
	}
}
