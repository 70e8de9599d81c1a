package htmldoc

import (
	"strings"
	"testing"
)

func convert(t *testing.T, markup string) string {
	t.Helper()
	got, err := Convert(markup)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	return got
}

func TestConvert_Headings(t *testing.T) {
	got := convert(t, "<h1>Title</h1><h2>Sub</h2><p>body</p>")
	for _, want := range []string{"# Title", "## Sub", "body"} {
		if !strings.Contains(got, want) {
			t.Errorf("Convert() missing %q:\n%s", want, got)
		}
	}
}

func TestConvert_ParagraphWhitespaceCollapsed(t *testing.T) {
	got := convert(t, "<p>several\n   words\t split over\nlines</p>")
	if !strings.Contains(got, "several words split over lines") {
		t.Errorf("whitespace not collapsed: %q", got)
	}
}

func TestConvert_Emphasis(t *testing.T) {
	got := convert(t, "<p><strong>bold</strong> and <em>italic</em></p>")
	if !strings.Contains(got, "**bold**") {
		t.Errorf("missing bold marker: %q", got)
	}
	if !strings.Contains(got, "*italic*") {
		t.Errorf("missing italic marker: %q", got)
	}
}

func TestConvert_Links(t *testing.T) {
	got := convert(t, `<p>see <a href="https://example.com">the docs</a></p>`)
	if !strings.Contains(got, "[the docs](https://example.com)") {
		t.Errorf("link not rendered: %q", got)
	}

	got = convert(t, `<p><a>no href</a></p>`)
	if !strings.Contains(got, "no href") || strings.Contains(got, "](") {
		t.Errorf("anchor without href should render as text: %q", got)
	}
}

func TestConvert_UnorderedList(t *testing.T) {
	got := convert(t, "<ul><li>one</li><li>two</li></ul>")
	if !strings.Contains(got, "- one\n- two") {
		t.Errorf("unordered list not rendered: %q", got)
	}
}

func TestConvert_OrderedList(t *testing.T) {
	got := convert(t, "<ol><li>first</li><li>second</li><li>third</li></ol>")
	for _, want := range []string{"1. first", "2. second", "3. third"} {
		if !strings.Contains(got, want) {
			t.Errorf("ordered list missing %q:\n%s", want, got)
		}
	}
}

func TestConvert_NestedList(t *testing.T) {
	got := convert(t, "<ul><li>outer<ul><li>inner</li></ul></li></ul>")
	if !strings.Contains(got, "- outer\n  - inner") {
		t.Errorf("nested list not indented as continuation: %q", got)
	}
}

func TestConvert_OrderedContinuationIndent(t *testing.T) {
	got := convert(t, "<ol><li>first line<br>second line</li></ol>")
	if !strings.Contains(got, "1. first line\n   second line") {
		t.Errorf("ordered continuation should be indented three spaces: %q", got)
	}
}

func TestConvert_BreakInsideListIsSoft(t *testing.T) {
	got := convert(t, "<ul><li>a<br>b</li></ul>")
	if strings.Contains(got, "  \n") {
		t.Errorf("break inside list item should be a soft break: %q", got)
	}
}

func TestConvert_BreakOutsideListIsHard(t *testing.T) {
	got := convert(t, "<p>first<br>second</p>")
	if !strings.Contains(got, "first  \n second") && !strings.Contains(got, "first  \nsecond") {
		t.Errorf("break outside list should be a hard break: %q", got)
	}
}

func TestConvert_TableWithHeaderRow(t *testing.T) {
	got := convert(t, `<table>
		<tr><th>Name</th><th>Age</th></tr>
		<tr><td>Ada</td><td>36</td></tr>
	</table>`)

	for _, want := range []string{
		"| Name | Age |",
		"| --- | --- |",
		"| Ada | 36 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
}

func TestConvert_TableWithoutHeaderUsesFirstRow(t *testing.T) {
	got := convert(t, "<table><tr><td>a</td><td>b</td></tr><tr><td>c</td><td>d</td></tr></table>")
	if !strings.Contains(got, "| a | b |\n| --- | --- |\n| c | d |") {
		t.Errorf("first row should serve as header: %q", got)
	}
}

func TestConvert_TableCellPipesEscaped(t *testing.T) {
	got := convert(t, "<table><tr><th>h</th></tr><tr><td>a|b</td></tr></table>")
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("pipe in cell not escaped: %q", got)
	}
}

func TestConvert_InlineCode(t *testing.T) {
	got := convert(t, "<p>run <code>go build</code> first</p>")
	if !strings.Contains(got, "`go build`") {
		t.Errorf("inline code not wrapped: %q", got)
	}
}

func TestConvert_FencedCodeWithLanguage(t *testing.T) {
	got := convert(t, `<pre><code class="language-go">func main() {
	fmt.Println("hi")
}</code></pre>`)

	if !strings.Contains(got, "```go\n") {
		t.Errorf("language tag not taken from class token: %q", got)
	}
	if !strings.Contains(got, "\tfmt.Println(\"hi\")") {
		t.Errorf("code whitespace should pass through verbatim: %q", got)
	}
}

func TestConvert_Blockquote(t *testing.T) {
	got := convert(t, "<blockquote>line one<br>line two</blockquote>")
	if !strings.Contains(got, "> line one") || !strings.Contains(got, "> line two") {
		t.Errorf("blockquote lines not prefixed: %q", got)
	}
}

func TestConvert_ScriptAndStyleSkipped(t *testing.T) {
	got := convert(t, "<p>keep</p><script>drop()</script><style>p{}</style>")
	if strings.Contains(got, "drop") || strings.Contains(got, "p{}") {
		t.Errorf("script/style content leaked: %q", got)
	}
}

func TestConvert_UnknownTagsStripped(t *testing.T) {
	got := convert(t, "<p><custom-widget>inner text</custom-widget></p>")
	if !strings.Contains(got, "inner text") {
		t.Errorf("unknown tag content should survive: %q", got)
	}
	if strings.Contains(got, "custom-widget") {
		t.Errorf("unknown tag should be stripped: %q", got)
	}
}

func TestConvert_Image(t *testing.T) {
	got := convert(t, `<p><img src="chart.png" alt="Q3 chart"></p>`)
	if !strings.Contains(got, "![Q3 chart](chart.png)") {
		t.Errorf("image not rendered: %q", got)
	}
}

func TestPrepareXML(t *testing.T) {
	input := `<?xml version="1.0"?>
<Catalog>
	<Item Id="1"/>
	<Note><![CDATA[raw <text>]]></Note>
	<!-- comment -->
</Catalog>`

	got := PrepareXML(input)
	if strings.Contains(got, "<?xml") {
		t.Errorf("declaration not stripped: %q", got)
	}
	if strings.Contains(got, "<!--") {
		t.Errorf("comment not stripped: %q", got)
	}
	if !strings.Contains(got, `<item Id="1"></item>`) {
		t.Errorf("self-closing tag not expanded and lower-cased: %q", got)
	}
	if !strings.Contains(got, "raw <text>") {
		t.Errorf("CDATA not unwrapped: %q", got)
	}
}

func TestConvertXML(t *testing.T) {
	got, err := ConvertXML(`<?xml version="1.0"?><root><name>Widget</name><price>9.99</price></root>`)
	if err != nil {
		t.Fatalf("ConvertXML() error = %v", err)
	}
	if !strings.Contains(got, "Widget") || !strings.Contains(got, "9.99") {
		t.Errorf("XML text content missing: %q", got)
	}
	if strings.Contains(got, "<name>") {
		t.Errorf("XML tags should be stripped: %q", got)
	}
}
