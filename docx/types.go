// Package docx extracts Markdown from Word (Office Open XML) documents.
package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
	Hyperlinks []hyperlinkXML    `xml:"hyperlink"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style      styleRefXML   `xml:"pStyle"`
	OutlineLvl outlineLvlXML `xml:"outlineLvl"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// outlineLvlXML represents an explicit outline level (0-based in OOXML).
type outlineLvlXML struct {
	Val string `xml:"val,attr"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	Properties runPropsXML `xml:"rPr"`
	Text       []textXML   `xml:"t"`
	Tabs       []tabXML    `xml:"tab"`
	Breaks     []breakXML  `xml:"br"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Bold   boolXML `xml:"b"`
	Italic boolXML `xml:"i"`
}

// boolXML represents an OOXML on/off property. The element being present
// means on unless val explicitly disables it.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// enabled reports whether the property is present and not explicitly off.
func (b boolXML) enabled() bool {
	if b.XMLName.Local == "" {
		return false
	}
	switch b.Val {
	case "false", "0", "none", "off":
		return false
	}
	return true
}

// textXML represents text content (<w:t>).
type textXML struct {
	Space string `xml:"space,attr"`
	Value string `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct{}

// breakXML represents a line or page break.
type breakXML struct {
	Type string `xml:"type,attr"`
}

// hyperlinkXML represents a hyperlink wrapping its own runs.
type hyperlinkXML struct {
	Runs []runXML `xml:"r"`
}
