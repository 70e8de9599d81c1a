// Package format provides input format detection and text decoding for the
// mdconv engine.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates a hypertext document.
	HTML
	// PlainText indicates unmarked plain text.
	PlainText
	// JSON indicates hierarchical JSON data.
	JSON
	// CSV indicates delimited tabular text.
	CSV
	// XML indicates generic angle-bracket markup that is not HTML.
	XML
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// Image indicates a raster image (PNG, JPEG, GIF, BMP, TIFF, WebP).
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case PlainText:
		return "PlainText"
	case JSON:
		return "JSON"
	case CSV:
		return "CSV"
	case XML:
		return "XML"
	case DOCX:
		return "DOCX"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case PlainText:
		return ".txt"
	case JSON:
		return ".json"
	case CSV:
		return ".csv"
	case XML:
		return ".xml"
	case DOCX:
		return ".docx"
	case Image:
		return ".png"
	default:
		return ""
	}
}

// Detect determines the input format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".txt", ".text", ".md", ".markdown", ".log":
		return PlainText
	case ".json", ".jsonl":
		return JSON
	case ".csv", ".tsv":
		return CSV
	case ".xml", ".rss", ".atom":
		return XML
	case ".docx":
		return DOCX
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return Image
	default:
		return Unknown
	}
}

// DetectFromContent inspects raw bytes to determine the format. ZIP-based
// containers are checked by magic bytes and archive contents; everything
// else goes through MIME sniffing. Returns Unknown if nothing matches.
func DetectFromContent(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// ZIP magic: PK\x03\x04. The only ZIP container we convert is DOCX.
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		if isDOCXArchive(data) {
			return DOCX
		}
		return Unknown
	}

	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("text/html"):
		return HTML
	case mtype.Is("application/json"):
		return JSON
	case mtype.Is("text/csv"), mtype.Is("text/tab-separated-values"):
		return CSV
	case mtype.Is("text/xml"), mtype.Is("application/xml"):
		return XML
	case strings.HasPrefix(mtype.String(), "image/"):
		return Image
	case strings.HasPrefix(mtype.String(), "text/"):
		return PlainText
	}

	return Unknown
}

// isDOCXArchive reports whether a ZIP archive carries a word/ part.
func isDOCXArchive(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return true
		}
	}
	return false
}
