// Package mdconv provides a fluent API for converting documents of
// heterogeneous formats (HTML, plain text, JSON, CSV, XML, Word documents,
// images) into a normalized Markdown representation.
//
// Basic usage:
//
//	md, err := mdconv.Open("report.csv").Markdown()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	doc, err := mdconv.FromBytes("data.txt", raw).
//	    Format(format.CSV).
//	    Delimiter(';').
//	    Document()
package mdconv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsawler/mdconv/csvdoc"
	"github.com/tsawler/mdconv/docx"
	"github.com/tsawler/mdconv/format"
	"github.com/tsawler/mdconv/htmldoc"
	"github.com/tsawler/mdconv/imagedoc"
	"github.com/tsawler/mdconv/jsondoc"
	"github.com/tsawler/mdconv/markdown"
	"github.com/tsawler/mdconv/plaintext"
)

// Document is one converted output: a suggested filename and its
// Markdown content. The engine never retains a returned Document.
type Document struct {
	Name    string
	Content string
}

// Converter accumulates a source and options for fluent configuration.
// Terminal operations are Markdown and Document.
type Converter struct {
	filename string
	name     string
	data     []byte
	loaded   bool
	options  ConvertOptions
}

// Open prepares a converter that reads the named file when a terminal
// operation runs.
//
// Example:
//
//	md, err := mdconv.Open("notes.txt").Markdown()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		name:     filepath.Base(filename),
		options:  defaultOptions(),
	}
}

// FromBytes prepares a converter over in-memory content. The name is used
// for format detection by extension and for the output filename.
func FromBytes(name string, data []byte) *Converter {
	return &Converter{
		name:    name,
		data:    data,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Format overrides format detection with an explicit format.
func (c *Converter) Format(f format.Format) *Converter {
	opts := c.options.clone()
	opts.format = f
	c.options = opts
	return c
}

// Delimiter sets the field delimiter used for tabular input.
func (c *Converter) Delimiter(d rune) *Converter {
	opts := c.options.clone()
	opts.delimiter = d
	c.options = opts
	return c
}

// Markdown runs the conversion and returns the normalized Markdown string.
func (c *Converter) Markdown() (string, error) {
	data, err := c.load()
	if err != nil {
		return "", err
	}
	return convertInput(c.name, data, c.options)
}

// Document runs the conversion and returns it with the conventional
// output filename, the source's base name with a .md extension.
func (c *Converter) Document() (Document, error) {
	content, err := c.Markdown()
	if err != nil {
		return Document{}, err
	}
	return Document{Name: outputName(c.name), Content: content}, nil
}

// load returns the raw input bytes, reading the file on first use.
func (c *Converter) load() ([]byte, error) {
	if c.loaded {
		return c.data, nil
	}
	data, err := os.ReadFile(c.filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", c.filename, err)
	}
	c.data = data
	c.loaded = true
	return data, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := mdconv.Must(mdconv.Open("notes.txt").Markdown())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// convertInput dispatches raw input to the converter for its format and
// normalizes the result. Dispatch is pure on the resolved format;
// word-processing and image inputs are handled from raw bytes, everything
// else is decoded to text first.
func convertInput(name string, data []byte, opts ConvertOptions) (string, error) {
	f := opts.format
	if f == format.Unknown {
		f = format.Detect(name)
	}
	if f == format.Unknown {
		f = format.DetectFromContent(data)
	}

	var (
		content string
		err     error
	)
	switch f {
	case format.DOCX:
		content, err = docx.Convert(data)
		if errors.Is(err, docx.ErrMissingContent) {
			return "", newError(MissingContentPart, name, err)
		}
	case format.Image:
		content, err = imagedoc.Convert(name, data)
	case format.HTML:
		content, err = htmldoc.Convert(format.DecodeText(data))
	case format.XML:
		content, err = htmldoc.ConvertXML(format.DecodeText(data))
	case format.JSON:
		content = jsondoc.Convert(format.DecodeText(data))
	case format.CSV:
		content, err = csvdoc.Convert(format.DecodeText(data), delimiterFor(name, opts))
	case format.PlainText:
		content = plaintext.Convert(format.DecodeText(data))
	default:
		return "", newError(UnsupportedFormat, name, fmt.Errorf("cannot determine format of %q", name))
	}
	if errors.Is(err, csvdoc.ErrNoData) {
		return "", newError(EmptyResult, name, err)
	}
	if err != nil {
		return "", newError(MalformedInput, name, err)
	}

	return markdown.Cleanup(content), nil
}

// delimiterFor resolves the tabular field delimiter: an explicit option
// wins, .tsv files use tab, everything else uses comma.
func delimiterFor(name string, opts ConvertOptions) rune {
	if opts.delimiter != 0 {
		return opts.delimiter
	}
	if strings.EqualFold(filepath.Ext(name), ".tsv") {
		return '\t'
	}
	return ','
}

// outputName maps a source name to the conventional output filename.
func outputName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" {
		base = "document"
	}
	return base + ".md"
}
