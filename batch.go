package mdconv

import (
	"fmt"

	"github.com/tsawler/mdconv/format"
)

// Input is one file handed to ConvertBatch: a source name, its raw
// content, an optional declared format (Unknown means detect), and an
// optional tabular delimiter (0 means choose by extension).
type Input struct {
	Name      string
	Data      []byte
	Format    format.Format
	Delimiter rune
}

// ProgressFunc reports batch progress. It receives the number of files
// completed so far and the total.
type ProgressFunc func(done, total int)

// ConvertBatch converts every input sequentially and returns exactly one
// Document per input. A file that fails yields a synthesized
// ERROR_<name>.md document carrying the error message; the batch itself
// never fails. The progress callback fires once before each file begins
// and once more after the last file completes.
func ConvertBatch(inputs []Input, onProgress ProgressFunc) []Document {
	total := len(inputs)
	docs := make([]Document, 0, total)

	for i, in := range inputs {
		if onProgress != nil {
			onProgress(i, total)
		}

		opts := defaultOptions()
		opts.format = in.Format
		opts.delimiter = in.Delimiter
		content, err := convertInput(in.Name, in.Data, opts)
		if err != nil {
			docs = append(docs, errorDocument(in.Name, err))
			continue
		}
		docs = append(docs, Document{Name: outputName(in.Name), Content: content})
	}

	if onProgress != nil {
		onProgress(total, total)
	}
	return docs
}

// errorDocument synthesizes the Markdown document emitted for a failed
// conversion.
func errorDocument(name string, err error) Document {
	content := fmt.Sprintf("# Conversion Error\n\nFile: %s\n\nError: %v\n", name, err)
	return Document{Name: "ERROR_" + name + ".md", Content: content}
}
