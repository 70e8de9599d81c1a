package mdconv

import "github.com/tsawler/mdconv/format"

// ConvertOptions holds configuration for a single conversion.
type ConvertOptions struct {
	// Format override; Unknown means detect from filename, then content.
	format format.Format

	// Field delimiter for tabular input; 0 means choose by extension
	// (tab for .tsv, comma otherwise).
	delimiter rune
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		format:    format.Unknown,
		delimiter: 0,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		format:    o.format,
		delimiter: o.delimiter,
	}
}
