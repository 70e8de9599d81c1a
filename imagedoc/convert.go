// Package imagedoc converts image files into Markdown documents carrying
// the image's basic properties and, when OCR support is compiled in, the
// text recognized in the image.
package imagedoc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/mdconv/ocr"
)

// Convert produces a Markdown document describing the image: its name,
// encoding, and pixel dimensions, followed by recognized text when an OCR
// client can be constructed. Without OCR support the document carries a
// note instead.
func Convert(name string, data []byte) (string, error) {
	cfg, encoding, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image header: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Image: %s\n\n", name)
	fmt.Fprintf(&b, "- Format: %s\n", encoding)
	fmt.Fprintf(&b, "- Dimensions: %dx%d\n", cfg.Width, cfg.Height)

	text, err := recognize(data)
	switch {
	case errors.Is(err, ocr.ErrOCRNotEnabled):
		b.WriteString("\n*Text recognition not available in this build.*\n")
	case err != nil:
		fmt.Fprintf(&b, "\n*Text recognition failed: %v*\n", err)
	case text == "":
		b.WriteString("\n*No text detected in image.*\n")
	default:
		b.WriteString("\n## Recognized Text\n\n```\n" + text + "\n```\n")
	}

	return b.String(), nil
}

func recognize(data []byte) (string, error) {
	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()
	return client.RecognizeImage(data)
}
