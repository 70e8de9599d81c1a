package format

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Byte-order marks recognized by DecodeText.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeText converts raw input bytes to a UTF-8 string. UTF-8 and UTF-16
// byte-order marks are honored and stripped; BOM-less input that is valid
// UTF-8 passes through unchanged, and anything else is decoded as
// Windows-1252, which never fails.
func DecodeText(data []byte) string {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):])
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder())
	}

	if utf8.Valid(data) {
		return string(data)
	}

	return decodeWith(data, charmap.Windows1252.NewDecoder())
}

// decodeWith runs data through a transformer, falling back to a lossy
// string conversion if the transform fails.
func decodeWith(data []byte, t transform.Transformer) string {
	decoded, _, err := transform.Bytes(t, data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}
