// Package jsondoc converts hierarchical JSON data to Markdown using
// headings, tables, and fenced blocks chosen by data shape.
package jsondoc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// Null is the JSON null value.
	Null Kind = iota
	// Bool is a JSON boolean.
	Bool
	// Number is a JSON number, kept as its source text.
	Number
	// String is a JSON string.
	String
	// Array is a JSON array.
	Array
	// Object is a JSON object with member order preserved.
	Object
)

// String returns the lower-case JSON type name.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a parsed JSON value. Unlike unmarshaling into map[string]any,
// object member order matches the source document, which the renderer
// relies on for stable output.
type Value struct {
	Kind    Kind
	Bool    bool
	Number  string // source representation, e.g. "1e3"
	Str     string
	Items   []Value  // Array elements
	Members []Member // Object members in document order
}

// Parse decodes JSON text into a Value tree. The text must hold exactly
// one value; trailing content is an error.
func Parse(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, err
	}

	tok, err := dec.Token()
	if !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("trailing content after value: %v", tok)
	}
	return v, nil
}

// parseValue consumes one complete value from the decoder.
func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return parseToken(dec, tok)
}

// parseToken builds a Value from an already-read token.
func parseToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case bool:
		return Value{Kind: Bool, Bool: t}, nil
	case json.Number:
		return Value{Kind: Number, Number: t.String()}, nil
	case string:
		return Value{Kind: String, Str: t}, nil
	case nil:
		return Value{Kind: Null}, nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

// parseObject consumes members until the closing brace.
func parseObject(dec *json.Decoder) (Value, error) {
	v := Value{Kind: Object}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		member, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		v.Members = append(v.Members, Member{Key: key, Value: member})
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// parseArray consumes elements until the closing bracket.
func parseArray(dec *json.Decoder) (Value, error) {
	v := Value{Kind: Array}

	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		v.Items = append(v.Items, item)
	}

	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

// JSON renders the value as compact JSON, preserving member order.
func (v Value) JSON() string {
	var b strings.Builder
	v.writeJSON(&b)
	return b.String()
}

func (v Value) writeJSON(b *strings.Builder) {
	switch v.Kind {
	case Null:
		b.WriteString("null")
	case Bool:
		if v.Bool {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(v.Number)
	case String:
		data, _ := json.Marshal(v.Str)
		b.Write(data)
	case Array:
		b.WriteString("[")
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(",")
			}
			item.writeJSON(b)
		}
		b.WriteString("]")
	case Object:
		b.WriteString("{")
		for i, m := range v.Members {
			if i > 0 {
				b.WriteString(",")
			}
			data, _ := json.Marshal(m.Key)
			b.Write(data)
			b.WriteString(":")
			m.Value.writeJSON(b)
		}
		b.WriteString("}")
	}
}

// scalarText returns the human-readable form used for list items, table
// cells, and previews: strings are unquoted, everything else is its JSON
// representation.
func (v Value) scalarText() string {
	if v.Kind == String {
		return v.Str
	}
	return v.JSON()
}
