package csvdoc

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "quoted field with embedded delimiter and escaped quote",
			line: `a,"b,c","d""e"`,
			want: []string{"a", "b,c", `d"e`},
		},
		{
			name: "plain fields",
			line: "one,two,three",
			want: []string{"one", "two", "three"},
		},
		{
			name: "fields are trimmed",
			line: " a , b ,c ",
			want: []string{"a", "b", "c"},
		},
		{
			name: "empty fields preserved",
			line: "a,,c",
			want: []string{"a", "", "c"},
		},
		{
			name: "trailing delimiter yields empty field",
			line: "a,b,",
			want: []string{"a", "b", ""},
		},
		{
			name: "single field",
			line: "alone",
			want: []string{"alone"},
		},
		{
			name: "unterminated quote consumes rest of line",
			line: `a,"open,end`,
			want: []string{"a", "open,end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLine(tt.line, ','); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLine(%q) = %#v, want %#v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLine_TabDelimiter(t *testing.T) {
	got := ParseLine("a\tb\tc", '\t')
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLine(tab) = %#v, want %#v", got, want)
	}
}

func TestParse(t *testing.T) {
	rows := Parse("a,b\n1,2\n\n3,4\r\n", ',')
	want := [][]string{{"a", "b"}, {"1", "2"}, {"3", "4"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Parse() = %#v, want %#v", rows, want)
	}
}
