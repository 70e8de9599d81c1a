package jsondoc

import "testing"

func TestParse_PreservesMemberOrder(t *testing.T) {
	v, err := Parse(`{"zebra": 1, "apple": 2, "mango": 3}`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Kind != Object {
		t.Fatalf("Parse() kind = %v, want Object", v.Kind)
	}

	want := []string{"zebra", "apple", "mango"}
	if len(v.Members) != len(want) {
		t.Fatalf("got %d members, want %d", len(v.Members), len(want))
	}
	for i, m := range v.Members {
		if m.Key != want[i] {
			t.Errorf("member %d key = %q, want %q", i, m.Key, want[i])
		}
	}
}

func TestParse_Kinds(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{`null`, Null},
		{`true`, Bool},
		{`42`, Number},
		{`"hi"`, String},
		{`[1,2]`, Array},
		{`{"a":1}`, Object},
	}

	for _, tt := range tests {
		v, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.input, err)
			continue
		}
		if v.Kind != tt.want {
			t.Errorf("Parse(%q) kind = %v, want %v", tt.input, v.Kind, tt.want)
		}
	}
}

func TestParse_NumberKeepsSourceText(t *testing.T) {
	v, err := Parse(`1e3`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v.Number != "1e3" {
		t.Errorf("Number = %q, want %q", v.Number, "1e3")
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, input := range []string{`{`, `{"a":}`, `[1,`, ``, `{1: 2}`} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", input)
		}
	}
}

func TestParse_TrailingContent(t *testing.T) {
	for _, input := range []string{`{"a":1} junk`, `{"a":1} {"b":2}`, `1 2`, `[] []`} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", input)
		}
	}

	// Trailing whitespace is not trailing content.
	if _, err := Parse("{\"a\":1} \n"); err != nil {
		t.Errorf("Parse with trailing whitespace error = %v", err)
	}
}

func TestValue_JSON(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{"b": 1, "a": [true, null]}`, `{"b":1,"a":[true,null]}`},
		{`[1, "two", 3.5]`, `[1,"two",3.5]`},
		{`"quote \" inside"`, `"quote \" inside"`},
	}

	for _, tt := range tests {
		v, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tt.input, err)
		}
		if got := v.JSON(); got != tt.want {
			t.Errorf("JSON() = %q, want %q", got, tt.want)
		}
	}
}
