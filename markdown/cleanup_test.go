package markdown

import "testing"

func TestCleanup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses runs of newlines to three",
			input: "a\n\n\n\n\nb",
			want:  "a\n\n\nb\n",
		},
		{
			name:  "blank line inserted before heading",
			input: "intro text\n## Section\nbody",
			want:  "intro text\n\n## Section\n\nbody\n",
		},
		{
			name:  "blank line inserted after heading",
			input: "# Title\nbody text",
			want:  "# Title\n\nbody text\n",
		},
		{
			name:  "heading already separated is untouched",
			input: "text\n\n# Title\n\nbody",
			want:  "text\n\n# Title\n\nbody\n",
		},
		{
			name:  "trailing whitespace stripped",
			input: "line one   \nline two\t",
			want:  "line one\nline two\n",
		},
		{
			name:  "space inserted after sentence punctuation",
			input: "First sentence.Second sentence",
			want:  "First sentence. Second sentence\n",
		},
		{
			name:  "space inserted after comma",
			input: "one,two",
			want:  "one, two\n",
		},
		{
			name:  "lowercase after period untouched",
			input: "file.txt",
			want:  "file.txt\n",
		},
		{
			name:  "windows line endings normalized",
			input: "a\r\nb\r\n",
			want:  "a\nb\n",
		},
		{
			name:  "exactly one trailing newline",
			input: "content\n\n\n",
			want:  "content\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cleanup(tt.input); got != tt.want {
				t.Errorf("Cleanup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanup_Idempotent(t *testing.T) {
	inputs := []string{
		"a\n\n\n\n\nb",
		"intro\n# One\n## Two\nbody",
		"First.Second,third",
		"# Title\n\nparagraph with trailing spaces   \n\n- list item\n",
	}

	for _, input := range inputs {
		once := Cleanup(input)
		twice := Cleanup(once)
		if once != twice {
			t.Errorf("Cleanup not idempotent for %q:\nfirst:  %q\nsecond: %q", input, once, twice)
		}
	}
}

func TestEscapeCell(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"a|b", `a\|b`},
		{"line\nbreak", "line break"},
		{"cr\rbreak", "cr break"},
	}

	for _, tt := range tests {
		if got := EscapeCell(tt.input); got != tt.want {
			t.Errorf("EscapeCell(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTable(t *testing.T) {
	got := Table([]string{"a", "b", "c"}, [][]string{
		{"1", "2", "3"},
		{"4", "5"},
		{"6", "7", "8", "9"},
	})
	want := "| a | b | c |\n" +
		"| --- | --- | --- |\n" +
		"| 1 | 2 | 3 |\n" +
		"| 4 | 5 |  |\n" +
		"| 6 | 7 | 8 |\n"
	if got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}
}

func TestTable_EmptyHeader(t *testing.T) {
	if got := Table(nil, nil); got != "" {
		t.Errorf("Table(nil, nil) = %q, want empty", got)
	}
}
