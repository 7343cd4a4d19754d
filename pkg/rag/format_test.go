package rag

import "testing"

func TestFormatHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "plain text untouched",
			input: "The deadline is Friday.",
			want:  "The deadline is Friday.",
		},
		{
			name:  "heading levels",
			input: "# Title\n## Section\n### Detail",
			want:  "<h1>Title</h1>\n<h2>Section</h2>\n<h3>Detail</h3>",
		},
		{
			name:  "bullet list",
			input: "* first\n* second",
			want:  "<ul>\n<li>first</li>\n<li>second</li>\n</ul>",
		},
		{
			name:  "numbered list",
			input: "1. one\n2. two",
			want:  "<ol>\n<li>one</li>\n<li>two</li>\n</ol>",
		},
		{
			name:  "bold before italic",
			input: "This is **important** and *subtle*.",
			want:  "This is <strong>important</strong> and <em>subtle</em>.",
		},
		{
			name:  "underscore emphasis",
			input: "__bold__ and _italic_",
			want:  "<strong>bold</strong> and <em>italic</em>",
		},
		{
			name:  "inline code",
			input: "Run `go test` to verify.",
			want:  "Run <code>go test</code> to verify.",
		},
		{
			name:  "blank line becomes break",
			input: "first paragraph\n\nsecond paragraph",
			want:  "first paragraph\n<br>\nsecond paragraph",
		},
		{
			name:  "list followed by text closes list",
			input: "- item\nafterwards",
			want:  "<ul>\n<li>item</li>\n</ul>\nafterwards",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatHTML(tt.input); got != tt.want {
				t.Errorf("FormatHTML(%q) =\n%q\nwant\n%q", tt.input, got, tt.want)
			}
		})
	}
}
