package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeChunk(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOk bool
	}{
		{
			name:   "plain ascii untouched",
			input:  "The exam covers chapters 1 through 5.",
			want:   "The exam covers chapters 1 through 5.",
			wantOk: true,
		},
		{
			name:   "whitespace collapsed",
			input:  "too   many\t\tspaces\n\nhere",
			want:   "too many spaces here",
			wantOk: true,
		},
		{
			name:   "non-ascii becomes space",
			input:  "café time",
			want:   "caf time",
			wantOk: true,
		},
		{
			name:   "only non-ascii is dropped",
			input:  "日本語のみ",
			wantOk: false,
		},
		{
			name:   "empty input",
			input:  "",
			wantOk: false,
		},
		{
			name:   "whitespace only",
			input:  "   \n\t ",
			wantOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SanitizeChunk(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
