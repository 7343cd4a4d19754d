package rag

import (
	"testing"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantReply string
		wantMatch bool
	}{
		{
			name:      "plain greeting",
			input:     "Hello",
			wantReply: "Hello! How can I help you today?",
			wantMatch: true,
		},
		{
			name:      "multi-word phrase inside longer sentence",
			input:     "good morning everyone, quick question",
			wantReply: "Hello! How can I help you today?",
			wantMatch: true,
		},
		{
			name:      "typo within similarity threshold",
			input:     "helo",
			wantReply: "Hello! How can I help you today?",
			wantMatch: true,
		},
		{
			name:      "single-token acknowledgment",
			input:     "ok",
			wantReply: "Is there anything specific you'd like to know?",
			wantMatch: true,
		},
		{
			name:      "thanks",
			input:     "thank you",
			wantReply: "You're welcome! Let me know if you need anything else.",
			wantMatch: true,
		},
		{
			name:      "well being phrase",
			input:     "how are you doing today",
			wantReply: "I'm functioning well, thank you! How can I assist you today?",
			wantMatch: true,
		},
		{
			name:      "farewell",
			input:     "Goodbye",
			wantReply: "Goodbye! Have a great day!",
			wantMatch: true,
		},
		{
			name:      "real question is not chatter",
			input:     "What is a binary search tree?",
			wantMatch: false,
		},
		{
			name:      "short pattern embedded in long question does not match",
			input:     "Is it ok to submit the assignment late?",
			wantMatch: false,
		},
		{
			name:      "empty input",
			input:     "   ",
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, matched := ClassifyIntent(tt.input)
			if matched != tt.wantMatch {
				t.Fatalf("ClassifyIntent(%q) matched = %v, want %v", tt.input, matched, tt.wantMatch)
			}
			if matched && reply != tt.wantReply {
				t.Errorf("ClassifyIntent(%q) reply = %q, want %q", tt.input, reply, tt.wantReply)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "hello", b: "hello", want: 1.0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0.0},
		{name: "both empty", a: "", b: "", want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.a, tt.b); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}

	// "helo" vs "hello" shares 4 characters of 9 total.
	got := Ratio("helo", "hello")
	if got <= similarityThreshold {
		t.Errorf("Ratio(helo, hello) = %v, want above %v", got, similarityThreshold)
	}
}
