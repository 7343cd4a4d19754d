package rag

import "testing"

func TestIsRefusal(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "exact refusal", answer: "I do not know.", want: true},
		{name: "contraction", answer: "Sorry, I don't know that.", want: true},
		{name: "case insensitive", answer: "I DO NOT KNOW", want: true},
		{name: "embedded phrase", answer: "There is no information about that topic in the materials.", want: true},
		{name: "document does not contain", answer: "The document does not contain details on grading.", want: true},
		{name: "unable to answer", answer: "I am unable to answer this.", want: true},
		{name: "real answer", answer: "The capital of France is Paris.", want: false},
		{name: "answer mentioning knowledge", answer: "Knowing the basics helps a lot here.", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRefusal(tt.answer); got != tt.want {
				t.Errorf("IsRefusal(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}
