package rag

import "strings"

// refusalPhrases are the fixed "no answer" signals a generated reply can
// carry. Any case-insensitive match routes the query to escalation.
var refusalPhrases = []string{
	"i do not know",
	"i don't know",
	"cannot find",
	"no information",
	"insufficient information",
	"the document does not contain",
	"no relevant information",
	"cannot answer",
	"unable to answer",
}

// IsRefusal reports whether a generated answer declines to answer.
func IsRefusal(answer string) bool {
	lowered := strings.ToLower(answer)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
