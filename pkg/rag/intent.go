package rag

import "strings"

// similarityThreshold is the minimum Gestalt ratio for a short input to be
// treated as a near-miss of a chatter pattern (typos like "helo").
const similarityThreshold = 0.85

type intentCategory struct {
	name     string
	patterns []string
	reply    string
}

// intentCategories is the static table of social/general chatter. Keeping it
// as data (not scattered literals) makes the matcher a pure, testable
// function over normalized text.
var intentCategories = []intentCategory{
	{
		name:     "greetings",
		patterns: []string{"hello", "hi", "hey", "greetings", "good morning", "good afternoon", "good evening"},
		reply:    "Hello! How can I help you today?",
	},
	{
		name:     "farewell",
		patterns: []string{"bye", "goodbye", "see you", "good night"},
		reply:    "Goodbye! Have a great day!",
	},
	{
		name:     "thanks",
		patterns: []string{"thanks", "thank you", "appreciate it", "thx"},
		reply:    "You're welcome! Let me know if you need anything else.",
	},
	{
		name:     "acknowledgment",
		patterns: []string{"nice", "ok", "okay", "great", "good", "understood", "alright"},
		reply:    "Is there anything specific you'd like to know?",
	},
	{
		name:     "well_being",
		patterns: []string{"how are you", "how do you do", "how's it going"},
		reply:    "I'm functioning well, thank you! How can I assist you today?",
	},
}

// ClassifyIntent decides whether the input is general chatter and returns the
// canned reply for it. A false result signals the caller to proceed with
// retrieval. Matching policy, first match wins:
//
//  1. Substring containment of a multi-word phrase in the lower-cased input.
//  2. For inputs of at most 3 tokens, whole-input edit similarity above the
//     threshold against each pattern.
//  3. Strict whole-word equality for single-token inputs.
//
// Single-word patterns never match by substring, so "ok" inside a real
// question does not short-circuit retrieval.
func ClassifyIntent(text string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return "", false
	}
	tokens := strings.Fields(normalized)

	for _, cat := range intentCategories {
		for _, pattern := range cat.patterns {
			if strings.Contains(pattern, " ") && strings.Contains(normalized, pattern) {
				return cat.reply, true
			}
		}
	}

	if len(tokens) <= 3 {
		for _, cat := range intentCategories {
			for _, pattern := range cat.patterns {
				if Ratio(normalized, pattern) > similarityThreshold {
					return cat.reply, true
				}
			}
		}
	}

	if len(tokens) == 1 {
		for _, cat := range intentCategories {
			for _, pattern := range cat.patterns {
				if tokens[0] == pattern {
					return cat.reply, true
				}
			}
		}
	}

	return "", false
}
