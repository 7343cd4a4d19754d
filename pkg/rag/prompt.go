package rag

import (
	"fmt"
	"strings"

	"course-assist-be/internal/constant"
	"course-assist-be/pkg/llm"
	"course-assist-be/pkg/rag/session"
	"course-assist-be/pkg/vectorstore"
)

// BuildPrompt assembles the grounded generation prompt from retrieved
// matches. Matches are joined in rank order; the template instructs the
// model to refuse when the context is insufficient.
func BuildPrompt(matches []vectorstore.Match, question string) string {
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, m.Text)
	}
	contextBlock := strings.Join(parts, "\n\n")
	return fmt.Sprintf(constant.AnswerPromptTemplate, contextBlock, question)
}

// BuildMessages converts session memory plus the grounded prompt into the
// chat shape the generation provider expects. The prompt carries the
// retrieved context; memory supplies conversational continuity only.
func BuildMessages(memory []session.Turn, prompt string) []llm.Message {
	messages := make([]llm.Message, 0, len(memory)+1)
	for _, turn := range memory {
		messages = append(messages, llm.Message{
			Role:    turn.Role,
			Content: turn.Text,
		})
	}
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: prompt,
	})
	return messages
}
