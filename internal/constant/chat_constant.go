package constant

const (
	ChatMessageRoleUser  = "user"
	ChatMessageRoleModel = "model"
)

// Index namespaces. Human-answered content is kept apart from the ingested
// corpus so provenance stays distinguishable.
const (
	NamespaceCourseMaterials = "course_materials"
	NamespaceHumanAnswered   = "human_answered"
)

// ApologyMessage is returned verbatim whenever a query is escalated.
const ApologyMessage = "I apologize, but I don't have enough information to answer this question accurately. Your query has been logged for manual review."

// PlaceholderChunk is indexed when a rebuild produces zero valid chunks, so
// retrieval never runs against an empty namespace.
const PlaceholderChunk = "This is a student query chatbot for academic assistance."

// AnswerPromptTemplate frames retrieved context and the question for the
// generation provider. Expects two %s verbs: context block, then question.
const AnswerPromptTemplate = `You are a knowledgeable academic assistant helping students with their queries. Use the following context to provide accurate, helpful answers.

INSTRUCTIONS:
- Answer based ONLY on the provided context
- If the context doesn't contain enough information, respond with exactly "I do not know."
- Provide clear, concise answers
- Be helpful and professional in your tone
- If multiple pieces of information are relevant, organize them clearly

Context: %s

Question: %s

Answer:`
