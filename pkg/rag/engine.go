package rag

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"course-assist-be/internal/constant"
	"course-assist-be/internal/pkg/logger"
	"course-assist-be/pkg/embedding"
	"course-assist-be/pkg/llm"
	"course-assist-be/pkg/rag/session"
	"course-assist-be/pkg/retry"
	"course-assist-be/pkg/vectorstore"
)

// ErrEmptyQuestion rejects whitespace-only input before any provider call.
var ErrEmptyQuestion = errors.New("question must not be empty")

// Status tells the caller whether the answer came from the model or from the
// escalation path.
type Status string

const (
	StatusAnswered   Status = "answered"
	StatusUnanswered Status = "unanswered"
)

// Result is the outcome of one resolved query.
type Result struct {
	Answer    string
	RawAnswer string
	Sources   []string
	SessionID string
	Status    Status
}

// EscalationSink receives queries the model refused to answer. Implementations
// persist them for human review.
type EscalationSink interface {
	CreateUnanswered(ctx context.Context, question string, requesterID *uuid.UUID, requesterEmail string) error
}

// HistorySink records successfully answered, attributed queries.
type HistorySink interface {
	RecordAnswered(ctx context.Context, requesterID uuid.UUID, question, answer string, sources []string) error
}

type Options struct {
	TopK           int
	Namespace      string
	SessionTimeout time.Duration
	MaxAttempts    uint
	BaseDelay      time.Duration
	CallTimeout    time.Duration
}

func (o *Options) applyDefaults() {
	if o.TopK <= 0 {
		o.TopK = 10
	}
	if o.Namespace == "" {
		o.Namespace = constant.NamespaceCourseMaterials
	}
	if o.SessionTimeout <= 0 {
		o.SessionTimeout = 30 * time.Minute
	}
	if o.MaxAttempts == 0 {
		o.MaxAttempts = 5
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = time.Second
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = 30 * time.Second
	}
}

// Engine resolves student queries: conversational intents answered directly,
// everything else through retrieval-grounded generation with escalation on
// refusal.
type Engine struct {
	registry    *session.Registry
	embedder    embedding.EmbeddingProvider
	index       vectorstore.VectorIndex
	llmProvider llm.LLMProvider
	escalations EscalationSink
	history     HistorySink
	log         logger.ILogger
	opts        Options
}

func NewEngine(
	registry *session.Registry,
	embedder embedding.EmbeddingProvider,
	index vectorstore.VectorIndex,
	llmProvider llm.LLMProvider,
	escalations EscalationSink,
	history HistorySink,
	log logger.ILogger,
	opts Options,
) *Engine {
	opts.applyDefaults()
	return &Engine{
		registry:    registry,
		embedder:    embedder,
		index:       index,
		llmProvider: llmProvider,
		escalations: escalations,
		history:     history,
		log:         log,
		opts:        opts,
	}
}

// Resolve runs one query through the full pipeline. requesterID is nil for
// anonymous callers; requesterEmail travels with escalations so a human
// answer can be routed back.
func (e *Engine) Resolve(ctx context.Context, question, sessionID string, requesterID *uuid.UUID, requesterEmail string) (*Result, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	// Expired sessions are swept lazily on each request rather than by a
	// background ticker.
	e.registry.Sweep(time.Now(), e.opts.SessionTimeout)
	e.registry.Touch(sessionID)

	// Conversational intents short-circuit the retrieval path entirely.
	if reply, ok := ClassifyIntent(question); ok {
		e.registry.AppendTurn(sessionID, constant.ChatMessageRoleUser, question)
		e.registry.AppendTurn(sessionID, constant.ChatMessageRoleModel, reply)
		return &Result{
			Answer:    FormatHTML(reply),
			RawAnswer: reply,
			SessionID: sessionID,
			Status:    StatusAnswered,
		}, nil
	}

	matches, err := e.retrieve(ctx, question)
	if err != nil {
		return nil, err
	}

	memory := e.registry.Memory(sessionID)
	prompt := BuildPrompt(matches, question)
	messages := BuildMessages(memory, prompt)

	answer, err := retry.Do(func() (string, error) {
		callCtx, cancel := context.WithTimeout(ctx, e.opts.CallTimeout)
		defer cancel()
		return e.llmProvider.Chat(callCtx, messages)
	}, e.opts.MaxAttempts, e.opts.BaseDelay)
	if err != nil {
		return nil, err
	}

	sources := sourceIDs(matches)

	if IsRefusal(answer) {
		// Escalation must not mask the outcome; a failed insert is logged
		// and the caller still gets the apology.
		if e.escalations != nil {
			if err := e.escalations.CreateUnanswered(ctx, question, requesterID, requesterEmail); err != nil {
				e.log.Error("Engine", "Failed to record unanswered query", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
		// The refused exchange stays out of session memory so it cannot
		// steer later answers.
		return &Result{
			Answer:    constant.ApologyMessage,
			RawAnswer: answer,
			SessionID: sessionID,
			Status:    StatusUnanswered,
		}, nil
	}

	if requesterID != nil && e.history != nil {
		if err := e.history.RecordAnswered(ctx, *requesterID, question, answer, sources); err != nil {
			e.log.Error("Engine", "Failed to record chat history", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	e.registry.AppendTurn(sessionID, constant.ChatMessageRoleUser, question)
	e.registry.AppendTurn(sessionID, constant.ChatMessageRoleModel, answer)

	return &Result{
		Answer:    FormatHTML(answer),
		RawAnswer: answer,
		Sources:   sources,
		SessionID: sessionID,
		Status:    StatusAnswered,
	}, nil
}

func (e *Engine) retrieve(ctx context.Context, question string) ([]vectorstore.Match, error) {
	res, err := retry.Do(func() (*embedding.EmbeddingResponse, error) {
		callCtx, cancel := context.WithTimeout(ctx, e.opts.CallTimeout)
		defer cancel()
		return e.embedder.Generate(callCtx, question, embedding.TaskTypeQuery)
	}, e.opts.MaxAttempts, e.opts.BaseDelay)
	if err != nil {
		return nil, err
	}
	return e.index.Query(ctx, res.Embedding.Values, e.opts.TopK, e.opts.Namespace)
}

// sourceIDs deduplicates match origins preserving rank order.
func sourceIDs(matches []vectorstore.Match) []string {
	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.SourceID == "" || seen[m.SourceID] {
			continue
		}
		seen[m.SourceID] = true
		out = append(out, m.SourceID)
	}
	return out
}
