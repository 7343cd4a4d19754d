package rag

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-assist-be/internal/constant"
	"course-assist-be/pkg/embedding"
	"course-assist-be/pkg/llm"
	"course-assist-be/pkg/rag/session"
	"course-assist-be/pkg/vectorstore"
)

// --- test doubles ---

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubEmbedder struct {
	calls int
}

func (s *stubEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	s.calls++
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{
			Values: []float32{0.1, 0.2, 0.3},
		},
	}, nil
}

type stubIndex struct {
	queries int
	matches []vectorstore.Match
}

func (s *stubIndex) Upsert(ctx context.Context, records []vectorstore.Record, namespace string) error {
	return nil
}

func (s *stubIndex) Query(ctx context.Context, vector []float32, k int, namespace string) ([]vectorstore.Match, error) {
	s.queries++
	return s.matches, nil
}

func (s *stubIndex) Stats(ctx context.Context, namespace string) (int64, error) {
	return int64(len(s.matches)), nil
}

type stubLLM struct {
	calls    int
	failures int // fail the first N calls with a retryable error
	answer   string
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	s.calls++
	if s.calls <= s.failures {
		return "", errors.New("429 too many requests")
	}
	return s.answer, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

type stubEscalations struct {
	questions []string
	emails    []string
	err       error
}

func (s *stubEscalations) CreateUnanswered(ctx context.Context, question string, requesterID *uuid.UUID, requesterEmail string) error {
	s.questions = append(s.questions, question)
	s.emails = append(s.emails, requesterEmail)
	return s.err
}

type stubHistory struct {
	records []string
	sources [][]string
}

func (s *stubHistory) RecordAnswered(ctx context.Context, requesterID uuid.UUID, question, answer string, sources []string) error {
	s.records = append(s.records, question)
	s.sources = append(s.sources, sources)
	return nil
}

type engineFixture struct {
	engine      *Engine
	registry    *session.Registry
	embedder    *stubEmbedder
	index       *stubIndex
	llm         *stubLLM
	escalations *stubEscalations
	history     *stubHistory
}

func newEngineFixture(answer string, failures int) *engineFixture {
	f := &engineFixture{
		registry: session.NewRegistry(),
		embedder: &stubEmbedder{},
		index: &stubIndex{
			matches: []vectorstore.Match{
				{Text: "Paris is the capital of France.", SourceID: "geography.pdf", SequenceIndex: 0, Score: 0.92},
				{Text: "France is in Europe.", SourceID: "geography.pdf", SequenceIndex: 1, Score: 0.81},
			},
		},
		llm:         &stubLLM{answer: answer, failures: failures},
		escalations: &stubEscalations{},
		history:     &stubHistory{},
	}
	f.engine = NewEngine(
		f.registry,
		f.embedder,
		f.index,
		f.llm,
		f.escalations,
		f.history,
		nopLogger{},
		Options{
			TopK:        2,
			MaxAttempts: 5,
			BaseDelay:   time.Millisecond,
			CallTimeout: time.Second,
		},
	)
	return f
}

// --- tests ---

func TestResolveRejectsEmptyQuestion(t *testing.T) {
	f := newEngineFixture("irrelevant", 0)

	_, err := f.engine.Resolve(context.Background(), "   ", "", nil, "")
	assert.ErrorIs(t, err, ErrEmptyQuestion)
	assert.Zero(t, f.embedder.calls)
	assert.Zero(t, f.llm.calls)
}

func TestResolveAnswersChatterWithoutRetrieval(t *testing.T) {
	f := newEngineFixture("irrelevant", 0)

	res, err := f.engine.Resolve(context.Background(), "Hello", "", nil, "")
	require.NoError(t, err)

	assert.Equal(t, StatusAnswered, res.Status)
	assert.Equal(t, "Hello! How can I help you today?", res.RawAnswer)
	assert.NotEmpty(t, res.SessionID, "server should mint a session id")
	assert.Zero(t, f.embedder.calls, "chatter must not hit the embedder")
	assert.Zero(t, f.index.queries, "chatter must not hit the index")
	assert.Zero(t, f.llm.calls, "chatter must not hit the model")

	memory := f.registry.Memory(res.SessionID)
	require.Len(t, memory, 2)
	assert.Equal(t, constant.ChatMessageRoleUser, memory[0].Role)
	assert.Equal(t, constant.ChatMessageRoleModel, memory[1].Role)
}

func TestResolveEscalatesOnRefusal(t *testing.T) {
	f := newEngineFixture("I do not know.", 0)
	requesterID := uuid.New()

	res, err := f.engine.Resolve(context.Background(), "What is the meaning of life?", "", &requesterID, "student@example.edu")
	require.NoError(t, err)

	assert.Equal(t, StatusUnanswered, res.Status)
	assert.Equal(t, constant.ApologyMessage, res.Answer)
	assert.Equal(t, "I do not know.", res.RawAnswer)

	require.Len(t, f.escalations.questions, 1)
	assert.Equal(t, "What is the meaning of life?", f.escalations.questions[0])
	assert.Equal(t, "student@example.edu", f.escalations.emails[0])

	assert.Empty(t, f.history.records, "refusals must not be recorded as history")
	assert.Empty(t, f.registry.Memory(res.SessionID), "refused exchange must stay out of session memory")
}

func TestResolveEscalationFailureDoesNotMaskOutcome(t *testing.T) {
	f := newEngineFixture("I do not know.", 0)
	f.escalations.err = errors.New("db down")

	res, err := f.engine.Resolve(context.Background(), "What is quantum gravity?", "", nil, "")
	require.NoError(t, err)
	assert.Equal(t, StatusUnanswered, res.Status)
	assert.Equal(t, constant.ApologyMessage, res.Answer)
}

func TestResolveRecordsAttributedSuccess(t *testing.T) {
	f := newEngineFixture("The capital of France is **Paris**.", 0)
	requesterID := uuid.New()

	res, err := f.engine.Resolve(context.Background(), "What is the capital of France?", "sess-1", &requesterID, "")
	require.NoError(t, err)

	assert.Equal(t, StatusAnswered, res.Status)
	assert.Equal(t, "sess-1", res.SessionID)
	assert.Contains(t, res.Answer, "<strong>Paris</strong>")
	assert.Equal(t, []string{"geography.pdf"}, res.Sources, "duplicate source ids collapse")

	require.Len(t, f.history.records, 1)
	assert.Equal(t, "What is the capital of France?", f.history.records[0])
	assert.Equal(t, []string{"geography.pdf"}, f.history.sources[0])

	memory := f.registry.Memory("sess-1")
	require.Len(t, memory, 2)
	assert.Equal(t, "The capital of France is **Paris**.", memory[1].Text, "memory keeps the raw answer")
}

func TestResolveAnonymousSuccessSkipsHistory(t *testing.T) {
	f := newEngineFixture("Paris.", 0)

	res, err := f.engine.Resolve(context.Background(), "What is the capital of France?", "", nil, "")
	require.NoError(t, err)

	assert.Equal(t, StatusAnswered, res.Status)
	assert.Empty(t, f.history.records)
}

func TestResolveRetriesTransientModelFailures(t *testing.T) {
	f := newEngineFixture("Paris.", 2)

	res, err := f.engine.Resolve(context.Background(), "What is the capital of France?", "", nil, "")
	require.NoError(t, err)
	assert.Equal(t, StatusAnswered, res.Status)
	assert.Equal(t, 3, f.llm.calls, "two retryable failures then success")
}

func TestResolveGivesUpAfterMaxAttempts(t *testing.T) {
	f := newEngineFixture("never reached", 100)
	f.engine.opts.MaxAttempts = 2

	_, err := f.engine.Resolve(context.Background(), "What is the capital of France?", "", nil, "")
	require.Error(t, err)
	assert.Equal(t, 2, f.llm.calls)
	assert.Contains(t, strings.ToLower(err.Error()), "too many requests")
}
