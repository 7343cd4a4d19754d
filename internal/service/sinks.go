package service

import (
	"context"

	"github.com/google/uuid"

	"course-assist-be/internal/entity"
	"course-assist-be/internal/repository/unitofwork"
	"course-assist-be/pkg/rag"
)

// escalationSink persists refused queries for human review.
type escalationSink struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEscalationSink(uowFactory unitofwork.RepositoryFactory) rag.EscalationSink {
	return &escalationSink{uowFactory: uowFactory}
}

func (s *escalationSink) CreateUnanswered(ctx context.Context, question string, requesterID *uuid.UUID, requesterEmail string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	query := &entity.EscalatedQuery{
		Question:    question,
		RequesterId: requesterID,
	}
	if requesterEmail != "" {
		query.RequesterEmail = &requesterEmail
	}
	return uow.EscalatedQueryRepository().Create(ctx, query)
}

// historySink records answered, attributed exchanges.
type historySink struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewHistorySink(uowFactory unitofwork.RepositoryFactory) rag.HistorySink {
	return &historySink{uowFactory: uowFactory}
}

func (s *historySink) RecordAnswered(ctx context.Context, requesterID uuid.UUID, question, answer string, sources []string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	return uow.ChatHistoryRepository().Create(ctx, &entity.ChatHistory{
		RequesterId: requesterID,
		Question:    question,
		Answer:      answer,
		Sources:     sources,
	})
}
