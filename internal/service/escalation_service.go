package service

import (
	"context"
	"encoding/json"
	"time"

	"course-assist-be/internal/dto"
	"course-assist-be/internal/entity"
	"course-assist-be/internal/pkg/logger"
	"course-assist-be/internal/pkg/mailer"
	"course-assist-be/internal/repository/specification"
	"course-assist-be/internal/repository/unitofwork"
	"course-assist-be/pkg/events"
	"course-assist-be/pkg/nats"
)

type IEscalationService interface {
	List(ctx context.Context, unansweredOnly bool) ([]*dto.EscalatedQueryResponse, error)
	Answer(ctx context.Context, req *dto.AnswerQueryRequest) (*dto.EscalatedQueryResponse, error)
}

type escalationService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	emailService     mailer.IEmailService
	eventPublisher   *nats.Publisher
	log              logger.ILogger
}

func NewEscalationService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	emailService mailer.IEmailService,
	eventPublisher *nats.Publisher,
	log logger.ILogger,
) IEscalationService {
	return &escalationService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		emailService:     emailService,
		eventPublisher:   eventPublisher,
		log:              log,
	}
}

func (s *escalationService) List(ctx context.Context, unansweredOnly bool) ([]*dto.EscalatedQueryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if unansweredOnly {
		specs = append(specs, specification.UnansweredOnly{})
	}

	queries, err := uow.EscalatedQueryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.EscalatedQueryResponse, len(queries))
	for i, q := range queries {
		result[i] = toEscalatedQueryResponse(q)
	}
	return result, nil
}

// Answer records the human answer for an escalated query. The answered flag
// flips at most once; a second admin hitting the same query gets
// ErrAlreadyAnswered. Side effects after the commit (re-ingestion, email,
// bus event) are best effort and never undo the persisted answer.
func (s *escalationService) Answer(ctx context.Context, req *dto.AnswerQueryRequest) (*dto.EscalatedQueryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	repo := uow.EscalatedQueryRepository()

	query, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if query == nil {
		uow.Rollback()
		return nil, ErrQueryNotFound
	}

	answeredAt := time.Now()
	updated, err := repo.MarkAnswered(ctx, req.Id, req.Answer, answeredAt)
	if err != nil {
		uow.Rollback()
		return nil, err
	}
	if !updated {
		uow.Rollback()
		return nil, ErrAlreadyAnswered
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	query.Answer = &req.Answer
	query.Answered = true
	query.AnsweredAt = &answeredAt

	s.dispatchAnswered(ctx, query)

	return toEscalatedQueryResponse(query), nil
}

// dispatchAnswered fans the answered pair out to the re-ingestion worker, the
// requester's inbox, and the event bus. Each leg fails independently.
func (s *escalationService) dispatchAnswered(ctx context.Context, query *entity.EscalatedQuery) {
	payload, err := json.Marshal(dto.EscalationAnsweredMessage{
		Id:       query.Id,
		Question: query.Question,
		Answer:   *query.Answer,
	})
	if err == nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.log.Error("Escalation", "Failed to publish answered query for re-ingestion", map[string]interface{}{
				"query_id": query.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	if query.RequesterEmail != nil && *query.RequesterEmail != "" {
		if err := s.emailService.SendQueryAnswered(*query.RequesterEmail, query.Question, *query.Answer); err != nil {
			s.log.Error("Escalation", "Failed to send answer notification", map[string]interface{}{
				"query_id": query.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.NewEscalationAnswered(query.Id, query.Question, *query.Answer)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Error("Escalation", "Failed to publish answered event", map[string]interface{}{
				"query_id": query.Id.String(),
				"error":    err.Error(),
			})
		}
	}
}

func toEscalatedQueryResponse(q *entity.EscalatedQuery) *dto.EscalatedQueryResponse {
	return &dto.EscalatedQueryResponse{
		Id:             q.Id,
		Question:       q.Question,
		RequesterId:    q.RequesterId,
		RequesterEmail: q.RequesterEmail,
		Answer:         q.Answer,
		Answered:       q.Answered,
		CreatedAt:      q.CreatedAt,
		AnsweredAt:     q.AnsweredAt,
	}
}
