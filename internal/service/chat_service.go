package service

import (
	"context"

	"github.com/google/uuid"

	"course-assist-be/internal/dto"
	"course-assist-be/internal/repository/specification"
	"course-assist-be/internal/repository/unitofwork"
	"course-assist-be/pkg/rag"
)

type IChatService interface {
	Ask(ctx context.Context, requesterID *uuid.UUID, requesterEmail string, req *dto.AskRequest) (*dto.AskResponse, error)
	History(ctx context.Context, requesterID uuid.UUID) ([]*dto.ChatHistoryResponse, error)
}

type chatService struct {
	engine     *rag.Engine
	uowFactory unitofwork.RepositoryFactory
}

func NewChatService(engine *rag.Engine, uowFactory unitofwork.RepositoryFactory) IChatService {
	return &chatService{
		engine:     engine,
		uowFactory: uowFactory,
	}
}

func (s *chatService) Ask(ctx context.Context, requesterID *uuid.UUID, requesterEmail string, req *dto.AskRequest) (*dto.AskResponse, error) {
	result, err := s.engine.Resolve(ctx, req.Question, req.SessionId, requesterID, requesterEmail)
	if err != nil {
		return nil, err
	}

	return &dto.AskResponse{
		Answer:    result.Answer,
		RawAnswer: result.RawAnswer,
		Sources:   result.Sources,
		Status:    string(result.Status),
		SessionId: result.SessionID,
	}, nil
}

func (s *chatService) History(ctx context.Context, requesterID uuid.UUID) ([]*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	histories, err := uow.ChatHistoryRepository().FindAll(ctx,
		specification.ByRequester{RequesterID: requesterID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ChatHistoryResponse, len(histories))
	for i, h := range histories {
		result[i] = &dto.ChatHistoryResponse{
			Id:        h.Id,
			Question:  h.Question,
			Answer:    h.Answer,
			Sources:   h.Sources,
			CreatedAt: h.CreatedAt,
		}
	}
	return result, nil
}
