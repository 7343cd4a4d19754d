package mapper

import (
	"course-assist-be/internal/entity"
	"course-assist-be/internal/model"
)

type EscalatedQueryMapper struct{}

func NewEscalatedQueryMapper() *EscalatedQueryMapper {
	return &EscalatedQueryMapper{}
}

func (m *EscalatedQueryMapper) ToEntity(e *model.EscalatedQuery) *entity.EscalatedQuery {
	if e == nil {
		return nil
	}
	return &entity.EscalatedQuery{
		Id:             e.Id,
		Question:       e.Question,
		RequesterId:    e.RequesterId,
		RequesterEmail: e.RequesterEmail,
		Answer:         e.Answer,
		Answered:       e.Answered,
		CreatedAt:      e.CreatedAt,
		AnsweredAt:     e.AnsweredAt,
	}
}

func (m *EscalatedQueryMapper) ToModel(e *entity.EscalatedQuery) *model.EscalatedQuery {
	if e == nil {
		return nil
	}
	return &model.EscalatedQuery{
		Id:             e.Id,
		Question:       e.Question,
		RequesterId:    e.RequesterId,
		RequesterEmail: e.RequesterEmail,
		Answer:         e.Answer,
		Answered:       e.Answered,
		CreatedAt:      e.CreatedAt,
		AnsweredAt:     e.AnsweredAt,
	}
}

func (m *EscalatedQueryMapper) ToEntities(queries []*model.EscalatedQuery) []*entity.EscalatedQuery {
	entities := make([]*entity.EscalatedQuery, len(queries))
	for i, q := range queries {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
