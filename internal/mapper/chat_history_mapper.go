package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"course-assist-be/internal/entity"
	"course-assist-be/internal/model"
)

type ChatHistoryMapper struct{}

func NewChatHistoryMapper() *ChatHistoryMapper {
	return &ChatHistoryMapper{}
}

func (m *ChatHistoryMapper) ToEntity(e *model.ChatHistory) *entity.ChatHistory {
	if e == nil {
		return nil
	}

	var sources []string
	if len(e.Sources) > 0 {
		// Malformed rows degrade to no sources rather than failing the read.
		_ = json.Unmarshal(e.Sources, &sources)
	}

	return &entity.ChatHistory{
		Id:          e.Id,
		RequesterId: e.RequesterId,
		Question:    e.Question,
		Answer:      e.Answer,
		Sources:     sources,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ChatHistoryMapper) ToModel(e *entity.ChatHistory) *model.ChatHistory {
	if e == nil {
		return nil
	}

	var sources datatypes.JSON
	if len(e.Sources) > 0 {
		raw, err := json.Marshal(e.Sources)
		if err == nil {
			sources = raw
		}
	}

	return &model.ChatHistory{
		Id:          e.Id,
		RequesterId: e.RequesterId,
		Question:    e.Question,
		Answer:      e.Answer,
		Sources:     sources,
		CreatedAt:   e.CreatedAt,
	}
}

func (m *ChatHistoryMapper) ToEntities(histories []*model.ChatHistory) []*entity.ChatHistory {
	entities := make([]*entity.ChatHistory, len(histories))
	for i, h := range histories {
		entities[i] = m.ToEntity(h)
	}
	return entities
}
