package dto

import (
	"time"

	"github.com/google/uuid"
)

type AskRequest struct {
	Question  string `json:"question" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
}

type AskResponse struct {
	Answer    string   `json:"answer"`
	RawAnswer string   `json:"raw_answer,omitempty"`
	Sources   []string `json:"sources,omitempty"`
	Status    string   `json:"status"`
	SessionId string   `json:"session_id"`
}

type ChatHistoryResponse struct {
	Id        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Sources   []string  `json:"sources,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
