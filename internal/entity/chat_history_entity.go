package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatHistory struct {
	Id          uuid.UUID
	RequesterId uuid.UUID
	Question    string
	Answer      string
	Sources     []string
	CreatedAt   time.Time
}
