package entity

import (
	"time"

	"github.com/google/uuid"
)

type EscalatedQuery struct {
	Id             uuid.UUID
	Question       string
	RequesterId    *uuid.UUID
	RequesterEmail *string
	Answer         *string
	Answered       bool
	CreatedAt      time.Time
	AnsweredAt     *time.Time
}
