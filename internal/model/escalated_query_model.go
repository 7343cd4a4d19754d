package model

import (
	"time"

	"github.com/google/uuid"
)

type EscalatedQuery struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question       string     `gorm:"type:text;not null"`
	RequesterId    *uuid.UUID `gorm:"type:uuid;index"`
	RequesterEmail *string    `gorm:"type:text"`
	Answer         *string    `gorm:"type:text"`
	Answered       bool       `gorm:"not null;default:false;index"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	AnsweredAt     *time.Time
}

func (EscalatedQuery) TableName() string {
	return "escalated_queries"
}
