package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatHistory struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequesterId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Question    string         `gorm:"type:text;not null"`
	Answer      string         `gorm:"type:text;not null"`
	Sources     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (ChatHistory) TableName() string {
	return "chat_histories"
}
