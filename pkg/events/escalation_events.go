package events

import (
	"time"

	"github.com/google/uuid"
)

const EscalationAnsweredType = "ESCALATION_ANSWERED"

// NewEscalationAnswered is emitted after an admin answers an escalated query.
// External consumers (analytics, audit) subscribe to it on the bus; the
// in-process re-ingestion worker has its own channel.
func NewEscalationAnswered(id uuid.UUID, question, answer string) Event {
	return BaseEvent{
		Type: EscalationAnsweredType,
		Data: map[string]interface{}{
			"id":       id.String(),
			"question": question,
			"answer":   answer,
		},
		OccurredAt: time.Now(),
	}
}
