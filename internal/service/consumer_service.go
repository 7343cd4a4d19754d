package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"course-assist-be/internal/constant"
	"course-assist-be/internal/dto"
	"course-assist-be/pkg/ingest"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService folds human-answered escalations back into the vector
// index, keeping them in their own namespace so provenance stays visible.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	pipeline  *ingest.Pipeline
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	pipeline *ingest.Pipeline,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		pipeline:  pipeline,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.EscalationAnsweredMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal answered message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Re-ingesting answered query %s", payload.Id)

	// Indexing failure must not block the queue; the answer is already
	// persisted and an operator can trigger a rebuild later.
	if ok := cs.pipeline.Append(ctx, payload.Question, payload.Answer, constant.NamespaceHumanAnswered); !ok {
		log.Printf("[WARN] Answered query %s was not indexed", payload.Id)
	}
	msg.Ack()
}
