package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"traderhub-be/internal/repository/unitofwork"
	"traderhub-be/pkg/audit"
	"traderhub-be/pkg/events"
	pkgNats "traderhub-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// system log rows are kept for 30 days
const systemLogRetention = 30 * 24 * time.Hour

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

type auditConsumerService struct {
	pubSub         *gochannel.GoChannel
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pkgNats.Publisher,
) IAuditConsumerService {
	return &auditConsumerService{
		pubSub:         pubSub,
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, audit.Topic)
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

func (cs *auditConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var record audit.Record
	if err := json.Unmarshal(msg.Payload, &record); err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit record: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	data := map[string]interface{}{
		"action":    record.Action,
		"level":     record.Level,
		"timestamp": record.Timestamp.Format(time.RFC3339),
	}
	if record.UserId != "" {
		data["user_id"] = record.UserId
	}
	for k, v := range record.Details {
		data[k] = v
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SystemLogRepository().Create(ctx, data, time.Now().Add(systemLogRetention)); err != nil {
		log.Printf("[ERROR] Failed to persist audit record %s: %v", record.Action, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	// Republish to NATS so other services can react. The record is already
	// persisted, so a bus failure only costs the fan-out, not the log.
	if cs.eventPublisher != nil {
		pubCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		event := events.BaseEvent{
			Type:       fmt.Sprintf("audit.%s", record.Action),
			Data:       data,
			OccurredAt: record.Timestamp,
		}
		if err := cs.eventPublisher.Publish(pubCtx, event); err != nil {
			log.Printf("[WARN] Failed to republish audit record %s: %v", record.Action, err)
		}
		cancel()
	}

	msg.Ack()
}
