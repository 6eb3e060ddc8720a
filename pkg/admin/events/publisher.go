package events

import (
	"context"
	"time"

	"traderhub-be/internal/pkg/logger"
	pkgEvents "traderhub-be/pkg/events"
	pktNats "traderhub-be/pkg/nats"

	"github.com/google/uuid"
)

// Publisher abstracts event publishing for admin operations.
type Publisher interface {
	PublishAdminCreated(ctx context.Context, creatorId, newAdminId uuid.UUID, email string)
	PublishTraderUpdated(ctx context.Context, adminId, traderId uuid.UUID, fields []string)
	PublishTraderDeleted(ctx context.Context, adminId, traderId uuid.UUID)
}

// NatsPublisher implements Publisher on the NATS bus.
type NatsPublisher struct {
	publisher *pktNats.Publisher
	logger    logger.ILogger
}

func NewNatsPublisher(publisher *pktNats.Publisher, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}
	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("ADMIN", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsPublisher) PublishAdminCreated(ctx context.Context, creatorId, newAdminId uuid.UUID, email string) {
	p.publish(ctx, "ADMIN_CREATED", map[string]interface{}{
		"creator_id":   creatorId,
		"new_admin_id": newAdminId,
		"email":        email,
	})
}

func (p *NatsPublisher) PublishTraderUpdated(ctx context.Context, adminId, traderId uuid.UUID, fields []string) {
	p.publish(ctx, "TRADER_UPDATED", map[string]interface{}{
		"admin_id":  adminId,
		"trader_id": traderId,
		"fields":    fields,
	})
}

func (p *NatsPublisher) PublishTraderDeleted(ctx context.Context, adminId, traderId uuid.UUID) {
	p.publish(ctx, "TRADER_DELETED", map[string]interface{}{
		"admin_id":  adminId,
		"trader_id": traderId,
	})
}
