package service

import (
	"context"
	"strings"
	"time"

	"traderhub-be/internal/pkg/logger"
	"traderhub-be/internal/websocket"
	"traderhub-be/pkg/events"
	pkgNats "traderhub-be/pkg/nats"
)

// alertTitles maps audit actions to the alert shown on the admin desk.
// Actions not listed here stay off the websocket.
var alertTitles = map[string]string{
	"request_created":               "Nova solicitação",
	"withdrawal_request_created":    "Nova solicitação de saque",
	"second_chance_request_created": "Nova solicitação de segunda chance",
	"document_uploaded":             "Novo documento enviado",
}

// NotificationService relays audit events from NATS onto the websocket hub
// so the admin desk updates in real time, regardless of which instance
// handled the original request.
type NotificationService struct {
	subscriber *pkgNats.Subscriber
	hub        *websocket.Hub
	logger     logger.ILogger
}

func NewNotificationService(subscriber *pkgNats.Subscriber, hub *websocket.Hub, log logger.ILogger) *NotificationService {
	return &NotificationService{
		subscriber: subscriber,
		hub:        hub,
		logger:     log,
	}
}

// Start subscribes to the audit subjects with a durable consumer. Safe to
// call from a goroutine; it returns after the subscription is registered.
func (s *NotificationService) Start() {
	err := s.subscriber.Subscribe("events.audit.>", "admin-alert-worker", s.handleEvent)
	if err != nil {
		s.logger.Error("NotificationService", "Failed to subscribe to audit events", map[string]interface{}{"error": err.Error()})
	}
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// subject form: events.audit.<action>
	subject := event.EventType()
	action := subject[strings.LastIndex(subject, ".")+1:]

	title, ok := alertTitles[action]
	if !ok {
		return nil
	}

	data := event.Payload()
	requestId, _ := data["request_id"].(string)

	s.hub.Broadcast(websocket.Notification{
		Type:      "admin_alert",
		Title:     title,
		Message:   "Há um novo item aguardando análise.",
		RequestId: requestId,
		CreatedAt: time.Now(),
	})

	s.logger.Info("NotificationService", "Relayed audit event to websocket", map[string]interface{}{"action": action})
	return nil
}
