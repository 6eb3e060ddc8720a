// Package audit publishes activity records onto the in-process bus. A
// consumer persists them as system log rows and republishes them to NATS.
// Publishing is fire-and-forget: an audit failure never fails the operation
// being audited.
package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Topic is the in-process bus topic audit records flow through.
const Topic = "audit.records"

// Record is one audit payload as it is persisted and republished.
type Record struct {
	Action    string                 `json:"action"`
	Level     string                 `json:"level"`
	UserId    string                 `json:"user_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type Recorder struct {
	pubSub *gochannel.GoChannel
}

func NewRecorder(pubSub *gochannel.GoChannel) *Recorder {
	return &Recorder{pubSub: pubSub}
}

func (r *Recorder) publish(action, level string, userId string, details map[string]interface{}) {
	rec := Record{
		Action:    action,
		Level:     level,
		UserId:    userId,
		Details:   details,
		Timestamp: time.Now(),
	}
	payload, err := json.Marshal(rec)
	if err != nil {
		log.Printf("[WARN] audit: failed to marshal record %s: %v", action, err)
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := r.pubSub.Publish(Topic, msg); err != nil {
		log.Printf("[WARN] audit: failed to publish record %s: %v", action, err)
	}
}

func (r *Recorder) LogWithdrawalRequest(userId uuid.UUID, requestId uuid.UUID, amount *float64) {
	details := map[string]interface{}{"request_id": requestId.String()}
	if amount != nil {
		details["amount"] = *amount
	}
	r.publish("withdrawal_request_created", "info", userId.String(), details)
}

func (r *Recorder) LogSecondChanceRequest(userId uuid.UUID, requestId uuid.UUID, acquiredPlanId *uuid.UUID) {
	details := map[string]interface{}{"request_id": requestId.String()}
	if acquiredPlanId != nil {
		details["acquired_plan_id"] = acquiredPlanId.String()
	}
	r.publish("second_chance_request_created", "info", userId.String(), details)
}

func (r *Recorder) LogRequestCreated(userId uuid.UUID, requestId uuid.UUID, requestType string) {
	r.publish("request_created", "info", userId.String(), map[string]interface{}{
		"request_id": requestId.String(),
		"type":       requestType,
	})
}

func (r *Recorder) LogAdminResponse(adminId uuid.UUID, requestId uuid.UUID, status string) {
	r.publish("request_answered", "info", adminId.String(), map[string]interface{}{
		"request_id": requestId.String(),
		"status":     status,
	})
}

func (r *Recorder) LogDocumentUpload(userId uuid.UUID, documentId uuid.UUID, kind string) {
	r.publish("document_uploaded", "info", userId.String(), map[string]interface{}{
		"document_id": documentId.String(),
		"kind":        kind,
	})
}

func (r *Recorder) LogDocumentReview(adminId uuid.UUID, documentId uuid.UUID, status string) {
	r.publish("document_reviewed", "info", adminId.String(), map[string]interface{}{
		"document_id": documentId.String(),
		"status":      status,
	})
}

func (r *Recorder) LogPlanAssigned(adminId uuid.UUID, clientId uuid.UUID, walletId string) {
	r.publish("plan_assigned", "info", adminId.String(), map[string]interface{}{
		"client_id": clientId.String(),
		"wallet_id": walletId,
	})
}

func (r *Recorder) LogAdminCreated(creatorId uuid.UUID, newAdminId uuid.UUID, email string) {
	r.publish("admin_created", "warn", creatorId.String(), map[string]interface{}{
		"new_admin_id": newAdminId.String(),
		"email":        email,
	})
}

func (r *Recorder) LogTraderDeleted(adminId uuid.UUID, traderId uuid.UUID) {
	r.publish("trader_deleted", "warn", adminId.String(), map[string]interface{}{
		"trader_id": traderId.String(),
	})
}

func (r *Recorder) LogConfigChanged(adminId uuid.UUID, key string) {
	r.publish("config_changed", "info", adminId.String(), map[string]interface{}{
		"key": key,
	})
}

func (r *Recorder) LogBackupExported(adminId uuid.UUID, profileCount, planCount, configCount int) {
	r.publish("backup_exported", "warn", adminId.String(), map[string]interface{}{
		"profile_count": profileCount,
		"plan_count":    planCount,
		"config_count":  configCount,
	})
}

func (r *Recorder) LogLogin(userId uuid.UUID, role string) {
	r.publish("login", "info", userId.String(), map[string]interface{}{
		"role": role,
	})
}

// AttachmentResolved satisfies the storage recorder hook.
func (r *Recorder) AttachmentResolved(ctx context.Context, path, kind, outcome string, took time.Duration) {
	r.publish("attachment_resolved", "info", "", map[string]interface{}{
		"path":        path,
		"kind":        kind,
		"outcome":     outcome,
		"duration_ms": took.Milliseconds(),
	})
}
