package websocket

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userId := uuid.New()
	client := &Client{UserID: userId, Send: make(chan []byte, 1)}

	hub.register <- client
	assert.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[userId]) == 1
	}, time.Second, 5*time.Millisecond)

	hub.unregister <- client
	assert.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		_, ok := hub.clients[userId]
		return !ok
	}, time.Second, 5*time.Millisecond)

	// Send must be closed exactly once by the unregister branch.
	_, open := <-client.Send
	assert.False(t, open)
}

func TestHubDropsSlowClientWithoutPanic(t *testing.T) {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()

	userId := uuid.New()
	slow := &Client{UserID: userId, Send: make(chan []byte, 1)}
	hub.register <- slow

	assert.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[userId]) == 1
	}, time.Second, 5*time.Millisecond)

	// First delivery fills the buffer, the next two find it full. The
	// duplicate drop must not close Send twice or deadlock the Run loop.
	hub.Send(userId, Notification{Type: "admin_alert", Title: "a"})
	hub.Send(userId, Notification{Type: "admin_alert", Title: "b"})
	hub.Send(userId, Notification{Type: "admin_alert", Title: "c"})

	assert.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		_, ok := hub.clients[userId]
		return !ok
	}, time.Second, 5*time.Millisecond)

	// A later broadcast must still be serviced, proving Run is alive.
	other := &Client{UserID: uuid.New(), Send: make(chan []byte, 4)}
	hub.register <- other
	assert.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		return len(hub.clients[other.UserID]) == 1
	}, time.Second, 5*time.Millisecond)

	hub.Broadcast(Notification{Type: "system_broadcast", Title: "d"})
	select {
	case msg := <-other.Send:
		assert.Contains(t, string(msg), "system_broadcast")
	case <-time.After(time.Second):
		t.Fatal("broadcast never delivered")
	}
}
