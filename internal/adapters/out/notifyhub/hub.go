// Package notifyhub pushes order notifications to connected staff sessions.
package notifyhub

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"foodorder/internal/core/domain/model/notification"
	"foodorder/internal/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/net/websocket"
)

const (
	writeTimeout = 5 * time.Second
	outboxSize   = 16
)

// Hub tracks staff sessions and broadcasts every event to all of them.
// Each session has its own writer goroutine fed by a bounded outbox, so
// Notify never waits on a socket. Events that find an outbox full are
// dropped, and sessions that fail a write are closed and forgotten.
type Hub struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session

	metrics *metrics.Metrics
	logger  *slog.Logger
}

type session struct {
	id     uuid.UUID
	send   func(notification.Message) error
	close  func() error
	outbox chan notification.Message
	done   chan struct{}
}

func newSession(send func(notification.Message) error, closeFn func() error) *session {
	return &session{
		id:     uuid.New(),
		send:   send,
		close:  closeFn,
		outbox: make(chan notification.Message, outboxSize),
		done:   make(chan struct{}),
	}
}

func NewHub(m *metrics.Metrics, logger *slog.Logger) *Hub {
	return &Hub{
		sessions: make(map[uuid.UUID]*session),
		metrics:  m,
		logger:   logger.With("component", "notification_hub"),
	}
}

// Handler upgrades staff connections. The connection stays registered until
// the client goes away.
func (h *Hub) Handler() http.Handler {
	return websocket.Handler(h.serve)
}

func (h *Hub) serve(conn *websocket.Conn) {
	s := newSession(func(msg notification.Message) error {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		return websocket.JSON.Send(conn, msg)
	}, conn.Close)
	h.register(s)
	defer h.drop(s.id)

	// Staff clients never send anything meaningful; reading only detects disconnects.
	for {
		var discard string
		if err := websocket.Message.Receive(conn, &discard); err != nil {
			return
		}
	}
}

// Notify queues the event for every session connected at the time of the
// call and returns without waiting for any write.
func (h *Hub) Notify(ctx context.Context, event notification.Event) {
	msg := event.Message()

	for _, s := range h.snapshot() {
		select {
		case s.outbox <- msg:
		default:
			h.logger.WarnContext(ctx, "Staff session outbox full, dropping notification",
				"session_id", s.id, "order_id", msg.OrderID)
			h.metrics.NotificationDropped(kindOf(msg))
		}
	}
}

// Sessions returns the number of connected sessions.
func (h *Hub) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Close disconnects every session.
func (h *Hub) Close() {
	for _, s := range h.snapshot() {
		h.drop(s.id)
	}
}

func (h *Hub) register(s *session) {
	h.mu.Lock()
	h.sessions[s.id] = s
	h.mu.Unlock()

	h.metrics.SessionOpened()
	h.logger.Info("Staff session connected", "session_id", s.id)

	go h.pump(s)
}

// pump writes queued messages in order until the session is dropped.
func (h *Hub) pump(s *session) {
	for {
		select {
		case <-s.done:
			return
		case msg := <-s.outbox:
			if err := s.send(msg); err != nil {
				h.logger.Warn("Dropping staff session after failed write",
					"session_id", s.id, "order_id", msg.OrderID, "error", err)
				h.metrics.NotificationDropped(kindOf(msg))
				h.drop(s.id)
				return
			}
			h.metrics.NotificationDelivered(kindOf(msg))
		}
	}
}

func (h *Hub) drop(id uuid.UUID) {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()

	if !ok {
		return
	}
	close(s.done)
	_ = s.close()
	h.metrics.SessionClosed()
	h.logger.Info("Staff session disconnected", "session_id", id)
}

func (h *Hub) snapshot() []*session {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		out = append(out, s)
	}
	return out
}

func kindOf(msg notification.Message) string {
	return strconv.Itoa(msg.Type)
}
