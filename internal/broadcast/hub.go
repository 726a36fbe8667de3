// Package broadcast implements the fan-out hub that pushes order events to
// every connected terminal. The hub is transport-agnostic: anything that can
// take a JSON write with a deadline can subscribe, which in production is a
// gorilla websocket connection and in tests a fake.
package broadcast

import (
	"log/slog"
	"sync"
	"time"

	"tracking/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// writeTimeout bounds a single event write so one stalled terminal cannot
// hold up delivery to the rest.
const writeTimeout = 10 * time.Second

// Subscriber is a live connection the hub can push events to.
// *websocket.Conn satisfies it directly.
type Subscriber interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v any) error
	Close() error
}

// Hub holds the set of live subscriber connections and delivers every
// published event to each of them.
//
// Delivery is fire-and-forget: a failed write closes and drops that one
// subscriber but never aborts delivery to the others, and nothing is
// buffered or replayed. A terminal that reconnects after a gap has missed
// those events for good and must refetch the order list to catch up.
//
// The subscriber set is the only concurrently-mutated shared structure in
// the server: registration, removal, and publish iteration all run under
// the registry lock, with the subscriber snapshot copied out before any
// network write so removal during delivery cannot corrupt iteration.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]Subscriber

	// publishMu serializes deliveries so every subscriber sees events in
	// publish order.
	publishMu sync.Mutex

	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]Subscriber),
		logger:      logger.With("component", "broadcast_hub"),
	}
}

// Register adds a connection to the subscriber set and returns its handle.
// There is no authentication and no identity beyond the handle.
func (h *Hub) Register(sub Subscriber) uuid.UUID {
	id := uuid.New()

	h.mu.Lock()
	h.subscribers[id] = sub
	total := len(h.subscribers)
	h.mu.Unlock()

	h.logger.Info("Subscriber registered", "id", id, "subscribers", total)
	return id
}

// Unregister removes a connection from the subscriber set. Safe to call for
// a handle that was already dropped by a failed publish.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	_, present := h.subscribers[id]
	delete(h.subscribers, id)
	total := len(h.subscribers)
	h.mu.Unlock()

	if present {
		h.logger.Info("Subscriber unregistered", "id", id, "subscribers", total)
	}
}

// Len returns the current subscriber count.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Publish delivers the event to every registered subscriber.
//
// The set is snapshotted before writing, so subscribers registered mid-
// publish catch the next event. A write failure drops only the failing
// connection; its terminal will notice the closed socket and reconnect.
func (h *Hub) Publish(event order.Event) {
	h.publishMu.Lock()
	defer h.publishMu.Unlock()

	h.mu.RLock()
	targets := make(map[uuid.UUID]Subscriber, len(h.subscribers))
	for id, sub := range h.subscribers {
		targets[id] = sub
	}
	h.mu.RUnlock()

	for id, sub := range targets {
		if err := sub.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
			h.drop(id, sub, err)
			continue
		}
		if err := sub.WriteJSON(event); err != nil {
			h.drop(id, sub, err)
		}
	}
}

func (h *Hub) drop(id uuid.UUID, sub Subscriber, err error) {
	h.logger.Warn("Dropping subscriber after failed send", "id", id, "error", err)
	_ = sub.Close()
	h.Unregister(id)
}
