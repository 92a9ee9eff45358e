// Package events carries store change notifications to interested viewers.
// The handlers publish an event after every successful mutation; subscribers
// (the staff event stream, tests) consume them without touching persistence.
package events

import (
	"sync"

	"github.com/g-67560126-commits/e-Asrama/models"
)

const (
	ApplicationCreated = "application.created"
	ApplicationDecided = "application.decided"
)

// Event describes one committed mutation of the application store.
type Event struct {
	Type        string             `json:"type"`
	Application models.Application `json:"application"`
}

// Hub fans events out to subscribers. Publish never blocks: a subscriber
// whose buffer is full misses the event rather than stalling the mutation
// path (the stream is advisory, the store stays the source of truth).
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a buffered listener. The returned cancel func must be
// called when the listener goes away; it closes the channel.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if sub, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(sub)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers ev to every current subscriber, dropping on full buffers.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribers reports the current listener count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
