package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/marquee/internal/engine"
)

// Hub hands row events to in-process subscribers such as live display
// sockets. A subscriber that falls behind misses events rather than
// stalling the publisher.
type Hub struct {
	mu     sync.Mutex
	subs   map[uuid.UUID]map[chan engine.RowEvent]struct{}
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{subs: make(map[uuid.UUID]map[chan engine.RowEvent]struct{}), buffer: buffer}
}

// Subscribe registers for one row's events. Events without a row (a row
// collection reorder) reach every subscriber. The returned func closes the
// channel and must be called once.
func (h *Hub) Subscribe(rowID uuid.UUID) (<-chan engine.RowEvent, func()) {
	ch := make(chan engine.RowEvent, h.buffer)

	h.mu.Lock()
	if h.subs[rowID] == nil {
		h.subs[rowID] = make(map[chan engine.RowEvent]struct{})
	}
	h.subs[rowID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[rowID], ch)
			if len(h.subs[rowID]) == 0 {
				delete(h.subs, rowID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Subscribers counts open subscriptions for a row.
func (h *Hub) Subscribers(rowID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[rowID])
}

func (h *Hub) RowChanged(_ context.Context, ev engine.RowEvent) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ev.RowID == uuid.Nil {
		for rowID, set := range h.subs {
			h.deliver(rowID, set, ev)
		}
		return nil
	}
	h.deliver(ev.RowID, h.subs[ev.RowID], ev)
	return nil
}

func (h *Hub) deliver(rowID uuid.UUID, set map[chan engine.RowEvent]struct{}, ev engine.RowEvent) {
	for ch := range set {
		select {
		case ch <- ev:
		default:
			log.Debug().Str("row_id", rowID.String()).Str("action", string(ev.Action)).
				Msg("live subscriber behind, event dropped")
		}
	}
}
