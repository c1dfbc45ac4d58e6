// Package notify is an in-process change-notification hub. Writers publish a
// payloadless "something changed" signal scoped to a table and user; readers
// subscribe and re-fetch whatever they display. There is no diffing and no
// delivery guarantee beyond best effort to live subscribers.
package notify

import (
	"sync"
)

// Event identifies what changed. It intentionally carries no row data.
type Event struct {
	Table  string `json:"table"`
	UserID uint   `json:"user_id"`
}

type subscriber struct {
	table  string
	userID uint
	ch     chan Event
}

// Hub fans change events out to subscribers.
type Hub struct {
	mu   sync.RWMutex
	subs map[int]*subscriber
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]*subscriber)}
}

// Subscribe registers interest in changes to table rows owned by userID.
// table == "" matches every table. The returned cancel func must be called
// to release the subscription.
func (h *Hub) Subscribe(table string, userID uint) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	sub := &subscriber{table: table, userID: userID, ch: make(chan Event, 8)}
	h.subs[id] = sub

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if s, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(s.ch)
		}
	}
	return sub.ch, cancel
}

// Publish delivers ev to every matching subscriber. Slow subscribers with a
// full buffer are skipped, a dropped signal is recovered by the next one.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		if sub.table != "" && sub.table != ev.Table {
			continue
		}
		if sub.userID != 0 && sub.userID != ev.UserID {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}
