package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHubPublishSubscribe(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("trades", 1)
	defer cancel()

	h.Publish(Event{Table: "trades", UserID: 1})

	select {
	case ev := <-ch:
		assert.Equal(t, "trades", ev.Table)
		assert.Equal(t, uint(1), ev.UserID)
	default:
		t.Fatal("expected an event")
	}
}

func TestHubFiltersByTableAndUser(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("trades", 1)
	defer cancel()

	h.Publish(Event{Table: "trading_days", UserID: 1})
	h.Publish(Event{Table: "trades", UserID: 2})

	assert.Empty(t, ch)
}

func TestHubWildcardSubscription(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("", 1)
	defer cancel()

	h.Publish(Event{Table: "trades", UserID: 1})
	h.Publish(Event{Table: "trading_days", UserID: 1})

	assert.Len(t, ch, 2)
}

func TestHubCancelClosesChannel(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("trades", 1)
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic.
	h.Publish(Event{Table: "trades", UserID: 1})

	// Cancel is idempotent.
	cancel()
}

func TestHubFullBufferDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub()

	ch, cancel := h.Subscribe("trades", 1)
	defer cancel()

	for i := 0; i < 20; i++ {
		h.Publish(Event{Table: "trades", UserID: 1})
	}

	assert.Len(t, ch, cap(ch))
}
