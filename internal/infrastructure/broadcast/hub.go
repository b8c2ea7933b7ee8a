package broadcast

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/aspirecareer/consultancy-api/internal/core/ports"
)

const subscriberBuffer = 16

// Hub fans events out to every live subscriber. It is constructed explicitly
// and injected wherever broadcasting is needed; there is no package-level
// instance.
type Hub struct {
	mu   sync.Mutex
	subs map[chan ports.Event]struct{}
	log  zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{subs: make(map[chan ports.Event]struct{}), log: log}
}

// Subscribe registers a new subscriber and returns its event channel plus an
// unsubscribe function. The caller must call unsubscribe when done; the
// channel is closed by it.
func (h *Hub) Subscribe() (<-chan ports.Event, func()) {
	ch := make(chan ports.Event, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

// Broadcast delivers event to all subscribers. Sends never block: a
// subscriber whose buffer is full misses the event rather than stalling the
// sender.
func (h *Hub) Broadcast(event ports.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- event:
		default:
			h.log.Debug().Str("event", event.Name).Msg("dropping event for slow subscriber")
		}
	}
}
