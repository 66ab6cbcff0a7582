package events

import (
	"sync"

	"github.com/commforge/community_backend/pkg/logger"
)

// Publisher fans domain events out to interested consumers.
type Publisher interface {
	PublishAll(events []Event) error
}

// Handler consumes a single event. Returning an error marks the delivery
// failed for that handler only; other handlers still run.
type Handler func(Event) error

// Dispatcher is an in-process Publisher that delivers events synchronously
// to registered handlers. Handler failures are logged and swallowed:
// publication problems are an operational concern and must never roll back
// the point mutation that produced the event.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a handler for all subsequent publications.
func (d *Dispatcher) Subscribe(h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// PublishAll delivers each event to every handler in registration order.
func (d *Dispatcher) PublishAll(evts []Event) error {
	d.mu.RLock()
	handlers := make([]Handler, len(d.handlers))
	copy(handlers, d.handlers)
	d.mu.RUnlock()

	for _, evt := range evts {
		for _, h := range handlers {
			if err := h(evt); err != nil {
				logger.Warn("event handler failed",
					"event_type", evt.EventType(),
					"error", err,
				)
			}
		}
	}
	return nil
}
