// Package notify is the in-process observer hub for order events. It
// replaces a single shared callback slot: any number of listeners register
// explicitly and each gets every event.
package notify

import "sync"

// OrderEvent is published after a checkout completes.
type OrderEvent struct {
	OrderID     string
	Email       string
	TotalPaise  int64
	PaymentLink string
}

// Listener receives published events. Listeners must not block; the hub
// calls them synchronously on the publishing goroutine.
type Listener func(OrderEvent)

// Hub fans events out to registered listeners. Safe for concurrent use.
type Hub struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) Register(l Listener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, l)
}

func (h *Hub) Publish(ev OrderEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, l := range h.listeners {
		l(ev)
	}
}
