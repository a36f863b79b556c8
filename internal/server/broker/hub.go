// Package broker fans directory change notifications out to watchers.
//
// A notification carries no payload: every watcher reloads the whole
// snapshot when signalled, so pending signals are coalesced and a slow
// watcher never blocks a publisher.
package broker

import (
	"context"
	"sync"
)

// Publisher announces that the directory changed.
type Publisher interface {
	Publish(ctx context.Context) error
}

// Notifier hands out change signals. cancel must be called to release the
// subscription.
type Notifier interface {
	Subscribe() (signals <-chan struct{}, cancel func())
}

// Hub is the in-process Publisher and Notifier.
type Hub struct {
	mu   sync.Mutex
	subs map[chan struct{}]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: map[chan struct{}]struct{}{}}
}

func (h *Hub) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
		})
	}
}

// Publish signals every subscriber. It never blocks.
func (h *Hub) Publish(context.Context) error {
	h.signal()
	return nil
}

func (h *Hub) signal() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
			// a signal is already pending
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
