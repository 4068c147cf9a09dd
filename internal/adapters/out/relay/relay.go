package relay

import (
	"context"
	"sync"

	"tailorshop/internal/core/ports"
)

const defaultBufferSize = 64

// Relay fans committed events out to in-process subscribers. A subscriber
// registers for a single branch or, with an empty branch id, for every event.
// Delivery is best effort: when a subscriber's buffer is full the event is
// dropped for that subscriber and delivery to the others continues.
type Relay struct {
	mu     sync.RWMutex
	closed bool
	subs   map[*Subscription]struct{}
}

// Subscription is a live feed of events. Release it with Relay.Unsubscribe
// once the consumer is done, otherwise the relay keeps delivering into the
// buffer forever.
type Subscription struct {
	branchID string
	events   chan ports.Event
}

// Events returns the channel the relay delivers into. The channel is closed
// when the subscription is released or the relay shuts down.
func (s *Subscription) Events() <-chan ports.Event {
	return s.events
}

func NewRelay() *Relay {
	return &Relay{
		subs: make(map[*Subscription]struct{}),
	}
}

// Subscribe registers a listener for events of the given branch. An empty
// branchID subscribes to all branches.
func (r *Relay) Subscribe(branchID string) *Subscription {
	sub := &Subscription{
		branchID: branchID,
		events:   make(chan ports.Event, defaultBufferSize),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		close(sub.events)
		return sub
	}
	r.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes the subscription and closes its channel. Calling it
// twice is harmless.
func (r *Relay) Unsubscribe(sub *Subscription) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[sub]; !ok {
		return
	}
	delete(r.subs, sub)
	close(sub.events)
}

// Publish delivers the event to every matching subscriber without blocking.
// It never returns an error; the signature satisfies ports.EventPublisher.
func (r *Relay) Publish(_ context.Context, event ports.Event) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil
	}

	for sub := range r.subs {
		if sub.branchID != "" && event.BranchID != "" && sub.branchID != event.BranchID {
			continue
		}
		select {
		case sub.events <- event:
		default:
			// Subscriber is not keeping up. Drop the event for it.
		}
	}
	return nil
}

// Close shuts the relay down and closes every subscriber channel. Publishing
// after Close is a no-op.
func (r *Relay) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for sub := range r.subs {
		delete(r.subs, sub)
		close(sub.events)
	}
}
