package stream

import (
	"sync"

	"flowledger/pkg/ledger"
)

// Subscriber is one connected event consumer.
type Subscriber struct {
	ID   string
	Send chan ledger.Event // Buffered channel of events to push to this subscriber
	Done chan struct{}     // Signal to stop writing
}

// Broadcaster fans ledger events out to every connected subscriber. It
// implements ledger.EventSink, so it can be attached directly to the
// ledger; Publish never blocks, slow subscribers lose events instead.
type Broadcaster struct {
	mu   sync.RWMutex
	subs map[string]*Subscriber
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[string]*Subscriber),
	}
}

// AddSubscriber registers a new subscriber. An existing subscriber with
// the same ID is disconnected first.
func (b *Broadcaster) AddSubscriber(id string) *Subscriber {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.subs[id]; ok {
		close(existing.Done)
	}

	sub := &Subscriber{
		ID:   id,
		Send: make(chan ledger.Event, 32),
		Done: make(chan struct{}),
	}

	b.subs[id] = sub
	return sub
}

// RemoveSubscriber unregisters a subscriber.
func (b *Broadcaster) RemoveSubscriber(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subs[id]; ok {
		close(sub.Done)
		delete(b.subs, id)
	}
}

// SubscriberCount reports how many consumers are connected.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Publish implements ledger.EventSink.
func (b *Broadcaster) Publish(e ledger.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs {
		select {
		case sub.Send <- e:
		case <-sub.Done:
		default:
			// Subscriber too slow, skip this event for them.
		}
	}
}
