package journal

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"flowledger/pkg/ledger"
)

// Journal persists ledger events to Postgres. Publish only enqueues;
// a background writer drains the queue so the ledger's critical section
// never waits on the database.
type Journal struct {
	store EventStore

	queue chan StoredEvent
	wg    sync.WaitGroup

	mu      sync.Mutex
	closed  bool
	dropped int64
}

// NewJournal starts the background writer. Call Close on shutdown to
// flush pending events.
func NewJournal(store EventStore, queueSize int) *Journal {
	if queueSize <= 0 {
		queueSize = 256
	}

	j := &Journal{
		store: store,
		queue: make(chan StoredEvent, queueSize),
	}

	j.wg.Add(1)
	go j.writeLoop()
	return j
}

// Publish implements ledger.EventSink.
func (j *Journal) Publish(e ledger.Event) {
	stored := StoredEvent{
		EventID:    uuid.NewString(),
		EventType:  string(e.Type),
		AssetID:    e.AssetID,
		BasketID:   e.BasketID,
		Originator: e.Originator,
		Investor:   e.Investor,
		Amount:     e.Amount,
		OccurredAt: e.At,
	}

	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return
	}
	select {
	case j.queue <- stored:
	default:
		// Queue full. Dropping beats blocking the ledger; the count is
		// surfaced so operators can size the queue.
		j.dropped++
		log.Printf("journal: queue full, dropped %s event for asset %q", stored.EventType, stored.AssetID)
	}
	j.mu.Unlock()
}

// Dropped reports how many events were discarded because the queue was
// full.
func (j *Journal) Dropped() int64 {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.dropped
}

// Close stops accepting events, flushes the queue and waits for the
// writer to exit.
func (j *Journal) Close() {
	j.mu.Lock()
	if j.closed {
		j.mu.Unlock()
		return
	}
	j.closed = true
	j.mu.Unlock()

	close(j.queue)
	j.wg.Wait()
}

func (j *Journal) writeLoop() {
	defer j.wg.Done()

	for e := range j.queue {
		if err := j.store.SaveEvent(context.Background(), e); err != nil {
			log.Printf("journal: save %s event for asset %q: %v", e.EventType, e.AssetID, err)
		}
	}
}
