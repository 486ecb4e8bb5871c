package ledger

import "time"

type EventType string

const (
	EventAssetCreated       EventType = "asset_created"
	EventAssetFunded        EventType = "asset_funded"
	EventInvestmentRecorded EventType = "investment_recorded"
	EventPaymentConfirmed   EventType = "payment_confirmed"
	EventBasketUpdated      EventType = "basket_updated"
	EventPoolDeposited      EventType = "pool_deposited"
	EventPoolReleased       EventType = "pool_released"

	// EventRiskScoreUpdated is an internal audit entry, not part of the
	// public event contract. Sinks that only care about the contract
	// events may filter it out.
	EventRiskScoreUpdated EventType = "risk_score_updated"
)

// Event is a side-channel notification emitted after a successful
// mutation. Events are published under the ledger lock, so a sink
// observes them in the same total order the mutations committed in.
type Event struct {
	Type       EventType `json:"type"`
	AssetID    string    `json:"asset_id,omitempty"`
	BasketID   string    `json:"basket_id,omitempty"`
	Originator string    `json:"originator,omitempty"`
	Investor   string    `json:"investor,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	At         time.Time `json:"at"`
}

// EventSink receives ledger events. Publish is called synchronously
// inside the ledger's critical section and must not block; sinks that
// do I/O should enqueue and return.
type EventSink interface {
	Publish(e Event)
}

// SinkFunc adapts a function to the EventSink interface.
type SinkFunc func(e Event)

func (f SinkFunc) Publish(e Event) { f(e) }
