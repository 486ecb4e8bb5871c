package journal

import "time"

// StoredEvent is a ledger event as persisted in the ledger_events table.
type StoredEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	AssetID    string    `json:"asset_id,omitempty"`
	BasketID   string    `json:"basket_id,omitempty"`
	Originator string    `json:"originator,omitempty"`
	Investor   string    `json:"investor,omitempty"`
	Amount     int64     `json:"amount"`
	OccurredAt time.Time `json:"occurred_at"`
	RecordedAt time.Time `json:"recorded_at"`
}
