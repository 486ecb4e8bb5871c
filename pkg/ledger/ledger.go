// Package ledger implements the accounting core for tokenized future
// cash flows: assets grouped into baskets, investor allocations against
// assets, a shared liquidity pool, and repayment reconciliation.
//
// The ledger is pure in-memory state-transition logic. It performs no
// I/O, never blocks, and serializes every mutation behind a single
// mutex so that each operation, including all of its cross-component
// side effects, commits atomically before the next begins. External
// facts (risk scores, document hashes, verification results) arrive as
// already-resolved arguments and are stored opaquely.
package ledger

import (
	"sync"
	"time"
)

type AssetType string

const (
	AssetTypeInvoice AssetType = "invoice"
	AssetTypeSaaS    AssetType = "saas"
	AssetTypeCreator AssetType = "creator"
	AssetTypeRental  AssetType = "rental"
	AssetTypeLuxury  AssetType = "luxury"
)

// Asset is one tokenized unit of a future cash flow. The lifecycle is
// linear: created, then funded once, then paid once. Funded and paid
// never transition back to false.
type Asset struct {
	ID           string    `json:"id"`
	Originator   string    `json:"originator"`
	FaceAmount   int64     `json:"face_amount"`
	Unlockable   int64     `json:"unlockable"`
	RiskScore    int       `json:"risk_score"`
	BasketID     string    `json:"basket_id"`
	Funded       bool      `json:"funded"`
	Paid         bool      `json:"paid"`
	PaidAmount   int64     `json:"paid_amount"`
	DocumentHash string    `json:"document_hash"`
	AssetType    AssetType `json:"asset_type"`
	CreatedAt    time.Time `json:"created_at"`
}

type basket struct {
	totalValue     int64
	investedAmount int64
	assetIDs       []string
}

// BasketStats is the aggregate view of a basket. Unknown baskets read
// as all zeros.
type BasketStats struct {
	BasketID       string `json:"basket_id"`
	TotalValue     int64  `json:"total_value"`
	InvestedAmount int64  `json:"invested_amount"`
	AssetCount     int    `json:"asset_count"`
}

// PoolStats is the escrow view. Balance is always recomputed as
// deposited minus released, never stored.
type PoolStats struct {
	Balance   int64 `json:"balance"`
	Deposited int64 `json:"deposited"`
	Released  int64 `json:"released"`
}

// ProtocolStats are derived aggregates maintained incrementally by the
// mutation paths and cross-checked against fresh aggregation by Audit.
type ProtocolStats struct {
	TotalAssets int64 `json:"total_assets"`
	TotalFunded int64 `json:"total_funded"`
	TotalPaid   int64 `json:"total_paid"`
}

// Ledger owns all asset, basket, investment, and pool records. Records
// never leave the struct by reference; queries return copies.
type Ledger struct {
	mu sync.Mutex

	assets     map[string]*Asset
	assetOrder []string

	baskets map[string]*basket

	// allocations[assetID][investor] accumulates investments;
	// investorOrder keeps first-investment order per asset for the
	// deterministic remainder rule in payment distribution.
	allocations   map[string]map[string]int64
	investorOrder map[string][]string

	deposited int64
	released  int64

	counters ProtocolStats

	sinks []EventSink
	now   func() time.Time
}

// New returns an empty ledger publishing to the given sinks.
func New(sinks ...EventSink) *Ledger {
	return &Ledger{
		assets:        make(map[string]*Asset),
		baskets:       make(map[string]*basket),
		allocations:   make(map[string]map[string]int64),
		investorOrder: make(map[string][]string),
		sinks:         sinks,
		now:           time.Now,
	}
}

// Subscribe registers an additional event sink.
func (l *Ledger) Subscribe(s EventSink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sinks = append(l.sinks, s)
}

func (l *Ledger) publish(e Event) {
	for _, s := range l.sinks {
		s.Publish(e)
	}
}

// getOrCreateBasket implements implicit basket creation: baskets spring
// into existence on first reference.
func (l *Ledger) getOrCreateBasket(basketID string) *basket {
	b, ok := l.baskets[basketID]
	if !ok {
		b = &basket{}
		l.baskets[basketID] = b
	}
	return b
}

func validAssetType(t AssetType) bool {
	switch t {
	case AssetTypeInvoice, AssetTypeSaaS, AssetTypeCreator, AssetTypeRental, AssetTypeLuxury:
		return true
	default:
		return false
	}
}
