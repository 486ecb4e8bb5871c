package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EventStore interface {
	SaveEvent(ctx context.Context, e StoredEvent) error
	ListEventsByAsset(ctx context.Context, assetID string, limit int) ([]StoredEvent, error)
	ListRecentEvents(ctx context.Context, limit int) ([]StoredEvent, error)
}

type PostgresEventStore struct {
	pool *pgxpool.Pool
}

func NewPostgresEventStore(pool *pgxpool.Pool) *PostgresEventStore {
	return &PostgresEventStore{pool: pool}
}

// SaveEvent appends one event to the journal. The unique event_id makes
// the insert idempotent across writer retries.
func (r *PostgresEventStore) SaveEvent(ctx context.Context, e StoredEvent) error {
	if r.pool == nil {
		return errors.New("db pool is nil")
	}

	const insertSQL = `
		INSERT INTO ledger_events (event_id, event_type, asset_id, basket_id, originator, investor, amount, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (event_id) DO NOTHING
	`

	ctxTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.pool.Exec(ctxTimeout, insertSQL,
		e.EventID, e.EventType, e.AssetID, e.BasketID, e.Originator, e.Investor, e.Amount, e.OccurredAt); err != nil {
		return fmt.Errorf("insert ledger event: %w", err)
	}
	return nil
}

// ListEventsByAsset returns the journal entries for one asset in append
// order (oldest first).
func (r *PostgresEventStore) ListEventsByAsset(ctx context.Context, assetID string, limit int) ([]StoredEvent, error) {
	if r.pool == nil {
		return nil, errors.New("db pool is nil")
	}

	const querySQL = `
		SELECT event_id, event_type, asset_id, basket_id, originator, investor, amount, occurred_at, recorded_at
		FROM ledger_events
		WHERE asset_id = $1
		ORDER BY id ASC
		LIMIT $2
	`

	return r.queryEvents(ctx, querySQL, assetID, clampLimit(limit))
}

// ListRecentEvents returns the newest journal entries first.
func (r *PostgresEventStore) ListRecentEvents(ctx context.Context, limit int) ([]StoredEvent, error) {
	if r.pool == nil {
		return nil, errors.New("db pool is nil")
	}

	const querySQL = `
		SELECT event_id, event_type, asset_id, basket_id, originator, investor, amount, occurred_at, recorded_at
		FROM ledger_events
		ORDER BY id DESC
		LIMIT $1
	`

	return r.queryEvents(ctx, querySQL, clampLimit(limit))
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 200 {
		return 200
	}
	return limit
}

func (r *PostgresEventStore) queryEvents(ctx context.Context, sql string, args ...any) ([]StoredEvent, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctxTimeout, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query ledger events: %w", err)
	}
	defer rows.Close()

	result := make([]StoredEvent, 0)
	for rows.Next() {
		var e StoredEvent
		if err := rows.Scan(&e.EventID, &e.EventType, &e.AssetID, &e.BasketID, &e.Originator, &e.Investor, &e.Amount, &e.OccurredAt, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan ledger event: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return result, nil
}
