package testhelpers

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var uniqueCounter int64

func nextSuffix() int64 {
	return atomic.AddInt64(&uniqueCounter, 1)
}

// CreateTestInvestor inserts a minimal unverified investor row and
// returns its UUID.
func CreateTestInvestor(t *testing.T, db *pgxpool.Pool) string {
	t.Helper()

	ctx := context.Background()
	suffix := nextSuffix()
	uuid := fmt.Sprintf("test-investor-%d", suffix)
	email := fmt.Sprintf("%s@example.com", uuid)

	_, err := db.Exec(ctx,
		"INSERT INTO investors (uuid, name, email, password_hash) VALUES ($1, $2, $3, 'hash')",
		uuid, uuid, email)
	require.NoError(t, err)
	return uuid
}
