package verify

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CodeRepository interface {
	CreateCode(ctx context.Context, email, code string, expiresAt time.Time) (Code, error)
	GetLatestCodeByEmail(ctx context.Context, email string) (Code, error)
	MarkCodeVerified(ctx context.Context, id int64) error
	CountCodesInLastHour(ctx context.Context, email string) (int, error)
	DeleteExpiredCodes(ctx context.Context) error
}

type postgresCodeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCodeRepository(pool *pgxpool.Pool) CodeRepository {
	return &postgresCodeRepository{pool: pool}
}

func (r *postgresCodeRepository) CreateCode(ctx context.Context, email, code string, expiresAt time.Time) (Code, error) {
	query := `
		INSERT INTO verification_codes (email, code, expires_at, verified, created_at)
		VALUES ($1, $2, $3, false, NOW())
		RETURNING id, email, code, expires_at, verified, created_at
	`

	var c Code
	err := r.pool.QueryRow(ctx, query, email, code, expiresAt).Scan(
		&c.ID, &c.Email, &c.Code, &c.ExpiresAt, &c.Verified, &c.CreatedAt,
	)
	return c, err
}

func (r *postgresCodeRepository) GetLatestCodeByEmail(ctx context.Context, email string) (Code, error) {
	query := `
		SELECT id, email, code, expires_at, verified, created_at
		FROM verification_codes
		WHERE email = $1 AND verified = false
		ORDER BY created_at DESC
		LIMIT 1
	`

	var c Code
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&c.ID, &c.Email, &c.Code, &c.ExpiresAt, &c.Verified, &c.CreatedAt,
	)
	return c, err
}

func (r *postgresCodeRepository) MarkCodeVerified(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, "UPDATE verification_codes SET verified = true WHERE id = $1", id)
	return err
}

func (r *postgresCodeRepository) CountCodesInLastHour(ctx context.Context, email string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM verification_codes WHERE email = $1 AND created_at > NOW() - INTERVAL '1 hour'",
		email).Scan(&count)
	return count, err
}

func (r *postgresCodeRepository) DeleteExpiredCodes(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM verification_codes WHERE expires_at < NOW() AND verified = false")
	return err
}
