package investors

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvestorNotFound = errors.New("investor not found")

type InvestorRepository interface {
	CreateInvestor(ctx context.Context, name, email, passwordHash, uuid string) (Investor, error)
	GetInvestorByUUID(ctx context.Context, uuid string) (Investor, error)
	GetInvestorByEmail(ctx context.Context, email string) (Investor, error)
	MarkVerifiedByEmail(ctx context.Context, email string, ts time.Time) error
}

type postgresInvestorRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresInvestorRepository(pool *pgxpool.Pool) InvestorRepository {
	return &postgresInvestorRepository{pool: pool}
}

func (r *postgresInvestorRepository) CreateInvestor(ctx context.Context, name, email, passwordHash, uuid string) (Investor, error) {
	query := `INSERT INTO investors (uuid, name, email, password_hash, created_at)
              VALUES ($1, $2, $3, $4, NOW())
              RETURNING id, uuid, name, email, verified_at, created_at`
	row := r.pool.QueryRow(ctx, query, uuid, name, email, passwordHash)

	var inv Investor
	if err := row.Scan(&inv.ID, &inv.UUID, &inv.Name, &inv.Email, &inv.VerifiedAt, &inv.CreatedAt); err != nil {
		return Investor{}, err
	}
	return inv, nil
}

func (r *postgresInvestorRepository) GetInvestorByUUID(ctx context.Context, uuid string) (Investor, error) {
	query := `SELECT id, uuid, name, email, verified_at, created_at
              FROM investors
              WHERE uuid = $1`
	row := r.pool.QueryRow(ctx, query, uuid)

	var inv Investor
	if err := row.Scan(&inv.ID, &inv.UUID, &inv.Name, &inv.Email, &inv.VerifiedAt, &inv.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Investor{}, ErrInvestorNotFound
		}
		return Investor{}, err
	}
	return inv, nil
}

func (r *postgresInvestorRepository) GetInvestorByEmail(ctx context.Context, email string) (Investor, error) {
	query := `SELECT id, uuid, name, email, verified_at, created_at
              FROM investors
              WHERE email = $1`
	row := r.pool.QueryRow(ctx, query, email)

	var inv Investor
	if err := row.Scan(&inv.ID, &inv.UUID, &inv.Name, &inv.Email, &inv.VerifiedAt, &inv.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Investor{}, ErrInvestorNotFound
		}
		return Investor{}, err
	}
	return inv, nil
}

func (r *postgresInvestorRepository) MarkVerifiedByEmail(ctx context.Context, email string, ts time.Time) error {
	cmd, err := r.pool.Exec(ctx, "UPDATE investors SET verified_at = $1 WHERE email = $2", ts, email)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrInvestorNotFound
	}
	return nil
}
