package reader_db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of *pgxpool.Pool the repository relies on. It
// matches pgxmock's pool interface so drivers are testable without a
// database.
type DBPool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier is satisfied by both DBPool and pgx.Tx, so a driver method
// can run inside or outside an explicit transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ReaderDBRepository struct {
	pool DBPool
}

func NewReaderDBRepository(pool DBPool) *ReaderDBRepository {
	return &ReaderDBRepository{pool: pool}
}

// Pool exposes the underlying pool for gateways that manage their own
// transactions.
func (r *ReaderDBRepository) Pool() DBPool {
	return r.pool
}
