package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories whose operations can run
// inside an explicit database transaction.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits the transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls the transaction back. Rolling back an already finished
	// transaction is not an error.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
