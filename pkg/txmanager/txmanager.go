// Package txmanager runs functions inside serializable database transactions.
// The open transaction travels through context (see pkg/dbmetrics), so the
// same repository code works inside and outside a transaction.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/th-alves/nails-booking-service/pkg/dbmetrics"
)

// pgSerializationFailure is the PostgreSQL error code raised when a
// serializable transaction must be retried.
const pgSerializationFailure = "40001"

// maxAttempts bounds retries on serialization failures.
const maxAttempts = 3

// ErrTransaction wraps begin/commit/rollback failures.
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner starts transactions. Satisfied by *dbmetrics.DB and by
// an *sql.DB wrapped with NewSQLBeginner.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager executes functions inside serializable transactions.
type TransactionManager struct {
	beginner TxBeginner
}

// NewTransactionManager creates a transaction manager over the given beginner.
func NewTransactionManager(beginner TxBeginner) *TransactionManager {
	return &TransactionManager{beginner: beginner}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. The transaction is
// exposed to repositories through the context passed to fn. Serialization
// failures are retried up to maxAttempts times; any error returned by fn
// rolls the transaction back and is returned as-is.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := m.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isSerializationFailure(err) {
			return err
		}
		lastErr = err
	}

	return fmt.Errorf("%w: serialization retries exhausted: %v", ErrTransaction, lastErr)
}

func (m *TransactionManager) runOnce(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.beginner.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	txCtx := dbmetrics.WithTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}

	return nil
}

func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgSerializationFailure
}

// sqlBeginner adapts a plain *sql.DB to the TxBeginner interface.
type sqlBeginner struct {
	db *sql.DB
}

// NewSQLBeginner adapts db for use without the metrics wrapper.
func NewSQLBeginner(db *sql.DB) TxBeginner {
	return &sqlBeginner{db: db}
}

func (b *sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.db.BeginTx(ctx, opts)
}
