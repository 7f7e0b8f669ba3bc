package booking

import (
	"context"
	"database/sql"

	"github.com/th-alves/nails-booking-service/pkg/dbmetrics"
)

// Database executor interfaces shared with pkg/dbmetrics.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions.
// Satisfied by *sql.DB (via txmanager.NewSQLBeginner) and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
