package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type ctxKey struct{}

var txKey = ctxKey{}

// WithTx stores a SQL transaction in context for downstream store usage.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extracts a SQL transaction from context if present.
func From(ctx context.Context) (*sqlx.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sqlx.Tx)
	return tx, ok
}

// Execer returns the transaction carried by ctx, or db when there is none.
func Execer(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if t, ok := From(ctx); ok {
		return t
	}
	return db
}
