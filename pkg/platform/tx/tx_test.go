package tx

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecerPrefersContextTx(t *testing.T) {
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()
	db := sqlx.NewDb(raw, "sqlmock")

	assert.Equal(t, sqlx.ExtContext(db), Execer(context.Background(), db))

	mock.ExpectBegin()
	sqlTx, err := db.Beginx()
	require.NoError(t, err)

	ctx := WithTx(context.Background(), sqlTx)
	got, ok := From(ctx)
	require.True(t, ok)
	assert.Same(t, sqlTx, got)
	assert.Equal(t, sqlx.ExtContext(sqlTx), Execer(ctx, db))

	assert.Equal(t, context.Background(), WithTx(context.Background(), nil))
}
