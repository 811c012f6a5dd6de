package association

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "landscape/pkg/domain"
	"landscape/pkg/platform/sentinel"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return NewStore(sqlx.NewDb(raw, "postgres"), ApplicationEntries), mock
}

var memberCheck = regexp.QuoteMeta("SELECT COUNT(*) FROM application WHERE id = $1")

func expectMember(mock sqlmock.Sqlmock, memberID int64, count int) {
	mock.ExpectQuery(memberCheck).WithArgs(memberID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestStatementShape(t *testing.T) {
	ctx := context.Background()

	t.Run("insert ignores conflicts", func(t *testing.T) {
		store, mock := newMockStore(t)
		expectMember(mock, 10, 1)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO application_group_entry (group_id, application_id, is_readonly, provenance, created_at)")+
			`\s+VALUES \(\$1, \$2, \$3, \$4, \$5\)\s+ON CONFLICT DO NOTHING`).
			WithArgs(int64(1), int64(10), false, id.LocalProvenance, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := store.AddEntry(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("single remove is guarded", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM application_group_entry WHERE group_id = $1 AND application_id = $2 AND is_readonly = FALSE")).
			WithArgs(int64(1), int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := store.RemoveEntry(ctx, 1, 10)
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("batch remove is one guarded statement", func(t *testing.T) {
		store, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM application_group_entry WHERE group_id = $1 AND application_id IN ($2, $3, $4) AND is_readonly = FALSE")).
			WithArgs(int64(1), int64(10), int64(11), int64(12)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		n, err := store.RemoveEntries(ctx, 1, []int64{10, 11, 12})
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("batch add isolates failures", func(t *testing.T) {
		store, mock := newMockStore(t)
		insert := regexp.QuoteMeta("INSERT INTO application_group_entry")
		expectMember(mock, 10, 1)
		mock.ExpectExec(insert).WithArgs(int64(1), int64(10), false, id.LocalProvenance, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		expectMember(mock, 11, 1)
		mock.ExpectExec(insert).WithArgs(int64(1), int64(11), false, id.LocalProvenance, sqlmock.AnyArg()).
			WillReturnError(errors.New("connection reset"))
		expectMember(mock, 12, 0)
		expectMember(mock, 13, 1)
		mock.ExpectExec(insert).WithArgs(int64(1), int64(13), false, id.LocalProvenance, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		outcomes := store.AddEntries(ctx, 1, []int64{10, 11, 12, 13})
		require.Len(t, outcomes, 4)
		assert.NoError(t, outcomes[0].Err)
		assert.Error(t, outcomes[1].Err)
		assert.False(t, errors.Is(outcomes[1].Err, sentinel.ErrNotFound))
		assert.ErrorIs(t, outcomes[2].Err, sentinel.ErrNotFound)
		assert.NoError(t, outcomes[3].Err)
		assert.Equal(t, 2, Inserted(outcomes))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing member never reaches the insert", func(t *testing.T) {
		store, mock := newMockStore(t)
		expectMember(mock, 999, 0)

		n, err := store.AddEntry(ctx, 1, 999)
		require.ErrorIs(t, err, sentinel.ErrNotFound)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
