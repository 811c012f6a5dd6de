package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscape/pkg/platform/sentinel"
	"landscape/pkg/testutil"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NewSQLiteDB(t)
	testutil.MustExec(t, conn, "INSERT INTO application_group (id, name, description) VALUES (1, 'Payments', 'core payments')")
	testutil.MustExec(t, conn, "INSERT INTO application_group (id, name, is_removed) VALUES (2, 'Old', TRUE)")
	testutil.MustExec(t, conn, "INSERT INTO application_group_member (group_id, user_name, role) VALUES (1, 'alice', 'OWNER')")
	testutil.MustExec(t, conn, "INSERT INTO application_group_member (group_id, user_name) VALUES (1, 'bob')")
	store := New(conn)

	t.Run("find live group", func(t *testing.T) {
		g, err := store.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Payments", g.Name)
		assert.Equal(t, "PUBLIC", g.Kind)
	})

	t.Run("removed and missing groups are not found", func(t *testing.T) {
		_, err := store.FindByID(ctx, 2)
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
		_, err = store.FindByID(ctx, 99)
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
	})

	t.Run("ownership", func(t *testing.T) {
		owner, err := store.IsOwner(ctx, 1, "alice")
		require.NoError(t, err)
		assert.True(t, owner)

		owner, err = store.IsOwner(ctx, 1, "bob")
		require.NoError(t, err)
		assert.False(t, owner)
	})
}
