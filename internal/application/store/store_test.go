package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "landscape/pkg/domain"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/testutil"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NewSQLiteDB(t)
	testutil.MustExec(t, conn, "INSERT INTO organisational_unit (id, name) VALUES (1, 'Ops')")
	testutil.MustExec(t, conn, "INSERT INTO application (id, name, asset_code, organisational_unit_id) VALUES (1, 'Zeta', 'Z-1', 1)")
	testutil.MustExec(t, conn, "INSERT INTO application (id, name) VALUES (2, 'Alpha')")
	testutil.MustExec(t, conn, "INSERT INTO application (id, name, entity_lifecycle_status) VALUES (3, 'Pending', 'PENDING')")
	testutil.MustExec(t, conn, "INSERT INTO application (id, name, is_removed) VALUES (4, 'Gone', TRUE)")
	store := New(conn)

	t.Run("get by id includes inactive", func(t *testing.T) {
		app, err := store.GetByID(ctx, 4)
		require.NoError(t, err)
		assert.True(t, app.IsRemoved)
		assert.False(t, app.IsActive())

		app, err = store.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), app.OrganisationalUnitID)
		assert.Equal(t, id.LifecycleActive, app.EntityLifecycleStatus)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := store.GetByID(ctx, 99)
		assert.True(t, errors.Is(err, sentinel.ErrNotFound))
	})

	t.Run("find by ids keeps active and orders by name", func(t *testing.T) {
		apps, err := store.FindByIDs(ctx, []int64{1, 2, 3, 4})
		require.NoError(t, err)
		require.Len(t, apps, 2)
		assert.Equal(t, "Alpha", apps[0].Name)
		assert.Equal(t, "Zeta", apps[1].Name)
	})

	t.Run("empty ids", func(t *testing.T) {
		apps, err := store.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, apps)
	})
}
