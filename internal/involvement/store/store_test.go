package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landscape/internal/involvement/models"
	id "landscape/pkg/domain"
	"landscape/pkg/platform/sentinel"
	"landscape/pkg/testutil"
)

func TestKinds(t *testing.T) {
	ctx := context.Background()
	store := New(testutil.NewSQLiteDB(t))

	archID, err := store.CreateKind(ctx, models.CreateKindCommand{Name: "Architect", Description: "design authority"})
	require.NoError(t, err)
	_, err = store.CreateKind(ctx, models.CreateKindCommand{Name: "Analyst"})
	require.NoError(t, err)

	_, err = store.CreateKind(ctx, models.CreateKindCommand{Name: "Architect"})
	assert.True(t, errors.Is(err, sentinel.ErrConflict))

	kinds, err := store.FindKinds(ctx)
	require.NoError(t, err)
	require.Len(t, kinds, 2)
	assert.Equal(t, "Analyst", kinds[0].Name)

	k, err := store.FindKind(ctx, archID)
	require.NoError(t, err)
	assert.Equal(t, "design authority", k.Description)

	_, err = store.FindKind(ctx, 999)
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}

func TestInvolvements(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NewSQLiteDB(t)
	testutil.MustExec(t, conn, "INSERT INTO person (id, user_name, display_name) VALUES (1, 'alice', 'Alice'), (2, 'bob', 'Bob')")
	testutil.MustExec(t, conn, "INSERT INTO involvement_kind (id, name) VALUES (5, 'Owner')")
	testutil.MustExec(t, conn, `INSERT INTO involvement (entity_kind, entity_id, person_id, kind_id, is_readonly, provenance)
		VALUES ('APPLICATION', 10, 2, 5, TRUE, 'hr-feed')`)
	store := New(conn)
	app := id.MkRef(id.KindApplication, 10)

	n, err := store.Add(ctx, app, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = store.Add(ctx, app, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "repeated add is a no-op")

	n, err = store.Remove(ctx, app, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "read-only involvement is kept")

	found, err := store.FindByEntity(ctx, app)
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, int64(1), found[0].PersonID)
	assert.Equal(t, "landscape", found[0].Provenance)
	assert.True(t, found[1].IsReadOnly)

	n, err = store.Remove(ctx, app, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestFindPermittedOperations(t *testing.T) {
	ctx := context.Background()
	conn := testutil.NewSQLiteDB(t)
	testutil.MustExec(t, conn, "INSERT INTO person (id, user_name, display_name) VALUES (1, 'alice', 'Alice')")
	testutil.MustExec(t, conn, "INSERT INTO person (id, user_name, display_name, is_removed) VALUES (2, 'gone', 'Gone', TRUE)")
	testutil.MustExec(t, conn, "INSERT INTO involvement_kind (id, name) VALUES (5, 'Owner'), (6, 'Reviewer')")
	testutil.MustExec(t, conn, `INSERT INTO involvement (entity_kind, entity_id, person_id, kind_id)
		VALUES ('APPLICATION', 10, 1, 5), ('APPLICATION', 10, 2, 5), ('APPLICATION', 10, 1, 6)`)
	testutil.MustExec(t, conn, `INSERT INTO involvement_permission (involvement_kind_id, parent_kind, subject_kind, qualifier_id, operation)
		VALUES (5, 'APPLICATION', 'MEASURABLE_RATING', NULL, 'ADD'),
		       (5, 'APPLICATION', 'MEASURABLE_RATING', 3, 'UPDATE'),
		       (6, 'APPLICATION', 'MEASURABLE_RATING', 4, 'REMOVE'),
		       (6, 'CHANGE_INITIATIVE', 'MEASURABLE_RATING', NULL, 'REMOVE')`)
	store := New(conn)
	app := id.MkRef(id.KindApplication, 10)

	ops, err := store.FindPermittedOperations(ctx, "alice", app, id.KindMeasurableRating, 3)
	require.NoError(t, err)
	assert.Equal(t, []id.Operation{id.OperationAdd, id.OperationUpdate}, ops)

	ops, err = store.FindPermittedOperations(ctx, "alice", app, id.KindMeasurableRating, 4)
	require.NoError(t, err)
	assert.Equal(t, []id.Operation{id.OperationAdd, id.OperationRemove}, ops)

	ops, err = store.FindPermittedOperations(ctx, "gone", app, id.KindMeasurableRating, 3)
	require.NoError(t, err)
	assert.Empty(t, ops, "removed people hold no grants")

	ops, err = store.FindPermittedOperations(ctx, "alice", id.MkRef(id.KindApplication, 11), id.KindMeasurableRating, 3)
	require.NoError(t, err)
	assert.Empty(t, ops)
}
