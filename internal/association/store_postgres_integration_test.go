//go:build integration

package association_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"landscape/internal/association"
	"landscape/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *association.Store
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = association.NewStore(s.postgres.DB, association.ApplicationEntries)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "application_group_entry", "application_group", "application"))
	_, err := s.postgres.DB.ExecContext(ctx, "INSERT INTO application_group (id, name) VALUES (1, 'G')")
	s.Require().NoError(err)
	_, err = s.postgres.DB.ExecContext(ctx, "INSERT INTO application (id, name) VALUES (10, 'A'), (11, 'B')")
	s.Require().NoError(err)
}

// Concurrent adds of the same pair all succeed and converge to one row.
func (s *PostgresStoreSuite) TestConcurrentAddsConverge() {
	ctx := context.Background()
	const goroutines = 25

	var wg sync.WaitGroup
	var inserted, failed atomic.Int32
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := s.store.AddEntry(ctx, 1, 10)
			if err != nil {
				failed.Add(1)
				return
			}
			inserted.Add(int32(n))
		}()
	}
	wg.Wait()

	s.Zero(failed.Load(), "no add should fail")
	s.Equal(int32(1), inserted.Load(), "exactly one add inserts")

	entries, err := s.store.FindEntriesForGroup(ctx, 1)
	s.Require().NoError(err)
	s.Len(entries, 1)
}

func (s *PostgresStoreSuite) TestReadOnlyGuard() {
	ctx := context.Background()
	_, err := s.store.AddEntry(ctx, 1, 10)
	s.Require().NoError(err)
	_, err = s.store.AddExternalEntry(ctx, 1, 11, "cmdb-sync")
	s.Require().NoError(err)

	removed, err := s.store.RemoveEntries(ctx, 1, []int64{10, 11})
	s.Require().NoError(err)
	s.Equal(1, removed)

	entries, err := s.store.FindEntriesForGroup(ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal(int64(11), entries[0].Member.ID)
}
