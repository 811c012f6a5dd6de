package selector

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// memHierarchy is a parent-pointer table per kind.
type memHierarchy struct {
	parents map[id.EntityKind]map[int64]int64 // child -> parent
	rows    map[id.EntityReference]bool
	calls   int
	err     error
}

func newMemHierarchy() *memHierarchy {
	return &memHierarchy{
		parents: map[id.EntityKind]map[int64]int64{},
		rows:    map[id.EntityReference]bool{},
	}
}

func (m *memHierarchy) add(kind id.EntityKind, child, parent int64) {
	if m.parents[kind] == nil {
		m.parents[kind] = map[int64]int64{}
	}
	m.rows[id.MkRef(kind, child)] = true
	if parent != 0 {
		m.parents[kind][child] = parent
		m.rows[id.MkRef(kind, parent)] = true
	}
}

func (m *memHierarchy) Exists(_ context.Context, ref id.EntityReference) (bool, error) {
	m.calls++
	return m.rows[ref], m.err
}

func (m *memHierarchy) ChildIDs(_ context.Context, kind id.EntityKind, parentIDs []int64) ([]int64, error) {
	m.calls++
	var out []int64
	for child, parent := range m.parents[kind] {
		if slices.Contains(parentIDs, parent) {
			out = append(out, child)
		}
	}
	return out, m.err
}

func (m *memHierarchy) ParentIDs(_ context.Context, kind id.EntityKind, childIDs []int64) ([]int64, error) {
	m.calls++
	var out []int64
	for _, c := range childIDs {
		if p, ok := m.parents[kind][c]; ok {
			out = append(out, p)
		}
	}
	return out, m.err
}

type CompilerSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memHierarchy
	compiler *Compiler
}

func TestCompilerSuite(t *testing.T) {
	suite.Run(t, new(CompilerSuite))
}

// SetupTest builds the org tree
//
//	1
//	├── 2
//	│   └── 4
//	└── 3
func (s *CompilerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = newMemHierarchy()
	s.store.add(id.KindOrgUnit, 1, 0)
	s.store.add(id.KindOrgUnit, 2, 1)
	s.store.add(id.KindOrgUnit, 3, 1)
	s.store.add(id.KindOrgUnit, 4, 2)
	s.compiler = NewCompiler(s.store)
}

func (s *CompilerSuite) compile(ref id.EntityReference, breadth ScopeKind) (Filter, error) {
	return s.compiler.Compile(s.ctx, SelectionScope{Root: ref, Breadth: breadth})
}

func (s *CompilerSuite) TestExact() {
	f, err := s.compile(id.MkRef(id.KindOrgUnit, 2), ScopeExact)
	s.Require().NoError(err)
	s.Equal([]int64{2}, f.IDs())
	s.Equal(id.KindOrgUnit, f.Kind())
}

func (s *CompilerSuite) TestChildrenIsTransitiveAndExcludesRoot() {
	f, err := s.compile(id.MkRef(id.KindOrgUnit, 1), ScopeChildren)
	s.Require().NoError(err)
	s.Equal([]int64{2, 3, 4}, f.IDs())
	s.False(f.Contains(1))
}

func (s *CompilerSuite) TestLeafChildrenIsEmptyNotError() {
	f, err := s.compile(id.MkRef(id.KindOrgUnit, 4), ScopeChildren)
	s.Require().NoError(err)
	s.True(f.IsEmpty())
}

func (s *CompilerSuite) TestParents() {
	f, err := s.compile(id.MkRef(id.KindOrgUnit, 4), ScopeParents)
	s.Require().NoError(err)
	s.Equal([]int64{1, 2}, f.IDs())
}

func (s *CompilerSuite) TestParentsAndChildrenIncludesRoot() {
	f, err := s.compile(id.MkRef(id.KindOrgUnit, 2), ScopeParentsAndChildren)
	s.Require().NoError(err)
	s.Equal([]int64{1, 2, 4}, f.IDs())
}

func (s *CompilerSuite) TestCycleTerminatesAndIncludesRoot() {
	s.store.add(id.KindPerson, 10, 12)
	s.store.add(id.KindPerson, 11, 10)
	s.store.add(id.KindPerson, 12, 11)

	f, err := s.compile(id.MkRef(id.KindPerson, 10), ScopeChildren)
	s.Require().NoError(err)
	s.Equal([]int64{10, 11, 12}, f.IDs(), "root is its own descendant")

	f, err = s.compile(id.MkRef(id.KindPerson, 10), ScopeParents)
	s.Require().NoError(err)
	s.Equal([]int64{10, 11, 12}, f.IDs())
}

func (s *CompilerSuite) TestSelfLoop() {
	s.store.add(id.KindMeasurable, 5, 5)

	f, err := s.compile(id.MkRef(id.KindMeasurable, 5), ScopeChildren)
	s.Require().NoError(err)
	s.Equal([]int64{5}, f.IDs())
}

func (s *CompilerSuite) TestMissingRootIsNotFound() {
	_, err := s.compile(id.MkRef(id.KindOrgUnit, 99), ScopeChildren)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CompilerSuite) TestValidationHappensBeforeStoreAccess() {
	s.Run("bad breadth", func() {
		s.store.calls = 0
		_, err := s.compile(id.MkRef(id.KindOrgUnit, 1), ScopeKind("SIDEWAYS"))
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Zero(s.store.calls)
	})
	s.Run("bad id", func() {
		s.store.calls = 0
		_, err := s.compile(id.MkRef(id.KindOrgUnit, 0), ScopeExact)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Zero(s.store.calls)
	})
	s.Run("kind without a table", func() {
		s.store.calls = 0
		_, err := s.compile(id.MkRef(id.KindMeasurableRating, 1), ScopeExact)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Zero(s.store.calls)
	})
}

func (s *CompilerSuite) TestStoreFailureIsInternal() {
	s.store.err = errors.New("connection reset")
	_, err := s.compile(id.MkRef(id.KindOrgUnit, 1), ScopeChildren)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *CompilerSuite) TestRecomputesEveryCall() {
	scope := SelectionScope{Root: id.MkRef(id.KindOrgUnit, 1), Breadth: ScopeChildren}
	first, err := s.compiler.Compile(s.ctx, scope)
	s.Require().NoError(err)
	again, err := s.compiler.Compile(s.ctx, scope)
	s.Require().NoError(err)
	s.Equal(first.IDs(), again.IDs(), "unchanged hierarchy gives identical filters")

	s.store.add(id.KindOrgUnit, 5, 3)
	after, err := s.compiler.Compile(s.ctx, scope)
	s.Require().NoError(err)
	s.Equal([]int64{2, 3, 4, 5}, after.IDs())
}

func TestFilter(t *testing.T) {
	f := NewFilter(id.KindApplication, 5, 3, 5, 1)
	assert.Equal(t, []int64{1, 3, 5}, f.IDs())
	assert.Equal(t, 3, f.Len())
	assert.True(t, f.Contains(3))
	assert.False(t, f.Contains(2))

	ids := f.IDs()
	ids[0] = 99
	assert.Equal(t, []int64{1, 3, 5}, f.IDs(), "IDs returns a copy")

	var zero Filter
	assert.True(t, zero.IsEmpty())
	assert.False(t, zero.Contains(0))
}

func TestParseScopeKind(t *testing.T) {
	k, err := ParseScopeKind("parents_and_children")
	require.NoError(t, err)
	assert.Equal(t, ScopeParentsAndChildren, k)

	_, err = ParseScopeKind("everything")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestScopeRequest(t *testing.T) {
	t.Run("normalizes kind and scope", func(t *testing.T) {
		req := &ScopeRequest{Scope: "children"}
		req.EntityReference.Kind = "org-unit"
		req.EntityReference.ID = 4
		require.NoError(t, req.Validate())
		assert.Equal(t, SelectionScope{Root: id.MkRef(id.KindOrgUnit, 4), Breadth: ScopeChildren}, req.SelectionScope())
	})

	t.Run("missing scope defaults to exact", func(t *testing.T) {
		req := &ScopeRequest{}
		req.EntityReference.Kind = "APPLICATION"
		req.EntityReference.ID = 1
		require.NoError(t, req.Validate())
		assert.Equal(t, ScopeExact, req.SelectionScope().Breadth)
	})

	t.Run("rating roots are rejected", func(t *testing.T) {
		req := &ScopeRequest{Scope: "EXACT"}
		req.EntityReference.Kind = "MEASURABLE_RATING"
		req.EntityReference.ID = 1
		assert.True(t, dErrors.HasCode(req.Validate(), dErrors.CodeValidation))
	})
}
