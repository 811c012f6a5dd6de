package selector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"landscape/internal/selector/metrics"
	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// HierarchyStore is the read-only traversal capability the compiler needs.
// Kinds without a parent relation return no ids.
type HierarchyStore interface {
	Exists(ctx context.Context, ref id.EntityReference) (bool, error)
	ChildIDs(ctx context.Context, kind id.EntityKind, parentIDs []int64) ([]int64, error)
	ParentIDs(ctx context.Context, kind id.EntityKind, childIDs []int64) ([]int64, error)
}

// Compiler turns selection scopes into filters. It holds no cache: every
// call re-reads the hierarchy.
type Compiler struct {
	store   HierarchyStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Compiler)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Compiler) {
		c.metrics = m
	}
}

// NewCompiler constructs a Compiler over store.
func NewCompiler(store HierarchyStore, opts ...Option) *Compiler {
	c := &Compiler{store: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile resolves scope to the set of qualifying ids of the root's kind.
func (c *Compiler) Compile(ctx context.Context, scope SelectionScope) (Filter, error) {
	if err := scope.Validate(); err != nil {
		return Filter{}, err
	}

	ctx, span := otel.Tracer("landscape/selector").Start(ctx, "selector.Compile")
	defer span.End()
	span.SetAttributes(
		attribute.String("selector.kind", string(scope.Root.Kind)),
		attribute.String("selector.breadth", string(scope.Breadth)),
	)
	start := time.Now()

	exists, err := c.store.Exists(ctx, scope.Root)
	if err != nil {
		return Filter{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up selection root")
	}
	if !exists {
		return Filter{}, dErrors.Newf(dErrors.CodeNotFound, "selection root %s not found", scope.Root)
	}

	root := scope.Root
	var ids []int64
	switch scope.Breadth {
	case ScopeExact:
		ids = []int64{root.ID}
	case ScopeChildren:
		ids, err = c.closure(ctx, root, c.store.ChildIDs)
	case ScopeParents:
		ids, err = c.closure(ctx, root, c.store.ParentIDs)
	case ScopeParentsAndChildren:
		var up, down []int64
		if down, err = c.closure(ctx, root, c.store.ChildIDs); err == nil {
			up, err = c.closure(ctx, root, c.store.ParentIDs)
		}
		ids = append(append(append(ids, root.ID), down...), up...)
	}
	if err != nil {
		return Filter{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to traverse hierarchy")
	}

	filter := NewFilter(root.Kind, ids...)
	span.SetAttributes(attribute.Int("selector.size", filter.Len()))
	c.metrics.ObserveCompile(string(root.Kind), string(scope.Breadth), filter.Len(), time.Since(start))
	c.logger.DebugContext(ctx, "selector compiled",
		"scope", scope.String(),
		"size", filter.Len(),
	)
	return filter, nil
}

type stepFunc func(ctx context.Context, kind id.EntityKind, ids []int64) ([]int64, error)

// closure walks one direction level by level. Ids already visited are not
// expanded again, so cycles terminate. The root is only included when the
// walk reaches it again.
func (c *Compiler) closure(ctx context.Context, root id.EntityReference, step stepFunc) ([]int64, error) {
	visited := make(map[int64]struct{})
	var result []int64
	frontier := []int64{root.ID}
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := step(ctx, root.Kind, frontier)
		if err != nil {
			return nil, fmt.Errorf("expand %s level: %w", root.Kind, err)
		}
		frontier = nil
		for _, n := range next {
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			result = append(result, n)
			frontier = append(frontier, n)
		}
	}
	return result, nil
}
