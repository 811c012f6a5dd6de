package selector

import (
	"context"

	id "landscape/pkg/domain"
	dErrors "landscape/pkg/domain-errors"
)

// ApplicationResolver maps compiled ids of a root kind to active application ids.
type ApplicationResolver interface {
	ActiveApplicationIDs(ctx context.Context, appIDs []int64) ([]int64, error)
	ApplicationIDsForGroups(ctx context.Context, groupIDs []int64) ([]int64, error)
	ApplicationIDsForOrgUnits(ctx context.Context, orgUnitIDs []int64) ([]int64, error)
	ApplicationIDsForPeople(ctx context.Context, personIDs []int64) ([]int64, error)
	ApplicationIDsForMeasurables(ctx context.Context, measurableIDs []int64) ([]int64, error)
}

// ApplicationSelector compiles a scope and resolves it to active applications.
// Services take it instead of building application id queries themselves.
type ApplicationSelector struct {
	compiler *Compiler
	resolver ApplicationResolver
}

func NewApplicationSelector(compiler *Compiler, resolver ApplicationResolver) *ApplicationSelector {
	return &ApplicationSelector{compiler: compiler, resolver: resolver}
}

// Select returns the active application ids in scope.
func (s *ApplicationSelector) Select(ctx context.Context, scope SelectionScope) (Filter, error) {
	resolve, err := s.resolverFor(scope.Root.Kind)
	if err != nil {
		return Filter{}, err
	}
	compiled, err := s.compiler.Compile(ctx, scope)
	if err != nil {
		return Filter{}, err
	}
	if compiled.IsEmpty() {
		return NewFilter(id.KindApplication), nil
	}
	appIDs, err := resolve(ctx, compiled.IDs())
	if err != nil {
		return Filter{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve applications for selection")
	}
	return NewFilter(id.KindApplication, appIDs...), nil
}

func (s *ApplicationSelector) resolverFor(kind id.EntityKind) (func(context.Context, []int64) ([]int64, error), error) {
	switch kind {
	case id.KindApplication:
		return s.resolver.ActiveApplicationIDs, nil
	case id.KindAppGroup:
		return s.resolver.ApplicationIDsForGroups, nil
	case id.KindOrgUnit:
		return s.resolver.ApplicationIDsForOrgUnits, nil
	case id.KindPerson:
		return s.resolver.ApplicationIDsForPeople, nil
	case id.KindMeasurable:
		return s.resolver.ApplicationIDsForMeasurables, nil
	}
	return nil, dErrors.Newf(dErrors.CodeValidation, "cannot select applications from %s", kind)
}
