package handler

import (
	"context"
	"fmt"
)

// mutationState tracks one rating mutation through authorization and write.
type mutationState int

const (
	stateUnchecked mutationState = iota
	stateAuthorized
	stateDenied
	stateApplied
)

func (s mutationState) String() string {
	switch s {
	case stateUnchecked:
		return "UNCHECKED"
	case stateAuthorized:
		return "AUTHORIZED"
	case stateDenied:
		return "DENIED"
	case stateApplied:
		return "APPLIED"
	}
	return fmt.Sprintf("mutationState(%d)", int(s))
}

var allowedTransitions = map[mutationState][]mutationState{
	stateUnchecked:  {stateAuthorized, stateDenied},
	stateAuthorized: {stateApplied},
}

// mutation runs authorize then apply. apply is only reachable from
// AUTHORIZED, so a denied or failed check never writes.
type mutation struct {
	state     mutationState
	authorize func(ctx context.Context) error
	apply     func(ctx context.Context) error
}

func newMutation(authorize, apply func(ctx context.Context) error) *mutation {
	return &mutation{state: stateUnchecked, authorize: authorize, apply: apply}
}

func (m *mutation) transition(next mutationState) error {
	for _, allowed := range allowedTransitions[m.state] {
		if allowed == next {
			m.state = next
			return nil
		}
	}
	return fmt.Errorf("illegal rating mutation transition %s -> %s", m.state, next)
}

// run returns the authorization error when denied, or the apply error.
func (m *mutation) run(ctx context.Context) error {
	if err := m.authorize(ctx); err != nil {
		if terr := m.transition(stateDenied); terr != nil {
			return terr
		}
		return err
	}
	if err := m.transition(stateAuthorized); err != nil {
		return err
	}
	if err := m.apply(ctx); err != nil {
		return err
	}
	return m.transition(stateApplied)
}
