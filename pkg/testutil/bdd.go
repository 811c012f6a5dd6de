package testutil

import "testing"

// Given nests a subtest named for its precondition. When and Then nest the
// same way, so a failure reads as a scenario.
func Given(t *testing.T, precondition string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("given "+precondition, fn)
}

func When(t *testing.T, action string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("when "+action, fn)
}

func Then(t *testing.T, outcome string, fn func(t *testing.T)) {
	t.Helper()
	t.Run("then "+outcome, fn)
}
