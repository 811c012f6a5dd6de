package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodes(t *testing.T) {
	t.Run("wrapped domain error keeps its code", func(t *testing.T) {
		base := errors.New("connection reset")
		err := fmt.Errorf("load group: %w", Wrap(base, CodeInternal, "failed to load group"))

		assert.True(t, HasCode(err, CodeInternal))
		assert.ErrorIs(t, err, base)
		assert.Equal(t, CodeInternal, CodeOf(err))
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, HasCode(err, CodeNotFound))
		assert.Equal(t, CodeInternal, CodeOf(err))
	})

	t.Run("nil is never coded", func(t *testing.T) {
		assert.False(t, Is(nil, CodeValidation))
	})

	t.Run("message is formatted", func(t *testing.T) {
		err := Newf(CodeNotFound, "group %d not found", 42)
		assert.Equal(t, "not_found: group 42 not found", err.Error())
	})
}
