package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		input    []int64
		expected []int64
	}{
		{name: "nil input", input: nil, expected: nil},
		{name: "empty input", input: []int64{}, expected: []int64{}},
		{name: "keeps first occurrence order", input: []int64{3, 1, 3, 2, 1}, expected: []int64{3, 1, 2}},
		{name: "drops non positive ids", input: []int64{0, -4, 5}, expected: []int64{5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Dedupe(tt.input))
		})
	}
}
