package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	cases := []struct {
		amount float64
		band   CostBand
	}{
		{-5, CostBands[0]},
		{0, CostBands[0]},
		{999.99, CostBands[0]},
		{1_000, CostBands[1]},
		{49_999, CostBand{Low: 10_000, High: 50_000}},
		{1_000_000, CostBand{Low: 1_000_000}},
		{9e12, CostBand{Low: 1_000_000}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.band, CostBands[BandFor(tc.amount)], "amount %v", tc.amount)
	}
}
