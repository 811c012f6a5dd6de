package models

import id "landscape/pkg/domain"

// KindTotal labels costs summed across every cost kind.
const KindTotal = "TOTAL"

// Cost is an amount for one reporting year.
type Cost struct {
	Year   int     `json:"year"`
	Amount float64 `json:"amount"`
	Kind   string  `json:"kind"`
}

type AssetCost struct {
	AssetCode string `json:"asset_code"`
	Cost      Cost   `json:"cost"`
}

type ApplicationCost struct {
	Application id.EntityReference `json:"application"`
	Name        string             `json:"name"`
	AssetCode   string             `json:"asset_code"`
	Cost        Cost               `json:"cost"`
}

// ApplicationAmount is the amount of one application summed over cost kinds.
type ApplicationAmount struct {
	ApplicationID int64   `db:"application_id" json:"application_id"`
	Amount        float64 `db:"amount" json:"amount"`
}

// CostBand is the half-open range [Low, High). A zero High means the band
// has no upper bound.
type CostBand struct {
	Low  float64 `json:"low"`
	High float64 `json:"high,omitempty"`
}

func (b CostBand) Contains(amount float64) bool {
	return amount >= b.Low && (b.High == 0 || amount < b.High)
}

// CostBands are the histogram buckets used for statistics, in ascending order.
var CostBands = []CostBand{
	{Low: 0, High: 1_000},
	{Low: 1_000, High: 5_000},
	{Low: 5_000, High: 10_000},
	{Low: 10_000, High: 50_000},
	{Low: 50_000, High: 100_000},
	{Low: 100_000, High: 500_000},
	{Low: 500_000, High: 1_000_000},
	{Low: 1_000_000},
}

// BandFor returns the index into CostBands for amount. Negative amounts
// count towards the lowest band.
func BandFor(amount float64) int {
	for i, b := range CostBands {
		if b.Contains(amount) {
			return i
		}
	}
	return 0
}

type Tally[K any] struct {
	ID    K   `json:"id"`
	Count int `json:"count"`
}

// AssetCostStatistics summarizes one selection for a single reporting year.
// Both figures are always computed against the same year.
type AssetCostStatistics struct {
	Year           int               `json:"year"`
	CostBandCounts []Tally[CostBand] `json:"cost_band_counts"`
	TotalCost      Cost              `json:"total_cost"`
}
