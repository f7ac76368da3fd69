// Package model defines the entities shared across the load, join, and serve stages.
package model

// IndicatorRecord is one row of the poverty indicator table, keyed by
// governorate name.
type IndicatorRecord struct {
	Governorate string  `json:"governorate"`
	PovertyRate float64 `json:"poverty_rate"`
	Population  int64   `json:"population,omitempty"`
	Region      string  `json:"region,omitempty"`
}

// Ranking is a governorate's position when sorted by poverty rate,
// rank 1 being the poorest.
type Ranking struct {
	Rank        int     `json:"rank"`
	Governorate string  `json:"governorate"`
	Region      string  `json:"region"`
	PovertyRate float64 `json:"poverty_rate"`
}

// RegionStats holds descriptive statistics for one region's governorates.
type RegionStats struct {
	Region       string   `json:"region"`
	Governorates []string `json:"governorates"`
	Mean         float64  `json:"mean"`
	Median       float64  `json:"median"`
	Min          float64  `json:"min"`
	Max          float64  `json:"max"`
	StdDev       float64  `json:"std_dev"`
	Population   int64    `json:"population"`
}

// NationalSummary aggregates the indicator table to the national level.
type NationalSummary struct {
	NationalRate  float64   `json:"national_rate"`
	PoorestRegion string    `json:"poorest_region"`
	PoorestRate   float64   `json:"poorest_rate"`
	RichestRegion string    `json:"richest_region"`
	RichestRate   float64   `json:"richest_rate"`
	RegionalGap   float64   `json:"regional_gap"`
	Rankings      []Ranking `json:"rankings"`
	Top5Poorest   []Ranking `json:"top5_poorest"`
	Top5Richest   []Ranking `json:"top5_richest"`
}
