package model

import (
	"time"

	"github.com/twpayne/go-geom"
)

// GeoFeature is one governorate boundary from the GeoJSON file. Name is the
// join key (the value of the configured name property, NAME_1 by default).
type GeoFeature struct {
	Name     string `json:"name"`
	Geometry geom.T `json:"-"`
}

// JoinedFeature pairs a boundary with its matched indicator row and the
// derived choropleth bin.
type JoinedFeature struct {
	Feature GeoFeature      `json:"feature"`
	Record  IndicatorRecord `json:"record"`
	Bin     int             `json:"bin"`
	Color   string          `json:"color"`
}

// Snapshot is the immutable result of one load: every stage downstream of
// the loader reads from it and nothing mutates it. One Snapshot is built
// per process start and passed by reference to the server.
type Snapshot struct {
	LoadID   string            `json:"load_id"`
	LoadedAt time.Time         `json:"loaded_at"`
	Features []JoinedFeature   `json:"features"`
	Records  []IndicatorRecord `json:"records"`
	Breaks   []float64         `json:"breaks"`
	Regions  []RegionStats     `json:"regions"`
	National NationalSummary   `json:"national"`
}
