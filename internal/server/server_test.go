package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/datalab-tn/povmap/internal/config"
	"github.com/datalab-tn/povmap/internal/model"
)

func testServer(t *testing.T, cfg config.ServerConfig) *Server {
	t.Helper()
	poly, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{{
		{10.0, 36.7}, {10.4, 36.7}, {10.4, 36.9}, {10.0, 36.7},
	}})
	require.NoError(t, err)

	snap := &model.Snapshot{
		LoadID:   "test-load",
		LoadedAt: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
		Features: []model.JoinedFeature{
			{
				Feature: model.GeoFeature{Name: "Tunis", Geometry: poly},
				Record:  model.IndicatorRecord{Governorate: "Tunis", PovertyRate: 4.6, Region: "Grand Tunis"},
				Color:   "#2E7D32",
			},
		},
		Records: []model.IndicatorRecord{
			{Governorate: "Tunis", PovertyRate: 4.6, Region: "Grand Tunis"},
		},
		Breaks: []float64{10, 20},
		Regions: []model.RegionStats{
			{Region: "Grand Tunis", Governorates: []string{"Tunis"}, Mean: 4.6},
		},
		National: model.NationalSummary{NationalRate: 4.6, PoorestRegion: "Grand Tunis"},
	}
	return New(snap, cfg)
}

func defaultTestConfig() config.ServerConfig {
	return config.ServerConfig{
		Port:           0,
		RateLimit:      100,
		RateBurst:      100,
		AllowedOrigins: []string{"*"},
	}
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := testServer(t, defaultTestConfig())
	rec := get(t, s.Handler(), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test-load", body["load_id"])
}

func TestSummary(t *testing.T) {
	s := testServer(t, defaultTestConfig())
	rec := get(t, s.Handler(), "/api/summary")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		LoadID   string                `json:"load_id"`
		Breaks   []float64             `json:"breaks"`
		National model.NationalSummary `json:"national"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []float64{10, 20}, body.Breaks)
	assert.Equal(t, 4.6, body.National.NationalRate)
}

func TestGovernorates(t *testing.T) {
	s := testServer(t, defaultTestConfig())
	rec := get(t, s.Handler(), "/api/governorates")

	require.Equal(t, http.StatusOK, rec.Code)
	var records []model.IndicatorRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Tunis", records[0].Governorate)
}

func TestRegions(t *testing.T) {
	s := testServer(t, defaultTestConfig())
	rec := get(t, s.Handler(), "/api/regions")

	require.Equal(t, http.StatusOK, rec.Code)
	var regions []model.RegionStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &regions))
	require.Len(t, regions, 1)
	assert.Equal(t, "Grand Tunis", regions[0].Region)
}

func TestGeoJSON(t *testing.T) {
	s := testServer(t, defaultTestConfig())
	rec := get(t, s.Handler(), "/api/geojson")

	require.Equal(t, http.StatusOK, rec.Code)
	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "Tunis", fc.Features[0].Properties["governorate"])
	assert.Equal(t, "#2E7D32", fc.Features[0].Properties["color"])
}

func TestIndexServesDashboard(t *testing.T) {
	s := testServer(t, defaultTestConfig())
	rec := get(t, s.Handler(), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Carte de la Pauvreté")
}

func TestRateLimit(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.RateLimit = 1
	cfg.RateBurst = 2
	s := testServer(t, cfg)

	codes := make(map[int]int)
	for i := 0; i < 5; i++ {
		rec := get(t, s.Handler(), "/healthz")
		codes[rec.Code]++
	}
	assert.GreaterOrEqual(t, codes[http.StatusOK], 2)
	assert.GreaterOrEqual(t, codes[http.StatusTooManyRequests], 1)
}
