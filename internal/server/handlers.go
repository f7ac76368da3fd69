package server

import (
	"embed"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/datalab-tn/povmap/internal/export"
)

//go:embed static/dashboard.html
var static embed.FS

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"load_id": s.snap.LoadID,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"load_id":   s.snap.LoadID,
		"loaded_at": s.snap.LoadedAt,
		"breaks":    s.snap.Breaks,
		"national":  s.snap.National,
	})
}

func (s *Server) handleGovernorates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snap.Records)
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.snap.Regions)
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, export.FeatureCollection(s.snap))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/dashboard.html")
	if err != nil {
		http.Error(w, "dashboard page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}
