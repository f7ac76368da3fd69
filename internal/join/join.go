package join

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/datalab-tn/povmap/internal/model"
)

// UnmatchedFeatureError reports every boundary feature whose key has no
// corresponding indicator record. All mismatches are collected before
// failing so the data can be fixed in one pass.
type UnmatchedFeatureError struct {
	Keys []string
}

func (e *UnmatchedFeatureError) Error() string {
	return fmt.Sprintf("join: no indicator record for %d feature(s): %s",
		len(e.Keys), strings.Join(e.Keys, ", "))
}

// Join matches each boundary feature to its indicator record by normalized
// governorate key. Every feature must resolve to exactly one record;
// otherwise Join fails with *UnmatchedFeatureError naming all unmatched
// features. Output order follows the input feature order. Bin and Color
// are zero-valued until Classify assigns them.
func Join(features []model.GeoFeature, records []model.IndicatorRecord) ([]model.JoinedFeature, error) {
	byKey := make(map[string]model.IndicatorRecord, len(records))
	for _, rec := range records {
		byKey[NormalizeKey(rec.Governorate)] = rec
	}

	joined := make([]model.JoinedFeature, 0, len(features))
	matched := make(map[string]bool, len(features))
	var unmatched []string
	for _, f := range features {
		key := NormalizeKey(f.Name)
		rec, ok := byKey[key]
		if !ok {
			unmatched = append(unmatched, f.Name)
			continue
		}
		matched[key] = true
		joined = append(joined, model.JoinedFeature{Feature: f, Record: rec})
	}

	if len(unmatched) > 0 {
		return nil, &UnmatchedFeatureError{Keys: unmatched}
	}

	// Indicator rows without a polygon are tolerated: the source table also
	// carries rows below governorate level that have no boundary.
	for _, rec := range records {
		if !matched[NormalizeKey(rec.Governorate)] {
			zap.L().Warn("indicator record has no boundary feature",
				zap.String("governorate", rec.Governorate),
			)
		}
	}

	return joined, nil
}
