package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/datalab-tn/povmap/internal/model"
)

// LoadBoundaries reads a GeoJSON FeatureCollection of governorate polygons.
// Each feature must carry a non-empty string value for nameProperty and a
// Polygon or MultiPolygon geometry. Features are returned in file order.
func LoadBoundaries(path, nameProperty string) ([]model.GeoFeature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, eris.Wrapf(err, "loader: read %s", path)
	}

	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, &MalformedDataError{Path: path, Reasons: []string{"invalid GeoJSON: " + err.Error()}}
	}

	var (
		features []model.GeoFeature
		reasons  []string
	)
	for i, f := range fc.Features {
		name, ok := f.Properties[nameProperty].(string)
		if !ok || strings.TrimSpace(name) == "" {
			reasons = append(reasons, fmt.Sprintf("feature %d: missing or empty property %s", i, nameProperty))
			continue
		}
		switch f.Geometry.(type) {
		case *geom.Polygon, *geom.MultiPolygon:
		default:
			reasons = append(reasons, fmt.Sprintf("feature %d (%s): geometry is not a Polygon or MultiPolygon", i, name))
			continue
		}
		features = append(features, model.GeoFeature{
			Name:     strings.TrimSpace(name),
			Geometry: f.Geometry,
		})
	}

	if len(reasons) > 0 {
		return nil, &MalformedDataError{Path: path, Reasons: reasons}
	}
	if len(features) == 0 {
		return nil, &MalformedDataError{Path: path, Reasons: []string{"no features in collection"}}
	}

	zap.L().Info("boundary file loaded",
		zap.String("path", path),
		zap.Int("features", len(features)),
	)
	return features, nil
}
