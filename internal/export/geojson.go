// Package export writes a snapshot out as GeoJSON or an XLSX workbook.
package export

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/datalab-tn/povmap/internal/model"
)

// FeatureCollection converts the snapshot's joined features to a GeoJSON
// FeatureCollection carrying rate, bin, color, and region properties. The
// same structure backs the /api/geojson endpoint and the file export.
func FeatureCollection(snap *model.Snapshot) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{}
	for _, jf := range snap.Features {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       jf.Record.Governorate,
			Geometry: jf.Feature.Geometry,
			Properties: map[string]any{
				"governorate":  jf.Record.Governorate,
				"region":       jf.Record.Region,
				"poverty_rate": jf.Record.PovertyRate,
				"population":   jf.Record.Population,
				"bin":          jf.Bin,
				"color":        jf.Color,
			},
		})
	}
	return fc
}

// WriteGeoJSON writes the joined features to path.
func WriteGeoJSON(snap *model.Snapshot, path string) error {
	data, err := json.MarshalIndent(FeatureCollection(snap), "", "  ")
	if err != nil {
		return eris.Wrap(err, "export: marshal feature collection")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return eris.Wrapf(err, "export: write %s", path)
	}
	return nil
}
