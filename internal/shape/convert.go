// Package shape converts a governorate shapefile into the boundary GeoJSON
// the loader consumes.
package shape

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"
)

// Convert reads a polygon shapefile, takes the governorate name from
// nameField, and writes a GeoJSON FeatureCollection whose features carry
// that name under nameProperty. Records without a usable polygon or name
// are skipped with a warning.
func Convert(shpPath, nameField, nameProperty, outPath string) (int, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return 0, eris.Wrapf(err, "shape: open %s", shpPath)
	}
	defer func() { _ = reader.Close() }()

	nameIdx := fieldIndex(reader, nameField)
	if nameIdx < 0 {
		return 0, eris.Errorf("shape: field %s not found in %s", nameField, shpPath)
	}

	log := zap.L().With(zap.String("component", "shape.convert"))

	fc := &geojson.FeatureCollection{}
	for reader.Next() {
		n, s := reader.Shape()
		name := strings.TrimSpace(reader.Attribute(nameIdx))
		if name == "" {
			log.Warn("skipping record with empty name", zap.Int("record", n))
			continue
		}

		poly, ok := s.(*shp.Polygon)
		if !ok {
			log.Warn("skipping non-polygon record",
				zap.Int("record", n),
				zap.String("name", name),
			)
			continue
		}
		mp := polygonToMultiPolygon(poly)
		if mp == nil {
			log.Warn("skipping degenerate polygon",
				zap.Int("record", n),
				zap.String("name", name),
			)
			continue
		}

		fc.Features = append(fc.Features, &geojson.Feature{
			ID:         name,
			Geometry:   mp,
			Properties: map[string]any{nameProperty: name},
		})
	}

	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return 0, eris.Wrap(err, "shape: marshal feature collection")
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, eris.Wrapf(err, "shape: write %s", outPath)
	}

	log.Info("shapefile converted",
		zap.String("out", outPath),
		zap.Int("features", len(fc.Features)),
	)
	return len(fc.Features), nil
}

// fieldIndex returns the index of a named attribute field, or -1 if not
// found. Shapefile field names are fixed-width and NUL padded.
func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}

// polygonToMultiPolygon converts a shapefile Polygon to a go-geom
// MultiPolygon, each part becoming a single-ring polygon. Rings are closed
// if the shapefile left them open.
func polygonToMultiPolygon(p *shp.Polygon) *geom.MultiPolygon {
	if p == nil || p.NumParts == 0 || len(p.Points) == 0 {
		return nil
	}

	mp := geom.NewMultiPolygon(geom.XY).SetSRID(4326)
	for i := int32(0); i < p.NumParts; i++ {
		start := p.Parts[i]
		var end int32
		if i+1 < p.NumParts {
			end = p.Parts[i+1]
		} else {
			end = int32(len(p.Points))
		}
		if end-start < 3 {
			continue
		}

		coords := make([]geom.Coord, 0, end-start+1)
		for j := start; j < end; j++ {
			coords = append(coords, geom.Coord{p.Points[j].X, p.Points[j].Y})
		}
		if !coordsEqual(coords[0], coords[len(coords)-1]) {
			coords = append(coords, coords[0])
		}

		poly, err := geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{coords})
		if err != nil {
			continue
		}
		if err := mp.Push(poly); err != nil {
			continue
		}
	}

	if mp.NumPolygons() == 0 {
		return nil
	}
	return mp
}

func coordsEqual(a, b geom.Coord) bool {
	return a[0] == b[0] && a[1] == b[1]
}
