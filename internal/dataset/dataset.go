// Package dataset orchestrates one load: read the two input files, join
// boundaries to indicators, classify rates, and aggregate. The result is an
// immutable model.Snapshot consumed by the server and the exporters.
package dataset

import (
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/datalab-tn/povmap/internal/config"
	"github.com/datalab-tn/povmap/internal/join"
	"github.com/datalab-tn/povmap/internal/loader"
	"github.com/datalab-tn/povmap/internal/model"
	"github.com/datalab-tn/povmap/internal/region"
)

// Load builds a Snapshot from the configured input files. Any error from
// the loader or joiner aborts the load; there is no partial result.
func Load(data config.DataConfig, classify config.ClassifyConfig) (*model.Snapshot, error) {
	records, err := loader.LoadIndicators(data.IndicatorPath, loader.CSVOptions{})
	if err != nil {
		return nil, err
	}
	region.Annotate(records)

	features, err := loader.LoadBoundaries(data.BoundaryPath, data.NameProperty)
	if err != nil {
		return nil, err
	}

	joined, err := join.Join(features, records)
	if err != nil {
		return nil, err
	}

	breaks, err := computeBreaks(joined, classify)
	if err != nil {
		return nil, err
	}
	join.Classify(joined, breaks)

	regions := region.Aggregate(records)

	snap := &model.Snapshot{
		LoadID:   uuid.New().String(),
		LoadedAt: time.Now().UTC(),
		Features: joined,
		Records:  records,
		Breaks:   breaks,
		Regions:  regions,
		National: region.Summarize(records, regions),
	}

	zap.L().Info("snapshot built",
		zap.String("load_id", snap.LoadID),
		zap.Int("features", len(snap.Features)),
		zap.Int("bins", len(breaks)+1),
		zap.Float64("national_rate", snap.National.NationalRate),
	)
	return snap, nil
}

func computeBreaks(joined []model.JoinedFeature, cfg config.ClassifyConfig) ([]float64, error) {
	switch join.Method(cfg.Method) {
	case join.MethodFixed:
		return join.FixedBreaks(cfg.Breaks)
	case join.MethodQuantile, "":
		bins := cfg.Bins
		if bins == 0 {
			bins = join.DefaultBins
		}
		rates := make([]float64, 0, len(joined))
		for _, f := range joined {
			rates = append(rates, f.Record.PovertyRate)
		}
		return join.QuantileBreaks(rates, bins)
	default:
		return nil, eris.Errorf("dataset: unknown classify method %q", cfg.Method)
	}
}
