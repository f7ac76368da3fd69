package join

import (
	"math"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/datalab-tn/povmap/internal/model"
)

// Method selects how bin breaks are computed.
type Method string

const (
	MethodQuantile Method = "quantile"
	MethodFixed    Method = "fixed"
)

// DefaultBins matches the six-step color ramp.
const DefaultBins = 6

// Palette is the green-to-red ramp used by the choropleth, lowest bin first.
var Palette = []string{"#2E7D32", "#66BB6A", "#FDD835", "#FB8C00", "#E53935", "#B71C1C"}

// QuantileBreaks computes bins-1 interior breaks from the observed rates.
// Breaks are strictly increasing; when the distribution has heavy ties the
// result may have fewer breaks than requested. Identical input always
// yields identical breaks.
func QuantileBreaks(rates []float64, bins int) ([]float64, error) {
	if bins < 2 {
		return nil, eris.Errorf("classify: bin count %d must be at least 2", bins)
	}
	if len(rates) == 0 {
		return nil, eris.New("classify: no rates to bin")
	}

	sorted := make([]float64, len(rates))
	copy(sorted, rates)
	sort.Float64s(sorted)

	n := len(sorted)
	var breaks []float64
	prev := sorted[0] // breaks stay strictly above the minimum so it lands in bin 0
	for i := 1; i < bins; i++ {
		q := float64(i) / float64(bins)
		pos := q * float64(n-1)
		lo := int(math.Floor(pos))
		frac := pos - float64(lo)
		v := sorted[lo]
		if lo+1 < n {
			v += frac * (sorted[lo+1] - sorted[lo])
		}
		if v > prev {
			breaks = append(breaks, v)
			prev = v
		}
	}
	return breaks, nil
}

// FixedBreaks validates configured thresholds: strictly increasing, within
// the 0..100 rate domain, and at most len(Palette)-1 of them.
func FixedBreaks(breaks []float64) ([]float64, error) {
	if len(breaks) == 0 {
		return nil, eris.New("classify: fixed method requires at least one break")
	}
	if len(breaks) > len(Palette)-1 {
		return nil, eris.Errorf("classify: %d breaks exceed the %d-color palette", len(breaks), len(Palette))
	}
	for i, b := range breaks {
		if b < 0 || b > 100 {
			return nil, eris.Errorf("classify: break %.2f outside 0..100", b)
		}
		if i > 0 && b <= breaks[i-1] {
			return nil, eris.Errorf("classify: breaks must be strictly increasing (%.2f after %.2f)", b, breaks[i-1])
		}
	}
	out := make([]float64, len(breaks))
	copy(out, breaks)
	return out, nil
}

// Assign returns the bin index for a rate. Intervals are lower-bound
// inclusive: with breaks {20, 40} a rate of exactly 20 falls in bin 1.
func Assign(rate float64, breaks []float64) int {
	bin := 0
	for _, b := range breaks {
		if rate >= b {
			bin++
		} else {
			break
		}
	}
	return bin
}

// Classify assigns a bin and palette color to every joined feature. With
// fewer breaks than palette steps (deduplicated quantiles), bins are
// spread across the ramp so the extremes keep the extreme colors.
func Classify(features []model.JoinedFeature, breaks []float64) {
	steps := max(len(breaks), 1)
	for i := range features {
		bin := Assign(features[i].Record.PovertyRate, breaks)
		features[i].Bin = bin
		features[i].Color = Palette[bin*(len(Palette)-1)/steps]
	}
}
