// Package region groups Tunisia's 24 governorates into the seven INS
// planning regions and computes regional and national aggregates.
package region

import (
	"math"
	"sort"

	"github.com/datalab-tn/povmap/internal/join"
	"github.com/datalab-tn/povmap/internal/model"
)

// Names of the seven regions, in the conventional north-to-south order.
var Names = []string{
	"Grand Tunis",
	"Nord-Est",
	"Nord-Ouest",
	"Centre-Est",
	"Centre-Ouest",
	"Sud-Est",
	"Sud-Ouest",
}

// byGovernorate maps normalized governorate keys to their region.
var byGovernorate = map[string]string{}

func init() {
	members := map[string][]string{
		"Grand Tunis":  {"Tunis", "Ariana", "Ben Arous", "Manouba"},
		"Nord-Est":     {"Nabeul", "Zaghouan", "Bizerte"},
		"Nord-Ouest":   {"Beja", "Jendouba", "Le Kef", "Siliana"},
		"Centre-Est":   {"Sousse", "Monastir", "Mahdia", "Sfax"},
		"Centre-Ouest": {"Kairouan", "Kasserine", "Sidi Bouzid"},
		"Sud-Est":      {"Gabes", "Medenine", "Tataouine"},
		"Sud-Ouest":    {"Gafsa", "Tozeur", "Kebili"},
	}
	for region, govs := range members {
		for _, g := range govs {
			byGovernorate[join.NormalizeKey(g)] = region
		}
	}
}

// Of returns the region for a governorate name, or "" if unknown.
func Of(governorate string) string {
	return byGovernorate[join.NormalizeKey(governorate)]
}

// Annotate fills the Region field of each record in place.
func Annotate(records []model.IndicatorRecord) {
	for i := range records {
		records[i].Region = Of(records[i].Governorate)
	}
}

// Aggregate computes per-region descriptive statistics over the annotated
// records. Regions appear in the fixed Names order; regions with no
// records are omitted. Governorate lists are sorted for determinism.
func Aggregate(records []model.IndicatorRecord) []model.RegionStats {
	grouped := make(map[string][]model.IndicatorRecord)
	for _, rec := range records {
		if rec.Region == "" {
			continue
		}
		grouped[rec.Region] = append(grouped[rec.Region], rec)
	}

	var out []model.RegionStats
	for _, name := range Names {
		recs := grouped[name]
		if len(recs) == 0 {
			continue
		}
		rates := make([]float64, 0, len(recs))
		govs := make([]string, 0, len(recs))
		var pop int64
		for _, r := range recs {
			rates = append(rates, r.PovertyRate)
			govs = append(govs, r.Governorate)
			pop += r.Population
		}
		sort.Strings(govs)
		sort.Float64s(rates)

		out = append(out, model.RegionStats{
			Region:       name,
			Governorates: govs,
			Mean:         mean(rates),
			Median:       median(rates),
			Min:          rates[0],
			Max:          rates[len(rates)-1],
			StdDev:       stddev(rates),
			Population:   pop,
		})
	}
	return out
}

// Summarize computes the national summary: the population-weighted national
// rate (plain mean when no populations are present), the regional extremes
// and gap, and the full governorate ranking with rank 1 the poorest.
func Summarize(records []model.IndicatorRecord, regions []model.RegionStats) model.NationalSummary {
	var s model.NationalSummary
	s.NationalRate = nationalRate(records)

	for _, r := range regions {
		if s.PoorestRegion == "" || r.Mean > s.PoorestRate {
			s.PoorestRegion, s.PoorestRate = r.Region, r.Mean
		}
		if s.RichestRegion == "" || r.Mean < s.RichestRate {
			s.RichestRegion, s.RichestRate = r.Region, r.Mean
		}
	}
	s.RegionalGap = s.PoorestRate - s.RichestRate

	ranked := make([]model.Ranking, 0, len(records))
	for _, rec := range records {
		ranked = append(ranked, model.Ranking{
			Governorate: rec.Governorate,
			Region:      rec.Region,
			PovertyRate: rec.PovertyRate,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PovertyRate != ranked[j].PovertyRate {
			return ranked[i].PovertyRate > ranked[j].PovertyRate
		}
		return ranked[i].Governorate < ranked[j].Governorate
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	s.Rankings = ranked

	n := min(5, len(ranked))
	s.Top5Poorest = append([]model.Ranking(nil), ranked[:n]...)
	richest := append([]model.Ranking(nil), ranked[len(ranked)-n:]...)
	for i, j := 0, len(richest)-1; i < j; i, j = i+1, j-1 {
		richest[i], richest[j] = richest[j], richest[i]
	}
	s.Top5Richest = richest

	return s
}

func nationalRate(records []model.IndicatorRecord) float64 {
	var totalPop int64
	for _, r := range records {
		totalPop += r.Population
	}
	if totalPop > 0 {
		var weighted float64
		for _, r := range records {
			weighted += r.PovertyRate * float64(r.Population)
		}
		return weighted / float64(totalPop)
	}
	rates := make([]float64, 0, len(records))
	for _, r := range records {
		rates = append(rates, r.PovertyRate)
	}
	return mean(rates)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// median expects xs sorted.
func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}

// stddev is the sample standard deviation; 0 for fewer than two values.
func stddev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	var ss float64
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	return math.Sqrt(ss / float64(n-1))
}
