package analytics

import (
	"sort"

	"CryptoPulse/internal/domain/models"
)

// Mood thresholds. Both breadth and median must agree for a directional
// label; anything else is MIXED.
const (
	riskOnBreadth  = 65.0
	riskOffBreadth = 35.0
)

// Mood classifies the market from breadth (share of assets up over 24h) and
// the median 24h return.
func Mood(assets []models.AssetSnapshot) models.MarketMood {
	if len(assets) == 0 {
		return models.MarketMood{Mood: models.MoodMixed}
	}

	up := 0
	changes := make([]float64, 0, len(assets))
	for _, a := range assets {
		if a.Change24hPct > 0 {
			up++
		}
		changes = append(changes, a.Change24hPct)
	}

	breadth := float64(up) / float64(len(assets)) * 100
	median := medianOf(changes)

	return models.MarketMood{
		BreadthPct:      breadth,
		MedianReturnPct: median,
		Mood:            classify(breadth, median),
	}
}

// classify requires breadth and median to agree; breadth alone never decides.
func classify(breadth, median float64) string {
	switch {
	case breadth >= riskOnBreadth && median > 0:
		return models.MoodRiskOn
	case breadth <= riskOffBreadth && median < 0:
		return models.MoodRiskOff
	default:
		return models.MoodMixed
	}
}

func medianOf(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
