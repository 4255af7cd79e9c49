package analytics

import (
	"sort"

	"CryptoPulse/internal/domain/models"
)

const momentumTop = 3

// Momentum combines each asset's 24h rank and 7-day mean-return rank into a
// rank sum; lower is stronger. All sorts are stable so ties keep the original
// iteration order. The top three by ascending rank sum are returned.
func Momentum(assets []models.AssetSnapshot, metrics []models.AssetMetrics) []models.MomentumScore {
	mean7d := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		mean7d[m.ID] = m.Stats7d.Mean
	}

	rank24 := rankDesc(assets, func(a models.AssetSnapshot) float64 { return a.Change24hPct })
	rank7 := rankDesc(assets, func(a models.AssetSnapshot) float64 { return mean7d[a.ID] })

	scores := make([]models.MomentumScore, 0, len(assets))
	for _, a := range assets {
		scores = append(scores, models.MomentumScore{
			ID:      a.ID,
			Symbol:  a.Symbol,
			RankSum: rank24[a.ID] + rank7[a.ID],
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].RankSum < scores[j].RankSum
	})

	if len(scores) > momentumTop {
		scores = scores[:momentumTop]
	}
	return scores
}

// rankDesc assigns rank 0 to the highest value.
func rankDesc(assets []models.AssetSnapshot, value func(models.AssetSnapshot) float64) map[string]int {
	order := append([]models.AssetSnapshot(nil), assets...)
	sort.SliceStable(order, func(i, j int) bool {
		return value(order[i]) > value(order[j])
	})

	ranks := make(map[string]int, len(order))
	for i, a := range order {
		ranks[a.ID] = i
	}
	return ranks
}
