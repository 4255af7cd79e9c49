package chart

import (
	"sort"

	"CryptoPulse/internal/domain/models"
)

const edgeCount = 3

// Normalize builds an asset's display series from its market-cap samples:
// each value is rescaled so the first available sample reads 100. DayIndex is
// the position within the calendar window, so gaps stay visible.
func Normalize(window []string, series models.DailySeries) []models.ChartPoint {
	var points []models.ChartPoint
	first := 0.0
	for i, date := range window {
		v, ok := series.MarketCaps[date]
		if !ok || v == 0 {
			continue
		}
		if first == 0 {
			first = v
		}
		points = append(points, models.ChartPoint{DayIndex: i, Value: v / first * 100})
	}
	return points
}

// Select picks the bounded display subset: the union of the top three and
// bottom three by final normalized value, plus Bitcoin and Ethereum whenever
// they qualify. Only assets with at least two reconciled points qualify. The
// result keeps growth-rank order and can hold fewer than eight entries when
// the union overlaps.
func Select(window []string, assets []models.AssetSnapshot, series map[string]models.DailySeries) []models.ChartSeries {
	type candidate struct {
		asset  models.AssetSnapshot
		points []models.ChartPoint
		final  float64
	}

	candidates := make([]candidate, 0, len(assets))
	for _, asset := range assets {
		points := Normalize(window, series[asset.ID])
		if len(points) < 2 {
			continue
		}
		candidates = append(candidates, candidate{
			asset:  asset,
			points: points,
			final:  points[len(points)-1].Value,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].final > candidates[j].final
	})

	selected := make(map[string]bool, 2*edgeCount+2)
	for i, c := range candidates {
		if i < edgeCount || i >= len(candidates)-edgeCount {
			selected[c.asset.ID] = true
		}
		if c.asset.ID == models.AssetBitcoin || c.asset.ID == models.AssetEthereum {
			selected[c.asset.ID] = true
		}
	}

	out := make([]models.ChartSeries, 0, len(selected))
	for _, c := range candidates {
		if !selected[c.asset.ID] {
			continue
		}
		out = append(out, models.ChartSeries{
			ID:     c.asset.ID,
			Symbol: c.asset.Symbol,
			Name:   c.asset.Name,
			Points: c.points,
		})
	}
	return out
}
