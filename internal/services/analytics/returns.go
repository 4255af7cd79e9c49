package analytics

import (
	"math"

	"CryptoPulse/internal/domain/models"
)

// DailyReturns computes day-over-day percentage price returns over the
// available non-zero samples within the window. Sparse series yield returns
// between consecutive available samples, not calendar-adjacent ones.
func DailyReturns(window []string, series models.DailySeries) []float64 {
	prices := make([]float64, 0, len(window))
	for _, date := range window {
		p, ok := series.Prices[date]
		if !ok || p == 0 {
			continue
		}
		prices = append(prices, p)
	}

	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, (prices[i]-prices[i-1])/prices[i-1]*100)
	}
	return returns
}

// Stats summarizes returns with mean and sample standard deviation. Fewer
// than two returns leave both at zero.
func Stats(returns []float64) models.ReturnStats {
	n := len(returns)
	if n == 0 {
		return models.ReturnStats{}
	}

	sum := 0.0
	for _, r := range returns {
		sum += r
	}
	mean := sum / float64(n)
	if n < 2 {
		return models.ReturnStats{Mean: mean}
	}

	ss := 0.0
	for _, r := range returns {
		d := r - mean
		ss += d * d
	}
	return models.ReturnStats{Mean: mean, Std: math.Sqrt(ss / float64(n-1))}
}

// Change7d is the percentage change between the first and last available
// price samples in the window. ok is false when fewer than two samples exist.
func Change7d(window []string, series models.DailySeries) (float64, bool) {
	first, last := 0.0, 0.0
	count := 0
	for _, date := range window {
		p, ok := series.Prices[date]
		if !ok || p == 0 {
			continue
		}
		if count == 0 {
			first = p
		}
		last = p
		count++
	}
	if count < 2 || first == 0 {
		return 0, false
	}
	return (last - first) / first * 100, true
}

// AssetMetrics derives per-asset return stats and the z-score anomaly flag.
// The z-score compares the 24h change against the asset's own 7-day return
// distribution; it is suppressed entirely when the std is zero.
func AssetMetrics(window []string, assets []models.AssetSnapshot, series map[string]models.DailySeries) []models.AssetMetrics {
	out := make([]models.AssetMetrics, 0, len(assets))
	for _, asset := range assets {
		stats := Stats(DailyReturns(window, series[asset.ID]))
		m := models.AssetMetrics{
			ID:           asset.ID,
			Symbol:       asset.Symbol,
			Change24hPct: asset.Change24hPct,
			Stats7d:      stats,
		}
		if stats.Std > 0 {
			m.ZScore = (asset.Change24hPct - stats.Mean) / stats.Std
			m.Unusual = math.Abs(m.ZScore) >= 2.0
		}
		out = append(out, m)
	}
	return out
}
