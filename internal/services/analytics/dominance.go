package analytics

import (
	"math"

	"CryptoPulse/internal/domain/models"
)

// Dominance computes per-date market-cap shares for BTC, ETH and recognized
// stablecoins over the fetched set. Dates with a zero aggregate cap are
// skipped. Percentages are clamped to [0,100] and rounded to one decimal;
// they are independent shares, not a partition.
func Dominance(window []string, series map[string]models.DailySeries) []models.DominancePoint {
	out := make([]models.DominancePoint, 0, len(window))

	for _, date := range window {
		var dayTotal, btcCap, ethCap, stableCap float64
		for id, s := range series {
			v, ok := s.MarketCaps[date]
			if !ok {
				continue
			}
			dayTotal += v
			switch {
			case id == models.AssetBitcoin:
				btcCap = v
			case id == models.AssetEthereum:
				ethCap = v
			case models.StablecoinIDs[id]:
				stableCap += v
			}
		}
		if dayTotal == 0 {
			continue
		}

		out = append(out, models.DominancePoint{
			Date:      date,
			BTCPct:    sharePct(btcCap, dayTotal),
			ETHPct:    sharePct(ethCap, dayTotal),
			StablePct: sharePct(stableCap, dayTotal),
		})
	}
	return out
}

func sharePct(part, total float64) float64 {
	pct := part / total * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*10) / 10
}
