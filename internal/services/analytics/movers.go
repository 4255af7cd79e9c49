package analytics

import (
	"sort"

	"CryptoPulse/internal/domain/models"
)

const moversPerSide = 3

// WeeklyMovers ranks assets by their 7-day price change. Assets without two
// usable price samples are excluded.
func WeeklyMovers(window []string, assets []models.AssetSnapshot, series map[string]models.DailySeries) models.Movers {
	entries := make([]models.MoverEntry, 0, len(assets))
	for _, asset := range assets {
		change, ok := Change7d(window, series[asset.ID])
		if !ok {
			continue
		}
		entries = append(entries, models.MoverEntry{
			ID:        asset.ID,
			Symbol:    asset.Symbol,
			Name:      asset.Name,
			Price:     asset.Price,
			ChangePct: change,
			MarketCap: asset.MarketCap,
		})
	}
	return rankMovers(entries)
}

// DailyMovers ranks assets by their 24h change from the snapshot.
func DailyMovers(assets []models.AssetSnapshot) models.Movers {
	entries := make([]models.MoverEntry, 0, len(assets))
	for _, asset := range assets {
		entries = append(entries, models.MoverEntry{
			ID:        asset.ID,
			Symbol:    asset.Symbol,
			Name:      asset.Name,
			Price:     asset.Price,
			ChangePct: asset.Change24hPct,
			MarketCap: asset.MarketCap,
		})
	}
	return rankMovers(entries)
}

// rankMovers sorts descending by change and takes the extremes: top three as
// gainers, bottom three reversed so the worst performer comes first.
func rankMovers(entries []models.MoverEntry) models.Movers {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ChangePct > entries[j].ChangePct
	})

	n := len(entries)
	top := moversPerSide
	if top > n {
		top = n
	}

	movers := models.Movers{
		Gainers: append([]models.MoverEntry(nil), entries[:top]...),
	}
	for i := 0; i < top; i++ {
		movers.Losers = append(movers.Losers, entries[n-1-i])
	}
	return movers
}
