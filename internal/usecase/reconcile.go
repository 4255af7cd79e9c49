package usecase

import (
	"sort"

	"CryptoPulse/internal/domain/models"
)

// Reconcile aligns per-asset daily series onto the shared calendar window.
// Presence is decided per data point: an asset appears on a date exactly when
// its history holds a market-cap sample for that date, whether or not it was
// in the top-N on that day. Assets within a date are sorted descending by
// market cap.
func Reconcile(window []string, assets []models.AssetSnapshot, series map[string]models.DailySeries) []models.DaySnapshot {
	out := make([]models.DaySnapshot, 0, len(window))

	for _, date := range window {
		day := models.DaySnapshot{Date: date}
		for _, asset := range assets {
			s, ok := series[asset.ID]
			if !ok {
				continue
			}
			mcap, ok := s.MarketCaps[date]
			if !ok {
				continue
			}
			entry := models.DayAsset{
				ID:        asset.ID,
				Symbol:    asset.Symbol,
				Name:      asset.Name,
				MarketCap: mcap,
			}
			if price, ok := s.Prices[date]; ok {
				p := price
				entry.Price = &p
			}
			day.Assets = append(day.Assets, entry)
		}

		sort.SliceStable(day.Assets, func(i, j int) bool {
			return day.Assets[i].MarketCap > day.Assets[j].MarketCap
		})
		out = append(out, day)
	}

	return out
}
