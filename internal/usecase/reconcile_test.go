package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"

	"CryptoPulse/internal/domain/models"
)

func daySeries(caps map[string]float64, prices map[string]float64) models.DailySeries {
	s := models.NewDailySeries()
	for d, v := range caps {
		s.MarketCaps[d] = v
	}
	for d, v := range prices {
		s.Prices[d] = v
	}
	return s
}

func TestReconcilePresencePerDataPoint(t *testing.T) {
	window := []string{"2024-10-09", "2024-10-10"}
	assets := []models.AssetSnapshot{
		{ID: "bitcoin", Symbol: "BTC"},
		{ID: "newcomer", Symbol: "NEW"},
	}
	series := map[string]models.DailySeries{
		"bitcoin": daySeries(
			map[string]float64{"2024-10-09": 1.2e12, "2024-10-10": 1.25e12},
			map[string]float64{"2024-10-09": 60000, "2024-10-10": 61000},
		),
		// Listed today but with history only for today.
		"newcomer": daySeries(
			map[string]float64{"2024-10-10": 5e9},
			map[string]float64{"2024-10-10": 12},
		),
	}

	days := Reconcile(window, assets, series)
	require.Len(t, days, 2)

	require.Len(t, days[0].Assets, 1)
	require.Equal(t, "bitcoin", days[0].Assets[0].ID)

	require.Len(t, days[1].Assets, 2)
}

func TestReconcileSortsByMarketCapDescending(t *testing.T) {
	window := []string{"2024-10-10"}
	assets := []models.AssetSnapshot{
		{ID: "small"}, {ID: "big"}, {ID: "mid"},
	}
	series := map[string]models.DailySeries{
		"small": daySeries(map[string]float64{"2024-10-10": 1e9}, nil),
		"big":   daySeries(map[string]float64{"2024-10-10": 9e9}, nil),
		"mid":   daySeries(map[string]float64{"2024-10-10": 5e9}, nil),
	}

	days := Reconcile(window, assets, series)
	require.Len(t, days[0].Assets, 3)
	require.Equal(t, "big", days[0].Assets[0].ID)
	require.Equal(t, "mid", days[0].Assets[1].ID)
	require.Equal(t, "small", days[0].Assets[2].ID)
}

func TestReconcileMissingPriceLeavesNil(t *testing.T) {
	window := []string{"2024-10-10"}
	assets := []models.AssetSnapshot{{ID: "bitcoin"}}
	series := map[string]models.DailySeries{
		"bitcoin": daySeries(map[string]float64{"2024-10-10": 1e12}, nil),
	}

	days := Reconcile(window, assets, series)
	require.Len(t, days[0].Assets, 1)
	require.Nil(t, days[0].Assets[0].Price)
	require.InDelta(t, 1e12, days[0].Assets[0].MarketCap, 1)
}

func TestReconcileEmptyDatesStayInCalendar(t *testing.T) {
	window := []string{"2024-10-08", "2024-10-09", "2024-10-10"}
	assets := []models.AssetSnapshot{{ID: "bitcoin"}}
	series := map[string]models.DailySeries{
		"bitcoin": daySeries(map[string]float64{"2024-10-10": 1e12}, nil),
	}

	days := Reconcile(window, assets, series)
	require.Len(t, days, 3)
	require.Empty(t, days[0].Assets)
	require.Empty(t, days[1].Assets)
	require.Len(t, days[2].Assets, 1)
}

func TestReconcileAssetWithoutSeriesSkipped(t *testing.T) {
	window := []string{"2024-10-10"}
	assets := []models.AssetSnapshot{{ID: "bitcoin"}, {ID: "ghost"}}
	series := map[string]models.DailySeries{
		"bitcoin": daySeries(map[string]float64{"2024-10-10": 1e12}, nil),
	}

	days := Reconcile(window, assets, series)
	require.Len(t, days[0].Assets, 1)
	require.Equal(t, "bitcoin", days[0].Assets[0].ID)
}
