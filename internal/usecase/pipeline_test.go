package usecase

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"CryptoPulse/internal/domain/models"
	filecache "CryptoPulse/internal/repository"
)

func newTestPipeline(t *testing.T, api *fakeAPI, icons *fakeIcons, outputFile string) *Pipeline {
	t.Helper()
	log := testLogger(t)
	metrics := &testMetrics{}

	snapshot := NewSnapshotFetcher(api, filecache.NewFileCache(t.TempDir()), metrics, log)
	snapshot.now = fixedClock("2024-10-10")

	history, _ := newHistoryFetcher(t, api, metrics)

	p := NewPipeline(snapshot, history, icons, "usd", 10, 2, outputFile, log)
	p.now = fixedClock("2024-10-10")
	return p
}

func pipelineAPI() *fakeAPI {
	return &fakeAPI{
		assets: []models.AssetSnapshot{
			{ID: "bitcoin", Symbol: "BTC", Name: "Bitcoin", Rank: 1, Change24hPct: 2, IconURL: "https://img/btc.png"},
			{ID: "ethereum", Symbol: "ETH", Name: "Ethereum", Rank: 2, Change24hPct: -1, IconURL: "https://img/eth.png"},
		},
		raw: []byte(`[{"id":"bitcoin","market_cap_rank":1},{"id":"ethereum","market_cap_rank":2}]`),
		charts: map[string]models.MarketChart{
			"bitcoin": chartWith(
				models.RawSample{Timestamp: oct9Midnight, Value: 1.2e12},
				models.RawSample{Timestamp: oct10, Value: 1.25e12},
			),
			"ethereum": chartWith(
				models.RawSample{Timestamp: oct9Midnight, Value: 4e11},
				models.RawSample{Timestamp: oct10, Value: 3.9e11},
			),
		},
	}
}

func TestPipelineProducesDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "current_input.json")
	icons := &fakeIcons{}
	p := newTestPipeline(t, pipelineAPI(), icons, out)

	doc, err := p.Run(context.Background(), false)
	require.NoError(t, err)

	require.Equal(t, "usd", doc.Currency)
	require.Equal(t, "live", doc.DataSource)
	require.Equal(t, "2024-10-10T00:00:00Z", doc.AsOf.Format("2006-01-02T15:04:05Z07:00"))

	require.Len(t, doc.DailySeriesByDate, 2)
	require.Equal(t, "2024-10-09", doc.DailySeriesByDate[0].Date)
	require.Equal(t, "2024-10-10", doc.DailySeriesByDate[1].Date)
	require.Equal(t, "bitcoin", doc.DailySeriesByDate[1].Assets[0].ID)

	require.Len(t, doc.Assets, 2)
	require.NotEmpty(t, doc.Chart)
	require.ElementsMatch(t, []string{"bitcoin", "ethereum"}, icons.ids)

	// The file on disk decodes back into the same shape.
	payload, err := os.ReadFile(out)
	require.NoError(t, err)
	var onDisk models.MarketAnalyticsDocument
	require.NoError(t, json.Unmarshal(payload, &onDisk))
	require.Equal(t, doc.Currency, onDisk.Currency)
	require.Len(t, onDisk.DailySeriesByDate, 2)
}

func TestPipelineDryRunSkipsIcons(t *testing.T) {
	out := filepath.Join(t.TempDir(), "current_input.json")
	icons := &fakeIcons{}
	p := newTestPipeline(t, pipelineAPI(), icons, out)

	_, err := p.Run(context.Background(), true)
	require.NoError(t, err)
	require.Empty(t, icons.ids)

	_, statErr := os.Stat(out)
	require.NoError(t, statErr, "dry run still writes the document")
}

func TestPipelineFailsWithoutSnapshot(t *testing.T) {
	out := filepath.Join(t.TempDir(), "current_input.json")
	api := pipelineAPI()
	api.marketsErr = os.ErrDeadlineExceeded
	p := newTestPipeline(t, api, &fakeIcons{}, out)

	_, err := p.Run(context.Background(), false)
	require.ErrorIs(t, err, ErrNoData)
}
