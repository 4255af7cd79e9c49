package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"CryptoPulse/internal/domain/models"
	applogger "CryptoPulse/pkg/logger"
)

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	log, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return log
}

// testMetrics counts calls so tests can assert on observability side effects.
type testMetrics struct {
	mu                sync.Mutex
	cacheFallbacks    int
	assetsWithHistory int
}

func (m *testMetrics) RecordRequest(endpoint, outcome string)      {}
func (m *testMetrics) RecordLatency(endpoint string, secs float64) {}

func (m *testMetrics) RecordCacheFallback() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheFallbacks++
}

func (m *testMetrics) SetAssetsWithHistory(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assetsWithHistory = n
}

// fakeAPI serves canned market data. failFirst injects a one-shot error per
// asset to exercise the retry path.
type fakeAPI struct {
	assets     []models.AssetSnapshot
	raw        []byte
	marketsErr error

	charts    map[string]models.MarketChart
	chartErr  map[string]error
	failFirst map[string]error
	calls     map[string]int
}

func (f *fakeAPI) Markets(ctx context.Context, limit int) ([]models.AssetSnapshot, []byte, error) {
	if f.marketsErr != nil {
		return nil, nil, f.marketsErr
	}
	return f.assets, f.raw, nil
}

func (f *fakeAPI) MarketChart(ctx context.Context, assetID string, days int) (models.MarketChart, error) {
	if ctx.Err() != nil {
		return models.MarketChart{}, ctx.Err()
	}
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[assetID]++
	if err, ok := f.failFirst[assetID]; ok && f.calls[assetID] == 1 {
		return models.MarketChart{}, err
	}
	if err, ok := f.chartErr[assetID]; ok {
		return models.MarketChart{}, err
	}
	return f.charts[assetID], nil
}

// fakeSleeper records requested delays and returns instantly.
type fakeSleeper struct {
	waits []time.Duration
}

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.waits = append(s.waits, d)
	return nil
}

// fakeIcons records download requests.
type fakeIcons struct {
	ids []string
}

func (f *fakeIcons) Download(ctx context.Context, assetID, url string) error {
	f.ids = append(f.ids, assetID)
	return nil
}
