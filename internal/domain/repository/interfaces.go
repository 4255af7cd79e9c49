package repository

import (
	"context"
	"time"

	"CryptoPulse/internal/domain/models"
)

// MarketAPI is the upstream market-data endpoint pair. Markets also returns
// the raw payload so the snapshot fetcher can persist it to the cache store
// byte-for-byte.
type MarketAPI interface {
	Markets(ctx context.Context, limit int) ([]models.AssetSnapshot, []byte, error)
	MarketChart(ctx context.Context, assetID string, days int) (models.MarketChart, error)
}

// CacheStore is the durable fallback for the most recent market listing.
type CacheStore interface {
	Save(date string, payload []byte) error
	// LoadLatest returns the payload for the lexicographically greatest saved
	// date. The second return is false when no entry exists; that is not an
	// error.
	LoadLatest() ([]byte, bool, error)
}

// IconStore downloads one icon image per asset id. Failures must never abort
// the pipeline.
type IconStore interface {
	Download(ctx context.Context, assetID, url string) error
}

// Metrics records pipeline observability counters.
type Metrics interface {
	RecordRequest(endpoint, outcome string)
	RecordCacheFallback()
	RecordLatency(endpoint string, seconds float64)
	SetAssetsWithHistory(n int)
}

// Sleeper abstracts blocking delays so tests can run without real time.
// Implementations return early with the context error on cancellation.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// BackoffPolicy decides how long to wait before retry `attempt` (1-based).
type BackoffPolicy interface {
	Wait(attempt int) time.Duration
}
