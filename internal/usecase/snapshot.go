package usecase

import (
	"context"
	"errors"
	"time"

	"CryptoPulse/internal/domain/models"
	"CryptoPulse/internal/domain/repository"
	"CryptoPulse/internal/service/coingecko"
	applogger "CryptoPulse/pkg/logger"
	"CryptoPulse/pkg/util"
)

// ErrNoData means both the live endpoint and the cache came up empty. The run
// cannot proceed; an empty listing is a hard stop, not "zero assets".
var ErrNoData = errors.New("no market data available from live API or cache")

// SnapshotSource tells callers whether the listing is fresh or stale.
type SnapshotSource int

const (
	SourceLive SnapshotSource = iota
	SourceCache
)

func (s SnapshotSource) String() string {
	if s == SourceCache {
		return "cache"
	}
	return "live"
}

// SnapshotFetcher retrieves the ranked top-N listing, persisting successful
// responses to the cache store and falling back to it on failure.
type SnapshotFetcher struct {
	api     repository.MarketAPI
	cache   repository.CacheStore
	metrics repository.Metrics
	log     *applogger.Logger
	now     func() time.Time
}

func NewSnapshotFetcher(api repository.MarketAPI, cache repository.CacheStore, metrics repository.Metrics, log *applogger.Logger) *SnapshotFetcher {
	return &SnapshotFetcher{
		api:     api,
		cache:   cache,
		metrics: metrics,
		log:     log,
		now:     time.Now,
	}
}

// Fetch returns the top-N snapshots and where they came from. It fails with
// ErrNoData only when the live fetch and the cache are both unavailable.
func (f *SnapshotFetcher) Fetch(ctx context.Context, limit int) ([]models.AssetSnapshot, SnapshotSource, error) {
	assets, raw, err := f.api.Markets(ctx, limit)
	if err == nil && len(assets) > 0 {
		date := util.DateOf(f.now())
		if serr := f.cache.Save(date, raw); serr != nil {
			// A broken cache must not fail a successful live fetch.
			f.log.Warn("cache save failed", applogger.String("date", date), applogger.Error(serr))
		}
		return clip(assets, limit), SourceLive, nil
	}
	if err != nil {
		f.log.Warn("live snapshot fetch failed, trying cache",
			applogger.String("endpoint", "markets"),
			applogger.Error(err),
		)
	}

	payload, ok, cerr := f.cache.LoadLatest()
	if cerr != nil {
		f.log.Error("cache load failed", applogger.Error(cerr))
	}
	if !ok || len(payload) == 0 {
		return nil, SourceLive, ErrNoData
	}

	assets, perr := coingecko.ParseMarkets(payload)
	if perr != nil || len(assets) == 0 {
		if perr != nil {
			f.log.Error("cached payload unreadable", applogger.Error(perr))
		}
		return nil, SourceLive, ErrNoData
	}

	f.metrics.RecordCacheFallback()
	f.log.Info("serving snapshot from cache", applogger.Int("assets", len(assets)))
	return clip(assets, limit), SourceCache, nil
}

func clip(assets []models.AssetSnapshot, limit int) []models.AssetSnapshot {
	if limit > 0 && len(assets) > limit {
		return assets[:limit]
	}
	return assets
}
