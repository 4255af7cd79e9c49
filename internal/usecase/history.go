package usecase

import (
	"context"
	"errors"

	"CryptoPulse/internal/domain/models"
	"CryptoPulse/internal/domain/repository"
	"CryptoPulse/internal/service/coingecko"
	"CryptoPulse/internal/service/ratelimit"
	applogger "CryptoPulse/pkg/logger"
	"CryptoPulse/pkg/util"
)

// HistoryFetcher pulls per-asset daily series sequentially. The throttle gap
// between calls is the rate-limit budget for the whole run; assets are never
// fetched concurrently.
type HistoryFetcher struct {
	api      repository.MarketAPI
	throttle *ratelimit.Throttle
	backoff  repository.BackoffPolicy
	sleeper  repository.Sleeper
	days     int
	metrics  repository.Metrics
	log      *applogger.Logger
}

func NewHistoryFetcher(
	api repository.MarketAPI,
	throttle *ratelimit.Throttle,
	backoff repository.BackoffPolicy,
	sleeper repository.Sleeper,
	days int,
	metrics repository.Metrics,
	log *applogger.Logger,
) *HistoryFetcher {
	return &HistoryFetcher{
		api:      api,
		throttle: throttle,
		backoff:  backoff,
		sleeper:  sleeper,
		days:     days,
		metrics:  metrics,
		log:      log,
	}
}

// FetchAll retrieves a DailySeries per asset. Per-asset failures leave an
// empty series and the loop continues; only context cancellation stops the
// run, and then the already-fetched series are still returned alongside the
// error.
func (f *HistoryFetcher) FetchAll(ctx context.Context, assets []models.AssetSnapshot) (map[string]models.DailySeries, error) {
	series := make(map[string]models.DailySeries, len(assets))

	for _, asset := range assets {
		if err := f.throttle.Pace(ctx); err != nil {
			return series, err
		}

		s, err := f.fetchOne(ctx, asset.ID)
		if err != nil {
			if ctx.Err() != nil {
				return series, ctx.Err()
			}
			f.log.Warn("history unavailable, asset excluded from series analytics",
				applogger.String("asset", asset.ID),
				applogger.String("endpoint", "market_chart"),
				applogger.Error(err),
			)
			series[asset.ID] = models.NewDailySeries()
			continue
		}
		series[asset.ID] = s
	}

	withData := 0
	for _, s := range series {
		if !s.IsEmpty() {
			withData++
		}
	}
	f.metrics.SetAssetsWithHistory(withData)

	return series, nil
}

// fetchOne retries exactly once after the backoff cooldown on a 429. Any
// second failure surfaces to the caller.
func (f *HistoryFetcher) fetchOne(ctx context.Context, assetID string) (models.DailySeries, error) {
	chart, err := f.api.MarketChart(ctx, assetID, f.days)
	if errors.Is(err, coingecko.ErrRateLimited) {
		wait := f.backoff.Wait(1)
		f.log.Warn("rate limited, backing off",
			applogger.String("asset", assetID),
			applogger.Duration("cooldown_ms", wait),
		)
		if serr := f.sleeper.Sleep(ctx, wait); serr != nil {
			return models.DailySeries{}, serr
		}
		chart, err = f.api.MarketChart(ctx, assetID, f.days)
	}
	if err != nil {
		return models.DailySeries{}, err
	}
	return bucketByDate(chart), nil
}

// bucketByDate collapses raw timestamped samples onto UTC calendar dates.
// When the API returns several samples for one date, the last seen wins.
func bucketByDate(chart models.MarketChart) models.DailySeries {
	s := models.NewDailySeries()
	for _, sample := range chart.MarketCaps {
		s.MarketCaps[util.DateOfMillis(sample.Timestamp)] = sample.Value
	}
	for _, sample := range chart.Prices {
		s.Prices[util.DateOfMillis(sample.Timestamp)] = sample.Value
	}
	return s
}
