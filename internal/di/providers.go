package di

import (
	"CryptoPulse/internal/domain/repository"
	internalrepo "CryptoPulse/internal/repository"
	"CryptoPulse/internal/service/coingecko"
	"CryptoPulse/internal/service/ratelimit"
	"CryptoPulse/internal/usecase"
	"CryptoPulse/pkg/config"
	applogger "CryptoPulse/pkg/logger"
	pkgmetrics "CryptoPulse/pkg/metrics"
	"CryptoPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetricsRecorder creates the Prometheus recorder.
func ProvideMetricsRecorder() *pkgmetrics.Recorder {
	return pkgmetrics.New()
}

// ProvideMetrics exposes the recorder through the domain port.
func ProvideMetrics(rec *pkgmetrics.Recorder) repository.Metrics {
	return rec
}

// ProvideMarketAPI creates the CoinGecko client.
func ProvideMarketAPI(cfg *config.Config, metrics repository.Metrics) repository.MarketAPI {
	return coingecko.New(cfg.API.BaseURL, cfg.API.Currency, cfg.API.RequestTimeout.Std(), metrics)
}

// ProvideCacheStore creates the file-backed snapshot cache.
func ProvideCacheStore(cfg *config.Config) repository.CacheStore {
	return internalrepo.NewFileCache(cfg.Paths.CacheDir)
}

// ProvideIconStore creates the icon downloader.
func ProvideIconStore(cfg *config.Config) repository.IconStore {
	return internalrepo.NewIconFetcher(cfg.Paths.IconsDir, cfg.API.RequestTimeout.Std())
}

// ProvideSleeper creates the wall-clock sleeper.
func ProvideSleeper() repository.Sleeper {
	return ratelimit.RealSleeper{}
}

// ProvideBackoff creates the fixed 429 cooldown policy.
func ProvideBackoff(cfg *config.Config) repository.BackoffPolicy {
	return ratelimit.FixedBackoff{Cooldown: cfg.API.RateLimitCooldown.Std()}
}

// ProvideThrottle creates the inter-call pacing for history fetches.
func ProvideThrottle(cfg *config.Config, sleeper repository.Sleeper) *ratelimit.Throttle {
	return ratelimit.NewThrottle(cfg.API.ThrottleGap.Std(), sleeper)
}

// ProvideSnapshotFetcher creates the snapshot fetch use case.
func ProvideSnapshotFetcher(
	api repository.MarketAPI,
	cache repository.CacheStore,
	metrics repository.Metrics,
	log *applogger.Logger,
) *usecase.SnapshotFetcher {
	return usecase.NewSnapshotFetcher(api, cache, metrics, log)
}

// ProvideHistoryFetcher creates the history fetch use case.
func ProvideHistoryFetcher(
	api repository.MarketAPI,
	throttle *ratelimit.Throttle,
	backoff repository.BackoffPolicy,
	sleeper repository.Sleeper,
	cfg *config.Config,
	metrics repository.Metrics,
	log *applogger.Logger,
) *usecase.HistoryFetcher {
	return usecase.NewHistoryFetcher(api, throttle, backoff, sleeper, cfg.API.HistoryDays, metrics, log)
}

// ProvidePipeline creates the full pipeline use case.
func ProvidePipeline(
	snapshot *usecase.SnapshotFetcher,
	history *usecase.HistoryFetcher,
	icons repository.IconStore,
	cfg *config.Config,
	log *applogger.Logger,
) *usecase.Pipeline {
	return usecase.NewPipeline(
		snapshot,
		history,
		icons,
		cfg.API.Currency,
		cfg.API.TopN,
		cfg.API.HistoryDays,
		cfg.Paths.OutputFile,
		log,
	)
}

// ProvideApp creates the application wrapper.
func ProvideApp(
	cfg *config.Config,
	pipeline *usecase.Pipeline,
	recorder *pkgmetrics.Recorder,
	log *applogger.Logger,
) *server.App {
	return server.New(cfg, pipeline, recorder, log)
}
