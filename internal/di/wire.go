//go:build wireinject
// +build wireinject

package di

import (
	"CryptoPulse/pkg/config"
	"CryptoPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetricsRecorder,
		ProvideMetrics,

		// Adapters
		ProvideMarketAPI,
		ProvideCacheStore,
		ProvideIconStore,

		// Pacing
		ProvideSleeper,
		ProvideBackoff,
		ProvideThrottle,

		// Use cases
		ProvideSnapshotFetcher,
		ProvideHistoryFetcher,
		ProvidePipeline,

		// Application
		ProvideApp,
	)
	return &server.App{}, nil
}
