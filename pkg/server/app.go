package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"CryptoPulse/internal/usecase"
	"CryptoPulse/pkg/config"
	applogger "CryptoPulse/pkg/logger"
	pkgmetrics "CryptoPulse/pkg/metrics"
)

// App encapsulates one pipeline invocation with signal handling. SIGINT or
// SIGTERM cancels the root context, which aborts between per-asset fetches
// without losing already-fetched data.
type App struct {
	cfg      *config.Config
	pipeline *usecase.Pipeline
	recorder *pkgmetrics.Recorder
	log      *applogger.Logger

	// DryRun skips icon downloads; the document is still written.
	DryRun bool
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, pipeline *usecase.Pipeline, recorder *pkgmetrics.Recorder, log *applogger.Logger) *App {
	return &App{
		cfg:      cfg,
		pipeline: pipeline,
		recorder: recorder,
		log:      log,
	}
}

// Run executes the pipeline once and returns its error.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.log.Info("starting pipeline",
		applogger.String("env", a.cfg.Environment),
		applogger.Int("top_n", a.cfg.API.TopN),
		applogger.Bool("dry_run", a.DryRun),
	)

	_, err := a.pipeline.Run(ctx, a.DryRun)

	a.log.Info("run metrics", applogger.Any("summary", a.recorder.Summary()))

	if err != nil {
		a.log.Error("pipeline failed", applogger.Error(err))
		return err
	}
	return nil
}
