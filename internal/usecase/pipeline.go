package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"CryptoPulse/internal/domain/models"
	"CryptoPulse/internal/domain/repository"
	"CryptoPulse/internal/services/analytics"
	"CryptoPulse/internal/services/chart"
	applogger "CryptoPulse/pkg/logger"
	"CryptoPulse/pkg/util"
)

// Pipeline runs one full snapshot-to-document cycle. All stages pass explicit
// values downstream; no state survives the run besides the cache store.
type Pipeline struct {
	snapshot   *SnapshotFetcher
	history    *HistoryFetcher
	icons      repository.IconStore
	currency   string
	topN       int
	days       int
	outputFile string
	log        *applogger.Logger
	now        func() time.Time
}

func NewPipeline(
	snapshot *SnapshotFetcher,
	history *HistoryFetcher,
	icons repository.IconStore,
	currency string,
	topN, days int,
	outputFile string,
	log *applogger.Logger,
) *Pipeline {
	return &Pipeline{
		snapshot:   snapshot,
		history:    history,
		icons:      icons,
		currency:   currency,
		topN:       topN,
		days:       days,
		outputFile: outputFile,
		log:        log,
		now:        time.Now,
	}
}

// Run fetches, reconciles, analyzes and writes the canonical document.
// dryRun skips icon downloads but still produces the document.
func (p *Pipeline) Run(ctx context.Context, dryRun bool) (*models.MarketAnalyticsDocument, error) {
	started := p.now()

	assets, source, err := p.snapshot.Fetch(ctx, p.topN)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	p.log.Info("snapshot ready",
		applogger.Int("assets", len(assets)),
		applogger.String("source", source.String()),
	)

	if !dryRun {
		p.fetchIcons(ctx, assets)
	}

	series, err := p.history.FetchAll(ctx, assets)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	window := util.Window(p.now(), p.days)
	daySnapshots := Reconcile(window, assets, series)
	assetMetrics := analytics.AssetMetrics(window, assets, series)

	doc := &models.MarketAnalyticsDocument{
		AsOf:              started.UTC(),
		Currency:          p.currency,
		DataSource:        source.String(),
		DailySeriesByDate: daySnapshots,
		WeeklyMovers:      analytics.WeeklyMovers(window, assets, series),
		DailyMovers:       analytics.DailyMovers(assets),
		AssetMetrics:      assetMetrics,
		Dominance:         models.Dominance{Series: analytics.Dominance(window, series)},
		Market:            analytics.Mood(assets),
		Momentum:          analytics.Momentum(assets, assetMetrics),
		Chart:             chart.Select(window, assets, series),
		Assets:            assets,
	}

	if err := p.writeDocument(doc); err != nil {
		return nil, err
	}

	p.log.Info("pipeline complete",
		applogger.String("output", p.outputFile),
		applogger.String("mood", doc.Market.Mood),
		applogger.Int("dates", len(doc.DailySeriesByDate)),
		applogger.Duration("elapsed_ms", p.now().Sub(started)),
	)
	return doc, nil
}

func (p *Pipeline) fetchIcons(ctx context.Context, assets []models.AssetSnapshot) {
	for _, asset := range assets {
		if ctx.Err() != nil {
			return
		}
		if err := p.icons.Download(ctx, asset.ID, asset.IconURL); err != nil {
			// The renderer falls back to a placeholder; never abort for icons.
			p.log.Warn("icon download failed",
				applogger.String("asset", asset.ID),
				applogger.Error(err),
			)
		}
	}
}

func (p *Pipeline) writeDocument(doc *models.MarketAnalyticsDocument) error {
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if dir := filepath.Dir(p.outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(p.outputFile, payload, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
