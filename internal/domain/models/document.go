package models

import "time"

// Market mood labels derived from breadth and median 24h return.
const (
	MoodRiskOn  = "RISK-ON"
	MoodRiskOff = "RISK-OFF"
	MoodMixed   = "MIXED"
)

// ReturnStats summarizes day-over-day percentage price returns.
type ReturnStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// AssetMetrics carries per-asset volatility stats and the anomaly flag.
// ZScore is only meaningful when Unusual could be evaluated (Std7d > 0).
type AssetMetrics struct {
	ID           string      `json:"id"`
	Symbol       string      `json:"symbol"`
	Change24hPct float64     `json:"change24hPct"`
	Stats7d      ReturnStats `json:"stats7d"`
	ZScore       float64     `json:"zScore,omitempty"`
	Unusual      bool        `json:"unusual,omitempty"`
}

// MoverEntry is a ranked gain/loss record. ChangePct is over the horizon the
// containing list was ranked on (24h or 7d).
type MoverEntry struct {
	ID        string  `json:"id"`
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ChangePct float64 `json:"changePct"`
	MarketCap float64 `json:"marketCap"`
}

// Movers holds the ranked extremes for one horizon. Losers are ordered worst
// first.
type Movers struct {
	Gainers []MoverEntry `json:"gainers"`
	Losers  []MoverEntry `json:"losers"`
}

// DominancePoint gives the share of aggregate market cap held by BTC, ETH and
// recognized stablecoins on one date. Each percentage is clamped to [0,100];
// they do not sum to 100 because the fetched set is not the whole market.
type DominancePoint struct {
	Date      string  `json:"date"`
	BTCPct    float64 `json:"btcPct"`
	ETHPct    float64 `json:"ethPct"`
	StablePct float64 `json:"stablePct"`
}

// MomentumScore is a combined 24h+7d ranking. Lower RankSum is stronger.
type MomentumScore struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	RankSum int    `json:"rankSum"`
}

// MarketMood aggregates breadth and median return into a sentiment label.
type MarketMood struct {
	BreadthPct      float64 `json:"breadthPct"`
	MedianReturnPct float64 `json:"medianReturnPct"`
	Mood            string  `json:"mood"`
}

// ChartPoint is one normalized sample of a selected display series.
type ChartPoint struct {
	DayIndex int     `json:"dayIndex"`
	Value    float64 `json:"value"`
}

// ChartSeries is one asset's normalized series (first sample == 100) chosen
// for display.
type ChartSeries struct {
	ID     string       `json:"id"`
	Symbol string       `json:"symbol"`
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// Dominance wraps the dominance series for the output contract.
type Dominance struct {
	Series []DominancePoint `json:"series"`
}

// MarketAnalyticsDocument is the canonical renderer-agnostic output contract.
// It is assembled once per run and serialized to the configured output path.
type MarketAnalyticsDocument struct {
	AsOf              time.Time       `json:"asOf"`
	Currency          string          `json:"currency"`
	DataSource        string          `json:"dataSource"`
	DailySeriesByDate []DaySnapshot   `json:"dailySeriesByDate"`
	WeeklyMovers      Movers          `json:"weeklyMovers"`
	DailyMovers       Movers          `json:"dailyMovers"`
	AssetMetrics      []AssetMetrics  `json:"assetMetrics"`
	Dominance         Dominance       `json:"dominance"`
	Market            MarketMood      `json:"market"`
	Momentum          []MomentumScore `json:"momentum"`
	Chart             []ChartSeries   `json:"chart"`
	Assets            []AssetSnapshot `json:"assets"`
}
