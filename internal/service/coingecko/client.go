package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"CryptoPulse/internal/domain/models"
	"CryptoPulse/internal/domain/repository"
	xhttp "CryptoPulse/pkg/http"
)

// ErrRateLimited signals an HTTP 429 from the upstream API.
var ErrRateLimited = errors.New("coingecko: rate limited")

// Client implements a MarketAPI backed by the CoinGecko REST endpoints.
type Client struct {
	baseURL  string
	currency string
	client   *xhttp.Client
	metrics  repository.Metrics
}

// New creates a new CoinGecko MarketAPI.
func New(baseURL, currency string, timeout time.Duration, metrics repository.Metrics) repository.MarketAPI {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		currency: currency,
		client:   xhttp.NewClient(xhttp.WithTimeout(timeout)),
		metrics:  metrics,
	}
}

// marketRow mirrors one /coins/markets entry. Numeric fields the API reports
// as null decode to zero, which is exactly the malformed-field default.
type marketRow struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	MarketCapRank  int     `json:"market_cap_rank"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
	Image          string  `json:"image"`
}

// Markets fetches the ranked top-N listing and returns both the typed rows
// and the raw payload for cache persistence.
func (c *Client) Markets(ctx context.Context, limit int) ([]models.AssetSnapshot, []byte, error) {
	start := time.Now()
	var raw []byte
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/coins/markets",
		QueryParams: map[string][]string{
			"vs_currency":             {c.currency},
			"order":                   {"market_cap_desc"},
			"per_page":                {strconv.Itoa(limit)},
			"page":                    {"1"},
			"sparkline":               {"false"},
			"price_change_percentage": {"24h"},
		},
	}, &raw)
	c.metrics.RecordLatency("markets", time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordRequest("markets", outcome(err))
		return nil, nil, fmt.Errorf("get markets: %w", translate(err))
	}

	assets, err := ParseMarkets(raw)
	if err != nil {
		c.metrics.RecordRequest("markets", "malformed")
		return nil, nil, err
	}

	c.metrics.RecordRequest("markets", "ok")
	return assets, raw, nil
}

// ParseMarkets decodes a /coins/markets payload into validated snapshots.
// It is shared with the cache-fallback path so live and cached payloads go
// through the same boundary normalization.
func ParseMarkets(raw []byte) ([]models.AssetSnapshot, error) {
	var rows []marketRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode markets: %w", err)
	}

	assets := make([]models.AssetSnapshot, 0, len(rows))
	for i, r := range rows {
		if r.ID == "" {
			// Row without an identity cannot participate in any analytics.
			continue
		}
		rank := r.MarketCapRank
		if rank <= 0 {
			rank = i + 1
		}
		assets = append(assets, models.AssetSnapshot{
			ID:           r.ID,
			Symbol:       strings.ToUpper(r.Symbol),
			Name:         r.Name,
			Rank:         rank,
			Price:        r.CurrentPrice,
			MarketCap:    r.MarketCap,
			Change24hPct: r.PriceChange24h,
			IconURL:      r.Image,
		})
	}
	return assets, nil
}

type chartResponse struct {
	MarketCaps [][]float64 `json:"market_caps"`
	Prices     [][]float64 `json:"prices"`
}

// MarketChart fetches one asset's daily history over the trailing window.
func (c *Client) MarketChart(ctx context.Context, assetID string, days int) (models.MarketChart, error) {
	start := time.Now()
	var resp chartResponse
	err := c.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    fmt.Sprintf("%s/coins/%s/market_chart", c.baseURL, assetID),
		QueryParams: map[string][]string{
			"vs_currency": {c.currency},
			"days":        {strconv.Itoa(days)},
			"interval":    {"daily"},
		},
	}, &resp)
	c.metrics.RecordLatency("market_chart", time.Since(start).Seconds())
	if err != nil {
		c.metrics.RecordRequest("market_chart", outcome(err))
		return models.MarketChart{}, fmt.Errorf("get market_chart %s: %w", assetID, translate(err))
	}

	c.metrics.RecordRequest("market_chart", "ok")
	return models.MarketChart{
		MarketCaps: toSamples(resp.MarketCaps),
		Prices:     toSamples(resp.Prices),
	}, nil
}

func toSamples(pairs [][]float64) []models.RawSample {
	out := make([]models.RawSample, 0, len(pairs))
	for _, p := range pairs {
		if len(p) < 2 {
			continue
		}
		out = append(out, models.RawSample{Timestamp: int64(p[0]), Value: p[1]})
	}
	return out
}

func translate(err error) error {
	if xhttp.StatusCode(err) == 429 {
		return ErrRateLimited
	}
	return err
}

func outcome(err error) string {
	if xhttp.StatusCode(err) == 429 {
		return "rate_limited"
	}
	return "error"
}
