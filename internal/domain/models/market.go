package models

// Well-known CoinGecko asset identifiers used by dominance and chart pinning.
const (
	AssetBitcoin  = "bitcoin"
	AssetEthereum = "ethereum"
)

// StablecoinIDs is the fixed set of asset ids counted as stablecoins for
// dominance. Matching is by id, never by symbol.
var StablecoinIDs = map[string]bool{
	"tether":            true,
	"usd-coin":          true,
	"dai":               true,
	"binance-usd":       true,
	"true-usd":          true,
	"first-digital-usd": true,
	"usdd":              true,
	"frax":              true,
}

// AssetSnapshot is one row of the ranked top-N market listing. Built once per
// run at the fetch boundary and immutable afterwards.
type AssetSnapshot struct {
	ID           string  `json:"id"`
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Rank         int     `json:"rank"`
	Price        float64 `json:"price"`
	MarketCap    float64 `json:"marketCap"`
	Change24hPct float64 `json:"change24hPct"`
	IconURL      string  `json:"iconRef,omitempty"`
}

// DailySeries holds one asset's daily samples keyed by ISO date. A date with
// no data is an absent key, not a zero; callers must keep that distinction.
type DailySeries struct {
	MarketCaps map[string]float64
	Prices     map[string]float64
}

// NewDailySeries returns an empty series ready to accumulate samples.
func NewDailySeries() DailySeries {
	return DailySeries{
		MarketCaps: make(map[string]float64),
		Prices:     make(map[string]float64),
	}
}

// IsEmpty reports whether the series carries no samples at all.
func (s DailySeries) IsEmpty() bool {
	return len(s.MarketCaps) == 0 && len(s.Prices) == 0
}

// RawSample is one timestamped value from the historical-chart endpoint.
// Timestamp is in milliseconds, as the upstream API delivers it.
type RawSample struct {
	Timestamp int64
	Value     float64
}

// MarketChart is the raw per-asset history before date bucketing.
type MarketChart struct {
	MarketCaps []RawSample
	Prices     []RawSample
}

// DayAsset is one asset's reconciled sample for a single calendar date.
// Price is nil when the asset has a market-cap sample but no price sample.
type DayAsset struct {
	ID        string   `json:"id"`
	Symbol    string   `json:"symbol"`
	Name      string   `json:"name"`
	MarketCap float64  `json:"marketCap"`
	Price     *float64 `json:"price,omitempty"`
}

// DaySnapshot lists every asset present on one calendar date, sorted
// descending by market cap.
type DaySnapshot struct {
	Date   string     `json:"date"`
	Assets []DayAsset `json:"assets"`
}
