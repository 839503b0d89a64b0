package coingecko

import (
	"time"
)

// PricePoint is one sample of an asset's USD price.
type PricePoint struct {
	Timestamp time.Time
	Price     float64
}

// PriceSeries is a sequence of price points ordered by timestamp ascending.
type PriceSeries []PricePoint

// First returns the earliest price in the series.
func (s PriceSeries) First() float64 { return s[0].Price }

// Last returns the latest price in the series.
func (s PriceSeries) Last() float64 { return s[len(s)-1].Price }

// MarketSnapshot mirrors one entry of the CoinGecko /coins/markets
// response (trimmed to needed fields).
type MarketSnapshot struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
}

// marketChartResp mirrors /coins/{id}/market_chart (trimmed).
type marketChartResp struct {
	Prices [][2]float64 `json:"prices"`
}
