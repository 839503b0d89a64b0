// Package coingecko is a thin client for the public CoinGecko API.
// Every operation issues a single GET with no retries and reports
// failure through the ErrUnavailable / ErrNoData sentinels.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

var (
	// ErrUnavailable marks a network or HTTP-layer failure talking to CoinGecko.
	ErrUnavailable = errors.New("service unavailable")
	// ErrNoData marks a reachable upstream whose response lacks the expected fields.
	ErrNoData = errors.New("price data not available")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
	}
}

// GetPrice returns the current USD price for the given CoinGecko id.
func (c *Client) GetPrice(ctx context.Context, id string) (float64, error) {
	u := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", c.baseURL, url.QueryEscape(id))
	body, err := c.get(ctx, u)
	if err != nil {
		return 0, err
	}
	var prices map[string]map[string]float64
	if err := json.Unmarshal(body, &prices); err != nil {
		return 0, fmt.Errorf("%w: parse simple/price: %v", ErrNoData, err)
	}
	quote, ok := prices[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s missing from response", ErrNoData, id)
	}
	usd, ok := quote["usd"]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no usd quote", ErrNoData, id)
	}
	return usd, nil
}

// GetTopMarkets returns up to n assets ordered by descending market cap.
// On failure the slice is empty; empty means unavailable, not "no assets".
func (c *Client) GetTopMarkets(ctx context.Context, n int) ([]MarketSnapshot, error) {
	u := fmt.Sprintf("%s/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=%d&page=1", c.baseURL, n)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	var snapshots []MarketSnapshot
	if err := json.Unmarshal(body, &snapshots); err != nil {
		return nil, fmt.Errorf("%w: parse coins/markets: %v", ErrNoData, err)
	}
	if len(snapshots) > n {
		snapshots = snapshots[:n]
	}
	return snapshots, nil
}

// GetTopIDs projects GetTopMarkets to the id field, for building
// selection keyboards. Callers fall back to a static list when the
// returned slice is empty.
func (c *Client) GetTopIDs(ctx context.Context, n int) ([]string, error) {
	snapshots, err := c.GetTopMarkets(ctx, n)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		ids = append(ids, s.ID)
	}
	return ids, nil
}

// GetMarketChart returns the USD price series for the given id over the
// last `days` days, ordered ascending. A present-but-empty prices array
// yields an empty series with no error; an absent field is ErrNoData.
func (c *Client) GetMarketChart(ctx context.Context, id string, days int) (PriceSeries, error) {
	u := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d", c.baseURL, url.PathEscape(id), days)
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	var mc marketChartResp
	if err := json.Unmarshal(body, &mc); err != nil {
		return nil, fmt.Errorf("%w: parse market_chart: %v", ErrNoData, err)
	}
	if mc.Prices == nil {
		return nil, fmt.Errorf("%w: no prices field for %s", ErrNoData, id)
	}
	series := make(PriceSeries, 0, len(mc.Prices))
	for _, p := range mc.Prices {
		series = append(series, PricePoint{
			Timestamp: time.UnixMilli(int64(p[0])),
			Price:     p[1],
		})
	}
	return series, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		preview := string(body)
		if len(preview) > 120 {
			preview = preview[:120]
		}
		return nil, fmt.Errorf("%w: coingecko returned %d: %s", ErrUnavailable, resp.StatusCode, preview)
	}
	return body, nil
}
