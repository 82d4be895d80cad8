package market

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"CoinDigest/internal/model"
)

// CoinGeckoFetcher implements Fetcher using the public CoinGecko
// market_chart endpoint.
type CoinGeckoFetcher struct {
	client *resty.Client
}

// NewCoinGeckoFetcher creates a fetcher with optional proxy support.
func NewCoinGeckoFetcher(baseURL, proxyURL string) *CoinGeckoFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &CoinGeckoFetcher{client: client}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// marketChart is the response shape: prices is an array of
// [timestamp_ms, price] pairs.
type marketChart struct {
	Prices [][2]float64 `json:"prices"`
}

func (f *CoinGeckoFetcher) FetchDailyPrices(ctx context.Context, days int) ([]model.PricePoint, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"vs_currency": "usd",
			"days":        strconv.Itoa(days),
			"interval":    "daily",
		}).
		Get("/coins/bitcoin/market_chart")
	if err != nil {
		return nil, fmt.Errorf("coingecko fetch: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("coingecko: status %d, body: %s", resp.StatusCode(), resp.String())
	}

	var chart marketChart
	if err := json.Unmarshal(resp.Body(), &chart); err != nil {
		return nil, fmt.Errorf("coingecko decode: %w", err)
	}

	points := make([]model.PricePoint, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		ts := time.UnixMilli(int64(pair[0])).UTC()
		points = append(points, model.PricePoint{
			Date:  time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Price: math.Round(pair[1]*100) / 100,
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points, nil
}
