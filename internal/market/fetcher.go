package market

import (
	"context"
	"time"

	"CoinDigest/internal/model"
)

// Fetcher retrieves a daily historical price series.
type Fetcher interface {
	// FetchDailyPrices returns ascending (date, price) points covering
	// roughly the last `days` days.
	FetchDailyPrices(ctx context.Context, days int) ([]model.PricePoint, error)
	Name() string
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Points []model.PricePoint
	Price  float64
	Err    error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyPrices(_ context.Context, days int) ([]model.PricePoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Points != nil {
		return m.Points, nil
	}
	return generateMockPoints(m.Price, days), nil
}

func generateMockPoints(basePrice float64, days int) []model.PricePoint {
	points := make([]model.PricePoint, days)
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < days; i++ {
		p := basePrice * (1 + float64(i-days/2)*0.001)
		points[i] = model.PricePoint{
			Date:  today.AddDate(0, 0, -(days - i)),
			Price: p,
		}
	}
	return points
}
