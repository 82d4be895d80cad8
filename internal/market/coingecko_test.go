package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCoinGeckoFetcher_FetchDailyPrices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin/market_chart" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("vs_currency") != "usd" || q.Get("days") != "90" || q.Get("interval") != "daily" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		// out of order on purpose: the fetcher must sort ascending
		w.Write([]byte(`{"prices":[[1756252800000,64321.789],[1756166400000,63900.123]]}`))
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "")
	points, err := f.FetchDailyPrices(context.Background(), 90)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if !points[0].Date.Before(points[1].Date) {
		t.Error("points not sorted ascending")
	}
	if points[0].Price != 63900.12 {
		t.Errorf("price = %v, want rounded to cents", points[0].Price)
	}
	if points[0].Date.Hour() != 0 || points[0].Date.Location() != time.UTC {
		t.Errorf("date not normalized to UTC midnight: %v", points[0].Date)
	}
}

func TestCoinGeckoFetcher_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "")
	if _, err := f.FetchDailyPrices(context.Background(), 30); err == nil {
		t.Fatal("expected an error for HTTP 429")
	}
}

func TestCoinGeckoFetcher_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"prices": "nope"}`))
	}))
	defer srv.Close()

	f := NewCoinGeckoFetcher(srv.URL, "")
	if _, err := f.FetchDailyPrices(context.Background(), 30); err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestMockFetcher(t *testing.T) {
	m := &MockFetcher{Price: 60000}
	points, err := m.FetchDailyPrices(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(points) != 5 {
		t.Fatalf("got %d points, want 5", len(points))
	}
	for i := 1; i < len(points); i++ {
		if !points[i-1].Date.Before(points[i].Date) {
			t.Fatal("mock points not ascending")
		}
	}
}
