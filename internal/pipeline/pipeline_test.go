package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"CoinDigest/internal/config"
	"CoinDigest/internal/market"
	"CoinDigest/internal/recorder"
)

// captureRecorder keeps run records in memory for assertions.
type captureRecorder struct {
	runs []recorder.RunRecord
}

func (c *captureRecorder) RecordRun(rec *recorder.RunRecord) error {
	c.runs = append(c.runs, *rec)
	return nil
}
func (c *captureRecorder) Close() error { return nil }

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.Digest.Dir = dir
	cfg.Digest.LookbackDays = 14
	cfg.Digest.MaxRecords = 7
	cfg.Market.ChartDays = 90
	cfg.Market.SlidesDays = 365
	cfg.Output.ChartFile = filepath.Join(dir, "chart.html")
	cfg.Output.ArchiveDir = filepath.Join(dir, "archive")
	cfg.Output.OpenBrowser = false
	return cfg
}

func writeDigests(t *testing.T, dir string) {
	t.Helper()
	for i, price := range []string{"$60,000", "$66,000"} {
		date := time.Now().UTC().AddDate(0, 0, i-2).Format("2006-01-02")
		content := "| 当前价格 | **" + price + "** |\n"
		name := filepath.Join(dir, "digest-"+date+".md")
		if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRunChart(t *testing.T) {
	cfg := testConfig(t)
	writeDigests(t, cfg.Digest.Dir)
	cap := &captureRecorder{}
	p := New(cfg, &market.MockFetcher{Price: 63000}, cap)

	if err := p.RunChart(context.Background()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(cfg.Output.ChartFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Plotly.newPlot") {
		t.Error("chart output is not the expected document")
	}

	if len(cap.runs) != 1 {
		t.Fatalf("got %d run records, want 1", len(cap.runs))
	}
	run := cap.runs[0]
	if run.Mode != "chart" || run.Digests != 2 || run.LatestPrice != 66000 {
		t.Errorf("run record = %+v", run)
	}
	if run.WeeklyChange < 9.9 || run.WeeklyChange > 10.1 {
		t.Errorf("weekly change = %v, want ~10", run.WeeklyChange)
	}
}

func TestRunChart_FetchFailureDegrades(t *testing.T) {
	cfg := testConfig(t)
	writeDigests(t, cfg.Digest.Dir)
	p := New(cfg, &market.MockFetcher{Err: errors.New("network down")}, &captureRecorder{})

	if err := p.RunChart(context.Background()); err != nil {
		t.Fatalf("fetch failure must not fail the run: %v", err)
	}
	if _, err := os.Stat(cfg.Output.ChartFile); err != nil {
		t.Error("expected the chart to render from digest data alone")
	}
}

func TestRunChart_NoDigests(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg, &market.MockFetcher{Price: 63000}, &captureRecorder{})

	if err := p.RunChart(context.Background()); err == nil {
		t.Fatal("expected an error with no digest files")
	}
}

func TestRunSlides(t *testing.T) {
	cfg := testConfig(t)
	writeDigests(t, cfg.Digest.Dir)
	cap := &captureRecorder{}
	p := New(cfg, &market.MockFetcher{Price: 63000}, cap)

	if err := p.RunSlides(context.Background()); err != nil {
		t.Fatal(err)
	}

	matches, err := filepath.Glob(filepath.Join(cfg.Output.ArchiveDir, "bitcoin-weekly-*-W*.html"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("archive glob = %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "new Chart(") {
		t.Error("slides output is not the expected document")
	}

	if len(cap.runs) != 1 || cap.runs[0].Mode != "slides" {
		t.Fatalf("run records = %+v", cap.runs)
	}
}

func TestRunSlides_StaleDigestsRejected(t *testing.T) {
	cfg := testConfig(t)
	// a single digest far older than the lookback window
	old := time.Now().UTC().AddDate(0, 0, -60).Format("2006-01-02")
	name := filepath.Join(cfg.Digest.Dir, "digest-"+old+".md")
	if err := os.WriteFile(name, []byte("| 当前价格 | **$60,000** |\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := New(cfg, &market.MockFetcher{Price: 63000}, &captureRecorder{})

	if err := p.RunSlides(context.Background()); err == nil {
		t.Fatal("expected an error when every digest is outside the lookback")
	}
}
