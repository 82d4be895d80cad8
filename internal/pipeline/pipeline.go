// Package pipeline wires digest extraction, price fetching, rendering
// and publishing into the chart and slides runs.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"CoinDigest/internal/config"
	"CoinDigest/internal/digest"
	"CoinDigest/internal/market"
	"CoinDigest/internal/model"
	"CoinDigest/internal/publish"
	"CoinDigest/internal/recorder"
	"CoinDigest/internal/report"
)

// Pipeline runs one report generation end to end.
type Pipeline struct {
	Cfg      *config.Config
	Fetcher  market.Fetcher
	Recorder recorder.Recorder
}

func New(cfg *config.Config, f market.Fetcher, rec recorder.Recorder) *Pipeline {
	return &Pipeline{Cfg: cfg, Fetcher: f, Recorder: rec}
}

// RunChart regenerates the interactive price chart from every digest on disk.
func (p *Pipeline) RunChart(ctx context.Context) error {
	records, err := digest.Load(p.Cfg.Digest.Dir)
	if err != nil {
		return fmt.Errorf("load digests: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no usable digest files in %s", p.Cfg.Digest.Dir)
	}
	log.Printf("[INFO] chart run: %d digest records", len(records))

	series := p.fetch(ctx, p.Cfg.Market.ChartDays)

	html, err := report.NewChartRenderer().Render(records, series)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	out := p.Cfg.Output.ChartFile
	if err := publish.WriteFile(out, html); err != nil {
		return err
	}
	log.Printf("[INFO] chart written: %s", out)

	if p.Cfg.Output.OpenBrowser {
		publish.OpenBrowser(out)
	}

	p.record("chart", records, series, out)
	return nil
}

// RunSlides regenerates the weekly slideshow from the most recent digests
// and publishes it to the pages repository.
func (p *Pipeline) RunSlides(ctx context.Context) error {
	records, err := digest.LoadRecent(p.Cfg.Digest.Dir,
		p.Cfg.Digest.LookbackDays, p.Cfg.Digest.MaxRecords, time.Now())
	if err != nil {
		return fmt.Errorf("load digests: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no digest records within the last %d days in %s",
			p.Cfg.Digest.LookbackDays, p.Cfg.Digest.Dir)
	}
	log.Printf("[INFO] slides run: %d digest records", len(records))

	series := p.fetch(ctx, p.Cfg.Market.SlidesDays)

	html, err := report.NewSlidesRenderer().Render(records, series)
	if err != nil {
		return fmt.Errorf("render slides: %w", err)
	}

	pub := publish.New(p.Cfg.Publish.RepoDir, p.Cfg.Publish.Branch, p.Cfg.Publish.Remote)

	archived, err := pub.Archive(p.Cfg.Output.ArchiveDir, html)
	if err != nil {
		return err
	}
	log.Printf("[INFO] slides archived: %s", archived)

	if p.Cfg.Publish.RepoDir != "" {
		if err := pub.PublishPage(p.Cfg.Output.PagesFile, html); err != nil {
			log.Printf("[WARN] publish pages: %v", err)
		}
	}

	if p.Cfg.Output.OpenBrowser {
		publish.OpenBrowser(archived)
	}

	p.record("slides", records, series, archived)
	return nil
}

// fetch pulls the remote price series, degrading to an empty slice so
// the render still happens from digest data alone.
func (p *Pipeline) fetch(ctx context.Context, days int) []model.PricePoint {
	series, err := p.Fetcher.FetchDailyPrices(ctx, days)
	if err != nil {
		log.Printf("[WARN] %s fetch failed, rendering from digest data only: %v",
			p.Fetcher.Name(), err)
		return nil
	}
	log.Printf("[INFO] fetched %d price points from %s", len(series), p.Fetcher.Name())
	return series
}

func (p *Pipeline) record(mode string, records []model.DigestRecord, series []model.PricePoint, out string) {
	rec := &recorder.RunRecord{
		Mode:       mode,
		Digests:    len(records),
		SeriesDays: len(series),
		OutputPath: out,
	}
	if last := records[len(records)-1]; last.HasPrice() {
		rec.LatestPrice = *last.Price
	}
	if pct, ok := report.WeeklyChange(records); ok {
		rec.WeeklyChange = pct
	}
	if err := p.Recorder.RecordRun(rec); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
}
