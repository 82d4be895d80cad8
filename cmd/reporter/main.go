package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CoinDigest/internal/config"
	"CoinDigest/internal/market"
	"CoinDigest/internal/pipeline"
	"CoinDigest/internal/recorder"
	"CoinDigest/internal/scheduler"

	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	mode := flag.String("mode", "chart", "run mode: chart | slides | daemon")
	flag.Parse()
	if flag.NArg() > 0 {
		// Allow "reporter slides" as well as "reporter -mode slides".
		*mode = flag.Arg(0)
	}

	log.Printf("[INFO] CoinDigest starting (mode=%s)...", *mode)

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	fetcher := market.NewCoinGeckoFetcher(cfg.Market.BaseURL, cfg.Proxy)
	log.Printf("[INFO] price source: %s", fetcher.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := pipeline.New(cfg, fetcher, rec)

	switch *mode {
	case "chart":
		if err := p.RunChart(ctx); err != nil {
			log.Fatalf("[FATAL] chart run: %v", err)
		}
	case "slides":
		if err := p.RunSlides(ctx); err != nil {
			log.Fatalf("[FATAL] slides run: %v", err)
		}
	case "daemon":
		runDaemon(ctx, cancel, cfg, p)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (want chart, slides or daemon)\n", *mode)
		os.Exit(2)
	}
}

func runDaemon(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, p *pipeline.Pipeline) {
	sched := scheduler.NewScheduler(ctx, p)
	if err := sched.RegisterAll(cfg.Schedule.ChartCron, cfg.Schedule.SlidesCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing chart task now")
		go sched.RunChartNow()
	}

	log.Println("[INFO] CoinDigest daemon is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] CoinDigest stopped")
}
