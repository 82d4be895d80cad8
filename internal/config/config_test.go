package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Digest.LookbackDays != 14 || cfg.Digest.MaxRecords != 7 {
		t.Errorf("digest defaults = %d/%d", cfg.Digest.LookbackDays, cfg.Digest.MaxRecords)
	}
	if cfg.Market.BaseURL != "https://api.coingecko.com/api/v3" {
		t.Errorf("base url = %s", cfg.Market.BaseURL)
	}
	if cfg.Market.ChartDays != 90 || cfg.Market.SlidesDays != 365 {
		t.Errorf("market days = %d/%d", cfg.Market.ChartDays, cfg.Market.SlidesDays)
	}
	if cfg.Publish.Branch != "main" || cfg.Publish.Remote != "origin" {
		t.Errorf("publish defaults = %s/%s", cfg.Publish.Branch, cfg.Publish.Remote)
	}
	if cfg.Output.ChartFile == "" || cfg.Output.ArchiveDir == "" {
		t.Error("output paths not defaulted")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
digest:
  dir: ` + dir + `
  lookback_days: 21
market:
  chart_days: 30
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LOOKBACK_DAYS", "9")
	t.Setenv("COINGECKO_BASE_URL", "http://localhost:9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Digest.Dir != dir {
		t.Errorf("dir = %s", cfg.Digest.Dir)
	}
	if cfg.Digest.LookbackDays != 9 {
		t.Errorf("lookback = %d, want the env override", cfg.Digest.LookbackDays)
	}
	if cfg.Market.ChartDays != 30 {
		t.Errorf("chart days = %d, want the file value", cfg.Market.ChartDays)
	}
	if cfg.Market.BaseURL != "http://localhost:9999" {
		t.Errorf("base url = %s, want the env override", cfg.Market.BaseURL)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandHome("~/Documents/x"); got != filepath.Join(home, "Documents/x") {
		t.Errorf("expandHome = %s", got)
	}
	if got := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("expandHome mangled an absolute path: %s", got)
	}
}
