package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Digest struct {
		Dir          string `yaml:"dir"`
		LookbackDays int    `yaml:"lookback_days"`
		MaxRecords   int    `yaml:"max_records"`
	} `yaml:"digest"`
	Market struct {
		BaseURL    string `yaml:"base_url"`
		ChartDays  int    `yaml:"chart_days"`
		SlidesDays int    `yaml:"slides_days"`
	} `yaml:"market"`
	Output struct {
		ChartFile   string `yaml:"chart_file"`
		ArchiveDir  string `yaml:"archive_dir"`
		PagesFile   string `yaml:"pages_file"`
		OpenBrowser bool   `yaml:"open_browser"`
	} `yaml:"output"`
	Publish struct {
		RepoDir string `yaml:"repo_dir"`
		Branch  string `yaml:"branch"`
		Remote  string `yaml:"remote"`
	} `yaml:"publish"`
	Schedule struct {
		ChartCron  string `yaml:"chart_cron"`
		SlidesCron string `yaml:"slides_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DIGEST_DIR"); v != "" {
		cfg.Digest.Dir = v
	}
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.Market.BaseURL = v
	}
	if v := os.Getenv("PAGES_REPO_DIR"); v != "" {
		cfg.Publish.RepoDir = v
	}
	if v := os.Getenv("PAGES_FILE"); v != "" {
		cfg.Output.PagesFile = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_CHART"); v != "" {
		cfg.Schedule.ChartCron = v
	}
	if v := os.Getenv("CRON_SLIDES"); v != "" {
		cfg.Schedule.SlidesCron = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Digest.LookbackDays = n
		}
	}

	// Defaults
	if cfg.Digest.Dir == "" {
		cfg.Digest.Dir = "~/Documents/BitCoinNewsDaily"
	}
	cfg.Digest.Dir = expandHome(cfg.Digest.Dir)
	if cfg.Digest.LookbackDays == 0 {
		cfg.Digest.LookbackDays = 14
	}
	if cfg.Digest.MaxRecords == 0 {
		cfg.Digest.MaxRecords = 7
	}
	if cfg.Market.BaseURL == "" {
		cfg.Market.BaseURL = "https://api.coingecko.com/api/v3"
	}
	if cfg.Market.ChartDays == 0 {
		cfg.Market.ChartDays = 90
	}
	if cfg.Market.SlidesDays == 0 {
		cfg.Market.SlidesDays = 365
	}
	if cfg.Output.ChartFile == "" {
		cfg.Output.ChartFile = filepath.Join(cfg.Digest.Dir, "bitcoin-forecast-chart.html")
	}
	cfg.Output.ChartFile = expandHome(cfg.Output.ChartFile)
	if cfg.Output.ArchiveDir == "" {
		cfg.Output.ArchiveDir = cfg.Digest.Dir
	}
	cfg.Output.ArchiveDir = expandHome(cfg.Output.ArchiveDir)
	cfg.Publish.RepoDir = expandHome(cfg.Publish.RepoDir)
	if cfg.Output.PagesFile == "" && cfg.Publish.RepoDir != "" {
		cfg.Output.PagesFile = filepath.Join(cfg.Publish.RepoDir, "docs", "bitcoin-weekly.html")
	}
	cfg.Output.PagesFile = expandHome(cfg.Output.PagesFile)
	if cfg.Publish.Branch == "" {
		cfg.Publish.Branch = "main"
	}
	if cfg.Publish.Remote == "" {
		cfg.Publish.Remote = "origin"
	}
	if cfg.Schedule.ChartCron == "" {
		cfg.Schedule.ChartCron = "0 30 8 * * *"
	}
	if cfg.Schedule.SlidesCron == "" {
		cfg.Schedule.SlidesCron = "0 0 9 * * 1"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Digest.Dir == "" {
		return fmt.Errorf("digest.dir is required")
	}
	if c.Digest.LookbackDays <= 0 {
		return fmt.Errorf("digest.lookback_days must be positive")
	}
	if c.Market.ChartDays <= 0 || c.Market.SlidesDays <= 0 {
		return fmt.Errorf("market day counts must be positive")
	}
	return nil
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
