package digest

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDigest(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_SkipsUnusableFiles(t *testing.T) {
	dir := t.TempDir()
	writeDigest(t, dir, "digest-2026-08-18.md", "| 当前价格 | **$64,000** |\n")
	writeDigest(t, dir, "digest-2026-08-19.md", "今日无行情数据。\n") // no price
	writeDigest(t, dir, "digest-notes.md", "| 当前价格 | **$99,000** |\n") // no date
	writeDigest(t, dir, "weekly-2026-08-20.md", "| 当前价格 | **$65,000** |\n") // wrong prefix
	writeDigest(t, dir, "digest-2026-08-20.md", "| 当前价格 | **$65,600** |\n")

	records, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if *records[0].Price != 64000 || *records[1].Price != 65600 {
		t.Errorf("prices = %v, %v", *records[0].Price, *records[1].Price)
	}
	if !records[0].Date.Before(records[1].Date) {
		t.Error("records not in date order")
	}
}

func TestLoadRecent_LookbackAndCap(t *testing.T) {
	dir := t.TempDir()
	days := []string{
		"2026-08-01", // outside the 14-day lookback
		"2026-08-14", // exactly on the cutoff, kept
		"2026-08-20",
		"2026-08-21",
		"2026-08-22",
		"2026-08-23",
	}
	for _, d := range days {
		writeDigest(t, dir, "digest-"+d+".md", "| 当前价格 | **$64,000** |\n")
	}

	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	records, err := LoadRecent(dir, 14, 7, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
	if records[0].Date.Format("2006-01-02") != "2026-08-14" {
		t.Errorf("oldest = %s, want the cutoff-day record kept", records[0].Date.Format("2006-01-02"))
	}

	// cap to the newest 3
	records, err = LoadRecent(dir, 14, 3, now)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if records[0].Date.Format("2006-01-02") != "2026-08-21" {
		t.Errorf("oldest kept = %s, want 2026-08-21", records[0].Date.Format("2006-01-02"))
	}
}

func TestLoad_EmptyDir(t *testing.T) {
	records, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records from an empty dir", len(records))
	}
}
