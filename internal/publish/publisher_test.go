package publish

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchiveName_ISOWeek(t *testing.T) {
	p := New("", "main", "origin")
	p.Now = func() time.Time { return time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC) }
	if got := p.ArchiveName(); got != "bitcoin-weekly-2026-W35.html" {
		t.Errorf("ArchiveName = %q", got)
	}

	// early January belongs to the previous ISO year
	p.Now = func() time.Time { return time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC) }
	if got := p.ArchiveName(); got != "bitcoin-weekly-2026-W53.html" {
		t.Errorf("ArchiveName = %q", got)
	}
}

func TestArchive_WritesUnderISOWeekName(t *testing.T) {
	dir := t.TempDir()
	p := New("", "main", "origin")
	p.Now = func() time.Time { return time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC) }

	path, err := p.Archive(dir, "<html>weekly</html>")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "bitcoin-weekly-2026-W35.html" {
		t.Errorf("archived as %s", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "<html>weekly</html>" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docs", "sub", "page.html")
	if err := WriteFile(path, "x"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestPublishPage_MissingRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	p := New(filepath.Join(t.TempDir(), "absent"), "main", "origin")
	err := p.PublishPage("page.html", "<html></html>")
	if err == nil {
		t.Fatal("expected an error for a nonexistent repo")
	}
	if !strings.Contains(err.Error(), "git") {
		t.Errorf("err = %v", err)
	}
}
