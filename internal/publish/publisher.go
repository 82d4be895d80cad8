// Package publish writes rendered reports to disk and pushes the weekly
// page to a git-backed static site.
package publish

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// Publisher writes report HTML to the filesystem and optionally
// publishes the weekly page via git.
type Publisher struct {
	RepoDir string // git repository holding the published page
	Branch  string
	Remote  string

	// Now is overridable in tests.
	Now func() time.Time
}

func New(repoDir, branch, remote string) *Publisher {
	return &Publisher{
		RepoDir: repoDir,
		Branch:  branch,
		Remote:  remote,
		Now:     time.Now,
	}
}

// WriteFile writes html to path, creating parent directories as needed.
func WriteFile(path, html string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ArchiveName returns the dated archive filename for the current ISO week,
// e.g. bitcoin-weekly-2026-W35.html.
func (p *Publisher) ArchiveName() string {
	year, week := p.Now().ISOWeek()
	return fmt.Sprintf("bitcoin-weekly-%d-W%02d.html", year, week)
}

// Archive writes html into archiveDir under the ISO-week filename and
// returns the full path.
func (p *Publisher) Archive(archiveDir, html string) (string, error) {
	path := filepath.Join(archiveDir, p.ArchiveName())
	if err := WriteFile(path, html); err != nil {
		return "", err
	}
	return path, nil
}

// PublishPage copies html into the pages file inside the repo, commits
// and pushes. A push failure is logged but not returned: the local
// commit survives and the next push carries it.
func (p *Publisher) PublishPage(pagesFile, html string) error {
	path := pagesFile
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.RepoDir, path)
	}
	if err := WriteFile(path, html); err != nil {
		return err
	}

	rel, err := filepath.Rel(p.RepoDir, path)
	if err != nil {
		rel = path
	}

	if out, err := p.git("add", rel); err != nil {
		return fmt.Errorf("git add: %w: %s", err, out)
	}

	year, week := p.Now().ISOWeek()
	msg := fmt.Sprintf("Update bitcoin weekly report %d-W%02d", year, week)
	out, err := p.git("commit", "-m", msg)
	if err != nil {
		// Re-running in the same week produces an identical tree.
		if strings.Contains(out, "nothing to commit") {
			log.Println("[INFO] publish: page unchanged, nothing to commit")
			return nil
		}
		return fmt.Errorf("git commit: %w: %s", err, out)
	}
	log.Printf("[INFO] publish: committed %s", rel)

	if out, err := p.git("push", p.Remote, p.Branch); err != nil {
		log.Printf("[WARN] publish: push failed (commit kept locally): %v: %s", err, out)
		return nil
	}
	log.Printf("[INFO] publish: pushed to %s/%s", p.Remote, p.Branch)
	return nil
}

func (p *Publisher) git(args ...string) (string, error) {
	full := append([]string{"-C", p.RepoDir}, args...)
	cmd := exec.Command("git", full...)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return strings.TrimSpace(buf.String()), err
}

// OpenBrowser opens path in the platform default browser. Failure is
// reported but never fatal: the file on disk is the real deliverable.
func OpenBrowser(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", abs)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", abs)
	default:
		cmd = exec.Command("xdg-open", abs)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("[WARN] open browser: %v", err)
	}
}
