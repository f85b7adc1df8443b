package profilefs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/michaelprinc/mcp-prompt-broker/internal/domain"
)

// Loader implements domain.CatalogSource (C2): a non-recursive directory
// scan of `.md` files, held behind an atomic.Pointer so readers never block
// on or observe a partial reload.
type Loader struct {
	dir     string
	current atomic.Pointer[domain.Catalog]

	mu      sync.Mutex
	pending *reloadCall
}

// reloadCall lets every caller that arrives while a scan is in flight await
// that same scan's outcome instead of starting a redundant one (§4.2).
type reloadCall struct {
	done   chan struct{}
	report *domain.ReloadReport
	err    error
}

// NewLoader builds a Loader rooted at dir. Call Load once before serving
// traffic; Current returns an empty catalog until then.
func NewLoader(dir string) *Loader {
	l := &Loader{dir: dir}
	l.current.Store(domain.NewCatalog(nil, nil, nil))
	return l
}

// Current implements domain.CatalogSource.
func (l *Loader) Current() *domain.Catalog {
	return l.current.Load()
}

// Load is Reload's startup alias, used once before serving traffic.
func (l *Loader) Load(ctx context.Context) (*domain.ReloadReport, error) {
	return l.Reload(ctx)
}

// Reload implements domain.CatalogSource.
func (l *Loader) Reload(ctx context.Context) (*domain.ReloadReport, error) {
	l.mu.Lock()
	if call := l.pending; call != nil {
		l.mu.Unlock()
		select {
		case <-call.done:
			return call.report, call.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	call := &reloadCall{done: make(chan struct{})}
	l.pending = call
	l.mu.Unlock()

	report, err := l.doReload()
	call.report, call.err = report, err
	close(call.done)

	l.mu.Lock()
	l.pending = nil
	l.mu.Unlock()

	return report, err
}

func (l *Loader) doReload() (*domain.ReloadReport, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading profiles directory %q: %w", l.dir, err)
	}

	report := &domain.ReloadReport{Timestamp: time.Now()}
	var profiles []domain.Profile

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		report.FilesConsidered++

		path := filepath.Join(l.dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			report.Errors = append(report.Errors, domain.FileError{Path: path, Reason: err.Error()})
			continue
		}

		modTime := time.Now()
		if info, err := e.Info(); err == nil {
			modTime = info.ModTime()
		}

		p, err := ParseProfile(path, modTime, raw)
		if err != nil {
			report.Errors = append(report.Errors, domain.FileError{Path: path, Reason: err.Error()})
			continue
		}
		profiles = append(profiles, p)
		report.Warnings = append(report.Warnings, prefixWarnings(p.Name, p.Warnings)...)
	}

	catalog := domain.NewCatalog(profiles, func(winner, loser domain.Profile) {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"duplicate profile name %q: %q kept, %q discarded", winner.Name, winner.SourcePath, loser.SourcePath))
	}, func(winner, loser domain.Profile) {
		report.Warnings = append(report.Warnings, fmt.Sprintf(
			"multiple fallback profiles declared: %q kept, %q discarded", winner.Name, loser.Name))
	})
	l.current.Store(catalog)

	names := make([]string, 0, len(catalog.All()))
	for _, p := range catalog.All() {
		names = append(names, p.Name)
	}
	report.ProfilesLoaded = names

	return report, nil
}

func prefixWarnings(profileName string, warnings []string) []string {
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = fmt.Sprintf("%s: %s", profileName, w)
	}
	return out
}
