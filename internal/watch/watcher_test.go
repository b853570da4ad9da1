// SPDX-License-Identifier: MPL-2.0

package watch

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

const testDebounce = 100 * time.Millisecond

// recorder collects OnChange invocations.
type recorder struct {
	mu    sync.Mutex
	calls [][]string
	fired chan struct{}
}

func newRecorder() *recorder {
	return &recorder{fired: make(chan struct{}, 16)}
}

func (r *recorder) onChange(_ context.Context, changed []string) error {
	r.mu.Lock()
	r.calls = append(r.calls, changed)
	r.mu.Unlock()
	r.fired <- struct{}{}
	return nil
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.fired:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

// start runs w until the test ends.
func start(t *testing.T, w *Watcher) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		if err := <-errCh; err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})
}

func newTestWatcher(t *testing.T, cfg Config) *Watcher {
	t.Helper()

	cfg.Logger = log.New(io.Discard)
	if cfg.Debounce == 0 {
		cfg.Debounce = testDebounce
	}
	w, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return w
}

func write(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestWatcher_DebouncesSvgChanges(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rec := newRecorder()
	w := newTestWatcher(t, Config{Roots: []string{dir}, OnChange: rec.onChange})
	start(t, w)

	for _, name := range []string{"a.svg", "b.svg", "notes.txt"} {
		write(t, filepath.Join(dir, name))
		time.Sleep(10 * time.Millisecond)
	}

	rec.wait(t)
	time.Sleep(2 * testDebounce)

	calls := rec.snapshot()
	if len(calls) != 1 {
		t.Fatalf("callbacks = %d, want 1: %v", len(calls), calls)
	}
	want := []string{filepath.Join(w.roots[0], "a.svg"), filepath.Join(w.roots[0], "b.svg")}
	if !slices.Equal(calls[0], want) {
		t.Errorf("changed = %v, want %v", calls[0], want)
	}
}

func TestWatcher_MultipleRootsAndNewDirectories(t *testing.T) {
	t.Parallel()

	ant, fluent := t.TempDir(), t.TempDir()
	rec := newRecorder()
	w := newTestWatcher(t, Config{Roots: []string{ant, fluent}, OnChange: rec.onChange})
	start(t, w)

	// The new directory itself triggers a rebuild and is watched afterwards.
	if err := os.Mkdir(filepath.Join(fluent, "Home"), 0o755); err != nil {
		t.Fatal(err)
	}
	rec.wait(t)

	write(t, filepath.Join(fluent, "Home", "ic_fluent_home_20_regular.svg"))
	rec.wait(t)

	write(t, filepath.Join(ant, "filled", "home.svg"))
	rec.wait(t)

	calls := rec.snapshot()
	last := calls[len(calls)-1]
	if !slices.ContainsFunc(last, func(p string) bool { return filepath.Base(p) == "home.svg" || filepath.Base(p) == "filled" }) {
		t.Errorf("last change set = %v, want the ant package change", last)
	}
}

func TestWatcher_Ignore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rec := newRecorder()
	w := newTestWatcher(t, Config{Roots: []string{dir}, Ignore: []string{"drafts/**"}, OnChange: rec.onChange})
	start(t, w)

	write(t, filepath.Join(dir, "drafts", "x.svg"))
	write(t, filepath.Join(dir, ".git", "y.svg"))
	time.Sleep(3 * testDebounce)
	if n := len(rec.snapshot()); n != 0 {
		t.Fatalf("ignored paths fired %d callbacks", n)
	}

	write(t, filepath.Join(dir, "kept.svg"))
	rec.wait(t)
}

func TestWatcher_SkipIfBusy(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	release := make(chan struct{})
	var (
		mu    sync.Mutex
		calls int
	)
	entered := make(chan struct{}, 4)

	w := newTestWatcher(t, Config{
		Roots: []string{dir},
		OnChange: func(ctx context.Context, _ []string) error {
			mu.Lock()
			calls++
			mu.Unlock()
			entered <- struct{}{}
			select {
			case <-release:
			case <-ctx.Done():
			}
			return nil
		},
	})
	start(t, w)

	write(t, filepath.Join(dir, "a.svg"))
	<-entered

	// Arrives while the first rebuild is still running.
	write(t, filepath.Join(dir, "b.svg"))
	time.Sleep(3 * testDebounce)

	mu.Lock()
	if calls != 1 {
		t.Errorf("overlapping callbacks: %d", calls)
	}
	mu.Unlock()

	close(release)
	select {
	case <-entered:
	case <-time.After(5 * time.Second):
		t.Fatal("postponed change was never delivered")
	}
}

func TestWatcher_CallbackErrorKeepsRunning(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fired := make(chan struct{}, 4)
	w := newTestWatcher(t, Config{
		Roots: []string{dir},
		OnChange: func(context.Context, []string) error {
			fired <- struct{}{}
			return errors.New("build failed")
		},
	})
	start(t, w)

	for _, name := range []string{"a.svg", "b.svg"} {
		write(t, filepath.Join(dir, name))
		select {
		case <-fired:
		case <-time.After(5 * time.Second):
			t.Fatalf("no callback for %s", name)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f.svg")
	write(t, file)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no roots", Config{}},
		{"missing root", Config{Roots: []string{filepath.Join(dir, "missing")}}},
		{"file root", Config{Roots: []string{file}}},
		{"bad pattern", Config{Roots: []string{dir}, Patterns: []string{"[unclosed"}}},
		{"bad ignore", Config{Roots: []string{dir}, Ignore: []string{"{a,b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := New(tt.cfg); err == nil {
				t.Error("New() error = nil, want error")
			}
		})
	}

	if _, err := New(Config{}); !errors.Is(err, ErrNoRoots) {
		t.Errorf("New(no roots) = %v, want ErrNoRoots", err)
	}
}

func TestWatcher_DoubleRun(t *testing.T) {
	t.Parallel()

	w := newTestWatcher(t, Config{Roots: []string{t.TempDir()}})
	start(t, w)

	// Give the first Run a moment to claim the watcher.
	time.Sleep(20 * time.Millisecond)
	if err := w.Run(context.Background()); err == nil {
		t.Error("second Run() error = nil, want error")
	}
}

func TestWatcher_Rel(t *testing.T) {
	t.Parallel()

	outer := t.TempDir()
	inner := filepath.Join(outer, "nested")
	if err := os.Mkdir(inner, 0o755); err != nil {
		t.Fatal(err)
	}
	w := newTestWatcher(t, Config{Roots: []string{outer, inner}})
	t.Cleanup(func() { _ = w.fsw.Close() })

	innerAbs, outerAbs := w.roots[0], w.roots[1]
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{filepath.Join(innerAbs, "a", "b.svg"), "a/b.svg", true},
		{filepath.Join(outerAbs, "c.svg"), "c.svg", true},
		{outerAbs, ".", true},
		{filepath.Join(filepath.Dir(outerAbs), "elsewhere.svg"), "", false},
		{outerAbs + "-sibling", "", false},
	}
	for _, tt := range tests {
		got, ok := w.rel(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("rel(%q) = %q, %v, want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
	if len(DefaultIgnores()) == 0 || !slices.Contains(DefaultIgnores(), "**/.git/**") {
		t.Errorf("DefaultIgnores() = %v", DefaultIgnores())
	}
}
