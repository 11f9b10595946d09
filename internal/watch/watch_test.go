package watch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
)

func quiet() *mdwlog.Logger {
	return mdwlog.NewWithConfig(mdwlog.Config{Output: io.Discard})
}

func TestNewDefaults(t *testing.T) {
	w, err := New("prog.fbasic", Options{Logger: quiet()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if w.debounce != DefaultDebounce {
		t.Errorf("debounce = %v, want %v", w.debounce, DefaultDebounce)
	}
	if !filepath.IsAbs(w.Path()) {
		t.Errorf("Path() = %q, want absolute", w.Path())
	}
}

func TestRunDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.fbasic")
	other := filepath.Join(dir, "other.fbasic")
	if err := os.WriteFile(path, []byte("x = 1"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, Options{Logger: quiet(), Debounce: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	var calls atomic.Int32
	changed := make(chan struct{}, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() {
			calls.Add(1)
			changed <- struct{}{}
		})
	}()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(other, []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("x = 2"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	// Let any stray timer fire before counting
	time.Sleep(200 * time.Millisecond)
	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("onChange calls = %d, want 1", got)
	}
}

func TestRunMissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "gone", "prog.fbasic"), Options{Logger: quiet()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := w.Run(context.Background(), func() {}); err == nil {
		t.Error("Run() expected error for a missing directory")
	}
}
