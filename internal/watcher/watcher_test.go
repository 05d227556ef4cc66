package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestNewValidation(t *testing.T) {
	nop := func(ctx context.Context, path string) error { return nil }

	if _, err := New(Config{Dir: ""}, nop, zerolog.Nop()); err == nil {
		t.Error("New() accepted an empty directory")
	}
	if _, err := New(Config{Dir: t.TempDir()}, nil, zerolog.Nop()); err == nil {
		t.Error("New() accepted a nil callback")
	}

	w, err := New(Config{Dir: t.TempDir()}, nop, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if w.settle != 500*time.Millisecond {
		t.Errorf("default settle = %v, want 500ms", w.settle)
	}
}

func TestIsLinFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"session.lin", true},
		{"SESSION.LIN", true},
		{filepath.Join("dir", "a.lin"), true},
		{"session.txt", false},
		{"lin", false},
		{"session.lin.bak", false},
	}
	for _, tt := range tests {
		if got := isLinFile(tt.path); got != tt.want {
			t.Errorf("isLinFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherProcessesSettledFile(t *testing.T) {
	dir := t.TempDir()

	var (
		mu        sync.Mutex
		processed []string
	)
	w, err := New(Config{Dir: dir, Settle: 50 * time.Millisecond},
		func(ctx context.Context, path string) error {
			mu.Lock()
			processed = append(processed, path)
			mu.Unlock()
			return nil
		}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher a moment to register before creating the file.
	time.Sleep(100 * time.Millisecond)

	target := filepath.Join(dir, "session.lin")
	if err := os.WriteFile(target, []byte("md|1S2,S3,S4,|"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		mu.Lock()
		n := len(processed)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("watcher never processed the LIN file")
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(processed) == 0 || processed[0] != target {
		t.Errorf("processed = %v, want %q", processed, target)
	}
	for _, p := range processed {
		if filepath.Ext(p) != ".lin" {
			t.Errorf("non-LIN file processed: %s", p)
		}
	}
}
