package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsBurstOfCreates(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	paths, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher() error: %v", err)
	}

	const n = 100
	want := map[string]struct{}{}
	for i := 0; i < n; i++ {
		p := filepath.Join(root, fmt.Sprintf("receipt-%03d.txt", i))
		if err := os.WriteFile(p, []byte("MILK 3.50\n"), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error: %v", p, err)
		}
		want[p] = struct{}{}
	}

	got := map[string]struct{}{}
	deadline := time.After(5 * time.Second)
	for len(got) < n {
		select {
		case p, ok := <-paths:
			if !ok {
				t.Fatalf("paths channel closed after %d of %d", len(got), n)
			}
			got[p] = struct{}{}
		case <-deadline:
			t.Fatalf("timed out with %d of %d paths", len(got), n)
		}
	}
	for p := range want {
		if _, ok := got[p]; !ok {
			t.Errorf("path %s never emitted", p)
		}
	}
}

func TestWatcherClosesOnCancel(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	paths, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("StartWatcher() error: %v", err)
	}
	cancel()

	deadline := time.After(5 * time.Second)
	for paths != nil || errs != nil {
		select {
		case _, ok := <-paths:
			if !ok {
				paths = nil
			}
		case _, ok := <-errs:
			if !ok {
				errs = nil
			}
		case <-deadline:
			t.Fatalf("channels still open after cancel")
		}
	}
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{}, nil)
	if err == nil {
		t.Fatalf("StartWatcher() with no roots succeeded, want error")
	}
}
