package bundle

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestWatchTracksBundles(t *testing.T) {
	dir := t.TempDir()
	idx := NewBundleIndex(dir)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- idx.Watch(ctx) }()

	waitFor(t, idx.watching.Load)

	writeFile(t, filepath.Join(dir, "dave.ovpn"), "dave")
	waitFor(t, func() bool {
		got, _ := idx.List()
		return len(got) == 1 && got[0].Username == "dave"
	})

	if err := os.Remove(filepath.Join(dir, "dave.ovpn")); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool {
		got, _ := idx.List()
		return len(got) == 0
	})

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatalf("watch did not stop")
	}
	if idx.watching.Load() {
		t.Fatalf("watching flag still set after stop")
	}
}

func TestWatchWithoutDirIsNoop(t *testing.T) {
	idx := NewBundleIndex("")
	if err := idx.Watch(context.Background()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
