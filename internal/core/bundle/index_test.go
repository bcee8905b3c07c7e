package bundle

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestListScansOutputDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "carol.ovpn"), "carol")
	writeFile(t, filepath.Join(dir, "alice.ovpn"), "alice-bundle")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(dir, ".users"), "alice\ncarol\n")
	if err := os.Mkdir(filepath.Join(dir, "dir.ovpn"), 0o755); err != nil {
		t.Fatal(err)
	}

	idx := NewBundleIndex(dir)
	got, err := idx.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bundles, got %+v", got)
	}
	if got[0].Username != "alice" || got[1].Username != "carol" {
		t.Fatalf("unexpected order %+v", got)
	}
	if got[0].Path != filepath.Join(dir, "alice.ovpn") {
		t.Fatalf("unexpected path %q", got[0].Path)
	}
	if got[0].Size != int64(len("alice-bundle")) {
		t.Fatalf("unexpected size %d", got[0].Size)
	}
	if got[0].ModifiedAt.IsZero() {
		t.Fatalf("modified time not set")
	}
}

func TestListPicksUpChangesWithoutWatch(t *testing.T) {
	dir := t.TempDir()
	idx := NewBundleIndex(dir)

	got, err := idx.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty index, got %+v", got)
	}

	writeFile(t, filepath.Join(dir, "bob.ovpn"), "bob")
	got, err = idx.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Username != "bob" {
		t.Fatalf("expected bob, got %+v", got)
	}

	if err := os.Remove(filepath.Join(dir, "bob.ovpn")); err != nil {
		t.Fatal(err)
	}
	got, err = idx.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected bob to be gone, got %+v", got)
	}
}

func TestListMissingDir(t *testing.T) {
	idx := NewBundleIndex(filepath.Join(t.TempDir(), "absent"))
	got, err := idx.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}
