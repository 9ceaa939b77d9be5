package gallery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mandelscope/internal/fractal"
)

func TestSaveAndList(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "gallery"))
	if err := store.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	bm := fractal.NewBitmap(8, 8)
	view := fractal.Viewport{CenterX: -0.7435, CenterY: 0.1314, Zoom: 250, MaxIter: 600}

	id, err := store.Save(bm, view, "Ocean Waves")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Fatal("empty shot id")
	}

	if _, err := os.Stat(filepath.Join(store.baseDir, id, "image.png")); err != nil {
		t.Errorf("image not written: %v", err)
	}

	shots, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(shots) != 1 {
		t.Fatalf("expected 1 shot, got %d", len(shots))
	}

	meta := shots[0]
	if meta.ID != id {
		t.Errorf("id %q, want %q", meta.ID, id)
	}
	if meta.CenterX != -0.7435 || meta.Zoom != 250 {
		t.Errorf("metadata center %f zoom %f", meta.CenterX, meta.Zoom)
	}
	if meta.Palette != "Ocean Waves" {
		t.Errorf("palette %q", meta.Palette)
	}
}

func TestListEmptyStore(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "never-created"))

	shots, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if shots != nil {
		t.Errorf("expected nil for missing gallery, got %d shots", len(shots))
	}
}

func TestListSkipsGarbage(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}

	// A directory without metadata and a stray file must both be ignored.
	if err := os.MkdirAll(filepath.Join(dir, "shot_bogus"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	shots, err := store.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(shots) != 0 {
		t.Errorf("expected 0 shots, got %d", len(shots))
	}
}
