package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/mandelscope/internal/fractal"
)

func TestToImagePreservesPixels(t *testing.T) {
	bm := fractal.NewBitmap(3, 2)
	bm.SetRGB(0, 0, 255, 0, 0)
	bm.SetRGB(1, 2, 0, 128, 255)

	img := ToImage(bm)
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds %v", img.Bounds())
	}

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("pixel (0,0) = (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}
	r, g, b, _ = img.At(2, 1).RGBA()
	if r>>8 != 0 || g>>8 != 128 || b>>8 != 255 {
		t.Errorf("pixel (2,1) = (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	bm := fractal.NewBitmap(16, 16)
	bm.SetRGB(8, 8, 200, 100, 50)

	if err := WritePNG(path, bm); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("decoded bounds %v", img.Bounds())
	}
}

func TestWritePNGBadPath(t *testing.T) {
	bm := fractal.NewBitmap(2, 2)
	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), bm); err == nil {
		t.Error("expected error for unwritable path")
	}
}
