package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/mandelscope/internal/fractal"
)

func TestAnsiFrameCellGeometry(t *testing.T) {
	bm := fractal.NewBitmap(4, 6)
	out := ansiFrame(bm)

	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("6 pixel rows should pack into 3 cell lines, got %d", got)
	}
	if got := strings.Count(out, "▀"); got != 4*3 {
		t.Errorf("expected %d half blocks, got %d", 4*3, got)
	}
}

func TestAnsiFrameOddHeight(t *testing.T) {
	bm := fractal.NewBitmap(2, 3)
	bm.SetRGB(2, 0, 9, 9, 9)

	out := ansiFrame(bm)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("3 pixel rows should pack into 2 cell lines, got %d", got)
	}
	// The dangling row keeps a black background.
	if !strings.Contains(out, "\x1b[38;2;9;9;9m\x1b[48;2;0;0;0m") {
		t.Error("odd trailing row not drawn over black")
	}
}

func TestAnsiFrameColors(t *testing.T) {
	bm := fractal.NewBitmap(1, 2)
	bm.SetRGB(0, 0, 255, 10, 20)
	bm.SetRGB(1, 0, 1, 2, 3)

	out := ansiFrame(bm)
	if !strings.Contains(out, "\x1b[38;2;255;10;20m") {
		t.Error("upper pixel missing from foreground")
	}
	if !strings.Contains(out, "\x1b[48;2;1;2;3m") {
		t.Error("lower pixel missing from background")
	}
	if !strings.HasSuffix(out, "\x1b[0m\n") {
		t.Error("line not reset-terminated")
	}
}
