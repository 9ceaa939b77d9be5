package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// ansiFrame renders a bitmap as truecolor terminal text, two pixel rows
// per cell: the upper pixel as the foreground of ▀, the lower as the
// background. Odd trailing rows draw against a black background.
func ansiFrame(bm *fractal.Bitmap) string {
	var b strings.Builder
	b.Grow(bm.Width * (bm.Height/2 + 1) * 40)

	for i := 0; i < bm.Height; i += 2 {
		for j := 0; j < bm.Width; j++ {
			tr, tg, tb := bm.RGBAt(i, j)
			var br, bg, bb uint8
			if i+1 < bm.Height {
				br, bg, bb = bm.RGBAt(i+1, j)
			}
			fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
		}
		b.WriteString("\x1b[0m\n")
	}
	return b.String()
}
