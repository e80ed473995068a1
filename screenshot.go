package neogui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the next frame painted by Run. The
// PNG lands in ScreenshotDir, named after the capture time, the label and
// the root size of the frame it shows.
func (ui *UI) Screenshot(label string) {
	ui.screenshotQueue = append(ui.screenshotQueue, label)
}

// screenshotPath names the capture of the last laid-out frame, e.g.
// screenshots/20261018_153000_after-resize_1024x768.png.
func (ui *UI) screenshotPath(label string, at time.Time) string {
	root := ui.stats.Root
	name := fmt.Sprintf("%s_%s_%dx%d.png",
		at.Format("20060102_150405"), sanitizeLabel(label), int(root.X), int(root.Y))
	return filepath.Join(ui.ScreenshotDir, name)
}

// flushScreenshots writes every queued capture from the painted screen.
// Failures are reported on stderr and never stop the frame loop.
func (ui *UI) flushScreenshots(screen *ebiten.Image) {
	if len(ui.screenshotQueue) == 0 {
		return
	}
	labels := ui.screenshotQueue
	ui.screenshotQueue = ui.screenshotQueue[:0]

	if err := os.MkdirAll(ui.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[neogui] screenshot: mkdir %s: %v\n", ui.ScreenshotDir, err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	now := time.Now()
	for _, label := range labels {
		path := ui.screenshotPath(label, now)
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[neogui] screenshot: %v\n", err)
			continue
		}
		if ui.debug {
			_, _ = fmt.Fprintf(os.Stderr, "[neogui] screenshot: wrote %s (%d elements)\n", path, ui.stats.Elements)
		}
	}
}

// unpremultiply converts premultiplied RGBA bytes to a straight-alpha image.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

// writePNG encodes img to a PNG file at path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty labels.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
