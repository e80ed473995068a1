package neogui

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled and tinted to fill rectangles.
var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(Color{255, 255, 255, 255})
	}
	return whitePixel
}

// EbitenPainter paints filled rectangles onto an ebiten image.
type EbitenPainter struct {
	// Target receives the fills. Nil discards them.
	Target *ebiten.Image

	fill Color
}

// SetFillColor implements Painter.
func (p *EbitenPainter) SetFillColor(r, g, b, a uint8) {
	p.fill = Color{r, g, b, a}
}

// FillRect implements Painter.
func (p *EbitenPainter) FillRect(x, y, width, height float64) {
	if p.Target == nil || width <= 0 || height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(width, height)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(p.fill)
	p.Target.DrawImage(whiteImage(), &op)
}

// ImagePainter paints onto an in-memory RGBA image without a window or GPU.
type ImagePainter struct {
	dc *gg.Context
}

// NewImagePainter creates a transparent width x height canvas.
func NewImagePainter(width, height int) *ImagePainter {
	return &ImagePainter{dc: gg.NewContext(width, height)}
}

// SetFillColor implements Painter.
func (p *ImagePainter) SetFillColor(r, g, b, a uint8) {
	p.dc.SetRGBA255(int(r), int(g), int(b), int(a))
}

// FillRect implements Painter.
func (p *ImagePainter) FillRect(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	p.dc.DrawRectangle(x, y, width, height)
	p.dc.Fill()
}

// Clear fills the whole canvas with c.
func (p *ImagePainter) Clear(c Color) {
	p.dc.SetColor(c)
	p.dc.Clear()
}

// Image returns the canvas.
func (p *ImagePainter) Image() image.Image {
	return p.dc.Image()
}

// EncodePNG writes the canvas to w as PNG.
func (p *ImagePainter) EncodePNG(w io.Writer) error {
	if err := p.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to path as PNG.
func (p *ImagePainter) SavePNG(path string) error {
	if err := p.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
