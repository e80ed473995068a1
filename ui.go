package neogui

import (
	"time"
)

// Painter is the host's fill primitive. EndFrame calls it once per visible
// element, parents before children.
type Painter interface {
	// SetFillColor sets the color used by subsequent FillRect calls.
	SetFillColor(r, g, b, a uint8)
	// FillRect fills an axis-aligned rectangle in absolute coordinates.
	FillRect(x, y, width, height float64)
}

// UI is a layout engine instance. It owns the element arena, the input
// double buffer and the paint target for one surface. A UI is not safe for
// concurrent use: build the tree between BeginFrame and EndFrame of the same
// frame from a single goroutine.
type UI struct {
	arena   arena
	input   inputBuffer
	painter Painter
	debug   bool
	stats   FrameStats

	// ScreenshotDir is where queued screenshots are written by Run.
	// Defaults to "screenshots".
	ScreenshotDir string

	screenshotQueue []string
	runner          *TestRunner
}

// NewUI creates a UI with a pre-allocated arena and no painter.
func NewUI() *UI {
	ui := &UI{ScreenshotDir: "screenshots"}
	ui.arena.grow()
	return ui
}

// SetPainter sets the paint target used by EndFrame. A nil painter disables
// painting; layout and world resolution still run.
func (ui *UI) SetPainter(p Painter) {
	ui.painter = p
}

// Painter returns the current paint target.
func (ui *UI) Painter() Painter {
	return ui.painter
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timings are recorded and logged to stderr and arena growth is reported.
func (ui *UI) SetDebugMode(enabled bool) {
	ui.debug = enabled
}

// BeginFrame discards the previous frame's elements. Arena capacity is kept.
func (ui *UI) BeginFrame() {
	ui.arena.reset()
}

// EndFrame lays out the tree from the root with the exact size
// (rootWidth, rootHeight), resolves world positions and paints every element
// with a non-zero alpha in ascending identifier order.
func (ui *UI) EndFrame(rootWidth, rootHeight float64) {
	if !ui.arena.exists(RootElem) {
		panic("neogui: dispatch: EndFrame called without a root element")
	}

	var t0 time.Time
	stats := FrameStats{}
	if ui.debug {
		t0 = time.Now()
	}

	root := Tight(Vec2{rootWidth, rootHeight})
	ui.layout(RootElem, root)
	// Kinds that adopt a child's size skip the final clamp; the root is
	// always exactly the surface size.
	ui.arena.size[RootElem] = root.Constrain(ui.arena.size[RootElem])

	if ui.debug {
		stats.LayoutTime = time.Since(t0)
		t0 = time.Now()
	}

	ui.arena.resolveWorld()

	if ui.debug {
		stats.ResolveTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.Painted = ui.paint()

	if ui.debug {
		stats.PaintTime = time.Since(t0)
	}
	stats.Root = ui.arena.size[RootElem]
	stats.Elements = ui.arena.count - int(RootElem)
	stats.Capacity = ui.arena.capacity
	ui.stats = stats

	if ui.debug {
		ui.debugLog(stats)
	}
}

// paint emits one filled rectangle per visible element and returns how many
// were emitted.
func (ui *UI) paint() int {
	if ui.painter == nil {
		return 0
	}
	a := &ui.arena
	n := 0
	for e := int(RootElem); e < a.count; e++ {
		c := a.color[e]
		if c.A == 0 {
			continue
		}
		p, s := a.worldPos[e], a.size[e]
		ui.painter.SetFillColor(c.R, c.G, c.B, c.A)
		ui.painter.FillRect(p.X, p.Y, s.X, s.Y)
		n++
	}
	return n
}

// Stats returns the statistics recorded by the most recent EndFrame.
func (ui *UI) Stats() FrameStats {
	return ui.stats
}
