package neogui

import (
	"fmt"
	"os"
	"time"
)

// FrameStats describes the most recent EndFrame. Timings are only recorded
// in debug mode.
type FrameStats struct {
	Root     Vec2 // exact size the root was laid out at
	Elements int  // elements created this frame, root included
	Capacity int  // arena capacity after the frame
	Painted  int  // rectangles handed to the painter

	LayoutTime  time.Duration
	ResolveTime time.Duration
	PaintTime   time.Duration
}

// Total returns the combined duration of all recorded phases.
func (s FrameStats) Total() time.Duration {
	return s.LayoutTime + s.ResolveTime + s.PaintTime
}

// debugLog prints timing and element stats to stderr.
func (ui *UI) debugLog(stats FrameStats) {
	if !ui.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[neogui] layout: %v | resolve: %v | paint: %v | total: %v\n",
		stats.LayoutTime, stats.ResolveTime, stats.PaintTime, stats.Total())
	_, _ = fmt.Fprintf(os.Stderr,
		"[neogui] root: %gx%g | elements: %d | capacity: %d | painted: %d\n",
		stats.Root.X, stats.Root.Y, stats.Elements, stats.Capacity, stats.Painted)
}

// debugArenaGrown reports an arena reallocation.
func debugArenaGrown(from, to int) {
	_, _ = fmt.Fprintf(os.Stderr, "[neogui] warning: arena grown from %d to %d elements\n", from, to)
}
