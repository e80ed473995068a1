// Package ecs provides ECS adapters for neogui.
package ecs

import (
	"github.com/phanxgames/neogui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// FillEvent is one painted rectangle in absolute coordinates.
type FillEvent struct {
	Rect  neogui.Rect
	Color neogui.Color
}

// FillEventType is the Donburi event type for painted rectangles.
var FillEventType = events.NewEventType[FillEvent]()

type donburiPainter struct {
	world donburi.World
	fill  neogui.Color
}

// NewDonburiPainter creates a Painter backed by a Donburi world. Each fill is
// published to FillEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiPainter(world donburi.World) neogui.Painter {
	return &donburiPainter{world: world}
}

func (p *donburiPainter) SetFillColor(r, g, b, a uint8) {
	p.fill = neogui.Color{R: r, G: g, B: b, A: a}
}

func (p *donburiPainter) FillRect(x, y, width, height float64) {
	FillEventType.Publish(p.world, FillEvent{
		Rect:  neogui.Rect{X: x, Y: y, Width: width, Height: height},
		Color: p.fill,
	})
}
