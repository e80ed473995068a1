package neogui

import (
	"fmt"
	"math"
)

// layoutFlex sizes children in two passes. Inflexible children are laid out
// first with an unbounded main axis; the main-axis space they leave over is
// then split between flexible children in proportion to their weights. The
// split is an exact float64 division with no remainder rounding.
//
// When the incoming main axis is unbounded there is nothing to split and
// every flexible child is offered zero.
//
// The container's own size is the sum of its children's main sizes by the
// largest cross size, and is not clamped to c.
func (ui *UI) layoutFlex(e Elem, f FlexLayout, c Constraints) {
	if f.CrossStretch > 1 || math.IsNaN(f.CrossStretch) {
		panic(fmt.Sprintf("neogui: flex element %d: cross stretch %g outside (0, 1]", e, f.CrossStretch))
	}

	a := &ui.arena
	main, cross := f.MainAxis, f.MainAxis.Cross()

	nc := c
	nc.Min.Set(cross, 0)
	nc.Min.Set(main, 0)
	nc.Max.Set(main, inf)
	if f.CrossStretch > 0 && c.Bounded(cross) {
		v := c.Max.Get(cross) * f.CrossStretch
		nc.Min.Set(cross, v)
		nc.Max.Set(cross, v)
	}

	maxCross := c.Min.Get(cross)
	var fixedMain, flexMain, totalWeight, maxWeight float64

	for child := a.children[e].first; child != NoElem; child = a.links[child].nextSibling {
		if w := a.flex[child]; w > 0 {
			totalWeight += w
			maxWeight = math.Max(maxWeight, w)
			continue
		}
		ui.layout(child, nc)
		size := a.size[child]
		fixedMain += size.Get(main)
		maxCross = math.Max(maxCross, size.Get(cross))
	}

	var available float64
	if c.Bounded(main) {
		available = math.Max(0, c.Max.Get(main)-fixedMain)
	}

	// Finite weights can still overflow when summed.
	scale := 1.0
	if math.IsInf(totalWeight, 1) {
		scale = 1 / maxWeight
		totalWeight = 0
		for child := a.children[e].first; child != NoElem; child = a.links[child].nextSibling {
			totalWeight += a.flex[child] * scale
		}
	}

	for child := a.children[e].first; child != NoElem; child = a.links[child].nextSibling {
		w := a.flex[child]
		if w <= 0 {
			continue
		}
		nc.Max.Set(main, available*(w*scale/totalWeight))
		ui.layout(child, nc)
		size := a.size[child]
		flexMain += size.Get(main)
		maxCross = math.Max(maxCross, size.Get(cross))
	}

	var size Vec2
	size.Set(main, fixedMain+flexMain)
	size.Set(cross, maxCross)
	a.size[e] = size

	var offset float64
	for child := a.children[e].first; child != NoElem; child = a.links[child].nextSibling {
		childSize := a.size[child]
		var p Vec2
		p.Set(main, offset)
		p.Set(cross, alignOffset(maxCross-childSize.Get(cross), f.CrossAlign))
		a.pos[child] = p
		offset += childSize.Get(main)
	}
}
