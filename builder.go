package neogui

import (
	"fmt"
	"iter"
	"math"
)

// CreateElem appends a leaf element as the last child of parent. Passing
// NoElem creates the frame's root, which must be the first element created
// after BeginFrame. Panics if parent does not exist or a second root is
// requested.
func (ui *UI) CreateElem(parent Elem) Elem {
	capacity := ui.arena.capacity
	e := ui.arena.create(parent)
	if ui.debug && ui.arena.capacity != capacity {
		debugArenaGrown(capacity, ui.arena.capacity)
	}
	return e
}

// Padding creates an element that insets its single child.
func (ui *UI) Padding(parent Elem, left, top, right, bottom float64) Elem {
	e := ui.CreateElem(parent)
	ui.arena.layout[e] = PaddingLayout{Insets: EdgeInsets{left, top, right, bottom}}
	return e
}

// Center creates an element that centers its single child.
func (ui *UI) Center(parent Elem) Elem {
	return ui.Align(parent, 0, 0)
}

// Align creates an element that fills the space it is offered and places its
// single child by the factors x and y, each from -1 (start) to 1 (end).
func (ui *UI) Align(parent Elem, x, y float64) Elem {
	e := ui.CreateElem(parent)
	ui.arena.layout[e] = AlignLayout{Factor: Vec2{x, y}}
	return e
}

// SizedBox creates an element that forces its single child to w by h. A
// non-positive dimension leaves that axis unconstrained.
func (ui *UI) SizedBox(parent Elem, w, h float64) Elem {
	e := ui.CreateElem(parent)
	ui.arena.layout[e] = SizedBoxLayout{Size: Vec2{w, h}}
	return e
}

// Row creates a flex container laying children out left to right.
func (ui *UI) Row(parent Elem) Elem {
	return ui.Flex(parent, AxisX)
}

// Column creates a flex container laying children out top to bottom.
func (ui *UI) Column(parent Elem) Elem {
	return ui.Flex(parent, AxisY)
}

// Flex creates a flex container with the given main axis, centered cross
// alignment and no cross stretch.
func (ui *UI) Flex(parent Elem, mainAxis Axis) Elem {
	e := ui.CreateElem(parent)
	ui.arena.layout[e] = FlexLayout{MainAxis: mainAxis}
	return e
}

// Spacer creates an empty flexible leaf with the given weight.
func (ui *UI) Spacer(parent Elem, weight float64) Elem {
	e := ui.CreateElem(parent)
	ui.SetFlexWeight(e, weight)
	return e
}

// LayoutBuilder creates an element whose single child is built by build
// during layout, once the element's constraints are known.
func (ui *UI) LayoutBuilder(parent Elem, build BuildFunc, userdata any) Elem {
	e := ui.CreateElem(parent)
	ui.arena.layout[e] = BuilderLayout{Build: build, UserData: userdata}
	return e
}

// --- Component access ---

func (ui *UI) mustExist(e Elem, op string) {
	if !ui.arena.exists(e) {
		panic(fmt.Sprintf("neogui: structural: %s on element %d which does not exist (%d elements)",
			op, e, ui.arena.count))
	}
}

// Count returns the number of arena slots in use this frame, including the
// reserved slot 0. Identifiers below Count are valid.
func (ui *UI) Count() int {
	return ui.arena.count
}

// Capacity returns the arena's backing capacity.
func (ui *UI) Capacity() int {
	return ui.arena.capacity
}

// Parent returns e's parent, or NoElem for the root.
func (ui *UI) Parent(e Elem) Elem {
	ui.mustExist(e, "Parent")
	return ui.arena.links[e].parent
}

// FirstChild returns e's first child, or NoElem.
func (ui *UI) FirstChild(e Elem) Elem {
	ui.mustExist(e, "FirstChild")
	return ui.arena.children[e].first
}

// NextSibling returns the sibling created after e, or NoElem.
func (ui *UI) NextSibling(e Elem) Elem {
	ui.mustExist(e, "NextSibling")
	return ui.arena.links[e].nextSibling
}

// Children iterates over e's children in creation order.
func (ui *UI) Children(e Elem) iter.Seq[Elem] {
	ui.mustExist(e, "Children")
	return func(yield func(Elem) bool) {
		for c := ui.arena.children[e].first; c != NoElem; c = ui.arena.links[c].nextSibling {
			if !yield(c) {
				return
			}
		}
	}
}

// Size returns e's size. Before EndFrame this is the explicit size set with
// SetSize; afterwards it is the resolved size.
func (ui *UI) Size(e Elem) Vec2 {
	ui.mustExist(e, "Size")
	return ui.arena.size[e]
}

// SetSize assigns e's explicit size. Leaves keep it, clamped to their
// constraints; other kinds overwrite it during layout.
func (ui *UI) SetSize(e Elem, w, h float64) {
	ui.mustExist(e, "SetSize")
	ui.arena.size[e] = Vec2{w, h}
}

// Pos returns e's position relative to its parent's origin.
func (ui *UI) Pos(e Elem) Vec2 {
	ui.mustExist(e, "Pos")
	return ui.arena.pos[e]
}

// WorldPos returns e's absolute position as of the last EndFrame.
func (ui *UI) WorldPos(e Elem) Vec2 {
	ui.mustExist(e, "WorldPos")
	return ui.arena.worldPos[e]
}

// Rect returns e's absolute bounds as of the last EndFrame.
func (ui *UI) Rect(e Elem) Rect {
	ui.mustExist(e, "Rect")
	p, s := ui.arena.worldPos[e], ui.arena.size[e]
	return Rect{X: p.X, Y: p.Y, Width: s.X, Height: s.Y}
}

// Color returns e's fill color.
func (ui *UI) Color(e Elem) Color {
	ui.mustExist(e, "Color")
	return ui.arena.color[e]
}

// SetColor sets e's fill color. Elements with zero alpha are not painted.
func (ui *UI) SetColor(e Elem, c Color) {
	ui.mustExist(e, "SetColor")
	ui.arena.color[e] = c
}

// FlexWeight returns e's flex weight.
func (ui *UI) FlexWeight(e Elem) float64 {
	ui.mustExist(e, "FlexWeight")
	return ui.arena.flex[e]
}

// SetFlexWeight sets e's share of a flex parent's leftover main-axis space.
// Zero makes e inflexible. Panics if weight is negative or not finite.
func (ui *UI) SetFlexWeight(e Elem, weight float64) {
	ui.mustExist(e, "SetFlexWeight")
	if !(weight >= 0) || math.IsInf(weight, 1) {
		panic(fmt.Sprintf("neogui: flex weight %g on element %d must be non-negative and finite", weight, e))
	}
	ui.arena.flex[e] = weight
}

// Layout returns e's layout kind and arguments.
func (ui *UI) Layout(e Elem) Layout {
	ui.mustExist(e, "Layout")
	return ui.arena.layout[e]
}

// SetLayout replaces e's layout kind and arguments.
func (ui *UI) SetLayout(e Elem, l Layout) {
	ui.mustExist(e, "SetLayout")
	ui.arena.layout[e] = l
}

// SetCrossAxis sets the cross-axis alignment and stretch of a flex element.
func (ui *UI) SetCrossAxis(e Elem, align, stretch float64) {
	ui.mustExist(e, "SetCrossAxis")
	f, ok := ui.arena.layout[e].(FlexLayout)
	if !ok {
		panic(fmt.Sprintf("neogui: SetCrossAxis on non-flex element %d (%T)", e, ui.arena.layout[e]))
	}
	f.CrossAlign = align
	f.CrossStretch = stretch
	ui.arena.layout[e] = f
}
