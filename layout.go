package neogui

import "fmt"

// Kind names a layout algorithm.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindPadding
	KindAlign
	KindSizedBox
	KindFlex
	KindBuilder
)

var kindNames = [...]string{"leaf", "padding", "align", "sized box", "flex", "builder"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Layout is an element's layout kind together with its arguments. The set of
// implementations is closed: the concrete type is the tag, so a kind can
// never be paired with another kind's arguments.
type Layout interface {
	Kind() Kind
	sealed()
}

// LeafLayout keeps the size assigned with SetSize, clamped to the incoming
// constraints. Every element starts out as a leaf.
type LeafLayout struct{}

// PaddingLayout insets its single child.
type PaddingLayout struct {
	Insets EdgeInsets
}

// AlignLayout fills the space it is offered and places its single child
// inside it. Factor ranges from -1 (start) through 0 (center) to 1 (end).
type AlignLayout struct {
	Factor Vec2
}

// SizedBoxLayout forces its child to Size on every axis where Size is
// positive. Non-positive components leave that axis unconstrained.
type SizedBoxLayout struct {
	Size Vec2
}

// FlexLayout lays children end to end along MainAxis. Children with a
// positive flex weight share the main-axis space left over by the others.
// CrossAlign positions children on the cross axis like AlignLayout.Factor;
// a CrossStretch in (0, 1] forces every child's cross size to that fraction
// of a bounded incoming cross maximum.
type FlexLayout struct {
	MainAxis     Axis
	CrossAlign   float64
	CrossStretch float64
}

// BuildFunc creates exactly one child of parent, using the constraints the
// parent received, and returns it.
type BuildFunc func(ui *UI, parent Elem, c Constraints, userdata any) Elem

// BuilderLayout defers building its subtree until layout time, when the
// constraints it will be given are known.
type BuilderLayout struct {
	Build    BuildFunc
	UserData any
}

func (LeafLayout) Kind() Kind     { return KindLeaf }
func (PaddingLayout) Kind() Kind  { return KindPadding }
func (AlignLayout) Kind() Kind    { return KindAlign }
func (SizedBoxLayout) Kind() Kind { return KindSizedBox }
func (FlexLayout) Kind() Kind     { return KindFlex }
func (BuilderLayout) Kind() Kind  { return KindBuilder }

func (LeafLayout) sealed()     {}
func (PaddingLayout) sealed()  {}
func (AlignLayout) sealed()    {}
func (SizedBoxLayout) sealed() {}
func (FlexLayout) sealed()     {}
func (BuilderLayout) sealed()  {}

// layout resolves e's size under c and positions its direct children.
//
// Column slices are re-read after every recursive call: a builder below e
// may create elements and grow the arena.
func (ui *UI) layout(e Elem, c Constraints) {
	switch l := ui.arena.layout[e].(type) {
	case LeafLayout:
		ui.layoutLeaf(e, c)
	case PaddingLayout:
		ui.layoutPadding(e, l, c)
	case AlignLayout:
		ui.layoutAlign(e, l, c)
	case SizedBoxLayout:
		ui.layoutSizedBox(e, l, c)
	case FlexLayout:
		ui.layoutFlex(e, l, c)
	case BuilderLayout:
		ui.layoutBuilder(e, l, c)
	default:
		panic(fmt.Sprintf("neogui: dispatch: element %d has no layout kind", e))
	}
}

// singleChild returns e's only child, or NoElem. Panics if e has more than one.
func (ui *UI) singleChild(e Elem) Elem {
	cl := ui.arena.children[e]
	if cl.first != cl.last {
		panic(fmt.Sprintf("neogui: structural: %s element %d has more than one child",
			ui.arena.layout[e].Kind(), e))
	}
	return cl.first
}

func (ui *UI) layoutLeaf(e Elem, c Constraints) {
	a := &ui.arena
	size := a.size[e]
	// A flexible leaf with nothing on its parent's main axis takes its
	// allotment instead of collapsing to zero.
	if a.flex[e] > 0 {
		if f, ok := a.layout[a.links[e].parent].(FlexLayout); ok {
			if size.Get(f.MainAxis) == 0 && c.Bounded(f.MainAxis) {
				size.Set(f.MainAxis, c.Max.Get(f.MainAxis))
			}
		}
	}
	a.size[e] = c.Constrain(size)
}

func (ui *UI) layoutPadding(e Elem, p PaddingLayout, c Constraints) {
	a := &ui.arena
	var childSize Vec2
	if child := ui.singleChild(e); child != NoElem {
		ui.layout(child, c.deflate(p.Insets))
		childSize = a.size[child]
		a.pos[child] = Vec2{p.Insets.Left, p.Insets.Top}
	}
	a.size[e] = c.Constrain(Vec2{
		childSize.X + p.Insets.Along(AxisX),
		childSize.Y + p.Insets.Along(AxisY),
	})
}

func (ui *UI) layoutAlign(e Elem, l AlignLayout, c Constraints) {
	a := &ui.arena
	child := ui.singleChild(e)
	if child == NoElem {
		a.size[e] = c.Grow(a.size[e])
		return
	}

	ui.layout(child, Unbounded())
	size := c.Grow(a.size[e])
	a.size[e] = size

	childSize := a.size[child]
	a.pos[child] = Vec2{
		alignOffset(size.X-childSize.X, l.Factor.X),
		alignOffset(size.Y-childSize.Y, l.Factor.Y),
	}
}

// alignOffset maps a factor in [-1, 1] onto [0, free].
func alignOffset(free, factor float64) float64 {
	return free * (factor + 1) * 0.5
}

func (ui *UI) layoutSizedBox(e Elem, s SizedBoxLayout, c Constraints) {
	a := &ui.arena
	child := ui.singleChild(e)
	if child == NoElem {
		a.size[e] = c.Constrain(s.Size)
		return
	}

	nc := c
	for _, ax := range [...]Axis{AxisX, AxisY} {
		if v := s.Size.Get(ax); v > 0 {
			nc.Min.Set(ax, v)
			nc.Max.Set(ax, v)
		}
	}
	ui.layout(child, nc)
	a.size[e] = a.size[child]
}

func (ui *UI) layoutBuilder(e Elem, b BuilderLayout, c Constraints) {
	if ui.arena.children[e].first != NoElem {
		panic(fmt.Sprintf("neogui: builder contract: element %d already has children before build", e))
	}
	if b.Build == nil {
		panic(fmt.Sprintf("neogui: builder contract: element %d has no build function", e))
	}

	child := b.Build(ui, e, c, b.UserData)

	a := &ui.arena
	cl := a.children[e]
	if child == NoElem || cl.first != child || cl.last != child {
		panic(fmt.Sprintf("neogui: builder contract: build for element %d returned %d, want its single new child", e, child))
	}
	ui.layout(child, c)
	a.size[e] = a.size[child]
}
