package neogui

import "fmt"

const defaultArenaCapacity = 256

// treeLinks places an element among its siblings.
type treeLinks struct {
	parent      Elem
	nextSibling Elem
}

// childLinks gives O(1) append-as-last-child.
type childLinks struct {
	first Elem
	last  Elem
}

// column is one component store of the arena, indexed by Elem.
type column[T any] []T

func (c *column[T]) resize(n int) {
	grown := make(column[T], n)
	copy(grown, *c)
	*c = grown
}

func (c *column[T]) zero(n int) {
	clear((*c)[:n])
}

// componentStore is the lockstep interface every column satisfies.
type componentStore interface {
	resize(n int)
	zero(n int)
}

// arena is the structure-of-arrays storage for one frame's elements. Every
// column shares count and capacity; slot 0 is never a real element.
type arena struct {
	count    int
	capacity int

	links    column[treeLinks]
	children column[childLinks]
	size     column[Vec2]
	pos      column[Vec2]
	worldPos column[Vec2]
	color    column[Color]
	flex     column[float64]
	layout   column[Layout]
}

func (a *arena) stores() [8]componentStore {
	return [8]componentStore{
		&a.links, &a.children,
		&a.size, &a.pos, &a.worldPos,
		&a.color, &a.flex, &a.layout,
	}
}

// grow doubles capacity and zero-extends every column in one step.
func (a *arena) grow() {
	n := a.capacity * 2
	if n == 0 {
		n = defaultArenaCapacity
	}
	for _, s := range a.stores() {
		s.resize(n)
	}
	a.capacity = n
}

// reset discards the frame's elements but keeps the backing storage.
func (a *arena) reset() {
	if a.count == 0 {
		return
	}
	for _, s := range a.stores() {
		s.zero(a.count)
	}
	a.count = 0
}

// create appends a new element as the last child of parent, or creates the
// root when parent is NoElem. The new element starts with the leaf layout.
func (a *arena) create(parent Elem) Elem {
	if a.count >= a.capacity {
		a.grow()
	}

	var e Elem
	if parent == NoElem {
		if a.count != 0 {
			panic("neogui: structural: root requested twice in one frame")
		}
		e = RootElem
		a.count = 2 // slot 0 stays empty
	} else {
		if int(parent) >= a.count {
			panic(fmt.Sprintf("neogui: structural: parent %d does not exist (%d elements)", parent, a.count))
		}
		e = Elem(a.count)
		a.count++
		a.links[e].parent = parent
		cl := &a.children[parent]
		if cl.last != NoElem {
			a.links[cl.last].nextSibling = e
		} else {
			cl.first = e
		}
		cl.last = e
	}
	a.layout[e] = LeafLayout{}
	return e
}

// exists reports whether e names an element created this frame.
func (a *arena) exists(e Elem) bool {
	return e != NoElem && int(e) < a.count
}

// resolveWorld converts local positions to world positions. Creation order
// is a topological order (every parent precedes its children), so a single
// ascending sweep sees each parent's world position before its children.
func (a *arena) resolveWorld() {
	if a.count <= int(RootElem) {
		return
	}
	a.worldPos[RootElem] = a.pos[RootElem]
	for e := int(RootElem) + 1; e < a.count; e++ {
		a.worldPos[e] = a.worldPos[a.links[e].parent].Add(a.pos[e])
	}
}
