// Package neogui is an immediate-mode box-constraint layout engine for
// [Ebitengine].
//
// The whole element tree is rebuilt every frame. Elements live in a flat
// arena addressed by [Elem] identifiers that are only valid until the next
// [UI.BeginFrame]. Layout is a single recursive pass: constraints flow down,
// sizes flow up and parents place their children. World positions are then
// resolved in one ascending sweep and every visible element is painted as a
// filled rectangle.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and frame
// loop for you:
//
//	ui := neogui.NewUI()
//	neogui.Run(ui, func(ui *neogui.UI) {
//		root := ui.Center(neogui.NoElem)
//		ui.SetColor(root, neogui.Color{R: 32, G: 32, B: 48, A: 255})
//		box := ui.SizedBox(root, 250, 150)
//		ui.SetColor(ui.CreateElem(box), neogui.Color{R: 255, A: 255})
//	}, neogui.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// For full control, drive the frame lifecycle yourself with any [Painter]:
//
//	p := neogui.NewImagePainter(640, 480)
//	ui.SetPainter(p)
//	ui.BeginFrame()
//	// ... create elements ...
//	ui.EndFrame(640, 480)
//	p.SavePNG("frame.png")
//
// # Layout kinds
//
// Leaves keep their explicit size clamped to the constraints and never lay
// out children of their own. [UI.Padding]
// insets a single child, [UI.Align] and [UI.Center] place one child inside
// the space offered, [UI.SizedBox] forces a child to a fixed size, [UI.Row]
// and [UI.Column] distribute leftover space among flexible children by
// weight and [UI.LayoutBuilder] builds its child during layout once the
// constraints are known.
//
// # Input
//
// Keyboard state is double-buffered: [UI.FlipInput] swaps the buffers and
// [UI.PreviousInput] holds the snapshot from the frame before, so presses
// and releases can be detected by comparison.
//
// Painting can also be routed into a [Donburi] world via the adapter in
// neogui/ecs. The responsive example animates its breakpoint with [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package neogui
