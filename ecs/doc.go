// Package ecs provides ECS adapters for neogui.
//
// The primary adapter is [NewDonburiPainter], which turns every rectangle a
// frame paints into a typed [FillEvent] published to a [Donburi] world.
// Subscribe to [FillEventType] in your ECS systems to receive them.
//
// Usage:
//
//	ui.SetPainter(ecs.NewDonburiPainter(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
