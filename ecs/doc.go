// Package ecs mirrors sceneedit notifications into a [Donburi] world.
//
// Attach the sink with Editor.SetEventSink. Every scene edit queues a
// scene-changed event, selection edits add a selection-changed event naming
// the new node (zero ID when cleared), and camera moves queue camera-changed
// events carrying the new position:
//
//	editor.SetEventSink(ecs.NewDonburiSink(world, sceneedit.EventSelectionChanged))
//	ecs.EditorEventType.Subscribe(world, onSelect)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
