// Package sceneedit is the interaction engine of a 3D scene editor viewport.
//
// It owns the editable node tree, the viewport camera and the controllers
// that turn pointer, wheel and keyboard input into camera motion and node
// selection. Rendering is left to a host; see the ebitenview sub-package for
// an [Ebitengine] window and browser host.
//
// # Quick start
//
//	ed := sceneedit.New(sceneedit.DefaultConfig())
//	ed.Scene().Add(sceneedit.NewMesh("cube", sceneedit.CubeBox(1)))
//	if err := ed.Mount(surface, lock, scheduler); err != nil {
//		return err
//	}
//	defer ed.Dismount()
//
// A host forwards raw input with [Editor.HandlePointerDown],
// [Editor.HandlePointerMove], [Editor.HandlePointerUp], [Editor.HandleWheel],
// [Editor.HandleKeyDown] and [Editor.HandleKeyUp], and drives frames through
// a [FrameScheduler].
//
// # Scene graph
//
// Every element is a [Node] with a local position, rotation and scale.
// Nodes form a tree rooted at [Scene.Root]. Structural changes made through
// [Scene.AddChild] and [Scene.RemoveNode] notify subscribers registered with
// [Scene.Subscribe] exactly once; UI panels such as [Outline] rebuild from
// the tree on every notification.
//
// # Camera controls
//
// Left click picks. Clicking the same spot again cycles through every node
// under the pointer, nearest first. Right drag (after a 7 pixel dead zone)
// captures the pointer and turns the camera. Wheel-button drag pans and the
// wheel zooms. WASD, the arrow keys, Space/E and Q fly the camera while held.
// F focuses the selection, Backspace or Delete removes it, and 1/2/3 switch
// the gizmo between translate, rotate and scale.
//
// # Testing
//
// [ManualScheduler] advances frames explicitly, and the Inject* methods
// queue synthetic input consumed one event per frame. [LoadScript] replays a
// JSON script of clicks, drags and key presses.
//
// [Ebitengine]: https://ebitengine.org
package sceneedit
