package ecs

import (
	"github.com/phanxgames/sceneedit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EditorEventType carries sceneedit notifications through a donburi world.
// A scene-changed event precedes every selection-changed event raised by the
// same edit. Camera events arrive once per frame while the camera moves.
var EditorEventType = events.NewEventType[sceneedit.EditorEvent]()

type donburiSink struct {
	world donburi.World
	only  map[sceneedit.EditorEventType]bool
}

// NewDonburiSink returns an EventSink that queues editor events on world.
// Systems see them on the next EditorEventType.ProcessEvents call, not while
// the editor is still handling input. When types are given, only those kinds
// are queued, e.g. to keep per-frame camera events out of the world.
func NewDonburiSink(world donburi.World, types ...sceneedit.EditorEventType) sceneedit.EventSink {
	s := &donburiSink{world: world}
	if len(types) > 0 {
		s.only = make(map[sceneedit.EditorEventType]bool, len(types))
		for _, t := range types {
			s.only[t] = true
		}
	}
	return s
}

func (s *donburiSink) EmitEvent(event sceneedit.EditorEvent) {
	if s.only != nil && !s.only[event.Type] {
		return
	}
	EditorEventType.Publish(s.world, event)
}
