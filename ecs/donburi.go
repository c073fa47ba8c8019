package ecs

import (
	"github.com/arcengine/arc"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LogEvent is a script log message received through LogMessage.
type LogEvent struct {
	Level   arc.LogLevel
	Message string
	File    string
	Member  string
	Line    int
}

// CollisionEvent is a contact between two entities. RelativeVelocity is the
// velocity of B relative to A.
type CollisionEvent struct {
	A, B             arc.EntityID
	RelativeVelocity arc.Vector2
	Enter            bool
}

// LogEventType is the Donburi event type for script log messages.
// Subscribe to it to display or collect logs; events are delivered by
// World.ProcessEvents.
var LogEventType = events.NewEventType[LogEvent]()

// CollisionEventType is the Donburi event type for contacts published with
// World.EmitCollision and World.EndCollision.
var CollisionEventType = events.NewEventType[CollisionEvent]()

// Attach delivers collision events on w to the scripts in rt. Each side of a
// contact receives the other entity, with the relative velocity negated for
// B.
func Attach(w *World, rt *arc.Runtime) {
	CollisionEventType.Subscribe(w.world, func(_ donburi.World, e CollisionEvent) {
		rt.DispatchCollision(e.A, arc.CollisionData{EntityID: e.B, RelativeVelocity: e.RelativeVelocity}, e.Enter)
		rt.DispatchCollision(e.B, arc.CollisionData{EntityID: e.A, RelativeVelocity: e.RelativeVelocity.Negate()}, e.Enter)
	})
}

// Destroy removes the script attached to id in rt, running its OnDestroy
// while the entity's components are still readable, then destroys the
// entity in w.
func Destroy(w *World, rt *arc.Runtime, id arc.EntityID) error {
	rt.Destroy(id)
	return w.DestroyEntity(id)
}

// EmitCollision queues the start of a contact between a and b.
func (w *World) EmitCollision(a, b arc.EntityID, relativeVelocity arc.Vector2) {
	CollisionEventType.Publish(w.world, CollisionEvent{A: a, B: b, RelativeVelocity: relativeVelocity, Enter: true})
}

// EndCollision queues the end of a contact between a and b.
func (w *World) EndCollision(a, b arc.EntityID) {
	CollisionEventType.Publish(w.world, CollisionEvent{A: a, B: b})
}

// ProcessEvents delivers queued log and collision events to subscribers.
// Step calls it after integrating bodies.
func (w *World) ProcessEvents() {
	LogEventType.ProcessEvents(w.world)
	CollisionEventType.ProcessEvents(w.world)
}
