package arc

import (
	"errors"

	"go.uber.org/zap"
)

// Entity is a handle to an object owned by the host: a numeric id plus the
// internal-call surface used to reach its components. Entities are values;
// copies refer to the same host object.
//
// Scripts embed Entity and are bound by the Runtime before OnCreate runs.
type Entity struct {
	id    EntityID
	calls InternalCalls
}

// NewEntity returns a handle to id on the given host.
func NewEntity(id EntityID, calls InternalCalls) Entity {
	return Entity{id: id, calls: calls}
}

// ID returns the host identifier.
func (e Entity) ID() EntityID { return e.id }

// Valid reports whether the handle is bound to a host and a non-null id.
func (e Entity) Valid() bool { return e.id != NullEntity && e.calls != nil }

// Calls returns the host surface the entity is bound to, or nil.
func (e Entity) Calls() InternalCalls { return e.calls }

// Input returns the host's input facade.
func (e Entity) Input() Input {
	if e.calls == nil {
		return Input{}
	}
	return NewInput(e.calls)
}

// Log returns a logger that forwards to the host.
func (e Entity) Log() Log {
	if e.calls == nil {
		return Log{}
	}
	return NewLog(e.calls)
}

// Tag returns the entity's name, or "" if it has no TagComponent.
func (e Entity) Tag() string {
	if !e.Valid() || !e.calls.HasComponent(e.id, KindTag) {
		return ""
	}
	return e.calls.Tag(e.id)
}

func (e *Entity) bindEntity(id EntityID, calls InternalCalls) {
	e.id = id
	e.calls = calls
}

// componentPtr is satisfied by pointers to the component wrappers defined in
// this package. Its Kind method must not depend on the receiver's state.
type componentPtr[C any] interface {
	*C
	Component
	bind(Entity)
}

func kindOf[C any, P componentPtr[C]]() ComponentKind {
	var zero C
	return P(&zero).Kind()
}

func newComponent[C any, P componentPtr[C]](e Entity) P {
	p := P(new(C))
	p.bind(e)
	return p
}

// HasComponent reports whether e carries a component of type C.
func HasComponent[C any, P componentPtr[C]](e Entity) bool {
	if !e.Valid() {
		return false
	}
	return e.calls.HasComponent(e.id, kindOf[C, P]())
}

// AddComponent attaches a component of type C to e and returns its wrapper.
// If e already has one, a warning is logged and the existing component is
// returned. It returns nil if e is not bound to a host or the host rejects
// the request.
func AddComponent[C any, P componentPtr[C]](e Entity) P {
	kind := kindOf[C, P]()
	if !e.Valid() {
		Logger().Error("add component on unbound entity",
			zap.Uint64("entity", uint64(e.id)),
			zap.Stringer("component", kind),
			zap.Error(ErrNoHost))
		return nil
	}
	if err := e.calls.AddComponent(e.id, kind); err != nil {
		if !errors.Is(err, ErrComponentExists) {
			Logger().Error("add component failed",
				zap.Uint64("entity", uint64(e.id)),
				zap.Stringer("component", kind),
				zap.Error(err))
			return nil
		}
		Logger().Warn("component already exists, returning existing component",
			zap.Uint64("entity", uint64(e.id)),
			zap.Stringer("component", kind))
	}
	return newComponent[C, P](e)
}

// GetComponent returns the wrapper for e's component of type C, or nil if e
// does not have one.
func GetComponent[C any, P componentPtr[C]](e Entity) P {
	if !HasComponent[C, P](e) {
		return nil
	}
	return newComponent[C, P](e)
}
