package arc

// CollisionData describes a contact delivered to collision handlers.
type CollisionData struct {
	// EntityID is the other entity in the contact.
	EntityID EntityID
	// RelativeVelocity is the velocity of the other body relative to this one.
	RelativeVelocity Vector2

	calls InternalCalls
}

// Entity returns a handle to the other entity, bound to the same host as the
// receiving script.
func (c CollisionData) Entity() Entity { return NewEntity(c.EntityID, c.calls) }
