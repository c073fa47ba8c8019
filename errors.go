package arc

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a component index is outside 0..N-1.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrComponentExists is returned by the host when AddComponent targets an
	// entity that already carries the component.
	ErrComponentExists = errors.New("component already exists")
	// ErrUnknownComponent is returned for a ComponentKind the host does not know.
	ErrUnknownComponent = errors.New("unknown component kind")
	// ErrInvalidEntity is returned for ids that do not reference a live entity.
	ErrInvalidEntity = errors.New("invalid entity")
	// ErrUnknownKey is returned when a key or mouse button name is not recognized.
	ErrUnknownKey = errors.New("unknown key")
	// ErrUnknownScript is returned when no factory is registered for a script name.
	ErrUnknownScript = errors.New("unknown script")
	// ErrDuplicateScript is returned when a script name is registered twice or
	// an entity already has a script attached.
	ErrDuplicateScript = errors.New("duplicate script")
	// ErrNoHost is returned when an Entity is used before it is bound to a host.
	ErrNoHost = errors.New("entity is not bound to a host")
	// ErrUnknownField is returned by SetScriptField for a name that is not an
	// editable script field.
	ErrUnknownField = errors.New("unknown script field")
	// ErrFieldType is returned when a value cannot be assigned to a script field.
	ErrFieldType = errors.New("field type mismatch")
)

// indexError wraps ErrIndexOutOfRange with the offending type and index.
func indexError(typ string, i, n int) error {
	return fmt.Errorf("arc: %s index %d (valid 0..%d): %w", typ, i, n-1, ErrIndexOutOfRange)
}

// component returns s[i] or an index error.
func component(typ string, s []float32, i int) (float32, error) {
	if i < 0 || i >= len(s) {
		return 0, indexError(typ, i, len(s))
	}
	return s[i], nil
}

// setComponent assigns s[i] or returns an index error, leaving s unchanged.
func setComponent(typ string, s []float32, i int, val float32) error {
	if i < 0 || i >= len(s) {
		return indexError(typ, i, len(s))
	}
	s[i] = val
	return nil
}
