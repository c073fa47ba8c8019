package scripts

import "github.com/arcengine/arc"

// Enemy spins with Q and E. Its exported fields exercise every editable
// field type.
type Enemy struct {
	arc.Entity

	speed float32 `arc:"serialize" header:"Enemy Config"`

	Bool   bool `header:"Test"`
	Byte   uint8
	SByte  int8
	Short  int16
	UShort uint16
	Int    int
	UInt   uint32
	Long   int64
	ULong  uint64
	Char   rune
	String string
	Vec2   arc.Vector2
	Vec3   arc.Vector3
	Vec4   arc.Vector4
	Tint   arc.Color

	transform *arc.TransformComponent
}

// NewEnemy returns an Enemy with sample field values.
func NewEnemy() arc.Script {
	return &Enemy{
		speed:  20,
		Byte:   255,
		SByte:  127,
		Short:  -25600,
		UShort: 50600,
		Int:    -10,
		UInt:   5,
		Long:   -5000000000000000000,
		ULong:  5000000000000000000,
		Char:   'E',
		String: "Arc Engine",
		Vec2:   arc.NewVector2(2, 3),
		Vec3:   arc.NewVector3(2, 3, 4),
		Vec4:   arc.NewVector4(2, 3, 4, 1),
		Tint:   arc.ColorMagenta,
	}
}

func (e *Enemy) OnCreate() {
	e.transform = arc.GetComponent[arc.TransformComponent](e.Entity)
}

// OnUpdate rotates around Z by speed*ts radians while Q (counter-clockwise)
// or E (clockwise) is held.
func (e *Enemy) OnUpdate(ts float32) {
	if e.transform == nil {
		return
	}
	if turn := e.Input().Axis(arc.KeyE, arc.KeyQ); turn != 0 {
		e.transform.Rotate(arc.NewVector3(0, 0, turn*e.speed*ts))
	}
}
