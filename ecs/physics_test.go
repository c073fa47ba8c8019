package ecs

import (
	"testing"

	"github.com/arcengine/arc"
)

func newBody(t *testing.T, w *World, rb arc.Rigidbody2DData) arc.EntityID {
	t.Helper()
	id := w.CreateEntity("body")
	if err := w.AddComponent(id, arc.KindRigidbody2D); err != nil {
		t.Fatal(err)
	}
	w.SetRigidbody2D(id, rb)
	return id
}

func TestStep_VelocityMovesTranslation(t *testing.T) {
	w := NewWorld(WithGravity(arc.Vector2Zero))
	rb := arc.DefaultRigidbody2D()
	rb.Velocity = arc.NewVector2(2, -4)
	id := newBody(t, w, rb)

	w.Step(0.5)

	got := w.Transform(id).Translation
	if !got.ApproxEqual(arc.NewVector3(1, -2, 0)) {
		t.Errorf("translation = %v, want (1, -2, 0)", got)
	}
}

func TestStep_Gravity(t *testing.T) {
	w := NewWorld(WithGravity(arc.NewVector2(0, -10)))
	id := newBody(t, w, arc.DefaultRigidbody2D())

	w.Step(1)

	if got := w.Rigidbody2D(id).Velocity; !got.ApproxEqual(arc.NewVector2(0, -10)) {
		t.Errorf("velocity = %v, want (0, -10)", got)
	}
	if got := w.Transform(id).Translation.Y(); !arc.Approximately(got, -10) {
		t.Errorf("y = %v, want -10", got)
	}
}

func TestStep_BodyTypes(t *testing.T) {
	tests := []struct {
		name  string
		typ   arc.BodyType
		wantY float32
	}{
		{"static ignores velocity", arc.BodyStatic, 0},
		{"kinematic ignores gravity", arc.BodyKinematic, 1},
		{"dynamic falls", arc.BodyDynamic, -9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(WithGravity(arc.NewVector2(0, -10)))
			rb := arc.DefaultRigidbody2D()
			rb.BodyType = tt.typ
			rb.Velocity = arc.NewVector2(0, 1)
			id := newBody(t, w, rb)

			w.Step(1)

			if got := w.Transform(id).Translation.Y(); !arc.Approximately(got, tt.wantY) {
				t.Errorf("y = %v, want %v", got, tt.wantY)
			}
		})
	}
}

func TestStep_ForceIsClearedAfterStep(t *testing.T) {
	w := NewWorld(WithGravity(arc.Vector2Zero))
	rb := arc.DefaultRigidbody2D()
	rb.Mass = 2
	id := newBody(t, w, rb)

	w.Rigidbody2DCommand(id, arc.Rigidbody2DCommand{Op: arc.OpApplyForceAtCenter, Vector: arc.NewVector2(4, 0)})
	w.Step(1)
	if got := w.Rigidbody2D(id).Velocity; !got.ApproxEqual(arc.NewVector2(2, 0)) {
		t.Fatalf("velocity after force = %v, want (2, 0)", got)
	}

	w.Step(1)
	if got := w.Rigidbody2D(id).Velocity; !got.ApproxEqual(arc.NewVector2(2, 0)) {
		t.Errorf("velocity changed without force: %v", got)
	}
}

func TestStep_Commands(t *testing.T) {
	w := NewWorld(WithGravity(arc.Vector2Zero))
	id := newBody(t, w, arc.DefaultRigidbody2D())

	w.Rigidbody2DCommand(id, arc.Rigidbody2DCommand{Op: arc.OpApplyLinearImpulseAtCenter, Vector: arc.NewVector2(0, 3)})
	w.Step(0)
	if got := w.Rigidbody2D(id).Velocity; !got.ApproxEqual(arc.Vector2Zero) {
		t.Errorf("Step(0) should not apply commands, velocity = %v", got)
	}

	w.Step(1)
	if got := w.Rigidbody2D(id).Velocity; !got.ApproxEqual(arc.NewVector2(0, 3)) {
		t.Errorf("velocity after impulse = %v, want (0, 3)", got)
	}

	w.Rigidbody2DCommand(id, arc.Rigidbody2DCommand{Op: arc.OpMovePosition, Vector: arc.NewVector2(10, 10)})
	w.Rigidbody2DCommand(id, arc.Rigidbody2DCommand{Op: arc.OpMoveRotation, Scalar: 1})
	w.Rigidbody2DCommand(id, arc.Rigidbody2DCommand{Op: arc.OpSleep})
	w.Step(1)

	tr := w.Transform(id)
	if !tr.Translation.ApproxEqual(arc.NewVector3(10, 10, 0)) {
		t.Errorf("translation = %v, want (10, 10, 0)", tr.Translation)
	}
	if !arc.Approximately(tr.Rotation.Z(), 1) {
		t.Errorf("rotation z = %v, want 1", tr.Rotation.Z())
	}
	if w.Rigidbody2D(id).Awake {
		t.Error("body should be asleep")
	}

	w.Rigidbody2DCommand(id, arc.Rigidbody2DCommand{Op: arc.OpWakeUp})
	w.Step(1)
	if !w.Rigidbody2D(id).Awake {
		t.Error("body should be awake")
	}
}

func TestStep_FreezeRotation(t *testing.T) {
	w := NewWorld(WithGravity(arc.Vector2Zero))
	rb := arc.DefaultRigidbody2D()
	rb.FreezeRotation = true
	id := newBody(t, w, rb)

	w.Rigidbody2DCommand(id, arc.Rigidbody2DCommand{Op: arc.OpApplyTorque, Scalar: 5})
	w.Step(1)

	if got := w.Transform(id).Rotation.Z(); got != 0 {
		t.Errorf("rotation z = %v, want 0", got)
	}
}
