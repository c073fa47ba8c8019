package ecs

import (
	"errors"
	"testing"

	"github.com/arcengine/arc"

	"github.com/yohamta/donburi"
)

func TestLogMessage_PublishesEvent(t *testing.T) {
	w := NewWorld()

	var received []LogEvent
	LogEventType.Subscribe(w.Donburi(), func(_ donburi.World, e LogEvent) {
		received = append(received, e)
	})

	w.LogMessage(arc.LogWarn, "low health", "player.go", "OnUpdate", 42)
	w.LogMessage(arc.LogInfo, "spawned", "enemy.go", "OnCreate", 7)

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("expected no events before ProcessEvents, got %d", len(received))
	}
	w.ProcessEvents()

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Level != arc.LogWarn || e0.Message != "low health" || e0.Line != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.File != "player.go" || e0.Member != "OnUpdate" {
		t.Errorf("event 0 call site: %q %q", e0.File, e0.Member)
	}
	if received[1].Message != "spawned" {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestEmitCollision_PublishesEvent(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity("a")
	b := w.CreateEntity("b")

	var received []CollisionEvent
	CollisionEventType.Subscribe(w.Donburi(), func(_ donburi.World, e CollisionEvent) {
		received = append(received, e)
	})

	w.EmitCollision(a, b, arc.NewVector2(1, 2))
	w.EndCollision(a, b)
	w.Step(0)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if !received[0].Enter || received[0].A != a || received[0].B != b {
		t.Errorf("enter event: %+v", received[0])
	}
	if !received[0].RelativeVelocity.Equals(arc.NewVector2(1, 2)) {
		t.Errorf("relative velocity = %v", received[0].RelativeVelocity)
	}
	if received[1].Enter {
		t.Errorf("exit event has Enter set: %+v", received[1])
	}
}

type contactScript struct {
	arc.Entity
	entered []arc.CollisionData
	exited  []arc.CollisionData
}

func (s *contactScript) OnCreate()                               {}
func (s *contactScript) OnUpdate(float32)                        {}
func (s *contactScript) OnCollisionEnter(other arc.CollisionData) { s.entered = append(s.entered, other) }
func (s *contactScript) OnCollisionExit(other arc.CollisionData)  { s.exited = append(s.exited, other) }

func TestAttach_DispatchesBothSides(t *testing.T) {
	w := NewWorld()
	reg := arc.NewScriptRegistry()
	if err := reg.Register("Contact", func() arc.Script { return &contactScript{} }); err != nil {
		t.Fatal(err)
	}
	rt := arc.NewRuntime(w, reg)
	Attach(w, rt)

	a := w.CreateEntity("a")
	b := w.CreateEntity("b")
	sa, err := rt.Instantiate("Contact", a)
	if err != nil {
		t.Fatal(err)
	}
	sb, err := rt.Instantiate("Contact", b)
	if err != nil {
		t.Fatal(err)
	}

	w.EmitCollision(a, b, arc.NewVector2(3, 0))
	w.ProcessEvents()

	ca, cb := sa.(*contactScript), sb.(*contactScript)
	if len(ca.entered) != 1 || len(cb.entered) != 1 {
		t.Fatalf("entered: a=%d b=%d, want 1 each", len(ca.entered), len(cb.entered))
	}
	if ca.entered[0].EntityID != b || cb.entered[0].EntityID != a {
		t.Errorf("wrong partners: a saw %d, b saw %d", ca.entered[0].EntityID, cb.entered[0].EntityID)
	}
	if !cb.entered[0].RelativeVelocity.Equals(arc.NewVector2(-3, 0)) {
		t.Errorf("b relative velocity = %v, want (-3, 0)", cb.entered[0].RelativeVelocity)
	}
	if got := ca.entered[0].Entity().Tag(); got != "b" {
		t.Errorf("partner tag = %q, want b", got)
	}

	w.EndCollision(a, b)
	w.ProcessEvents()
	if len(ca.exited) != 1 || len(cb.exited) != 1 {
		t.Errorf("exited: a=%d b=%d, want 1 each", len(ca.exited), len(cb.exited))
	}
}

// farewell records the tag it reads during OnDestroy.
type farewell struct {
	arc.Entity
	seen *string
}

func (f *farewell) OnCreate()        {}
func (f *farewell) OnUpdate(float32) {}
func (f *farewell) OnDestroy()       { *f.seen = f.Tag() }

func TestDestroy_RemovesScriptAndEntity(t *testing.T) {
	w := NewWorld()
	reg := arc.NewScriptRegistry()
	var seen string
	if err := reg.Register("Farewell", func() arc.Script { return &farewell{seen: &seen} }); err != nil {
		t.Fatal(err)
	}
	rt := arc.NewRuntime(w, reg)
	id := w.CreateEntity("doomed")
	if _, err := rt.Instantiate("Farewell", id); err != nil {
		t.Fatal(err)
	}

	if err := Destroy(w, rt, id); err != nil {
		t.Fatal(err)
	}
	if seen != "doomed" {
		t.Errorf("OnDestroy read tag %q, want doomed", seen)
	}
	if _, ok := rt.Script(id); ok || rt.Len() != 0 {
		t.Error("script still attached after Destroy")
	}
	if w.Valid(id) {
		t.Error("entity still valid after Destroy")
	}
	if err := Destroy(w, rt, id); !errors.Is(err, arc.ErrInvalidEntity) {
		t.Errorf("second Destroy err = %v", err)
	}
}
