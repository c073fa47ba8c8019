package ecs

import (
	"github.com/arcengine/arc"

	"github.com/yohamta/donburi"
)

// Step advances the world by dt seconds and then processes queued events.
//
// Bodies are integrated with explicit Euler: queued commands are applied,
// dynamic bodies accumulate force and gravity into velocity, drag damps
// velocity, and velocity moves the Transform translation (X, Y) and Z
// rotation. Static and sleeping bodies do not move. There is no collision
// detection; contacts are reported with EmitCollision.
func (w *World) Step(dt float32) {
	if dt > 0 {
		w.bodies.Each(w.world, func(entry *donburi.Entry) {
			w.integrate(bodyComponent.Get(entry), transformComponent.Get(entry), dt)
		})
	}
	w.ProcessEvents()
}

func (w *World) integrate(b *bodyData, t *arc.Transform, dt float32) {
	for _, cmd := range b.commands {
		applyCommand(b, t, cmd)
	}
	b.commands = b.commands[:0]
	defer func() {
		b.force = arc.Vector2Zero
		b.torque = 0
	}()

	if b.BodyType == arc.BodyStatic || !b.Awake {
		return
	}

	if b.BodyType == arc.BodyDynamic {
		invMass := inverseMass(b)
		acc := b.force.Scale(invMass).Add(w.gravity.Scale(b.GravityScale))
		b.Velocity = b.Velocity.Add(acc.Scale(dt))
		b.Velocity = b.Velocity.Scale(1 / (1 + dt*b.LinearDrag))
		b.AngularVelocity += b.torque * invMass * dt
		b.AngularVelocity *= 1 / (1 + dt*b.AngularDrag)
	}
	if b.FreezeRotation {
		b.AngularVelocity = 0
	}

	delta := b.Velocity.Scale(dt)
	t.Translation = t.Translation.Add(delta.Vector3(0))
	t.Rotation.SetZ(t.Rotation.Z() + b.AngularVelocity*dt)
}

func inverseMass(b *bodyData) float32 {
	if b.Mass <= 0 {
		return 1
	}
	return 1 / b.Mass
}

// cross2 is the z component of the 3D cross product of r and f.
func cross2(r, f arc.Vector2) float32 { return r.X()*f.Y() - r.Y()*f.X() }

func applyCommand(b *bodyData, t *arc.Transform, cmd arc.Rigidbody2DCommand) {
	center := t.Translation.XY()
	switch cmd.Op {
	case arc.OpApplyForce:
		b.force = b.force.Add(cmd.Vector)
		b.torque += cross2(cmd.Point.Sub(center), cmd.Vector)
		b.Awake = true
	case arc.OpApplyForceAtCenter:
		b.force = b.force.Add(cmd.Vector)
		b.Awake = true
	case arc.OpApplyLinearImpulse:
		if b.BodyType == arc.BodyDynamic {
			b.Velocity = b.Velocity.Add(cmd.Vector.Scale(inverseMass(b)))
			b.AngularVelocity += cross2(cmd.Point.Sub(center), cmd.Vector) * inverseMass(b)
		}
		b.Awake = true
	case arc.OpApplyLinearImpulseAtCenter:
		if b.BodyType == arc.BodyDynamic {
			b.Velocity = b.Velocity.Add(cmd.Vector.Scale(inverseMass(b)))
		}
		b.Awake = true
	case arc.OpApplyAngularImpulse:
		if b.BodyType == arc.BodyDynamic {
			b.AngularVelocity += cmd.Scalar * inverseMass(b)
		}
		b.Awake = true
	case arc.OpApplyTorque:
		b.torque += cmd.Scalar
		b.Awake = true
	case arc.OpMovePosition:
		t.Translation.SetX(cmd.Vector.X())
		t.Translation.SetY(cmd.Vector.Y())
	case arc.OpMoveRotation:
		t.Rotation.SetZ(cmd.Scalar)
	case arc.OpSleep:
		if b.AllowSleep {
			b.Awake = false
			b.Velocity = arc.Vector2Zero
			b.AngularVelocity = 0
		}
	case arc.OpWakeUp:
		b.Awake = true
	}
}
