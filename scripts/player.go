package scripts

import "github.com/arcengine/arc"

// Player moves its rigidbody with WASD.
type Player struct {
	arc.Entity

	Speed float32 `range:"3,1000" tooltip:"Movement speed in units per second"`
	force arc.Vector2 `arc:"serialize"`

	transform *arc.TransformComponent
	body      *arc.Rigidbody2DComponent
}

// NewPlayer returns a Player with the default speed.
func NewPlayer() arc.Script {
	return &Player{Speed: 5, force: arc.NewVector2(0, 1)}
}

func (p *Player) OnCreate() {
	p.transform = arc.GetComponent[arc.TransformComponent](p.Entity)
	p.body = arc.GetComponent[arc.Rigidbody2DComponent](p.Entity)
	if p.body == nil {
		p.body = arc.AddComponent[arc.Rigidbody2DComponent](p.Entity)
	}
}

// OnUpdate sets the body velocity to the WASD direction scaled by Speed*ts.
func (p *Player) OnUpdate(ts float32) {
	if p.body == nil {
		return
	}
	in := p.Input()
	if in.IsKeyPressed(arc.KeySpace) {
		p.body.ApplyLinearImpulseAtCenter(p.force)
	}
	p.body.SetVelocity(in.Direction().Scale(p.Speed * ts))
}

func (p *Player) OnCollisionEnter(other arc.CollisionData) {
	p.Log().Info("player hit %q at %v", other.Entity().Tag(), other.RelativeVelocity)
}
