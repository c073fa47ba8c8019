package scripts

import "github.com/arcengine/arc"

// Box moves its transform with WASD and logs the mouse position every
// frame.
type Box struct {
	arc.Entity

	Speed float32

	transform *arc.TransformComponent
}

// NewBox returns a Box with the default speed.
func NewBox() arc.Script { return &Box{Speed: 5} }

func (b *Box) OnCreate() {
	b.Log().Info("Created entity with id %d", b.ID())
	b.transform = arc.GetComponent[arc.TransformComponent](b.Entity)
}

func (b *Box) OnUpdate(ts float32) {
	in := b.Input()
	pos := in.MousePosition()
	b.Log().Trace("MousePos: %v, %v", pos.X(), pos.Y())

	if b.transform == nil {
		return
	}
	t := b.transform.Transform()
	step := in.Direction().Scale(b.Speed * ts)
	t.Translation = t.Translation.Add(step.Vector3(0))
	b.transform.SetTransform(t)
}

func (b *Box) OnDestroy() {
	b.Log().Info("Destroyed entity with id %d", b.ID())
}
