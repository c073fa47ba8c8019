package scripts

import (
	"github.com/arcengine/arc"

	"github.com/tanema/gween/ease"
)

// Camera pans with WASD and eases back to the origin while the left mouse
// button is pressed. MoveTo starts an eased move that overrides manual
// panning until it finishes.
type Camera struct {
	arc.Entity

	Speed float32 `range:"3,1000"`
	// EaseSeconds is the duration of a MoveTo.
	EaseSeconds float32 `range:"0,10" tooltip:"Duration of eased moves"`

	transform *arc.TransformComponent
	tween     *arc.Vector3Tween
}

// NewCamera returns a Camera with the default speed.
func NewCamera() arc.Script {
	return &Camera{Speed: 5, EaseSeconds: 0.5}
}

func (c *Camera) OnCreate() {
	c.transform = arc.GetComponent[arc.TransformComponent](c.Entity)
}

// MoveTo eases the camera from its current position to target.
func (c *Camera) MoveTo(target arc.Vector3) {
	if c.transform == nil {
		return
	}
	c.tween = arc.TweenVector3(c.transform.Translation(), target, c.EaseSeconds, ease.OutCubic)
}

// Moving reports whether an eased move is in progress.
func (c *Camera) Moving() bool { return c.tween != nil }

func (c *Camera) OnUpdate(ts float32) {
	if c.transform == nil {
		return
	}
	if c.tween != nil {
		pos, done := c.tween.Update(ts)
		c.transform.SetTranslation(pos)
		if done {
			c.tween = nil
		}
		return
	}
	in := c.Input()
	if in.IsMouseButtonPressed(arc.MouseButtonLeft) && !c.transform.Translation().Equals(arc.Vector3Zero) {
		c.MoveTo(arc.Vector3Zero)
		return
	}
	dir := in.Direction()
	if dir.Equals(arc.Vector2Zero) {
		return
	}
	c.transform.Translate(dir.Scale(c.Speed * ts).Vector3(0))
}
