package arc

// Component is implemented by every component wrapper. A wrapper holds no
// state of its own; each property read or write is a host call.
type Component interface {
	// Kind returns the wrapper's boundary tag. It does not depend on the
	// receiver's state.
	Kind() ComponentKind
	// Entity returns the entity the component belongs to.
	Entity() Entity
}

type componentBase struct {
	entity Entity
}

func (c *componentBase) Entity() Entity { return c.entity }
func (c *componentBase) bind(e Entity)  { c.entity = e }

func (c *componentBase) id() EntityID         { return c.entity.id }
func (c *componentBase) calls() InternalCalls { return c.entity.calls }

// TagComponent names an entity.
type TagComponent struct{ componentBase }

func (*TagComponent) Kind() ComponentKind { return KindTag }

func (c *TagComponent) Tag() string       { return c.calls().Tag(c.id()) }
func (c *TagComponent) SetTag(tag string) { c.calls().SetTag(c.id(), tag) }

// TransformComponent is an entity's placement in the world.
type TransformComponent struct{ componentBase }

func (*TransformComponent) Kind() ComponentKind { return KindTransform }

func (c *TransformComponent) Transform() Transform     { return c.calls().Transform(c.id()) }
func (c *TransformComponent) SetTransform(t Transform) { c.calls().SetTransform(c.id(), t) }

func (c *TransformComponent) update(fn func(*Transform)) {
	t := c.Transform()
	fn(&t)
	c.SetTransform(t)
}

func (c *TransformComponent) Translation() Vector3 { return c.Transform().Translation }
func (c *TransformComponent) SetTranslation(v Vector3) {
	c.update(func(t *Transform) { t.Translation = v })
}

// Rotation returns the Euler rotation in radians.
func (c *TransformComponent) Rotation() Vector3 { return c.Transform().Rotation }
func (c *TransformComponent) SetRotation(v Vector3) {
	c.update(func(t *Transform) { t.Rotation = v })
}

func (c *TransformComponent) Scale() Vector3 { return c.Transform().Scale }
func (c *TransformComponent) SetScale(v Vector3) {
	c.update(func(t *Transform) { t.Scale = v })
}

// Translate moves the entity by delta.
func (c *TransformComponent) Translate(delta Vector3) {
	c.update(func(t *Transform) { t.Translation = t.Translation.Add(delta) })
}

// Rotate adds delta radians to the Euler rotation.
func (c *TransformComponent) Rotate(delta Vector3) {
	c.update(func(t *Transform) { t.Rotation = t.Rotation.Add(delta) })
}

// SpriteRendererComponent tints and tiles an entity's sprite.
type SpriteRendererComponent struct{ componentBase }

func (*SpriteRendererComponent) Kind() ComponentKind { return KindSpriteRenderer }

func (c *SpriteRendererComponent) data() SpriteRendererData {
	return c.calls().SpriteRenderer(c.id())
}

func (c *SpriteRendererComponent) update(fn func(*SpriteRendererData)) {
	d := c.data()
	fn(&d)
	c.calls().SetSpriteRenderer(c.id(), d)
}

func (c *SpriteRendererComponent) Color() Color { return c.data().Color }
func (c *SpriteRendererComponent) SetColor(col Color) {
	c.update(func(d *SpriteRendererData) { d.Color = col })
}

func (c *SpriteRendererComponent) TilingFactor() float32 { return c.data().TilingFactor }
func (c *SpriteRendererComponent) SetTilingFactor(f float32) {
	c.update(func(d *SpriteRendererData) { d.TilingFactor = f })
}

// Rigidbody2DComponent exposes a 2D physics body. Forces and impulses are
// queued on the host and applied on its next step.
type Rigidbody2DComponent struct{ componentBase }

func (*Rigidbody2DComponent) Kind() ComponentKind { return KindRigidbody2D }

// Data returns a snapshot of every body property.
func (c *Rigidbody2DComponent) Data() Rigidbody2DData { return c.calls().Rigidbody2D(c.id()) }

func (c *Rigidbody2DComponent) update(fn func(*Rigidbody2DData)) {
	d := c.Data()
	fn(&d)
	c.calls().SetRigidbody2D(c.id(), d)
}

func (c *Rigidbody2DComponent) command(cmd Rigidbody2DCommand) {
	c.calls().Rigidbody2DCommand(c.id(), cmd)
}

func (c *Rigidbody2DComponent) BodyType() BodyType { return c.Data().BodyType }
func (c *Rigidbody2DComponent) SetBodyType(t BodyType) {
	c.update(func(d *Rigidbody2DData) { d.BodyType = t })
}

func (c *Rigidbody2DComponent) AutoMass() bool { return c.Data().AutoMass }
func (c *Rigidbody2DComponent) SetAutoMass(v bool) {
	c.update(func(d *Rigidbody2DData) { d.AutoMass = v })
}

func (c *Rigidbody2DComponent) Mass() float32 { return c.Data().Mass }
func (c *Rigidbody2DComponent) SetMass(v float32) {
	c.update(func(d *Rigidbody2DData) { d.Mass = v })
}

func (c *Rigidbody2DComponent) LinearDrag() float32 { return c.Data().LinearDrag }
func (c *Rigidbody2DComponent) SetLinearDrag(v float32) {
	c.update(func(d *Rigidbody2DData) { d.LinearDrag = v })
}

func (c *Rigidbody2DComponent) AngularDrag() float32 { return c.Data().AngularDrag }
func (c *Rigidbody2DComponent) SetAngularDrag(v float32) {
	c.update(func(d *Rigidbody2DData) { d.AngularDrag = v })
}

func (c *Rigidbody2DComponent) AllowSleep() bool { return c.Data().AllowSleep }
func (c *Rigidbody2DComponent) SetAllowSleep(v bool) {
	c.update(func(d *Rigidbody2DData) { d.AllowSleep = v })
}

func (c *Rigidbody2DComponent) Awake() bool { return c.Data().Awake }
func (c *Rigidbody2DComponent) SetAwake(v bool) {
	c.update(func(d *Rigidbody2DData) { d.Awake = v })
}

func (c *Rigidbody2DComponent) Continuous() bool { return c.Data().Continuous }
func (c *Rigidbody2DComponent) SetContinuous(v bool) {
	c.update(func(d *Rigidbody2DData) { d.Continuous = v })
}

func (c *Rigidbody2DComponent) FreezeRotation() bool { return c.Data().FreezeRotation }
func (c *Rigidbody2DComponent) SetFreezeRotation(v bool) {
	c.update(func(d *Rigidbody2DData) { d.FreezeRotation = v })
}

func (c *Rigidbody2DComponent) GravityScale() float32 { return c.Data().GravityScale }
func (c *Rigidbody2DComponent) SetGravityScale(v float32) {
	c.update(func(d *Rigidbody2DData) { d.GravityScale = v })
}

func (c *Rigidbody2DComponent) Velocity() Vector2 { return c.Data().Velocity }
func (c *Rigidbody2DComponent) SetVelocity(v Vector2) {
	c.update(func(d *Rigidbody2DData) { d.Velocity = v })
}

func (c *Rigidbody2DComponent) AngularVelocity() float32 { return c.Data().AngularVelocity }
func (c *Rigidbody2DComponent) SetAngularVelocity(v float32) {
	c.update(func(d *Rigidbody2DData) { d.AngularVelocity = v })
}

// ApplyForce applies force at a world-space point.
func (c *Rigidbody2DComponent) ApplyForce(force, point Vector2) {
	c.command(Rigidbody2DCommand{Op: OpApplyForce, Vector: force, Point: point})
}

func (c *Rigidbody2DComponent) ApplyForceAtCenter(force Vector2) {
	c.command(Rigidbody2DCommand{Op: OpApplyForceAtCenter, Vector: force})
}

// ApplyLinearImpulse applies impulse at a world-space point.
func (c *Rigidbody2DComponent) ApplyLinearImpulse(impulse, point Vector2) {
	c.command(Rigidbody2DCommand{Op: OpApplyLinearImpulse, Vector: impulse, Point: point})
}

func (c *Rigidbody2DComponent) ApplyLinearImpulseAtCenter(impulse Vector2) {
	c.command(Rigidbody2DCommand{Op: OpApplyLinearImpulseAtCenter, Vector: impulse})
}

func (c *Rigidbody2DComponent) ApplyAngularImpulse(impulse float32) {
	c.command(Rigidbody2DCommand{Op: OpApplyAngularImpulse, Scalar: impulse})
}

func (c *Rigidbody2DComponent) ApplyTorque(torque float32) {
	c.command(Rigidbody2DCommand{Op: OpApplyTorque, Scalar: torque})
}

// MovePosition teleports a kinematic body to position on the next step.
func (c *Rigidbody2DComponent) MovePosition(position Vector2) {
	c.command(Rigidbody2DCommand{Op: OpMovePosition, Vector: position})
}

// MoveRotation sets the body's Z rotation in radians on the next step.
func (c *Rigidbody2DComponent) MoveRotation(angle float32) {
	c.command(Rigidbody2DCommand{Op: OpMoveRotation, Scalar: angle})
}

func (c *Rigidbody2DComponent) IsAwake() bool    { return c.Data().Awake }
func (c *Rigidbody2DComponent) IsSleeping() bool { return !c.Data().Awake }
func (c *Rigidbody2DComponent) Sleep()           { c.command(Rigidbody2DCommand{Op: OpSleep}) }
func (c *Rigidbody2DComponent) WakeUp()          { c.command(Rigidbody2DCommand{Op: OpWakeUp}) }

// AudioSourceComponent configures and controls an entity's audio playback.
type AudioSourceComponent struct{ componentBase }

func (*AudioSourceComponent) Kind() ComponentKind { return KindAudioSource }

// Data returns a snapshot of the source configuration.
func (c *AudioSourceComponent) Data() AudioSourceData { return c.calls().AudioSource(c.id()) }

func (c *AudioSourceComponent) update(fn func(*AudioSourceData)) {
	d := c.Data()
	fn(&d)
	c.calls().SetAudioSource(c.id(), d)
}

func (c *AudioSourceComponent) Volume() float32 { return c.Data().Volume }
func (c *AudioSourceComponent) SetVolume(v float32) {
	c.update(func(d *AudioSourceData) { d.Volume = v })
}

func (c *AudioSourceComponent) Pitch() float32 { return c.Data().Pitch }
func (c *AudioSourceComponent) SetPitch(v float32) {
	c.update(func(d *AudioSourceData) { d.Pitch = v })
}

func (c *AudioSourceComponent) PlayOnAwake() bool { return c.Data().PlayOnAwake }
func (c *AudioSourceComponent) SetPlayOnAwake(v bool) {
	c.update(func(d *AudioSourceData) { d.PlayOnAwake = v })
}

func (c *AudioSourceComponent) Looping() bool { return c.Data().Looping }
func (c *AudioSourceComponent) SetLooping(v bool) {
	c.update(func(d *AudioSourceData) { d.Looping = v })
}

func (c *AudioSourceComponent) Spatialization() bool { return c.Data().Spatialization }
func (c *AudioSourceComponent) SetSpatialization(v bool) {
	c.update(func(d *AudioSourceData) { d.Spatialization = v })
}

func (c *AudioSourceComponent) AttenuationModel() AttenuationModel {
	return c.Data().AttenuationModel
}
func (c *AudioSourceComponent) SetAttenuationModel(m AttenuationModel) {
	c.update(func(d *AudioSourceData) { d.AttenuationModel = m })
}

func (c *AudioSourceComponent) RollOff() float32 { return c.Data().RollOff }
func (c *AudioSourceComponent) SetRollOff(v float32) {
	c.update(func(d *AudioSourceData) { d.RollOff = v })
}

func (c *AudioSourceComponent) MinGain() float32 { return c.Data().MinGain }
func (c *AudioSourceComponent) SetMinGain(v float32) {
	c.update(func(d *AudioSourceData) { d.MinGain = v })
}

func (c *AudioSourceComponent) MaxGain() float32 { return c.Data().MaxGain }
func (c *AudioSourceComponent) SetMaxGain(v float32) {
	c.update(func(d *AudioSourceData) { d.MaxGain = v })
}

func (c *AudioSourceComponent) MinDistance() float32 { return c.Data().MinDistance }
func (c *AudioSourceComponent) SetMinDistance(v float32) {
	c.update(func(d *AudioSourceData) { d.MinDistance = v })
}

func (c *AudioSourceComponent) MaxDistance() float32 { return c.Data().MaxDistance }
func (c *AudioSourceComponent) SetMaxDistance(v float32) {
	c.update(func(d *AudioSourceData) { d.MaxDistance = v })
}

func (c *AudioSourceComponent) ConeInnerAngle() float32 { return c.Data().ConeInnerAngle }
func (c *AudioSourceComponent) SetConeInnerAngle(v float32) {
	c.update(func(d *AudioSourceData) { d.ConeInnerAngle = v })
}

func (c *AudioSourceComponent) ConeOuterAngle() float32 { return c.Data().ConeOuterAngle }
func (c *AudioSourceComponent) SetConeOuterAngle(v float32) {
	c.update(func(d *AudioSourceData) { d.ConeOuterAngle = v })
}

func (c *AudioSourceComponent) ConeOuterGain() float32 { return c.Data().ConeOuterGain }
func (c *AudioSourceComponent) SetConeOuterGain(v float32) {
	c.update(func(d *AudioSourceData) { d.ConeOuterGain = v })
}

// SetCone sets the inner and outer cone angles (degrees) and the gain
// outside the outer cone in one call.
func (c *AudioSourceComponent) SetCone(inner, outer, outerGain float32) {
	c.update(func(d *AudioSourceData) {
		d.ConeInnerAngle = inner
		d.ConeOuterAngle = outer
		d.ConeOuterGain = outerGain
	})
}

func (c *AudioSourceComponent) DopplerFactor() float32 { return c.Data().DopplerFactor }
func (c *AudioSourceComponent) SetDopplerFactor(v float32) {
	c.update(func(d *AudioSourceData) { d.DopplerFactor = v })
}

func (c *AudioSourceComponent) Play()    { c.calls().AudioSourceCommand(c.id(), AudioPlay) }
func (c *AudioSourceComponent) Pause()   { c.calls().AudioSourceCommand(c.id(), AudioPause) }
func (c *AudioSourceComponent) UnPause() { c.calls().AudioSourceCommand(c.id(), AudioUnPause) }
func (c *AudioSourceComponent) Stop()    { c.calls().AudioSourceCommand(c.id(), AudioStop) }

func (c *AudioSourceComponent) IsPlaying() bool { return c.calls().AudioSourcePlaying(c.id()) }
