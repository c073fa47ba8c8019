package arc

import (
	"fmt"
	"strings"
)

// EntityID identifies an entity owned by the host. Zero is never a valid id.
type EntityID uint64

// NullEntity is the zero EntityID.
const NullEntity EntityID = 0

// ComponentKind is the stable tag that identifies a component type across
// the host boundary. Values are part of the boundary contract and must not
// be renumbered.
type ComponentKind uint8

const (
	KindTag            ComponentKind = iota + 1 // entity name
	KindTransform                               // translation, rotation, scale
	KindSpriteRenderer                          // tint and tiling
	KindRigidbody2D                             // 2D body state and commands
	KindAudioSource                             // playback configuration and state
)

var componentKindNames = [...]string{
	KindTag:            "Tag",
	KindTransform:      "Transform",
	KindSpriteRenderer: "SpriteRenderer",
	KindRigidbody2D:    "Rigidbody2D",
	KindAudioSource:    "AudioSource",
}

// ComponentKinds returns every known kind in tag order.
func ComponentKinds() []ComponentKind {
	return []ComponentKind{KindTag, KindTransform, KindSpriteRenderer, KindRigidbody2D, KindAudioSource}
}

// Valid reports whether k is a known kind.
func (k ComponentKind) Valid() bool {
	return k >= KindTag && k <= KindAudioSource
}

func (k ComponentKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ComponentKind(%d)", uint8(k))
	}
	return componentKindNames[k]
}

// ParseComponentKind resolves a kind by name, case-insensitively. Both
// "Transform" and "TransformComponent" are accepted.
func ParseComponentKind(name string) (ComponentKind, error) {
	key := strings.TrimSuffix(strings.ToLower(name), "component")
	for _, k := range ComponentKinds() {
		if strings.ToLower(componentKindNames[k]) == key {
			return k, nil
		}
	}
	return 0, fmt.Errorf("arc: parse component kind %q: %w", name, ErrUnknownComponent)
}

// --- Component payloads exchanged by value ---

// SpriteRendererData is the script-visible state of a sprite renderer.
type SpriteRendererData struct {
	Color        Color
	TilingFactor float32
}

// DefaultSpriteRenderer is a white, untiled sprite.
func DefaultSpriteRenderer() SpriteRendererData {
	return SpriteRendererData{Color: ColorWhite, TilingFactor: 1}
}

// BodyType selects how a 2D body takes part in the simulation.
type BodyType uint8

const (
	BodyStatic    BodyType = iota // never moves
	BodyKinematic                 // moves by velocity only, ignores forces
	BodyDynamic                   // fully simulated
)

// Rigidbody2DData is the script-visible state of a 2D rigidbody.
type Rigidbody2DData struct {
	BodyType        BodyType
	AutoMass        bool
	Mass            float32
	LinearDrag      float32
	AngularDrag     float32
	AllowSleep      bool
	Awake           bool
	Continuous      bool
	FreezeRotation  bool
	GravityScale    float32
	Velocity        Vector2
	AngularVelocity float32
}

// DefaultRigidbody2D matches the engine's defaults for a new body.
func DefaultRigidbody2D() Rigidbody2DData {
	return Rigidbody2DData{
		BodyType:     BodyDynamic,
		AutoMass:     true,
		Mass:         1,
		AngularDrag:  0.05,
		AllowSleep:   true,
		Awake:        true,
		GravityScale: 1,
	}
}

// Rigidbody2DOp names a rigidbody command.
type Rigidbody2DOp uint8

const (
	OpApplyForce Rigidbody2DOp = iota
	OpApplyForceAtCenter
	OpApplyLinearImpulse
	OpApplyLinearImpulseAtCenter
	OpApplyAngularImpulse
	OpApplyTorque
	OpMovePosition
	OpMoveRotation
	OpSleep
	OpWakeUp
)

// Rigidbody2DCommand is a one-shot request against a rigidbody. Vector holds
// the force, impulse or target position; Point the world-space application
// point; Scalar the angular quantity or target rotation.
type Rigidbody2DCommand struct {
	Op     Rigidbody2DOp
	Vector Vector2
	Point  Vector2
	Scalar float32
}

// AttenuationModel selects the distance falloff of a spatialized source.
type AttenuationModel uint8

const (
	AttenuationNone AttenuationModel = iota
	AttenuationInverse
	AttenuationLinear
	AttenuationExponential
)

// AudioSourceData is the script-visible configuration of an audio source.
type AudioSourceData struct {
	Volume           float32
	Pitch            float32
	PlayOnAwake      bool
	Looping          bool
	Spatialization   bool
	AttenuationModel AttenuationModel
	RollOff          float32
	MinGain          float32
	MaxGain          float32
	MinDistance      float32
	MaxDistance      float32
	ConeInnerAngle   float32
	ConeOuterAngle   float32
	ConeOuterGain    float32
	DopplerFactor    float32
}

// DefaultAudioSource matches the engine's defaults for a new source.
func DefaultAudioSource() AudioSourceData {
	return AudioSourceData{
		Volume:           1,
		Pitch:            1,
		PlayOnAwake:      true,
		AttenuationModel: AttenuationInverse,
		RollOff:          1,
		MaxGain:          1,
		MinDistance:      0.3,
		MaxDistance:      1000,
		ConeInnerAngle:   360,
		ConeOuterAngle:   360,
		DopplerFactor:    1,
	}
}

// AudioOp is a playback command.
type AudioOp uint8

const (
	AudioPlay AudioOp = iota
	AudioPause
	AudioUnPause
	AudioStop
)

// --- Boundary interfaces ---

// EntityCalls manages component membership.
type EntityCalls interface {
	// AddComponent attaches a default-initialized component. It returns an
	// error wrapping ErrComponentExists if the entity already has one.
	AddComponent(id EntityID, kind ComponentKind) error
	HasComponent(id EntityID, kind ComponentKind) bool
}

// LogCalls receives script log messages with their call site.
type LogCalls interface {
	LogMessage(level LogLevel, message, file, member string, line int)
}

// InputCalls exposes the host's input state for the current frame.
type InputCalls interface {
	IsKeyPressed(key KeyCode) bool
	IsMouseButtonPressed(button MouseButton) bool
	MousePosition() Vector2
}

type TagCalls interface {
	Tag(id EntityID) string
	SetTag(id EntityID, tag string)
}

type TransformCalls interface {
	Transform(id EntityID) Transform
	SetTransform(id EntityID, t Transform)
}

type SpriteRendererCalls interface {
	SpriteRenderer(id EntityID) SpriteRendererData
	SetSpriteRenderer(id EntityID, s SpriteRendererData)
}

type Rigidbody2DCalls interface {
	Rigidbody2D(id EntityID) Rigidbody2DData
	SetRigidbody2D(id EntityID, rb Rigidbody2DData)
	Rigidbody2DCommand(id EntityID, cmd Rigidbody2DCommand)
}

type AudioSourceCalls interface {
	AudioSource(id EntityID) AudioSourceData
	SetAudioSource(id EntityID, a AudioSourceData)
	AudioSourceCommand(id EntityID, op AudioOp)
	AudioSourcePlaying(id EntityID) bool
}

// InternalCalls is the complete surface a host engine implements for the
// scripting layer. Getters on an entity without the component return the
// zero value; setters and commands on it are ignored.
type InternalCalls interface {
	EntityCalls
	LogCalls
	InputCalls
	TagCalls
	TransformCalls
	SpriteRendererCalls
	Rigidbody2DCalls
	AudioSourceCalls
}
