package ecs

import (
	"github.com/arcengine/arc"

	"github.com/yohamta/donburi"
)

// idData links a donburi entity back to its stable arc id.
type idData struct {
	ID arc.EntityID
}

type tagData struct {
	Name string
}

// bodyData is the rigidbody state plus forces queued since the last step.
type bodyData struct {
	arc.Rigidbody2DData

	force    arc.Vector2
	torque   float32
	commands []arc.Rigidbody2DCommand
}

type audioData struct {
	arc.AudioSourceData

	playing bool
	paused  bool
}

// Donburi component types, one per arc.ComponentKind plus the id link.
var (
	idComponent        = donburi.NewComponentType[idData]()
	tagComponent       = donburi.NewComponentType[tagData]()
	transformComponent = donburi.NewComponentType[arc.Transform]()
	spriteComponent    = donburi.NewComponentType[arc.SpriteRendererData]()
	bodyComponent      = donburi.NewComponentType[bodyData]()
	audioComponent     = donburi.NewComponentType[audioData]()
)

func componentType(kind arc.ComponentKind) (donburi.IComponentType, bool) {
	switch kind {
	case arc.KindTag:
		return tagComponent, true
	case arc.KindTransform:
		return transformComponent, true
	case arc.KindSpriteRenderer:
		return spriteComponent, true
	case arc.KindRigidbody2D:
		return bodyComponent, true
	case arc.KindAudioSource:
		return audioComponent, true
	}
	return nil, false
}

// addDefault attaches kind to entry initialized to the engine defaults.
func addDefault(entry *donburi.Entry, kind arc.ComponentKind) {
	switch kind {
	case arc.KindTag:
		donburi.Add(entry, tagComponent, &tagData{})
	case arc.KindTransform:
		t := arc.DefaultTransform()
		donburi.Add(entry, transformComponent, &t)
	case arc.KindSpriteRenderer:
		s := arc.DefaultSpriteRenderer()
		donburi.Add(entry, spriteComponent, &s)
	case arc.KindRigidbody2D:
		donburi.Add(entry, bodyComponent, &bodyData{Rigidbody2DData: arc.DefaultRigidbody2D()})
	case arc.KindAudioSource:
		donburi.Add(entry, audioComponent, &audioData{AudioSourceData: arc.DefaultAudioSource()})
	}
}
