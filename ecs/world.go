package ecs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arcengine/arc"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
	"go.uber.org/zap"
)

// DefaultGravity is the world gravity in units per second squared.
var DefaultGravity = arc.NewVector2(0, -9.8)

// World is an in-process host backed by a donburi.World. It implements
// arc.InternalCalls and is not safe for concurrent use.
type World struct {
	world   donburi.World
	logger  *zap.Logger
	gravity arc.Vector2

	nextID  arc.EntityID
	entries map[arc.EntityID]donburi.Entity
	order   []arc.EntityID

	keys     map[arc.KeyCode]bool
	buttons  [3]bool
	mousePos arc.Vector2

	bodies  *query.Query
	sprites *query.Query
}

var _ arc.InternalCalls = (*World)(nil)

// Option configures a World.
type Option func(*World)

// WithGravity sets the acceleration applied to dynamic bodies.
func WithGravity(g arc.Vector2) Option {
	return func(w *World) { w.gravity = g }
}

// WithLogger sets the logger for host diagnostics. The default is arc.Logger().
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		world:   donburi.NewWorld(),
		logger:  arc.Logger(),
		gravity: DefaultGravity,
		entries: make(map[arc.EntityID]donburi.Entity),
		keys:    make(map[arc.KeyCode]bool),
		bodies:  donburi.NewQuery(filter.Contains(bodyComponent, transformComponent)),
		sprites: donburi.NewQuery(filter.Contains(spriteComponent, transformComponent)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Donburi returns the underlying donburi world.
func (w *World) Donburi() donburi.World { return w.world }

// Gravity returns the world gravity.
func (w *World) Gravity() arc.Vector2 { return w.gravity }

// CreateEntity creates an entity with Tag and Transform components and
// returns its id. Ids start at 1 and are never reused.
func (w *World) CreateEntity(tag string) arc.EntityID {
	w.nextID++
	id := w.nextID
	e := w.world.Create(idComponent, tagComponent, transformComponent)
	entry := w.world.Entry(e)
	*idComponent.Get(entry) = idData{ID: id}
	*tagComponent.Get(entry) = tagData{Name: tag}
	*transformComponent.Get(entry) = arc.DefaultTransform()
	w.entries[id] = e
	w.order = append(w.order, id)
	w.logger.Debug("entity created", zap.Uint64("entity", uint64(id)), zap.String("tag", tag))
	return id
}

// DestroyEntity removes the entity and all its components. A script attached
// to id in a Runtime is not touched; use Destroy to remove both.
func (w *World) DestroyEntity(id arc.EntityID) error {
	e, ok := w.entries[id]
	if !ok || !w.world.Valid(e) {
		return fmt.Errorf("arc/ecs: destroy entity %d: %w", id, arc.ErrInvalidEntity)
	}
	w.world.Remove(e)
	delete(w.entries, id)
	if i := slices.Index(w.order, id); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	w.logger.Debug("entity destroyed", zap.Uint64("entity", uint64(id)))
	return nil
}

// Valid reports whether id refers to a live entity.
func (w *World) Valid(id arc.EntityID) bool {
	_, ok := w.entry(id)
	return ok
}

// Entities returns the live entity ids in creation order.
func (w *World) Entities() []arc.EntityID { return slices.Clone(w.order) }

// FindByTag returns the first live entity, in creation order, whose tag is
// tag.
func (w *World) FindByTag(tag string) (arc.EntityID, bool) {
	for _, id := range w.order {
		if w.Tag(id) == tag {
			return id, true
		}
	}
	return arc.NullEntity, false
}

func (w *World) entry(id arc.EntityID) (*donburi.Entry, bool) {
	e, ok := w.entries[id]
	if !ok || !w.world.Valid(e) {
		return nil, false
	}
	return w.world.Entry(e), true
}

// entryWith returns the entry for id if it has component c.
func (w *World) entryWith(id arc.EntityID, c donburi.IComponentType) (*donburi.Entry, bool) {
	entry, ok := w.entry(id)
	if !ok || !entry.HasComponent(c) {
		return nil, false
	}
	return entry, true
}

// --- arc.EntityCalls ---

func (w *World) AddComponent(id arc.EntityID, kind arc.ComponentKind) error {
	c, ok := componentType(kind)
	if !ok {
		return fmt.Errorf("arc/ecs: add component %s: %w", kind, arc.ErrUnknownComponent)
	}
	entry, ok := w.entry(id)
	if !ok {
		return fmt.Errorf("arc/ecs: add %s to entity %d: %w", kind, id, arc.ErrInvalidEntity)
	}
	if entry.HasComponent(c) {
		return fmt.Errorf("arc/ecs: add %s to entity %d: %w", kind, id, arc.ErrComponentExists)
	}
	addDefault(entry, kind)
	return nil
}

func (w *World) HasComponent(id arc.EntityID, kind arc.ComponentKind) bool {
	c, ok := componentType(kind)
	if !ok {
		return false
	}
	_, ok = w.entryWith(id, c)
	return ok
}

// RemoveComponent detaches kind from id. Tag and Transform cannot be removed.
func (w *World) RemoveComponent(id arc.EntityID, kind arc.ComponentKind) error {
	if kind == arc.KindTag || kind == arc.KindTransform {
		return fmt.Errorf("arc/ecs: remove %s from entity %d: required component", kind, id)
	}
	c, ok := componentType(kind)
	if !ok {
		return fmt.Errorf("arc/ecs: remove component %s: %w", kind, arc.ErrUnknownComponent)
	}
	entry, ok := w.entryWith(id, c)
	if !ok {
		return fmt.Errorf("arc/ecs: remove %s from entity %d: %w", kind, id, arc.ErrInvalidEntity)
	}
	entry.RemoveComponent(c)
	return nil
}

// --- arc.LogCalls ---

func (w *World) LogMessage(level arc.LogLevel, message, file, member string, line int) {
	LogEventType.Publish(w.world, LogEvent{
		Level:   level,
		Message: message,
		File:    file,
		Member:  member,
		Line:    line,
	})
}

// --- arc.TagCalls ---

func (w *World) Tag(id arc.EntityID) string {
	entry, ok := w.entryWith(id, tagComponent)
	if !ok {
		return ""
	}
	return tagComponent.Get(entry).Name
}

func (w *World) SetTag(id arc.EntityID, tag string) {
	if entry, ok := w.entryWith(id, tagComponent); ok {
		tagComponent.Get(entry).Name = tag
	}
}

// --- arc.TransformCalls ---

func (w *World) Transform(id arc.EntityID) arc.Transform {
	entry, ok := w.entryWith(id, transformComponent)
	if !ok {
		return arc.Transform{}
	}
	return *transformComponent.Get(entry)
}

func (w *World) SetTransform(id arc.EntityID, t arc.Transform) {
	if entry, ok := w.entryWith(id, transformComponent); ok {
		*transformComponent.Get(entry) = t
	}
}

// --- arc.SpriteRendererCalls ---

func (w *World) SpriteRenderer(id arc.EntityID) arc.SpriteRendererData {
	entry, ok := w.entryWith(id, spriteComponent)
	if !ok {
		return arc.SpriteRendererData{}
	}
	return *spriteComponent.Get(entry)
}

func (w *World) SetSpriteRenderer(id arc.EntityID, s arc.SpriteRendererData) {
	if entry, ok := w.entryWith(id, spriteComponent); ok {
		*spriteComponent.Get(entry) = s
	}
}

// Sprite is a drawable snapshot of an entity with a SpriteRenderer.
type Sprite struct {
	ID        arc.EntityID
	Transform arc.Transform
	Renderer  arc.SpriteRendererData
}

// Sprites returns every entity with a SpriteRenderer, ordered by
// translation Z and then by id.
func (w *World) Sprites() []Sprite {
	var out []Sprite
	w.sprites.Each(w.world, func(entry *donburi.Entry) {
		out = append(out, Sprite{
			ID:        idComponent.Get(entry).ID,
			Transform: *transformComponent.Get(entry),
			Renderer:  *spriteComponent.Get(entry),
		})
	})
	slices.SortFunc(out, func(a, b Sprite) int {
		if c := cmp.Compare(a.Transform.Translation.Z(), b.Transform.Translation.Z()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// --- arc.Rigidbody2DCalls ---

func (w *World) Rigidbody2D(id arc.EntityID) arc.Rigidbody2DData {
	entry, ok := w.entryWith(id, bodyComponent)
	if !ok {
		return arc.Rigidbody2DData{}
	}
	return bodyComponent.Get(entry).Rigidbody2DData
}

func (w *World) SetRigidbody2D(id arc.EntityID, rb arc.Rigidbody2DData) {
	if entry, ok := w.entryWith(id, bodyComponent); ok {
		bodyComponent.Get(entry).Rigidbody2DData = rb
	}
}

func (w *World) Rigidbody2DCommand(id arc.EntityID, cmd arc.Rigidbody2DCommand) {
	if entry, ok := w.entryWith(id, bodyComponent); ok {
		b := bodyComponent.Get(entry)
		b.commands = append(b.commands, cmd)
	}
}

// --- arc.AudioSourceCalls ---

func (w *World) AudioSource(id arc.EntityID) arc.AudioSourceData {
	entry, ok := w.entryWith(id, audioComponent)
	if !ok {
		return arc.AudioSourceData{}
	}
	return audioComponent.Get(entry).AudioSourceData
}

func (w *World) SetAudioSource(id arc.EntityID, a arc.AudioSourceData) {
	if entry, ok := w.entryWith(id, audioComponent); ok {
		audioComponent.Get(entry).AudioSourceData = a
	}
}

// AudioSourceCommand tracks playback state only; the world produces no sound.
func (w *World) AudioSourceCommand(id arc.EntityID, op arc.AudioOp) {
	entry, ok := w.entryWith(id, audioComponent)
	if !ok {
		return
	}
	a := audioComponent.Get(entry)
	switch op {
	case arc.AudioPlay:
		a.playing, a.paused = true, false
	case arc.AudioPause:
		a.paused = a.playing
	case arc.AudioUnPause:
		a.paused = false
	case arc.AudioStop:
		a.playing, a.paused = false, false
	}
}

func (w *World) AudioSourcePlaying(id arc.EntityID) bool {
	entry, ok := w.entryWith(id, audioComponent)
	if !ok {
		return false
	}
	a := audioComponent.Get(entry)
	return a.playing && !a.paused
}
