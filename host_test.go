package arc

import "fmt"

// fakeHost is an in-memory InternalCalls used by the package tests.
type fakeHost struct {
	components map[EntityID]map[ComponentKind]bool
	tags       map[EntityID]string
	transforms map[EntityID]Transform
	sprites    map[EntityID]SpriteRendererData
	bodies     map[EntityID]Rigidbody2DData
	audio      map[EntityID]AudioSourceData
	playing    map[EntityID]bool

	commands []Rigidbody2DCommand
	audioOps []AudioOp
	logs     []fakeLog

	keys    map[KeyCode]bool
	buttons map[MouseButton]bool
	mouse   Vector2
}

type fakeLog struct {
	level                 LogLevel
	message, file, member string
	line                  int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		components: make(map[EntityID]map[ComponentKind]bool),
		tags:       make(map[EntityID]string),
		transforms: make(map[EntityID]Transform),
		sprites:    make(map[EntityID]SpriteRendererData),
		bodies:     make(map[EntityID]Rigidbody2DData),
		audio:      make(map[EntityID]AudioSourceData),
		playing:    make(map[EntityID]bool),
		keys:       make(map[KeyCode]bool),
		buttons:    make(map[MouseButton]bool),
	}
}

// spawn registers id with a tag and a default transform.
func (h *fakeHost) spawn(id EntityID, tag string) Entity {
	h.components[id] = map[ComponentKind]bool{KindTag: true, KindTransform: true}
	h.tags[id] = tag
	h.transforms[id] = DefaultTransform()
	return NewEntity(id, h)
}

func (h *fakeHost) AddComponent(id EntityID, kind ComponentKind) error {
	if !kind.Valid() {
		return fmt.Errorf("add %v: %w", kind, ErrUnknownComponent)
	}
	set, ok := h.components[id]
	if !ok {
		return fmt.Errorf("entity %d: %w", id, ErrInvalidEntity)
	}
	if set[kind] {
		return fmt.Errorf("add %v: %w", kind, ErrComponentExists)
	}
	set[kind] = true
	switch kind {
	case KindSpriteRenderer:
		h.sprites[id] = DefaultSpriteRenderer()
	case KindRigidbody2D:
		h.bodies[id] = DefaultRigidbody2D()
	case KindAudioSource:
		h.audio[id] = DefaultAudioSource()
	}
	return nil
}

func (h *fakeHost) HasComponent(id EntityID, kind ComponentKind) bool {
	return h.components[id][kind]
}

func (h *fakeHost) LogMessage(level LogLevel, message, file, member string, line int) {
	h.logs = append(h.logs, fakeLog{level, message, file, member, line})
}

func (h *fakeHost) IsKeyPressed(key KeyCode) bool                { return h.keys[key] }
func (h *fakeHost) IsMouseButtonPressed(button MouseButton) bool { return h.buttons[button] }
func (h *fakeHost) MousePosition() Vector2                       { return h.mouse }

func (h *fakeHost) Tag(id EntityID) string         { return h.tags[id] }
func (h *fakeHost) SetTag(id EntityID, tag string) { h.tags[id] = tag }

func (h *fakeHost) Transform(id EntityID) Transform       { return h.transforms[id] }
func (h *fakeHost) SetTransform(id EntityID, t Transform) { h.transforms[id] = t }

func (h *fakeHost) SpriteRenderer(id EntityID) SpriteRendererData { return h.sprites[id] }
func (h *fakeHost) SetSpriteRenderer(id EntityID, s SpriteRendererData) {
	h.sprites[id] = s
}

func (h *fakeHost) Rigidbody2D(id EntityID) Rigidbody2DData { return h.bodies[id] }
func (h *fakeHost) SetRigidbody2D(id EntityID, rb Rigidbody2DData) {
	h.bodies[id] = rb
}
func (h *fakeHost) Rigidbody2DCommand(_ EntityID, cmd Rigidbody2DCommand) {
	h.commands = append(h.commands, cmd)
}

func (h *fakeHost) AudioSource(id EntityID) AudioSourceData { return h.audio[id] }
func (h *fakeHost) SetAudioSource(id EntityID, a AudioSourceData) {
	h.audio[id] = a
}
func (h *fakeHost) AudioSourceCommand(id EntityID, op AudioOp) {
	h.audioOps = append(h.audioOps, op)
	h.playing[id] = op == AudioPlay || op == AudioUnPause
}
func (h *fakeHost) AudioSourcePlaying(id EntityID) bool { return h.playing[id] }

var _ InternalCalls = (*fakeHost)(nil)
