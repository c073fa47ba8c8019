package arc

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Script is gameplay code attached to an entity. Implementations embed
// Entity so the Runtime can bind them before OnCreate.
//
//	type Mover struct {
//		arc.Entity
//		Speed float32 `range:"0,20"`
//	}
type Script interface {
	OnCreate()
	OnUpdate(ts float32)
}

// Destroyer is implemented by scripts that release state when their entity
// is destroyed.
type Destroyer interface {
	OnDestroy()
}

// CollisionEnterHandler receives the start of a contact.
type CollisionEnterHandler interface {
	OnCollisionEnter(other CollisionData)
}

// CollisionExitHandler receives the end of a contact.
type CollisionExitHandler interface {
	OnCollisionExit(other CollisionData)
}

// entityBinder is satisfied by any pointer to a struct embedding Entity.
type entityBinder interface {
	bindEntity(id EntityID, calls InternalCalls)
}

// ScriptFactory returns a fresh, unbound script instance.
type ScriptFactory func() Script

// ScriptRegistry maps script names to factories.
type ScriptRegistry struct {
	factories map[string]ScriptFactory
}

// NewScriptRegistry returns an empty registry.
func NewScriptRegistry() *ScriptRegistry {
	return &ScriptRegistry{factories: make(map[string]ScriptFactory)}
}

// Register adds a factory under name. Registering a name twice is an error.
func (r *ScriptRegistry) Register(name string, factory ScriptFactory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("arc: register script %q: empty name or nil factory", name)
	}
	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("arc: register script %q: %w", name, ErrDuplicateScript)
	}
	r.factories[name] = factory
	return nil
}

// Names returns the registered names in sorted order.
func (r *ScriptRegistry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New creates an unbound instance of the named script.
func (r *ScriptRegistry) New(name string) (Script, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("arc: new script %q: %w", name, ErrUnknownScript)
	}
	return factory(), nil
}

type scriptInstance struct {
	id     EntityID
	name   string
	script Script
}

// Runtime owns the live script instances of one host. Each entity carries at
// most one script. All methods must be called from the host's update
// goroutine.
type Runtime struct {
	calls     InternalCalls
	registry  *ScriptRegistry
	instances []scriptInstance
}

// NewRuntime returns a runtime that binds scripts to calls and creates them
// from registry.
func NewRuntime(calls InternalCalls, registry *ScriptRegistry) *Runtime {
	if registry == nil {
		registry = NewScriptRegistry()
	}
	return &Runtime{calls: calls, registry: registry}
}

// Registry returns the registry scripts are created from.
func (r *Runtime) Registry() *ScriptRegistry { return r.registry }

func (r *Runtime) indexOf(id EntityID) int {
	return slices.IndexFunc(r.instances, func(in scriptInstance) bool { return in.id == id })
}

// Instantiate creates the named script, binds it to entity id and runs its
// OnCreate. A panic in OnCreate is recovered and returned as an error, and
// the script is not attached.
func (r *Runtime) Instantiate(name string, id EntityID) (Script, error) {
	if id == NullEntity {
		return nil, fmt.Errorf("arc: instantiate %q: %w", name, ErrInvalidEntity)
	}
	if r.calls == nil {
		return nil, fmt.Errorf("arc: instantiate %q: %w", name, ErrNoHost)
	}
	if r.indexOf(id) >= 0 {
		return nil, fmt.Errorf("arc: instantiate %q on entity %d: %w", name, id, ErrDuplicateScript)
	}
	s, err := r.registry.New(name)
	if err != nil {
		return nil, err
	}
	if b, ok := s.(entityBinder); ok {
		b.bindEntity(id, r.calls)
	}
	if err := r.call(id, name, "OnCreate", s.OnCreate); err != nil {
		return nil, err
	}
	r.instances = append(r.instances, scriptInstance{id: id, name: name, script: s})
	Logger().Debug("script instantiated", zap.String("script", name), zap.Uint64("entity", uint64(id)))
	return s, nil
}

// Update runs OnUpdate on every script in instantiation order. Scripts
// instantiated or destroyed during the pass take effect on the next call.
func (r *Runtime) Update(ts float32) {
	for _, in := range slices.Clone(r.instances) {
		if r.indexOf(in.id) < 0 {
			continue
		}
		_ = r.call(in.id, in.name, "OnUpdate", func() { in.script.OnUpdate(ts) })
	}
}

// Destroy runs OnDestroy on the entity's script, if any, and detaches it.
// It reports whether a script was attached.
func (r *Runtime) Destroy(id EntityID) bool {
	i := r.indexOf(id)
	if i < 0 {
		return false
	}
	in := r.instances[i]
	r.instances = slices.Delete(r.instances, i, i+1)
	if d, ok := in.script.(Destroyer); ok {
		_ = r.call(in.id, in.name, "OnDestroy", d.OnDestroy)
	}
	return true
}

// DestroyAll destroys every script in reverse instantiation order.
func (r *Runtime) DestroyAll() {
	for len(r.instances) > 0 {
		r.Destroy(r.instances[len(r.instances)-1].id)
	}
}

// DispatchCollision delivers a contact to the script on entity id. other
// describes the entity it touched. enter selects OnCollisionEnter or
// OnCollisionExit; scripts without the handler are skipped.
func (r *Runtime) DispatchCollision(id EntityID, other CollisionData, enter bool) {
	i := r.indexOf(id)
	if i < 0 {
		return
	}
	in := r.instances[i]
	other.calls = r.calls
	if enter {
		if h, ok := in.script.(CollisionEnterHandler); ok {
			_ = r.call(in.id, in.name, "OnCollisionEnter", func() { h.OnCollisionEnter(other) })
		}
		return
	}
	if h, ok := in.script.(CollisionExitHandler); ok {
		_ = r.call(in.id, in.name, "OnCollisionExit", func() { h.OnCollisionExit(other) })
	}
}

// Script returns the script attached to id.
func (r *Runtime) Script(id EntityID) (Script, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return r.instances[i].script, true
}

// Scripts returns the live scripts in instantiation order.
func (r *Runtime) Scripts() []Script {
	out := make([]Script, len(r.instances))
	for i, in := range r.instances {
		out[i] = in.script
	}
	return out
}

// Len returns the number of live scripts.
func (r *Runtime) Len() int { return len(r.instances) }

// call runs a script callback, converting a panic into a logged error so one
// faulty script does not stop the frame.
func (r *Runtime) call(id EntityID, name, method string, fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("arc: %s.%s on entity %d: %v", name, method, id, p)
			Logger().Error("script panicked",
				zap.String("script", name),
				zap.String("method", method),
				zap.Uint64("entity", uint64(id)),
				zap.Any("panic", p))
		}
	}()
	fn()
	return nil
}
