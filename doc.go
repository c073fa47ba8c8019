// Package arc is the scripting API of the Arc engine.
//
// Game logic lives in scripts: Go types that embed [Entity] and implement
// [Script]. The engine (the host) owns entities and component data and
// exposes them through [InternalCalls]. Scripts never touch that storage
// directly; they go through component facades and the [Input] and [Log]
// helpers, which forward every read and write to the host.
//
// # Quick start
//
// Register a script factory, create a [Runtime] over a host, and attach
// scripts to entities:
//
//	type Player struct {
//		arc.Entity
//		Speed float32 `range:"0,20"`
//	}
//
//	func (p *Player) OnCreate() {}
//
//	func (p *Player) OnUpdate(ts float32) {
//		dir := p.Input().Direction().Scale(p.Speed * ts)
//		arc.GetComponent[arc.TransformComponent](p.Entity).Translate(dir.Vector3(0))
//	}
//
//	reg := arc.NewScriptRegistry()
//	reg.Register("Player", func() arc.Script { return &Player{Speed: 5} })
//	rt := arc.NewRuntime(host, reg)
//	rt.Instantiate("Player", id)
//
//	for {
//		rt.Update(dt)
//	}
//
// The ecs subpackage provides an in-process host backed by [Donburi], and
// ebitenhost runs it in an [Ebitengine] window.
//
// # Components
//
// [GetComponent], [AddComponent] and [HasComponent] take the component type
// as a type parameter. The returned facades are thin handles: every getter
// asks the host for the current value and every setter writes straight
// back, so a facade never goes stale.
//
// # Math
//
// [Vector2], [Vector3], [Vector4], [Quaternion] and [Matrix4] are value
// types in single precision. Angles are radians. Rotations compose in
// X, Y, Z order.
//
// # Errors and logging
//
// Operations that can fail return errors wrapping the sentinels in this
// package, such as [ErrInvalidEntity] and [ErrIndexOutOfRange]. Misuse that
// the engine tolerates, like adding a component that already exists, is
// reported through the package [zap] logger (see [SetLogger]) and the call
// continues.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
// [zap]: https://pkg.go.dev/go.uber.org/zap
package arc
