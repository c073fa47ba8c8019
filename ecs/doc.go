// Package ecs provides an in-process arc host backed by a [Donburi] world.
//
// [World] implements [arc.InternalCalls]: every arc component kind is a
// Donburi component type, entities carry Tag and Transform from creation,
// and [World.Step] integrates 2D rigidbodies. Script log messages and
// collisions are published as Donburi events; subscribe to [LogEventType]
// to collect logs and call [Attach] to route collisions to a script runtime.
//
// Usage:
//
//	world := ecs.NewWorld()
//	rt := arc.NewRuntime(world, registry)
//	ecs.Attach(world, rt)
//
//	id := world.CreateEntity("Player")
//	rt.Instantiate("Player", id)
//
//	for {
//		rt.Update(dt)
//		world.Step(dt)
//	}
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
