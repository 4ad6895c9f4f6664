/*
Package warehouse provides an archetype-based Entity-Component-System
(ECS) runtime for games and simulations.

Entities are grouped by their exact component set into archetypes, so
entities with identical shapes sit in contiguous, per-component columns —
good cache behavior for the common case of iterating every entity that
has a given set of components.

Core Concepts:

  - Entity: a lightweight handle (slot index + generation) identifying a
    row of component data. Stale handles fail their liveness check rather
    than aliasing whatever new entity now occupies a reused slot.
  - Component: any Go type registered once per process via
    RegisterComponent or ComponentIDOf; up to 64 distinct types fit in a
    single archetype mask.
  - Archetype: the set of entities sharing one exact component set. Adding
    or removing a component always migrates an entity to a different
    archetype.
  - Query: a superset-mask match over archetypes, walked with a
    Next()-style cursor rather than a range-over-func iterator, since Go's
    range-over-func only supports zero-, one- and two-value yields and
    queries here can yield up to five component pointers.
  - Scheduler: runs registered systems across ordered stages
    (StagePreUpdate, StageUpdate, StagePostUpdate, plus any custom stages)
    once per Update call, with a measured delta time.

Basic Usage:

	world := warehouse.Factory.NewWorld()

	e := world.CreateEntity()
	warehouse.Add(world, e, Position{X: 0, Y: 0})
	warehouse.Add(world, e, Velocity{X: 1, Y: 2})

	query := warehouse.NewQuery2[Position, Velocity](world)
	query.Each(func(e warehouse.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

Systems can be driven from a Scheduler instead of calling a query
directly:

	scheduler := warehouse.Factory.NewScheduler(world)
	warehouse.RegisterSystem2[Position, Velocity](scheduler, warehouse.StageUpdate,
		func(ctx warehouse.Context, e warehouse.Entity, pos *Position, vel *Velocity) {
			pos.X += vel.X * float32(ctx.Dt)
			pos.Y += vel.Y * float32(ctx.Dt)
		})

	scheduler.Update()
*/
package warehouse
