package warehouse

import "time"

// Stage is an opaque handle to a point in a tick's run order, assigned
// from a process-wide counter — the Go rendering of the origin's
// create_stage_id(). Stages run in the order they were registered on the
// Scheduler; the three built-in stages are registered first and in
// ascending order, so the default pipeline always runs
// StagePreUpdate -> StageUpdate -> StagePostUpdate.
type Stage uint32

var nextStageID Stage

// NewStage allocates a fresh, process-wide unique stage id for a custom
// phase beyond the three built-ins.
func NewStage() Stage {
	nextStageID++
	return nextStageID
}

var (
	// StagePreUpdate runs first every tick: input sampling, event
	// dispatch, anything that should observe last tick's final state.
	StagePreUpdate = NewStage()
	// StageUpdate runs second: the bulk of gameplay/simulation systems.
	StageUpdate = NewStage()
	// StagePostUpdate runs last: cleanup, rendering hand-off, anything
	// that must see this tick's fully-settled state.
	StagePostUpdate = NewStage()
)

// SystemID identifies a registered system for later removal.
type SystemID uint32

// Context is passed to every system callback on each run: the world it
// operates over, and the elapsed wall-clock time since the previous
// Update call.
type Context struct {
	World *World
	Dt    float64
}

type registeredSystem struct {
	id    SystemID
	stage Stage
	run   func(Context)
}

// Scheduler runs registered systems in stage order once per Update call,
// sampling a monotonic clock to compute each tick's delta time — the Go
// rendering of the origin's world::update()/update_stage(), generalized
// to user-defined stages beyond pre/update/post.
type Scheduler struct {
	world   *World
	stages  []Stage // registration order; built-ins first
	seen    map[Stage]bool
	systems []registeredSystem
	nextID  SystemID

	lastTick time.Time
}

// NewScheduler constructs a Scheduler over w. The first Update call's Dt
// is measured from the moment NewScheduler was called, not from an
// arbitrary zero time — matching the origin world's constructor, which
// initializes both _last_update_time and _current_update_time at
// construction rather than leaving the first tick's dt undefined.
func NewScheduler(w *World) *Scheduler {
	return &Scheduler{
		world:    w,
		stages:   []Stage{StagePreUpdate, StageUpdate, StagePostUpdate},
		seen:     map[Stage]bool{StagePreUpdate: true, StageUpdate: true, StagePostUpdate: true},
		lastTick: time.Now(),
	}
}

func (s *Scheduler) registerStage(stage Stage) {
	if s.seen == nil {
		s.seen = make(map[Stage]bool)
	}
	if !s.seen[stage] {
		s.seen[stage] = true
		s.stages = append(s.stages, stage)
	}
}

func (s *Scheduler) addSystem(stage Stage, run func(Context)) SystemID {
	s.registerStage(stage)
	s.nextID++
	id := s.nextID
	s.systems = append(s.systems, registeredSystem{id: id, stage: stage, run: run})
	return id
}

// DestroySystem removes a previously registered system. A no-op if id is
// unknown (already removed, or never registered).
func (s *Scheduler) DestroySystem(id SystemID) {
	for i, sys := range s.systems {
		if sys.id == id {
			s.systems = append(s.systems[:i], s.systems[i+1:]...)
			return
		}
	}
}

// Update samples the clock, computes dt since the previous Update (or
// since NewScheduler, on the first call), and runs every stage in
// registration order.
func (s *Scheduler) Update() {
	now := time.Now()
	dt := now.Sub(s.lastTick).Seconds()
	s.lastTick = now

	ctx := Context{World: s.world, Dt: dt}
	for _, stage := range s.stages {
		s.runStage(stage, ctx)
	}
}

// RunStage runs every system registered to a single stage immediately,
// independent of Update's normal per-tick sweep — useful for stages the
// caller wants to drive manually.
func (s *Scheduler) RunStage(stage Stage, ctx Context) {
	s.runStage(stage, ctx)
}

func (s *Scheduler) runStage(stage Stage, ctx Context) {
	for _, sys := range s.systems {
		if sys.stage == stage {
			sys.run(ctx)
		}
	}
}

// RegisterSystem1 registers a system driven by a Query1[A], invoked once
// per Update's pass through stage with a fresh query over the current
// archetype set.
func RegisterSystem1[A any](s *Scheduler, stage Stage, fn func(ctx Context, e Entity, a *A)) SystemID {
	return s.addSystem(stage, func(ctx Context) {
		q := NewQuery1[A](ctx.World)
		q.Each(func(e Entity, a *A) { fn(ctx, e, a) })
	})
}

// RegisterSystem2 is RegisterSystem1 for a two-component query.
func RegisterSystem2[A, B any](s *Scheduler, stage Stage, fn func(ctx Context, e Entity, a *A, b *B)) SystemID {
	return s.addSystem(stage, func(ctx Context) {
		q := NewQuery2[A, B](ctx.World)
		q.Each(func(e Entity, a *A, b *B) { fn(ctx, e, a, b) })
	})
}

// RegisterSystem3 is RegisterSystem1 for a three-component query.
func RegisterSystem3[A, B, C any](s *Scheduler, stage Stage, fn func(ctx Context, e Entity, a *A, b *B, c *C)) SystemID {
	return s.addSystem(stage, func(ctx Context) {
		q := NewQuery3[A, B, C](ctx.World)
		q.Each(func(e Entity, a *A, b *B, c *C) { fn(ctx, e, a, b, c) })
	})
}

// RegisterSystem4 is RegisterSystem1 for a four-component query.
func RegisterSystem4[A, B, C, D any](s *Scheduler, stage Stage, fn func(ctx Context, e Entity, a *A, b *B, c *C, d *D)) SystemID {
	return s.addSystem(stage, func(ctx Context) {
		q := NewQuery4[A, B, C, D](ctx.World)
		q.Each(func(e Entity, a *A, b *B, c *C, d *D) { fn(ctx, e, a, b, c, d) })
	})
}

// RegisterSystem5 is RegisterSystem1 for a five-component query.
func RegisterSystem5[A, B, C, D, E any](s *Scheduler, stage Stage, fn func(ctx Context, e Entity, a *A, b *B, c *C, d *D, e2 *E)) SystemID {
	return s.addSystem(stage, func(ctx Context) {
		q := NewQuery5[A, B, C, D, E](ctx.World)
		q.Each(func(e Entity, a *A, b *B, c *C, d *D, e2 *E) { fn(ctx, e, a, b, c, d, e2) })
	})
}

// RegisterFunc registers a raw system callback against stage, with no
// query of its own — for systems that drive multiple queries, or none
// (timers, housekeeping).
func RegisterFunc(s *Scheduler, stage Stage, fn func(Context)) SystemID {
	return s.addSystem(stage, fn)
}
