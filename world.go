package warehouse

import "github.com/TheBitDrifter/bark"

// location records where a live entity's data currently lives: which
// archetype, and which row within it.
type location struct {
	archetypeIndex int
	row            int
}

// World is the top-level container described in spec.md §4.2: the
// archetype table, the entity directory (with its free-slot list for O(1)
// slot reuse), archetype lookup by mask, and a runtime borrow counter
// enforcing the "no mutation while a query iterator is live" rule from
// spec.md §5.
//
// A World is not safe for concurrent use from multiple goroutines — it is
// exclusively owned by whichever goroutine drives it, matching spec.md's
// single-threaded cooperative scheduling model.
type World struct {
	entities  []entityID
	locations []location
	freeSlots []uint32

	archetypes      []*archetype
	archetypeByMask map[archetypeMask]int

	activeBorrows int
	commands      commandQueue
}

// NewWorld constructs an empty World. It always starts with exactly one
// archetype — the empty one (mask 0) — which is where every freshly
// created entity is placed before it gains any components.
func NewWorld() *World {
	w := &World{archetypeByMask: make(map[archetypeMask]int)}
	w.getOrCreateArchetype(0)
	return w
}

func (w *World) isAlive(id entityID) bool {
	idx := id.index()
	return int(idx) < len(w.entities) && w.entities[idx] == id
}

// borrowed reports whether one or more query iterators currently hold the
// world (see query.go's cursor, which calls beginBorrow/endBorrow).
func (w *World) borrowed() bool { return w.activeBorrows > 0 }

func (w *World) beginBorrow() { w.activeBorrows++ }

func (w *World) endBorrow() {
	w.activeBorrows--
	if w.activeBorrows == 0 {
		// Ignore the error here: processAll only ever returns an error
		// from a deferred command, and endBorrow has no caller to report
		// it to. A failing deferred command is silently dropped; the
		// commands queued after it still run.
		_ = w.commands.processAll(w)
	}
}

// requireUnborrowed panics if a query iterator currently holds the world.
// This is the runtime borrow-tracking enforcement spec.md §5 calls for in
// the absence of a compile-time borrow checker.
func (w *World) requireUnborrowed(op string) {
	if w.borrowed() {
		panic(bark.AddTrace(WorldBorrowedError{Operation: op}))
	}
}

// RunQueuedCommands drains any commands deferred while the world was
// borrowed. It is a no-op (and returns nil) if the world is still
// borrowed or if nothing is queued; endBorrow already calls this
// automatically once the last query iterator finishes, so most callers
// never need it directly.
func (w *World) RunQueuedCommands() error {
	if w.borrowed() {
		return nil
	}
	return w.commands.processAll(w)
}

// getOrCreateArchetype returns the archetype for mask, creating it (with
// one column per set bit, in ascending component-id order) on first
// observation of that mask. Archetypes live for the world's lifetime once
// created.
func (w *World) getOrCreateArchetype(mask archetypeMask) *archetype {
	if idx, ok := w.archetypeByMask[mask]; ok {
		return w.archetypes[idx]
	}
	idx := len(w.archetypes)
	a := newArchetype(idx, mask)
	w.archetypes = append(w.archetypes, a)
	w.archetypeByMask[mask] = idx
	return a
}

// CreateEntity allocates a new entity into the empty archetype, reusing a
// free slot (and bumping nothing — the generation was already bumped at
// destroy time) if one is available.
func (w *World) CreateEntity() Entity {
	w.requireUnborrowed("create entity")
	return w.createEntityLocked()
}

// CreateEntities allocates n new entities in one call.
func (w *World) CreateEntities(n int) []Entity {
	w.requireUnborrowed("create entities")
	out := make([]Entity, n)
	for i := range out {
		out[i] = w.createEntityLocked()
	}
	return out
}

func (w *World) createEntityLocked() Entity {
	var idx, gen uint32
	if n := len(w.freeSlots); n > 0 {
		idx = w.freeSlots[n-1]
		w.freeSlots = w.freeSlots[:n-1]
		gen = w.entities[idx].generation()
	} else {
		idx = uint32(len(w.entities))
		w.entities = append(w.entities, 0)
		w.locations = append(w.locations, location{})
	}
	id := packEntityID(idx, gen)
	w.entities[idx] = id

	empty := w.archetypes[0]
	row := empty.insert(id)
	w.locations[idx] = location{archetypeIndex: empty.index, row: row}

	return Entity{id: id, world: w}
}

// DestroyEntity vacates e's row and bumps its slot's generation, so any
// other handle to the same slot fails its liveness check. Destroying an
// already-dead (or foreign) entity is a silent no-op, per spec.md §7.
func (w *World) DestroyEntity(e Entity) error {
	if e.world != w || !w.isAlive(e.id) {
		return nil
	}
	w.requireUnborrowed("destroy entity")
	w.destroyEntityLocked(e.id)
	return nil
}

func (w *World) destroyEntityLocked(id entityID) {
	idx := id.index()
	loc := w.locations[idx]
	w.archetypes[loc.archetypeIndex].vacate(loc.row)
	w.freeSlots = append(w.freeSlots, idx)
	w.entities[idx] = packEntityID(idx, id.generation()+1)
}

// EnqueueDestroyEntity destroys e immediately if the world isn't
// currently borrowed by a live query iterator, otherwise defers the
// destruction until the last iterator finishes (teacher pattern: enqueue
// while locked, per operation_queue.go).
func (w *World) EnqueueDestroyEntity(e Entity) {
	if w.borrowed() {
		w.commands.enqueue(destroyEntityCommand{entity: e})
		return
	}
	_ = w.DestroyEntity(e)
}

// EnqueueCreateEntities queues creation of n entities for once the world
// stops being borrowed, or creates them immediately if it isn't.
func (w *World) EnqueueCreateEntities(n int) {
	if w.borrowed() {
		w.commands.enqueue(createEntitiesCommand{count: n})
		return
	}
	w.CreateEntities(n)
}

// moveEntity migrates id from its current archetype to target: components
// present in both masks are transferred by value, components only the old
// archetype had are dropped, and components only target has are left
// zero-valued for the caller to construct. Returns the new row.
func (w *World) moveEntity(id entityID, target *archetype) int {
	idx := id.index()
	loc := w.locations[idx]
	old := w.archetypes[loc.archetypeIndex]
	if old == target {
		return loc.row
	}

	newRow := target.insert(id)
	for _, c := range old.componentIDs {
		dstCol, ok := target.columnFor(c)
		if !ok {
			continue // dropped: only in the old archetype
		}
		srcCol, _ := old.columnFor(c)
		dstCol.moveFrom(srcCol, loc.row, newRow)
	}
	old.vacate(loc.row)
	w.locations[idx] = location{archetypeIndex: target.index, row: newRow}
	return newRow
}

func (w *World) entityMask(id entityID) archetypeMask {
	loc := w.locations[id.index()]
	return w.archetypes[loc.archetypeIndex].mask
}
