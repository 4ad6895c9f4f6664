package warehouse

import "fmt"

// entityID packs a 32-bit slot index and a 32-bit generation counter into
// one 64-bit value, exactly as spec.md §3 describes. The generation is
// bumped every time a slot is recycled so a stale handle fails its
// liveness check instead of aliasing whatever new entity now lives there.
type entityID uint64

// nullEntityID is the reserved "no entity" sentinel (all bits set), the Go
// analogue of the origin's INVALID_ENTITY_ID.
const nullEntityID entityID = ^entityID(0)

func packEntityID(index, generation uint32) entityID {
	return entityID(index) | entityID(generation)<<32
}

func (id entityID) index() uint32      { return uint32(id) }
func (id entityID) generation() uint32 { return uint32(id >> 32) }

// Entity is a handle to a slot in a World's entity directory. It is a
// small value type, safe to copy and to hold on to after the entity dies:
// Alive reports false, Get/Add/Set fail with ErrEntityDead, and Has,
// Remove and DestroyEntity do nothing, rather than touching stale storage.
type Entity struct {
	id    entityID
	world *World
}

// Index returns the entity's slot index within its world.
func (e Entity) Index() uint32 { return e.id.index() }

// Generation returns the entity's generation counter.
func (e Entity) Generation() uint32 { return e.id.generation() }

// Alive reports whether e still identifies a live entity: the world is
// set, the handle isn't the null sentinel, and the directory's current
// generation at this slot matches the handle's.
func (e Entity) Alive() bool {
	return e.world != nil && e.id != nullEntityID && e.world.isAlive(e.id)
}

// Equal reports whether two handles identify the same entity in the same
// world, the Go rendering of the origin's operator==.
func (e Entity) Equal(other Entity) bool {
	return e.id == other.id && e.world == other.world
}

func (e Entity) String() string {
	if e.id == nullEntityID {
		return "Entity(none)"
	}
	return fmt.Sprintf("Entity(%d:%d)", e.id.index(), e.id.generation())
}
