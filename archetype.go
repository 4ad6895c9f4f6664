package warehouse

// archetypeMask is the component-set bitmap: bit c set means component id
// c is present. A single uint64 is enough because maxComponents == 64 —
// this is the literal Go rendering of the origin's archetype_mask.
type archetypeMask uint64

func (m archetypeMask) has(id ComponentID) bool              { return m&(1<<uint(id)) != 0 }
func (m archetypeMask) with(id ComponentID) archetypeMask    { return m | (1 << uint(id)) }
func (m archetypeMask) without(id ComponentID) archetypeMask { return m &^ (1 << uint(id)) }

// supersetOf reports whether m contains every bit set in required — the
// query match predicate from spec.md §4.4.
func (m archetypeMask) supersetOf(required archetypeMask) bool { return m&required == required }

func (m archetypeMask) intersects(other archetypeMask) bool { return m&other != 0 }
func (m archetypeMask) disjointFrom(other archetypeMask) bool { return m&other == 0 }

// archetype groups every entity sharing one exact component set. Its mask
// is fixed at creation; moving an entity between component sets always
// means moving it to a different archetype (spec.md §3).
type archetype struct {
	index        int // position of this archetype in World.archetypes
	mask         archetypeMask
	componentIDs []ComponentID // ascending component-id order
	columnOf     map[ComponentID]int
	columns      []column
	entities     []entityID // row -> entity id; nullEntityID marks a vacated row
	freeRows     []uint32   // reclaimed rows, preferentially reused on insert
}

func newArchetype(index int, mask archetypeMask) *archetype {
	a := &archetype{
		index:    index,
		mask:     mask,
		columnOf: make(map[ComponentID]int),
	}
	for c := ComponentID(0); c < maxComponents; c++ {
		if !mask.has(c) {
			continue
		}
		meta := componentMetaFor(c)
		a.columnOf[c] = len(a.columns)
		a.componentIDs = append(a.componentIDs, c)
		a.columns = append(a.columns, meta.newColumn(Config.initialColumnCapacity))
	}
	return a
}

func (a *archetype) columnFor(id ComponentID) (column, bool) {
	idx, ok := a.columnOf[id]
	if !ok {
		return nil, false
	}
	return a.columns[idx], ok
}

// insert reserves a row for entity id: it reuses a free row if one exists,
// otherwise appends a fresh row to every column and to entities. All
// columns and entities therefore always share the same length, satisfying
// spec.md §3's column/entities invariant.
func (a *archetype) insert(id entityID) int {
	if n := len(a.freeRows); n > 0 {
		row := int(a.freeRows[n-1])
		a.freeRows = a.freeRows[:n-1]
		a.entities[row] = id
		return row
	}
	row := len(a.entities)
	a.entities = append(a.entities, id)
	for _, col := range a.columns {
		col.grow()
	}
	return row
}

// vacate marks row dead and pushes it onto the free-row list. The row is
// deliberately not swap-removed: every other row keeps its index, which is
// what lets World.locations store raw row numbers and lets queries iterate
// rows sequentially without a relocation pass (spec.md §4.2's "row
// vacation" design decision — the one place a naive implementation would
// be tempted to compact, and the one place spec.md explicitly forbids it).
func (a *archetype) vacate(row int) {
	a.entities[row] = nullEntityID
	for _, col := range a.columns {
		col.zero(row)
	}
	a.freeRows = append(a.freeRows, uint32(row))
}

// liveCount is the number of rows that are not vacated.
func (a *archetype) liveCount() int {
	return len(a.entities) - len(a.freeRows)
}

func (a *archetype) rowAlive(row int) bool {
	return a.entities[row] != nullEntityID
}
