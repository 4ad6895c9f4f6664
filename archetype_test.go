package warehouse

import "testing"

type archPoint struct{ X int }

func TestArchetypeMaskOperations(t *testing.T) {
	var m archetypeMask
	m = m.with(2).with(5)

	if !m.has(2) || !m.has(5) {
		t.Fatalf("expected bits 2 and 5 set, got %b", m)
	}
	if m.has(3) {
		t.Errorf("bit 3 should not be set")
	}
	if !m.supersetOf(archetypeMask(0).with(2)) {
		t.Errorf("mask should be a superset of a subset of its bits")
	}
	if m.supersetOf(archetypeMask(0).with(9)) {
		t.Errorf("mask should not be a superset of a mask with bits it lacks")
	}

	without := m.without(2)
	if without.has(2) || !without.has(5) {
		t.Errorf("without(2) should clear bit 2 only, got %b", without)
	}
}

func TestArchetypeInsertReusesFreeRowsBeforeGrowing(t *testing.T) {
	id := ComponentIDOf[archPoint]()
	a := newArchetype(0, archetypeMask(0).with(id))

	r0 := a.insert(1)
	r1 := a.insert(2)
	r2 := a.insert(3)
	if r0 != 0 || r1 != 1 || r2 != 2 {
		t.Fatalf("expected sequential rows 0,1,2; got %d,%d,%d", r0, r1, r2)
	}

	a.vacate(r1)
	if a.rowAlive(r1) {
		t.Errorf("row %d should be dead after vacate", r1)
	}
	if a.liveCount() != 2 {
		t.Errorf("liveCount should be 2 after vacating one of three rows, got %d", a.liveCount())
	}

	// Row vacation must not compact: row 2's entity id should still sit at
	// index 2, not have been shifted down into the hole at row 1.
	if a.entities[r2] != 3 {
		t.Fatalf("vacating row %d must not move other rows; entities=%v", r1, a.entities)
	}

	reused := a.insert(4)
	if reused != r1 {
		t.Fatalf("expected the freed row %d to be reused, got %d", r1, reused)
	}
	if a.entities[reused] != 4 {
		t.Errorf("reused row should carry the new entity id, got %v", a.entities[reused])
	}
	if len(a.entities) != 3 {
		t.Errorf("reusing a free row should not grow the archetype, len=%d", len(a.entities))
	}
}

func TestArchetypeVacateZeroesColumns(t *testing.T) {
	id := ComponentIDOf[archPoint]()
	a := newArchetype(0, archetypeMask(0).with(id))
	row := a.insert(1)

	col, ok := a.columnFor(id)
	if !ok {
		t.Fatalf("expected column for registered component")
	}
	ptr := columnPtr[archPoint](col, row)
	ptr.X = 99

	a.vacate(row)

	ptr2 := columnPtr[archPoint](col, row)
	if ptr2.X != 0 {
		t.Errorf("vacate should zero the row's component data, got X=%d", ptr2.X)
	}
}

func TestArchetypeColumnForUnknownComponent(t *testing.T) {
	a := newArchetype(0, 0)
	if _, ok := a.columnFor(ComponentIDOf[archPoint]()); ok {
		t.Errorf("empty archetype should have no column for any component")
	}
}
