package warehouse

// This file is the Go rendering of spec.md §4.3's per-component
// operations. mlange-42/arche's generic.go groups these as
// free functions parameterized by component type rather than methods on
// Entity, which is the shape kept here: Get/Add/Set/Remove/Has all take
// (*World, Entity) explicitly so the World stays the single owner of all
// storage, and Entity remains a plain, copyable handle.

// Has reports whether e currently carries component T. False (never an
// error) for a dead entity, matching spec.md §7's "queries and has-checks
// are always safe" rule.
func Has[T any](w *World, e Entity) bool {
	if !e.Alive() {
		return false
	}
	id := ComponentIDOf[T]()
	return w.entityMask(e.id).has(id)
}

// Get returns a live pointer to e's T component. The pointer is valid
// until e's archetype changes (an Add/Remove/Set that migrates it) or the
// component's row is vacated; callers that hold a Get result across such
// an operation must call Get again.
func Get[T any](w *World, e Entity) (*T, error) {
	if !e.Alive() {
		return nil, EntityDeadError{Entity: e}
	}
	id := ComponentIDOf[T]()
	loc := w.locations[e.id.index()]
	a := w.archetypes[loc.archetypeIndex]
	col, ok := a.columnFor(id)
	if !ok {
		return nil, ComponentMissingError{Entity: e, Component: componentNameFor(id)}
	}
	return columnPtr[T](col, loc.row), nil
}

// Add attaches component T (with initial value v) to e, migrating it to
// the archetype for its new, larger component set. Fails with
// ComponentAlreadyPresentError if e already carries T.
func Add[T any](w *World, e Entity, v T) (*T, error) {
	if !e.Alive() {
		return nil, EntityDeadError{Entity: e}
	}
	w.requireUnborrowed("add component")

	id := ComponentIDOf[T]()
	curMask := w.entityMask(e.id)
	if curMask.has(id) {
		return nil, ComponentAlreadyPresentError{Entity: e, Component: componentNameFor(id)}
	}

	target := w.getOrCreateArchetype(curMask.with(id))
	row := w.moveEntity(e.id, target)
	col, _ := target.columnFor(id)
	ptr := columnPtr[T](col, row)
	*ptr = v
	return ptr, nil
}

// Set assigns v to e's existing T component, or behaves exactly like Add
// if e does not yet carry T. This matches spec.md §4.3's "set" operation,
// which is defined as add-or-overwrite rather than requiring presence.
func Set[T any](w *World, e Entity, v T) (*T, error) {
	if !e.Alive() {
		return nil, EntityDeadError{Entity: e}
	}
	id := ComponentIDOf[T]()
	if w.entityMask(e.id).has(id) {
		w.requireUnborrowed("set component")
		loc := w.locations[e.id.index()]
		a := w.archetypes[loc.archetypeIndex]
		col, _ := a.columnFor(id)
		ptr := columnPtr[T](col, loc.row)
		*ptr = v
		return ptr, nil
	}
	return addLocked(w, e, v)
}

// addLocked is Add's body without the already-present check, used by Set
// once it has confirmed T is absent.
func addLocked[T any](w *World, e Entity, v T) (*T, error) {
	w.requireUnborrowed("set component")
	id := ComponentIDOf[T]()
	target := w.getOrCreateArchetype(w.entityMask(e.id).with(id))
	row := w.moveEntity(e.id, target)
	col, _ := target.columnFor(id)
	ptr := columnPtr[T](col, row)
	*ptr = v
	return ptr, nil
}

// Remove detaches component T from e, migrating it to the archetype for
// its new, smaller component set. Fails with ComponentMissingError if e
// does not carry T. Removing from a dead entity is a silent no-op.
func Remove[T any](w *World, e Entity) error {
	if !e.Alive() {
		return nil
	}
	w.requireUnborrowed("remove component")

	id := ComponentIDOf[T]()
	curMask := w.entityMask(e.id)
	if !curMask.has(id) {
		return ComponentMissingError{Entity: e, Component: componentNameFor(id)}
	}

	target := w.getOrCreateArchetype(curMask.without(id))
	w.moveEntity(e.id, target)
	return nil
}

// EnqueueAdd defers Add until the world stops being borrowed, or runs it
// immediately if it isn't currently borrowed.
func EnqueueAdd[T any](w *World, e Entity, v T) {
	if w.borrowed() {
		w.commands.enqueue(addComponentCommand[T]{entity: e, value: v})
		return
	}
	_, _ = Add(w, e, v)
}

// EnqueueSet defers Set the same way EnqueueAdd defers Add.
func EnqueueSet[T any](w *World, e Entity, v T) {
	if w.borrowed() {
		w.commands.enqueue(setComponentCommand[T]{entity: e, value: v})
		return
	}
	_, _ = Set(w, e, v)
}

// EnqueueRemove defers Remove the same way EnqueueAdd defers Add.
func EnqueueRemove[T any](w *World, e Entity) {
	if w.borrowed() {
		w.commands.enqueue(removeComponentCommand[T]{entity: e})
		return
	}
	_ = Remove[T](w, e)
}

// ComponentType is a cached, typed handle to a component, grounded on the
// teacher's AccessibleComponent[T]: resolving ComponentIDOf[T] once up
// front and reusing it avoids the registry lookup on every access in a
// hot loop.
type ComponentType[T any] struct {
	id ComponentID
}

// NewComponentType resolves (registering if necessary) T's id once.
func NewComponentType[T any]() ComponentType[T] {
	return ComponentType[T]{id: ComponentIDOf[T]()}
}

func (c ComponentType[T]) ID() ComponentID { return c.id }

func (c ComponentType[T]) Has(w *World, e Entity) bool {
	return e.Alive() && w.entityMask(e.id).has(c.id)
}

func (c ComponentType[T]) Get(w *World, e Entity) (*T, error) {
	return Get[T](w, e)
}

func (c ComponentType[T]) Add(w *World, e Entity, v T) (*T, error) {
	return Add(w, e, v)
}

func (c ComponentType[T]) Set(w *World, e Entity, v T) (*T, error) {
	return Set(w, e, v)
}

func (c ComponentType[T]) Remove(w *World, e Entity) error {
	return Remove[T](w, e)
}
