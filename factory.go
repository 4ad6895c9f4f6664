package warehouse

// factory is the package's single construction entry point, grounded on
// the teacher's own factory.go: callers reach for Factory.NewX rather
// than calling package-level constructors directly, which keeps all
// object creation discoverable from one place (and mockable, were that
// ever needed, behind the factory value).
type factory struct{}

// Factory is the global factory instance for creating warehouse objects.
var Factory factory

// NewWorld creates a new, empty World.
func (f factory) NewWorld() *World {
	return NewWorld()
}

// NewScheduler creates a new Scheduler running systems over w.
func (f factory) NewScheduler(w *World) *Scheduler {
	return NewScheduler(w)
}

// FactoryNewComponentType resolves (registering on first use) a cached, typed
// component handle for T.
func FactoryNewComponentType[T any]() ComponentType[T] {
	return NewComponentType[T]()
}

// FactoryNewCache creates a new bounded, string-keyed Cache with the
// given capacity.
func FactoryNewCache[T any](capacity int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: capacity,
	}
}
