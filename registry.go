package warehouse

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/TheBitDrifter/bark"
)

// maxComponents is the hard limit on distinct component types a process may
// register. It is chosen so a full component set fits in one machine word
// (ComponentID is an index into a single uint64 mask).
const maxComponents = 64

// ComponentID is a dense, process-wide identifier for a component type.
// Ids are assigned on first use of RegisterComponent/ComponentIDOf[T] and are
// never reused.
type ComponentID uint8

// componentMeta is the per-component record the registry keeps: the
// reflected type (for diagnostics and ComponentsAsString-style output) and
// a constructor for a fresh, empty column able to store values of that
// type. Capturing newColumn here, inside the generic RegisterComponent[T],
// is this codebase's stand-in for the origin's per-type component_pool
// vtable: Go generics let the constructor itself carry the type, so no
// separate {size, align, move, drop} function pointers are needed.
type componentMeta struct {
	typ       reflect.Type
	newColumn func(capacity int) column
}

var componentRegistry = &SimpleCache[componentMeta]{
	itemIndices: make(map[string]int),
	maxCapacity: maxComponents,
}

var typeMu sync.Mutex

// RegisterComponent assigns (or returns the existing) ComponentID for T.
// Safe for concurrent first use by multiple goroutines: the assignment is
// guarded by a mutex so every caller observing a given type for the first
// time agrees on the id it receives.
func RegisterComponent[T any]() (ComponentID, error) {
	t := reflect.TypeFor[T]()
	// The type descriptor's address is part of the key, so two distinct
	// types that print the same name still get distinct ids.
	key := fmt.Sprintf("%s@%p", t, t)

	typeMu.Lock()
	defer typeMu.Unlock()

	if idx, ok := componentRegistry.GetIndex(key); ok {
		return ComponentID(idx), nil
	}

	idx, err := componentRegistry.Register(key, componentMeta{
		typ: t,
		newColumn: func(capacity int) column {
			return newTypedColumn[T](capacity)
		},
	})
	if err != nil {
		return 0, ComponentLimitExceededError{Component: t.String(), Limit: maxComponents}
	}
	return ComponentID(idx), nil
}

// ComponentIDOf returns T's dense id, registering it on first use. Panics if
// the registry is already at its 64-component limit: by the time a caller
// reaches for a component handle via this convenience path, exceeding the
// limit is a configuration error rather than a recoverable runtime
// condition, the same way the origin's lookup_component_id<T>() offers no
// failure path at all.
func ComponentIDOf[T any]() ComponentID {
	id, err := RegisterComponent[T]()
	if err != nil {
		panic(bark.AddTrace(err))
	}
	return id
}

func componentMetaFor(id ComponentID) *componentMeta {
	return componentRegistry.GetItem32(uint32(id))
}

func componentNameFor(id ComponentID) string {
	meta := componentMetaFor(id)
	if meta == nil || meta.typ == nil {
		return fmt.Sprintf("component#%d", id)
	}
	return meta.typ.String()
}
