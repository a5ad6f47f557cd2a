package resource

import (
	"sync"
)

// Table stores resources on behalf of both sides of a boundary. A handle
// inserted by the producer is valid for the consumer until it is removed.
type Table struct {
	backend   *LocalBackend
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewTable creates a new table with a LocalBackend.
func NewTable() *Table {
	return &Table{
		backend: NewLocalBackend(),
	}
}

// Insert adds a value and returns its handle, or 0 if the table is closed.
func (t *Table) Insert(typeID uint32, value any) Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	handle, err := t.backend.Create(typeID, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		TypeID: typeID,
		Value:  value,
	})

	return handle
}

// Get retrieves a value by handle.
func (t *Table) Get(handle Handle) (any, bool) {
	return t.backend.Get(handle)
}

// GetTyped retrieves a value only if it matches the expected type.
func (t *Table) GetTyped(handle Handle, typeID uint32) (any, bool) {
	actualTypeID, ok := t.backend.TypeID(handle)
	if !ok || actualTypeID != typeID {
		return nil, false
	}
	return t.backend.Get(handle)
}

// Remove drops a resource, running its Dropper, and returns (value, true) if found.
func (t *Table) Remove(handle Handle) (any, bool) {
	typeID, _ := t.backend.TypeID(handle)
	value, ok := t.backend.Drop(handle, 0)
	if !ok {
		return nil, false
	}

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		TypeID: typeID,
		Value:  value,
	})

	return value, true
}

// Take removes a resource of the given type without dropping it; ownership
// of the value passes to the caller.
func (t *Table) Take(handle Handle, typeID uint32) (any, bool) {
	value, ok := t.backend.Drop(handle, typeID)
	if !ok {
		return nil, false
	}

	t.notify(Event{
		Type:   EventTaken,
		Handle: handle,
		TypeID: typeID,
		Value:  value,
	})

	return value, true
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of active resources.
func (t *Table) Len() int {
	return t.backend.Len()
}

// Clear drops all resources.
func (t *Table) Clear() {
	// Collect handles first to avoid holding lock during Remove
	var handles []Handle
	t.backend.Each(func(h Handle, typeID uint32, value any) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Close releases all resources and stops accepting operations.
func (t *Table) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	return t.backend.Close()
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
