package resource

import (
	"errors"
	"sync"
)

var ErrClosed = errors.New("resource backend closed")

// LocalBackend is an in-memory handle store. Freed slots are reused, so a
// stale handle may later name a different resource.
type LocalBackend struct {
	entries  []entry
	freeList []Handle
	mu       sync.RWMutex
	closed   bool
}

type entry struct {
	value  any
	typeID uint32
	valid  bool
}

// NewLocalBackend creates a new in-memory backend.
func NewLocalBackend() *LocalBackend {
	return &LocalBackend{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Create stores a value and returns a handle.
func (b *LocalBackend) Create(typeID uint32, value any) (Handle, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	e := entry{
		typeID: typeID,
		value:  value,
		valid:  true,
	}

	if len(b.freeList) > 0 {
		handle := b.freeList[len(b.freeList)-1]
		b.freeList = b.freeList[:len(b.freeList)-1]
		b.entries[handle-1] = e
		return handle, nil
	}

	b.entries = append(b.entries, e)
	return Handle(len(b.entries)), nil
}

// lookup returns the entry index for handle; callers hold mu.
func (b *LocalBackend) lookup(handle Handle) (int, bool) {
	if handle == 0 {
		return 0, false
	}
	idx := int(handle - 1)
	if idx >= len(b.entries) || !b.entries[idx].valid {
		return 0, false
	}
	return idx, true
}

// Get retrieves a value by handle.
func (b *LocalBackend) Get(handle Handle) (any, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	idx, ok := b.lookup(handle)
	if !ok {
		return nil, false
	}
	return b.entries[idx].value, true
}

// TypeID returns the type ID for a handle.
func (b *LocalBackend) TypeID(handle Handle) (uint32, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	idx, ok := b.lookup(handle)
	if !ok {
		return 0, false
	}
	return b.entries[idx].typeID, true
}

// Drop removes a resource and returns its value. When typeID is non-zero the
// entry is only removed if its type matches.
func (b *LocalBackend) Drop(handle Handle, typeID uint32) (any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx, ok := b.lookup(handle)
	if !ok {
		return nil, false
	}

	e := &b.entries[idx]
	if typeID != 0 && e.typeID != typeID {
		return nil, false
	}

	value := e.value
	e.valid = false
	e.value = nil
	b.freeList = append(b.freeList, handle)

	return value, true
}

// Close releases all resources, calling Drop on values that implement Dropper.
func (b *LocalBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for i := range b.entries {
		if b.entries[i].valid {
			if d, ok := b.entries[i].value.(Dropper); ok {
				d.Drop()
			}
			b.entries[i].valid = false
			b.entries[i].value = nil
		}
	}

	b.entries = nil
	b.freeList = nil
	return nil
}

// Len returns the number of active resources.
func (b *LocalBackend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries) - len(b.freeList)
}

// Each iterates over all active resources.
func (b *LocalBackend) Each(fn func(Handle, uint32, any) bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for i, e := range b.entries {
		if e.valid {
			if !fn(Handle(i+1), e.typeID, e.value) {
				break
			}
		}
	}
}
