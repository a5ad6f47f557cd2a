package resource

// Owned is the single owner of a value stored in a Table. Ownership moves
// across a boundary by releasing the handle on one side and adopting it on
// the other; the entry stays in the table in between.
type Owned[T any] struct {
	table  *Table
	handle Handle
}

// New moves v into table and returns its owner.
func New[T any](table *Table, v T) (*Owned[T], error) {
	h := table.Insert(TypeOwned, v)
	if h == 0 {
		return nil, ErrClosed
	}
	return &Owned[T]{table: table, handle: h}, nil
}

// Adopt takes ownership of a released handle. It fails if the handle does
// not name a live owned value of type T.
func Adopt[T any](table *Table, h Handle) (*Owned[T], bool) {
	v, ok := table.GetTyped(h, TypeOwned)
	if !ok {
		return nil, false
	}
	if _, ok := v.(T); !ok {
		return nil, false
	}
	return &Owned[T]{table: table, handle: h}, true
}

// Get returns the owned value, or false once the owner has released or
// dropped it.
func (o *Owned[T]) Get() (T, bool) {
	var zero T
	if o == nil || o.handle == 0 {
		return zero, false
	}
	v, ok := o.table.Get(o.handle)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Handle returns the current handle, 0 after Release or Drop.
func (o *Owned[T]) Handle() Handle {
	if o == nil {
		return 0
	}
	return o.handle
}

// Release relinquishes ownership and returns the raw handle. The owner must
// not be used afterwards; the value is reclaimed by whoever adopts the handle.
// Release returns 0 if ownership was already given up.
func (o *Owned[T]) Release() Handle {
	if o == nil {
		return 0
	}
	h := o.handle
	o.handle = 0
	return h
}

// Drop destroys the value. It is a no-op after Release or a previous Drop.
func (o *Owned[T]) Drop() {
	if o == nil || o.handle == 0 {
		return
	}
	o.table.Remove(o.handle)
	o.handle = 0
}
