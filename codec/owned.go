package codec

import (
	"reflect"

	"github.com/wippyai/bridge/errors"
	"github.com/wippyai/bridge/layout"
	"github.com/wippyai/bridge/resource"
)

// OwnedCodec moves a resource.Owned value across the boundary as a single
// pointer-sized handle into Table.
//
// Encode releases the producer's ownership; the encoded owner must not be
// used again. Decode adopts the handle. A zero handle, or one that does not
// name a live T, means the producer failed to allocate and is fatal.
type OwnedCodec[T any] struct {
	Table *resource.Table
}

// NewOwned returns an ownership-transfer codec over table.
func NewOwned[T any](table *resource.Table) OwnedCodec[T] {
	return OwnedCodec[T]{Table: table}
}

func (OwnedCodec[T]) Size() int {
	return layout.PointerSize
}

func (c OwnedCodec[T]) Encode(e *Encoder, v *resource.Owned[T]) {
	h := v.Release()
	if h == 0 {
		fatal(errors.UseAfterRelease(reflect.TypeFor[T]().String()))
	}
	Raw[uintptr]{}.Encode(e, uintptr(h))
}

func (c OwnedCodec[T]) Decode(d *Decoder) *resource.Owned[T] {
	h := Raw[uintptr]{}.Decode(d)
	if h == 0 {
		fatal(errors.NullHandle(errors.PhaseDecode, reflect.TypeFor[T]().String(), 0))
	}
	o, ok := resource.Adopt[T](c.Table, resource.Handle(h))
	if !ok {
		fatal(errors.NullHandle(errors.PhaseDecode, reflect.TypeFor[T]().String(), h))
	}
	return o
}

func (OwnedCodec[T]) Describe() layout.Node {
	return layout.Handle("")
}
