package codec

import (
	"fmt"
	"reflect"
	"strconv"
	"unsafe"

	"github.com/wippyai/bridge/errors"
	"github.com/wippyai/bridge/layout"
)

// Scalar lists the types whose memory representation is identical on both
// sides of the boundary.
type Scalar interface {
	~bool |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Raw copies a scalar's native bytes. It carries no state.
type Raw[T Scalar] struct{}

func (Raw[T]) Size() int {
	var v T
	return int(unsafe.Sizeof(v))
}

func (r Raw[T]) Encode(e *Encoder, v T) {
	PutRaw(e.Next(r.Size()), v)
}

func (r Raw[T]) Decode(d *Decoder) T {
	return GetRaw[T](d.Next(r.Size()))
}

func (r Raw[T]) Describe() layout.Node {
	return layout.Leaf(scalarName(reflect.TypeFor[T]()), r.Size())
}

func scalarName(t reflect.Type) string {
	bits := strconv.Itoa(int(t.Size()) * 8)
	switch t.Kind() {
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "i" + bits
	case reflect.Uintptr:
		return "usize"
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "u" + bits
	case reflect.Float32, reflect.Float64:
		return "f" + bits
	default:
		return "c" + bits
	}
}

// PutRaw copies the native bytes of v into the front of b, unaligned.
// T must not contain pointers.
func PutRaw[T any](b []byte, v T) {
	n := int(unsafe.Sizeof(v))
	if n == 0 {
		return
	}
	copy(b[:n], unsafe.Slice((*byte)(unsafe.Pointer(&v)), n))
}

// GetRaw reconstructs a T from the front of b, unaligned.
// T must not contain pointers.
func GetRaw[T any](b []byte) T {
	var v T
	n := int(unsafe.Sizeof(v))
	if n == 0 {
		return v
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), n), b[:n])
	return v
}

// Transmute copies any pointer-free fixed-size value as raw bytes: arrays
// and structs of scalars, including their padding.
type Transmute[T any] struct {
	size int
	name string
}

// NewTransmute returns a Transmute codec for T, or an error if T holds
// references the garbage collector must see.
func NewTransmute[T any]() (Transmute[T], error) {
	t := reflect.TypeFor[T]()
	if !pointerFree(t) {
		return Transmute[T]{}, errors.New(errors.PhaseLayout, errors.KindUnsupported).
			GoType(t.String()).
			Detail("type contains references and cannot be copied as raw bytes").
			Build()
	}
	return Transmute[T]{size: int(t.Size()), name: t.String()}, nil
}

// MustTransmute is like NewTransmute but panics on error.
func MustTransmute[T any]() Transmute[T] {
	c, err := NewTransmute[T]()
	if err != nil {
		panic(fmt.Sprintf("codec: %v", err))
	}
	return c
}

func (c Transmute[T]) Size() int {
	return c.size
}

func (c Transmute[T]) Encode(e *Encoder, v T) {
	PutRaw(e.Next(c.size), v)
}

func (c Transmute[T]) Decode(d *Decoder) T {
	return GetRaw[T](d.Next(c.size))
}

func (c Transmute[T]) Describe() layout.Node {
	return layout.Leaf(c.name, c.size)
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
