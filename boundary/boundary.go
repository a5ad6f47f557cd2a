package boundary

import (
	"github.com/wippyai/bridge"
	"github.com/wippyai/bridge/codec"
)

// Send allocates c.Size() bytes from frame and encodes v directly into guest
// memory. It returns the buffer's address.
func Send[T any](frame *Frame, c codec.Codec[T], v T) (uint32, error) {
	size := uint32(c.Size())
	ptr, err := frame.Alloc(size, 1)
	if err != nil {
		return 0, err
	}
	view, err := frame.Memory().View(ptr, size)
	if err != nil {
		frame.Free(ptr, size, 1)
		return 0, err
	}
	codec.EncodeInto(view, c, v)
	return ptr, nil
}

// Receive decodes the value whose buffer starts at ptr in mem.
func Receive[T any](mem bridge.Memory, ptr uint32, c codec.Codec[T]) (T, error) {
	view, err := mem.View(ptr, uint32(c.Size()))
	if err != nil {
		var zero T
		return zero, err
	}
	return codec.DecodeFrom(view, c), nil
}
