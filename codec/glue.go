package codec

import (
	"unsafe"

	"github.com/wippyai/bridge/errors"
)

// EncodeInto encodes v into the first c.Size() bytes of buf. buf is the
// call-site scratch buffer; it must hold at least c.Size() bytes.
func EncodeInto[T any](buf []byte, c Codec[T], v T) {
	e := NewEncoder(window(errors.PhaseEncode, buf, c.Size()))
	c.Encode(e, v)
	e.finish(errors.PhaseEncode)
}

// DecodeFrom decodes a value from the first c.Size() bytes of buf. The
// bytes must have been written by EncodeInto with a codec of identical
// layout, and must be decoded only once.
func DecodeFrom[T any](buf []byte, c Codec[T]) T {
	d := NewDecoder(window(errors.PhaseDecode, buf, c.Size()))
	v := c.Decode(d)
	d.finish(errors.PhaseDecode)
	return v
}

// EncodeAt is EncodeInto on a raw pointer to the buffer's first byte, as
// received across a foreign call.
func EncodeAt[T any](ptr unsafe.Pointer, c Codec[T], v T) {
	EncodeInto(unsafe.Slice((*byte)(ptr), c.Size()), c, v)
}

// DecodeAt is DecodeFrom on a raw pointer to the buffer's first byte.
func DecodeAt[T any](ptr unsafe.Pointer, c Codec[T]) T {
	return DecodeFrom(unsafe.Slice((*byte)(ptr), c.Size()), c)
}

// MakeScratch returns a buffer of size bytes for callers that declare
// storage without knowing a codec's decomposition.
func MakeScratch(size int) []byte {
	return make([]byte, size)
}

// ScratchFor returns a buffer sized for c.
func ScratchFor[T any](c Codec[T]) []byte {
	return MakeScratch(c.Size())
}

func window(phase errors.Phase, buf []byte, size int) []byte {
	if checked && len(buf) < size {
		fatal(errors.CapacityExhausted(phase, len(buf), size))
	}
	return buf[:size:size]
}
