package boundary

import (
	"github.com/wippyai/bridge"
	"github.com/wippyai/bridge/errors"
)

var _ bridge.Allocator = (*Frame)(nil)

// Frame is a bump allocator over [base, base+size) of guest memory. It
// plays the role of the caller's stack: buffers are carved off the top and
// released by rewinding to a Mark.
type Frame struct {
	mem  *Wrapper
	base uint32
	end  uint32
	top  uint32
}

// NewFrame reserves size bytes of mem starting at base.
func NewFrame(mem *Wrapper, base, size uint32) (*Frame, error) {
	end := uint64(base) + uint64(size)
	if end > uint64(mem.Size()) {
		return nil, errors.OutOfBounds(errors.PhaseBoundary, base, size)
	}
	return &Frame{mem: mem, base: base, end: uint32(end), top: base}, nil
}

// Memory returns the memory the frame allocates from.
func (f *Frame) Memory() *Wrapper {
	return f.mem
}

// Alloc reserves size bytes aligned to align (a power of two, 0 means 1).
func (f *Frame) Alloc(size, align uint32) (uint32, error) {
	if align == 0 {
		align = 1
	}
	if align&(align-1) != 0 {
		return 0, errors.InvalidInput(errors.PhaseBoundary, "alignment must be a power of two")
	}
	start := (uint64(f.top) + uint64(align) - 1) &^ (uint64(align) - 1)
	if start+uint64(size) > uint64(f.end) {
		return 0, errors.AllocationFailed(errors.PhaseBoundary, size, align)
	}
	f.top = uint32(start) + size
	return uint32(start), nil
}

// Free releases the most recent allocation. Frees out of order are ignored;
// use Release to rewind past them.
func (f *Frame) Free(ptr, size, _ uint32) {
	if ptr+size == f.top && ptr >= f.base {
		f.top = ptr
	}
}

// Mark returns the current top for a later Release.
func (f *Frame) Mark() uint32 {
	return f.top
}

// Release rewinds the frame to mark, freeing everything allocated since.
func (f *Frame) Release(mark uint32) {
	if mark >= f.base && mark <= f.top {
		f.top = mark
	}
}

// Reset frees every allocation.
func (f *Frame) Reset() {
	f.top = f.base
}

// Used returns the number of bytes currently allocated.
func (f *Frame) Used() uint32 {
	return f.top - f.base
}

// Cap returns the total number of bytes the frame can hand out.
func (f *Frame) Cap() uint32 {
	return f.end - f.base
}
