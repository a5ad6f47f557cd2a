package boundary

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/bridge"
	"github.com/wippyai/bridge/errors"
)

// WrapMemory wraps a wazero api.Memory to implement bridge.Memory.
func WrapMemory(mem api.Memory) *Wrapper {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem}
}

var (
	_ bridge.Memory      = (*Wrapper)(nil)
	_ bridge.MemorySizer = (*Wrapper)(nil)
)

// Wrapper adapts wazero api.Memory to the bridge.Memory interface.
type Wrapper struct {
	Mem api.Memory
}

// Read copies bytes out of memory.
func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	data, err := m.View(offset, length)
	if err != nil {
		return nil, err
	}
	out := make([]byte, length)
	copy(out, data)
	return out, nil
}

// Write writes bytes to memory.
func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.Mem.Write(offset, data) {
		return errors.OutOfBounds(errors.PhaseBoundary, offset, uint32(len(data)))
	}
	return nil
}

// View returns a slice aliasing guest memory. It is invalidated when the
// memory grows.
func (m *Wrapper) View(offset uint32, length uint32) ([]byte, error) {
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, errors.OutOfBounds(errors.PhaseBoundary, offset, length)
	}
	return data[:length:length], nil
}

// Size returns the current memory size in bytes.
func (m *Wrapper) Size() uint32 {
	return m.Mem.Size()
}
