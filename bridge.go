package bridge

// Memory is a linear address space both sides of a boundary can address.
type Memory interface {
	// Read copies length bytes starting at offset.
	Read(offset uint32, length uint32) ([]byte, error)
	// Write copies data into memory at offset.
	Write(offset uint32, data []byte) error
	// View returns a slice aliasing memory; writes through it are visible
	// to the other side without a copy.
	View(offset uint32, length uint32) ([]byte, error)
}

// MemorySizer provides the current size of the linear memory in bytes.
type MemorySizer interface {
	Size() uint32
}

// Allocator hands out transient buffer regions inside a Memory.
type Allocator interface {
	Alloc(size, align uint32) (uint32, error)
	Free(ptr, size, align uint32)
}
