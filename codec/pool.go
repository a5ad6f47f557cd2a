package codec

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCap  = 4096 // max scratch bytes kept
	poolInitCap = 64
)

var scratchPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, poolInitCap)
		return &buf
	},
}

// GetScratch returns a pooled buffer of exactly size bytes. Its contents
// are unspecified. Return it with PutScratch once the decode is done.
func GetScratch(size int) *[]byte {
	buf := scratchPool.Get().(*[]byte)
	if cap(*buf) < size {
		*buf = make([]byte, size)
	}
	*buf = (*buf)[:size]
	return buf
}

// PutScratch returns buf to the pool. Oversized buffers are dropped.
func PutScratch(buf *[]byte) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	scratchPool.Put(buf)
}

// Transfer encodes v into pooled scratch and decodes it back, the in-process
// equivalent of one boundary crossing.
func Transfer[T any](c Codec[T], v T) T {
	buf := GetScratch(c.Size())
	defer PutScratch(buf)
	EncodeInto(*buf, c, v)
	return DecodeFrom(*buf, c)
}
