package codec

import (
	"github.com/wippyai/bridge/errors"
)

// cursor is the shared counting-down state of Encoder and Decoder.
type cursor struct {
	buf       []byte
	remaining int
}

func (c *cursor) next(phase errors.Phase, n int) []byte {
	if checked && (n < 0 || n > c.remaining) {
		fatal(errors.CapacityExhausted(phase, c.remaining, n))
	}
	c.remaining -= n
	return c.buf[c.remaining : c.remaining+n : c.remaining+n]
}

func (c *cursor) skip(phase errors.Phase, n int) {
	if checked && (n < 0 || n > c.remaining) {
		fatal(errors.CapacityExhausted(phase, c.remaining, n))
	}
	c.remaining -= n
}

func (c *cursor) finish(phase errors.Phase) {
	if checked && c.remaining != 0 {
		fatal(errors.CapacityUnderused(phase, len(c.buf), c.remaining))
	}
}

// Encoder places encoded bytes into a buffer. It is single use: create one
// per top-level Encode.
type Encoder struct {
	cursor
}

// NewEncoder returns an Encoder whose capacity is the full length of buf.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{cursor{buf: buf, remaining: len(buf)}}
}

// Next consumes n bytes of capacity and returns the region they occupy. The
// region starts at the capacity remaining after the subtraction.
func (e *Encoder) Next(n int) []byte {
	return e.next(errors.PhaseEncode, n)
}

// Skip consumes n bytes without writing them.
func (e *Encoder) Skip(n int) {
	e.skip(errors.PhaseEncode, n)
}

// Remaining returns the unconsumed capacity.
func (e *Encoder) Remaining() int {
	return e.remaining
}

// Decoder reads values back in the order they were encoded.
type Decoder struct {
	cursor
}

// NewDecoder returns a Decoder whose capacity is the full length of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{cursor{buf: buf, remaining: len(buf)}}
}

// Next consumes n bytes of capacity and returns the region they occupy.
func (d *Decoder) Next(n int) []byte {
	return d.next(errors.PhaseDecode, n)
}

// Skip consumes n bytes without reading them.
func (d *Decoder) Skip(n int) {
	d.skip(errors.PhaseDecode, n)
}

// Remaining returns the unconsumed capacity.
func (d *Decoder) Remaining() int {
	return d.remaining
}
