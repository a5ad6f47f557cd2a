// Package codec implements fixed-layout codecs for values crossing a
// foreign-function boundary.
//
// Every codec has a size known from its static composition alone. A value is
// encoded into a caller-supplied buffer of exactly that many bytes, the
// buffer's address crosses the boundary, and the other side decodes it with a
// codec of identical composition. There is no header, tag or version: the
// codec type is the only description of the bytes.
//
// # Building Codecs
//
//	point := codec.NewProduct2(codec.Raw[int64]{}, codec.Raw[bool]{})
//	maybe := codec.NewOption(point)
//
//	buf := codec.ScratchFor(maybe)
//	codec.EncodeInto(buf, maybe, codec.Some(codec.Pack2(int64(-8), true)))
//	v := codec.DecodeFrom(buf, maybe)
//
// # Placement
//
// The Encoder and Decoder hold a single remaining-capacity counter that
// starts at the top-level size. Each leaf subtracts its size and then
// occupies [remaining, remaining+size). Siblings therefore land in reverse
// visiting order: for a product of a u8 then a u32, the u32 is at offset 0
// and the u8 at offset 4. The counterpart implementation must place bytes
// the same way. See package layout for the static slot table.
//
// # Contract Violations
//
// Layout mismatches between the two sides are not detected. Consuming more
// capacity than remains, leaving capacity unconsumed at top level, and
// decoding a null ownership handle are programming defects: they are logged
// at error level and the goroutine panics with an *errors.Error. Building
// with the bridge_unchecked tag removes the capacity assertions; the null
// handle check is always active.
//
// # Ownership
//
// OwnedCodec moves a resource.Owned value: Encode releases the producer's
// ownership and writes its handle, Decode adopts the handle on the consumer
// side. ErrorCodec does the same for a Go error, with nil as handle 0.
package codec
