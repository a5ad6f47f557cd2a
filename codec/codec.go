package codec

// Codec binds a value type to a fixed byte count and the procedures that
// move a value into and out of that many bytes.
//
// Size must depend only on the codec's static composition. Encode must
// consume exactly Size bytes of the Encoder, directly or through child
// codecs. Decode may only be applied to bytes written by a codec of
// identical layout; anything else is undefined and is not detected.
//
// Encode is called at most once per value. Codecs that transfer ownership
// leave the encoded value unusable by the producer.
type Codec[T any] interface {
	Size() int
	Encode(e *Encoder, v T)
	Decode(d *Decoder) T
}
