package codec

import "github.com/wippyai/bridge/layout"

// Option is a value that may be absent.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.some
}

// OrElse returns the value if present, def otherwise.
func (o Option[T]) OrElse(def T) T {
	if o.some {
		return o.value
	}
	return def
}

// OptionCodec encodes a presence flag followed by a payload region of
// Inner.Size bytes. The region is reserved even when the value is absent,
// so the size never depends on presence.
type OptionCodec[T any] struct {
	Inner Codec[T]
}

// NewOption wraps inner in an optional codec.
func NewOption[T any](inner Codec[T]) OptionCodec[T] {
	return OptionCodec[T]{Inner: inner}
}

func (c OptionCodec[T]) Size() int {
	return 1 + c.Inner.Size()
}

func (c OptionCodec[T]) Encode(e *Encoder, v Option[T]) {
	Raw[bool]{}.Encode(e, v.some)
	if v.some {
		c.Inner.Encode(e, v.value)
		return
	}
	e.Skip(c.Inner.Size())
}

func (c OptionCodec[T]) Decode(d *Decoder) Option[T] {
	if (Raw[bool]{}).Decode(d) {
		return Some(c.Inner.Decode(d))
	}
	d.Skip(c.Inner.Size())
	return None[T]()
}

func (c OptionCodec[T]) Describe() layout.Node {
	return layout.Optional(layout.Of(c.Inner))
}
