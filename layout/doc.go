// Package layout describes the static wire layout of codec compositions.
//
// A Node tree mirrors a codec tree: leaves are raw byte copies or
// ownership handles, inner nodes are products and optionals. Slots flattens
// a tree into the byte ranges the Encoder assigns, using the same
// reverse-placement arithmetic: a cursor starts at the total size and every
// leaf claims the bytes just below it.
//
//	(option<(i64, bool)>, (u8, f32))     SIZE 15
//
//	$.0.tag      [14, 15)  bool
//	$.0.some.0   [ 6, 14)  i64
//	$.0.some.1   [ 5,  6)  bool
//	$.1.0        [ 4,  5)  u8
//	$.1.1        [ 0,  4)  f32
//
// The slot table is what an independently maintained counterpart must
// reproduce bit-for-bit. Compare checks two trees structurally and FromWIT
// derives the tree a counterpart declares in WIT, so a composition chosen on
// one side can be audited against the other before deployment.
package layout
