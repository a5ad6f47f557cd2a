// Package bridge provides fixed-layout codecs for passing values across a
// foreign-function boundary as a single buffer pointer.
//
// Each side of the boundary describes a value with the same static codec
// composition. The producer encodes into a caller-supplied buffer of exactly
// the codec's size, hands the buffer address across the call, and the consumer
// decodes the value from that address. No header, tag, or version is written;
// the codec type is the only source of layout information.
//
// # Architecture Overview
//
//	bridge/              Root package with Memory and Allocator interfaces
//	├── codec/           Codec contract, Encoder/Decoder cursor, built-in codecs, glue
//	├── resource/        Handle table backing ownership-transfer codecs
//	├── layout/          Static layout trees, slot tables, WIT audit
//	├── boundary/        Buffers in WASM linear memory via wazero
//	├── errors/          Structured error and contract-violation values
//	└── cmd/bridgelayout Layout inspection CLI
//
// # Quick Start
//
//	c := codec.NewProduct2(codec.Raw[uint8]{}, codec.Raw[float32]{})
//	buf := codec.ScratchFor(c)
//	codec.EncodeInto(buf, c, codec.Tuple2[uint8, float32]{V1: 1, V2: 2})
//	v := codec.DecodeFrom(buf, c)
//
// # Wire Layout
//
// Sibling values are placed in reverse visiting order: the cursor counts the
// remaining capacity down and each value occupies the bytes just below the
// previous one. A (u8, f32) product therefore stores the f32 at offset 0 and
// the u8 at offset 4. Both sides must reproduce this exactly.
package bridge
