package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/wippyai/bridge/layout"
)

func TestProduct_SizeAdditivity(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"empty", Product0{}.Size(), 0},
		{"one", NewProduct1[uint32](Raw[uint32]{}).Size(), 4},
		{"u8 u32", NewProduct2[uint8, uint32](Raw[uint8]{}, Raw[uint32]{}).Size(), 5},
		{"i64 bool f32", NewProduct3[int64, bool, float32](Raw[int64]{}, Raw[bool]{}, Raw[float32]{}).Size(), 13},
		{"nested unit", NewProduct2[Unit, uint16](Product0{}, Raw[uint16]{}).Size(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("Size = %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestProduct0_RoundTrip(t *testing.T) {
	buf := ScratchFor[Unit](Product0{})
	if len(buf) != 0 {
		t.Fatalf("scratch len = %d", len(buf))
	}
	EncodeInto[Unit](buf, Product0{}, Unit{})
	if got := DecodeFrom[Unit](buf, Product0{}); got != (Unit{}) {
		t.Fatalf("got %v", got)
	}
}

func TestProduct_ReversePlacement(t *testing.T) {
	c := NewProduct2[uint8, uint32](Raw[uint8]{}, Raw[uint32]{})
	buf := ScratchFor(c)
	EncodeInto(buf, c, Pack2(uint8(0xAB), uint32(0x01020304)))

	if got := binary.NativeEndian.Uint32(buf[0:4]); got != 0x01020304 {
		t.Fatalf("u32 at offset 0 = %#x, want 0x01020304", got)
	}
	if buf[4] != 0xAB {
		t.Fatalf("u8 at offset 4 = %#x, want 0xab", buf[4])
	}
}

func TestProduct_MaxArity(t *testing.T) {
	u := Raw[uint8]{}
	c := NewProduct12[uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8](
		u, u, u, u, u, u, u, u, u, u, u, u)
	if c.Size() != MaxArity {
		t.Fatalf("Size = %d, want %d", c.Size(), MaxArity)
	}

	v := Pack12[uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8, uint8](
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)
	buf := ScratchFor(c)
	EncodeInto(buf, c, v)

	// First component at the highest offset.
	for i := 0; i < MaxArity; i++ {
		if buf[i] != byte(MaxArity-i) {
			t.Fatalf("buf[%d] = %d, want %d", i, buf[i], MaxArity-i)
		}
	}
	if got := DecodeFrom(buf, c); got != v {
		t.Fatalf("round trip = %+v, want %+v", got, v)
	}
}

type nestedValue = Tuple2[Option[pairIB], pairUF]

type (
	pairIB = Tuple2[int64, bool]
	pairUF = Tuple2[uint8, float32]
)

func nestedCodec() Product2[Option[pairIB], pairUF] {
	return NewProduct2[Option[pairIB], pairUF](
		NewOption[pairIB](NewProduct2[int64, bool](Raw[int64]{}, Raw[bool]{})),
		NewProduct2[uint8, float32](Raw[uint8]{}, Raw[float32]{}),
	)
}

func TestProduct_Nesting(t *testing.T) {
	c := nestedCodec()
	want := nestedValue{
		V1: Some(Pack2(int64(-8), true)),
		V2: Pack2(uint8(1), float32(2.0)),
	}

	if c.Size() != 15 {
		t.Fatalf("Size = %d, want 15", c.Size())
	}

	buf := ScratchFor(c)
	EncodeInto(buf, c, want)

	if got := DecodeFrom(buf, c); got != want {
		t.Fatalf("round trip = %+v, want %+v", got, want)
	}

	// Bytes land where the static slot table says.
	if f := math.Float32frombits(binary.NativeEndian.Uint32(buf[0:4])); f != 2.0 {
		t.Errorf("f32 at 0 = %v", f)
	}
	if buf[4] != 1 {
		t.Errorf("u8 at 4 = %d", buf[4])
	}
	if buf[5] != 1 {
		t.Errorf("bool at 5 = %d", buf[5])
	}
	if i := int64(binary.NativeEndian.Uint64(buf[6:14])); i != -8 {
		t.Errorf("i64 at 6 = %d", i)
	}
	if buf[14] != 1 {
		t.Errorf("tag at 14 = %d", buf[14])
	}
}

func TestProduct_DescribeMatchesEngine(t *testing.T) {
	c := nestedCodec()
	n := layout.Of(c)

	if s := n.String(); s != "(option<(i64, bool)>, (u8, f32))" {
		t.Fatalf("String = %q", s)
	}
	if n.Size != c.Size() {
		t.Fatalf("layout size %d != codec size %d", n.Size, c.Size())
	}

	want := map[string]int{
		"$.0.tag":    14,
		"$.0.some.0": 6,
		"$.0.some.1": 5,
		"$.1.0":      4,
		"$.1.1":      0,
	}
	slots := layout.Slots(n)
	if len(slots) != len(want) {
		t.Fatalf("got %d slots, want %d", len(slots), len(want))
	}
	for _, s := range slots {
		off, ok := want[s.Path]
		if !ok {
			t.Errorf("unexpected slot %q", s.Path)
			continue
		}
		if s.Offset != off {
			t.Errorf("slot %s offset = %d, want %d", s.Path, s.Offset, off)
		}
	}
}
