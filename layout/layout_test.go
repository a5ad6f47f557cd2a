package layout

import (
	"testing"
)

func nested() Node {
	return Product(
		Optional(Product(Leaf("i64", 8), Leaf("bool", 1))),
		Product(Leaf("u8", 1), Leaf("f32", 4)),
	)
}

func TestSizes(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want int
	}{
		{"leaf", Leaf("u32", 4), 4},
		{"handle", Handle(""), PointerSize},
		{"empty product", Product(), 0},
		{"product", Product(Leaf("u8", 1), Leaf("u32", 4), Leaf("u16", 2)), 7},
		{"optional", Optional(Leaf("u64", 8)), 9},
		{"optional of empty", Optional(Product()), 1},
		{"nested", nested(), 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Size != tt.want {
				t.Errorf("Size = %d, want %d", tt.node.Size, tt.want)
			}
		})
	}
}

func TestSlots_ReversePlacement(t *testing.T) {
	slots := Slots(Product(Leaf("u8", 1), Leaf("u32", 4)))
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if slots[0].Path != "$.0" || slots[0].Offset != 4 || slots[0].Size != 1 {
		t.Errorf("first slot = %+v, want $.0 at [4, 5)", slots[0])
	}
	if slots[1].Path != "$.1" || slots[1].Offset != 0 || slots[1].Size != 4 {
		t.Errorf("second slot = %+v, want $.1 at [0, 4)", slots[1])
	}
}

func TestSlots_Nested(t *testing.T) {
	want := []Slot{
		{Path: "$.0.tag", Name: "bool", Offset: 14, Size: 1},
		{Path: "$.0.some.0", Name: "i64", Offset: 6, Size: 8},
		{Path: "$.0.some.1", Name: "bool", Offset: 5, Size: 1},
		{Path: "$.1.0", Name: "u8", Offset: 4, Size: 1},
		{Path: "$.1.1", Name: "f32", Offset: 0, Size: 4},
	}

	got := Slots(nested())
	if len(got) != len(want) {
		t.Fatalf("got %d slots, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Path != want[i].Path || got[i].Name != want[i].Name ||
			got[i].Offset != want[i].Offset || got[i].Size != want[i].Size {
			t.Errorf("slot %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSlots_CoverBufferExactly(t *testing.T) {
	n := nested()
	covered := make([]int, n.Size)
	for _, s := range Slots(n) {
		for i := s.Offset; i < s.End(); i++ {
			covered[i]++
		}
	}
	for i, c := range covered {
		if c != 1 {
			t.Errorf("byte %d covered %d times", i, c)
		}
	}
}

func TestSlots_Labels(t *testing.T) {
	n := Product(Leaf("u32", 4).WithLabel("id"), Handle("own").WithLabel("file"))
	slots := Slots(n)
	if slots[0].Path != "$.id" || slots[1].Path != "$.file" {
		t.Errorf("paths = %q, %q", slots[0].Path, slots[1].Path)
	}
	if slots[1].Kind != KindHandle {
		t.Errorf("Kind = %v, want handle", slots[1].Kind)
	}
}

func TestNode_String(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{Leaf("u8", 1), "u8"},
		{Product(), "()"},
		{nested(), "(option<(i64, bool)>, (u8, f32))"},
		{Optional(Handle("")), "option<handle>"},
		{Opaque(3), "opaque[3]"},
	}
	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

type sized int

func (s sized) Size() int { return int(s) }

type described struct{}

func (described) Size() int      { return 2 }
func (described) Describe() Node { return Leaf("u16", 2) }

func TestOf(t *testing.T) {
	if n := Of(sized(6)); n.Kind != KindOpaque || n.Size != 6 {
		t.Errorf("Of(sized) = %+v, want opaque of 6", n)
	}
	if n := Of(described{}); n.Kind != KindLeaf || n.Name != "u16" {
		t.Errorf("Of(described) = %+v, want u16 leaf", n)
	}
}

func TestKind_String(t *testing.T) {
	if KindOptional.String() != "optional" {
		t.Errorf("KindOptional.String() = %q", KindOptional.String())
	}
	if Kind(42).String() != "kind(42)" {
		t.Errorf("Kind(42).String() = %q", Kind(42).String())
	}
}
