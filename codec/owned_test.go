package codec

import (
	stderrors "errors"
	"testing"

	"github.com/wippyai/bridge/errors"
	"github.com/wippyai/bridge/resource"
)

type file struct {
	name    string
	dropped int
}

func (f *file) Drop() {
	f.dropped++
}

func TestOwnedCodec_Loopback(t *testing.T) {
	table := resource.NewTable()
	f := &file{name: "a.txt"}
	owner, err := resource.New(table, f)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	c := NewOwned[*file](table)
	got := Transfer[*resource.Owned[*file]](c, owner)

	if _, ok := owner.Get(); ok {
		t.Fatal("producer still owns the value after encode")
	}
	v, ok := got.Get()
	if !ok || v != f {
		t.Fatalf("consumer Get = %v, %v", v, ok)
	}

	owner.Drop()
	got.Drop()
	got.Drop()

	if f.dropped != 1 {
		t.Fatalf("Drop ran %d times, want 1", f.dropped)
	}
	if table.Len() != 0 {
		t.Fatalf("table leaked %d entries", table.Len())
	}
}

func TestOwnedCodec_Size(t *testing.T) {
	c := NewOwned[int](resource.NewTable())
	if c.Size() != (Raw[uintptr]{}).Size() {
		t.Fatalf("Size = %d, want pointer width", c.Size())
	}
	if c.Describe().Name != "handle" {
		t.Fatalf("Describe = %v", c.Describe())
	}
}

func TestOwnedCodec_InsideOption(t *testing.T) {
	table := resource.NewTable()
	c := NewProduct2[Option[*resource.Owned[string]], uint8](
		NewOption[*resource.Owned[string]](NewOwned[string](table)),
		Raw[uint8]{},
	)

	owner, _ := resource.New(table, "payload")
	got := Transfer(c, Pack2(Some(owner), uint8(3)))

	o, ok := got.V1.Get()
	if !ok {
		t.Fatal("option lost its value")
	}
	if v, _ := o.Get(); v != "payload" {
		t.Fatalf("value = %q", v)
	}
	if got.V2 != 3 {
		t.Fatalf("V2 = %d", got.V2)
	}
	o.Drop()

	absent := Transfer(c, Pack2(None[*resource.Owned[string]](), uint8(4)))
	if absent.V1.IsSome() {
		t.Fatal("absent owner decoded as present")
	}
	if table.Len() != 0 {
		t.Fatalf("table leaked %d entries", table.Len())
	}
}

func TestOwnedCodec_UseAfterRelease(t *testing.T) {
	table := resource.NewTable()
	owner, _ := resource.New(table, 1)
	owner.Release()

	err := expectViolation(t, func() {
		EncodeInto(make([]byte, 8), Codec[*resource.Owned[int]](NewOwned[int](table)), owner)
	})
	if err.Kind != errors.KindUseAfterRelease {
		t.Fatalf("Kind = %s", err.Kind)
	}
}

func TestOwnedCodec_DanglingHandle(t *testing.T) {
	table := resource.NewTable()
	buf := ScratchFor[uintptr](Raw[uintptr]{})
	EncodeInto[uintptr](buf, Raw[uintptr]{}, 0x99)

	err := expectViolation(t, func() {
		DecodeFrom[*resource.Owned[string]](buf, NewOwned[string](table))
	})
	if err.Kind != errors.KindNullHandle || err.Value != uintptr(0x99) {
		t.Fatalf("got %v", err)
	}
}

func TestOwnedCodec_WrongType(t *testing.T) {
	table := resource.NewTable()
	owner, _ := resource.New(table, 5)
	buf := ScratchFor[uintptr](Raw[uintptr]{})
	EncodeInto[*resource.Owned[int]](buf, NewOwned[int](table), owner)

	err := expectViolation(t, func() {
		DecodeFrom[*resource.Owned[string]](buf, NewOwned[string](table))
	})
	if err.Kind != errors.KindNullHandle {
		t.Fatalf("Kind = %s", err.Kind)
	}
}

func TestErrorCodec_Nil(t *testing.T) {
	table := resource.NewTable()
	c := NewError(table)
	buf := []byte{1, 1, 1, 1, 1, 1, 1, 1}
	EncodeInto[error](buf[:c.Size()], c, nil)

	for i, b := range buf[:c.Size()] {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0 for nil error", i, b)
		}
	}
	if err := DecodeFrom[error](buf, c); err != nil {
		t.Fatalf("decoded %v from nil", err)
	}
}

func TestErrorCodec_MovesError(t *testing.T) {
	table := resource.NewTable()
	c := NewError(table)
	sentinel := stderrors.New("disk full")

	got := Transfer[error](c, sentinel)
	if !stderrors.Is(got, sentinel) {
		t.Fatalf("got %v, want %v", got, sentinel)
	}
	if table.Len() != 0 {
		t.Fatalf("error left in table: %d entries", table.Len())
	}
}

func TestErrorCodec_ClosedTable(t *testing.T) {
	table := resource.NewTable()
	_ = table.Close()

	err := expectViolation(t, func() {
		EncodeInto[error](make([]byte, 8), NewError(table), stderrors.New("x"))
	})
	if err.Kind != errors.KindNullHandle || err.Phase != errors.PhaseEncode {
		t.Fatalf("got %v", err)
	}
}
