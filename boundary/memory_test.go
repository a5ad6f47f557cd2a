package boundary

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/bridge/errors"
)

// memoryWASM is a minimal WASM module with 1 page of memory exported as "memory"
var memoryWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory" (6 bytes + string)
	0x02, 0x00, // kind: memory, index 0
}

const pageSize = 65536

// forward describes a host import the caller guest re-exports.
type forward struct {
	name   string
	params int // i32 parameters, no results
}

// callerWASM assembles a guest that imports each function from module and
// exports a function of the same name forwarding its arguments to it.
func callerWASM(module string, funcs ...forward) []byte {
	n := len(funcs)
	section := func(out []byte, id byte, body []byte) []byte {
		out = append(out, id)
		out = binary.AppendUvarint(out, uint64(len(body)))
		return append(out, body...)
	}
	name := func(out []byte, s string) []byte {
		out = binary.AppendUvarint(out, uint64(len(s)))
		return append(out, s...)
	}

	var types, imports, decls, exports, code []byte
	types = binary.AppendUvarint(types, uint64(n))
	imports = binary.AppendUvarint(imports, uint64(n))
	decls = binary.AppendUvarint(decls, uint64(n))
	exports = binary.AppendUvarint(exports, uint64(n))
	code = binary.AppendUvarint(code, uint64(n))
	for i, f := range funcs {
		types = append(types, 0x60)
		types = binary.AppendUvarint(types, uint64(f.params))
		for range f.params {
			types = append(types, 0x7f) // i32
		}
		types = append(types, 0x00)

		imports = name(imports, module)
		imports = name(imports, f.name)
		imports = append(imports, 0x00) // func
		imports = binary.AppendUvarint(imports, uint64(i))

		decls = binary.AppendUvarint(decls, uint64(i))

		exports = name(exports, f.name)
		exports = append(exports, 0x00) // func
		exports = binary.AppendUvarint(exports, uint64(n+i))

		body := []byte{0x00} // no locals
		for p := range f.params {
			body = append(body, 0x20) // local.get
			body = binary.AppendUvarint(body, uint64(p))
		}
		body = append(body, 0x10) // call
		body = binary.AppendUvarint(body, uint64(i))
		body = append(body, 0x0b) // end
		code = binary.AppendUvarint(code, uint64(len(body)))
		code = append(code, body...)
	}

	out := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	out = section(out, 0x01, types)
	out = section(out, 0x02, imports)
	out = section(out, 0x03, decls)
	out = section(out, 0x07, exports)
	return section(out, 0x0a, code)
}

// newCaller instantiates a caller guest for funcs imported from module.
func newCaller(t *testing.T, ctx context.Context, rt wazero.Runtime, module string, funcs ...forward) api.Module {
	t.Helper()
	caller, err := rt.InstantiateWithConfig(ctx, callerWASM(module, funcs...), wazero.NewModuleConfig().WithName("caller"))
	if err != nil {
		t.Fatalf("failed to instantiate caller: %v", err)
	}
	return caller
}

func newGuest(t *testing.T) (context.Context, wazero.Runtime, *Wrapper) {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	t.Cleanup(func() { rt.Close(ctx) })

	mod, err := rt.InstantiateWithConfig(ctx, memoryWASM, wazero.NewModuleConfig().WithName("guest"))
	if err != nil {
		t.Fatalf("failed to instantiate: %v", err)
	}
	return ctx, rt, WrapMemory(mod.ExportedMemory("memory"))
}

func TestWrapMemory_Nil(t *testing.T) {
	if mem := WrapMemory(nil); mem != nil {
		t.Error("expected nil for nil memory")
	}
}

func TestWrapper_ReadWrite(t *testing.T) {
	_, _, mem := newGuest(t)

	data := []byte{1, 2, 3, 4}
	if err := mem.Write(0, data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	read, err := mem.Read(0, 4)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	for i, b := range read {
		if b != data[i] {
			t.Errorf("byte %d: expected %d, got %d", i, data[i], b)
		}
	}

	// Read returns a copy.
	read[0] = 99
	again, _ := mem.Read(0, 1)
	if again[0] != 1 {
		t.Error("Read result aliases memory")
	}
}

func TestWrapper_ViewAliases(t *testing.T) {
	_, _, mem := newGuest(t)

	view, err := mem.View(100, 2)
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	if cap(view) != 2 {
		t.Fatalf("view cap = %d, want 2", cap(view))
	}
	view[0], view[1] = 7, 8

	read, _ := mem.Read(100, 2)
	if read[0] != 7 || read[1] != 8 {
		t.Fatalf("write through view not visible: %v", read)
	}
}

func TestWrapper_OutOfBounds(t *testing.T) {
	_, _, mem := newGuest(t)
	oob := &errors.Error{Phase: errors.PhaseBoundary, Kind: errors.KindOutOfBounds}

	if mem.Size() != pageSize {
		t.Fatalf("Size = %d, want %d", mem.Size(), pageSize)
	}
	if _, err := mem.Read(pageSize-2, 4); !oob.Is(err) {
		t.Errorf("Read: expected out_of_bounds, got %v", err)
	}
	if _, err := mem.View(pageSize, 1); !oob.Is(err) {
		t.Errorf("View: expected out_of_bounds, got %v", err)
	}
	if err := mem.Write(pageSize-1, []byte{1, 2}); !oob.Is(err) {
		t.Errorf("Write: expected out_of_bounds, got %v", err)
	}
	if _, err := mem.View(pageSize, 0); err != nil {
		t.Errorf("empty view at end of memory: %v", err)
	}
}
