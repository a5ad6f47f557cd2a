package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseLayout,
				Kind:   KindLayoutMismatch,
				Path:   []string{"args", "1", "payload"},
				GoType: "codec.Option[uint8]",
				Codec:  "option<u8>",
				Detail: "size 2 != 5",
			},
			contains: []string{"[layout]", "layout_mismatch", "args.1.payload", "codec.Option[uint8]", "option<u8>", "size 2 != 5"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindCapacityExhausted,
			},
			contains: []string{"[decode]", "capacity_exhausted"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseBoundary,
				Kind:   KindAllocation,
				Detail: "frame full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[boundary]", "allocation", "frame full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseBoundary,
		Kind:  KindOutOfBounds,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindNullHandle,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindNullHandle}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindNullHandle}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindNullHandle}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestError_Violation(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindCapacityExhausted, true},
		{KindCapacityUnderused, true},
		{KindNullHandle, true},
		{KindUseAfterRelease, true},
		{KindLayoutMismatch, false},
		{KindOutOfBounds, false},
		{KindInvalidInput, false},
		{KindCallFailed, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &Error{Kind: tt.kind}
			if got := err.Violation(); got != tt.want {
				t.Errorf("Violation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindCapacityExhausted).
		Path("tuple", "V2").
		GoType("uint32").
		Codec("u32").
		Value(4).
		Cause(cause).
		Detail("requested %d with %d remaining", 4, 1).
		Build()

	if err.Phase != PhaseEncode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseEncode)
	}
	if err.Kind != KindCapacityExhausted {
		t.Errorf("Kind = %v, want %v", err.Kind, KindCapacityExhausted)
	}
	if len(err.Path) != 2 || err.Path[0] != "tuple" || err.Path[1] != "V2" {
		t.Errorf("Path = %v, want [tuple V2]", err.Path)
	}
	if err.GoType != "uint32" {
		t.Errorf("GoType = %v, want 'uint32'", err.GoType)
	}
	if err.Codec != "u32" {
		t.Errorf("Codec = %v, want 'u32'", err.Codec)
	}
	if err.Value != 4 {
		t.Errorf("Value = %v, want 4", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "requested 4 with 1 remaining" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
		text  string
	}{
		{"capacity exhausted", CapacityExhausted(PhaseEncode, 1, 4), PhaseEncode, KindCapacityExhausted, "requested 4 bytes with 1 remaining"},
		{"capacity underused", CapacityUnderused(PhaseDecode, 9, 2), PhaseDecode, KindCapacityUnderused, "2 of 9 bytes"},
		{"null handle", NullHandle(PhaseDecode, "*resource.Owned[string]", 0), PhaseDecode, KindNullHandle, "upstream allocation failure"},
		{"dangling handle", NullHandle(PhaseDecode, "string", 0x10), PhaseDecode, KindNullHandle, "0x10"},
		{"use after release", UseAfterRelease("string"), PhaseEncode, KindUseAfterRelease, "already released"},
		{"layout mismatch", LayoutMismatch([]string{"0"}, "size %d != %d", 1, 2), PhaseLayout, KindLayoutMismatch, "size 1 != 2"},
		{"unsupported", Unsupported(PhaseLayout, "string"), PhaseLayout, KindUnsupported, "string"},
		{"out of bounds", OutOfBounds(PhaseBoundary, 65530, 16), PhaseBoundary, KindOutOfBounds, "[65530, 65546)"},
		{"allocation", AllocationFailed(PhaseBoundary, 32, 1), PhaseBoundary, KindAllocation, "32 bytes"},
		{"invalid input", InvalidInput(PhaseParse, "unexpected ')'"), PhaseParse, KindInvalidInput, "unexpected ')'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.text) {
				t.Errorf("Error() = %q, want it to contain %q", tt.err.Error(), tt.text)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("wasm trap")
	err := Wrap(PhaseBoundary, KindInvalidInput, cause, "call consume")
	if !errors.Is(err, cause) {
		t.Error("Wrap should keep the cause in the chain")
	}
	var target *Error
	if !errors.As(err, &target) {
		t.Fatal("errors.As should find *Error")
	}
	if target.Detail != "call consume" {
		t.Errorf("Detail = %q", target.Detail)
	}
}

func TestCallFailed(t *testing.T) {
	cause := errors.New("wasm error: unreachable")
	err := CallFailed("consume", cause)
	if err.Kind != KindCallFailed || err.Phase != PhaseBoundary {
		t.Fatalf("got %s/%s", err.Phase, err.Kind)
	}
	if err.Violation() {
		t.Error("a failed call is not a contract violation")
	}
	if !errors.Is(err, cause) {
		t.Error("CallFailed should keep the cause in the chain")
	}
	if err.Detail != "call consume" {
		t.Errorf("Detail = %q", err.Detail)
	}
}
