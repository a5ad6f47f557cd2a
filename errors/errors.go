package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // value into buffer
	PhaseDecode   Phase = "decode"   // buffer into value
	PhaseLayout   Phase = "layout"   // static layout derivation and audit
	PhaseBoundary Phase = "boundary" // host/guest memory and calls
	PhaseParse    Phase = "parse"    // composition expressions
)

// Kind categorizes the error
type Kind string

const (
	KindCapacityExhausted Kind = "capacity_exhausted"
	KindCapacityUnderused Kind = "capacity_underused"
	KindNullHandle        Kind = "null_handle"
	KindUseAfterRelease   Kind = "use_after_release"
	KindLayoutMismatch    Kind = "layout_mismatch"
	KindOutOfBounds       Kind = "out_of_bounds"
	KindUnsupported       Kind = "unsupported"
	KindInvalidInput      Kind = "invalid_input"
	KindAllocation        Kind = "allocation"
	KindCallFailed        Kind = "call_failed"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	GoType string
	Codec  string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.Codec != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Codec != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", codec ")
			b.WriteString(e.Codec)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("codec ")
			b.WriteString(e.Codec)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Codec != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Violation reports whether the error describes a breach of the codec
// contract rather than a recoverable integration failure.
func (e *Error) Violation() bool {
	switch e.Kind {
	case KindCapacityExhausted, KindCapacityUnderused, KindNullHandle, KindUseAfterRelease:
		return true
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Codec sets the codec description
func (b *Builder) Codec(c string) *Builder {
	b.err.Codec = c
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// CapacityExhausted reports a codec consuming more bytes than remain in its buffer
func CapacityExhausted(phase Phase, remaining, requested int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCapacityExhausted,
		Detail: fmt.Sprintf("requested %d bytes with %d remaining", requested, remaining),
		Value:  requested,
	}
}

// CapacityUnderused reports a traversal that finished with bytes left over
func CapacityUnderused(phase Phase, size, remaining int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCapacityUnderused,
		Detail: fmt.Sprintf("%d of %d bytes left unconsumed", remaining, size),
		Value:  remaining,
	}
}

// NullHandle reports a zero or dangling ownership handle
func NullHandle(phase Phase, goType string, handle uintptr) *Error {
	detail := "null handle signals an upstream allocation failure"
	if handle != 0 {
		detail = fmt.Sprintf("handle %#x does not name a live resource", handle)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindNullHandle,
		GoType: goType,
		Detail: detail,
		Value:  handle,
	}
}

// UseAfterRelease reports access to an owned value whose ownership was given away
func UseAfterRelease(goType string) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindUseAfterRelease,
		GoType: goType,
		Detail: "owned value was already released",
	}
}

// LayoutMismatch reports two layouts that disagree at path
func LayoutMismatch(path []string, detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindLayoutMismatch,
		Path:   path,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error for a memory range
func OutOfBounds(phase Phase, offset, length uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("range [%d, %d) out of bounds", offset, uint64(offset)+uint64(length)),
		Value:  offset,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// CallFailed reports a trap or host error raised while a boundary call ran.
func CallFailed(function string, cause error) *Error {
	return &Error{
		Phase:  PhaseBoundary,
		Kind:   KindCallFailed,
		Detail: "call " + function,
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
