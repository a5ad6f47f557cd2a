package codec

import (
	"github.com/wippyai/bridge/errors"
	"github.com/wippyai/bridge/layout"
	"github.com/wippyai/bridge/resource"
)

// ErrorCodec moves a Go error across the boundary as one handle. A nil
// error is handle 0; any other error is moved into Table on encode and out
// of it on decode.
type ErrorCodec struct {
	Table *resource.Table
}

// NewError returns a status codec over table.
func NewError(table *resource.Table) ErrorCodec {
	return ErrorCodec{Table: table}
}

func (ErrorCodec) Size() int {
	return layout.PointerSize
}

func (c ErrorCodec) Encode(e *Encoder, err error) {
	var h resource.Handle
	if err != nil {
		h = c.Table.Insert(resource.TypeStatus, err)
		if h == 0 {
			// A closed table would turn the error into success.
			fatal(errors.NullHandle(errors.PhaseEncode, "error", 0))
		}
	}
	Raw[uintptr]{}.Encode(e, uintptr(h))
}

func (c ErrorCodec) Decode(d *Decoder) error {
	h := Raw[uintptr]{}.Decode(d)
	if h == 0 {
		return nil
	}
	v, ok := c.Table.Take(resource.Handle(h), resource.TypeStatus)
	if !ok {
		fatal(errors.NullHandle(errors.PhaseDecode, "error", h))
	}
	return v.(error)
}

func (ErrorCodec) Describe() layout.Node {
	return layout.Handle("status")
}
