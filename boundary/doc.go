// Package boundary carries codec buffers across a wazero call boundary.
//
// Buffers live in a guest module's linear memory. A Frame reserves a region
// of that memory and hands out buffer slots the way a call stack would; the
// producer encodes straight into the memory view, passes the slot's address
// as an i32, and the consumer decodes from the same address.
//
// # Endpoints
//
//	ep, _ := boundary.NewEndpoint(guest, boundary.WithFrameBase(1024))
//
//	host := boundary.NewHostModule(rt, ep, "env")
//	boundary.Export(host, "log_point", point, func(ctx context.Context, p Point) {
//	    ...
//	})
//	mod, _ := host.Build(ctx)
//
//	err := boundary.Call(ctx, ep, mod.ExportedFunction("log_point"), point, p)
//
// # Failure Modes
//
// Out-of-range pointers and exhausted frames are ordinary errors: they come
// from the integration, not from a codec. A codec contract violation raised
// while a host function decodes is re-raised as a panic on the calling
// goroutine after wazero unwinds, so it is never reduced to a call error.
package boundary
