package boundary

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/bridge/codec"
	"github.com/wippyai/bridge/errors"
)

const (
	// DefaultFrameBase leaves the first kilobyte of memory to the guest.
	DefaultFrameBase uint32 = 1024
	// DefaultFrameSize is the scratch space reserved for call buffers.
	DefaultFrameSize uint32 = 16 * 1024
)

// Config holds endpoint options.
type Config struct {
	Registerer prometheus.Registerer
	Logger     *zap.Logger
	MemoryName string
	FrameBase  uint32
	FrameSize  uint32
}

// Option configures an Endpoint.
type Option func(*Config)

// WithFrameBase sets the guest address the call frame starts at.
func WithFrameBase(base uint32) Option {
	return func(c *Config) { c.FrameBase = base }
}

// WithFrameSize sets how many bytes the call frame reserves.
func WithFrameSize(size uint32) Option {
	return func(c *Config) { c.FrameSize = size }
}

// WithMemory selects the guest memory export by name.
func WithMemory(name string) Option {
	return func(c *Config) { c.MemoryName = name }
}

// WithRegisterer registers the endpoint's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Config) { c.Registerer = reg }
}

// WithLogger sets the endpoint's logger. The package logger is used otherwise.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// Endpoint owns the guest memory and call frame shared by every crossing
// between one guest module and its host functions. Calls through one
// Endpoint are serialized. A host function may call back into the guest
// through the same Endpoint as long as it passes on the context it was
// given; nested calls stack their buffers on the frame.
type Endpoint struct {
	mem       *Wrapper
	frame     *Frame
	logger    *zap.Logger
	metrics   *metrics
	mu        sync.Mutex
	violation *errors.Error
	reraised  *errors.Error
}

// activeKey marks a context as running inside a call on an endpoint.
type activeKey struct{}

// NewEndpoint binds an endpoint to the memory exported by guest.
func NewEndpoint(guest api.Module, opts ...Option) (*Endpoint, error) {
	cfg := Config{
		MemoryName: "memory",
		FrameBase:  DefaultFrameBase,
		FrameSize:  DefaultFrameSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = Logger()
	}

	mem := WrapMemory(guest.ExportedMemory(cfg.MemoryName))
	if mem == nil {
		return nil, errors.New(errors.PhaseBoundary, errors.KindInvalidInput).
			Detail("module %q does not export memory %q", guest.Name(), cfg.MemoryName).
			Build()
	}

	frame, err := NewFrame(mem, cfg.FrameBase, cfg.FrameSize)
	if err != nil {
		return nil, err
	}

	return &Endpoint{
		mem:     mem,
		frame:   frame,
		logger:  cfg.Logger,
		metrics: newMetrics(cfg.Registerer),
	}, nil
}

// Memory returns the guest memory the endpoint exchanges buffers through.
func (ep *Endpoint) Memory() *Wrapper {
	return ep.mem
}

// Frame returns the endpoint's call frame.
func (ep *Endpoint) Frame() *Frame {
	return ep.frame
}

// Call encodes v into the frame and invokes fn with the buffer address as
// its only argument. A contract violation raised by the host side panics
// here, on the caller's goroutine.
//
// fn must be exported by a guest module. wazero does not allow calling host
// module exports directly, so host functions are reached through a guest
// that imports them. That guest cannot be the module whose memory backs ep,
// since it must be instantiated after the host module it imports.
func Call[T any](ctx context.Context, ep *Endpoint, fn api.Function, c codec.Codec[T], v T) error {
	if fn == nil {
		return errors.InvalidInput(errors.PhaseBoundary, "nil function")
	}
	name := functionName(fn)

	ctx, unlock := ep.enter(ctx)
	defer unlock()

	mark := ep.frame.Mark()
	defer ep.frame.Release(mark)

	ptr, err := Send(ep.frame, c, v)
	if err != nil {
		return err
	}
	ep.metrics.call(name, c.Size())
	ep.logger.Debug("boundary call",
		zap.String("function", name),
		zap.Uint32("ptr", ptr),
		zap.Int("size", c.Size()),
	)

	_, err = fn.Call(ctx, uint64(ptr))
	ep.reraise()
	if err != nil {
		return errors.CallFailed(name, err)
	}
	return nil
}

// CallResult is Call for functions that also write a result. fn receives
// the argument address and the address of a result buffer sized for rc.
func CallResult[A, R any](ctx context.Context, ep *Endpoint, fn api.Function, ac codec.Codec[A], rc codec.Codec[R], v A) (R, error) {
	var zero R
	if fn == nil {
		return zero, errors.InvalidInput(errors.PhaseBoundary, "nil function")
	}
	name := functionName(fn)

	ctx, unlock := ep.enter(ctx)
	defer unlock()

	mark := ep.frame.Mark()
	defer ep.frame.Release(mark)

	argPtr, err := Send(ep.frame, ac, v)
	if err != nil {
		return zero, err
	}
	retPtr, err := ep.frame.Alloc(uint32(rc.Size()), 1)
	if err != nil {
		return zero, err
	}
	ep.metrics.call(name, ac.Size())
	ep.logger.Debug("boundary call",
		zap.String("function", name),
		zap.Uint32("ptr", argPtr),
		zap.Uint32("ret", retPtr),
		zap.Int("size", ac.Size()),
	)

	_, err = fn.Call(ctx, uint64(argPtr), uint64(retPtr))
	ep.reraise()
	if err != nil {
		return zero, errors.CallFailed(name, err)
	}

	r, err := Receive(ep.mem, retPtr, rc)
	if err != nil {
		return zero, err
	}
	ep.metrics.received(rc.Size())
	return r, nil
}

// enter takes the endpoint lock unless ctx already belongs to a call on ep.
func (ep *Endpoint) enter(ctx context.Context) (context.Context, func()) {
	if active, _ := ctx.Value(activeKey{}).(*Endpoint); active == ep {
		return ctx, func() {}
	}
	ep.mu.Lock()
	ep.violation = nil
	ep.reraised = nil
	return context.WithValue(ctx, activeKey{}, ep), ep.mu.Unlock
}

// functionName prefers the name section, then the first export name.
func functionName(fn api.Function) string {
	def := fn.Definition()
	if name := def.Name(); name != "" {
		return name
	}
	if names := def.ExportNames(); len(names) > 0 {
		return names[0]
	}
	return def.DebugName()
}

// guard runs inside a host function. It records a contract violation and
// lets the panic continue so wazero aborts the call.
func (ep *Endpoint) guard(function string) {
	r := recover()
	if r == nil {
		return
	}
	if err, ok := r.(*errors.Error); ok && err.Violation() {
		ep.violation = err
		if err == ep.reraised {
			// Already counted by the nested call that raised it.
			panic(r)
		}
		ep.metrics.violation(string(err.Kind))
		ep.logger.Error("contract violation in host function",
			zap.String("function", function),
			zap.Error(err),
		)
	}
	panic(r)
}

// reraise restores fail-fast after wazero turned a host panic into an error.
func (ep *Endpoint) reraise() {
	if err := ep.violation; err != nil {
		ep.violation = nil
		ep.reraised = err
		panic(err)
	}
}

// HostModuleBuilder collects host functions that decode their arguments
// from the endpoint's memory.
type HostModuleBuilder struct {
	runtime wazero.Runtime
	ep      *Endpoint
	builder wazero.HostModuleBuilder
	name    string
	funcs   []string
}

// NewHostModule starts building a host module with the given name.
func NewHostModule(rt wazero.Runtime, ep *Endpoint, name string) *HostModuleBuilder {
	return &HostModuleBuilder{
		runtime: rt,
		ep:      ep,
		builder: rt.NewHostModuleBuilder(name),
		name:    name,
	}
}

// Func adds a raw function to the host module builder.
func (b *HostModuleBuilder) Func(name string, fn api.GoModuleFunc, params, results []api.ValueType) *HostModuleBuilder {
	b.builder.NewFunctionBuilder().
		WithGoModuleFunction(fn, params, results).
		Export(name)
	b.funcs = append(b.funcs, name)
	return b
}

// Build instantiates the host module into the wazero runtime.
func (b *HostModuleBuilder) Build(ctx context.Context) (api.Module, error) {
	mod, err := b.builder.Instantiate(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseBoundary, errors.KindInvalidInput, err, "instantiate host module "+b.name)
	}
	b.ep.logger.Debug("host module instantiated",
		zap.String("module", b.name),
		zap.Strings("functions", b.funcs),
	)
	return mod, nil
}

// Export adds a host function taking one buffer address. The buffer is
// decoded with c and passed to fn.
func Export[T any](b *HostModuleBuilder, name string, c codec.Codec[T], fn func(context.Context, T)) *HostModuleBuilder {
	ep := b.ep
	handler := func(ctx context.Context, _ api.Module, stack []uint64) {
		defer ep.guard(name)
		v, err := Receive(ep.mem, api.DecodeU32(stack[0]), c)
		if err != nil {
			panic(err)
		}
		ep.metrics.received(c.Size())
		fn(ctx, v)
	}
	return b.Func(name, handler, []api.ValueType{api.ValueTypeI32}, nil)
}

// ExportResult adds a host function taking an argument address and a
// result address. The result of fn is encoded into the result buffer.
func ExportResult[A, R any](b *HostModuleBuilder, name string, ac codec.Codec[A], rc codec.Codec[R], fn func(context.Context, A) R) *HostModuleBuilder {
	ep := b.ep
	handler := func(ctx context.Context, _ api.Module, stack []uint64) {
		defer ep.guard(name)
		v, err := Receive(ep.mem, api.DecodeU32(stack[0]), ac)
		if err != nil {
			panic(err)
		}
		ep.metrics.received(ac.Size())

		r := fn(ctx, v)

		view, err := ep.mem.View(api.DecodeU32(stack[1]), uint32(rc.Size()))
		if err != nil {
			panic(err)
		}
		codec.EncodeInto(view, rc, r)
	}
	return b.Func(name, handler, []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, nil)
}
