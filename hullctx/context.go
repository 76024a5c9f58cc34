package hullctx

import (
	"context"
	"math/big"

	"github.com/rs/zerolog"
)

// Context is the ambient object every hull package function accepts
// as its first argument. It is never copied: callers share a single
// *Context across a whole ConvexHull/MapConvexHull call tree.
type Context struct {
	// Zero and One are shared immutable big.Int constants, avoiding a
	// fresh allocation every time a loop needs to compare against or
	// seed an accumulator with either value.
	Zero *big.Int
	One  *big.Int

	// Debug switches the internal invariant breaks reported through
	// Violate (an unexpected LP result, a failed wrap step) between a
	// panic and a returned error: true panics immediately during
	// development, false poisons the context and returns the reported
	// error wrapped with a "hullctx:" prefix.
	Debug bool

	// Log receives one event per facet Extend discovers and per Wrap
	// outcome when non-nil; nil disables tracing entirely at zero cost.
	Log *zerolog.Logger

	ctx context.Context
	err error
}

// Option configures a Context at construction time.
type Option func(*Context)

// WithDebug turns on panic-on-violation mode.
func WithDebug(debug bool) Option {
	return func(c *Context) { c.Debug = debug }
}

// WithLogger attaches a structured logger for hull-algorithm tracing.
func WithLogger(log *zerolog.Logger) Option {
	return func(c *Context) { c.Log = log }
}

// WithContext attaches an external cancellation/timeout signal,
// checked by Check() before every expensive recursive step.
func WithContext(ctx context.Context) Option {
	return func(c *Context) { c.ctx = ctx }
}

// New builds a Context with the given options applied over
// production-safe defaults (Debug off, no logger, Background
// cancellation context).
func New(opts ...Option) *Context {
	c := &Context{
		Zero: big.NewInt(0),
		One:  big.NewInt(1),
		ctx:  context.Background(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Err returns the first error ever recorded via Poison, or nil if the
// context is still clean.
func (c *Context) Err() error {
	return c.err
}

// Poisoned reports whether a prior call already recorded a failure;
// every hull algorithm checks this before doing any work so a single
// failure deep in a recursive call tree aborts the whole operation
// instead of producing a partial, silently wrong result.
func (c *Context) Poisoned() bool {
	return c.err != nil
}

// Poison records err as the context's sticky failure and returns it
// unchanged, unless the context was already poisoned, in which case the
// original failure is returned instead — the first cause wins.
func (c *Context) Poison(err error) error {
	if err == nil {
		return nil
	}
	if c.err == nil {
		c.err = err
	}
	return c.err
}

// Check reports the sticky error if one is set, otherwise the
// external context's cancellation error if any, otherwise nil.
// Every recursive hull step calls Check before doing real work,
// mirroring buildCapMap's ctx.Err() guard in the teacher's flow
// package.
func (c *Context) Check() error {
	if c.err != nil {
		return c.err
	}
	if c.ctx != nil {
		if err := c.ctx.Err(); err != nil {
			return c.Poison(err)
		}
	}
	return nil
}

// Violate reports a broken internal invariant: it panics immediately
// if c.Debug is set, otherwise poisons the context and returns the
// wrapped error. Hull algorithms call this for conditions that should
// never occur on well-formed input (wrong dimension, an unbounded
// recursion base case) rather than plumbing a distinct error type
// through every call site.
func (c *Context) Violate(err error) error {
	if c.Debug {
		panic(err)
	}
	return c.Poison(wrapf(err))
}

// Trace logs msg with fields at debug level when a logger is
// attached; a no-op otherwise so call sites never need a nil check.
func (c *Context) Trace(msg string, fields map[string]any) {
	if c.Log == nil {
		return
	}
	ev := c.Log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}
