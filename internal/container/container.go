// Package container tracks the measured width of the region a grid is drawn
// into.
//
// A Container subscribes to an Observer when mounted and releases the
// subscription exactly once when unmounted. Until the first measurement
// arrives its width is 0, which renderers treat as "unknown" and answer with
// flat, non-windowed output. An observer that can never measure leaves the
// width at 0 forever; that is a degraded mode, not an error.
package container

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Observer delivers width measurements of a host region. Observe starts the
// observation and returns the function that stops it. Observers may call
// onResize from any goroutine, including synchronously from Observe.
type Observer interface {
	Observe(onResize func(width int)) (release func())
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(onResize func(width int)) func()

// Observe implements Observer.
func (f ObserverFunc) Observe(onResize func(width int)) func() {
	return f(onResize)
}

// Container exposes the latest measured width of a host region.
type Container struct {
	width atomic.Int64

	mu        sync.Mutex
	listeners []func(width int)
	release   func()
	mounted   bool
	unmounted bool

	logger zerolog.Logger
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for mount lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Container) {
		c.logger = l.With().Str("component", "container").Logger()
	}
}

// New creates an unmounted Container with width 0.
func New(opts ...Option) *Container {
	c := &Container{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Width returns the last measured width, or 0 before the first measurement.
func (c *Container) Width() int {
	return int(c.width.Load())
}

// Mounted reports whether the container holds a live subscription.
func (c *Container) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mounted && !c.unmounted
}

// OnChange registers fn to be called after every width change.
func (c *Container) OnChange(fn func(width int)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Resize records a new measurement. Negative widths are stored as 0 and
// repeated widths do not notify listeners. Measurements arriving after
// Unmount are dropped.
func (c *Container) Resize(width int) {
	width = max(width, 0)

	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	prev := c.width.Swap(int64(width))
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	if prev == int64(width) {
		return
	}
	c.logger.Debug().Int("width", width).Int64("previous", prev).Msg("container resized")
	for _, fn := range listeners {
		fn(width)
	}
}

// Mount subscribes to obs. A nil observer is accepted and leaves the width
// at 0. Mounting twice, or after Unmount, is a no-op.
func (c *Container) Mount(obs Observer) {
	c.mu.Lock()
	if c.mounted || c.unmounted {
		c.mu.Unlock()
		c.logger.Debug().Msg("mount ignored: already mounted")
		return
	}
	c.mounted = true
	c.mu.Unlock()

	if obs == nil {
		c.logger.Debug().Msg("no observer, width stays unmeasured")
		return
	}

	release := obs.Observe(c.Resize)

	c.mu.Lock()
	if c.unmounted {
		// Unmounted while Observe was running.
		c.mu.Unlock()
		if release != nil {
			release()
		}
		return
	}
	c.release = release
	c.mu.Unlock()
	c.logger.Debug().Msg("container mounted")
}

// Unmount releases the observation. Only the first call releases; later
// calls return immediately.
func (c *Container) Unmount() {
	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		return
	}
	c.unmounted = true
	release := c.release
	c.release = nil
	c.listeners = nil
	c.mu.Unlock()

	if release != nil {
		release()
	}
	c.logger.Debug().Msg("container unmounted")
}

// Scope mounts a new Container on obs, runs fn and unmounts. The release
// also runs when fn panics; the panic is not recovered.
func Scope(obs Observer, fn func(c *Container) error, opts ...Option) error {
	c := New(opts...)
	c.Mount(obs)
	defer c.Unmount()
	return fn(c)
}
