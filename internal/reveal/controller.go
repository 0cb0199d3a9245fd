package reveal

import (
	"fmt"
	"sync"
)

// Option configures a Controller.
type Option func(*Controller)

// WithOnReveal registers fn to run once, on the path that reveals the
// section. Hooks run synchronously and outside the controller's lock.
func WithOnReveal(fn func()) Option {
	return func(c *Controller) {
		c.hooks = append(c.hooks, fn)
	}
}

// WithName labels the controller in String output and logs.
func WithName(name string) Option {
	return func(c *Controller) {
		c.name = name
	}
}

// Controller tracks whether one section has been revealed. Reveal is sticky:
// once the visible fraction of the region reaches the threshold the
// controller reports revealed forever and stops watching.
type Controller struct {
	name      string
	threshold float64
	hooks     []func()
	done      chan struct{}

	mu       sync.Mutex
	region   Rect
	revealed bool
	closed   bool
	cancel   func()
}

// Observe mounts a controller for region on w. If the region is already
// visible enough the controller reveals before Observe returns; otherwise it
// subscribes to w until the threshold is reached or Close is called.
func Observe(w *Watcher, region Rect, threshold float64, opts ...Option) (*Controller, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("reveal threshold %g out of range [0,1]", threshold)
	}

	c := &Controller{
		threshold: threshold,
		region:    region,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.evaluate(w.Viewport()) {
		return c, nil
	}

	cancel := w.Subscribe(func(vp Rect) { c.evaluate(vp) })

	c.mu.Lock()
	if c.revealed || c.closed {
		// Revealed by a concurrent scroll between Subscribe and here.
		c.mu.Unlock()
		cancel()
		return c, nil
	}
	c.cancel = cancel
	c.mu.Unlock()
	return c, nil
}

// evaluate checks vp against the region and reveals if the threshold is met.
// It reports whether the controller is (now) revealed.
func (c *Controller) evaluate(vp Rect) bool {
	c.mu.Lock()
	if c.revealed {
		c.mu.Unlock()
		return true
	}
	if c.closed || !c.reached(vp) {
		c.mu.Unlock()
		return false
	}
	c.revealed = true
	cancel := c.cancel
	c.cancel = nil
	close(c.done)
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	for _, fn := range c.hooks {
		fn()
	}
	return true
}

func (c *Controller) reached(vp Rect) bool {
	frac := VisibleFraction(c.region, vp)
	return frac > 0 && frac >= c.threshold
}

// Revealed reports whether the section has been revealed.
func (c *Controller) Revealed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.revealed
}

// Watching reports whether the controller still holds a subscription.
func (c *Controller) Watching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// Done is closed when the section is revealed.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Region returns the watched region.
func (c *Controller) Region() Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.region
}

// SetRegion moves the watched region after a relayout and re-checks it
// against vp.
func (c *Controller) SetRegion(r Rect, vp Rect) {
	c.mu.Lock()
	c.region = r
	c.mu.Unlock()
	c.evaluate(vp)
}

// Close unmounts the controller and releases its subscription whether or
// not it ever revealed. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (c *Controller) String() string {
	state := "hidden"
	if c.Revealed() {
		state = "revealed"
	}
	if c.name == "" {
		return state
	}
	return c.name + ":" + state
}
