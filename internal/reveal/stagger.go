package reveal

import (
	"sync"
	"time"
)

const (
	// DefaultStagger is the delay between consecutive skill bars.
	DefaultStagger = 200 * time.Millisecond
	// DefaultTransition is how long one bar takes to fill once its level is set.
	DefaultTransition = time.Second
)

// Timer is a scheduled callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. The real clock uses time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Target is one animated value: the key it is displayed under and the level
// it fills to.
type Target struct {
	Key   string
	Level int
}

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator)

// WithClock replaces the wall clock.
func WithClock(c Clock) AnimatorOption {
	return func(a *Animator) {
		a.clock = c
	}
}

// WithOnUpdate registers fn to run after each level is applied.
func WithOnUpdate(fn func(key string, level int)) AnimatorOption {
	return func(a *Animator) {
		a.onUpdate = fn
	}
}

// Animator advances each target's displayed level from 0 to its target,
// one target every interval, in list order. It is started once, by the owning
// section's reveal, and stopped when the section is torn down.
type Animator struct {
	targets  []Target
	interval time.Duration
	clock    Clock
	onUpdate func(key string, level int)
	done     chan struct{}

	mu      sync.Mutex
	levels  map[string]int
	applied int
	timers  []Timer
	started bool
	stopped bool
}

// NewAnimator returns an idle animator for targets. A non-positive interval
// falls back to DefaultStagger.
func NewAnimator(targets []Target, interval time.Duration, opts ...AnimatorOption) *Animator {
	if interval <= 0 {
		interval = DefaultStagger
	}
	a := &Animator{
		targets:  append([]Target(nil), targets...),
		interval: interval,
		clock:    realClock{},
		done:     make(chan struct{}),
		levels:   make(map[string]int, len(targets)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if len(a.targets) == 0 {
		close(a.done)
	}
	return a
}

// Start schedules the staggered fill. It returns false if the animator was
// already started or has been stopped.
func (a *Animator) Start() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started || a.stopped {
		return false
	}
	a.started = true

	a.timers = make([]Timer, 0, len(a.targets))
	for i, t := range a.targets {
		a.timers = append(a.timers, a.clock.AfterFunc(Delay(0, a.interval, i), func() {
			a.apply(t)
		}))
	}
	return true
}

func (a *Animator) apply(t Target) {
	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return
	}
	changed := false
	if t.Level > a.levels[t.Key] {
		a.levels[t.Key] = t.Level
		changed = true
	}
	a.applied++
	if a.applied == len(a.targets) {
		close(a.done)
	}
	onUpdate := a.onUpdate
	a.mu.Unlock()

	if changed && onUpdate != nil {
		onUpdate(t.Key, t.Level)
	}
}

// Stop cancels pending timers. Timers that already fired discard their
// write. Stop is idempotent.
func (a *Animator) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopped {
		return
	}
	a.stopped = true
	for _, t := range a.timers {
		t.Stop()
	}
	a.timers = nil
}

// Level returns the displayed level for key, 0 until its timer fires.
func (a *Animator) Level(key string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.levels[key]
}

// Levels returns a snapshot of every displayed level.
func (a *Animator) Levels() map[string]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[string]int, len(a.targets))
	for _, t := range a.targets {
		out[t.Key] = a.levels[t.Key]
	}
	return out
}

// Started reports whether Start has run.
func (a *Animator) Started() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.started
}

// Done is closed once every target has been applied.
func (a *Animator) Done() <-chan struct{} {
	return a.done
}

// LevelsAt derives the displayed levels elapsed after the fill started.
func LevelsAt(targets []Target, interval, elapsed time.Duration) map[string]int {
	out := make(map[string]int, len(targets))
	for i, t := range targets {
		if _, ok := out[t.Key]; !ok {
			out[t.Key] = 0
		}
		if elapsed >= Delay(0, interval, i) && t.Level > out[t.Key] {
			out[t.Key] = t.Level
		}
	}
	return out
}

// SettleTime is when the last of n bars finishes filling.
func SettleTime(n int, interval, transition time.Duration) time.Duration {
	if n <= 0 {
		return 0
	}
	return Delay(transition, interval, n-1)
}
