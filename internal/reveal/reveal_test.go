package reveal

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleFraction(t *testing.T) {
	vp := Rect{Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name   string
		region Rect
		want   float64
	}{
		{"fully inside", Rect{Y: 10, Width: 100, Height: 50}, 1},
		{"half below fold", Rect{Y: 50, Width: 100, Height: 100}, 0.5},
		{"quarter visible", Rect{Y: 75, Width: 100, Height: 100}, 0.25},
		{"below fold", Rect{Y: 200, Width: 100, Height: 50}, 0},
		{"touching edge", Rect{Y: 100, Width: 100, Height: 50}, 0},
		{"zero height inside", Rect{Y: 20, Width: 100}, 1},
		{"zero height outside", Rect{Y: 120, Width: 100}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, VisibleFraction(tt.region, vp), 1e-9)
		})
	}
}

func TestDelay(t *testing.T) {
	assert.Equal(t, 800*time.Millisecond, Delay(800*time.Millisecond, 100*time.Millisecond, 0))
	assert.Equal(t, 1200*time.Millisecond, Delay(1000*time.Millisecond, 100*time.Millisecond, 2))
	assert.Equal(t, time.Duration(0), Delay(0, 200*time.Millisecond, -1))
}

func TestClasses(t *testing.T) {
	assert.Equal(t, "opacity-0 translate-y-10", Classes(false, "opacity-0 translate-y-10", "animate-fade-in"))
	assert.Equal(t, "animate-fade-in", Classes(true, "opacity-0 translate-y-10", "animate-fade-in"))
}

func viewportAt(y float64) Rect {
	return Rect{Y: y, Width: 100, Height: 100}
}

func TestObserveRejectsBadThreshold(t *testing.T) {
	w := NewWatcher(viewportAt(0))
	_, err := Observe(w, Rect{Y: 500, Width: 100, Height: 100}, 1.5)
	require.Error(t, err)
	assert.Equal(t, 0, w.Subscribers())
}

func TestStickyReveal(t *testing.T) {
	w := NewWatcher(viewportAt(0))
	c, err := Observe(w, Rect{Y: 300, Width: 100, Height: 100}, 0.3)
	require.NoError(t, err)
	defer c.Close()

	assert.False(t, c.Revealed())
	assert.True(t, c.Watching())
	assert.Equal(t, 1, w.Subscribers())

	// 20% visible: below threshold.
	w.Scroll(viewportAt(220))
	assert.False(t, c.Revealed())

	// 30% visible: reaches threshold.
	w.Scroll(viewportAt(230))
	assert.True(t, c.Revealed())
	assert.False(t, c.Watching(), "subscription released on reveal")
	assert.Equal(t, 0, w.Subscribers())

	// Scrolled fully out of view, both ways.
	w.Scroll(viewportAt(1000))
	assert.True(t, c.Revealed())
	w.Scroll(viewportAt(0))
	assert.True(t, c.Revealed())

	select {
	case <-c.Done():
	default:
		t.Fatal("Done not closed after reveal")
	}
}

func TestImmediateReveal(t *testing.T) {
	w := NewWatcher(viewportAt(0))
	fired := 0
	c, err := Observe(w, Rect{Y: 0, Width: 100, Height: 60}, 0.3, WithOnReveal(func() { fired++ }))
	require.NoError(t, err)

	assert.True(t, c.Revealed(), "section visible at mount reveals without a scroll")
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, w.Subscribers())
}

func TestOnRevealRunsOnce(t *testing.T) {
	w := NewWatcher(viewportAt(0))
	fired := 0
	c, err := Observe(w, Rect{Y: 150, Width: 100, Height: 100}, 0.2, WithOnReveal(func() { fired++ }))
	require.NoError(t, err)

	for _, y := range []float64{100, 150, 0, 150, 400, 150} {
		w.Scroll(viewportAt(y))
	}
	assert.True(t, c.Revealed())
	assert.Equal(t, 1, fired)
}

func TestCloseReleasesWithoutReveal(t *testing.T) {
	w := NewWatcher(viewportAt(0))
	c, err := Observe(w, Rect{Y: 900, Width: 100, Height: 100}, 0.3)
	require.NoError(t, err)
	require.Equal(t, 1, w.Subscribers())

	c.Close()
	c.Close()
	assert.Equal(t, 0, w.Subscribers())

	w.Scroll(viewportAt(900))
	assert.False(t, c.Revealed(), "unmounted controller never reveals")
}

func TestSetRegionReevaluates(t *testing.T) {
	w := NewWatcher(viewportAt(0))
	c, err := Observe(w, Rect{Y: 500, Width: 100, Height: 100}, 0.3)
	require.NoError(t, err)
	defer c.Close()

	c.SetRegion(Rect{Y: 40, Width: 100, Height: 100}, w.Viewport())
	assert.True(t, c.Revealed())
	assert.Equal(t, 0, w.Subscribers())
}

func TestConcurrentScrollRevealsOnce(t *testing.T) {
	w := NewWatcher(viewportAt(0))
	var mu sync.Mutex
	fired := 0
	c, err := Observe(w, Rect{Y: 500, Width: 100, Height: 100}, 0.5, WithOnReveal(func() {
		mu.Lock()
		fired++
		mu.Unlock()
	}))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Scroll(viewportAt(500))
		}()
	}
	wg.Wait()

	assert.True(t, c.Revealed())
	assert.Equal(t, 1, fired)
}

// fakeClock fires timers only when advanced.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d, firing due timers in schedule order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// Pending returns the number of timers neither fired nor stopped.
func (c *fakeClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

var sampleTargets = []Target{
	{Key: "A", Level: 90},
	{Key: "B", Level: 85},
	{Key: "C", Level: 95},
	{Key: "D", Level: 88},
}

func TestAnimatorStaggerConvergence(t *testing.T) {
	clock := &fakeClock{}
	a := NewAnimator(sampleTargets, 200*time.Millisecond, WithClock(clock))

	assert.Equal(t, map[string]int{"A": 0, "B": 0, "C": 0, "D": 0}, a.Levels())
	require.True(t, a.Start())
	require.False(t, a.Start(), "second start is a no-op")

	// Index 0 fires at t=0.
	clock.Advance(0)
	assert.Equal(t, 90, a.Level("A"))
	assert.Equal(t, 0, a.Level("B"))

	prev := a.Levels()
	for step := 0; step < 4; step++ {
		clock.Advance(200 * time.Millisecond)
		cur := a.Levels()
		for k, v := range prev {
			assert.GreaterOrEqual(t, cur[k], v, "level of %s decreased", k)
		}
		prev = cur
	}

	settle := SettleTime(len(sampleTargets), 200*time.Millisecond, DefaultTransition)
	assert.Equal(t, 1600*time.Millisecond, settle)
	clock.Advance(settle)
	for _, tg := range sampleTargets {
		assert.Equal(t, tg.Level, a.Level(tg.Key))
	}

	select {
	case <-a.Done():
	default:
		t.Fatal("Done not closed after all levels applied")
	}
}

func TestAnimatorStaggerOrder(t *testing.T) {
	clock := &fakeClock{}
	var order []string
	a := NewAnimator(sampleTargets, 200*time.Millisecond, WithClock(clock), WithOnUpdate(func(key string, level int) {
		order = append(order, key)
	}))
	a.Start()

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"A"}, order)
	clock.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"A", "B", "C"}, order)
	clock.Advance(time.Second)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)
}

func TestAnimatorNoUpdateAfterStop(t *testing.T) {
	clock := &fakeClock{}
	updates := 0
	a := NewAnimator(sampleTargets, 200*time.Millisecond, WithClock(clock), WithOnUpdate(func(string, int) {
		updates++
	}))
	a.Start()
	clock.Advance(200 * time.Millisecond)
	require.Equal(t, 2, updates)

	a.Stop()
	a.Stop()
	assert.Equal(t, 0, clock.Pending(), "pending timers cancelled")
	assert.False(t, a.Start(), "stopped animator can't restart")

	clock.Advance(10 * time.Second)
	assert.Equal(t, 2, updates)
	assert.Equal(t, 0, a.Level("C"))
	assert.Equal(t, 0, a.Level("D"))
}

func TestAnimatorDiscardsFiredButUnappliedWrite(t *testing.T) {
	var held func()
	clock := clockFunc(func(d time.Duration, f func()) Timer {
		if d > 0 {
			held = f
		}
		return stopNoop{}
	})
	a := NewAnimator(sampleTargets[:2], 200*time.Millisecond, WithClock(clock))
	a.Start()

	// The timer has fired (we hold its callback) but the section is gone
	// before the callback gets to run.
	a.Stop()
	require.NotNil(t, held)
	held()
	assert.Equal(t, 0, a.Level("B"))
}

type clockFunc func(d time.Duration, f func()) Timer

func (c clockFunc) AfterFunc(d time.Duration, f func()) Timer { return c(d, f) }

type stopNoop struct{}

func (stopNoop) Stop() bool { return false }

func TestAnimatorRealClock(t *testing.T) {
	a := NewAnimator(sampleTargets, time.Millisecond)
	defer a.Stop()
	a.Start()

	require.Eventually(t, func() bool {
		select {
		case <-a.Done():
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
	for _, tg := range sampleTargets {
		assert.Equal(t, tg.Level, a.Level(tg.Key))
	}
}

func TestLevelsAt(t *testing.T) {
	interval := 200 * time.Millisecond
	assert.Equal(t, map[string]int{"A": 90, "B": 0, "C": 0, "D": 0}, LevelsAt(sampleTargets, interval, 0))
	assert.Equal(t, map[string]int{"A": 90, "B": 85, "C": 0, "D": 0}, LevelsAt(sampleTargets, interval, 399*time.Millisecond))

	settled := LevelsAt(sampleTargets, interval, SettleTime(len(sampleTargets), interval, DefaultTransition))
	for _, tg := range sampleTargets {
		assert.Equal(t, tg.Level, settled[tg.Key])
	}
	assert.Equal(t, time.Duration(0), SettleTime(0, interval, DefaultTransition))
}

func TestRevealStartsAnimator(t *testing.T) {
	clock := &fakeClock{}
	w := NewWatcher(viewportAt(0))
	a := NewAnimator(sampleTargets, 200*time.Millisecond, WithClock(clock))
	c, err := Observe(w, Rect{Y: 400, Width: 100, Height: 100}, 0.3, WithOnReveal(func() { a.Start() }))
	require.NoError(t, err)
	defer c.Close()
	defer a.Stop()

	clock.Advance(time.Second)
	assert.False(t, a.Started())

	w.Scroll(viewportAt(350))
	require.True(t, a.Started())
	w.Scroll(viewportAt(0))
	w.Scroll(viewportAt(350))

	clock.Advance(SettleTime(len(sampleTargets), 200*time.Millisecond, DefaultTransition))
	for _, tg := range sampleTargets {
		assert.Equal(t, tg.Level, a.Level(tg.Key))
	}
}
