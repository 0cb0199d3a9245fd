package reveal

import "sync"

// Watcher broadcasts viewport changes (scrolls, resizes) to subscribed
// observers. It is the scroll source every Controller listens to.
type Watcher struct {
	mu       sync.Mutex
	viewport Rect
	nextID   int
	subs     map[int]func(Rect)
}

// NewWatcher returns a Watcher whose initial viewport is vp.
func NewWatcher(vp Rect) *Watcher {
	return &Watcher{
		viewport: vp,
		subs:     make(map[int]func(Rect)),
	}
}

// Viewport returns the current viewport.
func (w *Watcher) Viewport() Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewport
}

// Subscribe registers fn to be called with every new viewport. The returned
// cancel func removes the subscription; calling it more than once is safe.
func (w *Watcher) Subscribe(fn func(Rect)) (cancel func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			delete(w.subs, id)
			w.mu.Unlock()
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (w *Watcher) Subscribers() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs)
}

// Scroll moves the viewport and notifies subscribers. Callbacks run outside
// the lock, so a subscriber may cancel itself from inside its callback.
func (w *Watcher) Scroll(vp Rect) {
	w.mu.Lock()
	w.viewport = vp
	fns := make([]func(Rect), 0, len(w.subs))
	for _, fn := range w.subs {
		fns = append(fns, fn)
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn(vp)
	}
}
