package preview

import "time"

const (
	typeDelay  = 100 * time.Millisecond
	pauseDelay = 2 * time.Second
)

// Typewriter cycles through roles, typing one character every 100ms and
// pausing 2s on each completed role before clearing it.
type Typewriter struct {
	roles []string
	index int
	typed int
	wait  time.Duration
}

// NewTypewriter returns a typewriter positioned before the first character
// of the first role.
func NewTypewriter(roles []string) *Typewriter {
	return &Typewriter{roles: roles, wait: typeDelay}
}

// Text returns what has been typed so far.
func (t *Typewriter) Text() string {
	if len(t.roles) == 0 {
		return ""
	}
	r := []rune(t.roles[t.index])
	return string(r[:t.typed])
}

// Advance moves the typewriter forward by dt.
func (t *Typewriter) Advance(dt time.Duration) {
	if len(t.roles) == 0 {
		return
	}
	t.wait -= dt
	for t.wait <= 0 {
		t.wait += t.step()
	}
}

// step performs one action and returns the delay before the next.
func (t *Typewriter) step() time.Duration {
	n := len([]rune(t.roles[t.index]))
	if t.typed < n {
		t.typed++
		if t.typed == n {
			return pauseDelay
		}
		return typeDelay
	}
	t.typed = 0
	t.index = (t.index + 1) % len(t.roles)
	return typeDelay
}
