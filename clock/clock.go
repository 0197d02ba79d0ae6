package clock

import "time"

// Clock schedules fire-and-forget deferred callbacks. Deadlines are
// monotonic; FIFO ordering among equal deadlines is not guaranteed by the
// interface (though Virtual provides it).
type Clock interface {
	// After runs fn once d has elapsed. A non-positive d still defers fn;
	// it never runs synchronously inside the After call.
	After(d time.Duration, fn func())

	// Now reports the time elapsed since the clock started.
	Now() time.Duration
}

// System defers callbacks with real timers. Callbacks run on their own
// goroutines, so anything they touch must tolerate that.
type System struct {
	start time.Time
}

func NewSystem() *System {
	return &System{start: time.Now()}
}

func (c *System) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	time.AfterFunc(d, fn)
}

func (c *System) Now() time.Duration {
	return time.Since(c.start)
}
