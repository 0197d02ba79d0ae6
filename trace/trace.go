// Package trace records the schedule a timeline produces: when each leaf
// animation was requested and when it settled, against the scheduler's
// clock. The Recorder sits between the scheduler and the real animator, so
// it works with any Animator implementation.
package trace

import (
	"fmt"
	"sync"
	"time"

	"github.com/mikehobi/motion/clock"
	"github.com/mikehobi/motion/easing"
	"github.com/mikehobi/motion/timeline"
)

// Event is one observed scheduling fact about a leaf animation.
type Event struct {
	At       time.Duration `json:"at"`
	Kind     string        `json:"kind"` // "start" or "complete"
	Label    string        `json:"label"`
	Duration time.Duration `json:"duration,omitempty"`
	Delay    time.Duration `json:"delay,omitempty"`
	Curve    string        `json:"curve,omitempty"`
	Finished bool          `json:"finished,omitempty"`
}

// Recorder is an Animator middleware. Leaves are labeled anim-1, anim-2, …
// in start order. Safe for use with the system clock, whose completions
// arrive on timer goroutines.
type Recorder struct {
	mu     sync.Mutex
	next   timeline.Animator
	clock  clock.Clock
	n      int
	events []Event
}

func NewRecorder(next timeline.Animator, c clock.Clock) *Recorder {
	return &Recorder{next: next, clock: c}
}

func (r *Recorder) Animate(action func(), duration, delay time.Duration, curve easing.Curve, done timeline.CompletionFunc) {
	r.mu.Lock()
	r.n++
	label := fmt.Sprintf("anim-%d", r.n)
	name, ok := easing.Name(curve)
	if !ok {
		name = fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", curve.X1, curve.Y1, curve.X2, curve.Y2)
	}
	r.events = append(r.events, Event{
		At:       r.clock.Now(),
		Kind:     "start",
		Label:    label,
		Duration: duration,
		Delay:    delay,
		Curve:    name,
	})
	r.mu.Unlock()

	r.next.Animate(action, duration, delay, curve, func(finished bool) {
		r.mu.Lock()
		r.events = append(r.events, Event{
			At:       r.clock.Now(),
			Kind:     "complete",
			Label:    label,
			Finished: finished,
		})
		r.mu.Unlock()
		done(finished)
	})
}

// Events returns a copy of everything recorded so far, in observation order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
