package timeline

import (
	"time"

	"github.com/mikehobi/motion/easing"
)

// CompletionFunc receives a node's one-shot completion signal. The flag is
// the platform primitive's success report for leaves; containers always
// report true.
type CompletionFunc func(finished bool)

// Node is one element of a timeline tree. The variant set is closed:
// Animation, Wait, Sequence, Stagger and Parallel are the only kinds the
// scheduler knows how to run.
type Node interface {
	start(s *Scheduler, done CompletionFunc)
}

// Animation is the leaf node: one property mutation animated over Duration
// after Delay, shaped by Curve. Action is opaque to the scheduler; it
// captures whatever state it animates.
type Animation struct {
	Action   func()
	Duration time.Duration
	Delay    time.Duration
	Curve    easing.Curve
}

// NewAnimation returns a leaf with no delay and the default easing curve.
func NewAnimation(action func(), duration time.Duration) *Animation {
	return &Animation{
		Action:   action,
		Duration: duration,
		Curve:    easing.InOutSine,
	}
}

// Start runs the animation on its own, outside any container.
func (a *Animation) Start(s *Scheduler, done CompletionFunc) {
	s.Run(a, done)
}

func (a *Animation) start(s *Scheduler, done CompletionFunc) {
	s.animator.Animate(a.Action, a.Duration, a.Delay, a.Curve, done)
}

// Wait is a pure delay. It has no standalone entry point; it only
// participates as a child inside a container.
type Wait struct {
	Duration time.Duration
}

func NewWait(duration time.Duration) *Wait {
	return &Wait{Duration: duration}
}

func (w *Wait) start(s *Scheduler, done CompletionFunc) {
	s.clock.After(w.Duration, func() { done(true) })
}
