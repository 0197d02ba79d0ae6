package timeline

import (
	"time"

	"github.com/mikehobi/motion/clock"
	"github.com/mikehobi/motion/easing"
)

// Animator is the platform animation primitive the scheduler delegates leaf
// execution to: run action as a property-mutation block over duration after
// delay, shaped by curve, and report settlement through done exactly once,
// asynchronously. A false flag means the platform superseded the animation;
// the scheduler passes it through without acting on it.
type Animator interface {
	Animate(action func(), duration, delay time.Duration, curve easing.Curve, done CompletionFunc)
}

// AnimatorFunc adapts a function to the Animator interface.
type AnimatorFunc func(action func(), duration, delay time.Duration, curve easing.Curve, done CompletionFunc)

func (f AnimatorFunc) Animate(action func(), duration, delay time.Duration, curve easing.Curve, done CompletionFunc) {
	f(action, duration, delay, curve, done)
}

// ClockAnimator executes animations purely by the clock: the action fires
// once delay elapses and the transition settles duration later, always
// successfully. It renders nothing, which makes it the animator of choice
// for dry runs, tracing and tests.
type ClockAnimator struct {
	clock clock.Clock
}

func NewClockAnimator(c clock.Clock) *ClockAnimator {
	return &ClockAnimator{clock: c}
}

func (a *ClockAnimator) Animate(action func(), duration, delay time.Duration, _ easing.Curve, done CompletionFunc) {
	a.clock.After(delay, func() {
		if action != nil {
			action()
		}
		a.clock.After(duration, func() {
			if done != nil {
				done(true)
			}
		})
	})
}
