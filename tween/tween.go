// Package tween is a software implementation of the timeline Animator over
// named float properties. Actions set target values on a Board; the Board
// eases the displayed value from the old target to the new one over the
// animation's duration using its curve. It stands in for a platform view
// layer in terminal playback and tests.
package tween

import (
	"sync"
	"time"

	"github.com/mikehobi/motion/clock"
	"github.com/mikehobi/motion/easing"
	"github.com/mikehobi/motion/timeline"
)

// Board holds named float properties and the tweens currently in flight.
// It implements timeline.Animator. Safe for concurrent use, so it works
// with the system clock as well as a virtual one.
type Board struct {
	mu      sync.Mutex
	clock   clock.Clock
	order   []string
	targets map[string]float64
	tweens  []tweenState
}

type tweenState struct {
	name     string
	from, to float64
	start    time.Duration
	duration time.Duration
	curve    easing.Curve
}

func NewBoard(c clock.Clock) *Board {
	return &Board{
		clock:   c,
		targets: make(map[string]float64),
	}
}

// Define registers a property with its initial value. Defining an existing
// property resets it.
func (b *Board) Define(name string, value float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.targets[name]; !ok {
		b.order = append(b.order, name)
	}
	b.targets[name] = value
}

// Set assigns a property's target value immediately, without tweening.
// Inside an animation action, the surrounding Animate call turns the
// assignment into a tween.
func (b *Board) Set(name string, value float64) {
	b.Define(name, value)
}

// Target returns the property's end value, ignoring any tween in flight.
func (b *Board) Target(name string) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.targets[name]
}

// Names returns the properties in definition order.
func (b *Board) Names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Displayed returns the property's value as currently shown: the eased
// in-between value while a tween is in flight, the target otherwise.
func (b *Board) Displayed(name string) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.displayed(name, b.clock.Now())
}

// Snapshot returns every property's displayed value at the current time.
func (b *Board) Snapshot() map[string]float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.clock.Now()
	out := make(map[string]float64, len(b.targets))
	for name := range b.targets {
		out[name] = b.displayed(name, now)
	}
	return out
}

// Idle reports whether no tween is still in flight.
func (b *Board) Idle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	now := b.clock.Now()
	for _, tw := range b.tweens {
		if now < tw.start+tw.duration {
			return false
		}
	}
	return true
}

// displayed picks the most recent tween touching name. Finished tweens are
// pruned lazily.
func (b *Board) displayed(name string, now time.Duration) float64 {
	b.prune(now)
	for i := len(b.tweens) - 1; i >= 0; i-- {
		tw := b.tweens[i]
		if tw.name != name {
			continue
		}
		if tw.duration <= 0 || now >= tw.start+tw.duration {
			return tw.to
		}
		t := float64(now-tw.start) / float64(tw.duration)
		return tw.from + (tw.to-tw.from)*tw.curve.Ease(t)
	}
	return b.targets[name]
}

func (b *Board) prune(now time.Duration) {
	kept := b.tweens[:0]
	for _, tw := range b.tweens {
		if now < tw.start+tw.duration {
			kept = append(kept, tw)
		}
	}
	b.tweens = kept
}

// Animate implements timeline.Animator: after delay, run the action, diff
// the targets it changed, and ease each changed property over duration with
// the given curve. Settlement is reported duration later, always true.
func (b *Board) Animate(action func(), duration, delay time.Duration, curve easing.Curve, done timeline.CompletionFunc) {
	b.clock.After(delay, func() {
		b.mu.Lock()
		before := make(map[string]float64, len(b.targets))
		now := b.clock.Now()
		for name := range b.targets {
			before[name] = b.displayed(name, now)
		}
		b.mu.Unlock()

		if action != nil {
			action()
		}

		b.mu.Lock()
		for name, target := range b.targets {
			from, had := before[name]
			if had && from == target {
				continue
			}
			b.tweens = append(b.tweens, tweenState{
				name:     name,
				from:     from,
				to:       target,
				start:    now,
				duration: duration,
				curve:    curve,
			})
		}
		b.mu.Unlock()

		b.clock.After(duration, func() {
			if done != nil {
				done(true)
			}
		})
	})
}
