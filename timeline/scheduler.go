package timeline

import (
	"github.com/mikehobi/motion/clock"
)

// Scheduler interprets a timeline tree: leaves go to the Animator,
// containers recurse under their timing discipline, and completion
// propagates bottom-up. A Scheduler holds no per-run state, so one
// instance can run any number of timelines.
type Scheduler struct {
	animator Animator
	clock    clock.Clock
}

func NewScheduler(a Animator, c clock.Clock) *Scheduler {
	return &Scheduler{animator: a, clock: c}
}

// Run starts n and arranges for done to fire exactly once when n's
// semantics consider it finished. A nil done is allowed.
func (s *Scheduler) Run(n Node, done CompletionFunc) {
	if done == nil {
		done = func(bool) {}
	}
	n.start(s, done)
}

// stepSequence starts child i and chains the next child to its completion.
// The child's own success flag is deliberately ignored: a failed child
// never aborts the rest of the sequence.
func (s *Scheduler) stepSequence(q *Sequence, i int, done CompletionFunc) {
	if i >= len(q.children) {
		done(true)
		return
	}
	q.children[i].start(s, func(bool) {
		if i == len(q.children)-1 {
			done(true)
			return
		}
		if q.Interval > 0 {
			s.clock.After(q.Interval, func() { s.stepSequence(q, i+1, done) })
			return
		}
		s.stepSequence(q, i+1, done)
	})
}

// stepStagger starts child i and, without waiting for it, schedules child
// i+1 one Interval later. Completion is positional: the group is done when
// the last-indexed child reports done, even if earlier children with longer
// durations are still running.
func (s *Scheduler) stepStagger(g *Stagger, i int, done CompletionFunc) {
	if len(g.children) == 0 {
		done(true)
		return
	}
	if i == len(g.children)-1 {
		g.children[i].start(s, func(bool) { done(true) })
		return
	}
	g.children[i].start(s, func(bool) {})
	s.clock.After(g.Interval, func() { s.stepStagger(g, i+1, done) })
}

// startParallel starts every child in index order at the same instant.
// Completion is positional, as with Stagger: the last-indexed child's
// completion finishes the group.
func (s *Scheduler) startParallel(p *Parallel, done CompletionFunc) {
	if len(p.children) == 0 {
		done(true)
		return
	}
	last := len(p.children) - 1
	for i, child := range p.children {
		if i == last {
			child.start(s, func(bool) { done(true) })
		} else {
			child.start(s, func(bool) {})
		}
	}
}
