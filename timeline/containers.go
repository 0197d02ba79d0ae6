package timeline

import (
	"fmt"
	"time"
)

// group holds a container's ordered children and the builder mutations
// shared by the three container kinds. Mutation is only valid before the
// container is started.
type group struct {
	children []Node
}

// Append adds n after the existing children.
func (g *group) Append(n Node) {
	g.children = append(g.children, n)
}

// Insert places n at position at, shifting later children. at must be in
// [0, Len()]; anything else returns ErrIndexOutOfRange.
func (g *group) Insert(n Node, at int) error {
	if at < 0 || at > len(g.children) {
		return fmt.Errorf("%w: %d with %d children", ErrIndexOutOfRange, at, len(g.children))
	}
	g.children = append(g.children, nil)
	copy(g.children[at+1:], g.children[at:])
	g.children[at] = n
	return nil
}

// Children returns the ordered child list. Callers must not mutate it
// while the container is running.
func (g *group) Children() []Node {
	return g.children
}

// Len reports the number of children.
func (g *group) Len() int {
	return len(g.children)
}

// Sequence runs its children strictly one at a time: each child starts
// only after the previous child's completion fires. Delay postpones the
// first child; Interval inserts an extra gap between consecutive children.
type Sequence struct {
	group
	Delay    time.Duration
	Interval time.Duration
}

func NewSequence(children ...Node) *Sequence {
	return &Sequence{group: group{children: children}}
}

// Start runs the sequence as a timeline root.
func (q *Sequence) Start(s *Scheduler, done CompletionFunc) {
	s.Run(q, done)
}

func (q *Sequence) start(s *Scheduler, done CompletionFunc) {
	s.clock.After(q.Delay, func() { s.stepSequence(q, 0, done) })
}

// Stagger starts child i+1 a fixed Interval after child i started, without
// waiting for child i to finish, so executions overlap. Delay postpones the
// first child.
type Stagger struct {
	group
	Interval time.Duration
	Delay    time.Duration
}

func NewStagger(interval time.Duration, children ...Node) *Stagger {
	return &Stagger{group: group{children: children}, Interval: interval}
}

// Start runs the stagger as a timeline root.
func (g *Stagger) Start(s *Scheduler, done CompletionFunc) {
	s.Run(g, done)
}

func (g *Stagger) start(s *Scheduler, done CompletionFunc) {
	s.clock.After(g.Delay, func() { s.stepStagger(g, 0, done) })
}

// Parallel starts every child at the same instant, after Delay.
type Parallel struct {
	group
	Delay time.Duration
}

func NewParallel(children ...Node) *Parallel {
	return &Parallel{group: group{children: children}}
}

// Start runs the group as a timeline root.
func (p *Parallel) Start(s *Scheduler, done CompletionFunc) {
	s.Run(p, done)
}

func (p *Parallel) start(s *Scheduler, done CompletionFunc) {
	s.clock.After(p.Delay, func() { s.startParallel(p, done) })
}
