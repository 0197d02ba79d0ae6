package timeline

import (
	"testing"
	"time"

	"github.com/mikehobi/motion/clock"
	"github.com/mikehobi/motion/easing"
)

type event struct {
	name string
	at   time.Duration
}

type eventLog struct {
	vc     *clock.Virtual
	events []event
}

func (l *eventLog) mark(name string) func() {
	return func() { l.events = append(l.events, event{name, l.vc.Now()}) }
}

func (l *eventLog) at(name string) (time.Duration, bool) {
	for _, e := range l.events {
		if e.name == name {
			return e.at, true
		}
	}
	return 0, false
}

func (l *eventLog) expect(t *testing.T, name string, want time.Duration) {
	t.Helper()
	got, ok := l.at(name)
	if !ok {
		t.Fatalf("event %q never happened (log: %v)", name, l.events)
	}
	if got != want {
		t.Errorf("event %q at %v, want %v", name, got, want)
	}
}

func newTestRig() (*clock.Virtual, *Scheduler, *eventLog) {
	vc := clock.NewVirtual()
	s := NewScheduler(NewClockAnimator(vc), vc)
	return vc, s, &eventLog{vc: vc}
}

func TestSequenceRunsChildrenOneAtATime(t *testing.T) {
	vc, s, log := newTestRig()

	seq := NewSequence(
		NewAnimation(log.mark("a"), time.Second),
		NewAnimation(log.mark("b"), time.Second),
	)

	var doneAt time.Duration = -1
	seq.Start(s, func(bool) { doneAt = vc.Now() })

	vc.AdvanceToIdle()

	log.expect(t, "a", 0)
	log.expect(t, "b", time.Second)
	if doneAt != 2*time.Second {
		t.Errorf("root completion at %v, want 2s", doneAt)
	}
}

func TestSequenceTotalTimeIsSumOfDurations(t *testing.T) {
	vc, s, log := newTestRig()

	durations := []time.Duration{
		300 * time.Millisecond,
		700 * time.Millisecond,
		1500 * time.Millisecond,
		100 * time.Millisecond,
	}
	seq := NewSequence()
	for i, d := range durations {
		seq.Append(NewAnimation(log.mark(string(rune('a'+i))), d))
	}

	var doneAt time.Duration = -1
	seq.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	var sum time.Duration
	for i, d := range durations {
		log.expect(t, string(rune('a'+i)), sum)
		sum += d
	}
	if doneAt != sum {
		t.Errorf("root completion at %v, want %v", doneAt, sum)
	}
}

func TestSequenceDelay(t *testing.T) {
	vc, s, log := newTestRig()

	seq := NewSequence(NewAnimation(log.mark("a"), time.Second))
	seq.Delay = 500 * time.Millisecond

	var doneAt time.Duration = -1
	seq.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	log.expect(t, "a", 500*time.Millisecond)
	if doneAt != 1500*time.Millisecond {
		t.Errorf("root completion at %v, want 1.5s", doneAt)
	}
}

func TestSequenceIntervalInsertsGapBetweenChildren(t *testing.T) {
	vc, s, log := newTestRig()

	seq := NewSequence(
		NewAnimation(log.mark("a"), time.Second),
		NewAnimation(log.mark("b"), time.Second),
		NewAnimation(log.mark("c"), time.Second),
	)
	seq.Interval = 250 * time.Millisecond

	var doneAt time.Duration = -1
	seq.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	log.expect(t, "a", 0)
	log.expect(t, "b", 1250*time.Millisecond)
	log.expect(t, "c", 2500*time.Millisecond)
	// No trailing interval after the last child.
	if doneAt != 3500*time.Millisecond {
		t.Errorf("root completion at %v, want 3.5s", doneAt)
	}
}

func TestStaggerOffsetsStartsWithoutWaiting(t *testing.T) {
	vc, s, log := newTestRig()

	st := NewStagger(100*time.Millisecond,
		NewAnimation(log.mark("a"), time.Second),
		NewAnimation(log.mark("b"), 200*time.Millisecond),
	)

	var doneAt time.Duration = -1
	st.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	log.expect(t, "a", 0)
	log.expect(t, "b", 100*time.Millisecond)
	// Positional completion: the group is done when the last-indexed child
	// settles at 0.3s, while child a is still animating until 1s.
	if doneAt != 300*time.Millisecond {
		t.Errorf("root completion at %v, want 300ms", doneAt)
	}
}

func TestStaggerStartTimesAreMultiplesOfInterval(t *testing.T) {
	vc, s, log := newTestRig()

	const n = 5
	interval := 150 * time.Millisecond
	st := NewStagger(interval)
	for i := 0; i < n; i++ {
		st.Append(NewAnimation(log.mark(string(rune('a'+i))), time.Second))
	}
	st.Delay = 200 * time.Millisecond

	var doneAt time.Duration = -1
	st.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	for i := 0; i < n; i++ {
		log.expect(t, string(rune('a'+i)), st.Delay+time.Duration(i)*interval)
	}
	want := st.Delay + (n-1)*interval + time.Second
	if doneAt != want {
		t.Errorf("root completion at %v, want %v", doneAt, want)
	}
}

func TestParallelStartsAllChildrenTogether(t *testing.T) {
	vc, s, log := newTestRig()

	p := NewParallel(
		NewAnimation(log.mark("a"), time.Second),
		NewAnimation(log.mark("b"), 2*time.Second),
		NewAnimation(log.mark("c"), 500*time.Millisecond),
	)
	p.Delay = 400 * time.Millisecond

	var doneAt time.Duration = -1
	p.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	log.expect(t, "a", 400*time.Millisecond)
	log.expect(t, "b", 400*time.Millisecond)
	log.expect(t, "c", 400*time.Millisecond)
	// Positional completion: child c (last index, 0.5s) finishes the group
	// at 0.9s even though child b runs until 2.4s.
	if doneAt != 900*time.Millisecond {
		t.Errorf("root completion at %v, want 900ms", doneAt)
	}
}

func TestParallelLastIndexCompletesBeforeLongerSiblings(t *testing.T) {
	vc, s, log := newTestRig()

	longDone := false
	p := NewParallel(
		&Animation{Action: log.mark("long"), Duration: 5 * time.Second, Curve: easing.InOutSine},
		NewAnimation(log.mark("short"), 100*time.Millisecond),
	)
	// Observe the long sibling independently through its own leaf action
	// plus a follow-up marker scheduled at its settle time.
	vc.After(5*time.Second, func() { longDone = true })

	var doneAt time.Duration = -1
	p.Start(s, func(bool) { doneAt = vc.Now() })

	vc.Advance(time.Second)
	if doneAt != 100*time.Millisecond {
		t.Fatalf("root completion at %v, want 100ms", doneAt)
	}
	if longDone {
		t.Fatal("long sibling should still be in flight at root completion")
	}
	vc.AdvanceToIdle()
	if !longDone {
		t.Fatal("long sibling never settled")
	}
}

func TestWaitInsideSequence(t *testing.T) {
	vc, s, log := newTestRig()

	seq := NewSequence(
		NewAnimation(log.mark("a"), 200*time.Millisecond),
		NewWait(300*time.Millisecond),
		NewAnimation(log.mark("b"), 200*time.Millisecond),
	)

	var doneAt time.Duration = -1
	seq.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	log.expect(t, "a", 0)
	log.expect(t, "b", 500*time.Millisecond)
	if doneAt != 700*time.Millisecond {
		t.Errorf("root completion at %v, want 700ms", doneAt)
	}
}

func TestNestedStaggerOfSequences(t *testing.T) {
	vc, s, log := newTestRig()

	first := NewSequence(
		NewAnimation(log.mark("a1"), 200*time.Millisecond),
		NewAnimation(log.mark("a2"), 200*time.Millisecond),
	)
	second := NewSequence(
		NewAnimation(log.mark("b1"), 200*time.Millisecond),
		NewAnimation(log.mark("b2"), 200*time.Millisecond),
	)
	st := NewStagger(100*time.Millisecond, first, second)

	var doneAt time.Duration = -1
	st.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	// Each inner sequence keeps its strict internal order; the outer
	// stagger only shifts the second sequence's start.
	log.expect(t, "a1", 0)
	log.expect(t, "a2", 200*time.Millisecond)
	log.expect(t, "b1", 100*time.Millisecond)
	log.expect(t, "b2", 300*time.Millisecond)
	if doneAt != 500*time.Millisecond {
		t.Errorf("root completion at %v, want 500ms", doneAt)
	}
}

func TestNestedParallelInsideSequence(t *testing.T) {
	vc, s, log := newTestRig()

	seq := NewSequence(
		NewAnimation(log.mark("intro"), 100*time.Millisecond),
		NewParallel(
			NewAnimation(log.mark("p1"), 300*time.Millisecond),
			NewAnimation(log.mark("p2"), 200*time.Millisecond),
		),
		NewAnimation(log.mark("outro"), 100*time.Millisecond),
	)

	var doneAt time.Duration = -1
	seq.Start(s, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	log.expect(t, "p1", 100*time.Millisecond)
	log.expect(t, "p2", 100*time.Millisecond)
	// The parallel completes with its last-indexed child at 300ms, so the
	// outro starts then, while p1 is still animating.
	log.expect(t, "outro", 300*time.Millisecond)
	if doneAt != 400*time.Millisecond {
		t.Errorf("root completion at %v, want 400ms", doneAt)
	}
}

func TestEmptyContainersComplete(t *testing.T) {
	tests := []struct {
		name string
		node interface {
			Node
			Start(*Scheduler, CompletionFunc)
		}
	}{
		{"sequence", NewSequence()},
		{"stagger", NewStagger(time.Second)},
		{"parallel", NewParallel()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc, s, _ := newTestRig()

			completions := 0
			finished := false
			tt.node.Start(s, func(ok bool) {
				completions++
				finished = ok
			})

			// Completion is asynchronous even with nothing to run.
			if completions != 0 {
				t.Fatal("empty container completed synchronously")
			}
			vc.AdvanceToIdle()
			if completions != 1 {
				t.Fatalf("expected exactly one completion, got %d", completions)
			}
			if !finished {
				t.Error("empty container should report true")
			}
		})
	}
}

func TestLeafFailurePropagatesButDoesNotAbort(t *testing.T) {
	vc := clock.NewVirtual()
	log := &eventLog{vc: vc}

	// An animator whose transitions are always superseded.
	failing := AnimatorFunc(func(action func(), duration, delay time.Duration, _ easing.Curve, done CompletionFunc) {
		vc.After(delay, func() {
			action()
			vc.After(duration, func() { done(false) })
		})
	})
	s := NewScheduler(failing, vc)

	seq := NewSequence(
		NewAnimation(log.mark("a"), time.Second),
		NewAnimation(log.mark("b"), time.Second),
	)

	var rootFlag bool
	var doneAt time.Duration = -1
	seq.Start(s, func(ok bool) {
		rootFlag = ok
		doneAt = vc.Now()
	})
	vc.AdvanceToIdle()

	// Both children still ran to their settle points.
	log.expect(t, "a", 0)
	log.expect(t, "b", time.Second)
	if doneAt != 2*time.Second {
		t.Errorf("root completion at %v, want 2s", doneAt)
	}
	// Containers report true regardless of child flags.
	if !rootFlag {
		t.Error("sequence completion should report true")
	}
}

func TestLeafFlagPassedThroughVerbatim(t *testing.T) {
	vc := clock.NewVirtual()
	failing := AnimatorFunc(func(action func(), duration, delay time.Duration, _ easing.Curve, done CompletionFunc) {
		vc.After(delay+duration, func() { done(false) })
	})
	s := NewScheduler(failing, vc)

	got := true
	NewAnimation(nil, time.Second).Start(s, func(ok bool) { got = ok })
	vc.AdvanceToIdle()

	if got {
		t.Error("leaf completion should carry the animator's false flag")
	}
}

func TestCompletionFiresExactlyOnce(t *testing.T) {
	vc, s, _ := newTestRig()

	st := NewStagger(50*time.Millisecond,
		NewAnimation(nil, time.Second),
		NewParallel(
			NewAnimation(nil, 100*time.Millisecond),
			NewAnimation(nil, 200*time.Millisecond),
		),
		NewWait(300*time.Millisecond),
	)

	completions := 0
	st.Start(s, func(bool) { completions++ })
	vc.AdvanceToIdle()

	if completions != 1 {
		t.Errorf("root completion fired %d times, want 1", completions)
	}
}

func TestNilCompletionAllowed(t *testing.T) {
	vc, s, log := newTestRig()

	seq := NewSequence(NewAnimation(log.mark("a"), time.Second))
	seq.Start(s, nil)
	vc.AdvanceToIdle()

	if _, ok := log.at("a"); !ok {
		t.Error("timeline should run without a completion callback")
	}
}

func TestConstructionAloneHasNoEffect(t *testing.T) {
	vc, _, log := newTestRig()

	seq := NewSequence(
		NewAnimation(log.mark("a"), time.Second),
		NewStagger(time.Second, NewAnimation(log.mark("b"), time.Second)),
		NewWait(time.Second),
	)
	seq.Delay = time.Second

	vc.AdvanceToIdle()

	if len(log.events) != 0 {
		t.Errorf("unstarted timeline produced events: %v", log.events)
	}
	if vc.Pending() != 0 {
		t.Errorf("unstarted timeline scheduled %d callbacks", vc.Pending())
	}
}

func TestLeafParametersReachAnimator(t *testing.T) {
	vc := clock.NewVirtual()

	var gotDuration, gotDelay time.Duration
	var gotCurve easing.Curve
	spy := AnimatorFunc(func(action func(), duration, delay time.Duration, curve easing.Curve, done CompletionFunc) {
		gotDuration, gotDelay, gotCurve = duration, delay, curve
		vc.After(delay+duration, func() { done(true) })
	})
	s := NewScheduler(spy, vc)

	a := NewAnimation(nil, 2*time.Second)
	a.Delay = 250 * time.Millisecond
	a.Curve = easing.OutBack
	a.Start(s, nil)
	vc.AdvanceToIdle()

	if gotDuration != 2*time.Second || gotDelay != 250*time.Millisecond {
		t.Errorf("animator saw duration=%v delay=%v", gotDuration, gotDelay)
	}
	if gotCurve != easing.OutBack {
		t.Errorf("animator saw curve %v, want easeOutBack", gotCurve)
	}
}

func TestNewAnimationDefaultCurve(t *testing.T) {
	a := NewAnimation(nil, time.Second)
	if a.Curve != easing.InOutSine {
		t.Errorf("default curve = %v, want easeInOutSine", a.Curve)
	}
	if a.Delay != 0 {
		t.Errorf("default delay = %v, want 0", a.Delay)
	}
}
