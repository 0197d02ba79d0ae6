package clock

import (
	"container/heap"
	"time"
)

// Virtual is a manually advanced Clock. Nothing fires until Advance is
// called; Advance then runs every pending callback whose deadline falls
// inside the window, in deadline order, including callbacks scheduled by
// other callbacks during the same Advance. Equal deadlines fire in
// registration order.
//
// Virtual is not safe for concurrent use; it models the single-threaded,
// cooperative scheduling the timeline package assumes.
type Virtual struct {
	now     time.Duration
	pending timerQueue
	seq     int
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	v.seq++
	heap.Push(&v.pending, &timer{deadline: v.now + d, seq: v.seq, fn: fn})
}

func (v *Virtual) Now() time.Duration {
	return v.now
}

// Advance moves the clock forward by d, firing due callbacks along the way.
// Advance(0) fires callbacks already due at the current time.
func (v *Virtual) Advance(d time.Duration) {
	target := v.now + d
	for len(v.pending) > 0 && v.pending[0].deadline <= target {
		t := heap.Pop(&v.pending).(*timer)
		if t.deadline > v.now {
			v.now = t.deadline
		}
		t.fn()
	}
	v.now = target
}

// AdvanceToIdle fires every pending callback, jumping the clock to each
// deadline in turn, until nothing remains scheduled.
func (v *Virtual) AdvanceToIdle() {
	for len(v.pending) > 0 {
		t := heap.Pop(&v.pending).(*timer)
		if t.deadline > v.now {
			v.now = t.deadline
		}
		t.fn()
	}
}

// Pending reports how many callbacks are waiting to fire.
func (v *Virtual) Pending() int {
	return len(v.pending)
}

type timer struct {
	deadline time.Duration
	seq      int
	fn       func()
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].deadline != q[j].deadline {
		return q[i].deadline < q[j].deadline
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
