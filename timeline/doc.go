// Package timeline composes view-property animations into declarative
// timelines instead of hand-nested completion callbacks.
//
// A timeline is a tree of five node kinds: [Animation] (one eased property
// transition), [Wait] (a pure delay), [Sequence] (children strictly one
// after another), [Stagger] (children started at a fixed offset without
// waiting for the previous to finish) and [Parallel] (children started
// together). A [Scheduler] interprets the tree against an [Animator] (the
// platform animation primitive) and a clock:
//
//	sched := timeline.NewScheduler(animator, clock.NewSystem())
//	root := timeline.NewSequence(
//		timeline.NewAnimation(fadeIn, time.Second),
//		timeline.NewWait(300*time.Millisecond),
//		timeline.NewStagger(100*time.Millisecond,
//			timeline.NewAnimation(slideA, time.Second),
//			timeline.NewAnimation(slideB, time.Second),
//		),
//	)
//	root.Start(sched, func(bool) { fmt.Println("done") })
//
// Once started, a timeline cannot be cancelled, paused or rewound, and its
// children must not be mutated. Completion is reported exactly once per
// node; a false success flag from the platform primitive is passed through
// leaf completions verbatim but never aborts the rest of the timeline.
//
// Stagger and Parallel report completion when their last-indexed child
// completes, not when every child has finished. A short last child can
// therefore complete the group while earlier children are still animating.
// This mirrors the behavior of the platform timelines this package models;
// see the package tests for the pinned semantics.
package timeline
