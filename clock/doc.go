// Package clock provides the deferred-callback facility the timeline
// scheduler runs on.
//
// [System] defers callbacks with real timers. [Virtual] keeps a manually
// advanced clock with an ordered pending queue, so timelines can be executed
// instantly and deterministically:
//
//	vc := clock.NewVirtual()
//	sched := timeline.NewScheduler(timeline.NewClockAnimator(vc), vc)
//	sched.Run(root, done)
//	vc.Advance(5 * time.Second)
package clock
