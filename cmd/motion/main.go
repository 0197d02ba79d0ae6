package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mikehobi/motion/clock"
	"github.com/mikehobi/motion/easing"
	"github.com/mikehobi/motion/internal/play"
	"github.com/mikehobi/motion/script"
	"github.com/mikehobi/motion/timeline"
	"github.com/mikehobi/motion/trace"
	"github.com/mikehobi/motion/tween"
)

var (
	plotWidth  int
	plotHeight int
	csvOut     bool
	jsonOut    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "motion",
		Short: "declarative animation timelines",
	}

	curvesCmd := &cobra.Command{
		Use:   "curves [name]",
		Short: "list easing curves or plot one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCurves,
	}
	curvesCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	curvesCmd.Flags().IntVar(&plotHeight, "height", 14, "plot height")

	traceCmd := &cobra.Command{
		Use:   "trace [script.yaml]",
		Short: "print the schedule a script produces",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrace,
	}
	traceCmd.Flags().BoolVar(&csvOut, "csv", false, "emit CSV")
	traceCmd.Flags().BoolVar(&jsonOut, "json", false, "emit JSON")

	playCmd := &cobra.Command{
		Use:   "play [script.yaml]",
		Short: "play a script in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlay,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "play the built-in showcase timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return play.Run("motion demo", demoTimeline)
		},
	}

	rootCmd.AddCommand(curvesCmd, traceCmd, playCmd, demoCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCurves(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tX1\tY1\tX2\tY2")
		for _, name := range easing.Names() {
			c, _ := easing.ByName(name)
			fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\n", name, c.X1, c.Y1, c.X2, c.Y2)
		}
		return w.Flush()
	}

	name := args[0]
	c, ok := easing.ByName(name)
	if !ok {
		return fmt.Errorf("unknown curve: %s (see `motion curves`)", name)
	}

	data := make([]float64, plotWidth)
	for i := range data {
		x := float64(i) / float64(plotWidth-1)
		data[i] = c.Ease(x)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(name),
	)
	fmt.Println(graph)
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	// Actions are irrelevant for scheduling; resolve them to no-ops.
	root, err := s.Build(func(script.AnimateStep) (func(), error) {
		return func() {}, nil
	})
	if err != nil {
		return err
	}

	vc := clock.NewVirtual()
	rec := trace.NewRecorder(timeline.NewClockAnimator(vc), vc)
	sched := timeline.NewScheduler(rec, vc)

	var doneAt time.Duration
	sched.Run(root, func(bool) { doneAt = vc.Now() })
	vc.AdvanceToIdle()

	events := rec.Events()
	switch {
	case csvOut:
		return trace.WriteCSV(os.Stdout, events)
	case jsonOut:
		return trace.WriteJSON(os.Stdout, events)
	}

	if s.Name != "" {
		fmt.Printf("script: %s\n", s.Name)
	}
	if err := trace.WriteTable(os.Stdout, events); err != nil {
		return err
	}
	fmt.Printf("\ntimeline completed at %v\n", doneAt)
	return nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	return play.Run(s.Name, func(b *tween.Board) (timeline.Node, error) {
		for _, name := range s.Targets() {
			b.Define(name, s.Props[name])
		}
		return s.Build(func(step script.AnimateStep) (func(), error) {
			name, to := step.Set, step.To
			return func() { b.Set(name, to) }, nil
		})
	})
}

// demoTimeline exercises every node kind: a staggered entrance, a parallel
// pulse and a sequenced exit.
func demoTimeline(b *tween.Board) (timeline.Node, error) {
	b.Define("alpha", 0)
	b.Define("width", 0)
	b.Define("height", 0)

	entrance := timeline.NewStagger(120*time.Millisecond,
		timeline.NewAnimation(func() { b.Set("alpha", 1) }, 800*time.Millisecond),
		timeline.NewAnimation(func() { b.Set("width", 0.8) }, 800*time.Millisecond),
		timeline.NewAnimation(func() { b.Set("height", 0.6) }, 800*time.Millisecond),
	)

	pulseUp := timeline.NewParallel(
		timeline.NewAnimation(func() { b.Set("width", 1) }, 300*time.Millisecond),
		timeline.NewAnimation(func() { b.Set("height", 1) }, 300*time.Millisecond),
	)
	pulseDown := timeline.NewParallel(
		timeline.NewAnimation(func() { b.Set("width", 0.8) }, 300*time.Millisecond),
		timeline.NewAnimation(func() { b.Set("height", 0.6) }, 300*time.Millisecond),
	)

	exit := timeline.NewParallel()
	for _, name := range []string{"alpha", "width", "height"} {
		name := name
		a := timeline.NewAnimation(func() { b.Set(name, 0) }, 600*time.Millisecond)
		a.Curve = easing.InCubic
		exit.Append(a)
	}

	root := timeline.NewSequence(
		entrance,
		timeline.NewWait(200*time.Millisecond),
		pulseUp,
		pulseDown,
		timeline.NewWait(200*time.Millisecond),
		exit,
	)
	return root, nil
}
