package trace

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mikehobi/motion/clock"
	"github.com/mikehobi/motion/timeline"
)

func record(t *testing.T, root interface {
	Start(*timeline.Scheduler, timeline.CompletionFunc)
}) []Event {
	t.Helper()
	vc := clock.NewVirtual()
	rec := NewRecorder(timeline.NewClockAnimator(vc), vc)
	s := timeline.NewScheduler(rec, vc)

	root.Start(s, nil)
	vc.AdvanceToIdle()
	return rec.Events()
}

func TestRecorderSequenceSchedule(t *testing.T) {
	seq := timeline.NewSequence(
		timeline.NewAnimation(nil, time.Second),
		timeline.NewAnimation(nil, 500*time.Millisecond),
	)

	events := record(t, seq)
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d: %v", len(events), events)
	}

	want := []struct {
		at    time.Duration
		kind  string
		label string
	}{
		{0, "start", "anim-1"},
		{time.Second, "complete", "anim-1"},
		{time.Second, "start", "anim-2"},
		{1500 * time.Millisecond, "complete", "anim-2"},
	}
	for i, w := range want {
		e := events[i]
		if e.At != w.at || e.Kind != w.kind || e.Label != w.label {
			t.Errorf("event %d = {%v %s %s}, want {%v %s %s}",
				i, e.At, e.Kind, e.Label, w.at, w.kind, w.label)
		}
	}
}

func TestRecorderStaggerOverlap(t *testing.T) {
	st := timeline.NewStagger(100*time.Millisecond,
		timeline.NewAnimation(nil, time.Second),
		timeline.NewAnimation(nil, 200*time.Millisecond),
	)

	events := record(t, st)

	var starts []time.Duration
	for _, e := range events {
		if e.Kind == "start" {
			starts = append(starts, e.At)
		}
	}
	if len(starts) != 2 || starts[0] != 0 || starts[1] != 100*time.Millisecond {
		t.Errorf("start times = %v, want [0 100ms]", starts)
	}

	// anim-2 settles before anim-1 despite starting later.
	var completes []string
	for _, e := range events {
		if e.Kind == "complete" {
			completes = append(completes, e.Label)
		}
	}
	if len(completes) != 2 || completes[0] != "anim-2" {
		t.Errorf("completion order = %v, want anim-2 first", completes)
	}
}

func TestRecorderCurveNames(t *testing.T) {
	a := timeline.NewAnimation(nil, time.Second)
	events := record(t, timeline.NewSequence(a))

	if events[0].Curve != "easeInOutSine" {
		t.Errorf("curve label = %q, want easeInOutSine", events[0].Curve)
	}
}

func TestWriteTable(t *testing.T) {
	seq := timeline.NewSequence(timeline.NewAnimation(nil, time.Second))
	events := record(t, seq)

	var buf bytes.Buffer
	if err := WriteTable(&buf, events); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "anim-1") || !strings.Contains(out, "complete") {
		t.Errorf("table output missing rows:\n%s", out)
	}
}

func TestWriteCSV(t *testing.T) {
	seq := timeline.NewSequence(timeline.NewAnimation(nil, time.Second))
	events := record(t, seq)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, events); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "at,event,label") {
		t.Errorf("unexpected header: %s", lines[0])
	}
}

func TestWriteJSON(t *testing.T) {
	seq := timeline.NewSequence(timeline.NewAnimation(nil, time.Second))
	events := record(t, seq)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, events); err != nil {
		t.Fatal(err)
	}

	var decoded []Event
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if len(decoded) != len(events) {
		t.Errorf("decoded %d events, want %d", len(decoded), len(events))
	}
}
