// Package script loads declarative timeline documents from YAML. A script
// nests sequence, stagger, parallel, wait and animate steps; animate steps
// name the property they set, so the caller supplies a resolver that turns
// each step into the actual side-effecting action:
//
//	name: intro
//	props:
//	  logo.alpha: 0
//	timeline:
//	  sequence:
//	    steps:
//	      - animate: {set: logo.alpha, to: 1, duration: 1s, curve: easeOutCubic}
//	      - wait: 300ms
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mikehobi/motion/easing"
	"github.com/mikehobi/motion/timeline"
)

// Script is one YAML timeline document.
type Script struct {
	Name     string             `yaml:"name"`
	Props    map[string]float64 `yaml:"props,omitempty"`
	Timeline Step               `yaml:"timeline"`
}

// Step is one node of the document tree. Exactly one of the fields must be
// set.
type Step struct {
	Animate  *AnimateStep `yaml:"animate,omitempty"`
	Wait     *Duration    `yaml:"wait,omitempty"`
	Sequence *GroupStep   `yaml:"sequence,omitempty"`
	Stagger  *GroupStep   `yaml:"stagger,omitempty"`
	Parallel *GroupStep   `yaml:"parallel,omitempty"`
}

// AnimateStep is a leaf: animate one property to a target value.
type AnimateStep struct {
	Set      string   `yaml:"set"`
	To       float64  `yaml:"to"`
	Duration Duration `yaml:"duration"`
	Delay    Duration `yaml:"delay,omitempty"`
	Curve    string   `yaml:"curve,omitempty"`
}

// GroupStep is the shared shape of sequence, stagger and parallel steps.
type GroupStep struct {
	Delay    Duration `yaml:"delay,omitempty"`
	Interval Duration `yaml:"interval,omitempty"`
	Steps    []Step   `yaml:"steps"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses a script document and validates its structure.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	if err := validateStep(s.Timeline, "timeline"); err != nil {
		return nil, err
	}
	return &s, nil
}

func validateStep(st Step, path string) error {
	kinds := 0
	if st.Animate != nil {
		kinds++
	}
	if st.Wait != nil {
		kinds++
	}
	if st.Sequence != nil {
		kinds++
	}
	if st.Stagger != nil {
		kinds++
	}
	if st.Parallel != nil {
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("script: %s must have exactly one of animate/wait/sequence/stagger/parallel, has %d", path, kinds)
	}

	if a := st.Animate; a != nil {
		if a.Set == "" {
			return fmt.Errorf("script: %s.animate is missing a property to set", path)
		}
		if a.Duration < 0 || a.Delay < 0 {
			return fmt.Errorf("script: %s.animate has a negative duration or delay", path)
		}
		if a.Curve != "" {
			if _, ok := easing.ByName(a.Curve); !ok {
				return fmt.Errorf("script: %s.animate names unknown curve %q", path, a.Curve)
			}
		}
		return nil
	}
	if st.Wait != nil {
		if *st.Wait < 0 {
			return fmt.Errorf("script: %s.wait is negative", path)
		}
		return nil
	}

	var group *GroupStep
	var kind string
	switch {
	case st.Sequence != nil:
		group, kind = st.Sequence, "sequence"
	case st.Stagger != nil:
		group, kind = st.Stagger, "stagger"
	default:
		group, kind = st.Parallel, "parallel"
	}
	if group.Delay < 0 || group.Interval < 0 {
		return fmt.Errorf("script: %s.%s has a negative delay or interval", path, kind)
	}
	for i, child := range group.Steps {
		if err := validateStep(child, fmt.Sprintf("%s.%s.steps[%d]", path, kind, i)); err != nil {
			return err
		}
	}
	return nil
}

// Resolver turns an animate step into its side-effecting action.
type Resolver func(step AnimateStep) (func(), error)

// Build assembles the timeline tree, resolving every animate step through
// resolve.
func (s *Script) Build(resolve Resolver) (timeline.Node, error) {
	return buildStep(s.Timeline, resolve)
}

func buildStep(st Step, resolve Resolver) (timeline.Node, error) {
	switch {
	case st.Animate != nil:
		action, err := resolve(*st.Animate)
		if err != nil {
			return nil, err
		}
		a := timeline.NewAnimation(action, st.Animate.Duration.Std())
		a.Delay = st.Animate.Delay.Std()
		if st.Animate.Curve != "" {
			curve, _ := easing.ByName(st.Animate.Curve)
			a.Curve = curve
		}
		return a, nil

	case st.Wait != nil:
		return timeline.NewWait(st.Wait.Std()), nil

	case st.Sequence != nil:
		seq := timeline.NewSequence()
		seq.Delay = st.Sequence.Delay.Std()
		seq.Interval = st.Sequence.Interval.Std()
		if err := appendSteps(seq, st.Sequence.Steps, resolve); err != nil {
			return nil, err
		}
		return seq, nil

	case st.Stagger != nil:
		sg := timeline.NewStagger(st.Stagger.Interval.Std())
		sg.Delay = st.Stagger.Delay.Std()
		if err := appendSteps(sg, st.Stagger.Steps, resolve); err != nil {
			return nil, err
		}
		return sg, nil

	case st.Parallel != nil:
		p := timeline.NewParallel()
		p.Delay = st.Parallel.Delay.Std()
		if err := appendSteps(p, st.Parallel.Steps, resolve); err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("script: empty step")
}

type appender interface {
	Append(timeline.Node)
}

func appendSteps(dst appender, steps []Step, resolve Resolver) error {
	for _, child := range steps {
		node, err := buildStep(child, resolve)
		if err != nil {
			return err
		}
		dst.Append(node)
	}
	return nil
}

// Targets lists every animated property in order of first appearance.
func (s *Script) Targets() []string {
	var out []string
	seen := make(map[string]bool)
	var walk func(Step)
	walk = func(st Step) {
		if st.Animate != nil {
			if !seen[st.Animate.Set] {
				seen[st.Animate.Set] = true
				out = append(out, st.Animate.Set)
			}
			return
		}
		var steps []Step
		switch {
		case st.Sequence != nil:
			steps = st.Sequence.Steps
		case st.Stagger != nil:
			steps = st.Stagger.Steps
		case st.Parallel != nil:
			steps = st.Parallel.Steps
		}
		for _, child := range steps {
			walk(child)
		}
	}
	walk(s.Timeline)
	return out
}
