package sway

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Screen string  `json:"screen,omitempty"`
	Name   string  `json:"name,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences screen batches, injected pointer events and waits
// across ticks for scripted scenario tests. Attach to a Scene via
// SetTestRunner.
//
// Actions:
//
//	show, hide   play the named config on a screen ("screen", "name")
//	click, hover inject pointer input at ("x", "y")
//	wait         wait "frames" ticks
//	settle       wait until the named screen (or every screen) is idle
//	capture      capture the next drawn frame, labeled "name"
type TestRunner struct {
	steps     []testStep
	screens   map[string]*Screen
	cursor    int
	waitCount int
	settling  string
	done      bool
}

// LoadTestScript parses a JSON test script. screens resolves the screen
// names used by show, hide and settle steps.
func LoadTestScript(jsonData []byte, screens map[string]*Screen) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "show", "hide":
			if _, ok := screens[st.Screen]; !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown screen %q", i, st.Screen)
			}
		case "settle":
			if _, ok := screens[st.Screen]; st.Screen != "" && !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown screen %q", i, st.Screen)
			}
		case "click", "hover", "wait", "capture":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps, screens: screens}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Tick before injected input is processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one tick. Called from Scene.Tick.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settling != "" {
		if r.busy(r.settling) {
			return
		}
		r.settling = ""
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "show":
		r.screens[st.Screen].Show(st.Name)
	case "hide":
		r.screens[st.Screen].Hide(st.Name)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "hover":
		s.InjectHover(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	case "capture":
		s.Capture(st.Name)
	case "settle":
		r.settling = st.Screen
		if r.settling == "" {
			r.settling = "*"
		}
	}
}

// busy reports whether the named screen, or any screen for "*", has a
// batch in flight.
func (r *TestRunner) busy(name string) bool {
	if name != "*" {
		return r.screens[name].IsAnimating()
	}
	for _, sc := range r.screens {
		if sc.IsAnimating() {
			return true
		}
	}
	return false
}
