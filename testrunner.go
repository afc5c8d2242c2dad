package sceneedit

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	Key    string  `json:"key,omitempty"`
	Name   string  `json:"name,omitempty"`
	Mode   string  `json:"mode,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click": true, "drag": true, "rightdrag": true, "middledrag": true,
	"key": true, "keydown": true, "keyup": true, "wheel": true,
	"wait": true, "select": true, "mode": true,
}

// ScriptRunner replays a JSON input script through the editor's injection
// queue, one step whenever the queue has drained. Attach with SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	errs      []error
}

// LoadScript parses a JSON input script.
//
//	{"steps": [
//	  {"action": "click", "x": 400, "y": 300},
//	  {"action": "rightdrag", "fromX": 10, "fromY": 10, "toX": 60, "toY": 10, "frames": 6},
//	  {"action": "key", "key": "KeyF"},
//	  {"action": "wait", "frames": 30}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "mode" {
			if _, err := ParseTransformMode(st.Mode); err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScriptRunner attaches runner. Its step runs at the start of every frame.
// Nil detaches.
func (e *Editor) SetScriptRunner(runner *ScriptRunner) {
	e.runner = runner
}

// Done reports whether every step has executed and its input was consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Errors returns step failures, such as a select of an unknown node.
func (r *ScriptRunner) Errors() []error {
	return r.errs
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(e *Editor) {
	if r.done {
		return
	}
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		e.InjectClick(st.X, st.Y)
	case "drag":
		e.InjectDrag(MouseButtonLeft, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "rightdrag":
		e.InjectDrag(MouseButtonRight, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "middledrag":
		e.InjectDrag(MouseButtonMiddle, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "key":
		e.InjectKey(KeyCode(st.Key))
	case "keydown":
		e.InjectKeyDown(KeyCode(st.Key))
	case "keyup":
		e.InjectKeyUp(KeyCode(st.Key))
	case "wheel":
		e.InjectWheel(st.DeltaY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "select":
		n := e.scene.FindByName(st.Name)
		if n == nil && st.Name != "" {
			r.errs = append(r.errs, fmt.Errorf("step %d: no node named %q", r.cursor-1, st.Name))
		}
		e.SetSelectedObject(n)
	case "mode":
		mode, _ := ParseTransformMode(st.Mode)
		e.SetTransformMode(mode)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
