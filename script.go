package touchgui

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected pointer events across frames for
// automated interaction testing. Supported actions: "press", "move",
// "release", "tap" (x, y, pointer), "drag" (fromX/Y, toX/Y, frames,
// pointer), and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// ParseScript parses a JSON input script.
func ParseScript(data []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. Call once per frame, before
// GUI.Step so injected events are consumed the same frame they queue.
func (r *ScriptRunner) Step(g *GUI) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(g.inject) > 0 {
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
	case "press":
		g.InjectPress(st.Pointer, Vec2{X: st.X, Y: st.Y})
	case "move":
		g.InjectMove(st.Pointer, Vec2{X: st.X, Y: st.Y})
	case "release":
		g.InjectRelease(st.Pointer, Vec2{X: st.X, Y: st.Y})
	case "tap":
		g.InjectTap(st.Pointer, Vec2{X: st.X, Y: st.Y})
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		g.InjectPress(st.Pointer, Vec2{X: st.FromX, Y: st.FromY})
		steps := frames - 2
		for i := 1; i <= steps; i++ {
			t := float64(i) / float64(steps+1)
			g.InjectMove(st.Pointer, Vec2{
				X: st.FromX + (st.ToX-st.FromX)*t,
				Y: st.FromY + (st.ToY-st.FromY)*t,
			})
		}
		g.InjectRelease(st.Pointer, Vec2{X: st.ToX, Y: st.ToY})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.inject) == 0 {
		r.done = true
	}
}
