package touchgui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseScriptErrors(t *testing.T) {
	if _, err := ParseScript([]byte("{not json")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := ParseScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script accepted")
	}
}

func TestScriptTapButton(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())

	runner, err := ParseScript([]byte(`{"steps": [
		{"action": "tap", "pointer": 1, "x": 1850, "y": 1050}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10 && !runner.Done(); i++ {
		runner.Step(g)
		g.Step(0.016)
	}

	if !runner.Done() {
		t.Fatal("script never finished")
	}
	if sink.keyCount(ebiten.KeySpace, true) != 1 || sink.keyCount(ebiten.KeySpace, false) != 1 {
		t.Error("scripted tap did not press and release the jump key")
	}
}

func TestScriptDragTurnsCamera(t *testing.T) {
	g, _, _ := newTestGUI(testConfig())

	runner, err := ParseScript([]byte(`{"steps": [
		{"action": "drag", "pointer": 1,
		 "fromX": 1100, "fromY": 400, "toX": 900, "toY": 400, "frames": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 20 && !runner.Done(); i++ {
		runner.Step(g)
		g.Step(0.016)
	}

	if !runner.Done() {
		t.Fatal("script never finished")
	}
	// Dragging left turns the camera left: positive accumulated yaw.
	if yaw := g.YawChange(); yaw <= 0 {
		t.Errorf("yaw after leftward drag = %v, want > 0", yaw)
	}
	if g.tapState != TapNone {
		t.Errorf("drag classified as a tap: %v", g.tapState)
	}
}

func TestScriptWait(t *testing.T) {
	g, sink, _ := newTestGUI(testConfig())

	runner, err := ParseScript([]byte(`{"steps": [
		{"action": "press", "pointer": 1, "x": 1850, "y": 1050},
		{"action": "wait", "frames": 3},
		{"action": "release", "pointer": 1, "x": 1850, "y": 1050}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	frames := 0
	for !runner.Done() {
		runner.Step(g)
		g.Step(0.016)
		frames++
		if frames > 20 {
			t.Fatal("script never finished")
		}
	}

	if sink.keyCount(ebiten.KeySpace, true) != 1 || sink.keyCount(ebiten.KeySpace, false) != 1 {
		t.Error("press/wait/release did not produce one key down and up")
	}
}
