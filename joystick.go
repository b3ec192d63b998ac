package touchgui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// joystick is the virtual analog stick. It owns at most one pointer at a
// time; direction and speed are meaningful only while a pointer is
// attached and reset to zero on release.
type joystick struct {
	fixed       bool
	triggersAux bool
	auxKey      ebiten.Key

	buttonSize  float64
	threshold   float64
	screenW     float64
	fixedCenter Vec2

	hasPointer  bool
	pointerID   int
	reallyMoved bool

	// direction is the movement angle in radians: 0 is straight up,
	// growing clockwise (atan2 of dx against -dy).
	direction float64
	// speed is the normalized displacement in [0, 1].
	speed float64
	// auxActive is the deep-push trigger: displacement beyond the catch
	// radius while engaged.
	auxActive bool

	// Visual triple: the idle ring, the engaged background ring, and the
	// moving center knob.
	btnOff, btnBg, btnCenter Widget
}

func (j *joystick) halfSize() float64 {
	return j.buttonSize / 2
}

// catchRadiusSq is the squared radius of the circular region that engages
// the fixed joystick (3x half size).
func (j *joystick) catchRadiusSq() float64 {
	half := j.halfSize()
	return half * half * 9
}

// catches reports whether a press at pos engages the joystick: inside the
// catch circle for a fixed joystick, anywhere in the left third of the
// screen for a free one.
func (j *joystick) catches(pos Vec2) bool {
	if j.fixed {
		return pos.Sub(j.fixedCenter).LengthSq() <= j.catchRadiusSq()
	}
	return pos.X < j.screenW/3
}

// engage makes the pointer the joystick owner. A free joystick's visual
// center snaps to the press point.
func (j *joystick) engage(ev PointerEvent) {
	j.hasPointer = true
	j.pointerID = ev.ID
	j.reallyMoved = false

	j.btnOff.SetVisible(false)
	j.btnBg.SetVisible(true)
	j.btnCenter.SetVisible(true)

	half := j.halfSize()
	if !j.fixed {
		j.btnBg.SetRect(Rect{
			X: ev.Pos.X - half*3, Y: ev.Pos.Y - half*3,
			Width: j.buttonSize * 3, Height: j.buttonSize * 3,
		})
	}
	j.btnCenter.SetRect(Rect{
		X: ev.Pos.X - half, Y: ev.Pos.Y - half,
		Width: j.buttonSize, Height: j.buttonSize,
	})
}

// move updates direction, speed, and the deep-push trigger from the
// owner's position. downPos is where the owning pointer was pressed,
// which is the engaged center of a free joystick.
func (j *joystick) move(pos, downPos Vec2) {
	dir := pos.Sub(downPos)
	if j.fixed {
		dir = pos.Sub(j.fixedCenter)
	}

	inside := pos.Sub(j.fixedCenter).LengthSq() <= j.catchRadiusSq()
	distSq := dir.LengthSq()

	if !j.reallyMoved && !inside &&
		(j.fixed || distSq <= j.threshold*j.threshold) {
		return
	}
	j.reallyMoved = true

	j.direction = math.Atan2(dir.X, -dir.Y)

	dist := math.Sqrt(distSq)
	if dist <= j.threshold {
		// Dead zone: no movement, but the direction keeps its value.
		j.speed = 0
	} else {
		j.speed = math.Min(dist/j.buttonSize, 1)
	}

	half := j.halfSize()
	j.auxActive = dist > half*3

	center := j.fixedCenter
	if !j.fixed {
		center = downPos
	}
	if dist > j.buttonSize {
		// Clamp the knob to the ring so it never visually overshoots.
		j.btnCenter.SetRect(Rect{
			X:     center.X + dir.X*j.buttonSize/dist - half,
			Y:     center.Y + dir.Y*j.buttonSize/dist - half,
			Width: j.buttonSize, Height: j.buttonSize,
		})
	} else {
		j.btnCenter.SetRect(Rect{
			X: pos.X - half, Y: pos.Y - half,
			Width: j.buttonSize, Height: j.buttonSize,
		})
	}
}

// release detaches the owner and zeroes direction, speed, and the deep
// push.
func (j *joystick) release() {
	j.hasPointer = false
	j.direction = 0
	j.speed = 0
	j.auxActive = false

	j.btnOff.SetVisible(true)
	j.btnBg.SetVisible(false)
	j.btnCenter.SetVisible(false)
}

// applyStatus emits the aux key state for the deep-push trigger. It runs
// every frame while the trigger binding is enabled, always emitting a
// release and then a press while active; the sink treats the redundant
// transitions idempotently.
func (j *joystick) applyStatus(sink Sink) {
	if !j.triggersAux || j.auxKey == keyUnknown {
		return
	}

	sink.SendKey(KeyEvent{Key: j.auxKey, Pressed: false})
	if j.auxActive {
		sink.SendKey(KeyEvent{Key: j.auxKey, Pressed: true})
	}
}
