// Package touchgui interprets raw multi-touch pointer events as the
// control signals a 3D game client normally derives from mouse and
// keyboard: camera rotation deltas, a movement-joystick vector, discrete
// action key presses, and emulated dig/place mouse buttons.
//
// # Overview
//
// The engine classifies each new touch by screen region and current
// state into one of: fixed action button, hotbar slot, auto-hide bar
// control, virtual joystick, or camera-look pointer. Synthesized key and
// mouse events go through a [Sink], the same channel real hardware input
// uses, so the rest of the game cannot tell touch apart from a mouse and
// keyboard.
//
// # Quick start
//
//	cfg := touchgui.DefaultConfig(screenW, screenH)
//	gui := touchgui.New(cfg, sink)
//	gui.Init(assets, nil) // nil factory uses the stock SpriteWidget
//	poller := touchgui.NewTouchPoller(gui)
//
// Then once per frame, in order:
//
//	poller.Poll()               // raw touches -> TranslateEvent
//	gui.Step(dt)                // repeats, long taps, bar timeouts
//	yaw := gui.YawChange()      // destructive reads
//	pitch := gui.PitchChange()
//	gui.ApplyContextControls(mode) // tap state -> emulated mouse
//
// Games with their own event pipeline can skip [TouchPoller] and feed
// [GUI.TranslateEvent] directly. Games with their own GUI toolkit pass a
// [WidgetFactory] to Init and render the widgets themselves instead of
// calling [GUI.Draw].
//
// All methods must be called from the game loop thread; the engine has
// no internal locking.
package touchgui
