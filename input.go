package sprout

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Event types ---

// Event is a discrete input stimulus delivered to the Square. The concrete
// types are KeyEvent, MouseButtonEvent, and CursorEvent. Events carry no
// window state, so they can be synthesized in tests and scripts as easily
// as polled from hardware.
type Event interface {
	isEvent()
}

// KeyEvent is a directional key transition. Only Pressed transitions move
// the square; releases are delivered but ignored.
type KeyEvent struct {
	Dir     Direction
	Pressed bool
}

// MouseButtonEvent is a mouse button transition. Buttons carry no position:
// the square acts on the last CursorEvent seen.
type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
}

// CursorEvent is an absolute pointer position in canvas coordinates.
type CursorEvent struct {
	X, Y float64
}

func (KeyEvent) isEvent()         {}
func (MouseButtonEvent) isEvent() {}
func (CursorEvent) isEvent()      {}

// HandleEvent applies one input event against a canvas of the given size
// and reports whether the square needs to be redrawn. Cursor moves only
// update tracking state; a left-button press recenters the square on the
// tracked cursor; directional key presses nudge with clamping.
func (s *Square) HandleEvent(ev Event, width, height int) bool {
	switch e := ev.(type) {
	case KeyEvent:
		if !e.Pressed {
			return false
		}
		s.Nudge(e.Dir, width, height)
		return true
	case CursorEvent:
		s.SetCursor(e.X, e.Y)
		return false
	case MouseButtonEvent:
		if !e.Pressed || e.Button != MouseButtonLeft {
			return false
		}
		s.CenterOn(width, height)
		return true
	default:
		return false
	}
}

// --- Synthetic event queue ---

// Queue is a FIFO of pending input events. The host drains it into the
// Square each frame before polling hardware, so scripted demos and tests
// drive the square exactly the way real input does.
type Queue struct {
	evs []Event
}

// Push appends a single event.
func (q *Queue) Push(ev Event) {
	q.evs = append(q.evs, ev)
}

// InjectKey queues a press and release of the given direction.
func (q *Queue) InjectKey(dir Direction) {
	q.Push(KeyEvent{Dir: dir, Pressed: true})
	q.Push(KeyEvent{Dir: dir, Pressed: false})
}

// InjectCursor queues a pointer move to (x, y).
func (q *Queue) InjectCursor(x, y float64) {
	q.Push(CursorEvent{X: x, Y: y})
}

// InjectClick queues a pointer move to (x, y) followed by a left-button
// press and release, matching what real hardware delivers for a click.
func (q *Queue) InjectClick(x, y float64) {
	q.InjectCursor(x, y)
	q.Push(MouseButtonEvent{Button: MouseButtonLeft, Pressed: true})
	q.Push(MouseButtonEvent{Button: MouseButtonLeft, Pressed: false})
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.evs)
}

// Drain applies all queued events to the square in order and reports
// whether any of them requested a redraw.
func (q *Queue) Drain(s *Square, width, height int) bool {
	redraw := false
	for _, ev := range q.evs {
		if s.HandleEvent(ev, width, height) {
			redraw = true
		}
	}
	q.evs = q.evs[:0]
	return redraw
}

// --- Hardware polling ---

// keyBindings maps physical keys to logical directions. WASD and the arrow
// keys are both live.
var keyBindings = [...]struct {
	key ebiten.Key
	dir Direction
}{
	{ebiten.KeyW, DirUp},
	{ebiten.KeyA, DirLeft},
	{ebiten.KeyS, DirDown},
	{ebiten.KeyD, DirRight},
	{ebiten.KeyArrowUp, DirUp},
	{ebiten.KeyArrowLeft, DirLeft},
	{ebiten.KeyArrowDown, DirDown},
	{ebiten.KeyArrowRight, DirRight},
}

// mouseBindings pairs ebiten buttons with sprout buttons for edge detection.
var mouseBindings = [...]struct {
	btn ebiten.MouseButton
	id  MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// poller turns Ebitengine's polled input state into discrete events by
// tracking the previous frame's state and emitting transitions.
type poller struct {
	keyDown   [len(keyBindings)]bool
	mouseDown [len(mouseBindings)]bool
	cursorX   float64
	cursorY   float64
	started   bool
}

// Poll appends this frame's discrete events to evs and returns it. Cursor
// position is emitted first (it is always emitted on the first frame) so
// that a click in the same frame sees an up-to-date cursor.
func (p *poller) Poll(evs []Event) []Event {
	mx, my := ebiten.CursorPosition()
	cx, cy := float64(mx), float64(my)
	if !p.started || cx != p.cursorX || cy != p.cursorY {
		evs = append(evs, CursorEvent{X: cx, Y: cy})
		p.cursorX, p.cursorY = cx, cy
	}
	p.started = true

	for i, b := range keyBindings {
		down := ebiten.IsKeyPressed(b.key)
		if down != p.keyDown[i] {
			evs = append(evs, KeyEvent{Dir: b.dir, Pressed: down})
			p.keyDown[i] = down
		}
	}

	for i, b := range mouseBindings {
		down := ebiten.IsMouseButtonPressed(b.btn)
		if down != p.mouseDown[i] {
			evs = append(evs, MouseButtonEvent{Button: b.id, Pressed: down})
			p.mouseDown[i] = down
		}
	}

	return evs
}
