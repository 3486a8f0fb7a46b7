package testing

import (
	"github.com/go-drift/piemenu/pkg/gestures"
	"github.com/go-drift/piemenu/pkg/graphics"
)

// pointerState tracks where a simulated pointer was routed on down.
type pointerState struct {
	target   *mountedMenu
	position graphics.Offset
	kind     gestures.PointerDeviceKind
	buttons  gestures.Buttons
}

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Down presses a pointer at pos and returns its id. The canvas sees the
// event first; if it does not claim the pointer, the topmost menu whose
// child contains pos receives it.
func (t *MenuTester) Down(pos graphics.Offset, kind gestures.PointerDeviceKind, buttons gestures.Buttons) int64 {
	id := allocPointerID()
	p := &pointerState{position: pos, kind: kind, buttons: buttons}
	t.pointers[id] = p

	event := gestures.PointerEvent{
		PointerID: id,
		Position:  pos,
		Phase:     gestures.PointerPhaseDown,
		Kind:      kind,
		Buttons:   buttons,
	}
	if t.canvas.HandlePointer(event) {
		return id
	}
	p.target = t.hitTest(pos)
	if p.target != nil {
		event.LocalPosition = pos.Sub(p.target.origin)
		p.target.state.HandlePointer(event)
	}
	t.arena.Close(id)
	return id
}

// Touch presses a finger at pos.
func (t *MenuTester) Touch(pos graphics.Offset) int64 {
	return t.Down(pos, gestures.PointerDeviceTouch, gestures.ButtonPrimary)
}

// Click presses a mouse button at pos.
func (t *MenuTester) Click(pos graphics.Offset, buttons gestures.Buttons) int64 {
	return t.Down(pos, gestures.PointerDeviceMouse, buttons)
}

// Move moves pointer id to pos.
func (t *MenuTester) Move(id int64, pos graphics.Offset) {
	p, ok := t.pointers[id]
	if !ok {
		return
	}
	delta := pos.Sub(p.position)
	p.position = pos
	t.dispatch(id, p, gestures.PointerEvent{
		Position: pos,
		Delta:    delta,
		Phase:    gestures.PointerPhaseMove,
	})
}

// Up releases pointer id where it last was.
func (t *MenuTester) Up(id int64) {
	t.end(id, gestures.PointerPhaseUp)
}

// Cancel aborts pointer id.
func (t *MenuTester) Cancel(id int64) {
	t.end(id, gestures.PointerPhaseCancel)
}

// Tap presses and releases a finger at pos without pumping in between.
func (t *MenuTester) Tap(pos graphics.Offset) {
	t.Up(t.Touch(pos))
}

func (t *MenuTester) end(id int64, phase gestures.PointerPhase) {
	p, ok := t.pointers[id]
	if !ok {
		return
	}
	delete(t.pointers, id)
	t.dispatch(id, p, gestures.PointerEvent{Position: p.position, Phase: phase})
	t.arena.Sweep(id)
}

func (t *MenuTester) dispatch(id int64, p *pointerState, event gestures.PointerEvent) {
	event.PointerID = id
	event.Kind = p.kind
	event.Buttons = p.buttons
	claimed := t.canvas.HandlePointer(event)
	if claimed || p.target == nil {
		return
	}
	event.LocalPosition = event.Position.Sub(p.target.origin)
	p.target.state.HandlePointer(event)
}

func (t *MenuTester) hitTest(pos graphics.Offset) *mountedMenu {
	for i := len(t.menus) - 1; i >= 0; i-- {
		m := t.menus[i]
		if box, ok := m.state.RenderBox(); ok && box.Contains(pos) {
			return m
		}
	}
	return nil
}
