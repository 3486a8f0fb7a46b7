package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/go-drift/piemenu/pkg/gestures"
	"github.com/go-drift/piemenu/pkg/graphics"
)

// mousePointer is the pointer id used for the mouse. Touches are numbered
// after it.
const mousePointer int64 = 1

type trackedPointer struct {
	down     bool
	position graphics.Offset
	kind     gestures.PointerDeviceKind
	buttons  gestures.Buttons
	target   *card
}

// inputRouter polls ebiten once per Update and turns the polled state into
// down, move and up events. The canvas sees each event first; unclaimed
// events go to the card under the pointer at press time.
type inputRouter struct {
	demo     *demo
	pointers map[int64]*trackedPointer
	touches  map[ebiten.TouchID]int64
	nextID   int64
	touchIDs []ebiten.TouchID
}

func newInputRouter(d *demo) *inputRouter {
	return &inputRouter{
		demo:     d,
		pointers: make(map[int64]*trackedPointer),
		touches:  make(map[ebiten.TouchID]int64),
		nextID:   mousePointer + 1,
	}
}

func (r *inputRouter) poll() {
	r.pollMouse()
	r.pollTouches()
}

func (r *inputRouter) pollMouse() {
	mx, my := ebiten.CursorPosition()
	pos := graphics.Offset{X: float64(mx), Y: float64(my)}

	var buttons gestures.Buttons
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= gestures.ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= gestures.ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= gestures.ButtonTertiary
	}
	r.update(mousePointer, pos, buttons != 0, gestures.PointerDeviceMouse, buttons)
}

func (r *inputRouter) pollTouches() {
	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	active := make(map[ebiten.TouchID]bool, len(r.touchIDs))
	for _, tid := range r.touchIDs {
		active[tid] = true
		id, ok := r.touches[tid]
		if !ok {
			id = r.nextID
			r.nextID++
			r.touches[tid] = id
		}
		tx, ty := ebiten.TouchPosition(tid)
		pos := graphics.Offset{X: float64(tx), Y: float64(ty)}
		r.update(id, pos, true, gestures.PointerDeviceTouch, gestures.ButtonPrimary)
	}

	// Release touches that lifted since the last poll.
	for tid, id := range r.touches {
		if active[tid] {
			continue
		}
		if p := r.pointers[id]; p != nil {
			r.update(id, p.position, false, p.kind, p.buttons)
		}
		delete(r.touches, tid)
	}
}

// update runs the pointer state machine for one pointer. The buttons are
// captured on press so a second button mid-drag does not change them.
func (r *inputRouter) update(id int64, pos graphics.Offset, pressed bool, kind gestures.PointerDeviceKind, buttons gestures.Buttons) {
	p := r.pointers[id]
	if p == nil {
		p = &trackedPointer{}
		r.pointers[id] = p
	}

	switch {
	case pressed && !p.down:
		*p = trackedPointer{down: true, position: pos, kind: kind, buttons: buttons}
		r.down(id, p)
	case pressed && pos != p.position:
		delta := pos.Sub(p.position)
		p.position = pos
		r.dispatch(id, p, gestures.PointerEvent{Position: pos, Delta: delta, Phase: gestures.PointerPhaseMove})
	case !pressed && p.down:
		p.down = false
		r.dispatch(id, p, gestures.PointerEvent{Position: p.position, Phase: gestures.PointerPhaseUp})
		r.demo.arena.Sweep(id)
		p.target = nil
	}
}

func (r *inputRouter) down(id int64, p *trackedPointer) {
	event := gestures.PointerEvent{
		PointerID: id,
		Position:  p.position,
		Phase:     gestures.PointerPhaseDown,
		Kind:      p.kind,
		Buttons:   p.buttons,
	}
	if r.demo.canvas.HandlePointer(event) {
		return
	}
	p.target = r.demo.hitTest(p.position)
	if p.target != nil {
		box, _ := p.target.state.RenderBox()
		event.LocalPosition = p.position.Sub(box.TopLeft())
		p.target.state.HandlePointer(event)
	}
	r.demo.arena.Close(id)
}

func (r *inputRouter) dispatch(id int64, p *trackedPointer, event gestures.PointerEvent) {
	event.PointerID = id
	event.Kind = p.kind
	event.Buttons = p.buttons
	if r.demo.canvas.HandlePointer(event) || p.target == nil {
		return
	}
	box, _ := p.target.state.RenderBox()
	event.LocalPosition = event.Position.Sub(box.TopLeft())
	p.target.state.HandlePointer(event)
}
