package pie

import (
	"time"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/errors"
	"github.com/go-drift/piemenu/pkg/gestures"
	"github.com/go-drift/piemenu/pkg/graphics"
)

// PressSlop is how far a pointer may travel before the press stops
// counting as a tap.
const PressSlop = 8.0

const (
	// Open delays shorter than this bounce the child on pointer down.
	bounceOnDownBelow = 100 * time.Millisecond

	// A bounce is held for at least this long before reversing.
	minBounceWindow = 75 * time.Millisecond
	// With no open delay the menu opens on the same frame, so the bounce
	// is held a little longer.
	minBounceWindowNoDelay = 100 * time.Millisecond
)

// PressState is the most recent press on a menu's child.
type PressState struct {
	Pressed bool
	// Offset is the press position in global coordinates.
	Offset graphics.Offset
	// LocalOffset is the press position relative to the child.
	LocalOffset graphics.Offset
	Buttons     gestures.Buttons
	// Canceled is set once the press can no longer count as a tap.
	Canceled bool
}

// DebounceDelay returns how long to wait before reversing a bounce that
// has been held for elapsed.
func DebounceDelay(elapsed, openDelay time.Duration) time.Duration {
	window := minBounceWindow
	if openDelay == 0 {
		window = minBounceWindowNoDelay
	}
	if elapsed >= window {
		return 0
	}
	return window - elapsed
}

// HandlePointer dispatches a pointer event routed to this menu's child.
func (s *PieMenuState) HandlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PointerPhaseDown:
		s.OnPointerDown(event)
	case gestures.PointerPhaseMove:
		s.OnPointerMove(event)
	case gestures.PointerPhaseUp:
		s.OnPointerUp(event)
	case gestures.PointerPhaseCancel:
		s.OnPointerCancel(event)
	}
}

// OnPointerDown records the press and, unless a menu is already open,
// bounces the child and attaches the menu at the press point.
func (s *PieMenuState) OnPointerDown(event gestures.PointerEvent) {
	if s.IsDisposed() {
		return
	}
	s.SetState(func() {
		s.press.Pressed = true
		s.press.Offset = event.Position
		s.press.LocalOffset = event.LocalPosition
		s.press.Buttons = event.Buttons
	})
	s.tracking = true
	s.pointerID = event.PointerID
	s.engine.SetPressOffset(event.LocalPosition)

	if s.widget.Canvas.State().MenuOpen() {
		return
	}
	s.press.Canceled = false

	th := s.theme()
	mouse := event.Kind == gestures.PointerDeviceMouse
	leftClicked := mouse && event.Buttons == gestures.ButtonPrimary
	rightClicked := mouse && event.Buttons == gestures.ButtonSecondary

	if mouse && !leftClicked && !rightClicked {
		return
	}
	if rightClicked && !th.RightClickShowsMenu {
		return
	}
	if th.DelayDuration < bounceOnDownBelow || rightClicked {
		s.bounce()
	}
	if leftClicked && !th.LeftClickShowsMenu {
		return
	}

	s.recognizer.AddPointer(event)
	at := event.Position
	s.attachMenu(rightClicked, &at, nil, graphics.Offset{})
}

// OnPointerMove cancels the press once the pointer leaves PressSlop.
// Moves are ignored while any menu is open; the canvas tracks them then.
func (s *PieMenuState) OnPointerMove(event gestures.PointerEvent) {
	if s.IsDisposed() || !s.tracking || event.PointerID != s.pointerID {
		return
	}
	s.recognizer.HandleEvent(event)
	if s.widget.Canvas.State().MenuOpen() {
		return
	}
	if event.Position.Sub(s.press.Offset).Distance() > PressSlop {
		s.press.Canceled = true
		s.debounce()
	}
}

// OnPointerUp reverses the bounce and reports a tap when the press was
// not canceled and did not open a menu.
func (s *PieMenuState) OnPointerUp(event gestures.PointerEvent) {
	if s.IsDisposed() || !s.tracking || event.PointerID != s.pointerID {
		return
	}
	s.tracking = false
	s.recognizer.HandleEvent(event)
	s.debounce()

	if s.press.Canceled {
		return
	}
	if s.widget.Canvas.State().MenuOpen() && s.theme().DelayDuration != 0 {
		return
	}
	released := event.Buttons
	if released == 0 {
		released = s.press.Buttons
	}
	if event.Kind == gestures.PointerDeviceMouse && released != gestures.ButtonPrimary {
		return
	}
	if s.widget.OnPressed != nil {
		s.widget.OnPressed()
	}
	if s.widget.OnPressedWithDevice != nil {
		s.widget.OnPressedWithDevice(event.Kind)
	}
}

// OnPointerCancel abandons the press without reporting a tap.
func (s *PieMenuState) OnPointerCancel(event gestures.PointerEvent) {
	if s.IsDisposed() || !s.tracking || event.PointerID != s.pointerID {
		return
	}
	s.tracking = false
	s.recognizer.HandleEvent(event)
	s.press.Canceled = true
	s.engine.ClearPressOffset()
	s.debounce()
}

// bounce starts pressing the child in. It is a no-op while a bounce is
// already held.
func (s *PieMenuState) bounce() {
	if s.IsDisposed() || !s.theme().ChildBounceEnabled || s.stopwatch.IsRunning() {
		return
	}
	s.cancelDebounce()
	s.stopwatch.Reset()
	s.stopwatch.Start()
	s.bounceCtl.Forward()
}

// debounce schedules the bounce reversal so that the bounce is visible
// for at least the minimum window.
func (s *PieMenuState) debounce() {
	if s.IsDisposed() || !s.theme().ChildBounceEnabled || !s.stopwatch.IsRunning() {
		return
	}
	s.stopwatch.Stop()
	delay := DebounceDelay(s.stopwatch.Elapsed(), s.theme().DelayDuration)
	s.cancelDebounce()
	s.debounceTimer = animation.AfterFunc(delay, func() {
		s.IfAlive(func() {
			s.debounceTimer = nil
			s.bounceCtl.Reverse()
		})
	})
}

func (s *PieMenuState) cancelDebounce() {
	s.debounceTimer.Cancel()
	s.debounceTimer = nil
}

// attachMenu hands the menu to the canvas, anchored at offset or, failing
// that, at alignment within the child.
func (s *PieMenuState) attachMenu(rightClicked bool, offset *graphics.Offset, alignment *graphics.Alignment, displacement graphics.Offset) bool {
	core.Assert(offset != nil || alignment != nil, "pie.attachMenu", "an offset or an alignment is required")
	if offset == nil && alignment == nil {
		return false
	}
	box, ok := s.RenderBox()
	if !ok {
		panic(&errors.PieError{
			Op:         "pie.attachMenu",
			Kind:       errors.KindPrecondition,
			Err:        ErrNotMounted,
			StackTrace: errors.CaptureStack(),
		})
	}
	return s.widget.Canvas.Attach(AttachRequest{
		Key:          s.key,
		RightClicked: rightClicked,
		Offset:       offset,
		Alignment:    alignment,
		Displacement: displacement,
		RenderBox:    box,
		Child:        s.widget.Child,
		Bounce:       s.bounceCtl,
		Actions:      s.widget.Actions,
		Theme:        s.theme(),
		OnToggle:     s.widget.OnToggle,
	})
}
