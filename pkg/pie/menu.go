package pie

import (
	"time"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/gestures"
	"github.com/go-drift/piemenu/pkg/graphics"
	"github.com/go-drift/piemenu/pkg/theme"
)

// PieMenu wraps a child so that pressing it opens a ring of actions.
//
// Example:
//
//	state := pie.Mount(owner, pie.PieMenu{
//	    Canvas:  canvas,
//	    Actions: []pie.PieAction{{Tooltip: "Share", OnSelect: share}},
//	    OnPressed: func() {
//	        openDetails()
//	    },
//	})
type PieMenu struct {
	// Child is the host's handle to the wrapped content.
	Child any

	// Actions are the ring buttons, laid out clockwise from the top.
	Actions []PieAction

	// Theme overrides the canvas theme for this menu. Nil uses the canvas theme.
	Theme *theme.PieTheme

	// Controller opens and closes the menu from code. May be nil.
	Controller *PieController

	// Canvas shows the menu. Required.
	Canvas *PieCanvas

	// Arena receives the menu's long-press recognizer. Nil uses
	// gestures.DefaultArena.
	Arena *gestures.GestureArena

	// OnToggle is called when the menu opens or closes.
	OnToggle func(open bool)

	// OnPressed is called for a tap that did not turn into a menu.
	OnPressed func()

	// OnPressedWithDevice is OnPressed with the pointer's device kind.
	OnPressedWithDevice func(kind gestures.PointerDeviceKind)
}

// CreateState creates the mutable state for this menu.
func (m PieMenu) CreateState() *PieMenuState {
	return &PieMenuState{widget: m}
}

// Mount creates the menu state and mounts it on owner.
func Mount(owner *core.BuildOwner, menu PieMenu) *PieMenuState {
	core.Assert(menu.Canvas != nil, "pie.Mount", "PieMenu requires a Canvas")
	s := menu.CreateState()
	core.Mount(owner, s)
	return s
}

// PieMenuState is the live state of a mounted PieMenu.
type PieMenuState struct {
	core.StateBase

	widget PieMenu
	key    core.Key

	fadeCtl   *animation.AnimationController
	bounceCtl *animation.AnimationController

	press      PressState
	tracking   bool
	pointerID  int64
	recognizer *gestures.LongPressGestureRecognizer

	stopwatch     animation.Stopwatch
	debounceTimer *animation.Timer

	engine   *BounceEngine
	observer *SizeObserver
	box      graphics.Rect
	laidOut  bool

	wasOpen         bool
	unsubController func()
}

// InitState creates the animations and subscribes to the canvas and
// controller.
func (s *PieMenuState) InitState() {
	s.key = core.NewKey()
	th := s.theme()

	s.fadeCtl = core.UseController(s, func() *animation.AnimationController {
		return animation.NewAnimationController(th.FadeDuration)
	})
	s.bounceCtl = core.UseController(s, func() *animation.AnimationController {
		return animation.NewAnimationController(th.ChildBounceDuration)
	})
	s.recognizer = core.UseController(s, func() *gestures.LongPressGestureRecognizer {
		r := gestures.NewLongPressGestureRecognizer(s.widget.Arena, th.DelayDuration)
		// The menu is attached on pointer down; winning the arena only
		// keeps competing recognizers from claiming the press.
		r.OnLongPress = func(graphics.Offset) {}
		return r
	})

	s.engine = NewBounceEngine(th.ChildBounceFactor, th.ChildTiltEnabled)
	core.UseSubscription(s, s.bounceCtl.AddListener(func() {
		s.engine.SetValue(s.bounceCtl.Value)
	}))
	s.observer = NewSizeObserver(s.Element().Owner(), s.Mounted, s.engine.SetSize)

	core.UseSubscription(s, s.widget.Canvas.AddListener(func(CanvasState) {
		s.SetState(nil)
	}))
	s.bindController(s.widget.Controller)
	core.UseSubscription(s, func() {
		if s.unsubController != nil {
			s.unsubController()
		}
	})
	s.configure(th)
}

func (s *PieMenuState) bindController(c *PieController) {
	if s.unsubController != nil {
		s.unsubController()
		s.unsubController = nil
	}
	if c != nil {
		s.unsubController = c.AddListener(s.handleCommand)
	}
}

// Update swaps in a new configuration. The canvas must not change.
func (s *PieMenuState) Update(menu PieMenu) {
	if s.IsDisposed() {
		return
	}
	core.Assert(menu.Canvas == s.widget.Canvas, "pie.PieMenuState.Update", "a mounted PieMenu cannot change canvas")
	if menu.Controller != s.widget.Controller {
		s.bindController(menu.Controller)
	}
	if menu.Arena != s.widget.Arena {
		s.recognizer.Arena = menu.Arena
	}
	s.SetState(func() {
		s.widget = menu
	})
}

// Build reconciles the animations with the canvas. The menu that just
// opened fades in and bounces; the one that just closed fades out.
func (s *PieMenuState) Build() {
	s.configure(s.theme())
	open := s.IsOpen()
	switch {
	case open && !s.wasOpen:
		s.fadeCtl.ForwardFrom(0)
		s.bounce()
		// A stale pointer up must not count as a tap once the menu is open.
		s.press.Canceled = true
	case !open && s.wasOpen:
		s.fadeCtl.Reverse()
		// Menus opened from code have no pointer up to release the bounce.
		s.debounce()
	case !open && !s.fadeCtl.IsAnimating() && s.fadeCtl.Value != 0:
		s.fadeCtl.SetValue(0)
	}
	s.wasOpen = open
}

func (s *PieMenuState) configure(th theme.PieTheme) {
	s.fadeCtl.Duration = th.FadeDuration
	s.bounceCtl.Duration = th.ChildBounceDuration
	s.bounceCtl.Curve = th.ChildBounceCurve
	s.bounceCtl.ReverseCurve = th.EffectiveBounceReverseCurve()
	s.recognizer.Duration = th.DelayDuration
	s.engine.Configure(th.ChildBounceFactor, th.ChildTiltEnabled)
}

// Dispose cancels the pending debounce and closes the menu if this state
// owns it.
func (s *PieMenuState) Dispose() {
	s.debounceTimer.Cancel()
	s.debounceTimer = nil
	s.stopwatch.Stop()
	if s.widget.Canvas != nil {
		s.widget.Canvas.Close(s.key)
	}
	s.StateBase.Dispose()
}

// Layout measures the child at origin, in global coordinates, and returns
// its bounds. Size changes reach the bounce engine after the frame.
func (s *PieMenuState) Layout(origin graphics.Offset, measure func() graphics.Size) graphics.Rect {
	if s.IsDisposed() {
		return graphics.Rect{}
	}
	size := s.observer.Observe(measure)
	s.box = graphics.RectFromOffsetSize(origin, size)
	s.laidOut = !size.IsZero()
	return s.box
}

// RenderBox returns the child's bounds from the last layout. It reports
// false before the child has been laid out with a non-zero size.
func (s *PieMenuState) RenderBox() (graphics.Rect, bool) {
	return s.box, s.laidOut
}

func (s *PieMenuState) theme() theme.PieTheme {
	if s.widget.Theme != nil {
		return *s.widget.Theme
	}
	return s.widget.Canvas.Theme()
}

// Theme returns the effective theme: the menu's own, else the canvas theme.
func (s *PieMenuState) Theme() theme.PieTheme {
	return s.theme()
}

// Key identifies this menu on the canvas.
func (s *PieMenuState) Key() core.Key {
	return s.key
}

// IsOpen reports whether this menu is the open one.
func (s *PieMenuState) IsOpen() bool {
	return s.widget.Canvas.State().OpenKey == s.key
}

// Press returns the most recent press.
func (s *PieMenuState) Press() PressState {
	return s.press
}

// Transform returns the child's bounce transform. It reports false until
// the child has a measured size.
func (s *PieMenuState) Transform() (BounceTransform, bool) {
	return s.engine.Transform()
}

// FilterQuality returns the sampling quality for drawing the transformed
// child.
func (s *PieMenuState) FilterQuality() graphics.FilterQuality {
	return s.theme().ChildBounceFilterQuality
}

// BounceValue returns the bounce animation value in [0, 1].
func (s *PieMenuState) BounceValue() float64 {
	return s.bounceCtl.Value
}

// FadeValue returns the overlay fade value in [0, 1].
func (s *PieMenuState) FadeValue() float64 {
	return s.fadeCtl.Value
}

// OverlayColor returns the overlay color at the current fade.
func (s *PieMenuState) OverlayColor() graphics.Color {
	return s.theme().EffectiveOverlayColor().ScaleAlpha(s.fadeCtl.Value)
}

// OverlayAroundChild reports whether the overlay dims around the child
// rather than behind the menu.
func (s *PieMenuState) OverlayAroundChild() bool {
	return s.theme().OverlayStyle == theme.OverlayStyleAround
}

// ChildOpacity returns the child's opacity, dimmed while an action is
// hovered.
func (s *PieMenuState) ChildOpacity() float64 {
	return s.widget.Canvas.ChildOpacity(s.key)
}

// DebounceDeadline returns when the pending bounce reversal fires.
func (s *PieMenuState) DebounceDeadline() (time.Time, bool) {
	if !s.debounceTimer.Pending() {
		return time.Time{}, false
	}
	return s.debounceTimer.Deadline(), true
}

func (s *PieMenuState) handleCommand(cmd MenuCommand) {
	if s.IsDisposed() {
		return
	}
	switch cmd.Kind {
	case CommandOpen:
		s.openAligned(cmd)
	case CommandClose:
		s.widget.Canvas.Close(s.key)
	case CommandToggle:
		if s.IsOpen() {
			s.widget.Canvas.Close(s.key)
		} else {
			s.openAligned(cmd)
		}
	}
}

func (s *PieMenuState) openAligned(cmd MenuCommand) {
	alignment := cmd.Alignment
	s.attachMenu(false, nil, &alignment, cmd.Displacement)
}
