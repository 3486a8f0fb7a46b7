package pie

import (
	"math"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/gestures"
	"github.com/go-drift/piemenu/pkg/graphics"
	"github.com/go-drift/piemenu/pkg/theme"
)

// CanvasState is the state every PieMenu observes. At most one menu is
// open at a time.
type CanvasState struct {
	// OpenKey identifies the open menu. Zero when no menu is open.
	OpenKey core.Key
	// Hovered is the index of the hovered action, or -1.
	Hovered int
}

// MenuOpen reports whether any menu is open.
func (s CanvasState) MenuOpen() bool {
	return !s.OpenKey.IsZero()
}

var closedState = CanvasState{Hovered: -1}

// AttachRequest describes a menu to show. Exactly one of Offset and
// Alignment is normally set; Offset wins when both are.
type AttachRequest struct {
	Key          core.Key
	RightClicked bool
	// Offset anchors the menu at a global position, usually the press point.
	Offset *graphics.Offset
	// Alignment anchors the menu relative to RenderBox.
	Alignment    *graphics.Alignment
	Displacement graphics.Offset
	// RenderBox is the child's laid out bounds in global coordinates.
	RenderBox graphics.Rect
	// Child is the host's handle to the child so it can be redrawn above
	// the overlay.
	Child any
	// Bounce lets the canvas draw the child with the same bounce value.
	Bounce   *animation.AnimationController
	Actions  []PieAction
	Theme    theme.PieTheme
	OnToggle func(open bool)
}

// PieCanvas hosts the single open menu for an app.
//
// Attaching is immediate, but a press-anchored menu only opens once
// Theme.DelayDuration has passed with the pointer still held. Right clicks,
// a zero delay and alignment-anchored requests open at once.
type PieCanvas struct {
	theme theme.PieTheme
	state *core.Observable[CanvasState]

	attached  *AttachRequest
	anchor    graphics.Offset
	openTimer *animation.Timer

	pressing     bool
	pressPointer int64
	pressOrigin  graphics.Offset
	claimed      map[int64]bool

	disposed bool
}

// NewPieCanvas creates a canvas whose theme applies to menus that do not
// carry their own.
func NewPieCanvas(th theme.PieTheme) *PieCanvas {
	return &PieCanvas{
		theme: th,
		state: core.NewObservableWithEquality(closedState, func(a, b CanvasState) bool {
			return a == b
		}),
		claimed: make(map[int64]bool),
	}
}

// Theme returns the canvas theme.
func (c *PieCanvas) Theme() theme.PieTheme {
	return c.theme
}

// SetTheme replaces the canvas theme. Attached menus keep the theme they
// were attached with.
func (c *PieCanvas) SetTheme(th theme.PieTheme) {
	c.theme = th
}

// State returns the current shared state.
func (c *PieCanvas) State() CanvasState {
	return c.state.Value()
}

// AddListener subscribes to state changes. Returns an unsubscribe function.
func (c *PieCanvas) AddListener(fn func(CanvasState)) func() {
	return c.state.AddListener(fn)
}

// Attached returns the key of the attached menu, open or pending.
func (c *PieCanvas) Attached() core.Key {
	if c.attached == nil {
		return 0
	}
	return c.attached.Key
}

// Attachment returns the attached request.
func (c *PieCanvas) Attachment() (AttachRequest, bool) {
	if c.attached == nil {
		return AttachRequest{}, false
	}
	return *c.attached, true
}

// Anchor returns the center of the action ring.
func (c *PieCanvas) Anchor() graphics.Offset {
	return c.anchor
}

// Attach registers req as the menu to show. It fails when a different menu
// is already open. Attaching the open menu again re-anchors it.
func (c *PieCanvas) Attach(req AttachRequest) bool {
	if c.disposed || req.Key.IsZero() {
		return false
	}
	st := c.state.Value()
	if st.MenuOpen() && st.OpenKey != req.Key {
		return false
	}
	c.openTimer.Cancel()
	c.openTimer = nil
	c.attached = &req
	c.anchor = anchorFor(req)

	if st.MenuOpen() {
		c.state.Set(CanvasState{OpenKey: req.Key, Hovered: -1})
		return true
	}
	delay := req.Theme.DelayDuration
	if req.Offset == nil || req.RightClicked || delay <= 0 {
		c.open()
		return true
	}
	c.openTimer = animation.AfterFunc(delay, c.open)
	return true
}

func anchorFor(req AttachRequest) graphics.Offset {
	var at graphics.Offset
	switch {
	case req.Offset != nil:
		at = *req.Offset
	case req.Alignment != nil:
		at = req.Alignment.WithinRect(req.RenderBox)
	default:
		at = req.RenderBox.Center()
	}
	return at.Add(req.Displacement)
}

func (c *PieCanvas) open() {
	c.openTimer = nil
	if c.disposed || c.attached == nil {
		return
	}
	req := c.attached
	c.state.Set(CanvasState{OpenKey: req.Key, Hovered: -1})
	if req.OnToggle != nil {
		req.OnToggle(true)
	}
}

// Close closes the menu owned by key. A pending attachment for key is
// dropped. Returns true only when an open menu was closed.
func (c *PieCanvas) Close(key core.Key) bool {
	if key.IsZero() || c.attached == nil || c.attached.Key != key {
		return false
	}
	st := c.state.Value()
	req := c.attached
	c.attached = nil
	c.openTimer.Cancel()
	c.openTimer = nil
	if st.OpenKey != key {
		return false
	}
	c.state.Set(closedState)
	if req.OnToggle != nil {
		req.OnToggle(false)
	}
	return true
}

// Hover highlights action i. Out of range indices clear the highlight.
func (c *PieCanvas) Hover(i int) {
	st := c.state.Value()
	if !st.MenuOpen() {
		return
	}
	if c.attached == nil || i < 0 || i >= len(c.attached.Actions) {
		i = -1
	}
	c.state.Set(CanvasState{OpenKey: st.OpenKey, Hovered: i})
}

// ClearHover removes the highlight.
func (c *PieCanvas) ClearHover() {
	c.Hover(-1)
}

// Select runs the hovered action and closes the menu. Returns false when
// nothing is hovered.
func (c *PieCanvas) Select() bool {
	st := c.state.Value()
	if !st.MenuOpen() || st.Hovered < 0 || c.attached == nil {
		return false
	}
	action := c.attached.Actions[st.Hovered]
	c.Close(st.OpenKey)
	if action.OnSelect != nil {
		action.OnSelect()
	}
	return true
}

// ActionCenters returns the center of each action button, spaced evenly
// on a ring of Theme.Radius starting straight above the anchor.
func (c *PieCanvas) ActionCenters() []graphics.Offset {
	if c.attached == nil || len(c.attached.Actions) == 0 {
		return nil
	}
	n := len(c.attached.Actions)
	radius := c.attached.Theme.Radius
	centers := make([]graphics.Offset, n)
	for i := range centers {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		centers[i] = c.anchor.Add(graphics.Offset{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		})
	}
	return centers
}

// ActionAt returns the index of the action button under p, or -1.
func (c *PieCanvas) ActionAt(p graphics.Offset) int {
	if c.attached == nil {
		return -1
	}
	r := c.attached.Theme.ButtonSize / 2
	for i, center := range c.ActionCenters() {
		if p.Sub(center).Distance() <= r {
			return i
		}
	}
	return -1
}

// ChildOpacity returns the opacity for the child of the menu owned by key.
func (c *PieCanvas) ChildOpacity(key core.Key) float64 {
	st := c.state.Value()
	if st.OpenKey != key || st.Hovered < 0 || c.attached == nil {
		return 1
	}
	return c.attached.Theme.ChildOpacityOnButtonHover
}

// HandlePointer observes every pointer event before menus see it. It
// claims pointers that go down while a menu is open and returns true for
// every event of a claimed pointer; the host must not forward those to
// menus.
func (c *PieCanvas) HandlePointer(event gestures.PointerEvent) bool {
	if c.disposed {
		return false
	}
	st := c.state.Value()
	id := event.PointerID

	switch event.Phase {
	case gestures.PointerPhaseDown:
		if st.MenuOpen() {
			c.claimed[id] = true
			if i := c.ActionAt(event.Position); i >= 0 {
				c.Hover(i)
			} else {
				c.Close(st.OpenKey)
			}
			return true
		}
		c.pressing = true
		c.pressPointer = id
		c.pressOrigin = event.Position
		return false

	case gestures.PointerPhaseMove:
		if c.isPress(id) && event.Position.Sub(c.pressOrigin).Distance() > PressSlop {
			c.cancelPendingOpen()
		}
		if st.MenuOpen() {
			c.Hover(c.ActionAt(event.Position))
		}
		return c.claimed[id]

	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		claimed := c.claimed[id]
		delete(c.claimed, id)
		if c.isPress(id) {
			c.pressing = false
			c.cancelPendingOpen()
		}
		if st.MenuOpen() {
			if event.Phase == gestures.PointerPhaseUp {
				c.Select()
			} else {
				c.ClearHover()
			}
		}
		return claimed
	}
	return false
}

func (c *PieCanvas) isPress(id int64) bool {
	return c.pressing && c.pressPointer == id
}

// cancelPendingOpen stops a delayed open. The attachment itself stays.
func (c *PieCanvas) cancelPendingOpen() {
	if c.openTimer.Cancel() {
		c.openTimer = nil
	}
}

// Dispose cancels any pending open. The canvas ignores all calls afterwards.
func (c *PieCanvas) Dispose() {
	if c.disposed {
		return
	}
	c.openTimer.Cancel()
	c.openTimer = nil
	c.disposed = true
}
