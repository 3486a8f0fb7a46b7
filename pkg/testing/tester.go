package testing

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/gestures"
	"github.com/go-drift/piemenu/pkg/graphics"
	"github.com/go-drift/piemenu/pkg/pie"
	"github.com/go-drift/piemenu/pkg/theme"
)

// FrameDuration is the clock step between frames in PumpFor and
// PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: menus did not settle")

type mountedMenu struct {
	state   *pie.PieMenuState
	origin  graphics.Offset
	measure func() graphics.Size
}

// MenuTester runs pie menus on a shared canvas without a window. It owns
// the animation clock for its lifetime.
type MenuTester struct {
	owner     *core.BuildOwner
	canvas    *pie.PieCanvas
	arena     *gestures.GestureArena
	clock     *FakeClock
	prevClock animation.Clock
	menus     []*mountedMenu
	pointers  map[int64]*pointerState
}

// NewMenuTester creates a tester whose canvas uses th.
// Call Cleanup when done, or use NewMenuTesterWithT instead.
func NewMenuTester(th theme.PieTheme) *MenuTester {
	animation.ResetTickers()
	clk := NewFakeClock()
	t := &MenuTester{
		owner:    core.NewBuildOwner(),
		canvas:   pie.NewPieCanvas(th),
		arena:    gestures.NewGestureArena(),
		clock:    clk,
		pointers: make(map[int64]*pointerState),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewMenuTesterWithT creates a tester that cleans up via t.Cleanup.
func NewMenuTesterWithT(t *testing.T, th theme.PieTheme) *MenuTester {
	tester := NewMenuTester(th)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts every menu and restores the animation clock.
func (t *MenuTester) Cleanup() {
	for _, m := range t.menus {
		if el := m.state.Element(); el != nil {
			el.Unmount()
		}
	}
	t.menus = nil
	t.canvas.Dispose()
	animation.ResetTickers()
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock.
func (t *MenuTester) Clock() *FakeClock {
	return t.clock
}

// Canvas returns the shared canvas.
func (t *MenuTester) Canvas() *pie.PieCanvas {
	return t.canvas
}

// Owner returns the build owner menus are mounted on.
func (t *MenuTester) Owner() *core.BuildOwner {
	return t.owner
}

// Arena returns the gesture arena menus compete in.
func (t *MenuTester) Arena() *gestures.GestureArena {
	return t.arena
}

// Mount mounts menu with its child laid out at box and runs one frame.
// A nil Canvas or Arena is filled in with the tester's.
func (t *MenuTester) Mount(menu pie.PieMenu, box graphics.Rect) *pie.PieMenuState {
	if menu.Canvas == nil {
		menu.Canvas = t.canvas
	}
	if menu.Arena == nil {
		menu.Arena = t.arena
	}
	state := pie.Mount(t.owner, menu)
	t.menus = append(t.menus, &mountedMenu{
		state:   state,
		origin:  box.TopLeft(),
		measure: fixedSize(box.Size()),
	})
	t.Pump()
	return state
}

// SetBox moves and resizes a menu's child from the next frame on.
func (t *MenuTester) SetBox(state *pie.PieMenuState, box graphics.Rect) {
	if m := t.find(state); m != nil {
		m.origin = box.TopLeft()
		m.measure = fixedSize(box.Size())
	}
}

// SetMeasure replaces how a menu's child is measured during layout.
func (t *MenuTester) SetMeasure(state *pie.PieMenuState, measure func() graphics.Size) {
	if m := t.find(state); m != nil {
		m.measure = measure
	}
}

// Unmount disposes a menu and stops laying it out.
func (t *MenuTester) Unmount(state *pie.PieMenuState) {
	i := slices.IndexFunc(t.menus, func(m *mountedMenu) bool { return m.state == state })
	if i < 0 {
		return
	}
	t.menus = slices.Delete(t.menus, i, i+1)
	if el := state.Element(); el != nil {
		el.Unmount()
	}
}

func (t *MenuTester) find(state *pie.PieMenuState) *mountedMenu {
	for _, m := range t.menus {
		if m.state == state {
			return m
		}
	}
	return nil
}

func fixedSize(size graphics.Size) func() graphics.Size {
	return func() graphics.Size { return size }
}

// Pump runs one frame without moving the clock.
func (t *MenuTester) Pump() {
	t.owner.FlushBuild()
	animation.StepTickers()
	for _, m := range t.menus {
		m.state.Layout(m.origin, m.measure)
	}
	t.owner.FlushPostFrameCallbacks()
}

// Advance moves the clock by d and runs one frame.
func (t *MenuTester) Advance(d time.Duration) {
	t.clock.Advance(d)
	t.Pump()
}

// PumpFor runs FrameDuration frames until d has passed. The last frame
// is shortened to land exactly on d.
func (t *MenuTester) PumpFor(d time.Duration) {
	for d > 0 {
		step := min(FrameDuration, d)
		t.Advance(step)
		d -= step
	}
}

// PumpAndSettle pumps frames until nothing is animating, nothing is
// scheduled and no build is pending.
func (t *MenuTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.owner.NeedsWork() && !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}
