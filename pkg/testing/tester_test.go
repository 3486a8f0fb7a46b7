package testing

import (
	"testing"
	"time"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/gestures"
	"github.com/go-drift/piemenu/pkg/graphics"
	"github.com/go-drift/piemenu/pkg/pie"
	"github.com/go-drift/piemenu/pkg/theme"
)

func TestMount_LaysOutChild(t *testing.T) {
	tester := NewMenuTesterWithT(t, theme.DefaultPieTheme())
	menu := tester.Mount(pie.PieMenu{}, graphics.RectFromLTWH(10, 20, 30, 40))

	got, ok := menu.RenderBox()
	if !ok {
		t.Fatal("expected the child to be laid out")
	}
	if got != graphics.RectFromLTWH(10, 20, 30, 40) {
		t.Errorf("RenderBox = %v", got)
	}
	if _, ok := menu.Transform(); !ok {
		t.Error("size should reach the bounce engine within the mount frame")
	}
}

func TestPumpFor_LandsOnDuration(t *testing.T) {
	tester := NewMenuTesterWithT(t, theme.DefaultPieTheme())
	fired := 0
	animation.AfterFunc(50*time.Millisecond, func() { fired++ })

	tester.PumpFor(49 * time.Millisecond)
	if fired != 0 {
		t.Fatal("timer fired early")
	}
	tester.PumpFor(time.Millisecond)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if tester.Clock().Elapsed() != 50*time.Millisecond {
		t.Errorf("Elapsed = %v", tester.Clock().Elapsed())
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewMenuTesterWithT(t, theme.DefaultPieTheme())
	animation.AfterFunc(time.Hour, func() {})
	if err := tester.PumpAndSettle(100 * time.Millisecond); err != ErrSettleTimeout {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}

func TestDown_HitTestsTopmostMenu(t *testing.T) {
	tester := NewMenuTesterWithT(t, theme.DefaultPieTheme())
	bottom := tester.Mount(pie.PieMenu{}, graphics.RectFromLTWH(0, 0, 100, 100))
	top := tester.Mount(pie.PieMenu{}, graphics.RectFromLTWH(50, 50, 100, 100))

	tester.Touch(graphics.Offset{X: 75, Y: 75})
	if !top.Press().Pressed || bottom.Press().Pressed {
		t.Error("expected only the topmost menu to receive the press")
	}
	if got := top.Press().LocalOffset; got != (graphics.Offset{X: 25, Y: 25}) {
		t.Errorf("LocalOffset = %v", got)
	}

	tester.Touch(graphics.Offset{X: 500, Y: 500})
	if tester.Canvas().Attached() != top.Key() {
		t.Error("a miss should not change the attachment")
	}
}

func TestUp_SweepsArena(t *testing.T) {
	tester := NewMenuTesterWithT(t, theme.DefaultPieTheme())
	tester.Mount(pie.PieMenu{}, graphics.RectFromLTWH(0, 0, 100, 100))

	id := tester.Down(graphics.Offset{X: 10, Y: 10}, gestures.PointerDeviceStylus, gestures.ButtonPrimary)
	tester.Up(id)
	if n := tester.Arena().MemberCount(id); n != 0 {
		t.Errorf("MemberCount = %d after up", n)
	}
}
