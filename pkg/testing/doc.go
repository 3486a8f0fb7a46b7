// Package testing drives pie menus frame by frame against a fake clock.
//
// # Quick Start
//
// Create a tester, mount a menu over a box, and send pointer input:
//
//	func TestLongPressOpens(t *testing.T) {
//	    tester := pietest.NewMenuTesterWithT(t, theme.DefaultPieTheme())
//	    menu := tester.Mount(pie.PieMenu{Actions: actions}, graphics.RectFromLTWH(0, 0, 100, 100))
//
//	    id := tester.Down(graphics.Offset{X: 50, Y: 50}, gestures.PointerDeviceTouch, gestures.ButtonPrimary)
//	    tester.PumpFor(350 * time.Millisecond)
//	    tester.Up(id)
//
//	    if !menu.IsOpen() {
//	        t.Error("expected the menu to open")
//	    }
//	}
//
// # Frames
//
// Pump runs one frame: rebuild, animations and timers, layout, then
// post-frame callbacks. Advance moves the clock and pumps once; PumpFor
// pumps 16ms frames until the duration has passed.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pietest "github.com/go-drift/piemenu/pkg/testing"
package testing
