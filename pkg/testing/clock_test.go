package testing

import (
	"testing"
	"time"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/theme"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
	if clk.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed = %v", clk.Elapsed())
	}
}

func TestMenuTester_InstallsClock(t *testing.T) {
	tester := NewMenuTester(theme.DefaultPieTheme())
	if !animation.Now().Equal(Epoch) {
		t.Errorf("animation clock not installed: %v", animation.Now())
	}
	tester.Clock().Advance(time.Second)
	if animation.Since(Epoch) != time.Second {
		t.Error("clock advancement not reflected")
	}

	tester.Cleanup()
	if animation.Now().Equal(Epoch.Add(time.Second)) {
		t.Error("Cleanup should restore the previous clock")
	}
}
