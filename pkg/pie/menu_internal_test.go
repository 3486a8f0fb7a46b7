package pie

import (
	"testing"

	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/theme"
)

func TestBuildResetsIdleFade(t *testing.T) {
	owner := core.NewBuildOwner()
	canvas := NewPieCanvas(theme.DefaultPieTheme())
	s := Mount(owner, PieMenu{Canvas: canvas})
	t.Cleanup(func() { s.Element().Unmount() })
	owner.FlushBuild()

	s.fadeCtl.SetValue(0.4)
	s.SetState(nil)
	owner.FlushBuild()
	if s.fadeCtl.Value != 0 {
		t.Errorf("fade = %v, want 0 for a closed menu that is not fading", s.fadeCtl.Value)
	}
}
