package pie_test

import (
	"testing"
	"time"

	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/graphics"
	"github.com/go-drift/piemenu/pkg/pie"
	pietest "github.com/go-drift/piemenu/pkg/testing"
	"github.com/go-drift/piemenu/pkg/theme"
)

func request(key core.Key, at *graphics.Offset, actions int) pie.AttachRequest {
	return pie.AttachRequest{
		Key:       key,
		Offset:    at,
		RenderBox: box,
		Actions:   make([]pie.PieAction, actions),
		Theme:     theme.DefaultPieTheme(),
	}
}

func TestCanvasAttachIsExclusive(t *testing.T) {
	tester := pietest.NewMenuTesterWithT(t, theme.DefaultPieTheme())
	canvas := tester.Canvas()
	a, b := core.NewKey(), core.NewKey()

	if canvas.Attach(request(0, nil, 1)) {
		t.Error("a zero key must be rejected")
	}
	if !canvas.Attach(request(a, nil, 1)) {
		t.Fatal("first attach should succeed")
	}
	if canvas.State().OpenKey != a {
		t.Fatal("an alignment anchored request opens at once")
	}
	if canvas.Attach(request(b, nil, 1)) {
		t.Error("attach must fail while another menu is open")
	}

	at := graphics.Offset{X: 5, Y: 6}
	if !canvas.Attach(request(a, &at, 1)) {
		t.Fatal("the open menu may re-attach")
	}
	if canvas.Anchor() != at || canvas.State().OpenKey != a {
		t.Errorf("re-attach should re-anchor, anchor = %v", canvas.Anchor())
	}

	if canvas.Close(b) {
		t.Error("only the owner may close")
	}
	if !canvas.Close(a) || canvas.State().MenuOpen() {
		t.Error("owner close should succeed")
	}
	if canvas.Close(a) {
		t.Error("closing twice should report false")
	}
}

func TestCanvasPendingAttachCanBeReplaced(t *testing.T) {
	tester := pietest.NewMenuTesterWithT(t, theme.DefaultPieTheme())
	canvas := tester.Canvas()
	a, b := core.NewKey(), core.NewKey()
	at := graphics.Offset{X: 1, Y: 1}

	canvas.Attach(request(a, &at, 1))
	if canvas.State().MenuOpen() {
		t.Fatal("a press anchored request waits for the delay")
	}
	if !canvas.Attach(request(b, &at, 1)) {
		t.Fatal("a pending attachment does not block others")
	}
	tester.PumpFor(time.Second)
	if canvas.State().OpenKey != b {
		t.Errorf("OpenKey = %v, want %v", canvas.State().OpenKey, b)
	}
}

func TestCanvasHoverAndSelect(t *testing.T) {
	tester := pietest.NewMenuTesterWithT(t, theme.DefaultPieTheme())
	canvas := tester.Canvas()
	key := core.NewKey()

	var states []pie.CanvasState
	unsub := canvas.AddListener(func(s pie.CanvasState) { states = append(states, s) })
	defer unsub()

	selected := -1
	req := request(key, nil, 3)
	for i := range req.Actions {
		req.Actions[i].OnSelect = func() { selected = i }
	}
	canvas.Attach(req)

	if canvas.Select() {
		t.Error("nothing hovered, nothing to select")
	}
	canvas.Hover(7)
	if canvas.State().Hovered != -1 {
		t.Error("out of range hover should clear")
	}
	canvas.Hover(2)
	if canvas.ChildOpacity(key) != 0.5 || canvas.ChildOpacity(core.NewKey()) != 1 {
		t.Error("only the owner's child dims while hovering")
	}
	canvas.Hover(2)
	if !canvas.Select() || selected != 2 {
		t.Errorf("selected = %d", selected)
	}
	if canvas.State().MenuOpen() {
		t.Error("select should close")
	}

	// open, hover 2, close; the repeated hover is not a change.
	if len(states) != 3 {
		t.Errorf("notified %d times: %v", len(states), states)
	}
}

func TestCanvasDisposeCancelsPendingOpen(t *testing.T) {
	tester := pietest.NewMenuTesterWithT(t, theme.DefaultPieTheme())
	canvas := tester.Canvas()
	at := graphics.Offset{}
	canvas.Attach(request(core.NewKey(), &at, 1))

	canvas.Dispose()
	tester.PumpFor(time.Second)
	if canvas.State().MenuOpen() {
		t.Error("a disposed canvas must not open")
	}
}
