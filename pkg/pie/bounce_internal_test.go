package pie

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/errors"
	"github.com/go-drift/piemenu/pkg/graphics"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeBounceTransform(t *testing.T) {
	square := graphics.Size{Width: 100, Height: 100}
	corner := graphics.Offset{}
	center := graphics.Offset{X: 50, Y: 50}
	outside := graphics.Offset{X: 250, Y: -40}

	tests := []struct {
		name            string
		v               float64
		size            graphics.Size
		press           *graphics.Offset
		factor          float64
		tilt            bool
		wantOK          bool
		wantScale       float64
		wantPerspective float64
		wantRotX        float64
		wantRotY        float64
	}{
		{"full bounce without tilt", 1, square, nil, 1.2, false, true, 1.2, 0.005, 0, 0},
		{"half bounce", 0.5, square, nil, 0.9, false, true, 0.95, 0.005, 0, 0},
		{"at rest", 0, square, &corner, 0.9, true, true, 1, 0.005, 0, 0},
		{"longest side sets perspective", 1, graphics.Size{Width: 200, Height: 50}, nil, 1, false, true, 1, 0.0025, 0, 0},
		{"tilt toward top left", 1, square, &corner, 1, true, true, 1, 0.005, -MaxTiltAngle, MaxTiltAngle},
		{"center press does not tilt", 1, square, &center, 1, true, true, 1, 0.005, 0, 0},
		{"press outside is clamped", 1, square, &outside, 1, true, true, 1, 0.005, -MaxTiltAngle, -MaxTiltAngle},
		{"tilt disabled", 1, square, &corner, 1, false, true, 1, 0.005, 0, 0},
		{"zero size", 1, graphics.Size{}, nil, 1.2, false, false, 0, 0, 0, 0},
		{"zero width", 1, graphics.Size{Height: 100}, nil, 1.2, false, false, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeBounceTransform(tt.v, tt.size, tt.press, tt.factor, tt.tilt)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !approx(got.Scale, tt.wantScale) {
				t.Errorf("Scale = %v, want %v", got.Scale, tt.wantScale)
			}
			if !approx(got.Perspective, tt.wantPerspective) {
				t.Errorf("Perspective = %v, want %v", got.Perspective, tt.wantPerspective)
			}
			if !approx(got.RotationX, tt.wantRotX) {
				t.Errorf("RotationX = %v, want %v", got.RotationX, tt.wantRotX)
			}
			if !approx(got.RotationY, tt.wantRotY) {
				t.Errorf("RotationY = %v, want %v", got.RotationY, tt.wantRotY)
			}
		})
	}
}

func TestBounceTransformKeepsCenterFixed(t *testing.T) {
	size := graphics.Size{Width: 120, Height: 80}
	press := graphics.Offset{X: 10, Y: 70}
	tr, ok := ComputeBounceTransform(1, size, &press, 0.9, true)
	if !ok {
		t.Fatal("expected a transform")
	}
	got := tr.Apply(size.Center())
	if !approx(got.X, 60) || !approx(got.Y, 40) {
		t.Errorf("center moved to %v", got)
	}
	if tr.Matrix.Entry(3, 2) == 0 {
		t.Error("expected a perspective entry")
	}
}

func TestBounceTransformScalesTowardCenter(t *testing.T) {
	size := graphics.Size{Width: 100, Height: 100}
	tr, _ := ComputeBounceTransform(1, size, nil, 0.5, false)
	got := tr.Apply(graphics.Offset{X: 100, Y: 50})
	if !approx(got.X, 75) || !approx(got.Y, 50) {
		t.Errorf("right edge mapped to %v, want (75, 50)", got)
	}
}

func TestDebounceDelay(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		openDelay time.Duration
		want      time.Duration
	}{
		{"no delay, short hold", 50 * time.Millisecond, 0, 50 * time.Millisecond},
		{"no delay, long hold", 150 * time.Millisecond, 0, 0},
		{"no delay, exact window", 100 * time.Millisecond, 0, 0},
		{"no delay, instant release", 0, 0, 100 * time.Millisecond},
		{"with delay, short hold", 20 * time.Millisecond, 350 * time.Millisecond, 55 * time.Millisecond},
		{"with delay, long hold", 100 * time.Millisecond, 350 * time.Millisecond, 0},
		{"small delay uses the shorter window", 10 * time.Millisecond, 50 * time.Millisecond, 65 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DebounceDelay(tt.elapsed, tt.openDelay); got != tt.want {
				t.Errorf("DebounceDelay(%v, %v) = %v, want %v", tt.elapsed, tt.openDelay, got, tt.want)
			}
		})
	}
}

func TestBounceEngine(t *testing.T) {
	e := NewBounceEngine(1.2, false)

	e.SetValue(1)
	if _, ok := e.Transform(); ok {
		t.Fatal("unmeasured engine should not produce a transform")
	}

	e.SetSize(graphics.Size{Width: 100, Height: 100})
	tr, ok := e.Transform()
	if !ok || !approx(tr.Scale, 1.2) {
		t.Fatalf("Transform = %+v, %v", tr, ok)
	}

	e.SetSize(graphics.Size{Width: 100, Height: 100})
	if again, _ := e.Transform(); again != tr {
		t.Errorf("same size changed the transform: %+v, want %+v", again, tr)
	}

	e.SetSize(graphics.Size{})
	if _, ok := e.Transform(); ok {
		t.Error("zero size should invalidate the transform")
	}
}

func TestBounceEngineTilt(t *testing.T) {
	e := NewBounceEngine(1, true)
	e.SetSize(graphics.Size{Width: 100, Height: 100})
	e.SetValue(1)
	e.SetPressOffset(graphics.Offset{X: 0, Y: 100})

	tr, _ := e.Transform()
	if !approx(tr.RotationX, MaxTiltAngle) || !approx(tr.RotationY, MaxTiltAngle) {
		t.Errorf("rotations = (%v, %v)", tr.RotationX, tr.RotationY)
	}

	e.ClearPressOffset()
	tr, _ = e.Transform()
	if tr.RotationX != 0 || tr.RotationY != 0 {
		t.Error("clearing the press should remove tilt")
	}

	e.SetPressOffset(graphics.Offset{X: 0, Y: 100})
	e.Configure(1, false)
	tr, _ = e.Transform()
	if tr.RotationX != 0 || tr.RotationY != 0 {
		t.Error("disabling tilt should remove tilt")
	}
}

type recordingHandler struct {
	errs []*errors.PieError
}

func (h *recordingHandler) HandleError(err *errors.PieError)   { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}

func TestSizeObserverDeliversAfterFrame(t *testing.T) {
	owner := core.NewBuildOwner()
	var got []graphics.Size
	obs := NewSizeObserver(owner, func() bool { return true }, func(s graphics.Size) {
		got = append(got, s)
	})

	obs.Observe(fixed(100, 50))
	if len(got) != 0 {
		t.Fatal("delivery must wait for the post-frame phase")
	}
	owner.FlushPostFrameCallbacks()
	if len(got) != 1 || got[0] != (graphics.Size{Width: 100, Height: 50}) {
		t.Fatalf("got %v", got)
	}

	obs.Observe(fixed(100, 50))
	if owner.NeedsWork() {
		t.Error("an unchanged size should not schedule a delivery")
	}

	obs.Observe(fixed(10, 10))
	obs.Observe(fixed(20, 20))
	owner.FlushPostFrameCallbacks()
	if len(got) != 2 || got[1] != (graphics.Size{Width: 20, Height: 20}) {
		t.Errorf("expected one coalesced delivery of the latest size, got %v", got)
	}
}

func TestSizeObserverSkipsDeadState(t *testing.T) {
	owner := core.NewBuildOwner()
	alive := true
	delivered := false
	obs := NewSizeObserver(owner, func() bool { return alive }, func(graphics.Size) {
		delivered = true
	})
	obs.Observe(fixed(10, 10))
	alive = false
	owner.FlushPostFrameCallbacks()
	if delivered {
		t.Error("delivered to a disposed state")
	}
}

func TestSizeObserverMeasureFailure(t *testing.T) {
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })

	owner := core.NewBuildOwner()
	obs := NewSizeObserver(owner, func() bool { return true }, func(graphics.Size) {})
	obs.Observe(fixed(40, 30))

	got := obs.Observe(func() graphics.Size { panic("boom") })
	if got != (graphics.Size{Width: 40, Height: 30}) {
		t.Errorf("failed measurement returned %v, want last size", got)
	}
	if len(h.errs) != 1 || h.errs[0].Kind != errors.KindMeasure {
		t.Fatalf("expected one measure error, got %v", h.errs)
	}

	core.SetDebugMode(false)
	t.Cleanup(func() { core.SetDebugMode(true) })
	obs.Observe(func() graphics.Size { panic("boom") })
	if len(h.errs) != 1 {
		t.Error("release builds should not report measurement failures")
	}
}

func fixed(w, h float64) func() graphics.Size {
	return func() graphics.Size { return graphics.Size{Width: w, Height: h} }
}
