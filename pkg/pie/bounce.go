package pie

import (
	"math"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/errors"
	"github.com/go-drift/piemenu/pkg/graphics"
)

// MaxTiltAngle is the largest rotation, in radians, applied about either
// axis when the press sits on the child's edge.
const MaxTiltAngle = math.Pi / 10

// perspectiveDepth is divided by the child's longest side to get the
// perspective entry.
const perspectiveDepth = 0.5

// BounceTransform is the transform applied to the child for one bounce
// value. Matrix already includes the translation to and from Origin.
type BounceTransform struct {
	Matrix      graphics.Matrix4
	Scale       float64
	Perspective float64
	RotationX   float64
	RotationY   float64
	// Origin is the child's center in local coordinates.
	Origin graphics.Offset
}

// Apply maps a point in the child's local coordinates.
func (t BounceTransform) Apply(p graphics.Offset) graphics.Offset {
	return t.Matrix.TransformPoint(p)
}

// ComputeBounceTransform builds the child transform for bounce value v.
//
// Scale interpolates from 1 at v=0 to factor at v=1. When tilt is on and
// press is non-nil, the child leans toward the press point: the vertical
// position drives rotation about the horizontal axis and the horizontal
// position drives rotation about the vertical axis, inverted. Returns false
// for an unmeasured (zero) size.
func ComputeBounceTransform(v float64, size graphics.Size, press *graphics.Offset, factor float64, tilt bool) (BounceTransform, bool) {
	if size.IsZero() {
		return BounceTransform{}, false
	}
	t := BounceTransform{
		Scale:       animation.LerpFloat64(1, factor, v),
		Perspective: perspectiveDepth / size.LongestSide(),
		Origin:      size.Center(),
	}
	if tilt && press != nil {
		fx := clampUnit(press.X / size.Width)
		fy := clampUnit(press.Y / size.Height)
		t.RotationX = (fy*2 - 1) * MaxTiltAngle * v
		t.RotationY = -(fx*2 - 1) * MaxTiltAngle * v
	}
	m := graphics.Identity().
		SetEntry(3, 2, t.Perspective).
		Scale(t.Scale).
		RotateX(t.RotationX).
		RotateY(t.RotationY)
	t.Matrix = m.AroundOrigin(t.Origin)
	return t, true
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// BounceEngine keeps the child transform in sync with the bounce value,
// the child's measured size and the press position.
type BounceEngine struct {
	value    float64
	size     graphics.Size
	press    graphics.Offset
	hasPress bool
	factor   float64
	tilt     bool

	current BounceTransform
	valid   bool
}

// NewBounceEngine creates an engine with no size measured yet.
func NewBounceEngine(factor float64, tilt bool) *BounceEngine {
	return &BounceEngine{factor: factor, tilt: tilt}
}

// Configure updates the theme-derived parameters.
func (e *BounceEngine) Configure(factor float64, tilt bool) {
	if e.factor == factor && e.tilt == tilt {
		return
	}
	e.factor, e.tilt = factor, tilt
	e.recompute()
}

// SetValue records the bounce animation value.
func (e *BounceEngine) SetValue(v float64) {
	e.value = v
	e.recompute()
}

// SetSize records a new measurement. A zero size marks the child as
// unmeasured.
func (e *BounceEngine) SetSize(size graphics.Size) {
	if e.size == size {
		return
	}
	e.size = size
	e.recompute()
}

// Size returns the last measurement.
func (e *BounceEngine) Size() graphics.Size {
	return e.size
}

// SetPressOffset records where the child was pressed, in local coordinates.
func (e *BounceEngine) SetPressOffset(p graphics.Offset) {
	e.press, e.hasPress = p, true
	e.recompute()
}

// ClearPressOffset drops the press point so the child no longer tilts.
func (e *BounceEngine) ClearPressOffset() {
	e.hasPress = false
	e.recompute()
}

// Transform returns the current transform. It reports false until a
// non-zero size has been measured.
func (e *BounceEngine) Transform() (BounceTransform, bool) {
	return e.current, e.valid
}

func (e *BounceEngine) recompute() {
	var press *graphics.Offset
	if e.hasPress {
		p := e.press
		press = &p
	}
	e.current, e.valid = ComputeBounceTransform(e.value, e.size, press, e.factor, e.tilt)
}

// SizeObserver measures a child during layout and reports changes after
// the frame finishes.
type SizeObserver struct {
	owner    *core.BuildOwner
	alive    func() bool
	onChange func(graphics.Size)

	last      graphics.Size
	delivered graphics.Size
	scheduled bool
}

// NewSizeObserver creates an observer that delivers to onChange through
// owner's post-frame queue while alive reports true.
func NewSizeObserver(owner *core.BuildOwner, alive func() bool, onChange func(graphics.Size)) *SizeObserver {
	return &SizeObserver{owner: owner, alive: alive, onChange: onChange}
}

// Observe runs measure and returns the resulting size. A panicking
// measurement is reported in debug mode and the previous size is returned.
func (o *SizeObserver) Observe(measure func() graphics.Size) graphics.Size {
	size, ok := o.measure(measure)
	if !ok {
		return o.last
	}
	o.last = size
	if size != o.delivered && !o.scheduled {
		o.scheduled = true
		o.owner.AddPostFrameCallback(o.deliver)
	}
	return size
}

// Last returns the most recent successful measurement.
func (o *SizeObserver) Last() graphics.Size {
	return o.last
}

func (o *SizeObserver) measure(measure func() graphics.Size) (size graphics.Size, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			if core.DebugMode {
				errors.Report(&errors.PieError{
					Op:         "pie.SizeObserver.Observe",
					Kind:       errors.KindMeasure,
					Err:        panicErr(r),
					StackTrace: errors.CaptureStack(),
				})
			}
		}
	}()
	return measure(), true
}

func (o *SizeObserver) deliver() {
	o.scheduled = false
	if o.alive != nil && !o.alive() {
		return
	}
	if o.last == o.delivered {
		return
	}
	o.delivered = o.last
	if o.onChange != nil {
		o.onChange(o.last)
	}
}
