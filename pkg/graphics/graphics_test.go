package graphics

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF112233", Color(0xFF112233), false},
		{"80112233", Color(0x80112233), false},
		{"#112233", Color(0xFF112233), false},
		{"#12345", 0, true},
		{"#GG112233", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorScaleAlpha(t *testing.T) {
	c := RGBA8(10, 20, 30, 200)
	got := c.ScaleAlpha(0.5)
	if got.NRGBA().A != 100 {
		t.Errorf("alpha = %d, want 100", got.NRGBA().A)
	}
	if got.NRGBA().R != 10 {
		t.Errorf("red channel changed: %d", got.NRGBA().R)
	}
}

func TestSizeIsZero(t *testing.T) {
	tests := []struct {
		size Size
		want bool
	}{
		{Size{}, true},
		{Size{Width: 10}, true},
		{Size{Height: 10}, true},
		{Size{Width: 10, Height: 5}, false},
	}
	for _, tt := range tests {
		if got := tt.size.IsZero(); got != tt.want {
			t.Errorf("%+v.IsZero() = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestAlignmentWithinRect(t *testing.T) {
	r := RectFromLTWH(10, 20, 100, 50)
	tests := []struct {
		a    Alignment
		want Offset
	}{
		{AlignTopLeft, Offset{X: 10, Y: 20}},
		{AlignCenter, Offset{X: 60, Y: 45}},
		{AlignBottomRight, Offset{X: 110, Y: 70}},
		{AlignCenterRight, Offset{X: 110, Y: 45}},
	}
	for _, tt := range tests {
		if got := tt.a.WithinRect(r); got != tt.want {
			t.Errorf("%+v.WithinRect = %+v, want %+v", tt.a, got, tt.want)
		}
	}
}

func TestMatrixScale(t *testing.T) {
	m := Identity().Scale(2)
	p := m.TransformPoint(Offset{X: 3, Y: 4})
	if !approx(p.X, 6) || !approx(p.Y, 8) {
		t.Errorf("scaled point = %+v, want (6,8)", p)
	}
}

func TestMatrixAroundOrigin(t *testing.T) {
	m := Identity().Scale(2).AroundOrigin(Offset{X: 50, Y: 50})
	center := m.TransformPoint(Offset{X: 50, Y: 50})
	if !approx(center.X, 50) || !approx(center.Y, 50) {
		t.Errorf("origin moved to %+v", center)
	}
	corner := m.TransformPoint(Offset{X: 0, Y: 0})
	if !approx(corner.X, -50) || !approx(corner.Y, -50) {
		t.Errorf("corner = %+v, want (-50,-50)", corner)
	}
}

func TestMatrixRotateYWithPerspective(t *testing.T) {
	// With perspective, a rotation about the vertical axis moves one side
	// toward the viewer and the other away, so the sides stop mirroring.
	m := Identity().SetEntry(3, 2, 0.005).RotateY(math.Pi / 10)
	right := m.TransformPoint(Offset{X: 50, Y: 0})
	left := m.TransformPoint(Offset{X: -50, Y: 0})
	if approx(math.Abs(right.X), math.Abs(left.X)) {
		t.Errorf("expected asymmetric projection, got left=%v right=%v", left.X, right.X)
	}
	if m.Entry(3, 2) == 0 {
		t.Error("perspective entry lost after rotation")
	}
}

func TestMatrixRotateXIdentityAtZero(t *testing.T) {
	m := Identity().RotateX(0).RotateY(0)
	if m != Identity() {
		t.Errorf("zero rotation should be identity, got %+v", m)
	}
}

func TestLerpColor(t *testing.T) {
	a, b := RGBA8(0, 100, 200, 0), RGBA8(255, 200, 0, 255)
	tests := []struct {
		t    float64
		want Color
	}{
		{0, a},
		{1, b},
		{0.5, RGBA8(128, 150, 100, 128)},
		{-1, a},
		{2, b},
	}
	for _, tt := range tests {
		if got := LerpColor(a, b, tt.t); got != tt.want {
			t.Errorf("LerpColor(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}
