package animation

import "github.com/go-drift/piemenu/pkg/graphics"

// Tween maps a controller's value onto a range of T.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp blends Begin toward End. Nil snaps to End.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the value at progress t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 blends a toward b by t without clamping.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 tweens between two numbers.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenColor tweens between two colors channel by channel.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: graphics.LerpColor}
}
