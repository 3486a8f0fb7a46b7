package animation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/tanema/gween/ease"
)

// ErrUnknownCurve is returned by CurveByName for names it does not know.
var ErrUnknownCurve = errors.New("unknown curve")

// FromTweenFunc adapts a gween easing function to a unit curve.
func FromTweenFunc(fn ease.TweenFunc) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var namedCurves = map[string]func(float64) float64{
	"linear":    LinearCurve,
	"ease":      Ease,
	"easein":    EaseIn,
	"easeout":   EaseOut,
	"easeinout": EaseInOut,

	"inquad":     FromTweenFunc(ease.InQuad),
	"outquad":    FromTweenFunc(ease.OutQuad),
	"inoutquad":  FromTweenFunc(ease.InOutQuad),
	"incubic":    FromTweenFunc(ease.InCubic),
	"outcubic":   FromTweenFunc(ease.OutCubic),
	"inoutcubic": FromTweenFunc(ease.InOutCubic),
	"insine":     FromTweenFunc(ease.InSine),
	"outsine":    FromTweenFunc(ease.OutSine),
	"inoutsine":  FromTweenFunc(ease.InOutSine),
	"inback":     FromTweenFunc(ease.InBack),
	"outback":    FromTweenFunc(ease.OutBack),
	"outbounce":  FromTweenFunc(ease.OutBounce),
	"outelastic": FromTweenFunc(ease.OutElastic),
}

// CurveByName looks up a curve by case-insensitive name, ignoring '-' and
// '_' (so "ease-out", "ease_out" and "easeOut" match).
func CurveByName(name string) (func(float64) float64, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	if curve, ok := namedCurves[key]; ok {
		return curve, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCurve, name)
}

// CurveNames lists the normalized names CurveByName accepts.
func CurveNames() []string {
	names := make([]string, 0, len(namedCurves))
	for name := range namedCurves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
