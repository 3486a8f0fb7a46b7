// Package theme holds the read-only configuration pie menus consult for
// durations, curves, colors and interaction toggles.
package theme

import (
	"fmt"
	"time"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/graphics"
)

// Brightness indicates if a theme targets light or dark surfaces.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// OverlayStyle controls how the dimming overlay relates to the pressed child.
type OverlayStyle int

const (
	// OverlayStyleBehind dims everything but the pressed child, which is
	// lifted above the overlay.
	OverlayStyleBehind OverlayStyle = iota
	// OverlayStyleAround draws the dimming backdrop around the child and
	// fades the child itself while an action is hovered.
	OverlayStyleAround
)

func (s OverlayStyle) String() string {
	switch s {
	case OverlayStyleBehind:
		return "behind"
	case OverlayStyleAround:
		return "around"
	default:
		return fmt.Sprintf("OverlayStyle(%d)", int(s))
	}
}

// PieTheme configures pie menu behavior and appearance.
type PieTheme struct {
	// Brightness selects the fallback overlay color.
	Brightness Brightness

	// OverlayColor is the dimming color. Zero means derive from Brightness.
	OverlayColor graphics.Color

	// OverlayStyle selects how the overlay is composed with the child.
	OverlayStyle OverlayStyle

	// FadeDuration is the overlay fade-in and fade-out time.
	FadeDuration time.Duration

	// HoverDuration is how long action buttons take to react to hover.
	HoverDuration time.Duration

	// DelayDuration is how long a press must be held before the menu counts
	// as opened for release handling.
	DelayDuration time.Duration

	// ChildBounceEnabled toggles the press bounce on the wrapped child.
	ChildBounceEnabled bool

	// ChildTiltEnabled adds a tilt toward the press point to the bounce.
	ChildTiltEnabled bool

	// ChildBounceDuration is the time for a full bounce in either direction.
	ChildBounceDuration time.Duration

	// ChildBounceFactor is the child's scale at the peak of the bounce.
	ChildBounceFactor float64

	// ChildBounceCurve eases the bounce forward.
	ChildBounceCurve func(float64) float64

	// ChildBounceReverseCurve eases the bounce back. Nil reuses ChildBounceCurve.
	ChildBounceReverseCurve func(float64) float64

	// ChildBounceFilterQuality is used when rasterizing the transformed child.
	ChildBounceFilterQuality graphics.FilterQuality

	// ChildOpacityOnButtonHover is the child's opacity while an action is hovered.
	ChildOpacityOnButtonHover float64

	// RightClickShowsMenu lets a secondary mouse button open the menu.
	RightClickShowsMenu bool

	// LeftClickShowsMenu lets a primary mouse button open the menu.
	LeftClickShowsMenu bool

	// Radius is the distance from the menu anchor to each action's center.
	Radius float64

	// ButtonSize is the diameter of an action button.
	ButtonSize float64

	// ButtonColor fills action buttons; ButtonHoveredColor fills the hovered one.
	ButtonColor        graphics.Color
	ButtonHoveredColor graphics.Color
}

// DefaultPieTheme returns the default configuration.
//
// ChildBounceDuration stays under the shortest debounce window (75ms) so a
// bounce always reaches its peak before it is reversed.
func DefaultPieTheme() PieTheme {
	return PieTheme{
		Brightness:                BrightnessLight,
		OverlayStyle:              OverlayStyleBehind,
		FadeDuration:              250 * time.Millisecond,
		HoverDuration:             250 * time.Millisecond,
		DelayDuration:             350 * time.Millisecond,
		ChildBounceEnabled:        true,
		ChildTiltEnabled:          true,
		ChildBounceDuration:       75 * time.Millisecond,
		ChildBounceFactor:         0.95,
		ChildBounceCurve:          animation.EaseOut,
		ChildBounceFilterQuality:  graphics.FilterQualityMedium,
		ChildOpacityOnButtonHover: 0.5,
		RightClickShowsMenu:       true,
		LeftClickShowsMenu:        true,
		Radius:                    96,
		ButtonSize:                56,
		ButtonColor:               graphics.RGB(0x21, 0x96, 0xF3),
		ButtonHoveredColor:        graphics.RGB(0x0D, 0x47, 0xA1),
	}
}

// EffectiveOverlayColor returns OverlayColor, or a translucent color
// matching Brightness when none is set.
func (t PieTheme) EffectiveOverlayColor() graphics.Color {
	if t.OverlayColor != graphics.ColorTransparent {
		return t.OverlayColor
	}
	if t.Brightness == BrightnessDark {
		return graphics.ColorBlack.WithAlpha(0.7)
	}
	return graphics.ColorWhite.WithAlpha(0.7)
}

// EffectiveBounceReverseCurve returns the curve used when the bounce reverses.
func (t PieTheme) EffectiveBounceReverseCurve() func(float64) float64 {
	if t.ChildBounceReverseCurve != nil {
		return t.ChildBounceReverseCurve
	}
	return t.ChildBounceCurve
}
