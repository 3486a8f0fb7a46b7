package theme

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/graphics"
)

// themeFile mirrors PieTheme with optional fields so unset keys keep the
// base value.
type themeFile struct {
	Brightness                *string  `yaml:"brightness,omitempty"`
	OverlayColor              *string  `yaml:"overlayColor,omitempty"`
	OverlayStyle              *string  `yaml:"overlayStyle,omitempty"`
	FadeDuration              *string  `yaml:"fadeDuration,omitempty"`
	HoverDuration             *string  `yaml:"hoverDuration,omitempty"`
	DelayDuration             *string  `yaml:"delayDuration,omitempty"`
	ChildBounceEnabled        *bool    `yaml:"childBounceEnabled,omitempty"`
	ChildTiltEnabled          *bool    `yaml:"childTiltEnabled,omitempty"`
	ChildBounceDuration       *string  `yaml:"childBounceDuration,omitempty"`
	ChildBounceFactor         *float64 `yaml:"childBounceFactor,omitempty"`
	ChildBounceCurve          *string  `yaml:"childBounceCurve,omitempty"`
	ChildBounceReverseCurve   *string  `yaml:"childBounceReverseCurve,omitempty"`
	ChildBounceFilterQuality  *string  `yaml:"childBounceFilterQuality,omitempty"`
	ChildOpacityOnButtonHover *float64 `yaml:"childOpacityOnButtonHover,omitempty"`
	RightClickShowsMenu       *bool    `yaml:"rightClickShowsMenu,omitempty"`
	LeftClickShowsMenu        *bool    `yaml:"leftClickShowsMenu,omitempty"`
	Radius                    *float64 `yaml:"radius,omitempty"`
	ButtonSize                *float64 `yaml:"buttonSize,omitempty"`
	ButtonColor               *string  `yaml:"buttonColor,omitempty"`
	ButtonHoveredColor        *string  `yaml:"buttonHoveredColor,omitempty"`
}

// LoadPieTheme reads a YAML theme file and applies it over the defaults.
// A missing file yields the defaults without error.
func LoadPieTheme(path string) (PieTheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultPieTheme(), nil
		}
		return PieTheme{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ApplyYAML(DefaultPieTheme(), data)
}

// ParsePieTheme applies YAML data over the defaults.
func ParsePieTheme(data []byte) (PieTheme, error) {
	return ApplyYAML(DefaultPieTheme(), data)
}

// ApplyYAML returns base with every key present in data overridden.
func ApplyYAML(base PieTheme, data []byte) (PieTheme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return PieTheme{}, fmt.Errorf("failed to parse theme: %w", err)
	}
	return f.apply(base)
}

func (f *themeFile) apply(t PieTheme) (PieTheme, error) {
	var err error
	if f.Brightness != nil {
		switch *f.Brightness {
		case "light":
			t.Brightness = BrightnessLight
		case "dark":
			t.Brightness = BrightnessDark
		default:
			return PieTheme{}, fmt.Errorf("brightness: unknown value %q", *f.Brightness)
		}
	}
	if f.OverlayStyle != nil {
		switch *f.OverlayStyle {
		case "behind":
			t.OverlayStyle = OverlayStyleBehind
		case "around":
			t.OverlayStyle = OverlayStyleAround
		default:
			return PieTheme{}, fmt.Errorf("overlayStyle: unknown value %q", *f.OverlayStyle)
		}
	}
	if err = setColor(&t.OverlayColor, f.OverlayColor, "overlayColor"); err != nil {
		return PieTheme{}, err
	}
	if err = setColor(&t.ButtonColor, f.ButtonColor, "buttonColor"); err != nil {
		return PieTheme{}, err
	}
	if err = setColor(&t.ButtonHoveredColor, f.ButtonHoveredColor, "buttonHoveredColor"); err != nil {
		return PieTheme{}, err
	}
	for _, d := range []struct {
		dst  *time.Duration
		src  *string
		name string
	}{
		{&t.FadeDuration, f.FadeDuration, "fadeDuration"},
		{&t.HoverDuration, f.HoverDuration, "hoverDuration"},
		{&t.DelayDuration, f.DelayDuration, "delayDuration"},
		{&t.ChildBounceDuration, f.ChildBounceDuration, "childBounceDuration"},
	} {
		if err = setDuration(d.dst, d.src, d.name); err != nil {
			return PieTheme{}, err
		}
	}
	if f.ChildBounceCurve != nil {
		if t.ChildBounceCurve, err = animation.CurveByName(*f.ChildBounceCurve); err != nil {
			return PieTheme{}, fmt.Errorf("childBounceCurve: %w", err)
		}
	}
	if f.ChildBounceReverseCurve != nil {
		if t.ChildBounceReverseCurve, err = animation.CurveByName(*f.ChildBounceReverseCurve); err != nil {
			return PieTheme{}, fmt.Errorf("childBounceReverseCurve: %w", err)
		}
	}
	if f.ChildBounceFilterQuality != nil {
		if t.ChildBounceFilterQuality, err = graphics.ParseFilterQuality(*f.ChildBounceFilterQuality); err != nil {
			return PieTheme{}, fmt.Errorf("childBounceFilterQuality: %w", err)
		}
	}
	setBool(&t.ChildBounceEnabled, f.ChildBounceEnabled)
	setBool(&t.ChildTiltEnabled, f.ChildTiltEnabled)
	setBool(&t.RightClickShowsMenu, f.RightClickShowsMenu)
	setBool(&t.LeftClickShowsMenu, f.LeftClickShowsMenu)
	setFloat(&t.ChildBounceFactor, f.ChildBounceFactor)
	setFloat(&t.ChildOpacityOnButtonHover, f.ChildOpacityOnButtonHover)
	setFloat(&t.Radius, f.Radius)
	setFloat(&t.ButtonSize, f.ButtonSize)

	if t.ChildOpacityOnButtonHover < 0 || t.ChildOpacityOnButtonHover > 1 {
		return PieTheme{}, fmt.Errorf("childOpacityOnButtonHover: %v is outside [0, 1]", t.ChildOpacityOnButtonHover)
	}
	return t, nil
}

func setDuration(dst *time.Duration, src *string, name string) error {
	if src == nil {
		return nil
	}
	d, err := time.ParseDuration(*src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if d < 0 {
		return fmt.Errorf("%s: negative duration %s", name, d)
	}
	*dst = d
	return nil
}

func setColor(dst *graphics.Color, src *string, name string) error {
	if src == nil {
		return nil
	}
	c, err := graphics.ParseColor(*src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = c
	return nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
