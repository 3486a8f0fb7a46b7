package pie

import "github.com/go-drift/piemenu/pkg/graphics"

// PieAction is one button in the ring.
type PieAction struct {
	// Tooltip labels the action while it is hovered.
	Tooltip string

	// OnSelect runs when the action is chosen.
	OnSelect func()

	// Color overrides the theme's button color. Zero means use the theme.
	Color graphics.Color
}
