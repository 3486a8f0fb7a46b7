// Package gestures models pointer input and gesture disambiguation.
//
// Hosts translate platform input into [PointerEvent] values. Recognizers
// compete for each pointer in a [GestureArena]; the winner owns the pointer
// and the losers are told to stand down.
package gestures

import (
	"fmt"

	"github.com/go-drift/piemenu/pkg/graphics"
)

// PointerPhase is the lifecycle stage of a pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerDeviceKind identifies the hardware that produced an event.
type PointerDeviceKind int

const (
	PointerDeviceTouch PointerDeviceKind = iota
	PointerDeviceMouse
	PointerDeviceStylus
	PointerDeviceInvertedStylus
	PointerDeviceTrackpad
	PointerDeviceUnknown
)

func (k PointerDeviceKind) String() string {
	switch k {
	case PointerDeviceTouch:
		return "touch"
	case PointerDeviceMouse:
		return "mouse"
	case PointerDeviceStylus:
		return "stylus"
	case PointerDeviceInvertedStylus:
		return "invertedStylus"
	case PointerDeviceTrackpad:
		return "trackpad"
	default:
		return "unknown"
	}
}

// Buttons is a bitmask of pressed pointer buttons.
type Buttons uint32

const (
	// ButtonPrimary is the left mouse button, or the contact of a touch or stylus.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the right mouse button.
	ButtonSecondary
	// ButtonTertiary is the middle mouse button.
	ButtonTertiary
	// ButtonBack is the browser back button.
	ButtonBack
	// ButtonForward is the browser forward button.
	ButtonForward
)

// Contain reports whether every button in other is set in b.
func (b Buttons) Contain(other Buttons) bool {
	return other != 0 && b&other == other
}

// PointerEvent describes one pointer sample.
type PointerEvent struct {
	PointerID int64
	// Position is in global (screen) coordinates.
	Position graphics.Offset
	// LocalPosition is relative to the receiving widget's top left.
	LocalPosition graphics.Offset
	Delta         graphics.Offset
	Phase         PointerPhase
	Kind          PointerDeviceKind
	// Buttons holds the buttons down for this sample. For up events it holds
	// the buttons that were released.
	Buttons Buttons
}

// TouchSlop is how far a pointer may travel, in logical pixels, before a
// stationary gesture such as a long press gives up.
const TouchSlop = 18.0
