package pie

import (
	"fmt"

	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/graphics"
)

// MenuCommandKind names a programmatic menu command.
type MenuCommandKind int

const (
	CommandOpen MenuCommandKind = iota
	CommandClose
	CommandToggle
)

func (k MenuCommandKind) String() string {
	switch k {
	case CommandOpen:
		return "open"
	case CommandClose:
		return "close"
	case CommandToggle:
		return "toggle"
	default:
		return fmt.Sprintf("MenuCommandKind(%d)", int(k))
	}
}

// MenuCommand is delivered to the PieMenu a controller is bound to.
type MenuCommand struct {
	Kind MenuCommandKind
	// Alignment positions the menu relative to the child's box.
	Alignment graphics.Alignment
	// Displacement shifts the anchor after alignment.
	Displacement graphics.Offset
}

// PieController opens, closes and toggles a PieMenu from code.
//
// Bind a controller by setting PieMenu.Controller. Commands issued before
// the menu mounts are dropped.
type PieController struct {
	commands *core.Observable[MenuCommand]
}

// NewPieController creates an unbound controller.
func NewPieController() *PieController {
	return &PieController{commands: core.NewObservable(MenuCommand{})}
}

// OpenMenu opens the menu anchored at alignment within the child.
func (c *PieController) OpenMenu(alignment graphics.Alignment, displacement graphics.Offset) {
	c.commands.Set(MenuCommand{Kind: CommandOpen, Alignment: alignment, Displacement: displacement})
}

// CloseMenu closes the menu if it is open.
func (c *PieController) CloseMenu() {
	c.commands.Set(MenuCommand{Kind: CommandClose})
}

// ToggleMenu closes the menu if it is open, otherwise opens it.
func (c *PieController) ToggleMenu(alignment graphics.Alignment, displacement graphics.Offset) {
	c.commands.Set(MenuCommand{Kind: CommandToggle, Alignment: alignment, Displacement: displacement})
}

// AddListener subscribes to commands. Returns an unsubscribe function.
func (c *PieController) AddListener(fn func(MenuCommand)) func() {
	return c.commands.AddListener(fn)
}
