package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/piemenu/pkg/animation"
	"github.com/go-drift/piemenu/pkg/core"
	"github.com/go-drift/piemenu/pkg/gestures"
	"github.com/go-drift/piemenu/pkg/graphics"
	"github.com/go-drift/piemenu/pkg/pie"
	"github.com/go-drift/piemenu/pkg/theme"
)

const (
	screenWidth  = 960
	screenHeight = 640

	cardWidth  = 200
	cardHeight = 140
)

// card is one menu-wrapped rectangle on screen.
type card struct {
	label string
	color graphics.Color
	rect  graphics.Rect
	image *ebiten.Image
	state *pie.PieMenuState
}

type demo struct {
	owner  *core.BuildOwner
	canvas *pie.PieCanvas
	arena  *gestures.GestureArena
	theme  theme.PieTheme
	store  *settingsStore
	cards  []*card
	input  *inputRouter
	status string

	hover        *animation.AnimationController
	hoveredIndex int
}

func newDemo(th theme.PieTheme, store *settingsStore) *demo {
	d := &demo{
		owner:        core.NewBuildOwner(),
		canvas:       pie.NewPieCanvas(th),
		arena:        gestures.NewGestureArena(),
		theme:        th,
		store:        store,
		status:       "Hold or right click a card",
		hover:        animation.NewAnimationController(th.HoverDuration),
		hoveredIndex: -1,
	}
	d.input = newInputRouter(d)
	d.canvas.AddListener(d.onCanvasChange)

	colors := []graphics.Color{
		graphics.RGB(0xE5, 0x39, 0x35),
		graphics.RGB(0x43, 0xA0, 0x47),
		graphics.RGB(0xFB, 0x8C, 0x00),
	}
	labels := []string{"Inbox", "Photos", "Music"}
	gap := (screenWidth - float64(len(labels))*cardWidth) / float64(len(labels)+1)
	for i, label := range labels {
		c := &card{
			label: label,
			color: colors[i],
			rect: graphics.Rect{
				Left:   gap + float64(i)*(cardWidth+gap),
				Top:    (screenHeight - cardHeight) / 2,
				Right:  gap + float64(i)*(cardWidth+gap) + cardWidth,
				Bottom: (screenHeight + cardHeight) / 2,
			},
		}
		c.state = pie.Mount(d.owner, pie.PieMenu{
			Child:   c,
			Actions: d.actionsFor(c),
			Canvas:  d.canvas,
			Arena:   d.arena,
			OnToggle: func(open bool) {
				if open {
					d.status = c.label + " menu open"
				}
			},
			OnPressedWithDevice: func(kind gestures.PointerDeviceKind) {
				d.status = fmt.Sprintf("Pressed %s with %s", c.label, kind)
			},
		})
		d.cards = append(d.cards, c)
	}
	return d
}

func (d *demo) actionsFor(c *card) []pie.PieAction {
	pick := func(verb string) func() {
		return func() { d.status = verb + " " + c.label }
	}
	return []pie.PieAction{
		{Tooltip: "Open", OnSelect: pick("Opened")},
		{Tooltip: "Share", OnSelect: pick("Shared")},
		{Tooltip: "Pin", OnSelect: pick("Pinned")},
		{Tooltip: "Delete", OnSelect: pick("Deleted"), Color: graphics.RGB(0xC6, 0x28, 0x28)},
	}
}

// onCanvasChange restarts the hover highlight when a new action is hovered.
func (d *demo) onCanvasChange(st pie.CanvasState) {
	if st.Hovered == d.hoveredIndex {
		return
	}
	d.hoveredIndex = st.Hovered
	if st.Hovered >= 0 {
		d.hover.ForwardFrom(0)
	} else {
		d.hover.SetValue(0)
	}
}

func (d *demo) hitTest(pos graphics.Offset) *card {
	for i := len(d.cards) - 1; i >= 0; i-- {
		c := d.cards[i]
		if box, ok := c.state.RenderBox(); ok && box.Contains(pos) {
			return c
		}
	}
	return nil
}

func (d *demo) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		d.theme.ChildTiltEnabled = !d.theme.ChildTiltEnabled
		d.applyTheme()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		d.theme.ChildBounceEnabled = !d.theme.ChildBounceEnabled
		d.applyTheme()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		if d.theme.OverlayStyle == theme.OverlayStyleBehind {
			d.theme.OverlayStyle = theme.OverlayStyleAround
		} else {
			d.theme.OverlayStyle = theme.OverlayStyleBehind
		}
		d.applyTheme()
	}

	d.input.poll()
	d.owner.FlushBuild()
	animation.StepTickers()
	for _, c := range d.cards {
		rect := c.rect
		c.state.Layout(rect.TopLeft(), rect.Size)
	}
	return nil
}

// applyTheme hands the edited theme to the canvas, rebuilds every menu
// and saves the toggles.
func (d *demo) applyTheme() {
	d.canvas.SetTheme(d.theme)
	d.hover.Duration = d.theme.HoverDuration
	for _, c := range d.cards {
		c.state.SetState(nil)
	}
	if err := d.store.save(d.theme); err != nil {
		log.Printf("[piedemo] Warning: %v", err)
	}
	d.status = fmt.Sprintf("tilt=%v bounce=%v overlay=%s",
		d.theme.ChildTiltEnabled, d.theme.ChildBounceEnabled, d.theme.OverlayStyle)
}

func (d *demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF})

	// The card whose overlay is showing is drawn last so it sits above
	// the dimming in the behind style.
	var lifted *card
	for _, c := range d.cards {
		if c.state.FadeValue() > 0 {
			lifted = c
			continue
		}
		d.drawCard(screen, c)
	}
	if lifted != nil {
		d.drawOverlay(screen, lifted)
		d.drawCard(screen, lifted)
	}
	d.drawRing(screen)

	ebitenutil.DebugPrintAt(screen, d.status, 10, 10)
	ebitenutil.DebugPrintAt(screen, "T: tilt  B: bounce  O: overlay style", 10, screenHeight-20)

	// Size changes observed during layout are delivered here.
	d.owner.FlushPostFrameCallbacks()
}

func (d *demo) drawOverlay(screen *ebiten.Image, c *card) {
	col := c.state.OverlayColor().NRGBA()
	if !c.state.OverlayAroundChild() {
		vector.DrawFilledRect(screen, 0, 0, screenWidth, screenHeight, col, false)
		return
	}
	r := c.rect
	l, t, rt, b := float32(r.Left), float32(r.Top), float32(r.Right), float32(r.Bottom)
	vector.DrawFilledRect(screen, 0, 0, screenWidth, t, col, false)
	vector.DrawFilledRect(screen, 0, b, screenWidth, screenHeight-b, col, false)
	vector.DrawFilledRect(screen, 0, t, l, b-t, col, false)
	vector.DrawFilledRect(screen, rt, t, screenWidth-rt, b-t, col, false)
}

// drawCard draws the card as a textured quad whose corners follow the
// bounce transform.
func (d *demo) drawCard(screen *ebiten.Image, c *card) {
	if c.image == nil {
		c.image = ebiten.NewImage(int(c.rect.Width()), int(c.rect.Height()))
		c.image.Fill(c.color.NRGBA())
		ebitenutil.DebugPrintAt(c.image, c.label, 12, 12)
	}

	w, h := c.rect.Width(), c.rect.Height()
	corners := []graphics.Offset{{X: 0, Y: 0}, {X: w, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}}
	tr, ok := c.state.Transform()
	alpha := float32(c.state.ChildOpacity())

	vertices := make([]ebiten.Vertex, len(corners))
	for i, p := range corners {
		dst := p
		if ok {
			dst = tr.Apply(p)
		}
		vertices[i] = ebiten.Vertex{
			DstX:   float32(c.rect.Left + dst.X),
			DstY:   float32(c.rect.Top + dst.Y),
			SrcX:   float32(p.X),
			SrcY:   float32(p.Y),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: alpha,
		}
	}

	var op ebiten.DrawTrianglesOptions
	op.Filter = ebiten.FilterLinear
	if c.state.FilterQuality() == graphics.FilterQualityNone {
		op.Filter = ebiten.FilterNearest
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2, 1, 3, 2}, c.image, &op)
}

func (d *demo) drawRing(screen *ebiten.Image) {
	req, ok := d.canvas.Attachment()
	st := d.canvas.State()
	if !ok || !st.MenuOpen() {
		return
	}
	th := req.Theme
	radius := float32(th.ButtonSize / 2)
	for i, center := range d.canvas.ActionCenters() {
		action := req.Actions[i]
		fill := th.ButtonColor
		if action.Color != graphics.ColorTransparent {
			fill = action.Color
		}
		if i == st.Hovered {
			fill = animation.TweenColor(fill, th.ButtonHoveredColor).Transform(d.hover)
		}
		vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), radius, fill.NRGBA(), true)

		if i == st.Hovered && action.Tooltip != "" {
			x := int(center.X) - len(action.Tooltip)*3
			y := int(center.Y - th.ButtonSize/2 - 18)
			ebitenutil.DebugPrintAt(screen, action.Tooltip, x, y)
		}
	}
	anchor := d.canvas.Anchor()
	vector.DrawFilledCircle(screen, float32(anchor.X), float32(anchor.Y), 4, color.NRGBA{A: 0x80}, true)
}

func (d *demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
