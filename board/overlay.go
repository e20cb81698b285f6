package board

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/auramixer/input"
)

const keyHelp = "A-Z effects   1-0 tracks   Space stop all   Up/Down music volume   Right/Left effect volume   Shift overlay   F5 reload   Esc quit"

// Overlay is the info panel toggled with Shift, plus the reload banner
// that stays up whenever the last load was unusable.
type Overlay struct {
	ui        *ebitenui.UI
	root      *widget.Container
	panel     *widget.Container
	body      *widget.Text
	bannerBox *widget.Container
	banner    *widget.Text
}

func NewOverlay(width, height int) *Overlay {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	bannerImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x80, A: 220})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	body := widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(body)

	banner := widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)
	bannerBox := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(bannerImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	bannerBox.AddChild(banner)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)
	root.AddChild(bannerBox)

	return &Overlay{
		ui:        &ebitenui.UI{Container: root},
		root:      root,
		panel:     panel,
		body:      body,
		bannerBox: bannerBox,
		banner:    banner,
	}
}

// Update refreshes the labels when the board changed and lets the UI lay
// itself out.
func (o *Overlay) Update(b *Board) {
	if b.takeDirty() {
		o.body.Label = strings.Join(describe(b), "\n")
		o.banner.Label = b.Banner()
		setVisible(o.panel.GetWidget(), b.OverlayVisible())
		setVisible(o.bannerBox.GetWidget(), b.Banner() != "")
		o.root.RequestRelayout()
	}
	o.ui.Update()
}

func (o *Overlay) Draw(screen *ebiten.Image, b *Board) {
	if !b.OverlayVisible() && b.Banner() == "" {
		return
	}
	o.ui.Draw(screen)
}

func setVisible(w *widget.Widget, visible bool) {
	if visible {
		w.Visibility = widget.Visibility_Show
	} else {
		w.Visibility = widget.Visibility_Hide
	}
}

// describe renders the overlay body: key help, volumes, the playing track
// and the key for every track and effect.
func describe(b *Board) []string {
	m := b.Mixer()
	t := b.Effects()

	lines := []string{
		keyHelp,
		"",
		fmt.Sprintf("Music volume %3.0f%%   Effect volume %3.0f%%", m.Volume()*100, t.Volume()*100),
	}

	playing := "nothing"
	if i, ok := m.Current(); ok {
		playing = m.Tracks()[i].Name
	}
	lines = append(lines, "Playing: "+playing, "", "Tracks")

	tracks := m.Tracks()
	if len(tracks) == 0 {
		lines = append(lines, "  (none)")
	}
	for i, tr := range tracks {
		key := "-"
		if d, ok := input.DigitForTrack(i); ok {
			key = input.Digit(d).String()
		}
		lines = append(lines, fmt.Sprintf("  %s  %s", key, tr.Name))
	}

	lines = append(lines, "", "Effects")
	bindings := t.Bindings()
	if len(bindings) == 0 {
		lines = append(lines, "  (none)")
	}
	for _, bind := range bindings {
		lines = append(lines, fmt.Sprintf("  %s  %s", bind.Symbol, bind.Name))
	}
	return lines
}
