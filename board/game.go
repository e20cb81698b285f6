package board

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/auramixer/input"
)

// Game runs the board on ebiten's fixed 60 TPS loop.
type Game struct {
	board   *Board
	source  *input.Source
	overlay *Overlay
	cmds    []input.Command

	width  int
	height int
}

func NewGame(b *Board, source *input.Source, width, height int) *Game {
	return &Game{
		board:   b,
		source:  source,
		overlay: NewOverlay(width, height),
		cmds:    make([]input.Command, 0, 8),
		width:   width,
		height:  height,
	}
}

func (g *Game) Update() error {
	g.cmds = g.source.Poll(g.cmds[:0])
	if g.board.Step(g.cmds) {
		return ebiten.Termination
	}
	g.overlay.Update(g.board)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.board.Scheduler().Draw(screen)
	g.overlay.Draw(screen, g.board)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
