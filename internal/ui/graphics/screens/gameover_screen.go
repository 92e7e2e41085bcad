package screens

import (
	"fmt"

	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const gameOverTitle = "Game Over"

type GameOverScreen struct {
	ctx types.ScreenContext

	btnQuit *components.Button
}

func NewGameOverScreen(ctx types.ScreenContext) *GameOverScreen {
	return &GameOverScreen{
		ctx:     ctx,
		btnQuit: components.NewButton(0, 0, 120, 30, "Quit"),
	}
}

func (s *GameOverScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	s.btnQuit.SetPosition(components.CenteredX(w, s.btnQuit.Width), h/2+60)

	if s.btnQuit.Update() || input.IsEscapePressed() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	drawLarge(screen, gameOverTitle, w, h/2)

	score := int32(0)
	if state := s.ctx.State(); state != nil {
		score = state.Score
	}
	drawLarge(screen, fmt.Sprintf("Score: %d", score), w, h/2+30)

	s.btnQuit.Draw(screen)

	hint := "Press ESC or Enter to quit"
	bounds := text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, components.CenteredX(w, bounds.Dx()), h-15, types.ColorTextDim)
}

// drawLarge centres msg horizontally with its baseline at y.
func drawLarge(screen *ebiten.Image, msg string, w, y int) {
	face := types.GetFonts().Normal
	bounds := text.BoundString(face, msg)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(types.LargeScale, types.LargeScale)
	op.GeoM.Translate(float64(components.CenteredX(w, bounds.Dx()*types.LargeScale)), float64(y))
	op.ColorScale.ScaleWithColor(types.ColorText)
	text.DrawWithOptions(screen, msg, face, op)
}

func (s *GameOverScreen) OnEnter() {}

func (s *GameOverScreen) OnExit() {}
