package screens

import (
	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/input"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	statusBar     *components.StatusBar
	keyboard      *input.KeyboardHandler
}

// NewGameScreen takes the apple sprite, which may be nil.
func NewGameScreen(ctx types.ScreenContext, cellSize int, apple *ebiten.Image) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(cellSize, apple),
		statusBar:     components.NewStatusBar(cellSize),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	if dir := s.keyboard.Update(); dir != domain.DirectionNone {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Direction: dir},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	state := s.ctx.State()
	if state == nil {
		return
	}

	s.fieldRenderer.DrawWalls(screen, state.Field, state.Level)
	s.fieldRenderer.DrawApple(screen, state.Apple)
	s.fieldRenderer.DrawSnake(screen, state.Snake)
	s.statusBar.Draw(screen, state)
}

func (s *GameScreen) OnEnter() {}

func (s *GameScreen) OnExit() {}
