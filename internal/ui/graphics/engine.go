package graphics

import (
	"image"
	"log"
	"sync"

	"snake/internal/domain"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const windowTitle = "Enhanced Snake Game"

// Engine is the render sink for the window. It only ever sees snapshots.
type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	pendingScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	state  *domain.GameState
	dataMu sync.RWMutex

	eventCh chan types.UIEvent
}

// NewEngine sizes the window to the grid. apple may be nil.
func NewEngine(cfg *domain.GameConfig, apple image.Image) *Engine {
	types.InitFonts()

	w, h := components.CanvasSize(domain.NewField(cfg.Width, cfg.Height), int(cfg.CellSize))
	e := &Engine{
		width:         w,
		height:        h,
		currentScreen: types.ScreenGame,
		pendingScreen: types.ScreenGame,
		screenMap:     make(map[types.ScreenType]types.Screen),
		eventCh:       make(chan types.UIEvent, 100),
	}

	var sprite *ebiten.Image
	if apple != nil {
		sprite = ebiten.NewImageFromImage(apple)
	}

	e.screenMap[types.ScreenGame] = screens.NewGameScreen(e, int(cfg.CellSize), sprite)
	e.screenMap[types.ScreenGameOver] = screens.NewGameOverScreen(e)

	return e
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.dataMu.RLock()
	pending := e.pendingScreen
	e.dataMu.RUnlock()
	e.switchScreen(pending)

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}

	event := screen.Update()
	e.emit(event)
	if event.Type == types.UIEventQuit {
		return ebiten.Termination
	}

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}
	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) State() *domain.GameState {
	e.dataMu.RLock()
	defer e.dataMu.RUnlock()
	return e.state
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

// SetScreen may be called from any goroutine; the switch happens on the next
// Update.
func (e *Engine) SetScreen(screen types.ScreenType) {
	e.dataMu.Lock()
	e.pendingScreen = screen
	e.dataMu.Unlock()
}

func (e *Engine) SetState(state *domain.GameState) {
	e.dataMu.Lock()
	e.state = state
	e.dataMu.Unlock()
}

func (e *Engine) GetCurrentScreen() types.ScreenType {
	return e.currentScreen
}

func (e *Engine) switchScreen(screen types.ScreenType) {
	if e.currentScreen == screen {
		return
	}
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnExit()
	}
	e.currentScreen = screen
	if s := e.screenMap[e.currentScreen]; s != nil {
		s.OnEnter()
	}
}

func (e *Engine) emit(event types.UIEvent) {
	if event.Type == types.UIEventNone {
		return
	}
	select {
	case e.eventCh <- event:
	default:
		log.Println("Event channel full, dropping event")
	}
}
