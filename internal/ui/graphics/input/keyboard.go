package input

import (
	"snake/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Binding maps one logical direction to its physical keys.
type Binding struct {
	Direction domain.Direction
	Keys      []ebiten.Key
}

var DefaultBindings = []Binding{
	{domain.DirectionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{domain.DirectionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{domain.DirectionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{domain.DirectionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

type KeyboardHandler struct {
	bindings []Binding
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{bindings: DefaultBindings}
}

// Update returns the first direction whose key went down this frame.
func (kh *KeyboardHandler) Update() domain.Direction {
	for _, b := range kh.bindings {
		if anyJustPressed(b.Keys) {
			return b.Direction
		}
	}
	return domain.DirectionNone
}

// Lookup returns the direction bound to key, or DirectionNone.
func (kh *KeyboardHandler) Lookup(key ebiten.Key) domain.Direction {
	for _, b := range kh.bindings {
		for _, k := range b.Keys {
			if k == key {
				return b.Direction
			}
		}
	}
	return domain.DirectionNone
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
