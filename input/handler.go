// Package input translates terminal events into game commands
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/events"
)

// Commander accepts commands from the input goroutine
type Commander interface {
	Submit(t events.EventType, payload any)
	Over() bool
}

var arrowDirections = map[tcell.Key]core.Direction{
	tcell.KeyUp:    core.DirUp,
	tcell.KeyDown:  core.DirDown,
	tcell.KeyLeft:  core.DirLeft,
	tcell.KeyRight: core.DirRight,
}

// InputHandler processes user input events
type InputHandler struct {
	game   Commander
	screen tcell.Screen
}

// NewInputHandler creates a new input handler; screen may be nil
func NewInputHandler(game Commander, screen tcell.Screen) *InputHandler {
	return &InputHandler{
		game:   game,
		screen: screen,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKeyEvent(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			return h.click()
		}
	case *tcell.EventResize:
		if h.screen != nil {
			h.screen.Sync()
		}
	}
	return true
}

func (h *InputHandler) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return false
	case tcell.KeyEnter:
		return h.click()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			h.game.Submit(events.EventTogglePause, nil)
		}
		return true
	}

	if dir, ok := arrowDirections[ev.Key()]; ok {
		h.game.Submit(events.EventSetDirection, &events.DirectionPayload{Direction: dir})
	}
	return true
}

// click starts the game, or quits once it is over
func (h *InputHandler) click() bool {
	if h.game.Over() {
		return false
	}
	h.game.Submit(events.EventStartGame, nil)
	return true
}
