package engine

import (
	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/events"
)

func registerCommandHandlers(r *events.Router[*Game]) {
	r.Register(events.HandlerFunc[*Game]{
		Types: []events.EventType{events.EventStartGame},
		Fn:    func(g *Game, _ events.GameEvent) { g.start() },
	})
	r.Register(events.HandlerFunc[*Game]{
		Types: []events.EventType{events.EventSetDirection},
		Fn:    handleSetDirection,
	})
	r.Register(events.HandlerFunc[*Game]{
		Types: []events.EventType{events.EventTogglePause},
		Fn:    handleTogglePause,
	})
}

// acceptsInput reports whether direction and pause commands apply
// Keys are only bound between start and game over
func (w *World) acceptsInput() bool {
	return w.Stats.Started && !w.Stats.GameOver
}

func handleSetDirection(g *Game, ev events.GameEvent) {
	p, ok := ev.Payload.(*events.DirectionPayload)
	if !ok || p.Direction == core.DirNone {
		return
	}
	g.World.SetDirection(p.Direction)
}

func handleTogglePause(g *Game, _ events.GameEvent) {
	g.World.TogglePause()
}

// SetDirection sets the facing; any direction key also resumes a paused snake
func (w *World) SetDirection(d core.Direction) {
	if !w.acceptsInput() {
		return
	}
	w.Snake.Direction = d
	w.Snake.Paused = false
	w.RefreshStatus()
}

// TogglePause flips the pause flag without touching the direction
func (w *World) TogglePause() {
	if !w.acceptsInput() {
		return
	}
	w.Snake.Paused = !w.Snake.Paused
	w.RefreshStatus()
}
