package events

import "testing"

type counter struct {
	starts, pauses int
}

func TestRouterDispatch(t *testing.T) {
	eq := NewEventQueue()
	r := NewRouter[*counter](eq)

	r.Register(HandlerFunc[*counter]{
		Types: []EventType{EventStartGame},
		Fn:    func(c *counter, _ GameEvent) { c.starts++ },
	})
	r.Register(HandlerFunc[*counter]{
		Types: []EventType{EventTogglePause, EventStartGame},
		Fn: func(c *counter, ev GameEvent) {
			if ev.Type == EventTogglePause {
				c.pauses++
			}
		},
	})

	if r.HandlerCount(EventStartGame) != 2 {
		t.Errorf("Expected 2 start handlers, got %d", r.HandlerCount(EventStartGame))
	}

	eq.Push(GameEvent{Type: EventStartGame})
	eq.Push(GameEvent{Type: EventTogglePause})
	eq.Push(GameEvent{Type: EventTogglePause})
	eq.Push(GameEvent{Type: EventSetDirection})

	c := &counter{}
	if n := r.DispatchAll(c); n != 4 {
		t.Errorf("Expected 4 events consumed, got %d", n)
	}
	if c.starts != 1 || c.pauses != 2 {
		t.Errorf("Unexpected counts: starts=%d pauses=%d", c.starts, c.pauses)
	}
	if n := r.DispatchAll(c); n != 0 {
		t.Errorf("Expected empty dispatch, got %d", n)
	}
}
