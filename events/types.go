package events

import (
	"time"
)

// EventType represents the type of inbound game command
type EventType int

const (
	// EventStartGame begins the session on the player's first activation gesture
	// Trigger: click or Enter on the intro screen | Payload: nil
	EventStartGame EventType = iota

	// EventSetDirection changes the snake's facing and clears pause
	// Trigger: arrow keys | Payload: *DirectionPayload
	EventSetDirection

	// EventTogglePause flips the snake's pause flag, direction is kept
	// Trigger: space | Payload: nil
	EventTogglePause
)

// String returns the event name used in logs
func (t EventType) String() string {
	switch t {
	case EventStartGame:
		return "StartGame"
	case EventSetDirection:
		return "SetDirection"
	case EventTogglePause:
		return "TogglePause"
	}
	return "Unknown"
}

// GameEvent is a single queued command
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
