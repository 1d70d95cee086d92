package events

import "github.com/lixenwraith/snake-monster/core"

// DirectionPayload carries the requested facing for EventSetDirection
type DirectionPayload struct {
	Direction core.Direction
}
