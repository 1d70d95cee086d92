package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
)

// GameClock tracks session time from the start command
type GameClock struct {
	provider TimeProvider
	start    time.Time
	started  bool
}

// NewGameClock creates a clock that reads time from provider
func NewGameClock(provider TimeProvider) *GameClock {
	return &GameClock{provider: provider}
}

// Start marks the session epoch
func (c *GameClock) Start() {
	c.start = c.provider.Now()
	c.started = true
}

// Elapsed returns time since Start, zero before it
func (c *GameClock) Elapsed() time.Duration {
	if !c.started {
		return 0
	}
	return c.provider.Now().Sub(c.start)
}

// ElapsedSeconds returns Elapsed in seconds
func (c *GameClock) ElapsedSeconds() float64 {
	return c.Elapsed().Seconds()
}

// StatusLine composes contact count, whole elapsed seconds and a motion descriptor
func (c *GameClock) StatusLine(contacts int, dir core.Direction, paused bool) string {
	motion := dir.String()
	switch {
	case dir == core.DirNone:
		motion = constants.MotionWaiting
	case paused:
		motion = constants.MotionPaused
	}
	return fmt.Sprintf(constants.StatusFormat, contacts, int(c.ElapsedSeconds()), motion)
}
