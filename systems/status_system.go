package systems

import (
	"time"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/engine"
)

// StatusSystem refreshes the status line once per second
type StatusSystem struct{}

// NewStatusSystem creates a new status refresh system
func NewStatusSystem() *StatusSystem {
	return &StatusSystem{}
}

func (s *StatusSystem) Name() string { return "status" }

func (s *StatusSystem) InitialDelay(*engine.World) time.Duration { return 0 }

func (s *StatusSystem) Tick(w *engine.World) (time.Duration, bool) {
	if w.Stats.GameOver {
		return 0, false
	}
	w.RefreshStatus()
	return constants.StatusRefreshPeriod, true
}
