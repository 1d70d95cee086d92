package systems

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/engine"
	"github.com/lixenwraith/snake-monster/grid"
)

// MonsterSystem steps the monster toward the snake head on a jittered period
type MonsterSystem struct {
	statMoves   *atomic.Int64
	statBlocked *atomic.Int64
}

// NewMonsterSystem creates a new pursuit system
func NewMonsterSystem(w *engine.World) *MonsterSystem {
	return &MonsterSystem{
		statMoves:   w.Status.Ints.Get("monster.moves"),
		statBlocked: w.Status.Ints.Get("monster.blocked"),
	}
}

func (s *MonsterSystem) Name() string { return "monster" }

func (s *MonsterSystem) InitialDelay(w *engine.World) time.Duration {
	return w.Jitter(constants.MonsterBlockedMinMs, constants.MonsterBlockedMaxMs)
}

// Tick moves one cell along the axis with the larger display-space gap
func (s *MonsterSystem) Tick(w *engine.World) (time.Duration, bool) {
	if w.Stats.GameOver {
		return 0, false
	}

	attempt := PursuitStep(w.Monster.Position, w.Snake.Head)
	if !grid.MonsterInBounds(attempt) {
		s.statBlocked.Add(1)
		return w.Jitter(constants.MonsterBlockedMinMs, constants.MonsterBlockedMaxMs), true
	}

	w.Monster.Position = attempt
	w.Renderer().DrawMonster(grid.MonsterDisplay(attempt))
	s.statMoves.Add(1)

	// Both checks run on the same position; a head hit is also counted as contact
	if grid.TouchesSnakeBody(attempt, w.Snake) {
		w.RecordContact()
	}
	if grid.TouchesSnakeHead(attempt, w.Snake.Head) {
		w.EndGame(core.OutcomeLost)
		return 0, false
	}

	w.RefreshStatus()
	return w.Jitter(constants.MonsterMovedMinMs, constants.MonsterMovedMaxMs), true
}

// PursuitStep returns the cell one step from monster toward head
// Gaps are compared after the snake and monster display mappings, which have different origins
func PursuitStep(monster, head core.Cell) core.Cell {
	s := grid.SnakeDisplay(head)
	m := grid.MonsterDisplay(monster)
	gap := s.Minus(m)

	if math.Abs(gap.X) > math.Abs(gap.Y) {
		if m.X > s.X {
			return core.Cell{Row: monster.Row - 1, Col: monster.Col}
		}
		return core.Cell{Row: monster.Row + 1, Col: monster.Col}
	}
	if m.Y > s.Y {
		return core.Cell{Row: monster.Row, Col: monster.Col - 1}
	}
	return core.Cell{Row: monster.Row, Col: monster.Col + 1}
}
