package systems

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/engine"
	"github.com/lixenwraith/snake-monster/grid"
)

// SnakeSystem advances the snake one cell per tick
// Period is 300ms while growing toward the target, 200ms otherwise
type SnakeSystem struct {
	statMoves   *atomic.Int64
	statBlocked *atomic.Int64
}

// NewSnakeSystem creates a new snake movement system
func NewSnakeSystem(w *engine.World) *SnakeSystem {
	return &SnakeSystem{
		statMoves:   w.Status.Ints.Get("snake.moves"),
		statBlocked: w.Status.Ints.Get("snake.blocked"),
	}
}

func (s *SnakeSystem) Name() string { return "snake" }

func (s *SnakeSystem) InitialDelay(*engine.World) time.Duration {
	return constants.SnakeBasePeriod
}

// Tick moves the head one cell, then shrinks, wins or eats as the length dictates
func (s *SnakeSystem) Tick(w *engine.World) (time.Duration, bool) {
	if w.Stats.GameOver {
		return 0, false
	}
	snake := w.Snake
	if !snake.Moving() {
		return constants.SnakeBasePeriod, true
	}

	attempt := snake.Head.Add(snake.Direction.Delta())
	if !grid.SnakeCanEnter(attempt, snake) {
		// Walls and the body are soft: the snake waits for a new direction
		s.statBlocked.Add(1)
		return constants.SnakeBasePeriod, true
	}

	r := w.Renderer()
	r.DrawSnakeSegment(grid.SnakeDisplay(snake.Head), core.RoleBody)
	snake.Append(attempt)
	r.DrawSnakeSegment(grid.SnakeDisplay(attempt), core.RoleHead)
	s.statMoves.Add(1)

	extended := snake.Len() > snake.TargetLength
	if extended {
		snake.DropTail()
		r.EraseOldestSegment()
	}

	if grid.TouchesSnakeHead(w.Monster.Position, snake.Head) {
		w.EndGame(core.OutcomeLost)
		return 0, false
	}

	next := constants.SnakeBasePeriod
	if !extended {
		// Win is only checked while still growing
		if snake.Len() == constants.MaxSnakeLength {
			w.EndGame(core.OutcomeWon)
			return 0, false
		}
		next = constants.SnakeGrowPeriod
	}

	w.ConsumeAt(snake.Head)
	return next, true
}
