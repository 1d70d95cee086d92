package systems

import (
	"time"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/engine"
)

// FoodSystem hides or reveals one random uneaten food per tick
type FoodSystem struct{}

// NewFoodSystem creates a new food visibility system
func NewFoodSystem() *FoodSystem {
	return &FoodSystem{}
}

func (s *FoodSystem) Name() string { return "food" }

func (s *FoodSystem) InitialDelay(*engine.World) time.Duration {
	return constants.FoodFirstToggleDelay
}

func (s *FoodSystem) Tick(w *engine.World) (time.Duration, bool) {
	if w.Stats.GameOver {
		return 0, false
	}
	s.Toggle(w)
	return w.Jitter(constants.FoodToggleMinMs, constants.FoodToggleMaxMs), true
}

// Toggle flips a uniformly chosen uneaten food, then lets the snake eat a food revealed under its head
// Returns the toggled id, or -1 when every food is eaten
func (s *FoodSystem) Toggle(w *engine.World) int {
	uneaten := w.Food.Uneaten()
	if len(uneaten) == 0 {
		return -1
	}
	id := uneaten[w.Pick(len(uneaten))]
	w.ToggleFood(id)
	w.ConsumeAt(w.Snake.Head)
	return id
}
