package engine

import (
	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
)

// MonsterState owns the monster's logical anchor cell
type MonsterState struct {
	Position core.Cell
}

// spawnMonster draws cells in the monster grid until one is far enough from start
func (w *World) spawnMonster(start core.Cell) *MonsterState {
	for {
		c := core.Cell{
			Row: w.rng.Intn(constants.MonsterGridSize),
			Col: w.rng.Intn(constants.MonsterGridSize),
		}
		if c.Manhattan(start) >= constants.MonsterMinDistance {
			return &MonsterState{Position: c}
		}
	}
}
