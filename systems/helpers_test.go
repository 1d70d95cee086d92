package systems

import (
	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/engine"
)

// farFood parks every food on the top edge, away from the cells tests walk through
var farFood = [constants.FoodCount]core.Cell{
	{Row: 24, Col: 20},
	{Row: 24, Col: 21},
	{Row: 24, Col: 22},
	{Row: 24, Col: 23},
	{Row: 24, Col: 24},
}

// newStartedWorld returns a started world with food parked and the monster in a far corner
func newStartedWorld(seed uint64) (*engine.World, *engine.RecordingRenderer) {
	rec := engine.NewRecordingRenderer()
	w := engine.NewWorld(engine.Config{
		Seed:     seed,
		Renderer: rec,
		Time:     engine.NewMockTimeProvider(engine.TestEpoch),
	})
	w.Start()
	w.Food.Place(farFood)
	w.Monster.Position = core.Cell{Row: 0, Col: 23}
	return w, rec
}

// line returns cells from (row, fromCol) to (row, toCol) in order
func line(row, fromCol, toCol int) []core.Cell {
	var cells []core.Cell
	step := 1
	if toCol < fromCol {
		step = -1
	}
	for c := fromCol; ; c += step {
		cells = append(cells, core.Cell{Row: row, Col: c})
		if c == toCol {
			break
		}
	}
	return cells
}
