package engine

import (
	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/grid"
)

// FoodItem is one numbered food; its value is ID+1
type FoodItem struct {
	ID       int
	Position core.Cell
	Eaten    bool
	Visible  bool
}

// Value returns the growth granted when eaten, equal to the displayed numeral
func (f FoodItem) Value() int {
	return f.ID + 1
}

// FoodTable owns the food items and the cell lookup for uneaten visible food
type FoodTable struct {
	Items  [constants.FoodCount]FoodItem
	index  map[core.Cell]int
	placed bool
}

// NewFoodTable creates an empty table; Place fills it at game start
func NewFoodTable() *FoodTable {
	return &FoodTable{index: make(map[core.Cell]int, constants.FoodCount)}
}

// Place positions every item, visible and indexed
func (t *FoodTable) Place(positions [constants.FoodCount]core.Cell) {
	clear(t.index)
	for id, pos := range positions {
		t.Items[id] = FoodItem{ID: id, Position: pos, Visible: true}
		t.index[pos] = id
	}
	t.placed = true
}

// Placed reports whether Place has run
func (t *FoodTable) Placed() bool {
	return t.placed
}

// Lookup returns the id of the edible food at c
func (t *FoodTable) Lookup(c core.Cell) (int, bool) {
	id, ok := t.index[c]
	return id, ok
}

// Uneaten returns ids of foods not yet eaten, visible or not
func (t *FoodTable) Uneaten() []int {
	ids := make([]int, 0, constants.FoodCount)
	for _, item := range t.Items {
		if t.placed && !item.Eaten {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Remaining returns the number of uneaten foods
func (t *FoodTable) Remaining() int {
	return len(t.Uneaten())
}

func (t *FoodTable) markEaten(id int) {
	item := &t.Items[id]
	item.Eaten = true
	item.Visible = false
	delete(t.index, item.Position)
}

func (t *FoodTable) hide(id int) {
	item := &t.Items[id]
	item.Visible = false
	delete(t.index, item.Position)
}

func (t *FoodTable) show(id int) {
	item := &t.Items[id]
	item.Visible = true
	t.index[item.Position] = id
}

// placeFood picks five distinct cells that avoid the snake head and the monster
func (w *World) placeFood() {
	var positions [constants.FoodCount]core.Cell
	taken := map[core.Cell]struct{}{
		w.Snake.Head:       {},
		w.Monster.Position: {},
	}
	for n := 0; n < constants.FoodCount; {
		c := core.Cell{Row: w.rng.Intn(constants.GridSize), Col: w.rng.Intn(constants.GridSize)}
		if _, ok := taken[c]; ok {
			continue
		}
		taken[c] = struct{}{}
		positions[n] = c
		n++
	}
	w.Food.Place(positions)
	for _, item := range w.Food.Items {
		w.renderer.DrawFoodGlyph(item.ID, grid.FoodDisplay(item.Position))
	}
}

// ConsumeAt eats the indexed food at c, growing the snake's target by its value
// Once eaten a food leaves the index, so repeated visits are no-ops
func (w *World) ConsumeAt(c core.Cell) bool {
	id, ok := w.Food.Lookup(c)
	if !ok || w.Food.Items[id].Eaten {
		return false
	}
	w.Snake.TargetLength += w.Food.Items[id].Value()
	w.Food.markEaten(id)
	w.renderer.EraseFoodGlyph(id)
	w.sound.Play(core.SoundEat)
	w.statEaten.Add(1)
	return true
}

// ToggleFood flips the visibility of an uneaten food and keeps the index in sync
func (w *World) ToggleFood(id int) {
	item := w.Food.Items[id]
	if item.Eaten {
		return
	}
	if item.Visible {
		w.Food.hide(id)
		w.renderer.EraseFoodGlyph(id)
	} else {
		w.Food.show(id)
		w.renderer.DrawFoodGlyph(id, grid.FoodDisplay(item.Position))
	}
	w.statToggles.Add(1)
}
