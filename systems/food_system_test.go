package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/engine"
)

func eatAllBut(t *testing.T, keep int, w *engine.World) {
	t.Helper()
	for id, pos := range farFood {
		if id == keep {
			continue
		}
		if !w.ConsumeAt(pos) {
			t.Fatalf("food %d at %v not eaten", id, pos)
		}
	}
}

func TestToggleRoundTrip(t *testing.T) {
	w, rec := newStartedWorld(5)
	sys := NewFoodSystem()
	eatAllBut(t, 4, w)

	if id := sys.Toggle(w); id != 4 {
		t.Fatalf("toggled %d, want the only uneaten id 4", id)
	}
	if w.Food.Items[4].Visible {
		t.Error("food 4 still visible")
	}
	if _, ok := w.Food.Lookup(farFood[4]); ok {
		t.Error("hidden food still indexed")
	}
	if w.ConsumeAt(farFood[4]) {
		t.Error("hidden food was eaten")
	}

	sys.Toggle(w)
	if !w.Food.Items[4].Visible {
		t.Error("food 4 not restored")
	}
	if id, ok := w.Food.Lookup(farFood[4]); !ok || id != 4 {
		t.Errorf("lookup after restore = %d, %v", id, ok)
	}
	if rec.FoodErased[4] != 1 || rec.FoodDrawn[4] < 2 {
		t.Errorf("glyph draws=%d erases=%d", rec.FoodDrawn[4], rec.FoodErased[4])
	}
	if got := w.Status.Ints.Get("food.toggles").Load(); got != 2 {
		t.Errorf("food.toggles = %d", got)
	}
}

func TestToggleSkipsEatenFood(t *testing.T) {
	w, _ := newStartedWorld(5)
	sys := NewFoodSystem()
	eatAllBut(t, 1, w)

	for i := 0; i < 10; i++ {
		if id := sys.Toggle(w); id != 1 {
			t.Fatalf("toggled %d", id)
		}
	}
	for id, item := range w.Food.Items {
		if id != 1 && (item.Visible || !item.Eaten) {
			t.Errorf("eaten food %d changed: %+v", id, item)
		}
	}
}

func TestToggleWithNothingLeft(t *testing.T) {
	w, _ := newStartedWorld(5)
	sys := NewFoodSystem()
	eatAllBut(t, -1, w)

	if id := sys.Toggle(w); id != -1 {
		t.Errorf("toggled %d with all food eaten", id)
	}
	next, ok := sys.Tick(w)
	if !ok || next < 5*time.Second || next > 10*time.Second {
		t.Errorf("next=%v ok=%v", next, ok)
	}
}

func TestToggleRevealsFoodUnderHead(t *testing.T) {
	w, rec := newStartedWorld(5)
	sys := NewFoodSystem()
	food := farFood
	food[4] = w.Snake.Head
	w.Food.Place(food)
	eatAllBut(t, 4, w)
	w.ToggleFood(4)

	if id := sys.Toggle(w); id != 4 {
		t.Fatalf("toggled %d", id)
	}
	if !w.Food.Items[4].Eaten {
		t.Error("revealed food under the head not eaten")
	}
	if w.Snake.TargetLength != 20 {
		t.Errorf("target = %d, want 5+1+2+3+4+5", w.Snake.TargetLength)
	}
	if rec.FoodErased[4] != 2 {
		t.Errorf("food 4 erased %d times, want hide then eat", rec.FoodErased[4])
	}
}

func TestStatusSystemRefreshes(t *testing.T) {
	w, rec := newStartedWorld(5)
	sys := NewStatusSystem()
	lines := len(rec.StatusLines)

	next, ok := sys.Tick(w)
	if !ok || next != time.Second {
		t.Errorf("next=%v ok=%v", next, ok)
	}
	if len(rec.StatusLines) != lines+1 {
		t.Error("status line not pushed")
	}

	w.EndGame(core.OutcomeWon)
	if _, ok := sys.Tick(w); ok {
		t.Error("status keeps refreshing after game over")
	}
}
