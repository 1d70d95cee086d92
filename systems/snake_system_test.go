package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/engine"
)

func TestSnakeIdleTicks(t *testing.T) {
	w, _ := newStartedWorld(1)
	sys := NewSnakeSystem(w)

	next, ok := sys.Tick(w)
	if !ok || next != 200*time.Millisecond {
		t.Errorf("no direction: next=%v ok=%v", next, ok)
	}

	w.SetDirection(core.DirUp)
	w.TogglePause()
	head := w.Snake.Head
	next, ok = sys.Tick(w)
	if !ok || next != 200*time.Millisecond || w.Snake.Head != head {
		t.Errorf("paused: next=%v ok=%v head=%v", next, ok, w.Snake.Head)
	}
}

func TestSnakeBouncesOffWall(t *testing.T) {
	w, rec := newStartedWorld(1)
	sys := NewSnakeSystem(w)
	w.Snake = engine.NewSnakeState(core.Cell{Row: 1, Col: 8}, core.Cell{Row: 0, Col: 8})
	w.SetDirection(core.DirLeft)
	segments := rec.Segments

	for i := 0; i < 3; i++ {
		next, ok := sys.Tick(w)
		if !ok || next != 200*time.Millisecond {
			t.Fatalf("tick %d: next=%v ok=%v", i, next, ok)
		}
	}
	if w.Snake.Head != (core.Cell{Row: 0, Col: 8}) || w.Snake.Len() != 2 {
		t.Errorf("state changed: head=%v len=%d", w.Snake.Head, w.Snake.Len())
	}
	if w.Stats.GameOver {
		t.Error("hitting a wall must not end the game")
	}
	if rec.Segments != segments {
		t.Error("blocked tick must not draw")
	}
	if got := w.Status.Ints.Get("snake.blocked").Load(); got != 3 {
		t.Errorf("snake.blocked = %d, want 3", got)
	}
}

func TestSnakeBouncesOffItself(t *testing.T) {
	w, _ := newStartedWorld(1)
	sys := NewSnakeSystem(w)
	w.Snake = engine.NewSnakeState(line(10, 5, 7)...)

	// Reversing runs into the neck
	w.SetDirection(core.DirDown)
	next, ok := sys.Tick(w)
	if !ok || next != 200*time.Millisecond || w.Snake.Head != (core.Cell{Row: 10, Col: 7}) {
		t.Errorf("next=%v ok=%v head=%v", next, ok, w.Snake.Head)
	}
}

func TestSnakeGrowthPeriods(t *testing.T) {
	w, rec := newStartedWorld(1)
	sys := NewSnakeSystem(w)
	w.SetDirection(core.DirUp)

	// Length 1 grows to the target of 5 at the slow period
	for i := 2; i <= 5; i++ {
		next, ok := sys.Tick(w)
		if !ok || next != 300*time.Millisecond || w.Snake.Len() != i {
			t.Fatalf("growing to %d: next=%v ok=%v len=%d", i, next, ok, w.Snake.Len())
		}
	}

	// Fully extended: moves without growing at the base period
	for i := 0; i < 3; i++ {
		next, ok := sys.Tick(w)
		if !ok || next != 200*time.Millisecond || w.Snake.Len() != 5 {
			t.Fatalf("extended: next=%v ok=%v len=%d", next, ok, w.Snake.Len())
		}
	}
	if w.Snake.Head != (core.Cell{Row: 12, Col: 19}) {
		t.Errorf("head = %v, want (12,19)", w.Snake.Head)
	}
	if rec.Erased != 3 {
		t.Errorf("erased %d segments, want 3", rec.Erased)
	}
}

func TestSnakeEatsAfterMoving(t *testing.T) {
	w, _ := newStartedWorld(1)
	sys := NewSnakeSystem(w)
	food := farFood
	food[2] = core.Cell{Row: 12, Col: 13}
	w.Food.Place(food)
	w.SetDirection(core.DirUp)

	sys.Tick(w)
	if w.Snake.TargetLength != 8 || !w.Food.Items[2].Eaten {
		t.Errorf("target=%d eaten=%v", w.Snake.TargetLength, w.Food.Items[2].Eaten)
	}
}

func TestSnakeWinsAtMaxLength(t *testing.T) {
	for _, target := range []int{20, 26} {
		w, rec := newStartedWorld(1)
		sys := NewSnakeSystem(w)
		w.Snake = engine.NewSnakeState(line(6, 0, 18)...)
		w.Snake.TargetLength = target
		w.SetDirection(core.DirUp)

		next, ok := sys.Tick(w)
		if ok || next != 0 {
			t.Errorf("target %d: loop should stop on win, got next=%v ok=%v", target, next, ok)
		}
		if w.Snake.Len() != 20 || w.Stats.Outcome != core.OutcomeWon {
			t.Errorf("target %d: len=%d outcome=%v", target, w.Snake.Len(), w.Stats.Outcome)
		}
		if !rec.BannerShown || !rec.BannerWon {
			t.Errorf("target %d: expected win banner", target)
		}

		if _, ok := sys.Tick(w); ok {
			t.Errorf("target %d: tick after game over must stop", target)
		}
	}
}

func TestSnakeHeadIntoMonsterFootprint(t *testing.T) {
	// Snake steps Up from (12,12) into (12,13); each monster anchor puts that cell in a different footprint slot
	monsters := []core.Cell{
		{Row: 11, Col: 12}, // (r+1, c+1)
		{Row: 11, Col: 13}, // (r+1, c)
		{Row: 12, Col: 12}, // (r, c+1)
		{Row: 12, Col: 13}, // (r, c)
	}

	for _, m := range monsters {
		w, rec := newStartedWorld(1)
		sys := NewSnakeSystem(w)
		w.Monster.Position = m
		w.SetDirection(core.DirUp)

		next, ok := sys.Tick(w)
		if ok || next != 0 {
			t.Errorf("monster %v: next=%v ok=%v", m, next, ok)
		}
		if w.Stats.Outcome != core.OutcomeLost {
			t.Errorf("monster %v: outcome %v, want lost", m, w.Stats.Outcome)
		}
		if rec.LastRole != core.RoleDead {
			t.Errorf("monster %v: head not painted dead", m)
		}
	}
}

func TestSnakeCaughtWhileExtendedKeepsLength(t *testing.T) {
	w, rec := newStartedWorld(1)
	sys := NewSnakeSystem(w)
	w.Snake = engine.NewSnakeState(line(12, 8, 12)...)
	w.Monster.Position = core.Cell{Row: 12, Col: 13}
	food := farFood
	food[0] = core.Cell{Row: 12, Col: 13}
	w.Food.Place(food)
	w.SetDirection(core.DirUp)

	if _, ok := sys.Tick(w); ok {
		t.Fatal("loop should stop on loss")
	}
	if w.Stats.Outcome != core.OutcomeLost {
		t.Fatalf("outcome %v, want lost", w.Stats.Outcome)
	}
	if w.Snake.Len() != 5 || w.Snake.Len() > w.Snake.TargetLength {
		t.Errorf("len=%d target=%d, tail should still drop", w.Snake.Len(), w.Snake.TargetLength)
	}
	if w.Snake.Body[0] != (core.Cell{Row: 12, Col: 9}) || w.Snake.Head != (core.Cell{Row: 12, Col: 13}) {
		t.Errorf("body = %v", w.Snake.Body)
	}
	if rec.Erased != 1 {
		t.Errorf("erased %d segments, want 1", rec.Erased)
	}
	if w.Food.Items[0].Eaten || w.Snake.TargetLength != 5 {
		t.Errorf("food under the monster must not be eaten on the losing move")
	}
}

func TestSnakeDoesNotCountAsContact(t *testing.T) {
	// Body passing the monster's footprint is not a contact; only the monster's move counts
	w, _ := newStartedWorld(1)
	sys := NewSnakeSystem(w)
	w.Monster.Position = core.Cell{Row: 8, Col: 12}
	w.Snake = engine.NewSnakeState(line(9, 10, 14)...)
	w.SetDirection(core.DirUp)

	sys.Tick(w)
	if w.Stats.ContactCount != 0 || w.Stats.GameOver {
		t.Errorf("contacts=%d over=%v", w.Stats.ContactCount, w.Stats.GameOver)
	}
}
