package status

import "testing"

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()

	moves := r.Ints.Get("snake.moves")
	moves.Add(3)
	if again := r.Ints.Get("snake.moves"); again != moves || again.Load() != 3 {
		t.Errorf("Expected cached pointer with value 3, got %d", again.Load())
	}

	r.Strings.Get("game.outcome").Store("won")
	r.Bools.Get("game.over").Store(true)
	r.Floats.Get("clock.elapsed").Set(1.5)

	if r.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics, got %d", r.TotalCount())
	}

	want := "game.over=true snake.moves=3 clock.elapsed=1.50 game.outcome=won"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Expected zero value to be empty")
	}
	s.Store("abcdefghijklmnopqrstuvwxyz")
	if got := s.Load(); len(got) != MaxStringLen {
		t.Errorf("Expected truncation to %d, got %q", MaxStringLen, got)
	}
}

func TestEachVisitsInKeyOrder(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("clock.elapsed").Set(2)
	m.Get("food.delay").Set(0.25)

	var keys []string
	var sum float64
	m.Each(func(k string, p *AtomicFloat) {
		keys = append(keys, k)
		sum += p.Get()
	})
	if len(keys) != 2 || keys[0] != "food.delay" || keys[1] != "clock.elapsed" || sum != 2.25 {
		t.Errorf("keys=%v sum=%v", keys, sum)
	}
}
