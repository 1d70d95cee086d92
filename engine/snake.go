package engine

import (
	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
)

// SnakeState owns the body cells, the head, the growth target and the facing
// Body is ordered tail to head; Head always equals the last body cell
type SnakeState struct {
	Body         []core.Cell
	Head         core.Cell
	TargetLength int
	Direction    core.Direction
	Paused       bool

	occupied map[core.Cell]struct{}
}

// NewSnakeState builds a snake from tail-to-head cells
// Duplicate cells are skipped so the body never self-occupies
func NewSnakeState(cells ...core.Cell) *SnakeState {
	s := &SnakeState{
		Body:         make([]core.Cell, 0, constants.MaxSnakeLength+1),
		TargetLength: constants.InitialTargetLength,
		occupied:     make(map[core.Cell]struct{}, constants.MaxSnakeLength+1),
	}
	for _, c := range cells {
		if !s.Contains(c) {
			s.Append(c)
		}
	}
	return s
}

// Contains reports whether c is part of the body
func (s *SnakeState) Contains(c core.Cell) bool {
	_, ok := s.occupied[c]
	return ok
}

// Len returns the number of body cells
func (s *SnakeState) Len() int {
	return len(s.Body)
}

// Append pushes a new head cell
func (s *SnakeState) Append(c core.Cell) {
	s.Body = append(s.Body, c)
	s.occupied[c] = struct{}{}
	s.Head = c
}

// DropTail removes and returns the oldest cell
func (s *SnakeState) DropTail() core.Cell {
	tail := s.Body[0]
	s.Body = s.Body[1:]
	delete(s.occupied, tail)
	return tail
}

// Moving reports whether the snake would attempt a step this tick
func (s *SnakeState) Moving() bool {
	return !s.Paused && s.Direction != core.DirNone
}
