package engine

import (
	"github.com/joonazan/vec2"

	"github.com/lixenwraith/snake-monster/core"
)

// Renderer receives draw events as state changes
// Positions are display-space coordinates from the grid package
type Renderer interface {
	DrawSnakeSegment(pos vec2.Vector, role core.ColorRole)
	EraseOldestSegment()
	DrawMonster(pos vec2.Vector)
	DrawFoodGlyph(id int, pos vec2.Vector)
	EraseFoodGlyph(id int)
	UpdateStatusText(line string)
	ShowIntro(side core.AnchorSide)
	ShowGameOverBanner(won bool, side core.AnchorSide)
	Flush()
}

// Sound plays feedback cues; implementations must not block the engine goroutine
type Sound interface {
	Play(sound core.SoundType)
}

// NopRenderer discards every draw event
type NopRenderer struct{}

func (NopRenderer) DrawSnakeSegment(vec2.Vector, core.ColorRole) {}
func (NopRenderer) EraseOldestSegment()                          {}
func (NopRenderer) DrawMonster(vec2.Vector)                      {}
func (NopRenderer) DrawFoodGlyph(int, vec2.Vector)               {}
func (NopRenderer) EraseFoodGlyph(int)                           {}
func (NopRenderer) UpdateStatusText(string)                      {}
func (NopRenderer) ShowIntro(core.AnchorSide)                    {}
func (NopRenderer) ShowGameOverBanner(bool, core.AnchorSide)     {}
func (NopRenderer) Flush()                                       {}

type nopSound struct{}

func (nopSound) Play(core.SoundType) {}
