package engine

import (
	"time"

	"github.com/joonazan/vec2"

	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/status"
)

// TestEpoch is the mock clock origin used by test games
var TestEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// RecordingRenderer counts draw events and keeps the latest of each kind, for tests
type RecordingRenderer struct {
	Segments     int
	Erased       int
	MonsterDraws int
	LastMonster  vec2.Vector
	LastHead     vec2.Vector
	LastRole     core.ColorRole
	FoodDrawn    map[int]int
	FoodErased   map[int]int
	StatusLines  []string
	Intro        core.AnchorSide
	BannerShown  bool
	BannerWon    bool
	BannerSide   core.AnchorSide
	Flushes      int
}

// NewRecordingRenderer creates an empty recorder
func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{
		FoodDrawn:  make(map[int]int),
		FoodErased: make(map[int]int),
	}
}

func (r *RecordingRenderer) DrawSnakeSegment(pos vec2.Vector, role core.ColorRole) {
	r.Segments++
	r.LastRole = role
	if role != core.RoleBody {
		r.LastHead = pos
	}
}

func (r *RecordingRenderer) EraseOldestSegment() { r.Erased++ }

func (r *RecordingRenderer) DrawMonster(pos vec2.Vector) {
	r.MonsterDraws++
	r.LastMonster = pos
}

func (r *RecordingRenderer) DrawFoodGlyph(id int, _ vec2.Vector) { r.FoodDrawn[id]++ }

func (r *RecordingRenderer) EraseFoodGlyph(id int) { r.FoodErased[id]++ }

func (r *RecordingRenderer) UpdateStatusText(line string) {
	r.StatusLines = append(r.StatusLines, line)
}

func (r *RecordingRenderer) ShowIntro(side core.AnchorSide) { r.Intro = side }

func (r *RecordingRenderer) ShowGameOverBanner(won bool, side core.AnchorSide) {
	r.BannerShown = true
	r.BannerWon = won
	r.BannerSide = side
}

func (r *RecordingRenderer) Flush() { r.Flushes++ }

// LastStatus returns the most recent status line
func (r *RecordingRenderer) LastStatus() string {
	if len(r.StatusLines) == 0 {
		return ""
	}
	return r.StatusLines[len(r.StatusLines)-1]
}

// TestGame bundles a Game with its mock clock and recorder
type TestGame struct {
	*Game
	Clock    *MockTimeProvider
	Recorder *RecordingRenderer
}

// NewTestGame creates a seeded game on a mock clock
func NewTestGame(seed uint64) *TestGame {
	clock := NewMockTimeProvider(TestEpoch)
	rec := NewRecordingRenderer()
	g := NewGame(Config{
		Seed:     seed,
		Renderer: rec,
		Time:     clock,
		Status:   status.NewRegistry(),
	})
	return &TestGame{Game: g, Clock: clock, Recorder: rec}
}

// Advance moves mock time forward by d, stopping at each deadline so every tick runs at its exact time
func (tg *TestGame) Advance(d time.Duration) {
	until := tg.Clock.Now().Add(d)
	for {
		tg.Step(tg.Clock.Now())
		due, ok := tg.scheduler.NextDue()
		if !ok || due.After(until) {
			break
		}
		tg.Clock.SetTime(due)
	}
	tg.Clock.SetTime(until)
	tg.Step(until)
}
