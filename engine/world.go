package engine

import (
	"sync/atomic"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/grid"
	"github.com/lixenwraith/snake-monster/status"
)

// GameStats holds the session counters and the terminal flag
type GameStats struct {
	ContactCount int
	Started      bool
	GameOver     bool
	Outcome      core.Outcome
}

// Config wires a World to its collaborators; zero fields get defaults
type Config struct {
	Seed     uint64
	Renderer Renderer
	Sound    Sound
	Time     TimeProvider
	Status   *status.Registry
}

// World is the simulation context shared by all tick systems
// It is only touched from the engine goroutine
type World struct {
	Snake   *SnakeState
	Monster *MonsterState
	Food    *FoodTable
	Clock   *GameClock
	Stats   GameStats
	Status  *status.Registry

	renderer Renderer
	sound    Sound
	rng      *rand.Rand

	// Cached metric pointers
	statContacts *atomic.Int64
	statEaten    *atomic.Int64
	statToggles  *atomic.Int64
	statOver     *atomic.Bool
	statOutcome  *status.AtomicString
	statElapsed  *status.AtomicFloat
}

// NewWorld places the snake and monster and paints the intro screen
// Food is placed by Start
func NewWorld(cfg Config) *World {
	if cfg.Renderer == nil {
		cfg.Renderer = NopRenderer{}
	}
	if cfg.Sound == nil {
		cfg.Sound = nopSound{}
	}
	if cfg.Time == nil {
		cfg.Time = NewMonotonicTimeProvider()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	w := &World{
		Food:         NewFoodTable(),
		Clock:        NewGameClock(cfg.Time),
		Status:       cfg.Status,
		renderer:     cfg.Renderer,
		sound:        cfg.Sound,
		rng:          rand.New(rand.NewSource(cfg.Seed)),
		statContacts: cfg.Status.Ints.Get("monster.contacts"),
		statEaten:    cfg.Status.Ints.Get("food.eaten"),
		statToggles:  cfg.Status.Ints.Get("food.toggles"),
		statOver:     cfg.Status.Bools.Get("game.over"),
		statOutcome:  cfg.Status.Strings.Get("game.outcome"),
		statElapsed:  cfg.Status.Floats.Get("clock.elapsed"),
	}

	start := core.Cell{Row: constants.StartRow, Col: constants.StartCol}
	w.Snake = NewSnakeState(start)
	w.Monster = w.spawnMonster(start)
	w.statOutcome.Store(core.OutcomeNone.String())

	w.renderer.DrawSnakeSegment(grid.SnakeDisplay(start), core.RoleHead)
	w.renderer.DrawMonster(grid.MonsterDisplay(w.Monster.Position))
	w.RefreshStatus()
	// The intro stays up until the next status update
	introSide := core.AnchorTop
	if w.Monster.Position.Col >= constants.BannerPivot {
		introSide = core.AnchorBottom
	}
	w.renderer.ShowIntro(introSide)
	w.renderer.Flush()

	return w
}

// Renderer returns the outbound draw sink
func (w *World) Renderer() Renderer {
	return w.renderer
}

// Sound returns the cue player
func (w *World) Sound() Sound {
	return w.sound
}

// Start places food and starts the clock; returns false if already started
func (w *World) Start() bool {
	if w.Stats.Started || w.Stats.GameOver {
		return false
	}
	w.Stats.Started = true
	w.placeFood()
	w.Clock.Start()
	return true
}

// Jitter returns a uniform whole-millisecond delay in [minMs, maxMs]
func (w *World) Jitter(minMs, maxMs int) time.Duration {
	return time.Duration(minMs+w.rng.Intn(maxMs-minMs+1)) * time.Millisecond
}

// Pick returns a uniform index in [0, n)
func (w *World) Pick(n int) int {
	return w.rng.Intn(n)
}

// StatusLine composes the current status summary
func (w *World) StatusLine() string {
	return w.Clock.StatusLine(w.Stats.ContactCount, w.Snake.Direction, w.Snake.Paused)
}

// RefreshStatus pushes a freshly computed status line to the renderer
func (w *World) RefreshStatus() {
	w.statElapsed.Set(w.Clock.ElapsedSeconds())
	w.renderer.UpdateStatusText(w.StatusLine())
}

// RecordContact counts a monster footprint overlapping the body
func (w *World) RecordContact() {
	w.Stats.ContactCount++
	w.statContacts.Add(1)
	w.sound.Play(core.SoundContact)
}

// EndGame performs the single terminal transition; later calls are ignored
func (w *World) EndGame(outcome core.Outcome) {
	if w.Stats.GameOver {
		return
	}
	w.Stats.GameOver = true
	w.Stats.Outcome = outcome
	w.statOver.Store(true)
	w.statOutcome.Store(outcome.String())
	w.statElapsed.Set(w.Clock.ElapsedSeconds())

	switch outcome {
	case core.OutcomeLost:
		w.renderer.DrawSnakeSegment(grid.SnakeDisplay(w.Snake.Head), core.RoleDead)
		w.renderer.ShowGameOverBanner(false, bannerSide(w.Monster.Position.Row))
		w.sound.Play(core.SoundLose)
	case core.OutcomeWon:
		w.renderer.ShowGameOverBanner(true, bannerSide(w.Snake.Head.Row))
		w.sound.Play(core.SoundWin)
	}
	w.renderer.Flush()
}

// bannerSide keeps banner text on the board half away from the edge
func bannerSide(row int) core.AnchorSide {
	if row > constants.BannerPivot {
		return core.AnchorRight
	}
	return core.AnchorLeft
}
