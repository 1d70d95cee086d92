package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/snake-monster/events"
	"github.com/lixenwraith/snake-monster/status"
)

// System is one periodic activity armed when the session starts
type System interface {
	// Name identifies the task in the scheduler and logs
	Name() string

	// InitialDelay returns the delay before the first tick
	InitialDelay(w *World) time.Duration

	// Tick runs one step and returns the next delay, ok=false stops the loop
	Tick(w *World) (time.Duration, bool)
}

// Game serializes input commands and the periodic systems onto one goroutine
type Game struct {
	World *World

	clock     TimeProvider
	scheduler *Scheduler
	queue     *events.EventQueue
	router    *events.Router[*Game]
	systems   []System
	wake      chan struct{}
}

// NewGame builds the World and the command plumbing
func NewGame(cfg Config) *Game {
	if cfg.Time == nil {
		cfg.Time = NewMonotonicTimeProvider()
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	queue := events.NewEventQueue()
	g := &Game{
		World:     NewWorld(cfg),
		clock:     cfg.Time,
		scheduler: NewScheduler(cfg.Time, cfg.Status),
		queue:     queue,
		router:    events.NewRouter[*Game](queue),
		wake:      make(chan struct{}, 1),
	}
	registerCommandHandlers(g.router)
	return g
}

// AddSystem registers a periodic activity, must be called before the start command
func (g *Game) AddSystem(s System) {
	g.systems = append(g.systems, s)
}

// Scheduler exposes the task scheduler
func (g *Game) Scheduler() *Scheduler {
	return g.scheduler
}

// Submit queues a command from any goroutine and wakes the run loop
func (g *Game) Submit(t events.EventType, payload any) {
	g.queue.Push(events.GameEvent{Type: t, Payload: payload, Timestamp: g.clock.Now()})
	select {
	case g.wake <- struct{}{}:
	default:
	}
}

// Step applies pending commands then runs every task due at now
func (g *Game) Step(now time.Time) {
	handled := g.router.DispatchAll(g)
	ran := g.scheduler.RunDue(now)
	if handled > 0 || ran > 0 {
		g.World.renderer.Flush()
	}
}

// Finished reports whether the session reached a terminal state
func (g *Game) Finished() bool {
	return g.World.Stats.GameOver
}

// Over is Finished for callers outside the engine goroutine
func (g *Game) Over() bool {
	return g.World.statOver.Load()
}

// Run drives the session until game over or ctx cancellation
func (g *Game) Run(ctx context.Context) error {
	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		g.Step(g.clock.Now())
		if g.Finished() {
			g.scheduler.Clear()
			log.Printf("engine: session finished, outcome=%s", g.World.Stats.Outcome)
			return nil
		}

		var timerC <-chan time.Time
		if due, ok := g.scheduler.NextDue(); ok {
			wait := due.Sub(g.clock.Now())
			if wait < 0 {
				wait = 0
			}
			timer.Reset(wait)
			timerC = timer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-g.wake:
		case <-timerC:
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
	}
}

// start arms every registered system
func (g *Game) start() {
	if !g.World.Start() {
		return
	}
	for _, s := range g.systems {
		g.scheduler.Schedule(s.Name(), s.InitialDelay(g.World), func() (time.Duration, bool) {
			return s.Tick(g.World)
		})
	}
	log.Printf("engine: session started, monster=%v systems=%d", g.World.Monster.Position, len(g.systems))
}
