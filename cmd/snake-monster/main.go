package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/lixenwraith/snake-monster/audio"
	"github.com/lixenwraith/snake-monster/core"
	"github.com/lixenwraith/snake-monster/engine"
	"github.com/lixenwraith/snake-monster/input"
	"github.com/lixenwraith/snake-monster/render"
	"github.com/lixenwraith/snake-monster/status"
	"github.com/lixenwraith/snake-monster/systems"
)

var (
	debugFlag = flag.Bool("debug", false, "Log to logs/ and show the metrics line")
	seedFlag  = flag.Uint64("seed", 0, "RNG seed, 0 picks one from the clock")
	muteFlag  = flag.Bool("mute", false, "Disable audio")
)

func main() {
	// Panic Recovery: the crash handler restores the terminal before printing the stack
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "snake-monster: stdout is not a terminal")
		os.Exit(1)
	}

	sessionID := uuid.NewString()
	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("session %s: seed=%d", sessionID, seed)

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()

	if w, h := screen.Size(); w < render.MinWidth() || h < render.MinHeight() {
		log.Printf("terminal %dx%d is smaller than the board %dx%d", w, h, render.MinWidth(), render.MinHeight())
	}

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	reg := status.NewRegistry()
	var debugMetrics *status.Registry
	if *debugFlag {
		debugMetrics = reg
	}

	game := engine.NewGame(engine.Config{
		Seed:     seed,
		Renderer: render.NewTerminalRenderer(screen, debugMetrics),
		Sound:    sounds,
		Status:   reg,
	})
	systems.RegisterAll(game)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := input.NewInputHandler(game, screen)
	quit := make(chan struct{})
	core.Go(func() {
		defer close(quit)
		for {
			ev := screen.PollEvent()
			if ev == nil || !handler.HandleEvent(ev) {
				return
			}
		}
	})

	done := make(chan error, 1)
	core.Go(func() {
		done <- game.Run(ctx)
	})

	select {
	case <-quit:
		cancel()
		<-done
	case err := <-done:
		if err != nil {
			log.Printf("session %s: engine stopped: %v", sessionID, err)
		}
		// Final screen stays up until the player dismisses it
		<-quit
	}

	log.Printf("session %s: outcome=%s %s", sessionID, reg.Strings.Get("game.outcome").Load(), reg)
}

// newScreen initializes the tcell screen with mouse support for the start click
func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.Clear()
	return screen, nil
}
