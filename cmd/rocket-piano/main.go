package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/audio"
	"github.com/lixenwraith/rocket-piano/constants"
	"github.com/lixenwraith/rocket-piano/content"
	"github.com/lixenwraith/rocket-piano/core"
	"github.com/lixenwraith/rocket-piano/engine"
	"github.com/lixenwraith/rocket-piano/events"
	"github.com/lixenwraith/rocket-piano/input"
	"github.com/lixenwraith/rocket-piano/render"
)

var (
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write debug log to logs/rocket-piano.log")
)

func main() {
	// Panic recovery: restore the terminal before anything is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := content.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Lesson catalog invalid: %v\n", err)
		os.Exit(1)
	}

	switch *colorModeFlag {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	clock := engine.NewTimeProvider()
	state := engine.NewGameState()
	scheduler := engine.NewScheduler(clock)

	audioCfg, err := audio.LoadConfig()
	if err != nil {
		log.Printf("audio config: %v, using defaults", err)
		audioCfg = audio.DefaultConfig()
	}
	audioEngine := audio.NewEngine(audioCfg, func() { screen.Beep() })
	if err := audioEngine.Start(); err != nil {
		log.Printf("audio start: %v (continuing with terminal bell)", err)
	}
	defer audioEngine.Stop()
	if audioEngine.Degraded() {
		state.SetAudioNotice(constants.DegradedAudioNotice)
	}
	log.Printf("audio backend mode: %s", audioEngine.Mode())

	progression := engine.NewProgressionEngine(state, audioEngine, scheduler, clock)

	orchestrator := render.NewOrchestrator(screen, state, clock)
	orchestrator.Register(render.NewStarfieldRenderer(), render.PriorityBackground)
	orchestrator.Register(render.NewStoryPanelRenderer(), render.PriorityPanels)
	orchestrator.Register(render.NewStatsPanelRenderer(), render.PriorityPanels)
	orchestrator.Register(render.NewLessonPanelRenderer(), render.PriorityPanels)
	orchestrator.Register(render.NewKeyboardRenderer(), render.PriorityPanels)
	orchestrator.Register(render.NewStatusBarRenderer(), render.PriorityOverlay)

	queue := events.NewEventQueue()
	handler := input.NewHandler(queue)

	// Input polling stays on its own goroutine, the main loop only
	// ever drains the lock-free queue.
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			handler.HandleEvent(ev)
		}
	})

	log.Printf("starting with %d lessons, %d story lines",
		content.LessonCount(), content.StoryLength())

	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	for range frameTicker.C {
		for _, ev := range queue.Consume() {
			switch ev.Type {
			case events.EventQuit:
				return
			case events.EventNotePlayed:
				progression.HandleNote(ev.Note)
			case events.EventAdvanceStory:
				progression.AdvanceStory()
			case events.EventStartLesson:
				progression.StartLesson()
			case events.EventToggleMute:
				muted := state.ToggleEffectsMuted()
				audioEngine.SetMuted(muted)
			case events.EventResize:
				screen.Sync()
			}
		}

		scheduler.RunDue()
		orchestrator.RenderFrame()
	}
}
