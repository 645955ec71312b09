package render

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/rocket-piano/engine"
)

// Renderer draws one visual layer of the frame
type Renderer interface {
	Render(ctx *Context)
	Name() string
}

type registeredRenderer struct {
	renderer Renderer
	priority RenderPriority
}

// Orchestrator owns the frame pipeline: renderers run in priority
// order against the same screen, then a single Show flushes the frame.
type Orchestrator struct {
	mu        sync.Mutex
	renderers []registeredRenderer
	sorted    bool

	screen tcell.Screen
	state  *engine.GameState
	clock  engine.TimeProvider
}

func NewOrchestrator(screen tcell.Screen, state *engine.GameState, clock engine.TimeProvider) *Orchestrator {
	return &Orchestrator{
		screen: screen,
		state:  state,
		clock:  clock,
	}
}

// Register adds a renderer at the given priority, lower priority draws first
func (o *Orchestrator) Register(r Renderer, priority RenderPriority) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.renderers = append(o.renderers, registeredRenderer{renderer: r, priority: priority})
	o.sorted = false
}

func (o *Orchestrator) sortRenderers() {
	sort.SliceStable(o.renderers, func(i, j int) bool {
		return o.renderers[i].priority < o.renderers[j].priority
	})
	o.sorted = true
}

// RenderFrame clears the screen, runs every registered renderer in
// priority order, and shows the result.
func (o *Orchestrator) RenderFrame() {
	o.mu.Lock()
	if !o.sorted {
		o.sortRenderers()
	}
	pipeline := o.renderers
	o.mu.Unlock()

	frame := o.state.IncrementFrameNumber()
	width, height := o.screen.Size()

	ctx := &Context{
		Screen: o.screen,
		Width:  width,
		Height: height,
		Now:    o.clock.Now(),
		Frame:  frame,
		State:  o.state,
	}

	o.screen.Clear()
	for _, reg := range pipeline {
		reg.renderer.Render(ctx)
	}
	o.screen.Show()
}
