package audio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/rocket-piano/music"
)

// Engine is the game's audio sink. Playback degrades through three tiers
// probed once at startup: an external command-line synthesizer fed raw
// PCM, the in-process speaker, and finally the terminal bell. Every call
// is fire-and-forget; failures never reach game logic.
type Engine struct {
	config *Config
	cache  *soundCache
	mixer  *Mixer

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File // For direct OSS writes

	spk  *speakerSink
	bell func() // terminal alert, wired by the caller

	mode    atomic.Int32 // PlaybackMode
	running atomic.Bool
	muted   atomic.Bool

	wg sync.WaitGroup
}

// NewEngine creates an audio engine. bell is the terminal alert used as
// the last-resort fallback; nil disables it.
func NewEngine(cfg *Config, bell func()) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if bell == nil {
		bell = func() {}
	}

	e := &Engine{
		config: cfg,
		cache:  newSoundCache(),
		bell:   bell,
	}
	e.muted.Store(!cfg.Enabled)

	// Preload the fixed effects
	e.cache.preload()

	return e
}

// Start probes the playback chain. It never returns a user-facing
// failure; an unreachable device only degrades the mode.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	if backend, err := DetectBackend(); err == nil {
		if e.startPipe(backend) {
			e.mode.Store(int32(ModePipe))
			e.running.Store(true)
			return nil
		}
	}

	if spk, err := newSpeakerSink(); err == nil {
		e.spk = spk
		e.mode.Store(int32(ModeSpeaker))
		e.running.Store(true)
		return nil
	}

	e.mode.Store(int32(ModeBell))
	e.running.Store(true)
	return nil
}

// startPipe launches the external backend and the mixer goroutine
func (e *Engine) startPipe(backend *BackendConfig) bool {
	e.backend = backend

	var writer io.Writer
	if backend.Type == BackendOSS {
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			return false
		}
		e.ossFile = f
		writer = f
	} else {
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			return false
		}
		if err := cmd.Start(); err != nil {
			stdin.Close()
			return false
		}

		e.cmd = cmd
		e.stdin = stdin
		writer = stdin

		e.wg.Add(1)
		go e.monitorProcess()
	}

	e.mixer = NewMixer(writer)
	e.mixer.Start()

	e.wg.Add(1)
	go e.monitorMixer()

	return true
}

// monitorProcess watches for subprocess exit and degrades to the bell
func (e *Engine) monitorProcess() {
	defer e.wg.Done()

	if e.cmd == nil {
		return
	}
	_ = e.cmd.Wait()

	if e.running.Load() {
		e.mode.Store(int32(ModeBell))
	}
}

// monitorMixer degrades to the bell on pipe write errors. The stop
// channel arm lets Stop's wg.Wait complete on a clean shutdown.
func (e *Engine) monitorMixer() {
	defer e.wg.Done()

	select {
	case err := <-e.mixer.Errors():
		if err != nil && e.running.Load() {
			e.mode.Store(int32(ModeBell))
		}
	case <-e.mixer.stopChan:
	}
}

// Stop shuts the engine down and releases the backend
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}

	if e.mixer != nil {
		e.mixer.Stop()
	}
	if e.stdin != nil {
		e.stdin.Close()
	}
	if e.cmd != nil {
		_ = e.cmd.Process.Kill()
	}
	if e.ossFile != nil {
		e.ossFile.Close()
	}
	if e.spk != nil {
		e.spk.cleanup()
	}

	e.wg.Wait()
}

// Mode returns the active playback tier
func (e *Engine) Mode() PlaybackMode {
	return PlaybackMode(e.mode.Load())
}

// Degraded reports whether playback fell back to the terminal bell
func (e *Engine) Degraded() bool {
	return e.Mode() == ModeBell
}

// SetMuted silences all effects without changing the playback tier
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// PlayNote plays one piano note, best-effort
func (e *Engine) PlayNote(note music.Note, duration time.Duration) {
	if !e.running.Load() || e.muted.Load() {
		return
	}

	switch e.Mode() {
	case ModePipe:
		e.mixer.Play(e.cache.note(note.Freq, duration), e.config.Gain())
	case ModeSpeaker:
		e.spk.playTone(note.Freq, duration, e.config.Gain())
	case ModeBell:
		e.bell()
	}
}

// PlaySuccessJingle plays the fixed ascending arpeggio
func (e *Engine) PlaySuccessJingle() {
	if !e.running.Load() || e.muted.Load() {
		return
	}

	switch e.Mode() {
	case ModePipe:
		e.mixer.Play(e.cache.jingle(), e.config.Gain())
	case ModeSpeaker:
		e.spk.playJingle(e.config.Gain())
	case ModeBell:
		e.bell()
	}
}

// PlayError plays the fixed low miss tone
func (e *Engine) PlayError() {
	if !e.running.Load() || e.muted.Load() {
		return
	}

	switch e.Mode() {
	case ModePipe:
		e.mixer.Play(e.cache.errorTone(), e.config.Gain())
	case ModeSpeaker:
		e.spk.playError(e.config.Gain())
	case ModeBell:
		e.bell()
	}
}
