package audio

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/rocket-piano/music"
)

// TestEngineNotStartedIsSilent verifies playback before Start is a no-op
func TestEngineNotStartedIsSilent(t *testing.T) {
	rang := 0
	e := NewEngine(DefaultConfig(), func() { rang++ })

	n, _ := music.ByName("C4")
	e.PlayNote(n, 100*time.Millisecond)
	e.PlayError()
	e.PlaySuccessJingle()

	if rang != 0 {
		t.Errorf("Expected no bell before Start, got %d", rang)
	}
}

// TestEngineStopBeforeStart verifies Stop is safe on an idle engine
func TestEngineStopBeforeStart(t *testing.T) {
	e := NewEngine(nil, nil)
	e.Stop() // must not panic or hang
}

// TestEngineDisabledConfigMutes verifies ROCKET_PIANO_AUDIO=false silences playback
func TestEngineDisabledConfigMutes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	rang := 0
	e := NewEngine(cfg, func() { rang++ })
	e.mode.Store(int32(ModeBell))
	e.running.Store(true)

	n, _ := music.ByName("C4")
	e.PlayNote(n, 100*time.Millisecond)

	if rang != 0 {
		t.Errorf("Expected disabled engine to stay silent, got %d bells", rang)
	}
}

// TestEngineBellFallback verifies bell-mode playback rings the alert
func TestEngineBellFallback(t *testing.T) {
	rang := 0
	e := NewEngine(DefaultConfig(), func() { rang++ })
	e.mode.Store(int32(ModeBell))
	e.running.Store(true)

	n, _ := music.ByName("G4")
	e.PlayNote(n, 100*time.Millisecond)
	e.PlayError()
	e.PlaySuccessJingle()

	if rang != 3 {
		t.Errorf("Expected 3 bell rings, got %d", rang)
	}
	if !e.Degraded() {
		t.Error("Expected Degraded() in bell mode")
	}
}

// TestEngineStopReturnsInPipeMode verifies a clean shutdown completes
// while the mixer goroutine is streaming to an external backend
func TestEngineStopReturnsInPipeMode(t *testing.T) {
	e := NewEngine(DefaultConfig(), nil)
	e.mixer = NewMixer(io.Discard)
	e.mixer.Start()
	e.wg.Add(1)
	go e.monitorMixer()
	e.mode.Store(int32(ModePipe))
	e.running.Store(true)

	done := make(chan struct{})
	go func() {
		e.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return within 2s in pipe mode")
	}
}

// TestEngineMuteToggle verifies SetMuted silences without changing mode
func TestEngineMuteToggle(t *testing.T) {
	rang := 0
	e := NewEngine(DefaultConfig(), func() { rang++ })
	e.mode.Store(int32(ModeBell))
	e.running.Store(true)

	e.SetMuted(true)
	e.PlayError()
	if rang != 0 {
		t.Errorf("Expected muted silence, got %d", rang)
	}

	e.SetMuted(false)
	e.PlayError()
	if rang != 1 {
		t.Errorf("Expected 1 ring after unmute, got %d", rang)
	}
	if e.Mode() != ModeBell {
		t.Errorf("Expected mode unchanged by mute, got %s", e.Mode())
	}
}

// syncBuffer is a goroutine-safe writer for mixer output
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

// TestMixerWritesFrames verifies the mixer streams PCM to its writer
func TestMixerWritesFrames(t *testing.T) {
	out := &syncBuffer{}
	m := NewMixer(out)
	m.Start()
	defer m.Stop()

	m.Play(floatBuffer{0.5, 0.5, 0.5}, 1.0)

	deadline := time.Now().Add(2 * time.Second)
	for out.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if out.Len() == 0 {
		t.Fatal("Expected mixer to write PCM frames")
	}

	played, dropped := m.GetStats()
	if played != 1 {
		t.Errorf("Expected 1 played sound, got %d", played)
	}
	if dropped != 0 {
		t.Errorf("Expected 0 dropped sounds, got %d", dropped)
	}
}

// TestMixerPlayAfterStop verifies stopped mixers drop requests quietly
func TestMixerPlayAfterStop(t *testing.T) {
	m := NewMixer(&syncBuffer{})
	m.Start()
	m.Stop()

	m.Play(floatBuffer{0.1}, 1.0) // must not panic or block
}
