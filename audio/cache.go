package audio

import (
	"fmt"
	"sync"
	"time"
)

// soundCache stores pre-generated unity-gain float buffers.
// Notes are keyed by MIDI number and duration so repeated presses of the
// same key reuse one rendered buffer.
type soundCache struct {
	mu    sync.RWMutex
	store map[string]floatBuffer
}

func newSoundCache() *soundCache {
	return &soundCache{
		store: make(map[string]floatBuffer, 32),
	}
}

// get returns the cached buffer for key, rendering via gen on first use
func (c *soundCache) get(key string, gen func() floatBuffer) floatBuffer {
	c.mu.RLock()
	if buf, ok := c.store[key]; ok {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf, ok := c.store[key]; ok {
		return buf
	}

	buf := gen()
	c.store[key] = buf
	return buf
}

func (c *soundCache) note(freq float64, duration time.Duration) floatBuffer {
	key := fmt.Sprintf("note:%.2f:%d", freq, duration.Milliseconds())
	return c.get(key, func() floatBuffer { return generateNoteTone(freq, duration) })
}

func (c *soundCache) errorTone() floatBuffer {
	return c.get("error", generateErrorTone)
}

func (c *soundCache) jingle() floatBuffer {
	return c.get("jingle", generateJingle)
}

// preload renders the fixed effects at init
func (c *soundCache) preload() {
	c.errorTone()
	c.jingle()
}
