package constants

import "time"

// Main Loop Timing
const (
	// FrameUpdateInterval drives the render/animation tick (~30 fps)
	FrameUpdateInterval = 33 * time.Millisecond
)

// Event Queue
const (
	// EventQueueSize must be a power of two for mask indexing
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
