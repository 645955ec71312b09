package constants

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// AudioBufferSamples is frames per mixer tick at 44.1kHz
	AudioBufferSamples = (AudioSampleRate * 50) / 1000 // 2205
)

// Note Envelope
const (
	NoteAttack  = 5 * time.Millisecond
	NoteRelease = 60 * time.Millisecond
)

// Error Sound
const (
	ErrorSoundDuration = 150 * time.Millisecond
	ErrorSoundFreq     = 120.0
	ErrorSoundAttack   = 5 * time.Millisecond
	ErrorSoundRelease  = 40 * time.Millisecond
)

// Success Jingle
// Fixed ascending arpeggio C5-E5-G5-C6
const (
	JingleNoteDuration = 120 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 60 * time.Millisecond
)
