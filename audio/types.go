package audio

import (
	"errors"
)

// PlaybackMode identifies which tier of the degradation chain is active
type PlaybackMode int32

const (
	// ModePipe streams PCM to an external command-line synthesizer
	ModePipe PlaybackMode = iota
	// ModeSpeaker synthesizes in-process through the system speaker
	ModeSpeaker
	// ModeBell falls back to the terminal alert
	ModeBell
)

func (m PlaybackMode) String() string {
	names := [...]string{"pipe", "speaker", "bell"}
	if int(m) < len(names) {
		return names[m]
	}
	return "unknown"
}

// BackendType identifies the external audio backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
)
