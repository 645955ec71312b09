package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/lixenwraith/rocket-piano/constants"
)

var sampleRateArg = strconv.Itoa(constants.AudioSampleRate)

type backendCandidate struct {
	binary string
	cfg    BackendConfig
}

// pipeCandidates lists external synthesizers in probe order. Every arg
// set requests the stream the mixer emits: raw s16le stereo at the
// engine sample rate with small latency.
var pipeCandidates = []backendCandidate{
	{binary: "pacat", cfg: BackendConfig{
		Type: BackendPulse,
		Name: "pacat",
		Args: []string{
			"--raw",
			"--format=s16le",
			"--rate=" + sampleRateArg,
			"--channels=2",
			"--latency-msec=50",
			"--playback",
		},
	}},
	{binary: "pw-cat", cfg: BackendConfig{
		Type: BackendPipeWire,
		Name: "pw-cat",
		Args: []string{
			"--playback",
			"--format=s16",
			"--rate=" + sampleRateArg,
			"--channels=2",
			"--latency=50ms",
			"-",
		},
	}},
	{binary: "aplay", cfg: BackendConfig{
		Type: BackendALSA,
		Name: "aplay",
		Args: []string{
			"-t", "raw",
			"-f", "S16_LE",
			"-r", sampleRateArg,
			"-c", "2",
			"-q",
		},
	}},
	{binary: "play", cfg: BackendConfig{
		Type: BackendSoX,
		Name: "sox",
		Args: []string{
			"-t", "raw",
			"-e", "signed",
			"-b", "16",
			"-c", "2",
			"-r", sampleRateArg,
			"-",
			"-d",
			"-q",
		},
	}},
	{binary: "ffplay", cfg: BackendConfig{
		Type: BackendFFplay,
		Name: "ffplay",
		Args: []string{
			"-nodisp",
			"-autoexit",
			"-f", "s16le",
			"-ac", "2",
			"-ar", sampleRateArg,
			"-probesize", "32",
			"-analyzeduration", "0",
			"-i", "pipe:0",
			"-loglevel", "quiet",
		},
	}},
}

// DetectBackend walks the candidate table and returns the first synth
// found on PATH. With no CLI synth available, FreeBSD still gets raw
// /dev/dsp writes.
func DetectBackend() (*BackendConfig, error) {
	for _, cand := range pipeCandidates {
		path, err := exec.LookPath(cand.binary)
		if err != nil {
			continue
		}
		cfg := cand.cfg
		cfg.Path = path
		return &cfg, nil
	}

	if runtime.GOOS == "freebsd" {
		if _, err := os.Stat("/dev/dsp"); err == nil {
			return &BackendConfig{
				Type: BackendOSS,
				Name: "oss",
				Path: "/dev/dsp",
			}, nil
		}
	}

	return nil, ErrNoAudioBackend
}
