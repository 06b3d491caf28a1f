package sink

import (
	"fmt"
	"os/exec"
	"strconv"

	"github.com/ironsheep/label-reader/internal/log"
)

// Speech synthesis defaults, tuned for short single words.
const (
	DefaultSpeechVoice = "en"
	DefaultSpeechRate  = 140 // words per minute
)

// speechEngines are probed in order at startup.
var speechEngines = []string{"espeak-ng", "espeak"}

// Speech speaks words aloud through a local espeak binary.
//
// Delivery is synchronous by design: the operator waits for the word to be
// spoken before the next action is meaningful, so Deliver blocks until the
// engine finishes.
type Speech struct {
	binary string
	voice  string
	rate   int
}

// NewSpeech locates a speech engine on the system.
//
// If no engine binary is found the sink is disabled for the whole session
// and the condition is logged once; it is never retried per capture.
func NewSpeech(voice string, rate int) *Speech {
	for _, name := range speechEngines {
		if path, err := exec.LookPath(name); err == nil {
			log.Info("speech engine initialized", "engine", name)
			return &Speech{binary: path, voice: voice, rate: rate}
		}
	}
	log.Warn("no speech engine found, speech delivery disabled",
		"tried", speechEngines)
	return &Speech{voice: voice, rate: rate}
}

// Name implements Sink.
func (s *Speech) Name() string { return "speech" }

// Available implements Sink.
func (s *Speech) Available() bool { return s.binary != "" }

// Deliver speaks the word and returns once it has been fully spoken.
// A synthesis failure is reported for this attempt only; the engine stays
// available for subsequent captures.
func (s *Speech) Deliver(word string) error {
	cmd := exec.Command(s.binary, "-v", s.voice, "-s", strconv.Itoa(s.rate), word)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("speech synthesis: %w", err)
	}
	return nil
}

// Close implements Sink. The engine holds no resources between deliveries.
func (s *Speech) Close() error { return nil }
