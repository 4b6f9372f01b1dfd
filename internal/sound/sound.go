// Package sound plays the journey's audio cues: a rising hum during warp and
// a chime when the monolith is reached.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/chaos-architect/astral_engine/internal/logging"
)

const sampleRate = beep.SampleRate(44100)

// Chime notes, a fifth apart.
const (
	chimeLow  = 523.25 // C5
	chimeHigh = 783.99 // G5
	chimeNote = 220 * time.Millisecond
)

// Manager owns the speaker mixer. A Manager that failed to initialise, or
// was created disabled, accepts every call and plays nothing.
type Manager struct {
	mu          sync.Mutex
	log         *logging.Logger
	mixer       *beep.Mixer
	hum         *beep.Ctrl
	initialized bool
}

// NewManager creates a silent manager; call Init to open the device.
func NewManager(log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{log: log, mixer: &beep.Mixer{}}
}

// Init opens the audio device. On failure the manager stays silent.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		m.log.Warn("audio unavailable: %v", err)
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close silences everything.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	if m.hum != nil {
		m.hum.Paused = true
	}
	m.mixer.Clear()
	speaker.Unlock()
	m.hum = nil
	m.initialized = false
}

// Chime plays the monolith contact cue.
func (m *Manager) Chime() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s, err := NewChime(sampleRate)
	if err != nil {
		m.log.Debug("chime: %v", err)
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// StartHum starts the warp hum if it is not already playing.
func (m *Manager) StartHum() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || (m.hum != nil && !m.hum.Paused) {
		return
	}
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: NewHum(sampleRate),
		Base:     2,
		Volume:   -2,
	}}
	speaker.Lock()
	m.mixer.Add(ctrl)
	speaker.Unlock()
	m.hum = ctrl
}

// StopHum stops the warp hum.
func (m *Manager) StopHum() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hum == nil {
		return
	}
	speaker.Lock()
	m.hum.Paused = true
	speaker.Unlock()
	m.hum = nil
}

// NewChime returns the two-note contact cue.
func NewChime(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := generators.SineTone(sr, chimeLow)
	if err != nil {
		return nil, fmt.Errorf("low tone: %w", err)
	}
	high, err := generators.SineTone(sr, chimeHigh)
	if err != nil {
		return nil, fmt.Errorf("high tone: %w", err)
	}
	n := sr.N(chimeNote)
	seq := beep.Seq(beep.Take(n, low), beep.Take(n*2, high))
	return &effects.Volume{Streamer: seq, Base: 2, Volume: -3}, nil
}

// Hum is an endless low drone whose pitch climbs over the first seconds of
// a warp, tracking the forward speed ramp.
type Hum struct {
	sr    beep.SampleRate
	pos   int
	phase float64
}

// NewHum creates a hum starting at its base pitch.
func NewHum(sr beep.SampleRate) *Hum {
	return &Hum{sr: sr}
}

const (
	humBase  = 55.0 // Hz
	humClimb = 110.0
	humRamp  = 2.5 // seconds to full pitch
)

// Frequency returns the drone pitch after t seconds.
func (h *Hum) Frequency(t float64) float64 {
	return humBase + humClimb*math.Min(t/humRamp, 1)
}

func (h *Hum) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(h.pos) / float64(h.sr)
		h.phase += h.Frequency(t) / float64(h.sr)
		h.phase -= math.Floor(h.phase)
		v := 0.25*math.Sin(2*math.Pi*h.phase) + 0.1*math.Sin(4*math.Pi*h.phase)
		samples[i][0] = v
		samples[i][1] = v
		h.pos++
	}
	return len(samples), true
}

func (h *Hum) Err() error { return nil }
