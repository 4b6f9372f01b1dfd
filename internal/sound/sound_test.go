package sound

import (
	"math"
	"testing"
)

func TestHumStaysInRange(t *testing.T) {
	h := NewHum(sampleRate)
	buf := make([][2]float64, 4096)
	for round := 0; round < 10; round++ {
		n, ok := h.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Stream = (%d,%v), want (%d,true)", n, ok, len(buf))
		}
		for _, s := range buf {
			if math.Abs(s[0]) > 1 || s[0] != s[1] {
				t.Fatalf("sample %v out of range or not mono", s)
			}
		}
	}
}

func TestHumFrequencyRamp(t *testing.T) {
	h := NewHum(sampleRate)
	tests := []struct {
		t    float64
		want float64
	}{
		{0, humBase},
		{humRamp / 2, humBase + humClimb/2},
		{humRamp, humBase + humClimb},
		{humRamp * 4, humBase + humClimb},
	}
	for _, tt := range tests {
		if got := h.Frequency(tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Frequency(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestChimeIsFinite(t *testing.T) {
	s, err := NewChime(sampleRate)
	if err != nil {
		t.Fatalf("NewChime: %v", err)
	}
	want := sampleRate.N(chimeNote) * 3
	buf := make([][2]float64, 1024)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > want*2 {
			t.Fatal("chime never ends")
		}
	}
	if total != want {
		t.Errorf("chime length = %d samples, want %d", total, want)
	}
}

func TestSilentManagerIgnoresCalls(t *testing.T) {
	m := NewManager(nil)
	// Never initialised: none of these may touch the speaker.
	m.Chime()
	m.StartHum()
	m.StopHum()
	m.Close()
}
