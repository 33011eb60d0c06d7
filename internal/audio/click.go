package audio

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
)

const (
	SampleRate = beep.SampleRate(44100)

	clickLength = 18 * time.Millisecond
	clickFreq   = 2200.0
	accentFreq  = 1400.0
	clickGain   = 0.25
	accentGain  = 0.5
	decay       = 6.0
)

// ClickTrack is an endless beep.Streamer that plays short detent clicks on
// request. Trigger is called from the UI loop while the speaker goroutine
// pulls samples through Stream.
type ClickTrack struct {
	sr     beep.SampleRate
	length int

	mu     sync.Mutex
	pos    int
	active bool
	freq   float64
	gain   float64
}

func NewClickTrack(sr beep.SampleRate) *ClickTrack {
	return &ClickTrack{
		sr:     sr,
		length: sr.N(clickLength),
	}
}

// Trigger restarts the click. Accented clicks are lower and louder.
func (c *ClickTrack) Trigger(accent bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pos = 0
	c.active = true
	c.freq, c.gain = clickFreq, clickGain
	if accent {
		c.freq, c.gain = accentFreq, accentGain
	}
}

func (c *ClickTrack) Stream(samples [][2]float64) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range samples {
		if !c.active {
			samples[i] = [2]float64{}
			continue
		}
		t := float64(c.pos) / float64(c.sr)
		env := math.Exp(-decay * float64(c.pos) / float64(c.length))
		v := c.gain * env * math.Sin(2*math.Pi*c.freq*t)
		samples[i] = [2]float64{v, v}
		c.pos++
		if c.pos >= c.length {
			c.active = false
		}
	}
	return len(samples), true
}

func (c *ClickTrack) Err() error { return nil }

// Playing reports whether a click is still sounding.
func (c *ClickTrack) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
