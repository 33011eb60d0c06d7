package audio

import (
	"math"
	"sync"
	"testing"
)

func TestClickTrack_SilentUntilTriggered(t *testing.T) {
	c := NewClickTrack(SampleRate)
	buf := make([][2]float64, 512)

	n, ok := c.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = (%d, %v), want (%d, true)", n, ok, len(buf))
	}
	for i, s := range buf {
		if s != [2]float64{} {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
	if c.Playing() {
		t.Error("should not be playing before Trigger")
	}
}

func TestClickTrack_PlaysThenStops(t *testing.T) {
	c := NewClickTrack(SampleRate)
	c.Trigger(false)
	if !c.Playing() {
		t.Fatal("expected click to be playing")
	}

	length := SampleRate.N(clickLength)
	buf := make([][2]float64, length+100)
	c.Stream(buf)

	var peak float64
	for _, s := range buf[:length] {
		if s[0] != s[1] {
			t.Fatalf("click should be mono, got %v", s)
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > clickGain {
		t.Errorf("peak = %f, want in (0, %f]", peak, clickGain)
	}
	for i, s := range buf[length:] {
		if s != [2]float64{} {
			t.Fatalf("sample %d after click = %v, want silence", length+i, s)
		}
	}
	if c.Playing() {
		t.Error("click should have finished")
	}
}

func TestClickTrack_AccentIsLouder(t *testing.T) {
	peak := func(accent bool) float64 {
		c := NewClickTrack(SampleRate)
		c.Trigger(accent)
		buf := make([][2]float64, SampleRate.N(clickLength))
		c.Stream(buf)
		var p float64
		for _, s := range buf {
			p = math.Max(p, math.Abs(s[0]))
		}
		return p
	}
	if plain, accent := peak(false), peak(true); accent <= plain {
		t.Errorf("accent peak %f should exceed plain peak %f", accent, plain)
	}
}

func TestClickTrack_ConcurrentTrigger(t *testing.T) {
	c := NewClickTrack(SampleRate)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			c.Trigger(i%10 == 0)
		}
	}()
	go func() {
		defer wg.Done()
		buf := make([][2]float64, 64)
		for i := 0; i < 200; i++ {
			c.Stream(buf)
		}
	}()
	wg.Wait()
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
}
