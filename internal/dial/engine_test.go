package dial

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
)

func newTestEngine(t *testing.T, cfg Config) (*Engine, *[]int) {
	t.Helper()
	var emitted []int
	e, err := NewEngine(cfg, func(v int) { emitted = append(emitted, v) })
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.OnLayout(Size{W: 480, H: 300})
	return e, &emitted
}

func TestNewEngine_RejectsInvalidConfig(t *testing.T) {
	g := NewWithT(t)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"min equals max", func(c *Config) { c.MinValue = c.MaxValue }},
		{"min above max", func(c *Config) { c.MinValue, c.MaxValue = 300, 100 }},
		{"initial below min", func(c *Config) { c.InitialValue = c.MinValue - 1 }},
		{"initial above max", func(c *Config) { c.InitialValue = c.MaxValue + 1 }},
		{"zero radius", func(c *Config) { c.Style.Radius = 0 }},
		{"zero scale width", func(c *Config) { c.Style.ScaleWidth = 0 }},
		{"negative tick length", func(c *Config) { c.Style.FiveStep.Length = -1 }},
		{"negative text size", func(c *Config) { c.Style.TextSize = -2 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(&cfg)
		e, err := NewEngine(cfg, nil)
		g.Expect(err).To(MatchError(ErrInvalidConfig), tt.name)
		g.Expect(e).To(BeNil(), tt.name)
	}
}

func TestEngine_StartsAtInitialValue(t *testing.T) {
	g := NewWithT(t)
	e, emitted := newTestEngine(t, DefaultConfig())

	g.Expect(e.Value()).To(Equal(80))
	g.Expect(e.Angle()).To(BeZero())
	g.Expect(e.Dragging()).To(BeFalse())
	g.Expect(*emitted).To(BeEmpty())
}

func TestEngine_OnLayout(t *testing.T) {
	g := NewWithT(t)
	e, _ := newTestEngine(t, DefaultConfig())

	st := e.State()
	g.Expect(st.Center).To(Equal(Point{240, 150}))
	g.Expect(st.Pivot).To(Equal(Point{240, 50 + 550}))

	e.OnLayout(Size{W: 0, H: 100})
	g.Expect(e.State().Pivot).To(Equal(st.Pivot), "empty layout keeps previous pivot")

	e.OnLayout(Size{W: 800, H: 300})
	g.Expect(e.State().Pivot.X).To(Equal(400.0))
	g.Expect(e.Angle()).To(BeZero())
}

func TestEngine_AngleOfPoint(t *testing.T) {
	g := NewWithT(t)
	e, _ := newTestEngine(t, DefaultConfig())
	p := e.State().Pivot

	g.Expect(e.AngleOfPoint(Point{p.X, p.Y - 100})).To(BeNumerically("~", 0, 1e-9))
	g.Expect(e.AngleOfPoint(Point{p.X + 100, p.Y})).To(BeNumerically("~", 90, 1e-9))
	g.Expect(e.AngleOfPoint(Point{p.X - 100, p.Y})).To(BeNumerically("~", -90, 1e-9))
	g.Expect(e.AngleOfPoint(Point{p.X + 100, p.Y - 100})).To(BeNumerically("~", 45, 1e-9))
}

func TestEngine_FortyFiveDegreeDrag(t *testing.T) {
	g := NewWithT(t)
	e, emitted := newTestEngine(t, DefaultConfig())
	c := e.State().Pivot

	e.OnDragStart(Point{c.X, c.Y - 100})
	g.Expect(e.Angle()).To(BeZero(), "drag start does not rotate")

	v, err := e.OnDragMove(Point{c.X + 100, c.Y - 100})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(e.Angle()).To(BeNumerically("~", 45, 1e-9))
	g.Expect(v).To(Equal(35))
	g.Expect(*emitted).To(Equal([]int{35}))

	g.Expect(e.OnDragEnd()).To(Succeed())
	g.Expect(e.State().CommittedDeg).To(Equal(e.Angle()))
	g.Expect(e.Dragging()).To(BeFalse())
}

func TestEngine_ClampsFarBeyondRange(t *testing.T) {
	g := NewWithT(t)
	cfg := DefaultConfig()
	e, _ := newTestEngine(t, cfg)
	c := e.State().Pivot
	up := Point{c.X, c.Y - 100}
	right := Point{c.X + 100, c.Y - 100}
	left := Point{c.X - 100, c.Y - 100}

	// twelve 45 degree strokes clockwise: 540 degrees of travel
	for n := 0; n < 12; n++ {
		e.OnDragStart(up)
		v, err := e.OnDragMove(right)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(BeNumerically(">=", cfg.MinValue))
		g.Expect(v).To(BeNumerically("<=", cfg.MaxValue))
		g.Expect(e.OnDragEnd()).To(Succeed())
	}
	g.Expect(e.Value()).To(Equal(cfg.MinValue))
	g.Expect(e.Angle()).To(Equal(60.0))

	for n := 0; n < 24; n++ {
		e.OnDragStart(up)
		_, err := e.OnDragMove(left)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(e.OnDragEnd()).To(Succeed())
	}
	g.Expect(e.Value()).To(Equal(cfg.MaxValue))
	g.Expect(e.Angle()).To(Equal(-170.0))
}

func TestEngine_ValueTracksAngle(t *testing.T) {
	g := NewWithT(t)
	e, _ := newTestEngine(t, DefaultConfig())
	c := e.State().Pivot

	e.OnDragStart(Point{c.X, c.Y - 200})
	for x := -400.0; x <= 400; x += 7.5 {
		v, err := e.OnDragMove(Point{c.X + x, c.Y - 200})
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(v).To(BeNumerically(">=", 20))
		g.Expect(v).To(BeNumerically("<=", 250))
		g.Expect(float64(v)).To(BeNumerically("~", 80-e.Angle(), 0.5))
	}
}

func TestEngine_BaselinePersistsAcrossDrags(t *testing.T) {
	g := NewWithT(t)
	e, emitted := newTestEngine(t, DefaultConfig())
	c := e.State().Pivot

	e.OnDragStart(Point{c.X, c.Y - 100})
	_, _ = e.OnDragMove(Point{c.X + 100, c.Y - 100})
	g.Expect(e.OnDragEnd()).To(Succeed())
	theta1 := e.Angle()
	g.Expect(e.State().CommittedDeg).To(Equal(theta1))

	// grab again somewhere else entirely; the first move at the grab point
	// must not change the value
	grab := Point{c.X - 50, c.Y - 150}
	e.OnDragStart(grab)
	v, err := e.OnDragMove(grab)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(e.Angle()).To(Equal(theta1))
	g.Expect(v).To(Equal((*emitted)[0]))
}

func TestEngine_OutOfSequenceEvents(t *testing.T) {
	g := NewWithT(t)
	e, emitted := newTestEngine(t, DefaultConfig())
	c := e.State().Pivot

	v, err := e.OnDragMove(Point{c.X + 100, c.Y - 100})
	g.Expect(errors.Is(err, ErrInvalidSequence)).To(BeTrue())
	g.Expect(v).To(Equal(80))
	g.Expect(e.Angle()).To(BeZero())
	g.Expect(*emitted).To(BeEmpty())

	g.Expect(e.OnDragEnd()).To(MatchError(ErrInvalidSequence))

	e.OnDragStart(Point{c.X, c.Y - 100})
	g.Expect(e.OnDragEnd()).To(Succeed())
	g.Expect(e.OnDragEnd()).To(MatchError(ErrInvalidSequence))
}

func TestEngine_RestartCommitsActiveGesture(t *testing.T) {
	g := NewWithT(t)
	e, _ := newTestEngine(t, DefaultConfig())
	c := e.State().Pivot

	e.OnDragStart(Point{c.X, c.Y - 100})
	_, _ = e.OnDragMove(Point{c.X + 100, c.Y - 100})

	// pointer-up was lost; a fresh pointer-down arrives
	e.OnDragStart(Point{c.X, c.Y - 100})
	g.Expect(e.State().CommittedDeg).To(BeNumerically("~", 45, 1e-9))

	v, err := e.OnDragMove(Point{c.X, c.Y - 100})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(v).To(Equal(35))
}

func TestEngine_NilCallback(t *testing.T) {
	g := NewWithT(t)
	e, err := NewEngine(DefaultConfig(), nil)
	g.Expect(err).NotTo(HaveOccurred())
	e.OnLayout(Size{W: 480, H: 300})
	c := e.State().Pivot

	e.OnDragStart(Point{c.X, c.Y - 100})
	g.Expect(func() { _, _ = e.OnDragMove(Point{c.X + 100, c.Y - 100}) }).NotTo(Panic())
}
