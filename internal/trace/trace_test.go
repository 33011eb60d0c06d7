package trace

import (
	"math"
	"testing"

	"github.com/iburimskiy/weight-meter/internal/dial"
)

var meterSize = dial.Size{W: 480, H: 300}

func TestPointAt(t *testing.T) {
	cfg := dial.DefaultConfig()
	e, err := dial.NewEngine(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	e.OnLayout(meterSize)
	pivot := e.State().Pivot

	for _, a := range []float64{-170, -90, -45, 0, 12.5, 45, 90, 170} {
		got := e.AngleOfPoint(PointAt(pivot, a, 150))
		if math.Abs(got-a) > 1e-9 {
			t.Errorf("AngleOfPoint(PointAt(%g)) = %g", a, got)
		}
	}
}

func TestRun_SingleStroke(t *testing.T) {
	res, err := Run(dial.DefaultConfig(), meterSize, Script{Strokes: []float64{45}, StepDeg: 5})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Values) != 9 {
		t.Errorf("got %d values, want 9", len(res.Values))
	}
	if res.Final != 35 {
		t.Errorf("final = %d, want 35", res.Final)
	}
	for i := 1; i < len(res.Values); i++ {
		if res.Values[i] > res.Values[i-1] {
			t.Fatalf("clockwise stroke should only lower the value: %v", res.Values)
		}
	}
}

func TestRun_CumulativeStrokesClamp(t *testing.T) {
	cfg := dial.DefaultConfig()

	res, err := Run(cfg, meterSize, Script{Strokes: []float64{-100, -100, -100, -100, -100}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Final != cfg.MaxValue {
		t.Errorf("final = %d, want %d", res.Final, cfg.MaxValue)
	}
	for _, v := range res.Values {
		if v < cfg.MinValue || v > cfg.MaxValue {
			t.Fatalf("value %d escaped [%d, %d]", v, cfg.MinValue, cfg.MaxValue)
		}
	}

	res, err = Run(cfg, meterSize, Script{Strokes: []float64{30, 30, 30}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Final != cfg.MinValue || res.Angle != 60 {
		t.Errorf("final = %d at %g, want %d at 60", res.Final, res.Angle, cfg.MinValue)
	}
}

func TestRun_StrokesAreContinuous(t *testing.T) {
	res, err := Run(dial.DefaultConfig(), meterSize, Script{Strokes: []float64{-20, -20, 10}, StepDeg: 1})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(res.Values); i++ {
		if d := res.Values[i] - res.Values[i-1]; d > 1 || d < -1 {
			t.Fatalf("value jumped from %d to %d at step %d", res.Values[i-1], res.Values[i], i)
		}
	}
	if res.Final != 110 {
		t.Errorf("final = %d, want 110", res.Final)
	}
}

func TestRun_Errors(t *testing.T) {
	if _, err := Run(dial.DefaultConfig(), meterSize, Script{Strokes: []float64{200}}); err == nil {
		t.Error("expected error for a stroke past the seam")
	}
	bad := dial.DefaultConfig()
	bad.MinValue = bad.MaxValue
	if _, err := Run(bad, meterSize, Script{Strokes: []float64{10}}); err == nil {
		t.Error("expected configuration error")
	}
}
