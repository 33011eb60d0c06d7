// Package trace replays scripted drag gestures against a dial engine without
// a window and records every value the engine reports.
package trace

import (
	"fmt"
	"math"

	"github.com/iburimskiy/weight-meter/internal/dial"
)

const (
	defaultStep   = 1.0
	defaultRadius = 200.0
	maxStroke     = 179.0
)

// Script is a sequence of strokes. Each stroke grabs the dial straight above
// the pivot and turns it by the given number of degrees (clockwise positive)
// in steps of StepDeg, then releases it.
type Script struct {
	Strokes []float64
	StepDeg float64
	Radius  float64
}

// Result is what the engine reported while the script ran.
type Result struct {
	Values []int
	Final  int
	Angle  float64
}

// PointAt is the point at angleDeg (up is zero, clockwise positive) and
// distance r from pivot.
func PointAt(pivot dial.Point, angleDeg, r float64) dial.Point {
	a := angleDeg * math.Pi / 180
	return dial.Point{X: pivot.X + r*math.Sin(a), Y: pivot.Y - r*math.Cos(a)}
}

// Run lays the engine out in size and plays s.
func Run(cfg dial.Config, size dial.Size, s Script) (Result, error) {
	step := s.StepDeg
	if step <= 0 {
		step = defaultStep
	}
	radius := s.Radius
	if radius <= 0 {
		radius = defaultRadius
	}
	for i, st := range s.Strokes {
		if math.Abs(st) > maxStroke {
			return Result{}, fmt.Errorf("stroke %d turns %g degrees; a single stroke must stay within %g", i, st, maxStroke)
		}
	}

	var res Result
	e, err := dial.NewEngine(cfg, func(v int) { res.Values = append(res.Values, v) })
	if err != nil {
		return Result{}, err
	}
	e.OnLayout(size)
	pivot := e.State().Pivot

	for _, st := range s.Strokes {
		e.OnDragStart(PointAt(pivot, 0, radius))
		n := int(math.Ceil(math.Abs(st) / step))
		for k := 1; k <= n; k++ {
			a := math.Copysign(math.Min(float64(k)*step, math.Abs(st)), st)
			if _, err := e.OnDragMove(PointAt(pivot, a, radius)); err != nil {
				return Result{}, err
			}
		}
		if err := e.OnDragEnd(); err != nil {
			return Result{}, err
		}
	}
	res.Final = e.Value()
	res.Angle = e.Angle()
	return res, nil
}
