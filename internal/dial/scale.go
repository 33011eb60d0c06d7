package dial

import (
	"image/color"
	"math"
	"strconv"
)

const (
	tickWidth      = 1
	labelPadding   = 5
	indicatorHalf  = 6
	shadowRadius   = 60
	degreesToRad   = math.Pi / 180
	radiansToDeg   = 180 / math.Pi
	topOfDialInDeg = 90
)

var (
	bandColor   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	shadowColor = color.RGBA{0x00, 0x00, 0x00, 50}
)

// Render lays out one frame of the dial rotated by angleDeg around pivot.
// The band comes first, then every tick (with a label on ten-steps), then the
// indicator, so the indicator is always on top. Render has no side effects.
func Render(cfg Config, pivot Point, angleDeg float64) []Command {
	s := cfg.Style
	outer := s.OuterRadius()
	inner := s.InnerRadius()

	n := cfg.MaxValue - cfg.MinValue + 1
	cmds := make([]Command, 0, n+n/10+3)
	cmds = append(cmds, Circle{
		Center:       pivot,
		Radius:       s.Radius,
		StrokeWidth:  s.ScaleWidth,
		Color:        bandColor,
		ShadowRadius: shadowRadius,
		ShadowColor:  shadowColor,
	})

	for i := cfg.MinValue; i <= cfg.MaxValue; i++ {
		theta := (float64(i-cfg.InitialValue) + angleDeg - topOfDialInDeg) * degreesToRad
		dir := Point{math.Cos(theta), math.Sin(theta)}
		class := Classify(i)
		ls := s.Line(class)

		cmds = append(cmds, Line{
			From:  polar(pivot, dir, outer-ls.Length),
			To:    polar(pivot, dir, outer),
			Width: tickWidth,
			Color: ls.Color,
			Tick:  i,
			Class: class,
		})

		if class == TenStep {
			cmds = append(cmds, Label{
				Anchor:      polar(pivot, dir, outer-ls.Length-labelPadding-s.TextSize),
				RotationDeg: theta*radiansToDeg + 90,
				Text:        strconv.Itoa(abs(i)),
				Size:        s.TextSize,
				Color:       s.TextColor,
			})
		}
	}

	cmds = append(cmds, indicator(pivot, inner, s.Indicator))
	return cmds
}

func indicator(pivot Point, inner float64, ls LineStyle) Polygon {
	base := pivot.Y - inner
	return Polygon{
		Points: []Point{
			{pivot.X, base - ls.Length},
			{pivot.X - indicatorHalf, base},
			{pivot.X + indicatorHalf, base},
		},
		Color: ls.Color,
	}
}

func polar(origin, dir Point, r float64) Point {
	return Point{origin.X + r*dir.X, origin.Y + r*dir.Y}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
