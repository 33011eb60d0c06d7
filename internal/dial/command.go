package dial

import "image/color"

// Command is one element of a rendered frame. The concrete types are Circle,
// Line, Label and Polygon.
type Command interface {
	command()
}

// Circle is a stroked ring with a soft shadow behind it.
type Circle struct {
	Center       Point
	Radius       float64
	StrokeWidth  float64
	Color        color.RGBA
	ShadowRadius float64
	ShadowColor  color.RGBA
}

// Line is a single tick mark.
type Line struct {
	From, To Point
	Width    float64
	Color    color.RGBA
	Tick     int
	Class    TickClass
}

// Label is horizontally centred text whose baseline passes through Anchor,
// rotated by RotationDeg about Anchor.
type Label struct {
	Anchor      Point
	RotationDeg float64
	Text        string
	Size        float64
	Color       color.RGBA
}

// Polygon is a closed, filled shape.
type Polygon struct {
	Points []Point
	Color  color.RGBA
}

func (Circle) command()  {}
func (Line) command()    {}
func (Label) command()   {}
func (Polygon) command() {}

// Canvas is a rendering surface that can draw every command kind.
type Canvas interface {
	DrawCircle(Circle)
	DrawLine(Line)
	DrawLabel(Label)
	DrawPolygon(Polygon)
}

// Replay draws cmds onto c in order.
func Replay(c Canvas, cmds []Command) {
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case Circle:
			c.DrawCircle(cmd)
		case Line:
			c.DrawLine(cmd)
		case Label:
			c.DrawLabel(cmd)
		case Polygon:
			c.DrawPolygon(cmd)
		}
	}
}

// ShadowLayer is one translucent ring of a Circle's shadow.
type ShadowLayer struct {
	StrokeWidth float64
	Color       color.RGBA
}

// ShadowLayers approximates the shadow with steps concentric rings, widest
// first. The rings overlap, so opacity is highest next to the band and fades
// linearly to zero ShadowRadius away from it.
func (c Circle) ShadowLayers(steps int) []ShadowLayer {
	if steps <= 0 || c.ShadowRadius <= 0 || c.ShadowColor.A == 0 {
		return nil
	}
	steps = min(steps, 255)
	each := color.RGBA{
		R: c.ShadowColor.R / uint8(steps),
		G: c.ShadowColor.G / uint8(steps),
		B: c.ShadowColor.B / uint8(steps),
		A: max(c.ShadowColor.A/uint8(steps), 1),
	}
	layers := make([]ShadowLayer, 0, steps)
	for k := steps; k >= 1; k-- {
		layers = append(layers, ShadowLayer{
			StrokeWidth: c.StrokeWidth + 2*c.ShadowRadius*float64(k)/float64(steps),
			Color:       each,
		})
	}
	return layers
}
