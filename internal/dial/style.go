package dial

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	// ErrInvalidConfig is returned when a Config cannot describe a dial.
	ErrInvalidConfig = errors.New("invalid dial configuration")
	// ErrInvalidSequence is returned when a drag event arrives outside a gesture.
	ErrInvalidSequence = errors.New("drag event out of sequence")
)

const (
	DefaultMinValue     = 20
	DefaultMaxValue     = 250
	DefaultInitialValue = 80
)

// Point is a position in the widget's local coordinate space (y grows downward).
type Point struct {
	X, Y float64
}

// Size is the drawable area handed to the engine on layout.
type Size struct {
	W, H float64
}

func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// LineStyle is the length and colour of one kind of radial mark.
type LineStyle struct {
	Length float64
	Color  color.RGBA
}

// ScaleStyle holds every magnitude and colour the renderer needs, in pixels.
type ScaleStyle struct {
	Radius     float64
	ScaleWidth float64

	Normal    LineStyle
	FiveStep  LineStyle
	TenStep   LineStyle
	Indicator LineStyle

	TextSize  float64
	TextColor color.RGBA
}

// Line returns the style for a tick class.
func (s ScaleStyle) Line(c TickClass) LineStyle {
	switch c {
	case TenStep:
		return s.TenStep
	case FiveStep:
		return s.FiveStep
	default:
		return s.Normal
	}
}

func (s ScaleStyle) OuterRadius() float64 { return s.Radius + s.ScaleWidth/2 }
func (s ScaleStyle) InnerRadius() float64 { return s.Radius - s.ScaleWidth/2 }

// DefaultStyle matches the stock look: a large white band with grey, green and
// black ticks and a green indicator.
func DefaultStyle() ScaleStyle {
	return ScaleStyle{
		Radius:     550,
		ScaleWidth: 100,
		Normal:     LineStyle{Length: 15, Color: color.RGBA{0xcc, 0xcc, 0xcc, 0xff}},
		FiveStep:   LineStyle{Length: 25, Color: color.RGBA{0x00, 0xff, 0x00, 0xff}},
		TenStep:    LineStyle{Length: 35, Color: color.RGBA{0x00, 0x00, 0x00, 0xff}},
		Indicator:  LineStyle{Length: 60, Color: color.RGBA{0x00, 0xff, 0x00, 0xff}},
		TextSize:   18,
		TextColor:  color.RGBA{0x00, 0x00, 0x00, 0xff},
	}
}

// Config is the immutable description of one dial.
type Config struct {
	MinValue     int
	MaxValue     int
	InitialValue int
	Style        ScaleStyle
}

func DefaultConfig() Config {
	return Config{
		MinValue:     DefaultMinValue,
		MaxValue:     DefaultMaxValue,
		InitialValue: DefaultInitialValue,
		Style:        DefaultStyle(),
	}
}

// Validate reports the first problem that makes c unusable. Every error wraps
// ErrInvalidConfig.
func (c Config) Validate() error {
	if c.MinValue >= c.MaxValue {
		return fmt.Errorf("%w: min value %d must be less than max value %d", ErrInvalidConfig, c.MinValue, c.MaxValue)
	}
	if c.InitialValue < c.MinValue || c.InitialValue > c.MaxValue {
		return fmt.Errorf("%w: initial value %d outside [%d, %d]", ErrInvalidConfig, c.InitialValue, c.MinValue, c.MaxValue)
	}
	s := c.Style
	if s.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %g", ErrInvalidConfig, s.Radius)
	}
	if s.ScaleWidth <= 0 {
		return fmt.Errorf("%w: scale width must be positive, got %g", ErrInvalidConfig, s.ScaleWidth)
	}
	magnitudes := []struct {
		name string
		v    float64
	}{
		{"normal line length", s.Normal.Length},
		{"five step line length", s.FiveStep.Length},
		{"ten step line length", s.TenStep.Length},
		{"indicator length", s.Indicator.Length},
		{"text size", s.TextSize},
	}
	for _, m := range magnitudes {
		if m.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidConfig, m.name, m.v)
		}
	}
	return nil
}

// AngleBounds returns the rotation range, in degrees, that keeps the value
// inside [MinValue, MaxValue].
func (c Config) AngleBounds() (lo, hi float64) {
	return float64(c.InitialValue - c.MaxValue), float64(c.InitialValue - c.MinValue)
}

// AngleForValue is the rotation at which v sits under the indicator.
func (c Config) AngleForValue(v int) float64 {
	lo, hi := c.AngleBounds()
	return clamp(float64(c.InitialValue-v), lo, hi)
}
