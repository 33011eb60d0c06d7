package config

import (
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/weight-meter/internal/dial"
)

const (
	WindowWidth  = 480
	WindowHeight = 560

	// Meter area
	MeterTop    = 200
	MeterHeight = 300

	// Title
	TitleTop      = 100
	TitleFontSize = 30

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 32
	ButtonX      = 12
	ButtonY      = 30

	// Shadow rings drawn behind the band
	ShadowSteps = 12

	DefaultDensity = 1.0
)

// Line is the YAML form of one tick or indicator style.
type Line struct {
	Length float64 `yaml:"length"`
	Color  string  `yaml:"color"`
}

type Style struct {
	Radius       float64 `yaml:"radius"`
	ScaleWidth   float64 `yaml:"scale_width"`
	NormalLine   Line    `yaml:"normal_line"`
	FiveStepLine Line    `yaml:"five_step_line"`
	TenStepLine  Line    `yaml:"ten_step_line"`
	Indicator    Line    `yaml:"indicator"`
	TextSize     float64 `yaml:"text_size"`
	TextColor    string  `yaml:"text_color"`
}

// Config is the on-disk description of a meter. Magnitudes are in density
// independent units and are multiplied by Density when converted.
type Config struct {
	MinValue     int     `yaml:"min_value"`
	MaxValue     int     `yaml:"max_value"`
	InitialValue int     `yaml:"initial_value"`
	Density      float64 `yaml:"density"`
	Sound        bool    `yaml:"sound"`
	Style        Style   `yaml:"style"`
}

func DefaultConfig() *Config {
	return &Config{
		MinValue:     dial.DefaultMinValue,
		MaxValue:     dial.DefaultMaxValue,
		InitialValue: dial.DefaultInitialValue,
		Density:      DefaultDensity,
		Sound:        true,
		Style: Style{
			Radius:       550,
			ScaleWidth:   100,
			NormalLine:   Line{Length: 15, Color: "#cccccc"},
			FiveStepLine: Line{Length: 25, Color: "#00ff00"},
			TenStepLine:  Line{Length: 35, Color: "#000000"},
			Indicator:    Line{Length: 60, Color: "#00ff00"},
			TextSize:     18,
			TextColor:    "#000000",
		},
	}
}

// Load reads a YAML file on top of the defaults, so a file only needs the
// keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Dial converts the file model into a validated dial.Config.
func (c *Config) Dial() (dial.Config, error) {
	density := c.Density
	if density <= 0 {
		return dial.Config{}, fmt.Errorf("%w: density must be positive, got %g", dial.ErrInvalidConfig, density)
	}

	out := dial.Config{
		MinValue:     c.MinValue,
		MaxValue:     c.MaxValue,
		InitialValue: c.InitialValue,
		Style: dial.ScaleStyle{
			Radius:     c.Style.Radius * density,
			ScaleWidth: c.Style.ScaleWidth * density,
			TextSize:   c.Style.TextSize * density,
		},
	}
	lines := []struct {
		name string
		in   Line
		out  *dial.LineStyle
	}{
		{"normal_line", c.Style.NormalLine, &out.Style.Normal},
		{"five_step_line", c.Style.FiveStepLine, &out.Style.FiveStep},
		{"ten_step_line", c.Style.TenStepLine, &out.Style.TenStep},
		{"indicator", c.Style.Indicator, &out.Style.Indicator},
	}
	for _, l := range lines {
		clr, err := parseColor(l.name, l.in.Color)
		if err != nil {
			return dial.Config{}, err
		}
		*l.out = dial.LineStyle{Length: l.in.Length * density, Color: clr}
	}
	var err error
	if out.Style.TextColor, err = parseColor("text_color", c.Style.TextColor); err != nil {
		return dial.Config{}, err
	}
	if err := out.Validate(); err != nil {
		return dial.Config{}, err
	}
	return out, nil
}

func parseColor(field, hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %s: %v", dial.ErrInvalidConfig, field, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
