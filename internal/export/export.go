// Package export draws dial frames without a window, as PNG through gg or as
// SVG through svgo.
package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/iburimskiy/weight-meter/internal/dial"
)

// Format is an output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"

	shadowSteps = 12
)

var defaultBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Options controls the canvas a frame is drawn onto.
type Options struct {
	Width, Height int
	Background    color.RGBA
}

func (o Options) background() color.RGBA {
	if o.Background == (color.RGBA{}) {
		return defaultBackground
	}
	return o.Background
}

// ParseFormat accepts "png" or "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want png or svg)", s)
}

// Frame lays out cfg in an area of the given size and renders it with value v
// under the indicator.
func Frame(cfg dial.Config, v int, size dial.Size) []dial.Command {
	_, pivot := dial.PivotFor(size, cfg.Style)
	return dial.Render(cfg, pivot, cfg.AngleForValue(v))
}

// Write encodes cmds in format f.
func Write(w io.Writer, f Format, cmds []dial.Command, opt Options) error {
	if opt.Width <= 0 || opt.Height <= 0 {
		return fmt.Errorf("export size must be positive, got %dx%d", opt.Width, opt.Height)
	}
	switch f {
	case FormatPNG:
		return PNG(w, cmds, opt)
	case FormatSVG:
		return SVG(w, cmds, opt)
	}
	return fmt.Errorf("unknown export format %q", f)
}
