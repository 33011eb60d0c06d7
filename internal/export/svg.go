package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/weight-meter/internal/dial"
)

type svgCanvas struct {
	s *svg.SVG
}

// SVG writes cmds as an SVG document. svgo works in whole pixels, so
// coordinates are rounded.
func SVG(w io.Writer, cmds []dial.Command, opt Options) error {
	s := svg.New(w)
	s.Start(opt.Width, opt.Height)
	s.Rect(0, 0, opt.Width, opt.Height, "fill:"+paint(opt.background()))
	dial.Replay(&svgCanvas{s: s}, cmds)
	s.End()
	return nil
}

func (c *svgCanvas) DrawCircle(x dial.Circle) {
	cx, cy, r := px(x.Center.X), px(x.Center.Y), px(x.Radius)
	for _, l := range x.ShadowLayers(shadowSteps) {
		c.s.Circle(cx, cy, r, stroke(l.Color, l.StrokeWidth))
	}
	c.s.Circle(cx, cy, r, stroke(x.Color, x.StrokeWidth))
}

func (c *svgCanvas) DrawLine(x dial.Line) {
	c.s.Line(px(x.From.X), px(x.From.Y), px(x.To.X), px(x.To.Y), stroke(x.Color, x.Width))
}

func (c *svgCanvas) DrawLabel(x dial.Label) {
	ax, ay := px(x.Anchor.X), px(x.Anchor.Y)
	c.s.Gtransform(fmt.Sprintf("rotate(%.2f %d %d)", x.RotationDeg, ax, ay))
	c.s.Text(ax, ay, x.Text, fmt.Sprintf("text-anchor:middle;font-family:sans-serif;font-size:%.1fpx;fill:%s", x.Size, paint(x.Color)))
	c.s.Gend()
}

func (c *svgCanvas) DrawPolygon(x dial.Polygon) {
	xs := make([]int, len(x.Points))
	ys := make([]int, len(x.Points))
	for i, p := range x.Points {
		xs[i], ys[i] = px(p.X), px(p.Y)
	}
	c.s.Polygon(xs, ys, "fill:"+paint(x.Color))
}

func px(v float64) int { return int(math.Round(v)) }

func stroke(clr color.RGBA, width float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.1f", paint(clr), width)
}

// paint turns a premultiplied colour into an SVG colour plus opacity.
func paint(clr color.RGBA) string {
	if clr.A == 0 {
		return "none"
	}
	c, _ := colorful.MakeColor(clr)
	if clr.A == 0xff {
		return c.Hex()
	}
	return fmt.Sprintf("%s;fill-opacity:%.3f;stroke-opacity:%.3f", c.Hex(), float64(clr.A)/0xff, float64(clr.A)/0xff)
}
