package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/weight-meter/internal/config"
	"github.com/iburimskiy/weight-meter/internal/dial"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// screenCanvas replays dial commands onto an ebiten image. Commands are in
// meter-local coordinates; origin is where the meter sits on dst.
type screenCanvas struct {
	dst    *ebiten.Image
	origin dial.Point
	fonts  *fontCache
}

func (c *screenCanvas) at(p dial.Point) (float32, float32) {
	return f32(p.X + c.origin.X), f32(p.Y + c.origin.Y)
}

func (c *screenCanvas) DrawCircle(x dial.Circle) {
	cx, cy := c.at(x.Center)
	for _, l := range x.ShadowLayers(config.ShadowSteps) {
		vector.StrokeCircle(c.dst, cx, cy, f32(x.Radius), f32(l.StrokeWidth), l.Color, true)
	}
	vector.StrokeCircle(c.dst, cx, cy, f32(x.Radius), f32(x.StrokeWidth), x.Color, true)
}

func (c *screenCanvas) DrawLine(x dial.Line) {
	x0, y0 := c.at(x.From)
	x1, y1 := c.at(x.To)
	vector.StrokeLine(c.dst, x0, y0, x1, y1, f32(x.Width), x.Color, true)
}

func (c *screenCanvas) DrawLabel(x dial.Label) {
	face := c.fonts.regular(x.Size)
	ax, ay := c.at(x.Anchor)

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	// text/v2 positions the top of the line; move it so the baseline is at the anchor
	op.GeoM.Translate(0, -face.Metrics().HAscent)
	op.GeoM.Rotate(x.RotationDeg * degToRad)
	op.GeoM.Translate(float64(ax), float64(ay))
	op.ColorScale.ScaleWithColor(x.Color)
	text.Draw(c.dst, x.Text, face, op)
}

func (c *screenCanvas) DrawPolygon(x dial.Polygon) {
	if len(x.Points) < 3 {
		return
	}
	var path vector.Path
	px, py := c.at(x.Points[0])
	path.MoveTo(px, py)
	for _, p := range x.Points[1:] {
		px, py = c.at(p)
		path.LineTo(px, py)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := x.Color.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	c.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
}
