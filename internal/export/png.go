package export

import (
	"io"

	"git.sr.ht/~sbinet/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/iburimskiy/weight-meter/internal/dial"
)

type pngCanvas struct {
	dc    *gg.Context
	font  *opentype.Font
	faces map[float64]font.Face
	err   error
}

// PNG rasterises cmds with gg and writes the image to w.
func PNG(w io.Writer, cmds []dial.Command, opt Options) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	c := &pngCanvas{
		dc:    gg.NewContext(opt.Width, opt.Height),
		font:  f,
		faces: make(map[float64]font.Face),
	}
	c.dc.SetColor(opt.background())
	c.dc.Clear()

	dial.Replay(c, cmds)
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}

func (c *pngCanvas) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	c.faces[size] = f
	return f, nil
}

func (c *pngCanvas) DrawCircle(x dial.Circle) {
	for _, l := range x.ShadowLayers(shadowSteps) {
		c.dc.SetColor(l.Color)
		c.dc.SetLineWidth(l.StrokeWidth)
		c.dc.DrawCircle(x.Center.X, x.Center.Y, x.Radius)
		c.dc.Stroke()
	}
	c.dc.SetColor(x.Color)
	c.dc.SetLineWidth(x.StrokeWidth)
	c.dc.DrawCircle(x.Center.X, x.Center.Y, x.Radius)
	c.dc.Stroke()
}

func (c *pngCanvas) DrawLine(x dial.Line) {
	c.dc.SetColor(x.Color)
	c.dc.SetLineWidth(x.Width)
	c.dc.DrawLine(x.From.X, x.From.Y, x.To.X, x.To.Y)
	c.dc.Stroke()
}

func (c *pngCanvas) DrawLabel(x dial.Label) {
	face, err := c.face(x.Size)
	if err != nil {
		if c.err == nil {
			c.err = err
		}
		return
	}
	c.dc.Push()
	defer c.dc.Pop()
	c.dc.RotateAbout(gg.Radians(x.RotationDeg), x.Anchor.X, x.Anchor.Y)
	c.dc.SetFontFace(face)
	c.dc.SetColor(x.Color)
	c.dc.DrawStringAnchored(x.Text, x.Anchor.X, x.Anchor.Y, 0.5, 0)
}

func (c *pngCanvas) DrawPolygon(x dial.Polygon) {
	if len(x.Points) < 3 {
		return
	}
	c.dc.MoveTo(x.Points[0].X, x.Points[0].Y)
	for _, p := range x.Points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.SetColor(x.Color)
	c.dc.Fill()
}
