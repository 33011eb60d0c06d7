package game

import (
	"errors"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/weight-meter/internal/audio"
	"github.com/iburimskiy/weight-meter/internal/config"
	"github.com/iburimskiy/weight-meter/internal/dial"
)

var (
	backgroundColor = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	titleColor      = color.RGBA{A: 255}
	statusBarColor  = color.RGBA{R: 20, G: 25, B: 35, A: 230}
)

// Game hosts one weight meter in an ebiten window: a title with the current
// value, the meter below it and a button that loads another meter file.
type Game struct {
	cfg    *config.Config
	engine *dial.Engine
	value  int

	width, height int

	fonts   *fontCache
	pointer pointer
	clicks  *audio.ClickTrack

	// button state
	buttonHovered bool
	buttonPressed bool

	lastErr error
}

// New builds the host for cfg. A configuration that does not describe a valid
// meter is returned as an error wrapping dial.ErrInvalidConfig.
func New(cfg *config.Config) (*Game, error) {
	fonts, err := newFontCache()
	if err != nil {
		return nil, err
	}
	g := &Game{
		fonts:  fonts,
		width:  config.WindowWidth,
		height: config.WindowHeight,
	}
	if err := g.load(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) load(cfg *config.Config) error {
	dc, err := cfg.Dial()
	if err != nil {
		return err
	}
	engine, err := dial.NewEngine(dc, g.onValueChange)
	if err != nil {
		return err
	}
	engine.OnLayout(g.meterSize())

	g.cfg = cfg
	g.engine = engine
	g.value = dc.InitialValue
	g.pointer.cancel()
	if cfg.Sound && g.clicks == nil {
		g.startAudio()
	}
	log.Printf("meter: range [%d, %d], initial %d", dc.MinValue, dc.MaxValue, dc.InitialValue)
	return nil
}

func (g *Game) startAudio() {
	track := audio.NewClickTrack(audio.SampleRate)
	if err := audio.Start(track); err != nil {
		log.Printf("audio: disabled: %v", err)
		return
	}
	g.clicks = track
}

func (g *Game) onValueChange(v int) {
	if v == g.value {
		return
	}
	g.value = v
	if g.clicks != nil && g.cfg.Sound {
		g.clicks.Trigger(dial.Classify(v) == dial.TenStep)
	}
}

// Value is the last value the meter reported.
func (g *Game) Value() int { return g.value }

func (g *Game) meterRect() image.Rectangle {
	return image.Rect(0, config.MeterTop, g.width, config.MeterTop+config.MeterHeight)
}

func (g *Game) meterSize() dial.Size {
	r := g.meterRect()
	return dial.Size{W: float64(r.Dx()), H: float64(r.Dy())}
}

func buttonRect() image.Rectangle {
	return image.Rect(config.ButtonX, config.ButtonY, config.ButtonX+config.ButtonWidth, config.ButtonY+config.ButtonHeight)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	mouse := image.Pt(ebiten.CursorPosition())
	g.buttonHovered = mouse.In(buttonRect())
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
		return nil
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.buttonPressed {
		g.buttonPressed = false
		if g.buttonHovered {
			if err := g.openConfigDialog(); err != nil {
				g.lastErr = err
			}
		}
		return nil
	}
	if g.buttonPressed {
		return nil
	}

	g.handlePointer()
	return nil
}

func (g *Game) handlePointer() {
	ev, pos := g.pointer.poll()
	origin := g.meterRect().Min
	local := dial.Point{X: float64(pos.X - origin.X), Y: float64(pos.Y - origin.Y)}

	var err error
	switch ev {
	case pointerDown:
		if !pos.In(g.meterRect()) {
			g.pointer.cancel()
			return
		}
		g.engine.OnDragStart(local)
	case pointerMove:
		_, err = g.engine.OnDragMove(local)
	case pointerUp:
		err = g.engine.OnDragEnd()
	}
	if errors.Is(err, dial.ErrInvalidSequence) {
		log.Printf("meter: ignoring pointer event: %v", err)
	}
}

func (g *Game) openConfigDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Meter Configuration"),
		zenity.FileFilters{{
			Name:     "Meter configuration",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(filename)
	if err != nil {
		return err
	}
	if err := g.load(cfg); err != nil {
		if errors.Is(err, dial.ErrInvalidConfig) {
			ShowConfigError(err)
		}
		return err
	}
	log.Printf("meter: loaded %s", filename)
	g.lastErr = nil
	return nil
}

// ShowConfigError reports an unusable configuration in a native dialog.
func ShowConfigError(err error) {
	if derr := zenity.Error(err.Error(), zenity.Title("Invalid meter configuration")); derr != nil {
		log.Printf("dialog: %v", derr)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	g.drawTitle(screen)
	g.drawMeter(screen)
	g.drawButton(screen)
	g.drawStatus(screen)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	face := g.fonts.bold(config.TitleFontSize)
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = config.TitleFontSize * 1.2
	op.GeoM.Translate(float64(g.width)/2, config.TitleTop)
	op.ColorScale.ScaleWithColor(titleColor)
	text.Draw(screen, formatTitle(g.value), face, op)
}

func (g *Game) drawMeter(screen *ebiten.Image) {
	r := g.meterRect()
	c := &screenCanvas{
		dst:    screen.SubImage(r).(*ebiten.Image),
		origin: dial.Point{X: float64(r.Min.X), Y: float64(r.Min.Y)},
		fonts:  g.fonts,
	}
	dial.Replay(c, g.engine.Frame())
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	x, y := f32(config.ButtonX), f32(config.ButtonY)
	w, h := f32(config.ButtonWidth), f32(config.ButtonHeight)
	vector.DrawFilledRect(screen, x, y, w, h, bgColor, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	label := "Open Meter"
	textWidth := len(label) * 6 // debug font glyphs are 6px wide
	ebitenutil.DebugPrintAt(screen, label, config.ButtonX+(config.ButtonWidth-textWidth)/2, config.ButtonY+(config.ButtonHeight-16)/2)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	const barHeight = 22
	y := g.height - barHeight
	vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), barHeight, statusBarColor, false)

	status := "Drag the scale to choose a weight - Esc/Q: quit"
	if g.engine.Dragging() {
		status = "Dragging"
	}
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 8, y+3)
}

// Layout follows the window size so the meter is re-laid out on resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.engine.OnLayout(g.meterSize())
	}
	return g.width, g.height
}
