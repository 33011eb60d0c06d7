package game

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointer follows whichever of the mouse or the first touch started the
// current drag. Additional touches are ignored.
type pointer struct {
	down  bool
	touch bool
	id    ebiten.TouchID
	last  image.Point

	touchIDs []ebiten.TouchID
}

type pointerEvent int

const (
	pointerNone pointerEvent = iota
	pointerDown
	pointerMove
	pointerUp
)

// poll reads this tick's input and returns at most one event with its position.
func (p *pointer) poll() (pointerEvent, image.Point) {
	if !p.down {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			p.down, p.touch, p.last = true, false, image.Pt(x, y)
			return pointerDown, p.last
		}
		p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
		if len(p.touchIDs) > 0 {
			id := p.touchIDs[0]
			x, y := ebiten.TouchPosition(id)
			p.down, p.touch, p.id, p.last = true, true, id, image.Pt(x, y)
			return pointerDown, p.last
		}
		return pointerNone, image.Point{}
	}

	if p.released() {
		p.down = false
		return pointerUp, p.last
	}

	var pos image.Point
	if p.touch {
		pos = image.Pt(ebiten.TouchPosition(p.id))
	} else {
		pos = image.Pt(ebiten.CursorPosition())
	}
	if pos == p.last {
		return pointerNone, pos
	}
	p.last = pos
	return pointerMove, pos
}

func (p *pointer) released() bool {
	if p.touch {
		return inpututil.IsTouchJustReleased(p.id)
	}
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) ||
		!ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// cancel drops the drag without waiting for a release.
func (p *pointer) cancel() { p.down = false }
