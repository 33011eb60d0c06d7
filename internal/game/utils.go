package game

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const degToRad = math.Pi / 180

func f32(v float64) float32 { return float32(v) }

// fontCache hands out faces per size from the Go fonts.
type fontCache struct {
	regularSrc *text.GoTextFaceSource
	boldSrc    *text.GoTextFaceSource
	faces      map[fontKey]*text.GoTextFace
}

type fontKey struct {
	bold bool
	size float64
}

func newFontCache() (*fontCache, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &fontCache{
		regularSrc: regular,
		boldSrc:    bold,
		faces:      make(map[fontKey]*text.GoTextFace),
	}, nil
}

func (f *fontCache) regular(size float64) *text.GoTextFace { return f.face(false, size) }
func (f *fontCache) bold(size float64) *text.GoTextFace    { return f.face(true, size) }

func (f *fontCache) face(bold bool, size float64) *text.GoTextFace {
	k := fontKey{bold, size}
	if face, ok := f.faces[k]; ok {
		return face
	}
	src := f.regularSrc
	if bold {
		src = f.boldSrc
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[k] = face
	return face
}

// formatTitle is the heading shown above the meter.
func formatTitle(v int) string {
	return fmt.Sprintf("Current Weight\n%d", v)
}
