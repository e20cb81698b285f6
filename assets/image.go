package assets

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/auramixer/backdrop"
)

// ScaledImages decodes background files and pre-scales them to the display.
type ScaledImages struct {
	Width  int
	Height int
}

func (s ScaledImages) Image(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	scaled := backdrop.Cover(img, s.Width, s.Height)
	if scaled == nil {
		return nil, fmt.Errorf("scale %q: empty image", path)
	}
	return ebiten.NewImageFromImage(scaled), nil
}
