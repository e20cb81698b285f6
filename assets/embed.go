package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/auramixer/backdrop"
)

//go:embed placeholder.png
var placeholderPNG []byte

// PlaceholderImage decodes the embedded placeholder background.
func PlaceholderImage() (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(placeholderPNG))
	if err != nil {
		return nil, fmt.Errorf("embed: decode placeholder: %w", err)
	}
	return img, nil
}

// Placeholder returns the placeholder scaled to cover a w x h display. It
// stands in when the backgrounds folder is empty.
func Placeholder(w, h int) (*ebiten.Image, error) {
	img, err := PlaceholderImage()
	if err != nil {
		return nil, err
	}
	scaled := backdrop.Cover(img, w, h)
	if scaled == nil {
		return nil, fmt.Errorf("embed: scale placeholder to %dx%d", w, h)
	}
	return ebiten.NewImageFromImage(scaled), nil
}
