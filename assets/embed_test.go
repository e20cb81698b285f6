package assets

import "testing"

func TestPlaceholderDecodes(t *testing.T) {
	img, err := PlaceholderImage()
	if err != nil {
		t.Fatalf("decode placeholder: %v", err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		t.Fatalf("placeholder is empty: %v", b)
	}
}
