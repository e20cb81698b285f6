package backdrop

import (
	"image"
	"image/color"
	"testing"
)

func TestCoverRect(t *testing.T) {
	cases := []struct {
		name         string
		srcW, srcH   int
		dstW, dstH   int
		wantW, wantH int
		wantX, wantY int
	}{
		{"same_size", 800, 600, 800, 600, 800, 600, 0, 0},
		{"wide_source", 1600, 600, 800, 600, 1600, 600, 400, 0},
		{"tall_source", 800, 1200, 800, 600, 800, 1200, 0, 300},
		{"small_square", 100, 100, 1920, 1080, 1920, 1920, 0, 420},
		{"degenerate", 0, 10, 800, 600, 0, 0, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, h, crop := CoverRect(tc.srcW, tc.srcH, tc.dstW, tc.dstH)
			if w != tc.wantW || h != tc.wantH {
				t.Fatalf("expected %dx%d, got %dx%d", tc.wantW, tc.wantH, w, h)
			}
			if crop.X != tc.wantX || crop.Y != tc.wantY {
				t.Fatalf("expected crop (%d,%d), got %v", tc.wantX, tc.wantY, crop)
			}
		})
	}
}

func TestCoverKeepsCenter(t *testing.T) {
	// Three vertical bands; covering a square display from a 3:1 source
	// must keep only the middle band.
	src := image.NewRGBA(image.Rect(0, 0, 300, 100))
	bands := []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for x := 0; x < 300; x++ {
		for y := 0; y < 100; y++ {
			src.SetRGBA(x, y, bands[x/100])
		}
	}

	out := Cover(src, 100, 100)
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 100 {
		t.Fatalf("expected 100x100, got %v", out.Bounds())
	}
	got := out.RGBAAt(50, 50)
	if got.G < 200 || got.R > 50 || got.B > 50 {
		t.Fatalf("expected center band to be green, got %v", got)
	}
}

func TestCoverNil(t *testing.T) {
	if Cover(nil, 10, 10) != nil {
		t.Fatalf("nil source should yield nil")
	}
}
