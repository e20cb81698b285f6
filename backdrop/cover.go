package backdrop

import (
	"image"

	"golang.org/x/image/draw"
)

// CoverRect computes how a srcW x srcH image is scaled to cover a dstW x dstH
// display: the aspect ratio is kept, the short dimension matches the
// display, and the overflow is cropped symmetrically around the center.
func CoverRect(srcW, srcH, dstW, dstH int) (scaledW, scaledH int, crop image.Point) {
	if srcW <= 0 || srcH <= 0 || dstW <= 0 || dstH <= 0 {
		return 0, 0, image.Point{}
	}

	// srcW/srcH > dstW/dstH, compared without floating point.
	if srcW*dstH > dstW*srcH {
		scaledH = dstH
		scaledW = dstH * srcW / srcH
	} else {
		scaledW = dstW
		scaledH = dstW * srcH / srcW
	}
	if scaledW < dstW {
		scaledW = dstW
	}
	if scaledH < dstH {
		scaledH = dstH
	}

	crop = image.Pt((scaledW-dstW)/2, (scaledH-dstH)/2)
	return scaledW, scaledH, crop
}

// Cover pre-scales src to exactly w x h using CoverRect. It runs once per
// image at load time.
func Cover(src image.Image, w, h int) *image.RGBA {
	if src == nil || w <= 0 || h <= 0 {
		return nil
	}
	b := src.Bounds()
	sw, sh, crop := CoverRect(b.Dx(), b.Dy(), w, h)
	if sw == 0 {
		return nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, sw, sh))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, draw.Src, nil)

	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, out.Bounds(), scaled, crop, draw.Src)
	return out
}
