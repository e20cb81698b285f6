package backdrop

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestWeights(t *testing.T) {
	cases := []struct {
		blend   int
		wantOut float32
		wantIn  float32
	}{
		{0, 1, 0},
		{5, 1 - 5.0/255, 5.0 / 255},
		{128, 1 - 128.0/255, 128.0 / 255},
		{255, 0, 1},
		{300, 0, 1},
		{-1, 1, 0},
	}
	for _, tc := range cases {
		out, in := weights(tc.blend)
		if !near(out, tc.wantOut) || !near(in, tc.wantIn) {
			t.Fatalf("blend %d: expected (%v, %v), got (%v, %v)", tc.blend, tc.wantOut, tc.wantIn, out, in)
		}
	}

	for b := 0; b <= MaxBlend; b++ {
		out, in := weights(b)
		if !near(out+in, 1) {
			t.Fatalf("blend %d: weights sum to %v", b, out+in)
		}
	}
}

func TestFrameEmptyFallsBackToFill(t *testing.T) {
	s := New(nil, DefaultBlendStep, nil)
	s.Advance()
	s.Tick()

	if layers := s.frame(); len(layers) != 0 {
		t.Fatalf("expected fill only, got %v", layers)
	}
	if s.fill == nil {
		t.Fatalf("empty scheduler needs a fill color")
	}
}

func TestFrameSteady(t *testing.T) {
	s := New(images(3), DefaultBlendStep, nil)

	layers := s.frame()
	if len(layers) != 1 {
		t.Fatalf("expected one layer, got %v", layers)
	}
	if l := layers[0]; l.index != 0 || l.alpha != 1 || l.additive {
		t.Fatalf("steady frame should draw image 0 opaque, got %+v", l)
	}
}

func TestFrameTransitioning(t *testing.T) {
	s := New(images(3), DefaultBlendStep, nil)
	s.Advance()
	for i := 0; i < 20; i++ {
		s.Tick()
	}

	layers := s.frame()
	if len(layers) != 2 {
		t.Fatalf("expected two layers, got %v", layers)
	}
	out, in := layers[0], layers[1]
	if out.index != 0 || out.additive || !near(out.alpha, 1-100.0/255) {
		t.Fatalf("unexpected outgoing layer %+v", out)
	}
	if in.index != 1 || !in.additive || !near(in.alpha, 100.0/255) {
		t.Fatalf("unexpected incoming layer %+v", in)
	}
}
