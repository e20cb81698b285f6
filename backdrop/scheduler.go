package backdrop

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	MaxBlend         = 255
	DefaultBlendStep = 5
	DefaultInterval  = 10 * time.Second
)

const noImage = -1

type State int

const (
	Steady State = iota
	Transitioning
)

func (s State) String() string {
	if s == Transitioning {
		return "transitioning"
	}
	return "steady"
}

// Scheduler cycles pre-scaled background images. Advance starts a
// transition to the next image; Tick moves the blend once per frame and
// commits the incoming image when the blend reaches MaxBlend.
type Scheduler struct {
	images  []*ebiten.Image
	current int
	next    int
	blend   int
	step    int
	fill    color.Color
}

// New builds a scheduler over images, which must already match the display
// size. With no images Draw fills the frame with fill.
func New(images []*ebiten.Image, step int, fill color.Color) *Scheduler {
	if step <= 0 {
		step = DefaultBlendStep
	}
	if fill == nil {
		fill = color.Black
	}
	return &Scheduler{
		images: images,
		next:   noImage,
		step:   step,
		fill:   fill,
	}
}

// SetImages swaps the image set and returns to Steady on the first image.
func (s *Scheduler) SetImages(images []*ebiten.Image) {
	s.images = images
	s.current = 0
	s.next = noImage
	s.blend = 0
}

// Advance begins a transition to the following image. While a transition is
// running the outgoing image stays put and the target moves one further.
func (s *Scheduler) Advance() {
	n := len(s.images)
	if n < 2 {
		return
	}
	base := s.current
	if s.next != noImage {
		base = s.next
	}
	s.next = (base + 1) % n
	s.blend = 0
}

func (s *Scheduler) Tick() {
	if s.next == noImage {
		return
	}
	s.blend += s.step
	if s.blend < MaxBlend {
		return
	}
	s.blend = MaxBlend
	s.current = s.next
	s.next = noImage
}

// layer is one image draw of a frame.
type layer struct {
	index    int
	alpha    float32
	additive bool
}

// weights returns the outgoing and incoming alpha for blend. They always
// sum to one, so the additive composite is a linear interpolation.
func weights(blend int) (out, in float32) {
	if blend <= 0 {
		return 1, 0
	}
	if blend >= MaxBlend {
		return 0, 1
	}
	in = float32(blend) / MaxBlend
	return 1 - in, in
}

// frame lists the draws for the current state. With no images the frame is
// the fill color alone.
func (s *Scheduler) frame() []layer {
	if len(s.images) == 0 {
		return nil
	}
	if s.next == noImage {
		return []layer{{index: s.current, alpha: 1}}
	}
	out, in := weights(s.blend)
	return []layer{
		{index: s.current, alpha: out},
		{index: s.next, alpha: in, additive: true},
	}
}

// Draw renders the current frame. During a transition the outgoing image is
// drawn at MaxBlend-blend and the incoming one is added at blend, which
// gives an exact linear cross-dissolve.
func (s *Scheduler) Draw(dst *ebiten.Image) {
	layers := s.frame()
	if len(layers) == 0 {
		dst.Fill(s.fill)
		return
	}
	if len(layers) > 1 {
		dst.Clear()
	}

	for _, l := range layers {
		img := s.images[l.index]
		if img == nil {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		if l.alpha < 1 {
			op.ColorScale.ScaleAlpha(l.alpha)
		}
		if l.additive {
			op.Blend = ebiten.BlendLighter
		}
		dst.DrawImage(img, op)
	}
}

func (s *Scheduler) State() State {
	if s.next == noImage {
		return Steady
	}
	return Transitioning
}

func (s *Scheduler) Blend() int {
	return s.blend
}

func (s *Scheduler) Current() int {
	return s.current
}

// Next returns the incoming image index, or false when Steady.
func (s *Scheduler) Next() (int, bool) {
	if s.next == noImage {
		return 0, false
	}
	return s.next, true
}

func (s *Scheduler) Len() int {
	return len(s.images)
}
