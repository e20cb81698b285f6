package audio

import "errors"

var (
	ErrNoSource          = errors.New("audio: no source")
	ErrPoolFull          = errors.New("audio: voice pool full")
	ErrUnsupportedFormat = errors.New("audio: unsupported format")
)

// Player is the part of an ebiten *audio.Player a channel or voice drives.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Close() error
}

// Track is a named music source. Every Open returns a fresh player, so
// both music channels may hold the same track at once.
type Track struct {
	Name string
	open func(loop bool) (Player, error)
}

func NewTrack(name string, open func(loop bool) (Player, error)) *Track {
	return &Track{Name: name, open: open}
}

func (t *Track) Open(loop bool) (Player, error) {
	if t == nil || t.open == nil {
		return nil, ErrNoSource
	}
	return t.open(loop)
}

// Sound is a named one-shot effect source.
type Sound struct {
	Name string
	open func() (Player, error)
}

func NewSound(name string, open func() (Player, error)) *Sound {
	return &Sound{Name: name, open: open}
}

func (s *Sound) Open() (Player, error) {
	if s == nil || s.open == nil {
		return nil, ErrNoSource
	}
	return s.open()
}
