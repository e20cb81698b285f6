package audio

import (
	"time"

	"github.com/milk9111/auramixer/pkg/logger"
)

type fakePlayer struct {
	playing bool
	volume  float64
	closed  bool
	plays   int
}

func (p *fakePlayer) Play() {
	p.playing = true
	p.plays++
}

func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

func (p *fakePlayer) Close() error {
	p.closed = true
	return nil
}

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// recordingTrack returns a track whose players are appended to *opened.
func recordingTrack(name string, opened *[]*fakePlayer) *Track {
	return NewTrack(name, func(bool) (Player, error) {
		p := &fakePlayer{}
		*opened = append(*opened, p)
		return p, nil
	})
}

func newTestChannel(clock *fakeClock) *Channel {
	return NewChannel(0, logger.NewNop(), clock.Now)
}
