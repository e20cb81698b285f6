package audio

import (
	"sync"
	"time"

	"github.com/milk9111/auramixer/pkg/logger"
)

type channelState int

const (
	channelIdle channelState = iota
	channelPlaying
	channelFadingOut
)

func (s channelState) String() string {
	switch s {
	case channelPlaying:
		return "playing"
	case channelFadingOut:
		return "fading"
	default:
		return "idle"
	}
}

// Channel is a single music output slot. It plays one looping track at a
// time and owns the linear volume envelope for fade-in and fade-out.
//
// The envelope is advanced by the engine's timeline through Advance; the
// frame loop only issues commands and polls IsBusy.
type Channel struct {
	mu    sync.Mutex
	id    int
	log   *logger.Zerolog
	clock func() time.Time

	track  *Track
	player Player
	state  channelState

	volume  float64
	level   float64
	env     ramp
	ramping bool
}

func NewChannel(id int, log *logger.Zerolog, clock func() time.Time) *Channel {
	if clock == nil {
		clock = time.Now
	}
	return &Channel{
		id:     id,
		log:    log,
		clock:  clock,
		volume: 1,
	}
}

func (c *Channel) ID() int {
	return c.id
}

// Play binds track and starts it, ramping from silence to the channel
// volume over fadeIn. An unusable track leaves the channel untouched.
func (c *Channel) Play(track *Track, loop bool, fadeIn time.Duration) {
	if track == nil {
		return
	}
	p, err := track.Open(loop)
	if err != nil {
		c.log.Error().Msgf("channel %d: open %q: %v", c.id, track.Name, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseLocked()
	c.track = track
	c.player = p
	c.state = channelPlaying

	if fadeIn > 0 {
		c.level = 0
		c.env = ramp{from: 0, to: c.volume, start: c.clock(), dur: fadeIn}
		c.ramping = true
	} else {
		c.level = c.volume
		c.ramping = false
	}

	p.SetVolume(c.level)
	p.Play()
}

// FadeOut ramps the current level to zero over d and releases the player
// when the ramp completes. Idle or already fading channels are left alone.
func (c *Channel) FadeOut(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != channelPlaying {
		return
	}
	if d <= 0 {
		c.releaseLocked()
		return
	}

	now := c.clock()
	c.env = ramp{from: c.levelLocked(now), to: 0, start: now, dur: d}
	c.ramping = true
	c.state = channelFadingOut
}

// SetVolume changes the channel target. A steady channel jumps to it; a
// fade-in keeps its end time and converges on the new target instead.
func (c *Channel) SetVolume(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.volume = Clamp(v)
	if c.state != channelPlaying {
		return
	}

	if !c.ramping {
		c.level = c.volume
		c.player.SetVolume(c.level)
		return
	}

	now := c.clock()
	end := c.env.end()
	if !now.Before(end) {
		c.ramping = false
		c.level = c.volume
		c.player.SetVolume(c.level)
		return
	}
	c.env = ramp{from: c.env.at(now), to: c.volume, start: now, dur: end.Sub(now)}
}

// Stop releases the player at once, whatever the channel is doing.
func (c *Channel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
}

func (c *Channel) IsBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state != channelIdle
}

// Advance applies the envelope at now. Only the engine calls it.
func (c *Channel) Advance(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.player == nil {
		return
	}

	if !c.ramping {
		if !c.player.IsPlaying() {
			c.releaseLocked()
		}
		return
	}

	c.level = c.env.at(now)
	c.player.SetVolume(c.level)
	if !c.env.done(now) {
		return
	}
	c.ramping = false
	if c.state == channelFadingOut {
		c.releaseLocked()
	}
}

func (c *Channel) Volume() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.volume
}

func (c *Channel) Level() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

// TrackName is empty when nothing is bound.
func (c *Channel) TrackName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.track == nil {
		return ""
	}
	return c.track.Name
}

func (c *Channel) State() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.String()
}

func (c *Channel) levelLocked(now time.Time) float64 {
	if c.ramping {
		return c.env.at(now)
	}
	return c.level
}

func (c *Channel) releaseLocked() {
	if c.player != nil {
		c.player.Pause()
		if err := c.player.Close(); err != nil {
			c.log.Error().Msgf("channel %d: close player: %v", c.id, err)
		}
	}
	c.player = nil
	c.track = nil
	c.state = channelIdle
	c.level = 0
	c.ramping = false
}
