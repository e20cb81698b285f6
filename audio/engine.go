package audio

import (
	"context"
	"time"

	"github.com/milk9111/auramixer/pkg/logger"
)

const defaultEngineTick = 10 * time.Millisecond

// Engine is the audio timeline: it owns the two music channels and the
// effect voices, and advances fade envelopes independently of the frame
// loop.
type Engine struct {
	log    *logger.Zerolog
	clock  func() time.Time
	tick   time.Duration
	music  [2]*Channel
	voices *Voices
}

func NewEngine(voices int, log *logger.Zerolog) *Engine {
	return newEngine(voices, log, time.Now)
}

func newEngine(voices int, log *logger.Zerolog, clock func() time.Time) *Engine {
	return &Engine{
		log:    log,
		clock:  clock,
		tick:   defaultEngineTick,
		music:  [2]*Channel{NewChannel(0, log, clock), NewChannel(1, log, clock)},
		voices: NewVoices(voices),
	}
}

func (e *Engine) Channels() [2]*Channel {
	return e.music
}

func (e *Engine) Voices() *Voices {
	return e.voices
}

// Run advances envelopes until ctx is done.
func (e *Engine) Run(ctx context.Context) {
	t := time.NewTicker(e.tick)
	defer t.Stop()

	e.log.Debug().Msgf("audio engine started, tick %s", e.tick)
	for {
		select {
		case <-ctx.Done():
			e.log.Debug().Msg("audio engine stopped")
			return
		case <-t.C:
			e.Advance(e.clock())
		}
	}
}

func (e *Engine) Advance(now time.Time) {
	for _, c := range e.music {
		c.Advance(now)
	}
	e.voices.Reap()
}

// Close releases every player immediately.
func (e *Engine) Close() {
	for _, c := range e.music {
		c.Stop()
	}
	e.voices.StopAll()
}
