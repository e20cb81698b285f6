package audio

import (
	"context"
	"testing"
	"time"

	"github.com/milk9111/auramixer/pkg/logger"
)

func TestEngineAdvanceDrivesBothChannels(t *testing.T) {
	clock := newFakeClock()
	e := newEngine(4, logger.NewNop(), clock.Now)
	chans := e.Channels()

	var opened []*fakePlayer
	track := recordingTrack("calm", &opened)
	chans[0].Play(track, true, 0)
	chans[1].Play(track, true, fade)
	chans[0].FadeOut(fade)

	e.Advance(clock.Add(fade))
	if chans[0].IsBusy() {
		t.Fatalf("channel 0 should have finished fading out")
	}
	if !chans[1].IsBusy() || !approx(chans[1].Level(), 1) {
		t.Fatalf("channel 1 should be at full level, got %v", chans[1].Level())
	}
}

func TestEngineRunStopsOnCancel(t *testing.T) {
	e := NewEngine(1, logger.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		e.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("engine did not stop after cancel")
	}
}

func TestEngineCloseReleasesFadingChannels(t *testing.T) {
	clock := newFakeClock()
	e := newEngine(2, logger.NewNop(), clock.Now)
	chans := e.Channels()

	var opened []*fakePlayer
	track := recordingTrack("calm", &opened)
	chans[0].Play(track, true, fade)
	chans[1].Play(track, true, 0)
	chans[1].FadeOut(fade)
	e.Advance(clock.Add(fade / 2))

	sound := NewSound("boom", func() (Player, error) {
		p := &fakePlayer{}
		opened = append(opened, p)
		return p, nil
	})
	if err := e.Voices().Fire(sound, 1); err != nil {
		t.Fatalf("fire: %v", err)
	}

	e.Close()

	for i, c := range chans {
		if c.IsBusy() {
			t.Fatalf("channel %d still busy after close", i)
		}
	}
	for i, p := range opened {
		if !p.closed || p.playing {
			t.Fatalf("player %d not released: closed=%v playing=%v", i, p.closed, p.playing)
		}
	}
}
