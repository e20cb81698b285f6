package audio

import (
	"errors"
	"testing"
)

func TestVoicesPolyphonyBounded(t *testing.T) {
	var opened []*fakePlayer
	sound := NewSound("boom", func() (Player, error) {
		p := &fakePlayer{}
		opened = append(opened, p)
		return p, nil
	})

	v := NewVoices(2)
	for i := 0; i < 2; i++ {
		if err := v.Fire(sound, 0.7); err != nil {
			t.Fatalf("fire %d: %v", i, err)
		}
	}
	if v.Active() != 2 {
		t.Fatalf("expected 2 active voices, got %d", v.Active())
	}
	if err := v.Fire(sound, 0.7); !errors.Is(err, ErrPoolFull) {
		t.Fatalf("expected ErrPoolFull, got %v", err)
	}

	opened[0].playing = false
	if err := v.Fire(sound, 0.7); err != nil {
		t.Fatalf("fire after a voice finished: %v", err)
	}
	if !opened[0].closed {
		t.Fatalf("finished voice should be closed when reaped")
	}
	for _, p := range opened[1:] {
		if p.volume != 0.7 || !p.playing {
			t.Fatalf("voice should play at 0.7, got playing=%v volume=%v", p.playing, p.volume)
		}
	}
}

func TestVoicesStopAll(t *testing.T) {
	var opened []*fakePlayer
	sound := NewSound("boom", func() (Player, error) {
		p := &fakePlayer{}
		opened = append(opened, p)
		return p, nil
	})

	v := NewVoices(4)
	_ = v.Fire(sound, 1)
	_ = v.Fire(sound, 1)
	v.StopAll()

	if v.Active() != 0 {
		t.Fatalf("expected no active voices, got %d", v.Active())
	}
	for i, p := range opened {
		if p.playing || !p.closed {
			t.Fatalf("voice %d should be stopped and closed", i)
		}
	}
}

func TestVoicesFireNilSound(t *testing.T) {
	v := NewVoices(1)
	if err := v.Fire(nil, 1); !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}
