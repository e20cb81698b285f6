package input

import (
	"testing"
	"time"
)

func newTestSource(changes chan string) (*Source, chan time.Time) {
	advance := make(chan time.Time, 1)
	return &Source{advance: advance, changes: changes}, advance
}

func TestSourceDrainTimer(t *testing.T) {
	s, advance := newTestSource(nil)

	if got := s.drain(nil); len(got) != 0 {
		t.Fatalf("expected nothing pending, got %v", got)
	}

	advance <- time.Now()
	got := s.drain(nil)
	if len(got) != 1 {
		t.Fatalf("expected one command, got %v", got)
	}
	if _, ok := got[0].(AdvanceBackground); !ok {
		t.Fatalf("expected AdvanceBackground, got %T", got[0])
	}
}

func TestSourceDrainCoalescesChanges(t *testing.T) {
	changes := make(chan string, 4)
	s, _ := newTestSource(changes)

	changes <- "music/a.wav"
	changes <- "music/b.wav"
	changes <- "effects/c.wav"

	got := s.drain(nil)
	if len(got) != 1 {
		t.Fatalf("expected a single notice, got %v", got)
	}
	c, ok := got[0].(AssetsChanged)
	if !ok || c.Path != "effects/c.wav" {
		t.Fatalf("expected a notice for the last path, got %#v", got[0])
	}

	if got := s.drain(nil); len(got) != 0 {
		t.Fatalf("change queue should be empty, got %v", got)
	}
}

func TestSourceDrainClosedWatcher(t *testing.T) {
	changes := make(chan string, 1)
	s, _ := newTestSource(changes)
	close(changes)

	if got := s.drain(nil); len(got) != 0 {
		t.Fatalf("closed watcher should produce nothing, got %v", got)
	}
	if s.changes != nil {
		t.Fatalf("closed channel should be dropped")
	}
}
