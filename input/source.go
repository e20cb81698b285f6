package input

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source collects pending commands for one frame: key presses, the
// background timer, asset change notices and window close. Poll never
// blocks.
type Source struct {
	keys    []ebiten.Key
	ticker  *time.Ticker
	advance <-chan time.Time
	changes <-chan string
}

// NewSource starts the background timer. changes may be nil.
func NewSource(interval time.Duration, changes <-chan string) *Source {
	t := time.NewTicker(interval)
	return &Source{
		keys:    make([]ebiten.Key, 0, 8),
		ticker:  t,
		advance: t.C,
		changes: changes,
	}
}

func (s *Source) Poll(dst []Command) []Command {
	if ebiten.IsWindowBeingClosed() {
		dst = append(dst, Quit{})
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if sym := SymbolForKey(k); sym != SymbolNone {
			dst = append(dst, KeyPress{Symbol: sym})
		}
	}

	return s.drain(dst)
}

// drain takes whatever the timer and watcher channels hold right now.
// Several change notices in one frame collapse into one AssetsChanged.
func (s *Source) drain(dst []Command) []Command {
	select {
	case <-s.advance:
		dst = append(dst, AdvanceBackground{})
	default:
	}

	path := ""
	for s.changes != nil {
		select {
		case p, ok := <-s.changes:
			if !ok {
				s.changes = nil
				continue
			}
			path = p
			continue
		default:
		}
		break
	}
	if path != "" {
		dst = append(dst, AssetsChanged{Path: path})
	}
	return dst
}

func (s *Source) Close() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}
