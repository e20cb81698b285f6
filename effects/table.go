package effects

import (
	"errors"

	"github.com/milk9111/auramixer/audio"
	"github.com/milk9111/auramixer/input"
	"github.com/milk9111/auramixer/pkg/logger"
)

// Firer starts a one-shot sound on a voice that is not a music channel.
type Firer interface {
	Fire(sound *audio.Sound, volume float64) error
}

type Binding struct {
	Symbol input.Symbol
	Name   string
}

// Table maps letter keys to effect sounds. The mapping is fixed when the
// table is built; only the effect volume changes afterwards.
type Table struct {
	log      *logger.Zerolog
	voices   Firer
	sounds   map[input.Symbol]*audio.Sound
	bindings []Binding
	volume   float64
}

// New binds sounds[i] to the i-th letter. Sounds past Z are left unbound.
func New(sounds []*audio.Sound, voices Firer, volume float64, log *logger.Zerolog) *Table {
	t := &Table{
		log:    log,
		voices: voices,
		sounds: make(map[input.Symbol]*audio.Sound, len(sounds)),
		volume: audio.Clamp(volume),
	}
	for i, s := range sounds {
		sym := input.Letter(i)
		if sym == input.SymbolNone {
			log.Warn().Msgf("effect %q has no free key, %d effects max", s.Name, input.LetterCount)
			continue
		}
		t.sounds[sym] = s
		t.bindings = append(t.bindings, Binding{Symbol: sym, Name: s.Name})
	}
	return t
}

// Trigger plays the sound bound to symbol at the current effect volume.
// It reports whether a voice was started.
func (t *Table) Trigger(symbol input.Symbol) bool {
	s, ok := t.sounds[symbol]
	if !ok {
		return false
	}
	if err := t.voices.Fire(s, t.volume); err != nil {
		if errors.Is(err, audio.ErrPoolFull) {
			t.log.Debug().Msgf("effect %q dropped: %v", s.Name, err)
		} else {
			t.log.Error().Msgf("effect %q: %v", s.Name, err)
		}
		return false
	}
	return true
}

func (t *Table) AdjustVolume(delta float64) {
	t.volume = audio.StepVolume(t.volume, delta)
}

func (t *Table) Volume() float64 {
	return t.volume
}

func (t *Table) Lookup(symbol input.Symbol) (*audio.Sound, bool) {
	s, ok := t.sounds[symbol]
	return s, ok
}

func (t *Table) Len() int {
	return len(t.sounds)
}

// Bindings lists symbol/sound pairs in key order.
func (t *Table) Bindings() []Binding {
	return t.bindings
}
