package board

import (
	"github.com/milk9111/auramixer/assets"
	"github.com/milk9111/auramixer/audio"
	"github.com/milk9111/auramixer/backdrop"
	"github.com/milk9111/auramixer/effects"
	"github.com/milk9111/auramixer/input"
	"github.com/milk9111/auramixer/mixer"
	"github.com/milk9111/auramixer/pkg/logger"
)

// Voices is the effect pool as the board sees it: effects fire on it and
// the stop key silences it.
type Voices interface {
	effects.Firer
	StopAll()
}

// ReloadFunc decodes the asset folders again. The returned banner is empty
// when the load is usable.
type ReloadFunc func() (*assets.Bundle, assets.Report, string)

type Options struct {
	Mixer      *mixer.Mixer
	Voices     Voices
	Scheduler  *backdrop.Scheduler
	Bundle     *assets.Bundle
	Banner     string
	Reload     ReloadFunc
	VolumeStep float64
	Volume     float64
	Log        *logger.Zerolog
}

// Board owns the session state the key map drives. It is only touched from
// the frame loop.
type Board struct {
	log       *logger.Zerolog
	mixer     *mixer.Mixer
	voices    Voices
	effects   *effects.Table
	scheduler *backdrop.Scheduler
	reload    ReloadFunc
	step      float64

	overlay bool
	banner  string
	stale   bool
	dirty   bool
}

// staleNotice is shown once the asset folders changed since the last load.
const staleNotice = "Asset folders changed. Press F5 to reload."

func New(opts Options) *Board {
	var sounds []*audio.Sound
	if opts.Bundle != nil {
		sounds = opts.Bundle.Effects
	}
	return &Board{
		log:       opts.Log,
		mixer:     opts.Mixer,
		voices:    opts.Voices,
		effects:   effects.New(sounds, opts.Voices, opts.Volume, opts.Log),
		scheduler: opts.Scheduler,
		reload:    opts.Reload,
		step:      opts.VolumeStep,
		banner:    opts.Banner,
		dirty:     true,
	}
}

// Step dispatches every command of one frame, then advances the
// background blend once. It reports whether the session should end.
func (b *Board) Step(cmds []input.Command) bool {
	quit := false
	for _, cmd := range cmds {
		if b.Dispatch(cmd) {
			quit = true
		}
	}
	b.scheduler.Tick()
	return quit
}

func (b *Board) Dispatch(cmd input.Command) bool {
	switch c := cmd.(type) {
	case input.Quit:
		return true
	case input.AdvanceBackground:
		b.scheduler.Advance()
	case input.AssetsChanged:
		b.assetsChanged(c.Path)
	case input.KeyPress:
		return b.press(c.Symbol)
	}
	return false
}

func (b *Board) press(s input.Symbol) bool {
	action := input.Resolve(s)
	switch action.Kind {
	case input.ActionEffect:
		b.effects.Trigger(s)
		return false
	case input.ActionTrack:
		b.mixer.SwitchTrack(action.Index)
	case input.ActionStopAll:
		b.mixer.StopAll()
		b.voices.StopAll()
	case input.ActionMusicUp:
		b.mixer.AdjustVolume(b.step)
	case input.ActionMusicDown:
		b.mixer.AdjustVolume(-b.step)
	case input.ActionEffectUp:
		b.effects.AdjustVolume(b.step)
	case input.ActionEffectDown:
		b.effects.AdjustVolume(-b.step)
	case input.ActionToggleOverlay:
		b.overlay = !b.overlay
	case input.ActionReload:
		b.Reload()
	case input.ActionQuit:
		return true
	default:
		return false
	}
	b.dirty = true
	return false
}

// assetsChanged records that the folders no longer match the loaded set.
// Decoding waits for the reload key so the frame loop never stalls on it.
func (b *Board) assetsChanged(path string) {
	b.log.Info().Msgf("asset folders changed (last: %s)", path)
	if !b.stale {
		b.stale = true
		b.dirty = true
	}
}

// Reload swaps in freshly decoded assets. Music stops, the effect volume
// and the music volume carry over.
func (b *Board) Reload() {
	if b.reload == nil {
		return
	}

	bundle, report, banner := b.reload()
	if bundle == nil {
		b.log.Error().Msg("reload returned no assets")
		return
	}

	b.voices.StopAll()
	b.mixer.SetTracks(bundle.Music)
	b.effects = effects.New(bundle.Effects, b.voices, b.effects.Volume(), b.log)
	b.scheduler.SetImages(bundle.Backgrounds)
	b.banner = banner
	b.stale = false
	b.dirty = true

	b.log.Info().Msgf("reloaded: %d backgrounds, %d effects, %d tracks, fatal=%t",
		len(bundle.Backgrounds), len(bundle.Effects), len(bundle.Music), report.Fatal)
}

func (b *Board) OverlayVisible() bool {
	return b.overlay
}

// Banner is the load problem, if any, followed by the reload notice when
// the folders changed since.
func (b *Board) Banner() string {
	switch {
	case b.stale && b.banner != "":
		return b.banner + "\n" + staleNotice
	case b.stale:
		return staleNotice
	}
	return b.banner
}

func (b *Board) Effects() *effects.Table {
	return b.effects
}

func (b *Board) Mixer() *mixer.Mixer {
	return b.mixer
}

func (b *Board) Scheduler() *backdrop.Scheduler {
	return b.scheduler
}

// takeDirty reports whether overlay content changed since the last call.
func (b *Board) takeDirty() bool {
	d := b.dirty
	b.dirty = false
	return d
}
