package mixer

import (
	"time"

	"github.com/milk9111/auramixer/audio"
	"github.com/milk9111/auramixer/pkg/logger"
)

// DefaultCrossfade is the shared fade-in and fade-out duration.
const DefaultCrossfade = 2000 * time.Millisecond

const noTrack = -1

// Channel is the playback slot contract the mixer drives.
type Channel interface {
	Play(track *audio.Track, loop bool, fadeIn time.Duration)
	FadeOut(d time.Duration)
	SetVolume(v float64)
	IsBusy() bool
}

// Mixer owns two music channels and crossfades between them. channels[active]
// holds the current track; every successful switch starts the new track on
// the other slot and toggles active.
type Mixer struct {
	log      *logger.Zerolog
	channels [2]Channel
	active   int
	current  int
	tracks   []*audio.Track
	volume   float64
	fade     time.Duration
}

func New(channels [2]Channel, tracks []*audio.Track, volume float64, fade time.Duration, log *logger.Zerolog) *Mixer {
	if fade <= 0 {
		fade = DefaultCrossfade
	}
	m := &Mixer{
		log:      log,
		channels: channels,
		// The first switch lands on channels[0].
		active:  1,
		current: noTrack,
		tracks:  tracks,
		volume:  audio.Clamp(volume),
		fade:    fade,
	}
	for _, c := range m.channels {
		c.SetVolume(m.volume)
	}
	return m
}

// SwitchTrack crossfades to tracks[index]. Repeating the current index,
// passing one out of range or a track that fails to open does nothing.
func (m *Mixer) SwitchTrack(index int) {
	if index < 0 || index >= len(m.tracks) || index == m.current {
		return
	}

	outgoing := m.channels[m.active]
	incoming := m.channels[1-m.active]

	incoming.SetVolume(m.volume)
	incoming.Play(m.tracks[index], true, m.fade)
	if !incoming.IsBusy() {
		m.log.Warn().Msgf("track %d (%s) did not start", index, m.tracks[index].Name)
		return
	}
	if outgoing.IsBusy() {
		outgoing.FadeOut(m.fade)
	}

	m.log.Debug().Msgf("switch track %d -> %d (%s) on channel %d", m.current, index, m.tracks[index].Name, 1-m.active)
	m.current = index
	m.active = 1 - m.active
}

// StopAll fades both channels out. The mixer is logically stopped at once.
func (m *Mixer) StopAll() {
	for _, c := range m.channels {
		c.FadeOut(m.fade)
	}
	m.current = noTrack
}

// AdjustVolume moves the music volume by delta and retargets both channels.
func (m *Mixer) AdjustVolume(delta float64) {
	m.volume = audio.StepVolume(m.volume, delta)
	for _, c := range m.channels {
		c.SetVolume(m.volume)
	}
}

// SetTracks replaces the track list after stopping playback.
func (m *Mixer) SetTracks(tracks []*audio.Track) {
	m.StopAll()
	m.tracks = tracks
}

// Current returns the logically playing track index.
func (m *Mixer) Current() (int, bool) {
	if m.current == noTrack {
		return 0, false
	}
	return m.current, true
}

func (m *Mixer) Active() int {
	return m.active
}

func (m *Mixer) Volume() float64 {
	return m.volume
}

func (m *Mixer) Fade() time.Duration {
	return m.fade
}

func (m *Mixer) Tracks() []*audio.Track {
	return m.tracks
}
