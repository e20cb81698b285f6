package audio

import "sync"

// Voices is a bounded pool of one-shot players. Finished voices are
// released lazily on the next Fire or Reap.
type Voices struct {
	mu     sync.Mutex
	size   int
	active []Player
}

func NewVoices(size int) *Voices {
	if size < 1 {
		size = 1
	}
	return &Voices{
		size:   size,
		active: make([]Player, 0, size),
	}
}

// Fire starts sound at volume on a new voice without fade or loop.
func (v *Voices) Fire(sound *Sound, volume float64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.reapLocked()
	if len(v.active) >= v.size {
		return ErrPoolFull
	}

	p, err := sound.Open()
	if err != nil {
		return err
	}
	p.SetVolume(Clamp(volume))
	p.Play()
	v.active = append(v.active, p)
	return nil
}

func (v *Voices) Reap() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.reapLocked()
}

// StopAll silences every voice immediately.
func (v *Voices) StopAll() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, p := range v.active {
		p.Pause()
		_ = p.Close()
	}
	v.active = v.active[:0]
}

func (v *Voices) Active() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.active)
}

func (v *Voices) Size() int {
	return v.size
}

func (v *Voices) reapLocked() {
	keep := v.active[:0]
	for _, p := range v.active {
		if p.IsPlaying() {
			keep = append(keep, p)
			continue
		}
		_ = p.Close()
	}
	for i := len(keep); i < len(v.active); i++ {
		v.active[i] = nil
	}
	v.active = keep
}
