package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate every file is resampled to at decode time.
const SampleRate = 44100

// Extensions lists the audio file extensions Decoder understands.
var Extensions = []string{".wav", ".mp3", ".ogg"}

// Decoder turns audio files into tracks and sounds backed by ebiten
// players. Files are decoded to PCM once at load time.
type Decoder struct {
	ctx *ebaudio.Context
}

func NewDecoder(ctx *ebaudio.Context) *Decoder {
	return &Decoder{ctx: ctx}
}

func (d *Decoder) Track(path string) (*Track, error) {
	pcm, err := d.decodeFile(path)
	if err != nil {
		return nil, err
	}
	return NewTrack(baseName(path), func(loop bool) (Player, error) {
		r := bytes.NewReader(pcm)
		var src io.Reader = r
		if loop {
			src = ebaudio.NewInfiniteLoop(r, int64(len(pcm)))
		}
		p, err := d.ctx.NewPlayer(src)
		if err != nil {
			return nil, err
		}
		return p, nil
	}), nil
}

func (d *Decoder) Sound(path string) (*Sound, error) {
	pcm, err := d.decodeFile(path)
	if err != nil {
		return nil, err
	}
	return NewSound(baseName(path), func() (Player, error) {
		return d.ctx.NewPlayerFromBytes(pcm), nil
	}), nil
}

func (d *Decoder) decodeFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sr := d.ctx.SampleRate()
	reader := bytes.NewReader(b)

	var stream io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sr, reader)
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sr, reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sr, reader)
	default:
		return nil, fmt.Errorf("decode %q: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read pcm %q: %w", path, err)
	}
	return pcm, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
