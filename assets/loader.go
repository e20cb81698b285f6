package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/auramixer/audio"
	"github.com/milk9111/auramixer/pkg/logger"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg"}

type AudioDecoder interface {
	Track(path string) (*audio.Track, error)
	Sound(path string) (*audio.Sound, error)
}

type ImageDecoder interface {
	Image(path string) (*ebiten.Image, error)
}

// Bundle is one decoded asset set. It is immutable once returned.
type Bundle struct {
	Backgrounds []*ebiten.Image
	Effects     []*audio.Sound
	Music       []*audio.Track
}

type Loader struct {
	audio  AudioDecoder
	images ImageDecoder
	log    *logger.Zerolog
}

func NewLoader(audio AudioDecoder, images ImageDecoder, log *logger.Zerolog) *Loader {
	return &Loader{audio: audio, images: images, log: log}
}

// Load decodes every category. Files that fail to decode are logged and
// listed in the report; they never abort the load.
func (l *Loader) Load(p Paths) (*Bundle, Report) {
	var (
		b      Bundle
		report Report
	)

	for _, path := range l.list(p.Dir(Backgrounds), imageExtensions) {
		img, err := l.images.Image(path)
		if err != nil {
			report.Errors = append(report.Errors, l.failed(Backgrounds, path, err))
			continue
		}
		b.Backgrounds = append(b.Backgrounds, img)
	}

	for _, path := range l.list(p.Dir(Effects), audio.Extensions) {
		s, err := l.audio.Sound(path)
		if err != nil {
			report.Errors = append(report.Errors, l.failed(Effects, path, err))
			continue
		}
		b.Effects = append(b.Effects, s)
	}

	for _, path := range l.list(p.Dir(Music), audio.Extensions) {
		t, err := l.audio.Track(path)
		if err != nil {
			report.Errors = append(report.Errors, l.failed(Music, path, err))
			continue
		}
		b.Music = append(b.Music, t)
	}

	counts := map[Category]int{
		Backgrounds: len(b.Backgrounds),
		Effects:     len(b.Effects),
		Music:       len(b.Music),
	}
	for _, c := range Categories {
		if counts[c] > 0 {
			continue
		}
		report.Missing = append(report.Missing, c)
		if c.Required() {
			report.Fatal = true
			l.log.Error().Msgf("no %s found in %s", c, p.Dir(c))
			continue
		}
		l.log.Warn().Msgf("no %s found in %s", c, p.Dir(c))
	}

	l.log.Info().Msgf("loaded %d backgrounds, %d effects, %d tracks (%d skipped)",
		counts[Backgrounds], counts[Effects], counts[Music], len(report.Errors))
	return &b, report
}

func (l *Loader) failed(c Category, path string, err error) *LoadError {
	l.log.Warn().Msgf("skip %s %s: %v", c, path, err)
	return &LoadError{Category: c, Path: path, Err: err}
}

// list returns files in dir with one of exts, sorted by name.
func (l *Loader) list(dir string, exts []string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			l.log.Error().Msgf("read %s: %v", dir, err)
		}
		return nil
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !hasExt(e.Name(), exts) {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	return out
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
