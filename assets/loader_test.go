package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/auramixer/audio"
	"github.com/milk9111/auramixer/pkg/logger"
)

// fakeDecoder accepts any file whose name does not start with "bad".
type fakeDecoder struct{}

func (fakeDecoder) Track(path string) (*audio.Track, error) {
	if err := check(path); err != nil {
		return nil, err
	}
	return audio.NewTrack(filepath.Base(path), nil), nil
}

func (fakeDecoder) Sound(path string) (*audio.Sound, error) {
	if err := check(path); err != nil {
		return nil, err
	}
	return audio.NewSound(filepath.Base(path), nil), nil
}

func (fakeDecoder) Image(path string) (*ebiten.Image, error) {
	if err := check(path); err != nil {
		return nil, err
	}
	return &ebiten.Image{}, nil
}

var errCorrupt = errors.New("corrupt")

func check(path string) error {
	if len(filepath.Base(path)) >= 3 && filepath.Base(path)[:3] == "bad" {
		return errCorrupt
	}
	return nil
}

func setupTree(t *testing.T, files map[Category][]string) Paths {
	t.Helper()
	p, _, err := Setup(t.TempDir(), false)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	for c, names := range files {
		for _, n := range names {
			if err := os.WriteFile(filepath.Join(p.Dir(c), n), []byte("x"), 0o644); err != nil {
				t.Fatalf("write %s: %v", n, err)
			}
		}
	}
	return p
}

func newTestLoader() *Loader {
	return NewLoader(fakeDecoder{}, fakeDecoder{}, logger.NewNop())
}

func TestLoadAllMissing(t *testing.T) {
	p := setupTree(t, nil)
	b, report := newTestLoader().Load(p)

	if len(b.Backgrounds) != 0 || len(b.Effects) != 0 || len(b.Music) != 0 {
		t.Fatalf("expected an empty bundle, got %+v", b)
	}
	if !report.Fatal {
		t.Fatalf("empty effects and music must be fatal")
	}
	for _, c := range Categories {
		if !report.IsMissing(c) {
			t.Fatalf("expected %s to be reported missing", c)
		}
	}
}

func TestLoadSomePresent(t *testing.T) {
	p := setupTree(t, map[Category][]string{
		Music: {"track1.mp3", "track2.ogg"},
	})
	b, report := newTestLoader().Load(p)

	if len(b.Music) != 2 || len(b.Effects) != 0 || len(b.Backgrounds) != 0 {
		t.Fatalf("unexpected bundle sizes %d/%d/%d", len(b.Backgrounds), len(b.Effects), len(b.Music))
	}
	if !report.Fatal {
		t.Fatalf("missing effects must still be fatal")
	}
	if !report.IsMissing(Backgrounds) || !report.IsMissing(Effects) || report.IsMissing(Music) {
		t.Fatalf("unexpected missing set %v", report.Missing)
	}
}

func TestLoadBackgroundsOnlyMissingIsDegraded(t *testing.T) {
	p := setupTree(t, map[Category][]string{
		Effects: {"a.wav"},
		Music:   {"m.wav"},
	})
	_, report := newTestLoader().Load(p)

	if report.Fatal {
		t.Fatalf("missing backgrounds must not be fatal")
	}
	if len(report.Missing) != 1 || report.Missing[0] != Backgrounds {
		t.Fatalf("expected only backgrounds missing, got %v", report.Missing)
	}
}

func TestLoadSkipsBadAndForeignFiles(t *testing.T) {
	p := setupTree(t, map[Category][]string{
		Backgrounds: {"b.png", "c.JPG", "notes.txt"},
		Effects:     {"z.wav", "bad.wav", "a.mp3", "cover.png"},
		Music:       {"song.ogg"},
	})
	b, report := newTestLoader().Load(p)

	if len(b.Backgrounds) != 2 {
		t.Fatalf("expected 2 backgrounds, got %d", len(b.Backgrounds))
	}
	if len(b.Effects) != 2 || b.Effects[0].Name != "a.mp3" || b.Effects[1].Name != "z.wav" {
		t.Fatalf("expected effects sorted by name without bad.wav, got %v", b.Effects)
	}
	if len(report.Errors) != 1 || !errors.Is(report.Errors[0], errCorrupt) {
		t.Fatalf("expected one load error wrapping errCorrupt, got %v", report.Errors)
	}
	if report.Errors[0].Category != Effects {
		t.Fatalf("load error should name its category, got %s", report.Errors[0].Category)
	}
}

func TestSetupFirstRun(t *testing.T) {
	base := filepath.Join(t.TempDir(), "Auramixer")

	p, first, err := Setup(base, true)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if !first {
		t.Fatalf("creating the base directory is a first run")
	}
	for _, dir := range p.Dirs() {
		if st, err := os.Stat(dir); err != nil || !st.IsDir() {
			t.Fatalf("expected directory %s", dir)
		}
	}

	if _, first, _ := Setup(base, true); first {
		t.Fatalf("second setup is not a first run")
	}
	if _, first, _ := Setup(filepath.Join(t.TempDir(), "portable"), false); first {
		t.Fatalf("portable setup never announces")
	}
}

func TestResolveBase(t *testing.T) {
	wd, _ := os.Getwd()
	cases := []struct {
		name     string
		override string
		portable bool
		want     string
	}{
		{"portable", "", true, wd},
		{"override", "/srv/sounds", false, "/srv/sounds"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveBase(tc.override, tc.portable)
			if err != nil || got != tc.want {
				t.Fatalf("expected %q, got %q err=%v", tc.want, got, err)
			}
		})
	}

	t.Setenv("HOME", "/home/user")
	got, err := ResolveBase("", false)
	if err != nil || got != filepath.Join("/home/user", "Documents", "Auramixer") {
		t.Fatalf("unexpected home base %q err=%v", got, err)
	}
}

func TestReportMessage(t *testing.T) {
	p := Paths{Base: "/a"}
	r := Report{Missing: []Category{Effects}, Fatal: true}
	want := "No effects found in /a/effects\nAdd files and press F5 to reload."
	if got := r.Message(p); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if (Report{}).Message(p) != "" {
		t.Fatalf("complete load has no message")
	}
}
