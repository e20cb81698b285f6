package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNoAssetDir = errors.New("assets: cannot resolve asset directory")

type Category string

const (
	Backgrounds Category = "backgrounds"
	Effects     Category = "effects"
	Music       Category = "music"
)

// Categories lists every asset category in load order.
var Categories = []Category{Backgrounds, Effects, Music}

// Required reports whether an empty category stops the session. Without
// backgrounds the board falls back to a flat fill.
func (c Category) Required() bool {
	return c != Backgrounds
}

type Paths struct {
	Base string
	dirs map[Category]string
}

func (p Paths) Dir(c Category) string {
	if d, ok := p.dirs[c]; ok {
		return d
	}
	return filepath.Join(p.Base, string(c))
}

func (p Paths) Dirs() []string {
	out := make([]string, 0, len(Categories))
	for _, c := range Categories {
		out = append(out, p.Dir(c))
	}
	return out
}

// ResolveBase picks the asset root: override when set, the working
// directory in portable mode, ~/Documents/Auramixer otherwise.
func ResolveBase(override string, portable bool) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	if portable {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoAssetDir, err)
		}
		return wd, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoAssetDir, err)
	}
	return filepath.Join(home, "Documents", "Auramixer"), nil
}

// Setup creates the category directories under base. firstRun is true when
// base itself had to be created and announce is set; portable setups
// create folders in place and never announce.
func Setup(base string, announce bool) (Paths, bool, error) {
	_, statErr := os.Stat(base)
	existed := statErr == nil

	p := Paths{Base: base, dirs: make(map[Category]string, len(Categories))}
	for _, c := range Categories {
		dir := filepath.Join(base, string(c))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Paths{}, false, fmt.Errorf("assets: create %s: %w", dir, err)
		}
		p.dirs[c] = dir
	}
	return p, announce && !existed, nil
}
