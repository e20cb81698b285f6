package assets

import (
	"fmt"
	"strings"
)

// LoadError is a single asset that failed to decode. It is skipped.
type LoadError struct {
	Category Category
	Path     string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Category, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Report summarizes a load. Fatal is set when a required category came up
// empty; Missing lists every empty category.
type Report struct {
	Missing []Category
	Fatal   bool
	Errors  []*LoadError
}

func (r Report) IsMissing(c Category) bool {
	for _, m := range r.Missing {
		if m == c {
			return true
		}
	}
	return false
}

// Message is the user-facing description of missing categories.
func (r Report) Message(p Paths) string {
	if len(r.Missing) == 0 {
		return ""
	}
	var b strings.Builder
	for _, c := range r.Missing {
		fmt.Fprintf(&b, "No %s found in %s\n", c, p.Dir(c))
	}
	if r.Fatal {
		b.WriteString("Add files and press F5 to reload.")
	}
	return strings.TrimRight(b.String(), "\n")
}
