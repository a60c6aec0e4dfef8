// Package target decides which windows a run applies to.
package target

import (
	"strings"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/platform"
)

// Window is the read-only view of a window the predicates inspect.
type Window interface {
	Title() (string, error)
	ExecutablePath() (string, error)
}

// Criteria selects windows and carries the offset applied to their sizes.
type Criteria struct {
	// TitleContains matches when the title contains any entry, ignoring case.
	TitleContains []string
	// PathEndsWith matches when the owning executable path ends with any
	// entry, ignoring case.
	PathEndsWith []string
	// Offset is added to a requested size and subtracted from a measurement.
	Offset geometry.Size
}

// Predicate is a fail-closed window filter.
type Predicate func(Window) bool

// Always matches every window.
func Always(Window) bool { return true }

// All matches when every predicate matches, evaluating left to right and
// stopping at the first rejection.
func All(preds ...Predicate) Predicate {
	return func(w Window) bool {
		for _, p := range preds {
			if !p(w) {
				return false
			}
		}
		return true
	}
}

// TitleContains matches windows whose title contains any of subs. An empty
// list matches everything; an unreadable title matches nothing.
func TitleContains(subs []string) Predicate {
	if len(subs) == 0 {
		return Always
	}
	needles := lowerAll(subs)
	return func(w Window) bool {
		title, err := w.Title()
		if err != nil {
			return false
		}
		title = strings.ToLower(title)
		for _, n := range needles {
			if strings.Contains(title, n) {
				return true
			}
		}
		return false
	}
}

// PathEndsWith matches windows whose owning executable path ends with any of
// suffixes. An empty list matches everything; an unresolvable path matches
// nothing.
func PathEndsWith(suffixes []string) Predicate {
	if len(suffixes) == 0 {
		return Always
	}
	needles := lowerAll(suffixes)
	return func(w Window) bool {
		path, err := w.ExecutablePath()
		if err != nil {
			return false
		}
		path = strings.ToLower(path)
		for _, n := range needles {
			if strings.HasSuffix(path, n) {
				return true
			}
		}
		return false
	}
}

// Predicate composes the title check before the more expensive path check.
func (c Criteria) Predicate() Predicate {
	return All(TitleContains(c.TitleContains), PathEndsWith(c.PathEndsWith))
}

// Matches reports whether w satisfies c.
func Matches(w Window, c Criteria) bool {
	return c.Predicate()(w)
}

// IsEmpty reports whether c filters nothing.
func (c Criteria) IsEmpty() bool {
	return len(c.TitleContains) == 0 && len(c.PathEndsWith) == 0
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// Handle is a Window backed by a live platform window. It holds no resources.
type Handle struct {
	Backend platform.Backend
	ID      platform.WindowID
}

func (h Handle) Title() (string, error) {
	return h.Backend.Title(h.ID)
}

func (h Handle) ExecutablePath() (string, error) {
	return h.Backend.ExecutablePath(h.ID)
}
