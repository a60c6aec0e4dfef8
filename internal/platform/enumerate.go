package platform

import (
	"iter"
	"sync/atomic"
)

// Snapshot returns a sequence that yields ids one at a time and can only be
// consumed once. A second range, or a range after an early break, yields
// nothing.
func Snapshot(ids []WindowID) iter.Seq[WindowID] {
	var used atomic.Bool
	return func(yield func(WindowID) bool) {
		if used.Swap(true) {
			return
		}
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}
