// Package geometry holds the pixel extent type shared by the parser, the
// transform engine and the platform backends.
package geometry

import "fmt"

// Size is a two-dimensional extent in device pixels.
type Size struct {
	Width  uint
	Height uint
}

// Add returns the component-wise sum of s and o.
func (s Size) Add(o Size) Size {
	return Size{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// CheckedAdd is Add that reports false when either component would exceed
// limit or wrap around.
func (s Size) CheckedAdd(o Size, limit uint) (Size, bool) {
	sum := s.Add(o)
	if sum.Width < s.Width || sum.Height < s.Height {
		return Size{}, false
	}
	if sum.Width > limit || sum.Height > limit {
		return Size{}, false
	}
	return sum, true
}

// Sub returns the component-wise difference s - o.
//
// Both components of o must be less than or equal to those of s. Callers only
// subtract internally derived extents (a border delta is never larger than the
// window it was measured from), so underflow panics instead of wrapping.
func (s Size) Sub(o Size) Size {
	if !s.Covers(o) {
		panic(fmt.Sprintf("geometry: %s - %s underflows", s, o))
	}
	return Size{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Covers reports whether every component of s is >= the matching one of o.
func (s Size) Covers(o Size) bool {
	return s.Width >= o.Width && s.Height >= o.Height
}

// IsZero reports whether both components are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// String formats the size as WxH.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// FromRect converts edge coordinates (as returned by Win32 RECT or X11
// geometry replies) into an extent. Inverted rectangles collapse to zero.
func FromRect(left, top, right, bottom int) Size {
	var s Size
	if right > left {
		s.Width = uint(right - left)
	}
	if bottom > top {
		s.Height = uint(bottom - top)
	}
	return s
}
