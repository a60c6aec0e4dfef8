package platform

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/1broseidon/winfit/internal/geometry"
)

var (
	// ErrUnsupported is returned by a backend for an operation the window
	// system cannot express (for example corner rounding on X11).
	ErrUnsupported = errors.New("operation not supported by this window system")
	// ErrUnsupportedPlatform is returned by New on operating systems without a backend.
	ErrUnsupportedPlatform = errors.New("no window backend for this platform")
	// ErrExtentOutOfRange is returned by Resize for an extent the window
	// system's coordinate type cannot hold.
	ErrExtentOutOfRange = errors.New("extent out of range")
)

// checkExtent rejects sizes with a component above limit.
func checkExtent(s geometry.Size, limit uint) error {
	if s.Width > limit || s.Height > limit {
		return fmt.Errorf("%w: %s exceeds %d", ErrExtentOutOfRange, s, limit)
	}
	return nil
}

// WindowID is a platform-neutral, non-owning reference to a top-level window.
// It is only meaningful while the enumeration that produced it is running.
type WindowID uintptr

func (id WindowID) String() string {
	return fmt.Sprintf("0x%x", uintptr(id))
}

// CornerPreference controls how the compositor rounds window corners.
type CornerPreference int

const (
	CornerDefault CornerPreference = iota
	CornerDoNotRound
	CornerRound
	CornerRoundSmall
)

var cornerNames = map[CornerPreference]string{
	CornerDefault:    "default",
	CornerDoNotRound: "do-not-round",
	CornerRound:      "round",
	CornerRoundSmall: "round-small",
}

// CornerPreferenceNames lists the accepted corner preference spellings.
func CornerPreferenceNames() []string {
	return []string{"default", "do-not-round", "round", "round-small"}
}

func (c CornerPreference) String() string {
	if name, ok := cornerNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CornerPreference(%d)", int(c))
}

// ParseCornerPreference accepts the kebab-case names, case-insensitively.
// "donotround" and "roundsmall" are accepted as aliases.
func ParseCornerPreference(s string) (CornerPreference, error) {
	switch strings.ToLower(s) {
	case "default":
		return CornerDefault, nil
	case "do-not-round", "donotround":
		return CornerDoNotRound, nil
	case "round":
		return CornerRound, nil
	case "round-small", "roundsmall":
		return CornerRoundSmall, nil
	}
	return 0, fmt.Errorf("invalid corner preference %q (expected one of %s)", s, strings.Join(CornerPreferenceNames(), ", "))
}

// Color is a packed 0x00BBGGRR color value.
type Color uint32

// ParseColor parses a packed color. Decimal, 0x hex and 0o octal literals are accepted.
func ParseColor(s string) (Color, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid border color %q: %w", s, err)
	}
	return Color(v), nil
}

func (c Color) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// RGB splits the packed value into its channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16)
}

// Backend abstracts the window-system operations the transform engine needs.
//
// All calls are synchronous. Title and ExecutablePath failures are expected
// for windows owned by other users or by processes that already exited.
type Backend interface {
	// Windows snapshots the top-level windows of the session. The returned
	// sequence is finite and can only be ranged over once.
	Windows() (iter.Seq[WindowID], error)
	Title(id WindowID) (string, error)
	ExecutablePath(id WindowID) (string, error)

	FrameStyle(id WindowID) (FrameStyle, error)
	// SetFrameStyle writes the style and makes the window system recompute
	// the non-client frame before returning.
	SetFrameStyle(id WindowID, style FrameStyle) error
	SetBorderColor(id WindowID, color Color) error
	SetCornerPreference(id WindowID, pref CornerPreference) error

	// ClientSize is the extent of the content area.
	ClientSize(id WindowID) (geometry.Size, error)
	// WindowSize is the outer extent including the frame.
	WindowSize(id WindowID) (geometry.Size, error)
	// Resize sets the outer extent without moving the window or changing
	// its stacking order.
	Resize(id WindowID, outer geometry.Size) error

	Close() error
}
