// Package platformtest provides an in-memory platform.Backend for tests.
package platformtest

import (
	"errors"
	"iter"
	"slices"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/platform"
)

// ErrNoWindow is returned for ids that were never added.
var ErrNoWindow = errors.New("invalid window handle")

// DefaultFrame is the border delta of a framed window.
var DefaultFrame = geometry.Size{Width: 16, Height: 39}

// Window is one fake top-level window. A nil-error field set to an error
// makes the matching lookup fail.
type Window struct {
	Title    string
	Path     string
	Client   geometry.Size
	Style    platform.FrameStyle
	Color    *platform.Color
	Corner   *platform.CornerPreference
	TitleErr error
	PathErr  error
}

// Backend models a window system whose frame overhead depends on the frame
// style. Changing the style keeps the outer extent, as Win32 does.
//
// The *Err fields make every call of that operation fail. Calls records the
// styling and sizing operations in the order they ran.
type Backend struct {
	Frame   geometry.Size
	Resized map[platform.WindowID]geometry.Size
	Closed  int

	StyleErr  error
	ColorErr  error
	CornerErr error
	ClientErr error
	OuterErr  error
	ResizeErr error

	Calls       []string
	PathLookups int

	order   []platform.WindowID
	windows map[platform.WindowID]*Window
}

var _ platform.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{
		Frame:   DefaultFrame,
		Resized: make(map[platform.WindowID]geometry.Size),
		windows: make(map[platform.WindowID]*Window),
	}
}

// Add appends a window in enumeration order.
func (b *Backend) Add(id platform.WindowID, w *Window) *Backend {
	b.order = append(b.order, id)
	b.windows[id] = w
	return b
}

// Window returns the fake behind id, or nil.
func (b *Backend) Window(id platform.WindowID) *Window {
	return b.windows[id]
}

func (b *Backend) get(id platform.WindowID) (*Window, error) {
	if w, ok := b.windows[id]; ok {
		return w, nil
	}
	return nil, ErrNoWindow
}

func (b *Backend) border(w *Window) geometry.Size {
	if w.Style.Border || w.Style.ThickFrame || w.Style.Caption {
		return b.Frame
	}
	return geometry.Size{}
}

func (b *Backend) Windows() (iter.Seq[platform.WindowID], error) {
	return platform.Snapshot(slices.Clone(b.order)), nil
}

func (b *Backend) Title(id platform.WindowID) (string, error) {
	w, err := b.get(id)
	if err != nil {
		return "", err
	}
	return w.Title, w.TitleErr
}

func (b *Backend) ExecutablePath(id platform.WindowID) (string, error) {
	b.PathLookups++
	w, err := b.get(id)
	if err != nil {
		return "", err
	}
	if w.PathErr != nil {
		return "", w.PathErr
	}
	if w.Path == "" {
		return "", errors.New("access denied")
	}
	return w.Path, nil
}

func (b *Backend) FrameStyle(id platform.WindowID) (platform.FrameStyle, error) {
	b.Calls = append(b.Calls, "FrameStyle")
	if b.StyleErr != nil {
		return platform.FrameStyle{}, b.StyleErr
	}
	w, err := b.get(id)
	if err != nil {
		return platform.FrameStyle{}, err
	}
	return w.Style, nil
}

func (b *Backend) SetFrameStyle(id platform.WindowID, style platform.FrameStyle) error {
	b.Calls = append(b.Calls, "SetFrameStyle")
	w, err := b.get(id)
	if err != nil {
		return err
	}
	outer := w.Client.Add(b.border(w))
	w.Style = style
	w.Client = outer.Sub(b.border(w))
	return nil
}

func (b *Backend) SetBorderColor(id platform.WindowID, color platform.Color) error {
	b.Calls = append(b.Calls, "SetBorderColor")
	if b.ColorErr != nil {
		return b.ColorErr
	}
	w, err := b.get(id)
	if err != nil {
		return err
	}
	w.Color = &color
	return nil
}

func (b *Backend) SetCornerPreference(id platform.WindowID, pref platform.CornerPreference) error {
	b.Calls = append(b.Calls, "SetCornerPreference")
	if b.CornerErr != nil {
		return b.CornerErr
	}
	w, err := b.get(id)
	if err != nil {
		return err
	}
	w.Corner = &pref
	return nil
}

func (b *Backend) ClientSize(id platform.WindowID) (geometry.Size, error) {
	b.Calls = append(b.Calls, "ClientSize")
	if b.ClientErr != nil {
		return geometry.Size{}, b.ClientErr
	}
	w, err := b.get(id)
	if err != nil {
		return geometry.Size{}, err
	}
	return w.Client, nil
}

func (b *Backend) WindowSize(id platform.WindowID) (geometry.Size, error) {
	b.Calls = append(b.Calls, "WindowSize")
	if b.OuterErr != nil {
		return geometry.Size{}, b.OuterErr
	}
	w, err := b.get(id)
	if err != nil {
		return geometry.Size{}, err
	}
	return w.Client.Add(b.border(w)), nil
}

func (b *Backend) Resize(id platform.WindowID, outer geometry.Size) error {
	b.Calls = append(b.Calls, "Resize")
	if b.ResizeErr != nil {
		return b.ResizeErr
	}
	w, err := b.get(id)
	if err != nil {
		return err
	}
	border := b.border(w)
	if !outer.Covers(border) {
		return errors.New("outer extent smaller than frame")
	}
	b.Resized[id] = outer
	w.Client = outer.Sub(border)
	return nil
}

func (b *Backend) Close() error {
	b.Closed++
	return nil
}
