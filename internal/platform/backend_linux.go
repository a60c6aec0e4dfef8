//go:build linux

package platform

import (
	"fmt"
	"iter"
	"math"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/x11"
)

// LinuxBackend drives X11 clients through EWMH, ICCCM and Motif hints.
type LinuxBackend struct {
	conn *x11.Connection
}

var _ Backend = (*LinuxBackend)(nil)

// New opens a connection to the X server named by $DISPLAY.
func New() (Backend, error) {
	conn, err := x11.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return NewLinuxBackend(conn), nil
}

// NewLinuxBackend wraps an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn}
}

// Windows snapshots _NET_CLIENT_LIST.
func (b *LinuxBackend) Windows() (iter.Seq[WindowID], error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}
	clients, err := conn.ClientList()
	if err != nil {
		return nil, err
	}
	ids := make([]WindowID, 0, len(clients))
	for _, w := range clients {
		ids = append(ids, WindowID(w))
	}
	return Snapshot(ids), nil
}

func (b *LinuxBackend) Title(id WindowID) (string, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}
	return conn.WindowTitle(xproto.Window(id))
}

func (b *LinuxBackend) ExecutablePath(id WindowID) (string, error) {
	conn, err := b.connection()
	if err != nil {
		return "", err
	}
	return conn.ExecutablePath(xproto.Window(id))
}

// FrameStyle maps Motif decorations onto the frame capabilities. X11 has no
// window edge; it always reads as absent.
func (b *LinuxBackend) FrameStyle(id WindowID) (FrameStyle, error) {
	conn, err := b.connection()
	if err != nil {
		return FrameStyle{}, err
	}
	d := conn.GetDecorations(xproto.Window(id))
	return FrameStyle{
		Border:     d.Border,
		ThickFrame: d.ResizeHandle,
		Caption:    d.Title,
	}, nil
}

func (b *LinuxBackend) SetFrameStyle(id WindowID, style FrameStyle) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	err = conn.SetDecorations(xproto.Window(id), x11.Decorations{
		Border:       style.Border,
		ResizeHandle: style.ThickFrame,
		Title:        style.Caption,
	})
	if err != nil {
		return err
	}
	// The window manager reframes asynchronously; a round trip makes the
	// following extent queries far more likely to see the new frame.
	conn.Sync()
	return nil
}

// SetBorderColor sets the core X border pixel, which assumes a TrueColor
// visual with 8 bits per channel.
func (b *LinuxBackend) SetBorderColor(id WindowID, color Color) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	r, g, bl := color.RGB()
	pixel := uint32(r)<<16 | uint32(g)<<8 | uint32(bl)
	return conn.SetBorderPixel(xproto.Window(id), pixel)
}

func (b *LinuxBackend) SetCornerPreference(WindowID, CornerPreference) error {
	return ErrUnsupported
}

func (b *LinuxBackend) ClientSize(id WindowID) (geometry.Size, error) {
	conn, err := b.connection()
	if err != nil {
		return geometry.Size{}, err
	}
	w, h, err := conn.ClientGeometry(xproto.Window(id))
	if err != nil {
		return geometry.Size{}, fmt.Errorf("failed to get geometry of %s: %w", id, err)
	}
	return geometry.Size{Width: uint(w), Height: uint(h)}, nil
}

// WindowSize adds _NET_FRAME_EXTENTS to the client geometry.
func (b *LinuxBackend) WindowSize(id WindowID) (geometry.Size, error) {
	client, err := b.ClientSize(id)
	if err != nil {
		return geometry.Size{}, err
	}
	return client.Add(b.extents(id)), nil
}

// Resize converts the outer extent back to a client extent, since EWMH
// resize requests address the client window.
func (b *LinuxBackend) Resize(id WindowID, outer geometry.Size) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	frame := b.extents(id)
	if !outer.Covers(frame) {
		return fmt.Errorf("outer size %s is smaller than the frame %s", outer, frame)
	}
	client := outer.Sub(frame)
	// Window dimensions are CARD16 on the wire.
	if err := checkExtent(client, math.MaxUint16); err != nil {
		return err
	}
	return conn.ResizeClient(xproto.Window(id), int(client.Width), int(client.Height))
}

func (b *LinuxBackend) Close() error {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
	return nil
}

func (b *LinuxBackend) extents(id WindowID) geometry.Size {
	e := b.conn.GetFrameExtents(xproto.Window(id))
	return geometry.Size{Width: uint(max(e.Horizontal(), 0)), Height: uint(max(e.Vertical(), 0))}
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}
