package x11

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/motif"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// Extents are the decoration sizes the window manager reports around a client
type Extents struct {
	Left, Right, Top, Bottom int
}

// Horizontal returns the combined left and right decoration width
func (e Extents) Horizontal() int { return e.Left + e.Right }

// Vertical returns the combined top and bottom decoration height
func (e Extents) Vertical() int { return e.Top + e.Bottom }

// Decorations mirrors the Motif decoration bits winfit cares about
type Decorations struct {
	Border       bool
	ResizeHandle bool
	Title        bool
}

// ClientList returns the managed top-level windows in mapping order
func (c *Connection) ClientList() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to read _NET_CLIENT_LIST: %w", err)
	}
	return clients, nil
}

// WindowTitle prefers _NET_WM_NAME and falls back to WM_NAME
func (c *Connection) WindowTitle(windowID xproto.Window) (string, error) {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil && title != "" {
		return title, nil
	}

	title, err2 := icccm.WmNameGet(c.XUtil, windowID)
	if err2 == nil {
		return title, nil
	}
	if err != nil {
		return "", err
	}
	return "", err2
}

// ExecutablePath resolves _NET_WM_PID to the process image through /proc
func (c *Connection) ExecutablePath(windowID xproto.Window) (string, error) {
	pid, err := ewmh.WmPidGet(c.XUtil, windowID)
	if err != nil {
		return "", fmt.Errorf("failed to read _NET_WM_PID: %w", err)
	}
	path, err := os.Readlink(fmt.Sprintf("/proc/%d/exe", pid))
	if err != nil {
		return "", err
	}
	// A replaced binary still resolves, with a marker appended.
	return strings.TrimSuffix(path, " (deleted)"), nil
}

// ClientGeometry returns the size of the client window itself
func (c *Connection) ClientGeometry(windowID xproto.Window) (width, height int, err error) {
	geom, err := xwindow.New(c.XUtil, windowID).Geometry()
	if err != nil {
		return 0, 0, err
	}
	return geom.Width(), geom.Height(), nil
}

// GetFrameExtents returns the window decoration sizes (if available)
func (c *Connection) GetFrameExtents(windowID xproto.Window) Extents {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil {
		// No frame extents available (undecorated or no EWMH window manager).
		return Extents{}
	}

	return Extents{
		Left:   int(extents.Left),
		Right:  int(extents.Right),
		Top:    int(extents.Top),
		Bottom: int(extents.Bottom),
	}
}

// GetDecorations reads _MOTIF_WM_HINTS. Windows without hints are fully decorated.
func (c *Connection) GetDecorations(windowID xproto.Window) Decorations {
	// A missing or malformed property yields nil hints.
	hints, _ := motif.WmHintsGet(c.XUtil, windowID)
	return decorationsFromHints(hints)
}

// SetDecorations rewrites the decoration field of _MOTIF_WM_HINTS, keeping
// the function, input and status fields
func (c *Connection) SetDecorations(windowID xproto.Window, d Decorations) error {
	hints, _ := motif.WmHintsGet(c.XUtil, windowID)
	if err := motif.WmHintsSet(c.XUtil, windowID, hintsWithDecorations(hints, d)); err != nil {
		return fmt.Errorf("failed to set _MOTIF_WM_HINTS: %w", err)
	}
	return nil
}

// decorationsFromHints decodes the decoration field. A set DecorationAll bit
// inverts the meaning of the others, which then list exclusions.
func decorationsFromHints(hints *motif.Hints) Decorations {
	if hints == nil || hints.Flags&motif.HintDecorations == 0 {
		return Decorations{Border: true, ResizeHandle: true, Title: true}
	}
	has := func(bit uint) bool { return hints.Decoration&bit != 0 }
	if has(motif.DecorationAll) {
		return Decorations{
			Border:       !has(motif.DecorationBorder),
			ResizeHandle: !has(motif.DecorationResizeH),
			Title:        !has(motif.DecorationTitle),
		}
	}
	return Decorations{
		Border:       has(motif.DecorationBorder),
		ResizeHandle: has(motif.DecorationResizeH),
		Title:        has(motif.DecorationTitle),
	}
}

// hintsWithDecorations returns a copy of hints (or fresh hints when nil)
// whose decoration field encodes d. A title brings its menu and buttons.
func hintsWithDecorations(hints *motif.Hints, d Decorations) *motif.Hints {
	out := motif.Hints{}
	if hints != nil {
		out = *hints
	}
	out.Flags |= motif.HintDecorations

	if d.Border && d.ResizeHandle && d.Title {
		out.Decoration = motif.DecorationAll
		return &out
	}
	out.Decoration = motif.DecorationNone
	if d.Border {
		out.Decoration |= motif.DecorationBorder
	}
	if d.ResizeHandle {
		out.Decoration |= motif.DecorationResizeH
	}
	if d.Title {
		out.Decoration |= motif.DecorationTitle | motif.DecorationMenu |
			motif.DecorationMinimize | motif.DecorationMaximize
	}
	return &out
}

// SetBorderPixel sets the core border color of the client window
func (c *Connection) SetBorderPixel(windowID xproto.Window, pixel uint32) error {
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.CwBorderPixel,
		[]uint32{pixel},
	).Check()
}

// ResizeClient resizes the client area without moving the window
func (c *Connection) ResizeClient(windowID xproto.Window, width, height int) error {
	// Maximized windows ignore size requests. Windows without
	// _NET_WM_STATE are left as they are.
	_ = c.unmaximizeWindow(windowID)

	// Use EWMH resize for better WM compatibility
	ewmhErr := ewmh.ResizeWindow(c.XUtil, windowID, width, height)
	if ewmhErr == nil {
		return nil
	}

	// Fallback to a checked ConfigureWindow on the client
	err := xproto.ConfigureWindowChecked(
		c.XUtil.Conn(),
		windowID,
		xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(width), uint32(height)},
	).Check()
	if err != nil {
		return fmt.Errorf("failed to resize window %d: %w", windowID, errors.Join(ewmhErr, err))
	}
	return nil
}

const netWMStateRemove = 0

// unmaximizeWindow removes maximized state from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}

	for _, state := range states {
		switch state {
		case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
			if err := ewmh.WmStateReq(c.XUtil, windowID, netWMStateRemove, state); err != nil {
				return err
			}
		}
	}

	return nil
}
