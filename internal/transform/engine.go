// Package transform applies frame, color, corner and size changes to matched
// windows, and drives a run over an enumeration.
package transform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/platform"
)

// ErrOffsetExceedsClient is returned in measurement mode when the configured
// offset is larger than the measured client area.
var ErrOffsetExceedsClient = errors.New("offset exceeds client size")

// ErrSizeOutOfRange is returned when the requested size plus offset and
// border does not fit a window system coordinate.
var ErrSizeOutOfRange = errors.New("size out of range")

// maxExtent is the largest outer extent the engine asks a backend for.
// Backends with narrower coordinates reject larger values themselves.
const maxExtent = math.MaxInt32

// Request lists the changes to make. Nil fields are left unchanged; a nil
// Size turns the run into a measurement.
type Request struct {
	Size        *geometry.Size
	Border      *bool
	BorderColor *platform.Color
	Corner      *platform.CornerPreference
}

// Measuring reports whether the request only reads sizes.
func (r Request) Measuring() bool {
	return r.Size == nil
}

// Result describes what Apply did to one window.
type Result struct {
	Window platform.WindowID
	// Client is the client extent measured after styling, before any resize.
	Client geometry.Size
	// Measurement is Client minus the offset; only set when measuring.
	Measurement geometry.Size
	// Outer is the outer extent requested from the window system; only set
	// when resizing.
	Outer   geometry.Size
	Resized bool
}

// Engine applies requests to single windows.
type Engine struct {
	backend platform.Backend
	offset  geometry.Size
	logger  *slog.Logger
}

// NewEngine creates an engine. A nil logger discards.
func NewEngine(backend platform.Backend, offset geometry.Size, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{backend: backend, offset: offset, logger: logger}
}

// Apply runs the styling steps, which are best effort, and then the sizing
// step, whose failures are returned. Styling comes first because a frame
// change alters the border delta the sizing step depends on.
func (e *Engine) Apply(id platform.WindowID, req Request) (Result, error) {
	res := Result{Window: id}

	if req.Border != nil {
		e.toggleBorder(id, *req.Border)
	}
	if req.BorderColor != nil {
		if err := e.backend.SetBorderColor(id, *req.BorderColor); err != nil {
			e.logger.Debug("border color not applied", "window", id, "color", *req.BorderColor, "error", err)
		}
	}
	if req.Corner != nil {
		if err := e.backend.SetCornerPreference(id, *req.Corner); err != nil {
			e.logger.Debug("corner preference not applied", "window", id, "corner", *req.Corner, "error", err)
		}
	}

	client, err := e.backend.ClientSize(id)
	if err != nil {
		return res, fmt.Errorf("window %s: failed to measure client area: %w", id, err)
	}
	res.Client = client

	if req.Measuring() {
		if !client.Covers(e.offset) {
			return res, fmt.Errorf("window %s: %w: client %s, offset %s", id, ErrOffsetExceedsClient, client, e.offset)
		}
		res.Measurement = client.Sub(e.offset)
		return res, nil
	}

	outer, err := e.backend.WindowSize(id)
	if err != nil {
		return res, fmt.Errorf("window %s: failed to measure window: %w", id, err)
	}
	if !outer.Covers(client) {
		return res, fmt.Errorf("window %s: window extent %s is smaller than client extent %s", id, outer, client)
	}
	border := outer.Sub(client)

	inner, ok := req.Size.CheckedAdd(e.offset, maxExtent)
	if ok {
		res.Outer, ok = inner.CheckedAdd(border, maxExtent)
	}
	if !ok {
		return res, fmt.Errorf("window %s: %w: %s plus offset %s and border %s", id, ErrSizeOutOfRange, req.Size, e.offset, border)
	}
	if err := e.backend.Resize(id, res.Outer); err != nil {
		return res, fmt.Errorf("window %s: failed to resize to %s: %w", id, res.Outer, err)
	}
	res.Resized = true

	e.logger.Debug("window resized",
		"window", id,
		"client", client,
		"border", border,
		"outer", res.Outer,
	)
	return res, nil
}

func (e *Engine) toggleBorder(id platform.WindowID, on bool) {
	style, err := e.backend.FrameStyle(id)
	if err != nil {
		e.logger.Debug("frame style not readable", "window", id, "error", err)
		return
	}
	if err := e.backend.SetFrameStyle(id, style.Toggle(on)); err != nil {
		e.logger.Debug("frame style not applied", "window", id, "border", on, "error", err)
	}
}
