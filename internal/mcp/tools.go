package mcp

import (
	"context"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/winfit/internal/config"
	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/platform"
	"github.com/1broseidon/winfit/internal/target"
	"github.com/1broseidon/winfit/internal/transform"
)

// errNoFilter guards resize_windows against resizing every window on the
// desktop.
var errNoFilter = errors.New("resize_windows needs title_contains, path_endswith or a profile with filters")

func (s *Server) handleMeasureWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args MeasureWindowsInput) (*mcpsdk.CallToolResult, MeasureWindowsOutput, error) {
	profile, err := s.resolveProfile(args.Profile, args.TitleContains, args.PathEndsWith, args.Offset)
	if err != nil {
		return nil, MeasureWindowsOutput{}, err
	}

	out := MeasureWindowsOutput{Windows: []WindowMeasurement{}}
	err = s.withBackend(func(backend platform.Backend) error {
		windows, err := backend.Windows()
		if err != nil {
			return err
		}
		r := &transform.Runner{
			Backend:  backend,
			Criteria: profile.Criteria(),
			Logger:   s.logger,
			Observe: func(res transform.Result) {
				out.Windows = append(out.Windows, WindowMeasurement{
					ID:          res.Window.String(),
					Title:       titleOf(backend, res.Window),
					Client:      res.Client.String(),
					Measurement: res.Measurement.String(),
					Width:       res.Measurement.Width,
					Height:      res.Measurement.Height,
				})
			},
		}
		sum, err := r.Run(windows)
		out.Visited, out.Matched = sum.Visited, sum.Matched
		return err
	})
	if err != nil {
		return nil, MeasureWindowsOutput{}, err
	}

	s.logger.Info("measure_windows", "visited", out.Visited, "matched", out.Matched)
	return nil, out, nil
}

func (s *Server) handleResizeWindows(_ context.Context, _ *mcpsdk.CallToolRequest, args ResizeWindowsInput) (*mcpsdk.CallToolResult, ResizeWindowsOutput, error) {
	profile, err := s.resolveProfile(args.Profile, args.TitleContains, args.PathEndsWith, args.Offset)
	if err != nil {
		return nil, ResizeWindowsOutput{}, err
	}
	overlay, err := resizeOverlay(args)
	if err != nil {
		return nil, ResizeWindowsOutput{}, err
	}
	profile = profile.Overlay(overlay)

	criteria := profile.Criteria()
	if criteria.IsEmpty() {
		return nil, ResizeWindowsOutput{}, errNoFilter
	}
	req := profile.Request()
	if req.Measuring() {
		return nil, ResizeWindowsOutput{}, fmt.Errorf("size is required")
	}

	out := ResizeWindowsOutput{Windows: []ResizedWindow{}}
	err = s.withBackend(func(backend platform.Backend) error {
		windows, err := backend.Windows()
		if err != nil {
			return err
		}
		r := &transform.Runner{
			Backend:  backend,
			Criteria: criteria,
			Request:  req,
			Logger:   s.logger,
			Observe: func(res transform.Result) {
				out.Windows = append(out.Windows, ResizedWindow{
					ID:     res.Window.String(),
					Title:  titleOf(backend, res.Window),
					Client: res.Client.String(),
					Outer:  res.Outer.String(),
				})
			},
		}
		sum, err := r.Run(windows)
		out.Visited, out.Matched, out.Resized = sum.Visited, sum.Matched, sum.Resized
		return err
	})
	if err != nil {
		return nil, ResizeWindowsOutput{}, err
	}

	s.logger.Info("resize_windows", "size", *req.Size, "matched", out.Matched, "resized", out.Resized)
	return nil, out, nil
}

func (s *Server) handleListResolutions(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListResolutionsInput) (*mcpsdk.CallToolResult, ListResolutionsOutput, error) {
	table := geometry.Resolutions()
	out := ListResolutionsOutput{Resolutions: make([]NamedResolution, 0, len(table))}
	for _, r := range table {
		out.Resolutions = append(out.Resolutions, NamedResolution{Name: r.Name, Width: r.Size.Width, Height: r.Size.Height})
	}
	return nil, out, nil
}

// resolveProfile starts from the named (or default) profile and appends the
// call's filters and offset.
func (s *Server) resolveProfile(name string, titles, paths []string, offset string) (config.Profile, error) {
	base, err := s.config.Profile(name)
	if err != nil {
		return config.Profile{}, err
	}
	overlay := config.Profile{TitleContains: titles, PathEndsWith: paths}
	if offset != "" {
		size, err := geometry.Parse(offset)
		if err != nil {
			return config.Profile{}, fmt.Errorf("offset: %w", err)
		}
		overlay.Offset = &size
	}
	return base.Overlay(overlay), nil
}

func resizeOverlay(args ResizeWindowsInput) (config.Profile, error) {
	overlay := config.Profile{Border: args.Border}
	if args.Size != "" {
		size, err := geometry.Parse(args.Size)
		if err != nil {
			return config.Profile{}, fmt.Errorf("size: %w", err)
		}
		overlay.Size = &size
	}
	if args.BorderColor != "" {
		color, err := platform.ParseColor(args.BorderColor)
		if err != nil {
			return config.Profile{}, err
		}
		overlay.BorderColor = &color
	}
	if args.Corner != "" {
		corner, err := platform.ParseCornerPreference(args.Corner)
		if err != nil {
			return config.Profile{}, err
		}
		overlay.Corner = &corner
	}
	return overlay, nil
}

// titleOf is best effort; the title is informational only.
func titleOf(backend platform.Backend, id platform.WindowID) string {
	title, err := target.Handle{Backend: backend, ID: id}.Title()
	if err != nil {
		return ""
	}
	return title
}
