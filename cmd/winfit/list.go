package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/output"
	"github.com/1broseidon/winfit/internal/target"
	"github.com/1broseidon/winfit/internal/transform"
)

func newListCmd(e *env, global *globalFlags) *cobra.Command {
	var filters filterFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List matching windows with their sizes",
		Long:  "List top-level windows that pass the filters, with client and outer size, executable path and title. Nothing is modified.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, logger, err := global.load(e)
			if err != nil {
				return err
			}
			profile, err := res.Config.Profile(filters.profile)
			if err != nil {
				return err
			}
			criteria := profile.Overlay(filters.overlay()).Criteria()

			backend, err := e.newBackend()
			if err != nil {
				return err
			}
			defer backend.Close()

			windows, err := backend.Windows()
			if err != nil {
				return err
			}

			var rows []output.WindowRow
			for id := range transform.Matching(backend, windows, criteria, nil) {
				h := target.Handle{Backend: backend, ID: id}
				row := output.WindowRow{ID: id}
				row.Title, _ = h.Title()
				row.Path, _ = h.ExecutablePath()
				if client, err := backend.ClientSize(id); err == nil {
					row.Client = client
				} else {
					logger.Debug("client size unavailable", "window", id, "error", err)
				}
				if outer, err := backend.WindowSize(id); err == nil {
					row.Outer = outer
				}
				rows = append(rows, row)
			}

			return output.RenderWindows(e.stdout, rows, outputOptions(e))
		},
	}
	filters.register(cmd.Flags())
	return cmd
}

func newResolutionsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "resolutions",
		Short: "List the named resolutions accepted as sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return output.RenderResolutions(e.stdout, geometry.Resolutions(), outputOptions(e))
		},
	}
}

// outputOptions styles tables only when writing straight to a terminal.
func outputOptions(e *env) output.Options {
	if f, ok := e.stdout.(*os.File); ok {
		return output.DetectOptions(f)
	}
	return output.Options{}
}
