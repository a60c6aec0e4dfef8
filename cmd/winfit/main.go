// Command winfit measures and resizes top-level desktop windows so their
// client area matches an exact size.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/1broseidon/winfit/internal/config"
	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/logging"
	"github.com/1broseidon/winfit/internal/platform"
	"github.com/1broseidon/winfit/internal/transform"
)

// Build information set via ldflags
var (
	version = "dev"
	commit  = "none"
)

// env carries the process collaborators so tests can swap the window system
// and the output streams.
type env struct {
	newBackend func() (platform.Backend, error)
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

func defaultEnv() *env {
	return &env{
		newBackend: platform.New,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

func main() {
	e := defaultEnv()
	if err := newRootCmd(e).Execute(); err != nil {
		fmt.Fprintln(e.stderr, "winfit:", err)
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	verbose    bool
}

// load reads the config and builds the logger it asks for. --verbose wins
// over log_level.
func (g *globalFlags) load(e *env) (*config.LoadResult, *slog.Logger, error) {
	var (
		res *config.LoadResult
		err error
	)
	if g.configPath == "" {
		res, err = config.Load()
	} else {
		res, err = config.LoadFromPath(g.configPath)
	}
	if err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(res.Config.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if g.verbose {
		level = slog.LevelDebug
	}
	return res, logging.New(e.stderr, level), nil
}

// filterFlags are the window selection flags shared by the root command and
// list.
type filterFlags struct {
	titles  []string
	paths   []string
	offset  geometry.Size
	offsetV *geometry.Value
	profile string
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringArrayVarP(&f.titles, "title-contains", "t", nil, "Match windows whose title contains this text (repeatable, case-insensitive)")
	fs.StringArrayVarP(&f.paths, "path-endswith", "p", nil, "Match windows whose executable path ends with this text (repeatable, case-insensitive)")
	f.offsetV = geometry.NewValue(&f.offset)
	fs.VarP(f.offsetV, "offset", "o", "Extra size added when resizing and subtracted when measuring")
	fs.StringVar(&f.profile, "profile", "", "Start from this config profile")
}

func (f *filterFlags) overlay() config.Profile {
	p := config.Profile{TitleContains: f.titles, PathEndsWith: f.paths}
	if f.offsetV.Changed() {
		offset := f.offset
		p.Offset = &offset
	}
	return p
}

// styleFlags hold the raw styling flags; they are parsed after cobra so
// errors name the flag.
type styleFlags struct {
	border      string
	borderColor string
	corner      string
}

func (s *styleFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.border, "border", "", "Turn the window frame on or off")
	fs.StringVar(&s.borderColor, "border-color", "", "Border color as a packed 0x00BBGGRR value")
	fs.StringVar(&s.corner, "corner", "", "Corner rounding: "+strings.Join(platform.CornerPreferenceNames(), ", "))
}

func (s *styleFlags) apply(p *config.Profile) error {
	if s.border != "" {
		on, err := parseOnOff(s.border)
		if err != nil {
			return fmt.Errorf("--border: %w", err)
		}
		p.Border = &on
	}
	if s.borderColor != "" {
		color, err := platform.ParseColor(s.borderColor)
		if err != nil {
			return fmt.Errorf("--border-color: %w", err)
		}
		p.BorderColor = &color
	}
	if s.corner != "" {
		corner, err := platform.ParseCornerPreference(s.corner)
		if err != nil {
			return fmt.Errorf("--corner: %w", err)
		}
		p.Corner = &corner
	}
	return nil
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

func newRootCmd(e *env) *cobra.Command {
	var (
		global  globalFlags
		filters filterFlags
		style   styleFlags
	)

	rootCmd := &cobra.Command{
		Use:   "winfit [size]",
		Short: "Size desktop windows by their client area",
		Long: `winfit finds top-level windows by title and executable path and resizes
them so the client area is exactly the requested size, accounting for the
frame drawn around it. Without a size it prints each match's client area.

Sizes are WxH (1280x720), <height>p (720p) or a name such as fhd; see
"winfit resolutions".`,
		Example: `  winfit -t notepad
  winfit 1080p -p game.exe --border off
  winfit 1280x720 -t "Elden Ring" -o 0x40 --corner do-not-round`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(e, &global, &filters, &style, args)
		},
	}
	rootCmd.SetIn(e.stdin)
	rootCmd.SetOut(e.stdout)
	rootCmd.SetErr(e.stderr)

	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "Config file path (default: <user config dir>/winfit/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Log debug details to stderr")
	filters.register(rootCmd.Flags())
	style.register(rootCmd.Flags())

	rootCmd.AddCommand(newListCmd(e, &global))
	rootCmd.AddCommand(newResolutionsCmd(e))
	rootCmd.AddCommand(newConfigCmd(e, &global))
	rootCmd.AddCommand(newMCPCmd(e, &global))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "winfit %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
		},
	})

	return rootCmd
}

// runFit resolves every input before the window system is touched, so a
// bad flag or profile never leaves windows half transformed.
func runFit(e *env, global *globalFlags, filters *filterFlags, style *styleFlags, args []string) error {
	res, logger, err := global.load(e)
	if err != nil {
		return err
	}

	profile, err := res.Config.Profile(filters.profile)
	if err != nil {
		return err
	}
	overlay := filters.overlay()
	if len(args) == 1 {
		size, err := geometry.Parse(args[0])
		if err != nil {
			return err
		}
		overlay.Size = &size
	}
	if err := style.apply(&overlay); err != nil {
		return err
	}
	profile = profile.Overlay(overlay)

	backend, err := e.newBackend()
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Debug("backend close failed", "error", err)
		}
	}()

	windows, err := backend.Windows()
	if err != nil {
		return err
	}

	runner := &transform.Runner{
		Backend:  backend,
		Criteria: profile.Criteria(),
		Request:  profile.Request(),
		Out:      e.stdout,
		Logger:   logger,
	}
	sum, err := runner.Run(windows)
	logger.Debug("run finished",
		"visited", sum.Visited,
		"matched", sum.Matched,
		"measured", sum.Measured,
		"resized", sum.Resized,
		"skipped", sum.Skipped,
	)
	return err
}
