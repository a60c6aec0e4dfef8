// Package config loads winfit's YAML configuration: the log level and named
// profiles bundling window criteria with a transform request.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/logging"
	"github.com/1broseidon/winfit/internal/platform"
	"github.com/1broseidon/winfit/internal/target"
	"github.com/1broseidon/winfit/internal/transform"
)

// ErrProfileNotFound is returned when a requested profile is not defined.
var ErrProfileNotFound = errors.New("profile not found")

// Profile is a validated, typed profile.
type Profile struct {
	TitleContains []string
	PathEndsWith  []string
	Offset        *geometry.Size
	Size          *geometry.Size
	Border        *bool
	BorderColor   *platform.Color
	Corner        *platform.CornerPreference
}

// Criteria returns the window selection part of the profile.
func (p Profile) Criteria() target.Criteria {
	c := target.Criteria{
		TitleContains: append([]string(nil), p.TitleContains...),
		PathEndsWith:  append([]string(nil), p.PathEndsWith...),
	}
	if p.Offset != nil {
		c.Offset = *p.Offset
	}
	return c
}

// Overlay returns p with o applied on top: filters append, every other set
// field of o replaces the one in p.
func (p Profile) Overlay(o Profile) Profile {
	out := p
	out.TitleContains = append(append([]string(nil), p.TitleContains...), o.TitleContains...)
	out.PathEndsWith = append(append([]string(nil), p.PathEndsWith...), o.PathEndsWith...)
	if o.Offset != nil {
		out.Offset = o.Offset
	}
	if o.Size != nil {
		out.Size = o.Size
	}
	if o.Border != nil {
		out.Border = o.Border
	}
	if o.BorderColor != nil {
		out.BorderColor = o.BorderColor
	}
	if o.Corner != nil {
		out.Corner = o.Corner
	}
	return out
}

// Request returns the transform part of the profile.
func (p Profile) Request() transform.Request {
	return transform.Request{
		Size:        p.Size,
		Border:      p.Border,
		BorderColor: p.BorderColor,
		Corner:      p.Corner,
	}
}

// Config is the effective configuration.
type Config struct {
	LogLevel       string
	DefaultProfile string
	Profiles       map[string]Profile
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		Profiles: map[string]Profile{},
	}
}

// Profile looks up a profile by name. An empty name resolves to the default
// profile, or to an empty profile when none is configured.
func (c *Config) Profile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	if name == "" {
		return Profile{}, nil
	}
	p, ok := c.Profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return p, nil
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks cross-field constraints of the effective config.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	for name := range c.Profiles {
		if strings.TrimSpace(name) == "" {
			return &ValidationError{Path: "profiles", Err: fmt.Errorf("profile names must not be empty")}
		}
	}
	if c.DefaultProfile != "" {
		if _, ok := c.Profiles[c.DefaultProfile]; !ok {
			return &ValidationError{Path: "default_profile", Err: fmt.Errorf("%w: %q", ErrProfileNotFound, c.DefaultProfile)}
		}
	}
	return nil
}
