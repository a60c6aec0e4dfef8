package config

import (
	"fmt"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/platform"
)

// ValidationError ties a config error to the YAML path that caused it and,
// when known, the file position of that path.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// BuildEffectiveConfig overlays raw onto the defaults and parses every
// profile value with the same grammar the command line uses.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if raw.DefaultProfile != nil {
		cfg.DefaultProfile = *raw.DefaultProfile
	}

	for name, rp := range raw.Profiles {
		p, err := buildProfile("profiles."+name, rp)
		if err != nil {
			return nil, err
		}
		cfg.Profiles[name] = p
	}

	return cfg, nil
}

func buildProfile(path string, rp RawProfile) (Profile, error) {
	p := Profile{
		TitleContains: rp.TitleContains,
		PathEndsWith:  rp.PathEndsWith,
		Border:        rp.Border,
	}

	if rp.Offset != nil {
		offset, err := geometry.Parse(*rp.Offset)
		if err != nil {
			return Profile{}, &ValidationError{Path: path + ".offset", Err: err}
		}
		p.Offset = &offset
	}
	if rp.Size != nil {
		size, err := geometry.Parse(*rp.Size)
		if err != nil {
			return Profile{}, &ValidationError{Path: path + ".size", Err: err}
		}
		p.Size = &size
	}
	if rp.BorderColor != nil {
		color, err := platform.ParseColor(*rp.BorderColor)
		if err != nil {
			return Profile{}, &ValidationError{Path: path + ".border_color", Err: err}
		}
		p.BorderColor = &color
	}
	if rp.Corner != nil {
		corner, err := platform.ParseCornerPreference(*rp.Corner)
		if err != nil {
			return Profile{}, &ValidationError{Path: path + ".corner", Err: err}
		}
		p.Corner = &corner
	}

	return p, nil
}

// ToRaw renders the effective config back into its YAML shape.
func (c *Config) ToRaw() RawConfig {
	raw := RawConfig{
		LogLevel: strPtr(c.LogLevel),
		Profiles: make(map[string]RawProfile, len(c.Profiles)),
	}
	if c.DefaultProfile != "" {
		raw.DefaultProfile = strPtr(c.DefaultProfile)
	}
	for name, p := range c.Profiles {
		rp := RawProfile{
			TitleContains: p.TitleContains,
			PathEndsWith:  p.PathEndsWith,
			Border:        p.Border,
		}
		if p.Offset != nil {
			rp.Offset = strPtr(p.Offset.String())
		}
		if p.Size != nil {
			rp.Size = strPtr(p.Size.String())
		}
		if p.BorderColor != nil {
			rp.BorderColor = strPtr(p.BorderColor.String())
		}
		if p.Corner != nil {
			rp.Corner = strPtr(p.Corner.String())
		}
		raw.Profiles[name] = rp
	}
	return raw
}

func strPtr(s string) *string { return &s }
