package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// IncludeList supports either:
//
//	include: "/path/to/file.yaml"
//
// or:
//
//	include:
//	  - "/path/to/file.yaml"
//	  - "/path/to/dir"
type IncludeList []string

func (l *IncludeList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case 0:
		*l = nil
		return nil
	case yaml.ScalarNode:
		if value.Tag != "!!str" {
			return fmt.Errorf("include must be a string or list of strings")
		}
		*l = []string{value.Value}
		return nil
	case yaml.SequenceNode:
		out := make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("include entries must be strings")
			}
			out = append(out, item.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("include must be a string or list of strings")
	}
}

// RawProfile is a profile as written in YAML. Nil fields were not set by
// any loaded file.
type RawProfile struct {
	TitleContains []string `yaml:"title_contains,omitempty"`
	PathEndsWith  []string `yaml:"path_endswith,omitempty"`
	Offset        *string  `yaml:"offset,omitempty"`
	Size          *string  `yaml:"size,omitempty"`
	Border        *bool    `yaml:"border,omitempty"`
	BorderColor   *string  `yaml:"border_color,omitempty"`
	Corner        *string  `yaml:"corner,omitempty"`
}

type RawConfig struct {
	Include        IncludeList           `yaml:"include,omitempty"`
	LogLevel       *string               `yaml:"log_level,omitempty"`
	DefaultProfile *string               `yaml:"default_profile,omitempty"`
	Profiles       map[string]RawProfile `yaml:"profiles,omitempty"`
}

func (c RawConfig) merge(overlay RawConfig) RawConfig {
	out := c

	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.DefaultProfile != nil {
		out.DefaultProfile = overlay.DefaultProfile
	}
	if overlay.Profiles != nil {
		merged := make(map[string]RawProfile, len(out.Profiles)+len(overlay.Profiles))
		for name, p := range out.Profiles {
			merged[name] = p
		}
		for name, p := range overlay.Profiles {
			merged[name] = merged[name].merge(p)
		}
		out.Profiles = merged
	}

	return out
}

// merge overlays field by field; filter lists replace rather than append so
// a later file can narrow a profile.
func (p RawProfile) merge(overlay RawProfile) RawProfile {
	out := p
	if overlay.TitleContains != nil {
		out.TitleContains = overlay.TitleContains
	}
	if overlay.PathEndsWith != nil {
		out.PathEndsWith = overlay.PathEndsWith
	}
	if overlay.Offset != nil {
		out.Offset = overlay.Offset
	}
	if overlay.Size != nil {
		out.Size = overlay.Size
	}
	if overlay.Border != nil {
		out.Border = overlay.Border
	}
	if overlay.BorderColor != nil {
		out.BorderColor = overlay.BorderColor
	}
	if overlay.Corner != nil {
		out.Corner = overlay.Corner
	}
	return out
}
