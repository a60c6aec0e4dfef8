package mcp

// MeasureWindowsInput is the input for the measure_windows tool.
type MeasureWindowsInput struct {
	TitleContains []string `json:"title_contains,omitempty" jsonschema:"Case-insensitive substrings; a window matches when its title contains any of them"`
	PathEndsWith  []string `json:"path_endswith,omitempty" jsonschema:"Case-insensitive suffixes; a window matches when its executable path ends with any of them"`
	Offset        string   `json:"offset,omitempty" jsonschema:"Size subtracted from each client area, as WxH, <h>p or a named resolution"`
	Profile       string   `json:"profile,omitempty" jsonschema:"Config profile to start from; the filters above are appended to it"`
}

// WindowMeasurement describes one measured window.
type WindowMeasurement struct {
	ID          string `json:"id"`
	Title       string `json:"title,omitempty"`
	Client      string `json:"client"`
	Measurement string `json:"measurement"`
	Width       uint   `json:"width"`
	Height      uint   `json:"height"`
}

// MeasureWindowsOutput is the output for the measure_windows tool.
type MeasureWindowsOutput struct {
	Windows []WindowMeasurement `json:"windows"`
	Visited int                 `json:"visited"`
	Matched int                 `json:"matched"`
}

// ResizeWindowsInput is the input for the resize_windows tool.
type ResizeWindowsInput struct {
	Size          string   `json:"size,omitempty" jsonschema:"Target client size, as WxH, <h>p or a named resolution such as fhd; required unless the profile sets one"`
	TitleContains []string `json:"title_contains,omitempty" jsonschema:"Case-insensitive title substrings"`
	PathEndsWith  []string `json:"path_endswith,omitempty" jsonschema:"Case-insensitive executable path suffixes"`
	Offset        string   `json:"offset,omitempty" jsonschema:"Size added to the target before the border is added back"`
	Border        *bool    `json:"border,omitempty" jsonschema:"true restores the caption and resize frame; false strips them"`
	BorderColor   string   `json:"border_color,omitempty" jsonschema:"Border color as a 0x00BBGGRR value (Windows 11 only)"`
	Corner        string   `json:"corner,omitempty" jsonschema:"Corner rounding: default, do-not-round, round or round-small (Windows 11 only)"`
	Profile       string   `json:"profile,omitempty" jsonschema:"Config profile to start from; explicit fields override it"`
}

// ResizedWindow describes one resized window.
type ResizedWindow struct {
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	Client string `json:"client_before"`
	Outer  string `json:"outer"`
}

// ResizeWindowsOutput is the output for the resize_windows tool.
type ResizeWindowsOutput struct {
	Windows []ResizedWindow `json:"windows"`
	Visited int             `json:"visited"`
	Matched int             `json:"matched"`
	Resized int             `json:"resized"`
}

// ListResolutionsInput is the input for the list_resolutions tool.
type ListResolutionsInput struct{}

// NamedResolution is one entry of the resolution table.
type NamedResolution struct {
	Name   string `json:"name"`
	Width  uint   `json:"width"`
	Height uint   `json:"height"`
}

// ListResolutionsOutput is the output for the list_resolutions tool.
type ListResolutionsOutput struct {
	Resolutions []NamedResolution `json:"resolutions"`
}
