package geometry

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidSizeFormat is returned when text is neither a named resolution,
// a <height>p shorthand, nor a WxH pair.
var ErrInvalidSizeFormat = errors.New("invalid size format")

// Resolution is a named entry in the resolution table.
type Resolution struct {
	Name string
	Size Size
}

var namedResolutions = map[string]Size{
	"vga":           {640, 480},
	"svga":          {800, 600},
	"xga":           {1024, 768},
	"sxga":          {1280, 1024},
	"uxga":          {1600, 1200},
	"hd":            {1280, 720},
	"fhd":           {1920, 1080},
	"wqhd":          {2560, 1440},
	"4k":            {3840, 2160},
	"uhd":           {3840, 2160},
	"8k":            {7680, 4320},
	"wxga":          {1280, 800},
	"wsxga":         {1680, 1050},
	"wsxga+":        {1680, 1050},
	"wuxga":         {1920, 1200},
	"wqxga":         {2560, 1600},
	"wquxga":        {3840, 2400},
	"uwfhd":         {2560, 1080},
	"ultrawide":     {2560, 1080},
	"uwqhd":         {3440, 1440},
	"ultrawide1440": {3440, 1440},
	"uw4k":          {5120, 2160},
	"ultrawide4k":   {5120, 2160},
	"dci4k":         {4096, 2160},
}

// Resolutions returns the named resolution table ordered by area, then name.
func Resolutions() []Resolution {
	out := make([]Resolution, 0, len(namedResolutions))
	for name, size := range namedResolutions {
		out = append(out, Resolution{Name: name, Size: size})
	}
	sort.Slice(out, func(i, j int) bool {
		ai := out[i].Size.Width * out[i].Size.Height
		aj := out[j].Size.Width * out[j].Size.Height
		if ai != aj {
			return ai < aj
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// LookupResolution resolves a case-insensitive resolution name.
func LookupResolution(name string) (Size, bool) {
	size, ok := namedResolutions[strings.ToLower(name)]
	return size, ok
}

// Parse reads a size specification. The first matching form wins:
//
//	fhd, 4K, ultrawide   named resolution (case-insensitive)
//	1080p, 720P          height with a 16:9 width rounded to nearest
//	1920x1080            explicit width and height
//
// Each number may carry a single leading '+'.
// Surrounding whitespace is not trimmed.
func Parse(text string) (Size, error) {
	if size, ok := LookupResolution(text); ok {
		return size, nil
	}

	if size, ok := parseHeightShorthand(text); ok {
		return size, nil
	}

	parts := strings.Split(text, "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, text)
	}
	w, err := parseDimension(parts[0])
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, text)
	}
	h, err := parseDimension(parts[1])
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSizeFormat, text)
	}
	return Size{Width: w, Height: h}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(text string) Size {
	size, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return size
}

func parseHeightShorthand(text string) (Size, bool) {
	if !strings.HasSuffix(text, "p") && !strings.HasSuffix(text, "P") {
		return Size{}, false
	}
	height, err := parseDimension(text[:len(text)-1])
	if err != nil {
		return Size{}, false
	}
	// (h*16 + 8) must stay representable.
	if height > (math.MaxUint-8)/16 {
		return Size{}, false
	}
	return Size{Width: (height*16 + 8) / 9, Height: height}, true
}

// parseDimension reads a decimal count. One leading '+' is allowed; any
// other sign is not.
func parseDimension(text string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, strconv.IntSize)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
