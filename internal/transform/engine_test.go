package transform

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/platform"
	"github.com/1broseidon/winfit/internal/platform/platformtest"
)

func ptr[T any](v T) *T { return &v }

func TestApply_ResizeIsolatesBorder(t *testing.T) {
	b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 800, Height: 600}, Style: platform.Framed})

	e := NewEngine(b, geometry.Size{}, nil)
	res, err := e.Apply(1, Request{Size: ptr(geometry.MustParse("fhd"))})
	require.NoError(t, err)

	assert.True(t, res.Resized)
	assert.Equal(t, geometry.Size{Width: 1936, Height: 1119}, res.Outer)
	assert.Equal(t, geometry.Size{Width: 1920, Height: 1080}, b.Window(1).Client)
}

func TestApply_ResizeThenMeasureRoundTrips(t *testing.T) {
	offsets := []geometry.Size{{}, {Width: 2, Height: 30}}
	for _, offset := range offsets {
		t.Run(offset.String(), func(t *testing.T) {
			b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 640, Height: 480}, Style: platform.Framed})
			e := NewEngine(b, offset, nil)

			want := geometry.Size{Width: 1280, Height: 720}
			_, err := e.Apply(1, Request{Size: &want})
			require.NoError(t, err)
			assert.Equal(t, want.Add(offset), b.Window(1).Client)

			res, err := e.Apply(1, Request{})
			require.NoError(t, err)
			assert.Equal(t, want, res.Measurement)
		})
	}
}

func TestApply_MeasureSubtractsOffset(t *testing.T) {
	b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 100, Height: 100}})
	e := NewEngine(b, geometry.Size{Width: 10, Height: 20}, nil)

	res, err := e.Apply(1, Request{})
	require.NoError(t, err)
	assert.Equal(t, geometry.Size{Width: 90, Height: 80}, res.Measurement)
	assert.False(t, res.Resized)
	assert.NotContains(t, b.Calls, "Resize")
	assert.NotContains(t, b.Calls, "WindowSize")
}

func TestApply_MeasureOffsetTooLarge(t *testing.T) {
	b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 5, Height: 100}})
	e := NewEngine(b, geometry.Size{Width: 10}, nil)

	_, err := e.Apply(1, Request{})
	require.ErrorIs(t, err, ErrOffsetExceedsClient)
}

func TestApply_OversizedRequestIsRejected(t *testing.T) {
	tests := []struct {
		name   string
		size   geometry.Size
		offset geometry.Size
		style  platform.FrameStyle
	}{
		{"sum wraps", geometry.Size{Width: math.MaxUint, Height: 720}, geometry.Size{Width: 1}, platform.FrameStyle{}},
		{"border pushes past int32", geometry.Size{Width: 2147483640, Height: 720}, geometry.Size{}, platform.Framed},
		{"height past int32", geometry.Size{Width: 640, Height: 2147483648}, geometry.Size{}, platform.FrameStyle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 640, Height: 480}, Style: tt.style})
			e := NewEngine(b, tt.offset, nil)

			res, err := e.Apply(1, Request{Size: &tt.size})
			require.ErrorIs(t, err, ErrSizeOutOfRange)
			assert.False(t, res.Resized)
			assert.NotContains(t, b.Calls, "Resize")
			assert.Equal(t, geometry.Size{Width: 640, Height: 480}, b.Window(1).Client)
		})
	}
}

func TestApply_BorderToggleBeforeMeasuring(t *testing.T) {
	b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 800, Height: 600}, Style: platform.FrameCapabilities})
	e := NewEngine(b, geometry.Size{}, nil)

	want := geometry.Size{Width: 1024, Height: 768}
	res, err := e.Apply(1, Request{Size: &want, Border: ptr(false)})
	require.NoError(t, err)

	assert.Equal(t, platform.FrameStyle{}, b.Window(1).Style)
	assert.Equal(t, want, res.Outer, "frameless windows have no border delta")
	assert.Equal(t, want, b.Window(1).Client)

	assert.Equal(t, []string{"FrameStyle", "SetFrameStyle", "ClientSize", "WindowSize", "Resize"}, b.Calls)
}

func TestApply_BorderEnable(t *testing.T) {
	b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 800, Height: 600}})
	e := NewEngine(b, geometry.Size{}, nil)

	want := geometry.Size{Width: 400, Height: 300}
	res, err := e.Apply(1, Request{Size: &want, Border: ptr(true)})
	require.NoError(t, err)

	assert.Equal(t, platform.Framed, b.Window(1).Style)
	assert.Equal(t, want.Add(platformtest.DefaultFrame), res.Outer)
	assert.Equal(t, want, b.Window(1).Client)
}

func TestApply_CosmeticFailuresAreTolerated(t *testing.T) {
	b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 800, Height: 600}, Style: platform.Framed})
	b.ColorErr = platform.ErrUnsupported
	b.CornerErr = errors.New("E_INVALIDARG")
	b.StyleErr = errors.New("access denied")
	e := NewEngine(b, geometry.Size{}, nil)

	want := geometry.Size{Width: 1280, Height: 720}
	res, err := e.Apply(1, Request{
		Size:        &want,
		Border:      ptr(false),
		BorderColor: ptr(platform.Color(0xff)),
		Corner:      ptr(platform.CornerDoNotRound),
	})
	require.NoError(t, err)
	assert.True(t, res.Resized)
	assert.Equal(t, want, b.Window(1).Client)
}

func TestApply_AppliesColorAndCorner(t *testing.T) {
	b := platformtest.New().Add(1, &platformtest.Window{Client: geometry.Size{Width: 10, Height: 10}})
	e := NewEngine(b, geometry.Size{}, nil)

	_, err := e.Apply(1, Request{BorderColor: ptr(platform.Color(0x00ff00)), Corner: ptr(platform.CornerRoundSmall)})
	require.NoError(t, err)
	require.NotNil(t, b.Window(1).Color)
	require.NotNil(t, b.Window(1).Corner)
	assert.Equal(t, platform.Color(0x00ff00), *b.Window(1).Color)
	assert.Equal(t, platform.CornerRoundSmall, *b.Window(1).Corner)
}

func TestApply_SizingFailuresAreFatal(t *testing.T) {
	size := &geometry.Size{Width: 1, Height: 1}
	tests := []struct {
		name  string
		setup func(*platformtest.Backend)
		req   Request
	}{
		{"client measurement", func(b *platformtest.Backend) { b.ClientErr = errors.New("boom") }, Request{}},
		{"outer measurement", func(b *platformtest.Backend) { b.OuterErr = errors.New("boom") }, Request{Size: size}},
		{"resize", func(b *platformtest.Backend) { b.ResizeErr = errors.New("boom") }, Request{Size: size}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := platformtest.New().Add(7, &platformtest.Window{Client: geometry.Size{Width: 10, Height: 10}})
			tt.setup(b)

			_, err := NewEngine(b, geometry.Size{}, nil).Apply(7, tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "window 0x7")
		})
	}
}
