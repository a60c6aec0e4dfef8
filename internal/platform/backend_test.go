package platform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winfit/internal/geometry"
)

func TestParseCornerPreference(t *testing.T) {
	tests := []struct {
		input string
		want  CornerPreference
	}{
		{"default", CornerDefault},
		{"do-not-round", CornerDoNotRound},
		{"DoNotRound", CornerDoNotRound},
		{"round", CornerRound},
		{"round-small", CornerRoundSmall},
		{"ROUNDSMALL", CornerRoundSmall},
	}
	for _, tt := range tests {
		got, err := ParseCornerPreference(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseCornerPreference("square")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do-not-round")
}

func TestCornerPreference_StringRoundTrip(t *testing.T) {
	for _, name := range CornerPreferenceNames() {
		pref, err := ParseCornerPreference(name)
		require.NoError(t, err)
		assert.Equal(t, name, pref.String())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"0", 0},
		{"255", 0xff},
		{"0x0000ff00", 0xff00},
		{"0xFFFFFFFF", 0xffffffff},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "red", "-1", "0x1FFFFFFFF"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestColor_RGB(t *testing.T) {
	r, g, b := Color(0x00332211).RGB()
	assert.Equal(t, uint8(0x11), r)
	assert.Equal(t, uint8(0x22), g)
	assert.Equal(t, uint8(0x33), b)
	assert.Equal(t, "0x00332211", Color(0x00332211).String())
}

func TestCheckExtent(t *testing.T) {
	require.NoError(t, checkExtent(geometry.Size{Width: 65535, Height: 65535}, math.MaxUint16))
	require.NoError(t, checkExtent(geometry.Size{Width: math.MaxInt32, Height: 1}, math.MaxInt32))

	err := checkExtent(geometry.Size{Width: 65536, Height: 720}, math.MaxUint16)
	require.ErrorIs(t, err, ErrExtentOutOfRange)
	assert.Contains(t, err.Error(), "65536x720")

	assert.ErrorIs(t, checkExtent(geometry.Size{Width: 1, Height: math.MaxInt32 + 1}, math.MaxInt32), ErrExtentOutOfRange)
}
