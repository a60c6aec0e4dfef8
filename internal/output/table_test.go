package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1broseidon/winfit/internal/geometry"
)

func TestTableRenderAligned(t *testing.T) {
	tbl := Table{
		Headers: []string{"A", "BB"},
		Rows:    [][]string{{"long", "x"}, {"s", "yy"}},
		Flex:    1,
	}
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf, Options{}))

	assert.Equal(t, "A     BB\nlong  x\ns     yy\n", buf.String())
}

func TestTableRenderTruncatesFlexColumn(t *testing.T) {
	tbl := Table{
		Headers: []string{"ID", "TITLE"},
		Rows:    [][]string{{"0x1", "a very long window title"}},
		Flex:    1,
	}
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf, Options{Width: 15}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0x1  a very lo…", lines[1])
}

func TestTableRenderFlexKeepsHeader(t *testing.T) {
	tbl := Table{
		Headers: []string{"ID", "TITLE"},
		Rows:    [][]string{{"0x1", "abcdefgh"}},
		Flex:    1,
	}
	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf, Options{Width: 3}))

	assert.Contains(t, buf.String(), "0x1  abcd…\n")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 3))
	assert.Equal(t, "ab…", truncate("abcd", 3))
	assert.Equal(t, "", truncate("abcd", 0))
	assert.Equal(t, "…", truncate("abcd", 1))
}

func TestRenderWindows(t *testing.T) {
	var buf bytes.Buffer
	err := RenderWindows(&buf, []WindowRow{
		{ID: 0x2a, Client: geometry.Size{Width: 800, Height: 600}, Outer: geometry.Size{Width: 816, Height: 639}, Path: `C:\app.exe`, Title: "App"},
		{ID: 0x2b},
	}, Options{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "0x2a")
	assert.Contains(t, lines[1], "800x600")
	assert.Contains(t, lines[1], "816x639")
	assert.True(t, strings.HasSuffix(lines[1], "App"))
	assert.Equal(t, []string{"0x2b", "-", "-", "-", "-"}, strings.Fields(lines[2]))
}

func TestRenderResolutions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderResolutions(&buf, geometry.Resolutions(), Options{Width: 10}))

	out := buf.String()
	assert.Contains(t, out, "vga")
	assert.Contains(t, out, "640x480")
	assert.Contains(t, out, "7680x4320")
}
