// Package output renders the column tables printed by `winfit list` and
// `winfit resolutions`.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	columnGap = 2
	ellipsis  = "…"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// Options controls table rendering.
type Options struct {
	// Width is the terminal width; zero disables truncation.
	Width int
	// Color enables lipgloss styling.
	Color bool
}

// DetectOptions styles and truncates only when f is a terminal.
func DetectOptions(f *os.File) Options {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Options{}
	}
	opts := Options{Color: true}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		opts.Width = w
	}
	return opts
}

// Table is a header plus rows of cells. The Flex column absorbs truncation
// when the table is wider than Options.Width; it is usually the last one.
type Table struct {
	Headers []string
	Rows    [][]string
	Flex    int
	// Dim lists columns rendered in the secondary color.
	Dim []int
}

func (t Table) Render(w io.Writer, opts Options) error {
	widths := t.columnWidths()
	t.fitFlex(widths, opts.Width)

	var b strings.Builder
	t.writeRow(&b, t.Headers, widths, opts, true)
	for _, row := range t.Rows {
		t.writeRow(&b, row, widths, opts, false)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (t Table) columnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}
	return widths
}

func (t Table) fitFlex(widths []int, total int) {
	if total <= 0 || t.Flex < 0 || t.Flex >= len(widths) {
		return
	}
	used := columnGap * (len(widths) - 1)
	for i, w := range widths {
		if i != t.Flex {
			used += w
		}
	}
	room := total - used
	if room < lipgloss.Width(t.Headers[t.Flex]) {
		room = lipgloss.Width(t.Headers[t.Flex])
	}
	if widths[t.Flex] > room {
		widths[t.Flex] = room
	}
}

func (t Table) writeRow(b *strings.Builder, cells []string, widths []int, opts Options, header bool) {
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = truncate(cell, width)
		last := i == len(widths)-1
		if !last {
			cell += strings.Repeat(" ", width-lipgloss.Width(cell))
		}
		if opts.Color {
			cell = t.style(i, header).Render(cell)
		}
		b.WriteString(cell)
		if !last {
			b.WriteString(strings.Repeat(" ", columnGap))
		}
	}
	b.WriteByte('\n')
}

func (t Table) style(col int, header bool) lipgloss.Style {
	if header {
		return headerStyle
	}
	for _, d := range t.Dim {
		if d == col {
			return dimStyle
		}
	}
	return valueStyle
}

// truncate shortens s to width display cells, ending in an ellipsis.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 0 {
		return ""
	}
	limit := width - lipgloss.Width(ellipsis)
	var b strings.Builder
	for _, r := range s {
		if lipgloss.Width(b.String()+string(r)) > limit {
			break
		}
		b.WriteRune(r)
	}
	return b.String() + ellipsis
}
