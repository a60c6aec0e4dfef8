package output

import (
	"io"

	"github.com/1broseidon/winfit/internal/geometry"
	"github.com/1broseidon/winfit/internal/platform"
)

// WindowRow is one line of `winfit list`. Empty fields render as "-".
type WindowRow struct {
	ID     platform.WindowID
	Client geometry.Size
	Outer  geometry.Size
	Path   string
	Title  string
}

// RenderWindows prints rows as an ID, client, outer, path, title table.
func RenderWindows(w io.Writer, rows []WindowRow, opts Options) error {
	t := Table{
		Headers: []string{"ID", "CLIENT", "OUTER", "PATH", "TITLE"},
		Flex:    4,
		Dim:     []int{0, 3},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.ID.String(),
			sizeCell(r.Client),
			sizeCell(r.Outer),
			orDash(r.Path),
			orDash(r.Title),
		})
	}
	return t.Render(w, opts)
}

// RenderResolutions prints the named resolution table.
func RenderResolutions(w io.Writer, resolutions []geometry.Resolution, opts Options) error {
	t := Table{
		Headers: []string{"NAME", "SIZE"},
		Flex:    -1,
	}
	for _, r := range resolutions {
		t.Rows = append(t.Rows, []string{r.Name, r.Size.String()})
	}
	return t.Render(w, opts)
}

func sizeCell(s geometry.Size) string {
	if s.IsZero() {
		return "-"
	}
	return s.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
