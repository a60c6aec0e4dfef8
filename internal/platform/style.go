package platform

// FrameStyle is the set of frame capabilities a window has.
type FrameStyle struct {
	Border     bool
	ThickFrame bool
	Caption    bool
	// WindowEdge is the raised extended edge Win32 draws around framed windows.
	WindowEdge bool
}

var (
	// Framed is what enabling the border adds.
	Framed = FrameStyle{Border: true, ThickFrame: true, Caption: true}
	// FrameCapabilities is every frame capability; disabling the border
	// removes all of them.
	FrameCapabilities = FrameStyle{Border: true, ThickFrame: true, Caption: true, WindowEdge: true}
)

// Union returns s with every capability of o added.
func (s FrameStyle) Union(o FrameStyle) FrameStyle {
	return FrameStyle{
		Border:     s.Border || o.Border,
		ThickFrame: s.ThickFrame || o.ThickFrame,
		Caption:    s.Caption || o.Caption,
		WindowEdge: s.WindowEdge || o.WindowEdge,
	}
}

// Without returns s with every capability of o removed.
func (s FrameStyle) Without(o FrameStyle) FrameStyle {
	return FrameStyle{
		Border:     s.Border && !o.Border,
		ThickFrame: s.ThickFrame && !o.ThickFrame,
		Caption:    s.Caption && !o.Caption,
		WindowEdge: s.WindowEdge && !o.WindowEdge,
	}
}

// Toggle applies the border on/off request to s.
func (s FrameStyle) Toggle(on bool) FrameStyle {
	if on {
		return s.Union(Framed)
	}
	return s.Without(FrameCapabilities)
}

// Win32 window style bits. WS_CAPTION includes the WS_BORDER bit.
const (
	wsBorder       uint32 = 0x00800000
	wsThickFrame   uint32 = 0x00040000
	wsCaption      uint32 = 0x00C00000
	wsExWindowEdge uint32 = 0x00000100
)

// Win32Style is the raw GWL_STYLE / GWL_EXSTYLE pair of a window.
type Win32Style struct {
	Style   uint32
	ExStyle uint32
}

// FrameStyle decodes the frame capabilities of the raw style words.
func (w Win32Style) FrameStyle() FrameStyle {
	return FrameStyle{
		Border:     w.Style&wsBorder != 0,
		ThickFrame: w.Style&wsThickFrame != 0,
		Caption:    w.Style&wsCaption == wsCaption,
		WindowEdge: w.ExStyle&wsExWindowEdge != 0,
	}
}

// WithFrameStyle re-encodes target into the raw words. Bits of absent
// capabilities are cleared before bits of present ones are set, so removing
// the caption never strips a border that should stay. Unrelated bits are
// untouched.
func (w Win32Style) WithFrameStyle(target FrameStyle) Win32Style {
	out := w

	if !target.Caption {
		out.Style &^= wsCaption
	}
	if !target.Border {
		out.Style &^= wsBorder
	}
	if !target.ThickFrame {
		out.Style &^= wsThickFrame
	}
	if !target.WindowEdge {
		out.ExStyle &^= wsExWindowEdge
	}

	if target.Caption {
		out.Style |= wsCaption
	}
	if target.Border {
		out.Style |= wsBorder
	}
	if target.ThickFrame {
		out.Style |= wsThickFrame
	}
	if target.WindowEdge {
		out.ExStyle |= wsExWindowEdge
	}
	return out
}
