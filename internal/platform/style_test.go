package platform

import "testing"

func TestFrameStyle_Toggle(t *testing.T) {
	tests := []struct {
		name string
		in   FrameStyle
		on   bool
		want FrameStyle
	}{
		{"enable on bare window", FrameStyle{}, true, Framed},
		{"enable keeps window edge", FrameStyle{WindowEdge: true}, true, Framed.Union(FrameStyle{WindowEdge: true})},
		{"disable strips everything", FrameCapabilities, false, FrameStyle{}},
		{"disable on bare window", FrameStyle{}, false, FrameStyle{}},
		{"disable partial", FrameStyle{Border: true, WindowEdge: true}, false, FrameStyle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Toggle(tt.on); got != tt.want {
				t.Fatalf("Toggle(%v) = %+v, want %+v", tt.on, got, tt.want)
			}
		})
	}
}

func TestWin32Style_Decode(t *testing.T) {
	// WS_OVERLAPPEDWINDOW with WS_EX_WINDOWEDGE.
	w := Win32Style{Style: 0x00CF0000, ExStyle: 0x00000100}
	got := w.FrameStyle()
	want := FrameStyle{Border: true, ThickFrame: true, Caption: true, WindowEdge: true}
	if got != want {
		t.Fatalf("FrameStyle() = %+v, want %+v", got, want)
	}

	// WS_POPUP | WS_BORDER: border but no caption.
	w = Win32Style{Style: 0x80800000}
	got = w.FrameStyle()
	want = FrameStyle{Border: true}
	if got != want {
		t.Fatalf("FrameStyle() = %+v, want %+v", got, want)
	}
}

func TestWin32Style_FramelessRoundTrip(t *testing.T) {
	const wsVisible = 0x10000000
	const wsSysMenu = 0x00080000
	w := Win32Style{Style: 0x00CF0000 | wsVisible, ExStyle: 0x00000100 | 0x00000008}

	off := w.WithFrameStyle(w.FrameStyle().Toggle(false))
	if off.Style != wsVisible|wsSysMenu|0x00030000 {
		t.Fatalf("frameless style = 0x%08x", off.Style)
	}
	if off.ExStyle != 0x00000008 {
		t.Fatalf("frameless exstyle = 0x%08x, want topmost bit only", off.ExStyle)
	}
	if got := off.FrameStyle(); got != (FrameStyle{}) {
		t.Fatalf("decoded frameless = %+v", got)
	}

	on := off.WithFrameStyle(off.FrameStyle().Toggle(true))
	if on.Style&0x00C40000 != 0x00C40000 {
		t.Fatalf("framed style missing caption/thickframe bits: 0x%08x", on.Style)
	}
	if on.Style&wsVisible == 0 {
		t.Fatalf("unrelated bits must survive")
	}
}

func TestWin32Style_KeepBorderWithoutCaption(t *testing.T) {
	w := Win32Style{Style: wsCaption}
	got := w.WithFrameStyle(FrameStyle{Border: true})
	if got.Style != wsBorder {
		t.Fatalf("style = 0x%08x, want WS_BORDER only", got.Style)
	}
}
