package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/motif"
)

func TestDecorationsFromHints(t *testing.T) {
	full := Decorations{Border: true, ResizeHandle: true, Title: true}

	tests := []struct {
		name  string
		hints *motif.Hints
		want  Decorations
	}{
		{name: "no property", hints: nil, want: full},
		{
			name:  "decorations flag unset",
			hints: &motif.Hints{Flags: motif.HintFunctions, Decoration: motif.DecorationNone},
			want:  full,
		},
		{
			name:  "none",
			hints: &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationNone},
			want:  Decorations{},
		},
		{
			name:  "explicit border only",
			hints: &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationBorder},
			want:  Decorations{Border: true},
		},
		{
			name:  "explicit title and resize handle",
			hints: &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationTitle | motif.DecorationResizeH},
			want:  Decorations{ResizeHandle: true, Title: true},
		},
		{
			name:  "all",
			hints: &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationAll},
			want:  full,
		},
		{
			name:  "all except title",
			hints: &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationAll | motif.DecorationTitle},
			want:  Decorations{Border: true, ResizeHandle: true},
		},
		{
			name:  "all except border and resize handle",
			hints: &motif.Hints{Flags: motif.HintDecorations, Decoration: motif.DecorationAll | motif.DecorationBorder | motif.DecorationResizeH},
			want:  Decorations{Title: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decorationsFromHints(tt.hints); got != tt.want {
				t.Fatalf("decorationsFromHints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHintsWithDecorations(t *testing.T) {
	const titleBits = motif.DecorationTitle | motif.DecorationMenu | motif.DecorationMinimize | motif.DecorationMaximize

	tests := []struct {
		name string
		in   Decorations
		want uint
	}{
		{name: "all", in: Decorations{Border: true, ResizeHandle: true, Title: true}, want: motif.DecorationAll},
		{name: "none", in: Decorations{}, want: motif.DecorationNone},
		{name: "border", in: Decorations{Border: true}, want: motif.DecorationBorder},
		{name: "title brings menu and buttons", in: Decorations{Title: true}, want: titleBits},
		{name: "border and resize handle", in: Decorations{Border: true, ResizeHandle: true}, want: motif.DecorationBorder | motif.DecorationResizeH},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hintsWithDecorations(nil, tt.in)
			if got.Flags&motif.HintDecorations == 0 {
				t.Fatalf("expected HintDecorations flag, got flags 0x%x", got.Flags)
			}
			if got.Decoration != tt.want {
				t.Fatalf("Decoration = 0x%x, want 0x%x", got.Decoration, tt.want)
			}
			if back := decorationsFromHints(got); back != tt.in {
				t.Fatalf("round trip = %+v, want %+v", back, tt.in)
			}
		})
	}
}

func TestHintsWithDecorations_KeepsOtherFields(t *testing.T) {
	in := &motif.Hints{
		Flags:      motif.HintFunctions | motif.HintInputMode,
		Function:   motif.FunctionMove | motif.FunctionClose,
		Decoration: motif.DecorationAll,
		Input:      2,
		Status:     1,
	}

	got := hintsWithDecorations(in, Decorations{})

	if got == in {
		t.Fatalf("expected a copy, got the input pointer")
	}
	if in.Decoration != motif.DecorationAll {
		t.Fatalf("input hints were modified: %+v", in)
	}
	if got.Flags != motif.HintFunctions|motif.HintInputMode|motif.HintDecorations {
		t.Fatalf("Flags = 0x%x", got.Flags)
	}
	if got.Function != in.Function || got.Input != 2 || got.Status != 1 {
		t.Fatalf("non-decoration fields changed: %+v", got)
	}
	if got.Decoration != motif.DecorationNone {
		t.Fatalf("Decoration = 0x%x, want none", got.Decoration)
	}
}

func TestExtents(t *testing.T) {
	e := Extents{Left: 2, Right: 3, Top: 30, Bottom: 4}
	if e.Horizontal() != 5 || e.Vertical() != 34 {
		t.Fatalf("Horizontal/Vertical = %d/%d, want 5/34", e.Horizontal(), e.Vertical())
	}
}
