package tui

import (
	"testing"

	"github.com/quellen/quill/internal/editable"
	"github.com/quellen/quill/internal/textbuf"
)

func TestViewportFollowsCursor(t *testing.T) {
	s := editable.NewState(editable.EditorContext(),
		"a\nb\nc\nd\ne\nf\ng\nh\ni\nj")
	v := Viewport{ScrollOff: 1}

	s.PlaceCursorAt(editable.Pos(0, 0))
	v.Follow(s, 80, 4)
	if v.TopLine != 0 {
		t.Errorf("TopLine = %d, want 0", v.TopLine)
	}

	s.PlaceCursorAt(editable.Pos(9, 0))
	v.Follow(s, 80, 4)
	if got := v.TopLine; got != 7 {
		t.Errorf("TopLine after jump to last line = %d, want 7", got)
	}

	s.PlaceCursorAt(editable.Pos(0, 0))
	v.Follow(s, 80, 4)
	if v.TopLine != 0 {
		t.Errorf("TopLine after jump back = %d, want 0", v.TopLine)
	}
}

func TestViewportHorizontalFollowExpandsTabs(t *testing.T) {
	s := editable.NewState(editable.EditorContext(), "\tabcdefghij")
	v := Viewport{}

	// Column 5 sits at visual column 8 (tab expands to width 4, then 4 chars).
	s.PlaceCursorAt(editable.Pos(0, 5))
	v.Follow(s, 6, 4)
	if got := v.LeftCol; got != 3 {
		t.Errorf("LeftCol = %d, want 3", got)
	}
}

func TestVisualToBufferPositionClamps(t *testing.T) {
	buf := textbuf.NewStringBufferFromText("\tab")

	tests := []struct {
		line, visCol int
		want         editable.Position
	}{
		{0, 0, editable.Pos(0, 0)},
		{0, 4, editable.Pos(0, 1)},
		{0, 99, editable.Pos(0, 3)},
		{-5, 0, editable.Pos(0, 0)},
		{7, 2, editable.Pos(0, 1)},
	}
	for _, tt := range tests {
		if got := VisualToBufferPosition(buf, tt.line, tt.visCol); got != tt.want {
			t.Errorf("VisualToBufferPosition(%d, %d) = %v, want %v",
				tt.line, tt.visCol, got, tt.want)
		}
	}
}

func TestGutterWidth(t *testing.T) {
	if got := GutterWidth(9, 80); got != 2 {
		t.Errorf("GutterWidth(9) = %d, want 2", got)
	}
	if got := GutterWidth(100, 80); got != 4 {
		t.Errorf("GutterWidth(100) = %d, want 4", got)
	}
	if got := GutterWidth(100, 4); got != 0 {
		t.Errorf("GutterWidth on narrow screen = %d, want 0", got)
	}
}
