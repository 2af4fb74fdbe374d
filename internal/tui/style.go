package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the styles the renderer draws with. Derived entries (the
// dimmed gutter, the selection background) are blended from the two base
// colors so a palette stays coherent from just a foreground and background.
type Palette struct {
	Base       tcell.Style
	Gutter     tcell.Style
	Selection  tcell.Style
	Cursor     tcell.Style
	StatusBar  tcell.Style
	ModalField tcell.Style
}

// DefaultPalette is a dark scheme derived from one fg/bg pair.
var DefaultPalette = NewPalette("#d8dee9", "#2e3440")

// NewPalette builds a palette from hex foreground and background colors.
// Invalid hex strings fall back to plain terminal defaults.
func NewPalette(fgHex, bgHex string) Palette {
	fg, errF := colorful.Hex(fgHex)
	bg, errB := colorful.Hex(bgHex)
	if errF != nil || errB != nil {
		return Palette{
			Base:       tcell.StyleDefault,
			Gutter:     tcell.StyleDefault.Dim(true),
			Selection:  tcell.StyleDefault.Reverse(true),
			Cursor:     tcell.StyleDefault.Reverse(true),
			StatusBar:  tcell.StyleDefault.Reverse(true),
			ModalField: tcell.StyleDefault.Reverse(true),
		}
	}

	base := tcell.StyleDefault.
		Foreground(toTcell(fg)).
		Background(toTcell(bg))

	gutterFg := bg.BlendLab(fg, 0.45)
	selectionBg := bg.BlendLab(fg, 0.25)
	statusBg := bg.BlendLab(fg, 0.12)

	return Palette{
		Base:       base,
		Gutter:     base.Foreground(toTcell(gutterFg)),
		Selection:  base.Background(toTcell(selectionBg)),
		Cursor:     base.Reverse(true),
		StatusBar:  base.Background(toTcell(statusBg)).Bold(true),
		ModalField: base.Background(toTcell(statusBg)),
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
