package viewport

import "github.com/vovakirdan/tui-crossing/internal/core"

// BarRows is the height of the top and bottom bars: border, one text line, border.
const BarRows = 3

// Layout is the placement of the three game regions on the screen.
type Layout struct {
	Top    core.Rect
	Main   core.Rect
	Bottom core.Rect
}

// ComputeLayout places a width x height board between the title and status bars.
// The top bar sits at row 0. The board starts at row 2 when the style shares
// its divider with the bar and at row 3 otherwise. The bottom bar follows the
// board directly.
func ComputeLayout(style core.BorderStyle, width, height int) Layout {
	mainY := BarRows
	if SharesDivider(style) {
		mainY = BarRows - 1
	}
	return Layout{
		Top:    core.NewRect(0, 0, width, BarRows),
		Main:   core.NewRect(0, mainY, width, height),
		Bottom: core.NewRect(0, mainY+height, width, BarRows),
	}
}

// Size returns the screen area the layout needs.
func (l Layout) Size() (width, height int) {
	width = core.Max(l.Top.W, core.Max(l.Main.W, l.Bottom.W))
	return width, l.Bottom.Bottom()
}

// Fits reports whether the layout fits a screen of the given size.
func (l Layout) Fits(screenW, screenH int) bool {
	screen := core.NewRect(0, 0, screenW, screenH)
	if !l.Top.Within(screen) || !l.Main.Within(screen) {
		return false
	}
	// The bottom bar's row is derived from the board height; check it
	// against the rows left below the board instead.
	return l.Bottom.W <= screenW && BarRows <= screenH-l.Main.Bottom()
}
