// Package viewport provides owned rectangular regions of a core.Screen.
//
// A Viewport draws into its own buffer and copies it onto the parent screen
// on Present. Drawing is immediate mode: nothing is diffed, so callers only
// redraw what changed.
package viewport

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// MinSize is the smallest region that still has an interior cell.
const MinSize = 3

var (
	// ErrOutOfBounds is returned when a region does not fit its parent screen.
	ErrOutOfBounds = errors.New("viewport: region exceeds parent screen")
	// ErrTooSmall is returned for regions without an interior.
	ErrTooSmall = errors.New("viewport: region too small")
)

// Viewport is a bordered region of a parent screen.
// Coordinates passed to Write, WriteCentered and Set are interior-relative:
// (0, 0) is the first cell inside the border.
type Viewport struct {
	parent   *core.Screen
	x, y     int
	rows     int
	cols     int
	buf      *core.Screen
	released bool
}

// New allocates a rows x cols region at (y, x) on parent.
func New(parent *core.Screen, rows, cols, y, x int) (*Viewport, error) {
	if rows < MinSize || cols < MinSize {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooSmall, cols, rows)
	}
	region := core.NewRect(x, y, cols, rows)
	if parent == nil || !region.Within(parent.Bounds()) {
		return nil, fmt.Errorf("%w: %dx%d at (%d,%d)", ErrOutOfBounds, cols, rows, x, y)
	}

	return &Viewport{
		parent: parent,
		x:      x,
		y:      y,
		rows:   rows,
		cols:   cols,
		buf:    core.NewScreen(cols, rows),
	}, nil
}

// FromRect allocates a viewport covering r.
func FromRect(parent *core.Screen, r core.Rect) (*Viewport, error) {
	return New(parent, r.H, r.W, r.Y, r.X)
}

// Rows returns the outer height.
func (v *Viewport) Rows() int { return v.rows }

// Cols returns the outer width.
func (v *Viewport) Cols() int { return v.cols }

// Origin returns the top-left corner on the parent screen.
func (v *Viewport) Origin() (y, x int) { return v.y, v.x }

// Rect returns the region on the parent screen.
func (v *Viewport) Rect() core.Rect {
	return core.NewRect(v.x, v.y, v.cols, v.rows)
}

// InteriorSize returns the drawable area inside the border ring.
func (v *Viewport) InteriorSize() (rows, cols int) {
	return v.rows - 2, v.cols - 2
}

// Released reports whether Release has been called.
func (v *Viewport) Released() bool { return v.released }

// Clear blanks the interior. The border ring is left alone.
func (v *Viewport) Clear() {
	if v.released {
		return
	}
	for y := 1; y < v.rows-1; y++ {
		for x := 1; x < v.cols-1; x++ {
			v.buf.Set(x, y, ' ', core.PairDefault)
		}
	}
}

// DrawBorder renders the outer ring in the given style.
func (v *Viewport) DrawBorder(style core.BorderStyle) {
	if v.released {
		return
	}
	g := glyphsFor(style)
	right, bottom := v.cols-1, v.rows-1

	for x := 1; x < right; x++ {
		v.buf.Set(x, 0, g.top, core.PairBorder)
		v.buf.Set(x, bottom, g.bottom, core.PairBorder)
	}
	for y := 1; y < bottom; y++ {
		v.buf.Set(0, y, g.left, core.PairBorder)
		v.buf.Set(right, y, g.right, core.PairBorder)
	}
	v.buf.Set(0, 0, g.tl, core.PairBorder)
	v.buf.Set(right, 0, g.tr, core.PairBorder)
	v.buf.Set(0, bottom, g.bl, core.PairBorder)
	v.buf.Set(right, bottom, g.br, core.PairBorder)
}

// MoveTo relocates the region. The parent keeps whatever was drawn at the
// old position until something else overwrites it.
func (v *Viewport) MoveTo(y, x int) error {
	if v.released {
		return nil
	}
	region := core.NewRect(x, y, v.cols, v.rows)
	if !region.Within(v.parent.Bounds()) {
		return fmt.Errorf("%w: move to (%d,%d)", ErrOutOfBounds, x, y)
	}
	v.x, v.y = x, y
	return nil
}

// Set draws a single rune at interior coordinates, clipped to the interior.
func (v *Viewport) Set(x, y int, r rune, p core.Pair) {
	if v.released {
		return
	}
	rows, cols := v.InteriorSize()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	v.buf.Set(x+1, y+1, r, p)
}

// Write draws text at interior coordinates. Wide runes take two cells; the
// text is clipped at the interior edge.
func (v *Viewport) Write(y, x int, text string, p core.Pair) {
	if v.released {
		return
	}
	_, cols := v.InteriorSize()
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > cols {
			return
		}
		v.Set(x, y, r, p)
		if w == 2 {
			v.Set(x+1, y, ' ', p)
		}
		x += w
	}
}

// WriteCentered draws text horizontally centered on interior row y.
func (v *Viewport) WriteCentered(y int, text string, p core.Pair) {
	_, cols := v.InteriorSize()
	x := (cols - runewidth.StringWidth(text)) / 2
	v.Write(y, core.Max(x, 0), text, p)
}

// Cell returns the viewport-local cell at (x, y), border included.
func (v *Viewport) Cell(x, y int) core.Cell {
	return v.buf.GetCell(x, y)
}

// Present copies the region onto the parent screen.
func (v *Viewport) Present() {
	if v.released {
		return
	}
	for y := 0; y < v.rows; y++ {
		for x := 0; x < v.cols; x++ {
			v.parent.SetCell(v.x+x, v.y+y, v.buf.GetCell(x, y))
		}
	}
}

// Release detaches the viewport. Every later call is a no-op.
func (v *Viewport) Release() {
	v.released = true
	v.buf = core.NewScreen(0, 0)
}
