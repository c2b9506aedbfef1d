// Package crossing implements the play field of the crossing game: the lane
// layout, the player and scoring. It has no terminal dependencies; rendering
// goes through the Surface interface.
package crossing

import (
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Surface is anything the field can draw on. Coordinates are field cells.
// viewport.Viewport and core.Screen both satisfy it.
type Surface interface {
	Set(x, y int, r rune, p core.Pair)
}

// Glyphs are the characters used to draw the field.
type Glyphs struct {
	Player rune
	Ground rune
	Water  rune
	Safe   rune
}

// DefaultGlyphs returns the built-in glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{Player: '@', Ground: '.', Water: '~', Safe: ' '}
}

// Field is one play session: a cols x rows grid whose bottom row is the spawn
// strip and whose other rows are covered by the lane map.
type Field struct {
	cols   int
	rows   int
	seed   int64
	lanes  Lanes
	player Player
}

// NewField generates the lanes from seed and spawns the player at the
// bottom centre. allTimeBest carries the record over from earlier sessions.
func NewField(cols, rows int, seed int64, allTimeBest int) *Field {
	cols, rows = max(cols, 1), max(rows, 2)
	f := &Field{
		cols:  cols,
		rows:  rows,
		seed:  seed,
		lanes: GenerateLanes(rows-1, seed),
	}
	f.player = Player{
		X:           cols / 2,
		Y:           f.SpawnRow(),
		AllTimeBest: max(allTimeBest, 0),
	}
	return f
}

// Cols returns the field width.
func (f *Field) Cols() int { return f.cols }

// Rows returns the field height, spawn strip included.
func (f *Field) Rows() int { return f.rows }

// Seed returns the seed the lanes were generated from.
func (f *Field) Seed() int64 { return f.seed }

// SpawnRow returns the row the player starts on.
func (f *Field) SpawnRow() int { return f.rows - 1 }

// Lanes returns the lane map (rows above the spawn strip).
func (f *Field) Lanes() Lanes { return f.lanes }

// Player returns a copy of the player state.
func (f *Field) Player() Player { return f.player }

// LaneAt returns the terrain of row y. The spawn strip counts as safe.
func (f *Field) LaneAt(y int) Lane {
	if y >= 0 && y < len(f.lanes) {
		return f.lanes[y]
	}
	return LaneSafe
}

// Move steps the player one cell, clamped to the field.
// Returns true if the player actually moved.
func (f *Field) Move(a core.Action) bool {
	p := &f.player
	x, y := p.X, p.Y

	switch a {
	case core.ActionUp:
		y--
	case core.ActionDown:
		y++
	case core.ActionLeft:
		x--
	case core.ActionRight:
		x++
	default:
		return false
	}

	x = core.Clamp(x, 0, f.cols-1)
	y = core.Clamp(y, 0, f.rows-1)
	if x == p.X && y == p.Y {
		return false
	}

	p.Progress += p.Y - y
	p.X, p.Y = x, y
	p.record()
	return true
}

// Render draws every row in its lane colors and the player on top.
func (f *Field) Render(dst Surface, g Glyphs) {
	for y := 0; y < f.rows; y++ {
		r, pair := laneStyle(f.LaneAt(y), g)
		for x := 0; x < f.cols; x++ {
			dst.Set(x, y, r, pair)
		}
	}
	dst.Set(f.player.X, f.player.Y, g.Player, core.PairPlayer)
}

func laneStyle(l Lane, g Glyphs) (rune, core.Pair) {
	switch l {
	case LaneGround:
		return g.Ground, core.PairGround
	case LaneWater:
		return g.Water, core.PairWater
	default:
		return g.Safe, core.PairSafe
	}
}
