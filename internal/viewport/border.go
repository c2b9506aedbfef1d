package viewport

import "github.com/vovakirdan/tui-crossing/internal/core"

// glyphs is one border glyph set.
type glyphs struct {
	top, bottom, left, right rune
	tl, tr, bl, br           rune
}

var borderGlyphs = map[core.BorderStyle]glyphs{
	core.BorderSimple: {
		top: '-', bottom: '-', left: '|', right: '|',
		tl: '+', tr: '+', bl: '+', br: '+',
	},
	core.BorderClean: {
		top: '─', bottom: '─', left: '│', right: '│',
		tl: '┌', tr: '┐', bl: '└', br: '┘',
	},
	core.BorderWrapped: {
		top: '=', bottom: '=', left: '[', right: ']',
		tl: '=', tr: '=', bl: '=', br: '=',
	},
}

func glyphsFor(style core.BorderStyle) glyphs {
	if g, ok := borderGlyphs[style]; ok {
		return g
	}
	return borderGlyphs[core.BorderSimple]
}

// SharesDivider reports whether adjacent viewports drawn in this style may
// overlap by one row. ASCII styles produce the same divider line from either
// side; box-drawing corners do not.
func SharesDivider(style core.BorderStyle) bool {
	return style != core.BorderClean
}
