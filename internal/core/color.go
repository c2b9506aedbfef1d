package core

import "strings"

// Color represents a terminal color.
// Values are ANSI 256-color codes so every backend can map them directly.
type Color uint8

// Predefined colors for game elements.
const (
	ColorBlack Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// ColorOrange is outside the 16-color range.
const ColorOrange Color = 208

var colorNames = map[string]Color{
	"black":          ColorBlack,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"gray":           ColorGray,
	"grey":           ColorGray,
	"bright-red":     ColorBrightRed,
	"bright-green":   ColorBrightGreen,
	"bright-yellow":  ColorBrightYellow,
	"bright-blue":    ColorBrightBlue,
	"bright-magenta": ColorBrightMagenta,
	"bright-cyan":    ColorBrightCyan,
	"bright-white":   ColorBrightWhite,
	"orange":         ColorOrange,
}

// ParseColor resolves a color name (case-insensitive).
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Pair identifies a foreground/background color slot, in the manner of a
// curses color pair. Drawing code only ever refers to pairs; the palette
// decides the actual colors.
type Pair uint8

const (
	PairDefault Pair = iota
	PairBorder
	PairTitle
	PairHighlight
	PairGround
	PairWater
	PairSafe
	PairPlayer
	PairHUD

	pairCount
)

var pairNames = [...]string{
	PairDefault:   "default",
	PairBorder:    "border",
	PairTitle:     "title",
	PairHighlight: "highlight",
	PairGround:    "ground",
	PairWater:     "water",
	PairSafe:      "safe",
	PairPlayer:    "player",
	PairHUD:       "hud",
}

// String returns the pair's config name.
func (p Pair) String() string {
	if p < pairCount {
		return pairNames[p]
	}
	return "unknown"
}

// ParsePair resolves a pair config name.
func ParsePair(name string) (Pair, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range pairNames {
		if n == name {
			return Pair(i), true
		}
	}
	return PairDefault, false
}

// Pairs returns every defined pair in order.
func Pairs() []Pair {
	out := make([]Pair, 0, pairCount)
	for p := PairDefault; p < pairCount; p++ {
		out = append(out, p)
	}
	return out
}

// Style is the resolved color of a pair. HasBg=false leaves the terminal
// background untouched.
type Style struct {
	Fg    Color
	Bg    Color
	HasBg bool
}

// Palette maps pairs to styles.
type Palette map[Pair]Style

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		PairDefault:   {Fg: ColorWhite},
		PairBorder:    {Fg: ColorCyan},
		PairTitle:     {Fg: ColorBrightYellow},
		PairHighlight: {Fg: ColorBlack, Bg: ColorBrightYellow, HasBg: true},
		PairGround:    {Fg: ColorBlue, Bg: ColorRed, HasBg: true},
		PairWater:     {Fg: ColorWhite, Bg: ColorBlue, HasBg: true},
		PairSafe:      {Fg: ColorBlack, Bg: ColorGreen, HasBg: true},
		PairPlayer:    {Fg: ColorBrightWhite, Bg: ColorMagenta, HasBg: true},
		PairHUD:       {Fg: ColorBrightWhite},
	}
}

// Style returns the style for p, falling back to PairDefault.
func (p Palette) Style(pair Pair) Style {
	if s, ok := p[pair]; ok {
		return s
	}
	return p[PairDefault]
}
