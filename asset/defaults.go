package asset

import "github.com/gdamore/tcell/v2"

// Asset names shared by spawn code and the default catalog
const (
	NameTarget    = "target"
	NameBuildSite = "build_site"
	NamePath      = "path"
)

var (
	styleTomato  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePotato  = tcell.StyleDefault.Foreground(tcell.ColorGoldenrod)
	styleCabbage = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

var defaultHandles = []Handle{
	{Name: NameTarget, Glyph: '●', Style: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)},
	{Name: NameBuildSite, Glyph: '□', Style: tcell.StyleDefault.Foreground(tcell.ColorSilver)},
	{Name: NamePath, Glyph: '·', Style: tcell.StyleDefault.Foreground(tcell.ColorDimGray)},

	{Name: "tower.tomato", Glyph: 'T', Style: styleTomato.Bold(true)},
	{Name: "tower.potato", Glyph: 'P', Style: stylePotato.Bold(true)},
	{Name: "tower.cabbage", Glyph: 'C', Style: styleCabbage.Bold(true)},

	{Name: "bullet.tomato", Glyph: '*', Style: styleTomato},
	{Name: "bullet.potato", Glyph: '•', Style: stylePotato},
	{Name: "bullet.cabbage", Glyph: 'o', Style: styleCabbage},

	{Name: "button.tomato", Glyph: 'T', Style: styleTomato.Reverse(true)},
	{Name: "button.potato", Glyph: 'P', Style: stylePotato.Reverse(true)},
	{Name: "button.cabbage", Glyph: 'C', Style: styleCabbage.Reverse(true)},
}
