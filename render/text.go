package render

import "github.com/gdamore/tcell/v2"

// drawText writes s starting at (x, y), clipped to the screen width
// Returns the column after the last written cell
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	w, _ := screen.Size()
	for _, r := range s {
		if x >= w {
			break
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
	return x
}

// drawCentered writes s centered on row y
func drawCentered(screen tcell.Screen, y int, s string, style tcell.Style) {
	w, _ := screen.Size()
	x := (w - len([]rune(s))) / 2
	drawText(screen, x, y, s, style)
}
