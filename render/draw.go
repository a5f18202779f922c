package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-racer/core"
)

// Shading characters shared by road, backgrounds and HUD widgets
const (
	CharFull  = '█'
	CharDark  = '▓'
	CharMed   = '▒'
	CharLight = '░'
)

// drawBox draws a double-line box. Writes outside the buffer are clipped by
// the buffer itself.
func drawBox(buf *core.Buffer, x, y, w, h int, style tcell.Style) {
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			var c rune
			switch {
			case i == 0 && j == 0:
				c = '╔'
			case i == 0 && j == w-1:
				c = '╗'
			case i == h-1 && j == 0:
				c = '╚'
			case i == h-1 && j == w-1:
				c = '╝'
			case i == 0 || i == h-1:
				c = '═'
			case j == 0 || j == w-1:
				c = '║'
			default:
				c = ' '
			}
			buf.Set(x+j, y+i, c, style)
		}
	}
}

// drawString writes a string horizontally starting at (x, y)
func drawString(buf *core.Buffer, x, y int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		buf.Set(x+i, y, r, style)
		i++
	}
}

// fillBackground repaints the background of a rectangle white, forcing
// defaulted foregrounds to black so HUD text stays readable. Only the
// HUD and minimap rectangles use this.
func fillBackground(buf *core.Buffer, x, y, w, h int) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			buf.MapStyle(col, row, func(c core.Cell) tcell.Style {
				fg, _, _ := c.Style.Decompose()
				if fg == tcell.ColorDefault {
					fg = tcell.ColorBlack
				}
				return c.Style.Foreground(fg).Background(tcell.ColorWhite)
			})
		}
	}
}

// tintRegion recolors the foreground of every non-blank cell in a rectangle
func tintRegion(buf *core.Buffer, x, y, w, h int, fg tcell.Color) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			buf.MapStyle(col, row, func(c core.Cell) tcell.Style {
				if c.Rune == ' ' {
					return c.Style
				}
				return c.Style.Foreground(fg)
			})
		}
	}
}
