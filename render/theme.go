package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Theme is the per-map look: a closed-form backdrop function of screen
// position and camera offset, the road surface runes, and the shoulder band
// cell. Backdrop cells never depend on road state, only on (x, y, offset).
type Theme interface {
	// Background returns the backdrop cell above the horizon, or ok=false
	// to leave the cell empty. offset already includes the speed blur.
	Background(x, y, horizon int, offset float64) (rune, tcell.Style, bool)

	// Surface returns the road, center-stripe and ground runes
	Surface() (road, stripe, ground rune)

	// Shoulder returns the cell for the shoulder band at screen column x
	Shoulder(stripe bool, worldDist, playerDist float64, x int) (rune, tcell.Style)
}

// themeFor selects the theme for a map id
func themeFor(mapID int) Theme {
	switch mapID {
	case 2:
		return cityTheme{}
	case 3:
		return spaceTheme{}
	default:
		return gridTheme{}
	}
}

var (
	styleDefault = tcell.StyleDefault
	styleGreen   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLime    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleFuchsia = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleRed     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWhite   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// gridTheme is map 1: layered wireframe mountain ridges
type gridTheme struct{}

func (gridTheme) Background(x, y, horizon int, offset float64) (rune, tcell.Style, bool) {
	// Near ridge wins over the far one
	f1 := (float64(x) + offset*0.2) * 0.08
	h1 := int(math.Abs(math.Sin(f1))*10 + 4)
	if y >= horizon-h1 {
		r := CharLight
		if (x+y)%2 != 0 {
			r = CharMed
		}
		return r, styleLime, true
	}
	f2 := (float64(x) + offset*0.1) * 0.07
	h2 := int(math.Abs(math.Sin(f2))*8 + 3)
	if y >= horizon-h2 {
		return CharMed, styleGreen, true
	}
	return 0, styleDefault, false
}

func (gridTheme) Surface() (rune, rune, rune) {
	return CharMed, CharFull, CharDark
}

func (gridTheme) Shoulder(bool, float64, float64, int) (rune, tcell.Style) {
	return CharFull, styleDefault
}

// cityTheme is map 2: a procedural skyline with lit windows and red/white
// barrier shoulders
type cityTheme struct{}

func (cityTheme) Background(x, y, horizon int, offset float64) (rune, tcell.Style, bool) {
	cityOffset := float64(x) + offset
	bIdx := float64(int(cityOffset / 6))
	rh := math.Abs(math.Sin(bIdx*132.5) + math.Sin(bIdx*45.1)*0.5)
	h := int(rh*8 + 4)
	if y >= horizon-h {
		if rh > 0.4 && x%3 != 0 && y%3 != 0 && y > horizon-h+3 {
			return CharLight, styleDefault, true // window
		}
		return CharFull, styleFuchsia, true
	}
	bIdx2 := float64(int((cityOffset + 100) / 4))
	rh2 := math.Abs(math.Sin(bIdx2 * 99.3))
	h2 := int(rh2*6 + 2)
	if y >= horizon-h2 {
		return CharMed, styleDefault, true
	}
	return 0, styleDefault, false
}

func (cityTheme) Surface() (rune, rune, rune) {
	return CharDark, CharFull, CharLight
}

func (cityTheme) Shoulder(_ bool, worldDist, _ float64, _ int) (rune, tcell.Style) {
	if int(worldDist/5)%2 == 0 {
		return CharFull, styleRed
	}
	return CharFull, styleWhite
}

// spaceTheme is map 3: a star field with rainbow road edges and no ground
type spaceTheme struct{}

func (spaceTheme) Background(x, y, _ int, offset float64) (rune, tcell.Style, bool) {
	starX := int(float64(x) + offset*0.1)
	noise := (starX ^ (y * 57)) * 1664525
	switch n := noise & 0xFF; {
	case n > 253:
		return '★', styleDefault, true
	case n > 245:
		return '.', styleDefault, true
	}
	return 0, styleDefault, false
}

func (spaceTheme) Surface() (rune, rune, rune) {
	return CharMed, CharFull, ' '
}

var rainbow = [7]tcell.Style{
	tcell.StyleDefault.Foreground(tcell.ColorRed),
	tcell.StyleDefault.Foreground(tcell.ColorYellow),
	tcell.StyleDefault.Foreground(tcell.ColorLime),
	tcell.StyleDefault.Foreground(tcell.ColorGreen),
	tcell.StyleDefault.Foreground(tcell.ColorBlue),
	tcell.StyleDefault.Foreground(tcell.ColorPurple),
	tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
}

func (spaceTheme) Shoulder(stripe bool, _, playerDist float64, x int) (rune, tcell.Style) {
	r := CharMed
	if stripe {
		r = CharFull
	}
	return r, rainbow[(int(playerDist)+x)%7]
}
