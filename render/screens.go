package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-racer/core"
	"github.com/lixenwraith/term-racer/engine"
	"github.com/lixenwraith/term-racer/track"
)

// drawBoot renders the title screen
func drawBoot(buf *core.Buffer) {
	drawBox(buf, 35, 14, 50, 12, styleDefault)
	drawString(buf, 50, 18, "TERM RACER : KERNEL vX.Y (MT)", styleDefault)
	drawString(buf, 48, 22, "[ PRESS SPACE TO START ]", styleDefault)
}

// drawMapSelect renders the track chooser with description panel and a
// preview of the highlighted track
func drawMapSelect(buf *core.Buffer, selected int, preview []track.Point) {
	drawBox(buf, 15, 8, 40, 14, styleDefault)
	drawString(buf, 26, 10, "SELECT TRACK", styleDefault)
	for i, info := range track.Maps {
		marker := "  "
		if selected == info.ID {
			marker = "▶ "
		}
		drawString(buf, 18, 13+i*2, marker+info.Name, styleDefault)
	}

	info := track.Maps[selected-1]
	drawBox(buf, 15, 23, 40, 7, styleDefault)
	drawString(buf, 17, 24, "DESCRIPTION:", styleDefault)
	drawString(buf, 17, 25, info.Title, styleDefault)
	drawString(buf, 17, 26, info.Subtitle, styleDefault)
	drawString(buf, 20, 28, "[↑↓] Select [SPACE] Start", styleDefault)

	drawTrackView(buf, 65, 8, 40, 22, preview, -1, nil)
}

// drawGameOver overlays the crash report on the frozen road view
func drawGameOver(buf *core.Buffer, snap engine.Snapshot, total, elapsed float64) {
	drawBox(buf, 35, 10, 50, 16, styleDefault)
	drawString(buf, 52, 12, "╔══════════════════╗", styleDefault)
	drawString(buf, 52, 13, "║                  ║", styleDefault)
	drawString(buf, 52, 14, "║   GAME  OVER     ║", styleDefault)
	drawString(buf, 52, 15, "║                  ║", styleDefault)
	drawString(buf, 52, 16, "╚══════════════════╝", styleDefault)

	drawString(buf, 48, 18, "!! CRASHED !!", styleDefault)
	drawString(buf, 45, 20, fmt.Sprintf("Final Distance: %.0f / %.0f", snap.Distance, total), styleDefault)
	drawString(buf, 45, 21, fmt.Sprintf("Time: %.2f sec", elapsed), styleDefault)
	drawString(buf, 45, 22, fmt.Sprintf("Final Speed: %d km/h", int(snap.Speed)), styleDefault)

	drawString(buf, 46, 24, "[SPACE] Return to Menu", styleDefault)
	drawString(buf, 46, 25, "[ESC] Exit Game", styleDefault)

	tintRegion(buf, 35, 10, 50, 16, tcell.ColorRed)
}

// victoryPalette is the gold/white shimmer cycle for the win screen
var victoryPalette = [6]tcell.Color{
	tcell.ColorYellow,
	tcell.ColorWhite,
	tcell.ColorLime,
	tcell.ColorYellow,
	tcell.ColorRed,
	tcell.ColorYellow,
}

// drawWin overlays the victory screen with race statistics, a time-based
// performance rating and an animated shimmer
func drawWin(buf *core.Buffer, total, elapsed, animTime float64) {
	animOffset := int(math.Sin(animTime*2) * 2)

	drawBox(buf, 30, 5, 60, 20, styleDefault)
	drawString(buf, 35, 6, "╔═══════════════════════════════════════════╗", styleDefault)

	titleY := 8
	drawString(buf, 42+animOffset, titleY, "╔╗  ╦ ╦╔═╗╔═╗╔╦╗╦ ╦╔═╗╦", styleDefault)
	drawString(buf, 42+animOffset, titleY+1, "╠╩╗ ║║║╠═╣║   ║ ╠═╣║ ╦║", styleDefault)
	drawString(buf, 42+animOffset, titleY+2, "╚═╝ ╚╩╝╩ ╩╚═╝ ╩ ╩ ╩╚═╝╩", styleDefault)
	drawString(buf, 48+animOffset, titleY+4, "★ ★ ★ ★ ★", styleDefault)

	drawString(buf, 35, 15, "╠═══════════════════════════════════════════╣", styleDefault)

	statY := 17
	avgSpeed := 0.0
	if elapsed > 0 {
		avgSpeed = total / elapsed
	}
	drawBox(buf, 37, statY, 41, 8, styleDefault)
	drawString(buf, 39, statY+1, "RACE STATISTICS", styleDefault)
	drawString(buf, 39, statY+3, fmt.Sprintf("Total Distance:  %.0f units", total), styleDefault)
	drawString(buf, 39, statY+4, fmt.Sprintf("Completion Time: %.2f sec", elapsed), styleDefault)
	drawString(buf, 39, statY+5, fmt.Sprintf("Average Speed:   %.1f km/h", avgSpeed), styleDefault)
	drawString(buf, 39, statY+6, "Performance:     "+performanceRating(total, elapsed), styleDefault)

	drawString(buf, 42, 23, "[SPACE] Return  [ESC] Exit", styleDefault)

	// Gold shimmer swept across the overlay
	for y := 5; y < 25; y++ {
		for x := 30; x < 90; x++ {
			phase := (int(animTime*3) + x + y) % 6
			buf.MapStyle(x, y, func(c core.Cell) tcell.Style {
				if c.Rune == ' ' {
					return c.Style
				}
				return c.Style.Foreground(victoryPalette[phase])
			})
		}
	}
}

// performanceRating grades the completion time against the track length
func performanceRating(total, elapsed float64) string {
	switch {
	case elapsed < total/30:
		return "EXCELLENT!"
	case elapsed < total/25:
		return "GREAT!"
	case elapsed < total/20:
		return "GOOD!"
	default:
		return "COMPLETED!"
	}
}
