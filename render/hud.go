package render

import (
	"fmt"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
	"github.com/lixenwraith/term-racer/engine"
	"github.com/lixenwraith/term-racer/track"
)

// drawHUD composites the system monitor panel: distance, optional obstacle
// warning, elapsed time, speed readout with a proportional bar, and the
// high-speed banner. Drawn as overwrites onto the rendered road.
func drawHUD(buf *core.Buffer, snap engine.Snapshot, total, elapsed float64, warn *engine.Warning) {
	x, y := constants.HUDX, constants.HUDY
	drawBox(buf, x, y, constants.HUDWidth, constants.HUDHeight, styleDefault)
	drawString(buf, x+2, y+1, "SYSTEM MONITOR", styleDefault)

	drawString(buf, x+2, y+3, fmt.Sprintf("DIST : %.0f / %.0f", snap.Distance, total), styleDefault)
	if active, dist, _ := warn.Get(); active {
		drawString(buf, x+2, y+4, fmt.Sprintf("OBST : %.0f m", dist), styleDefault)
	}
	drawString(buf, x+2, y+5, fmt.Sprintf("TIME : %.2f sec", elapsed), styleDefault)
	drawString(buf, x+2, y+7, fmt.Sprintf("SPEED: %3d km/h", int(snap.Speed)), styleDefault)

	// Proportional bar in three density bands
	filled := int(snap.Speed / constants.MaxSpeed * constants.SpeedBarWidth)
	bar := make([]rune, 0, constants.SpeedBarWidth+2)
	bar = append(bar, '[')
	for i := 0; i < constants.SpeedBarWidth; i++ {
		switch {
		case i >= filled:
			bar = append(bar, ' ')
		case i < constants.SpeedBarWidth/3:
			bar = append(bar, CharFull)
		case i < constants.SpeedBarWidth*2/3:
			bar = append(bar, CharDark)
		default:
			bar = append(bar, CharMed)
		}
	}
	bar = append(bar, ']')
	drawString(buf, x+2, y+8, string(bar), styleDefault)

	if snap.Speed > constants.MaxSpeed*constants.HighSpeedFraction {
		drawString(buf, x+2, y+9, ">>> HIGH SPEED <<<", styleDefault)
	}

	fillBackground(buf, x, y, constants.HUDWidth, constants.HUDHeight)
}

// drawTrackView renders a schematic overhead map of the polyline into a
// boxed viewport: the track as solid cells, obstacles as ╳, and optionally
// the player as ★ positioned by fractional distance along the polyline.
// A degenerate extent falls back to a unit range instead of dividing by zero.
func drawTrackView(buf *core.Buffer, x, y, w, h int, points []track.Point, playerFrac float64, obstacleFracs []float64) {
	drawBox(buf, x, y, w, h, styleDefault)
	drawString(buf, x+1, y+1, "TRACK MAP", styleDefault)
	if len(points) == 0 {
		return
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	rx, ry := maxX-minX, maxY-minY
	if rx == 0 {
		rx = 1
	}
	if ry == 0 {
		ry = 1
	}
	sx := float64(w-4) / rx
	sy := float64(h-4) / ry

	plot := func(p track.Point, r rune, margin int) {
		px := x + 2 + int((p.X-minX)*sx)
		py := y + h - 2 - int((p.Y-minY)*sy)
		if px >= x+margin && px < x+w-margin && py >= y+margin && py < y+h-margin {
			buf.SetRune(px, py, r)
		}
	}

	for _, p := range points {
		plot(p, CharFull, 1)
	}

	at := func(frac float64) track.Point {
		idx := int(frac * float64(len(points)))
		if idx > len(points)-1 {
			idx = len(points) - 1
		}
		if idx < 0 {
			idx = 0
		}
		return points[idx]
	}

	for _, frac := range obstacleFracs {
		plot(at(frac), '╳', 1)
	}
	if playerFrac >= 0 {
		plot(at(playerFrac), '★', 0)
	}
}

// obstacleFractions precomputes each obstacle's fractional position along
// the track for the overhead map markers
func obstacleFractions(trk *track.Track) []float64 {
	total := trk.TotalLength()
	if total <= 0 {
		total = 1
	}
	var fracs []float64
	for _, obs := range trk.GlobalObstacles() {
		fracs = append(fracs, obs.SegDistance/total)
	}
	return fracs
}
