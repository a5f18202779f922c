// Package render runs the frame loop: the pseudo-3D road rasterizer, the
// per-map themes, HUD and minimap compositing, and the menu screens that
// drive the game state machine from edge-triggered input.
package render

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
	"github.com/lixenwraith/term-racer/engine"
	"github.com/lixenwraith/term-racer/track"
)

// Renderer owns the frame buffer, the camera and all menu/screen state.
// It is the only writer to the console sink and the only consumer of the
// menu edge signals.
type Renderer struct {
	ctx    *engine.Context
	screen tcell.Screen
	buf    *core.Buffer
	theme  Theme
	cam    camera

	selected int     // Highlighted map on the select screen
	elapsed  float64 // Race time in seconds
	winAnim  float64 // Victory shimmer clock

	polyline      []track.Point
	obstacleFracs []float64
	previews      [track.MapCount][]track.Point

	// Held only while copying the finished frame to the sink
	sinkMu sync.Mutex
}

// NewRenderer creates a renderer with the map previews precomputed
func NewRenderer(ctx *engine.Context, screen tcell.Screen) *Renderer {
	r := &Renderer{
		ctx:      ctx,
		screen:   screen,
		buf:      core.NewBuffer(constants.ScreenWidth, constants.ScreenHeight),
		theme:    themeFor(ctx.MapID()),
		selected: 1,
	}
	for i := range r.previews {
		r.previews[i] = track.Build(i + 1).Polyline()
	}
	trk := ctx.Track()
	r.polyline = trk.Polyline()
	r.obstacleFracs = obstacleFractions(trk)
	return r
}

// Run is the render thread body: a fixed frame-rate loop decoupled from the
// physics rate, reading the latest vehicle snapshot each tick.
func (r *Renderer) Run() {
	ticker := time.NewTicker(constants.FrameInterval)
	defer ticker.Stop()

	last := time.Now()
	for r.ctx.Running.Load() {
		now := <-ticker.C
		r.Frame(now.Sub(last).Seconds())
		last = now
	}
}

// Frame composes and presents one frame, handling the state transitions
// owned by the renderer
func (r *Renderer) Frame(dt float64) {
	ctx := r.ctx
	s := ctx.Sampler
	st := ctx.State.Current()
	if st == core.StateRunning {
		r.elapsed += dt
	}

	r.buf.Clear(' ', styleDefault)

	switch st {
	case core.StateBoot:
		drawBoot(r.buf)
		if s.Confirm.Take() {
			ctx.State.Set(core.StateMapSelect)
		}
		if s.Escape.Take() {
			ctx.State.Set(core.StateHalt)
		}

	case core.StateMapSelect:
		drawMapSelect(r.buf, r.selected, r.previews[r.selected-1])
		if s.Up.Take() && r.selected > 1 {
			r.selected--
		}
		if s.Down.Take() && r.selected < track.MapCount {
			r.selected++
		}
		if s.Digit1.Take() {
			r.selected = 1
		}
		if s.Digit2.Take() {
			r.selected = 2
		}
		if s.Digit3.Take() {
			r.selected = 3
		}
		if s.Confirm.Take() {
			r.startRace()
		}
		if s.Escape.Take() {
			ctx.State.Set(core.StateBoot)
		}

	case core.StateRunning, core.StateWin, core.StateGameOver:
		r.drawRace(st, dt)

	case core.StateHalt:
		ctx.Stop()
		return
	}

	r.present()
}

// startRace loads the selected track and resets all per-race state
func (r *Renderer) startRace() {
	ctx := r.ctx
	ctx.LoadMap(r.selected)
	ctx.Vehicle.Reset()
	r.cam.reset()
	r.elapsed = 0
	r.winAnim = 0
	r.theme = themeFor(r.selected)
	trk := ctx.Track()
	r.polyline = trk.Polyline()
	r.obstacleFracs = obstacleFractions(trk)
	ctx.State.Set(core.StateRunning)
}

// drawRace renders the shared road view; Win and GameOver draw their
// overlays on top of it and consume the return/exit edges.
func (r *Renderer) drawRace(st core.GameState, dt float64) {
	ctx := r.ctx
	trk := ctx.Track()
	total := trk.TotalLength()
	snap := ctx.Vehicle.Snapshot()

	drawRoadView(r.buf, trk, r.theme, &r.cam, snap, dt)
	drawHUD(r.buf, snap, total, r.elapsed, &ctx.Warning)

	playerFrac := 0.0
	if total > 0 {
		playerFrac = snap.Distance / total
	}
	drawTrackView(r.buf, constants.MinimapX, constants.MinimapY,
		constants.MinimapWidth, constants.MinimapHeight,
		r.polyline, playerFrac, r.obstacleFracs)
	fillBackground(r.buf, constants.MinimapX, constants.MinimapY,
		constants.MinimapWidth, constants.MinimapHeight)

	s := ctx.Sampler
	switch st {
	case core.StateGameOver:
		drawGameOver(r.buf, snap, total, r.elapsed)
		if s.Confirm.Take() {
			ctx.Vehicle.Reset()
			ctx.State.Set(core.StateMapSelect)
		}
		if s.Escape.Take() {
			ctx.State.Set(core.StateHalt)
		}
	case core.StateWin:
		r.winAnim += dt
		drawWin(r.buf, total, r.elapsed, r.winAnim)
		if s.Confirm.Take() {
			ctx.Vehicle.Reset()
			r.winAnim = 0
			ctx.State.Set(core.StateMapSelect)
		}
		if s.Escape.Take() {
			ctx.State.Set(core.StateHalt)
		}
	}
}

// present copies the finished frame to the terminal, centered on larger
// screens. The sink lock is held only for the copy-out.
func (r *Renderer) present() {
	r.sinkMu.Lock()
	defer r.sinkMu.Unlock()

	sw, sh := r.screen.Size()
	ox := (sw - r.buf.Width()) / 2
	oy := (sh - r.buf.Height()) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	r.buf.Each(func(x, y int, c core.Cell) {
		r.screen.SetContent(ox+x, oy+y, c.Rune, nil, c.Style)
	})
	r.screen.Show()
}
