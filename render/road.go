package render

import (
	"math"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
	"github.com/lixenwraith/term-racer/engine"
	"github.com/lixenwraith/term-racer/track"
)

// drawRoadView rasterizes one frame of the pseudo-3D road from the vehicle
// snapshot: themed backdrop above the horizon, then per-row perspective road
// with shoulders, stripes, finish overlay and obstacle gaps, then the car.
func drawRoadView(buf *core.Buffer, trk *track.Track, theme Theme, cam *camera, snap engine.Snapshot, dt float64) {
	width := buf.Width()
	horizon := constants.HorizonY
	total := trk.TotalLength()

	// Camera trails the vehicle; its curvature target comes from its own
	// lookahead segment, not the vehicle's.
	camDist := math.Max(0, snap.Distance-constants.CameraLagDistance)
	camIdx, camPos := trk.Locate(camDist)
	var camTarget float64
	if camDist < total && camIdx < len(trk.Segments) {
		camTarget = trk.Segments[camIdx].Curvature
	}
	cam.update(camTarget, snap.Speed, dt)

	// Backdrop parallax, scrolled faster at speed
	bgOffset := cam.parallax*constants.ParallaxCurvatureGain - snap.OffsetX*constants.ParallaxOffsetGain
	speedBlur := 1 + snap.Speed/constants.MaxSpeed*constants.SpeedBlurGain
	themeOffset := bgOffset * speedBlur

	for y := 0; y < horizon; y++ {
		for x := 0; x < width; x++ {
			if r, style, ok := theme.Background(x, y, horizon, themeOffset); ok {
				buf.Set(x, y, r, style)
			}
		}
	}

	roadRune, stripeRune, groundRune := theme.Surface()
	speedFactor := 1 + snap.Speed/constants.MaxSpeed*constants.StripeSpeedGain
	stripeOffset := snap.Distance * constants.StripeDistanceGain * speedFactor

	for yi := 0; yi < horizon; yi++ {
		pers := float64(yi) / float64(horizon)
		mid := 0.5 + cam.curvature*math.Pow(1-pers, constants.CurvatureBendPower) - snap.OffsetX*0.5
		roadW := constants.RoadBaseWidth + pers*constants.RoadWidthGrowth
		clipW := roadW * constants.ShoulderFraction
		roadW *= 0.5
		row := horizon + yi

		// Project this row into world distance ahead of the camera
		distToHorizon := constants.RowDistanceGain / (pers + constants.RowDistanceBias)
		worldDist := camDist + distToHorizon
		drawFinish := worldDist >= total-constants.FinishWindowBehind &&
			worldDist <= total+constants.FinishWindowAhead

		for x := 0; x < width; x++ {
			wx := float64(x) / float64(width)
			stripe := int(constants.StripePhaseScale*math.Pow(1-pers, constants.StripePhasePower)+stripeOffset)%2 != 0

			switch {
			case wx >= mid-roadW && wx <= mid+roadW:
				if drawFinish && snap.Distance < total {
					if (int(wx*constants.FinishCheckerCols)+yi)%2 == 0 {
						buf.Set(x, row, CharFull, styleDefault)
					} else {
						buf.Set(x, row, ' ', styleDefault)
					}
				} else {
					r := roadRune
					if math.Abs(wx-mid) < constants.CenterLineHalfWidth && stripe {
						r = stripeRune
					}
					buf.Set(x, row, r, styleDefault)
				}
			case wx >= mid-roadW-clipW && wx <= mid+roadW+clipW:
				r, style := theme.Shoulder(stripe, worldDist, snap.Distance, x)
				buf.Set(x, row, r, style)
			default:
				buf.Set(x, row, groundRune, styleDefault)
			}
		}

		// Obstacles appear as gaps carved out of the road surface, gated to
		// the camera's current segment and a fixed visibility window
		if camIdx < len(trk.Segments) {
			distInCamSeg := camPos + distToHorizon
			for _, obs := range trk.Segments[camIdx].Obstacles {
				if distInCamSeg < obs.SegDistance ||
					distInCamSeg >= obs.SegDistance+constants.ObstacleVisibleRange {
					continue
				}
				obsX := mid + obs.OffsetX*roadW*2
				center := int(obsX * float64(width))
				pixelW := int(obs.Width * roadW * float64(width) * 2)
				for x := center - pixelW/2; x < center+pixelW/2; x++ {
					buf.SetRune(x, row, ' ')
				}
			}
		}
	}

	drawCar(buf, cam.curvature, snap.OffsetX, snap.Steer)
}
