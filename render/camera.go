package render

import "github.com/lixenwraith/term-racer/constants"

// camera is the renderer-private view state. It trails the vehicle by a
// fixed lookahead and smooths its own curvature/parallax accumulators with
// the render loop's frame delta, so the view intentionally lags the physics
// state it observes.
type camera struct {
	curvature float64
	parallax  float64
}

func (c *camera) reset() {
	*c = camera{}
}

// update approaches the target curvature exponentially and advances the
// background parallax accumulator
func (c *camera) update(target, speed, dt float64) {
	c.curvature += (target - c.curvature) * dt * constants.CurvatureApproachRate
	c.parallax += c.curvature * dt * speed * constants.ParallaxGain
}
