package render

import (
	"math"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
)

// Car sprites by steer direction; space cells are transparent
var (
	carStraight = [5]string{
		`   ||####||   `,
		`      ##      `,
		`     ####     `,
		`|||########|||`,
		`|||  ####  |||`,
	}
	carRight = [5]string{
		`      //####//`,
		`        ##    `,
		`      ####    `,
		`/// ########//`,
		`///   #### ///`,
	}
	carLeft = [5]string{
		`\\####\\      `,
		`    ##        `,
		`    ####      `,
		`\\######## \\\`,
		`\\\ ####   \\\`,
	}
)

// drawCar places the steer-dependent sprite with its bottom line on CarRow,
// horizontally centered on the road midline at that row's perspective.
func drawCar(buf *core.Buffer, camCurvature, offsetX float64, steer int) {
	half := constants.HorizonY
	rowIndex := constants.CarRow - half
	pers := float64(rowIndex) / float64(half)
	mid := 0.5 + camCurvature*math.Pow(1-pers, constants.CurvatureBendPower) - offsetX*0.5
	carX := mid + offsetX*0.5
	center := int(carX * float64(buf.Width()))

	sprite := &carStraight
	switch {
	case steer > 0:
		sprite = &carRight
	case steer < 0:
		sprite = &carLeft
	}

	startX := center - constants.CarSpriteWidth/2
	for i, line := range sprite {
		y := constants.CarRow - (len(sprite) - 1) + i
		for j, ch := range []rune(line) {
			if ch != ' ' {
				buf.SetRune(startX+j, y, ch)
			}
		}
	}
}
