package render

import (
	"testing"

	"github.com/lixenwraith/term-racer/constants"
	"github.com/lixenwraith/term-racer/core"
)

// TestCarCenteredOnBufferWidth verifies the sprite column derives from the
// target buffer's width, like the rest of the rasterizer, so a narrower
// frame still places the centered car mid-row
func TestCarCenteredOnBufferWidth(t *testing.T) {
	buf := core.NewBuffer(60, constants.ScreenHeight)

	drawCar(buf, 0, 0, 0)

	// Centered on a 60-cell row the 14-wide sprite starts at column 23;
	// the bottom line opens with wheel cells
	if c, _ := buf.Get(23, constants.CarRow); c.Rune != '|' {
		t.Errorf("Expected the left wheel at column 23, got %q", c.Rune)
	}
	if c, _ := buf.Get(30, constants.CarRow); c.Rune != '#' {
		t.Errorf("Expected the car body at the row center, got %q", c.Rune)
	}

	// Nothing may land in the right half the old full-width projection
	// would have used
	for x := 45; x < 60; x++ {
		if c, _ := buf.Get(x, constants.CarRow); c.Rune != ' ' {
			t.Errorf("Expected column %d empty, got %q", x, c.Rune)
		}
	}
}

// TestCarSpriteBySteer verifies the steer state picks the leaning art
func TestCarSpriteBySteer(t *testing.T) {
	straight := newFrameBuffer()
	right := newFrameBuffer()
	left := newFrameBuffer()
	drawCar(straight, 0, 0, 0)
	drawCar(right, 0, 0, 1)
	drawCar(left, 0, 0, -1)

	topRow := constants.CarRow - 4
	rowOf := func(buf *core.Buffer) string {
		runes := make([]rune, buf.Width())
		for x := range runes {
			c, _ := buf.Get(x, topRow)
			runes[x] = c.Rune
		}
		return string(runes)
	}

	if rowOf(straight) == rowOf(right) {
		t.Error("Expected the right-leaning sprite to differ from straight")
	}
	if rowOf(straight) == rowOf(left) {
		t.Error("Expected the left-leaning sprite to differ from straight")
	}
	if rowOf(left) == rowOf(right) {
		t.Error("Expected distinct left and right sprites")
	}
}
