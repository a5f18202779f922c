package constants

// Screen Geometry
const (
	// ScreenWidth and ScreenHeight are the fixed frame dimensions in cells.
	// The frame is composed at this size and centered on larger terminals.
	ScreenWidth  = 120
	ScreenHeight = 30

	// HorizonY is the first road row; everything above is background
	HorizonY = ScreenHeight / 2
)

// Road Projection
const (
	// RoadBaseWidth and RoadWidthGrowth give the normalized road width
	// before halving: width = RoadBaseWidth + pers*RoadWidthGrowth
	RoadBaseWidth   = 0.1
	RoadWidthGrowth = 0.9

	// ShoulderFraction is the shoulder band width relative to road width
	ShoulderFraction = 0.12

	// CurvatureBendPower shapes how strongly curvature bends rows near the
	// horizon: mid += camCurvature * (1-pers)^CurvatureBendPower
	CurvatureBendPower = 3.0

	// StripePhasePower and StripePhaseScale shape the stripe alternation
	StripePhasePower = 2.5
	StripePhaseScale = 25.0

	// StripeDistanceGain converts travelled distance into stripe phase
	StripeDistanceGain = 0.2

	// CenterLineHalfWidth marks the painted center stripe band
	CenterLineHalfWidth = 0.005

	// RowDistanceGain maps a row's perspective into world distance ahead:
	// dist = RowDistanceGain / (pers + RowDistanceBias)
	RowDistanceGain = 5.0
	RowDistanceBias = 0.01

	// Finish line overlay window around the total track length
	FinishWindowBehind = 3.0
	FinishWindowAhead  = 5.0

	// FinishCheckerCols controls the checkerboard cell width
	FinishCheckerCols = 40

	// ObstacleVisibleRange is how far past an obstacle's position the road
	// gap stays carved, in track units
	ObstacleVisibleRange = 10.0
)

// Background Parallax
const (
	// ParallaxCurvatureGain and ParallaxOffsetGain combine the camera
	// accumulators into the background column offset
	ParallaxCurvatureGain = 200.0
	ParallaxOffsetGain    = 30.0

	// SpeedBlurGain scales background scroll up to 1.5x at max speed
	SpeedBlurGain = 0.5

	// StripeSpeedGain scales stripe animation up to 3x at max speed
	StripeSpeedGain = 2.0
)

// Player Sprite
const (
	// CarRow is the screen row of the sprite's bottom line
	CarRow = 28

	// CarSpriteWidth is the fixed sprite width in cells
	CarSpriteWidth = 14
)

// HUD / Minimap Layout
const (
	HUDX, HUDY          = 1, 1
	HUDWidth, HUDHeight = 30, 11

	MinimapWidth, MinimapHeight = 31, 15
	MinimapX                    = ScreenWidth - 33
	MinimapY                    = 1

	// SpeedBarWidth is the proportional speed bar length in cells
	SpeedBarWidth = 24

	// HighSpeedFraction triggers the HIGH SPEED banner
	HighSpeedFraction = 0.7
)
