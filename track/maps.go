package track

// MapCount is the number of built-in maps, ids 1..MapCount
const MapCount = 3

// MapInfo is the map-select metadata for one built-in track
type MapInfo struct {
	ID       int
	Name     string
	Title    string
	Subtitle string
}

// Maps lists the built-in tracks in selection order
var Maps = [MapCount]MapInfo{
	{ID: 1, Name: "1. No Obstacles", Title: "LEVEL 1", Subtitle: "General rural roads"},
	{ID: 2, Name: "2. Obstacles", Title: "LEVEL 2", Subtitle: "City roads"},
	{ID: 3, Name: "3. More Obstacles", Title: "LEVEL 3", Subtitle: "Cyber Road"},
}

// Build returns the designer-authored track for a map id. Unknown ids fall
// back to map 1.
func Build(id int) *Track {
	switch id {
	case 2:
		return buildSlalom()
	case 3:
		return buildCircular()
	default:
		return buildSCurve()
	}
}

// buildSCurve is map 1: an advanced S-curve with no obstacles
func buildSCurve() *Track {
	return New([]Segment{
		{Curvature: 0.0, Length: 80},
		{Curvature: 0.6, Length: 250},
		{Curvature: -0.6, Length: 250},
		{Curvature: 0.0, Length: 100},
		{Curvature: 0.8, Length: 200},
		{Curvature: 0.0, Length: 120},
	})
}

// buildSlalom is map 2: an expert slalom with a few obstacles
func buildSlalom() *Track {
	return New([]Segment{
		{Curvature: 0.0, Length: 100},
		{Curvature: 0.7, Length: 150},
		{Curvature: -0.5, Length: 150},
		{Curvature: 0.9, Length: 200},
		{Curvature: 0.0, Length: 100, Obstacles: []Obstacle{
			{SegDistance: 20, OffsetX: 0.4, Width: 0.3},
			{SegDistance: 70, OffsetX: -0.5, Width: 0.4},
		}},
		{Curvature: -0.8, Length: 180, Obstacles: []Obstacle{
			{SegDistance: 80, OffsetX: 0.6, Width: 0.3},
		}},
		{Curvature: 0.6, Length: 200},
		{Curvature: 0.0, Length: 150},
		{Curvature: 1.0, Length: 120},
		{Curvature: 0.0, Length: 100},
	})
}

// buildCircular is map 3: an extreme circuit with the densest obstacle set
func buildCircular() *Track {
	return New([]Segment{
		{Curvature: 0.0, Length: 100},
		{Curvature: 0.8, Length: 200, Obstacles: []Obstacle{
			{SegDistance: 50, OffsetX: -0.6, Width: 0.3},
			{SegDistance: 150, OffsetX: 0.6, Width: 0.3},
		}},
		{Curvature: -0.6, Length: 150},
		{Curvature: 0.6, Length: 180, Obstacles: []Obstacle{
			{SegDistance: 40, OffsetX: 0.0, Width: 0.5},
		}},
		{Curvature: -0.8, Length: 200},
		{Curvature: 0.5, Length: 150, Obstacles: []Obstacle{
			{SegDistance: 100, OffsetX: -0.4, Width: 0.4},
		}},
		{Curvature: -0.5, Length: 150},
		{Curvature: 0.8, Length: 200, Obstacles: []Obstacle{
			{SegDistance: 70, OffsetX: 0.3, Width: 0.2},
		}},
		{Curvature: -0.8, Length: 200},
		{Curvature: 0.0, Length: 100},
	})
}
