package engine

import "sync"

// Vehicle is the single shared mutable vehicle record. Every field is read
// and written only under its lock; the physics integrator is the sole
// writer during a race. Lateral bounds are never clamped here — the
// collision checker reacts to violations instead.
type Vehicle struct {
	mu sync.Mutex

	offsetX     float64 // Lateral position on the road, nominally [-1, 1]
	speed       float64 // Forward speed
	distance    float64 // Cumulative distance along the track
	curvature   float64 // Live curvature, smoothed toward the segment target
	bgCurvature float64 // Accumulated curvature for background parallax
	heading     float64 // Visual steering angle
	crashed     bool
	steer       int // Discrete steer state: -1, 0, +1
}

// Snapshot is a consistent copy of the vehicle fields, taken under one lock
// acquisition so no reader ever sees a torn multi-field view.
type Snapshot struct {
	OffsetX     float64
	Speed       float64
	Distance    float64
	Curvature   float64
	BgCurvature float64
	Heading     float64
	Crashed     bool
	Steer       int
}

// Snapshot copies out the current state in a single critical section
func (v *Vehicle) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		OffsetX:     v.offsetX,
		Speed:       v.speed,
		Distance:    v.distance,
		Curvature:   v.curvature,
		BgCurvature: v.bgCurvature,
		Heading:     v.heading,
		Crashed:     v.crashed,
		Steer:       v.steer,
	}
}

// Reset restores the start-of-race defaults. Fields are cleared one by one:
// a whole-struct assignment would overwrite the held mutex.
func (v *Vehicle) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offsetX = 0
	v.speed = 0
	v.distance = 0
	v.curvature = 0
	v.bgCurvature = 0
	v.heading = 0
	v.crashed = false
	v.steer = 0
}
