package scene

import (
	"time"

	"github.com/UnrealYue/SimpleVolumeViewer/render"
)

// Rotates a camera around its focal point at a fixed angular rate. The
// rotation is driven by absolute timestamps, not per-frame increments, so
// the total angle depends only on elapsed wall time and never on frame
// cadence.
type SmoothRotation struct {
	Camera           *render.Camera
	DegreesPerSecond float32

	start time.Time
	last  time.Time
}

func (r *SmoothRotation) StartAt(now time.Time) {
	r.start = now
	r.last = now
}

// Advance the rotation to the given time, applying the azimuth accumulated
// since the previous tick.
func (r *SmoothRotation) Tick(now time.Time) {
	if r.Camera == nil || now.Before(r.last) {
		return
	}
	dt := now.Sub(r.last).Seconds()
	r.last = now
	r.Camera.Azimuth(r.DegreesPerSecond * float32(dt))
}

// Elapsed time since StartAt.
func (r *SmoothRotation) Elapsed(now time.Time) time.Duration {
	return now.Sub(r.start)
}

// A one-shot animation timer: runs a SmoothRotation for a fixed duration,
// clamping the final tick to the exact boundary so the total rotation is
// rate times duration regardless of when the last frame lands.
type RotationTimer struct {
	Rotation *SmoothRotation
	Duration time.Duration

	active bool
	end    time.Time
}

func (t *RotationTimer) Start(now time.Time) {
	t.Rotation.StartAt(now)
	t.end = now.Add(t.Duration)
	t.active = true
}

func (t *RotationTimer) Stop() {
	t.active = false
}

func (t *RotationTimer) Active() bool {
	return t.active
}

// Advance the animation. Returns false once the timer has expired; the
// final step stops exactly at the configured duration.
func (t *RotationTimer) Tick(now time.Time) bool {
	if !t.active {
		return false
	}
	if !now.Before(t.end) {
		t.Rotation.Tick(t.end)
		t.active = false
		return false
	}
	t.Rotation.Tick(now)
	return true
}
