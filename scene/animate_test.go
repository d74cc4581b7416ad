package scene

import (
	"testing"
	"time"

	"github.com/UnrealYue/SimpleVolumeViewer/render"
	"github.com/chewxy/math32"
)

// Angle between the camera direction and -z, in degrees.
func azimuthOf(cam *render.Camera) float32 {
	dir := cam.Direction().Normalize()
	return math32.Atan2(dir[0], -dir[2]) * 180 / math32.Pi
}

func TestSmoothRotationTracksWallTime(t *testing.T) {
	cam := render.NewCamera()
	rot := &SmoothRotation{Camera: cam, DegreesPerSecond: 45}

	base := time.Unix(1000, 0)
	rot.StartAt(base)

	// wildly uneven frame cadence; the result depends only on elapsed time
	for _, ms := range []int64{1, 2, 500, 501, 1999, 2000} {
		rot.Tick(base.Add(time.Duration(ms) * time.Millisecond))
	}

	got := azimuthOf(cam)
	if math32.Abs(math32.Abs(got)-90) > 0.1 {
		t.Fatalf("expected 90 degrees after 2s at 45 deg/s; got %v", got)
	}
}

func TestSmoothRotationIgnoresTimeGoingBackwards(t *testing.T) {
	cam := render.NewCamera()
	rot := &SmoothRotation{Camera: cam, DegreesPerSecond: 45}
	base := time.Unix(1000, 0)
	rot.StartAt(base)
	rot.Tick(base.Add(time.Second))
	before := azimuthOf(cam)

	rot.Tick(base) // clock stepped back
	if got := azimuthOf(cam); got != before {
		t.Fatalf("expected backwards tick to be a no-op; %v -> %v", before, got)
	}
}

func TestRotationTimerClampsFinalTick(t *testing.T) {
	cam := render.NewCamera()
	timer := &RotationTimer{
		Rotation: &SmoothRotation{Camera: cam, DegreesPerSecond: 30},
		Duration: 3 * time.Second,
	}
	base := time.Unix(1000, 0)
	timer.Start(base)
	if !timer.Active() {
		t.Fatal("expected timer to be active after Start")
	}

	if !timer.Tick(base.Add(time.Second)) {
		t.Fatal("expected timer to keep running mid-span")
	}
	// the last frame lands well past the boundary
	if timer.Tick(base.Add(10 * time.Second)) {
		t.Fatal("expected timer to expire")
	}
	if timer.Active() {
		t.Fatal("expected timer to deactivate on expiry")
	}

	got := azimuthOf(cam)
	if math32.Abs(math32.Abs(got)-90) > 0.1 {
		t.Fatalf("expected exactly 30 deg/s * 3s = 90 degrees; got %v", got)
	}
}

func TestRotationTimerStop(t *testing.T) {
	cam := render.NewCamera()
	timer := &RotationTimer{
		Rotation: &SmoothRotation{Camera: cam, DegreesPerSecond: 30},
		Duration: 3 * time.Second,
	}
	base := time.Unix(1000, 0)
	timer.Start(base)
	timer.Stop()
	if timer.Tick(base.Add(time.Second)) {
		t.Fatal("expected ticks after Stop to do nothing")
	}
	if got := azimuthOf(cam); got != 0 {
		t.Fatalf("expected no rotation after Stop; got %v", got)
	}
}
