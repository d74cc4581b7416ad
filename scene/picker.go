package scene

import (
	"github.com/UnrealYue/SimpleVolumeViewer/render"
	"github.com/UnrealYue/SimpleVolumeViewer/types"
	"github.com/chewxy/math32"
)

const (
	// Minimum ray parameter for a point to count as in front of the camera.
	camMinViewDistance = 0.0

	// Angular tolerance (perpendicular distance over depth) for a point to
	// be considered under the cursor.
	selectionAngleTolerance = 0.01
)

// Picks the point cloud entry nearest to a camera ray analytically, without
// GPU-side hit testing. Built from the camera state current at pick time;
// rebuild after the camera or window geometry changes.
type PointPicker struct {
	points *PointSet

	// camera-to-world rotation and the camera's world position, recovered
	// from the world-to-camera view transform
	camRotT types.Mat3
	camPos  types.Vec3

	screenDims types.Vec2
	pixelScale types.Vec2
}

// Create a picker for the given point cloud, camera and screen size.
func NewPointPicker(points *PointSet, cam *render.Camera, screenW, screenH int) *PointPicker {
	m := cam.ViewMatrix()
	rotT := m.Mat3().Transpose()

	p := &PointPicker{
		points:     points,
		camRotT:    rotT,
		camPos:     rotT.MulVec3(m.Translation()).Mul(-1),
		screenDims: types.Vec2{float32(screenW), float32(screenH)},
	}

	// One pixel's extent on the unit-depth view plane, derived from the
	// camera view angle and the window aspect ratio.
	viewAngle := cam.ViewAngle * math32.Pi / 180.0
	viewLength := 2 * math32.Tan(viewAngle/2)
	aspect := p.screenDims[0] / p.screenDims[1]
	var unitViewWindow types.Vec2
	if cam.UseHorizontalViewAngle {
		unitViewWindow = types.Vec2{viewLength, viewLength / aspect}
	} else {
		unitViewWindow = types.Vec2{viewLength * aspect, viewLength}
	}
	p.pixelScale = types.Vec2{
		unitViewWindow[0] / p.screenDims[0],
		unitViewWindow[1] / p.screenDims[1],
	}

	return p
}

// Pick the cloud point nearest to the ray through the given pixel. Pixel
// coordinates use the viewport convention: origin at the bottom-left corner
// of the window. Returns the point index and position; ok is false when no
// point lies within the angular tolerance in front of the camera.
func (p *PointPicker) Pick(x, y float64) (int, types.Vec3, bool) {
	// clicked pixel on the unit-depth plane (z = -1 in camera space),
	// un-rotated into world space
	sx := (float32(x) - p.screenDims[0]/2) * p.pixelScale[0]
	sy := (float32(y) - p.screenDims[1]/2) * p.pixelScale[1]
	v := p.camRotT.MulVec3(types.Vec3{sx, sy, -1})
	vv := v.Dot(v)

	bestIdx := -1
	bestAngle := float32(math32.MaxFloat32)
	var bestPoint types.Vec3

	for i := 0; i < p.points.Len(); i++ {
		pt := p.points.At(i)
		u := pt.Sub(p.camPos)

		// least-squares projection onto the ray r = camPos + v*t
		t := v.Dot(u) / vv
		if t <= camMinViewDistance {
			continue
		}

		perpDist := u.Sub(v.Mul(t)).Len()
		angleDist := perpDist / t
		if angleDist < selectionAngleTolerance && angleDist < bestAngle {
			bestIdx, bestAngle, bestPoint = i, angleDist, pt
		}
	}

	if bestIdx < 0 {
		return -1, types.Vec3{}, false
	}
	return bestIdx, bestPoint, true
}
