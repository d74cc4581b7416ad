package render

import (
	"github.com/UnrealYue/SimpleVolumeViewer/types"
	"github.com/chewxy/math32"
)

// A view is one renderer layer inside the window: a viewport rectangle, a
// background color, an active camera and the set of actors it displays.
// Layer 0 is the base layer; higher layers composite on top with the base
// layer's color preserved.
type View struct {
	Name  string
	Layer int

	// Viewport as window fractions (x0, y0, x1, y1).
	Viewport [4]float32

	Background Color

	camera *Camera
	actors []Actor
}

func NewView(name string) *View {
	return &View{
		Name:       name,
		Viewport:   [4]float32{0, 0, 1, 1},
		Background: Color{0, 0, 0},
		camera:     NewCamera(),
	}
}

// The view's active camera. Never nil.
func (v *View) ActiveCamera() *Camera {
	return v.camera
}

func (v *View) AddActor(a Actor) {
	v.actors = append(v.actors, a)
}

// Detach an actor from the view. Reports whether the actor was present.
func (v *View) RemoveActor(a Actor) bool {
	for i, existing := range v.actors {
		if existing == a {
			v.actors = append(v.actors[:i], v.actors[i+1:]...)
			return true
		}
	}
	return false
}

func (v *View) Actors() []Actor {
	return v.actors
}

// Combined world-space bounds of all actors in the view.
func (v *View) Bounds() (types.Vec3, types.Vec3, bool) {
	var min, max types.Vec3
	found := false
	for _, a := range v.actors {
		aMin, aMax, ok := a.Bounds()
		if !ok {
			continue
		}
		if !found {
			min, max = aMin, aMax
			found = true
			continue
		}
		min = types.MinVec3(min, aMin)
		max = types.MaxVec3(max, aMax)
	}
	return min, max, found
}

// Refocus the camera on the combined actor bounds, keeping its viewing
// direction: the focal point moves to the bounds center and the eye backs
// away far enough for the bounding sphere to fit the view angle.
func (v *View) ResetCamera() error {
	min, max, ok := v.Bounds()
	if !ok {
		return ErrEmptyBounds
	}

	center := min.Add(max).Mul(0.5)
	radius := max.Sub(center).Len()
	if radius <= 0 {
		radius = 1.0
	}

	cam := v.camera
	dist := radius / math32.Tan(cam.ViewAngle*degToRad*0.5)
	dir := cam.Direction()
	cam.FocalPoint = center
	cam.Position = center.Sub(dir.Mul(dist))
	v.ResetCameraClippingRange()
	cam.Modified()
	return nil
}

// Widen the clipping range so the actor bounds are guaranteed visible.
func (v *View) ResetCameraClippingRange() {
	min, max, ok := v.Bounds()
	if !ok {
		return
	}
	center := min.Add(max).Mul(0.5)
	radius := max.Sub(center).Len()
	dist := v.camera.Position.Sub(center).Len()

	near := dist - 2*radius
	if near < 0.01 {
		near = 0.01
	}
	v.camera.ClippingRange = [2]float32{near, dist + 2*radius}
}
