package render

import (
	"github.com/UnrealYue/SimpleVolumeViewer/types"
	"github.com/chewxy/math32"
)

const degToRad = math32.Pi / 180.0

// The camera type controls a view's eye position and projection parameters.
// Mutating methods notify registered observers so dependent cameras (e.g.
// the orientation view follower) can realign.
type Camera struct {
	Position   types.Vec3
	FocalPoint types.Vec3
	ViewUp     types.Vec3

	// Full view angle in degrees. Measured vertically unless
	// UseHorizontalViewAngle is set.
	ViewAngle              float32
	UseHorizontalViewAngle bool

	ClippingRange [2]float32

	observers []func(*Camera)
}

func NewCamera() *Camera {
	return &Camera{
		Position:      types.Vec3{0, 0, 1},
		FocalPoint:    types.Vec3{0, 0, 0},
		ViewUp:        types.Vec3{0, 1, 0},
		ViewAngle:     30.0,
		ClippingRange: [2]float32{0.1, 1000.0},
	}
}

// Register an observer invoked after every mutating camera operation.
func (c *Camera) AddObserver(fn func(*Camera)) {
	c.observers = append(c.observers, fn)
}

// Notify observers of a state change.
func (c *Camera) Modified() {
	for _, fn := range c.observers {
		fn(c)
	}
}

// The world-to-camera view transform. In camera space the view direction is
// -Z, so a point directly in front of the camera maps to negative z values.
func (c *Camera) ViewMatrix() types.Mat4 {
	return types.LookAtV(c.Position, c.FocalPoint, c.ViewUp)
}

// Unit view direction from the eye towards the focal point.
func (c *Camera) Direction() types.Vec3 {
	return c.FocalPoint.Sub(c.Position).Normalize()
}

// Distance between the eye and the focal point.
func (c *Camera) Distance() float32 {
	return c.FocalPoint.Sub(c.Position).Len()
}

// Rotate the eye position about the focal point around the view-up axis.
// The angle is in degrees; positive values rotate to the right.
func (c *Camera) Azimuth(deg float32) {
	axis := c.ViewUp.Normalize()
	q := types.QuatFromAxisAngle(axis, deg*degToRad).Normalize()
	c.Position = c.FocalPoint.Add(q.Rotate(c.Position.Sub(c.FocalPoint)))
	c.Modified()
}

// Rotate the eye position about the focal point around the axis orthogonal
// to both the view direction and view-up. Positive values raise the camera.
func (c *Camera) Elevation(deg float32) {
	axis := c.Direction().Cross(c.ViewUp).Normalize()
	q := types.QuatFromAxisAngle(axis, deg*degToRad).Normalize()
	c.Position = c.FocalPoint.Add(q.Rotate(c.Position.Sub(c.FocalPoint)))
	c.Modified()
}

// Scale the eye-to-focal distance by 1/factor: factors above one move the
// camera closer, below one back it away.
func (c *Camera) Dolly(factor float32) {
	if factor <= 0 {
		return
	}
	offset := c.Position.Sub(c.FocalPoint).Mul(1.0 / factor)
	c.Position = c.FocalPoint.Add(offset)
	c.Modified()
}

// Move the focal point, translating the eye with it.
func (c *Camera) SetFocalPoint(p types.Vec3) {
	offset := c.Position.Sub(c.FocalPoint)
	c.FocalPoint = p
	c.Position = p.Add(offset)
	c.Modified()
}

func (c *Camera) SetClippingRange(near, far float32) {
	c.ClippingRange = [2]float32{near, far}
	c.Modified()
}

// Copy all camera state from src, keeping the observer list.
func (c *Camera) CopyFrom(src *Camera) {
	c.Position = src.Position
	c.FocalPoint = src.FocalPoint
	c.ViewUp = src.ViewUp
	c.ViewAngle = src.ViewAngle
	c.UseHorizontalViewAngle = src.UseHorizontalViewAngle
	c.ClippingRange = src.ClippingRange
}

// Place dst so it looks at the world origin from the same direction src
// looks at its focal point, dist away. Used by the orientation view whose
// axes marker sits at the origin. Observers of dst are deliberately not
// notified to avoid feedback between paired cameras.
func AlignDirection(dst, src *Camera, dist float32) {
	r := src.Position.Sub(src.FocalPoint).Normalize().Mul(dist)
	dst.Position = r
	dst.FocalPoint = types.Vec3{0, 0, 0}
	dst.ViewUp = src.ViewUp
}
