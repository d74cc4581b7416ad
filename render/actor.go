package render

import (
	"github.com/UnrealYue/SimpleVolumeViewer/types"
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v2.1/gl"
)

// A renderable primitive owned by a view. Bounds drive camera fitting and
// the fly-to operation; draw is invoked with the view's GL state current.
type Actor interface {
	Bounds() (min, max types.Vec3, ok bool)
	draw()
}

// A set of line strips sharing one point buffer, e.g. the polyline paths of
// a decomposed neuron skeleton.
type LineActor struct {
	Points []types.Vec3
	Strips [][]int32
	Color  Color
	Width  float32
}

func (a *LineActor) Bounds() (types.Vec3, types.Vec3, bool) {
	if len(a.Points) == 0 {
		return types.Vec3{}, types.Vec3{}, false
	}
	min, max := a.Points[0], a.Points[0]
	for _, p := range a.Points[1:] {
		min = types.MinVec3(min, p)
		max = types.MaxVec3(max, p)
	}
	return min, max, true
}

func (a *LineActor) draw() {
	width := a.Width
	if width <= 0 {
		width = 1.0
	}
	gl.LineWidth(width)
	gl.Color3f(a.Color[0], a.Color[1], a.Color[2])
	for _, strip := range a.Strips {
		gl.Begin(gl.LINE_STRIP)
		for _, idx := range strip {
			p := a.Points[idx]
			gl.Vertex3f(p[0], p[1], p[2])
		}
		gl.End()
	}
}

// A wireframe sphere marker, used for the pickable 3D cursor.
type SphereActor struct {
	Center types.Vec3
	Radius float32
	Color  Color
}

func (a *SphereActor) Bounds() (types.Vec3, types.Vec3, bool) {
	r := types.Vec3{a.Radius, a.Radius, a.Radius}
	return a.Center.Sub(r), a.Center.Add(r), true
}

func (a *SphereActor) draw() {
	gl.LineWidth(1.0)
	gl.Color3f(a.Color[0], a.Color[1], a.Color[2])

	const steps = 30
	// three orthogonal great circles
	for plane := 0; plane < 3; plane++ {
		gl.Begin(gl.LINE_LOOP)
		for i := 0; i < steps; i++ {
			theta := 2 * math32.Pi * float32(i) / steps
			s, c := math32.Sin(theta)*a.Radius, math32.Cos(theta)*a.Radius
			var p types.Vec3
			switch plane {
			case 0:
				p = types.Vec3{c, s, 0}
			case 1:
				p = types.Vec3{c, 0, s}
			case 2:
				p = types.Vec3{0, c, s}
			}
			p = p.Add(a.Center)
			gl.Vertex3f(p[0], p[1], p[2])
		}
		gl.End()
	}
}

// Orientation axes: three colored lines along +X (red), +Y (green) and
// +Z (blue). Axis labels are accepted for config compatibility but not
// rendered (no text path in this backend).
type AxesActor struct {
	Lengths    [3]float32
	ShowLabels bool
}

func (a *AxesActor) Bounds() (types.Vec3, types.Vec3, bool) {
	return types.Vec3{}, types.Vec3{a.Lengths[0], a.Lengths[1], a.Lengths[2]}, true
}

func (a *AxesActor) draw() {
	gl.LineWidth(2.0)
	gl.Begin(gl.LINES)
	gl.Color3f(1, 0, 0)
	gl.Vertex3f(0, 0, 0)
	gl.Vertex3f(a.Lengths[0], 0, 0)
	gl.Color3f(0, 1, 0)
	gl.Vertex3f(0, 0, 0)
	gl.Vertex3f(0, a.Lengths[1], 0)
	gl.Color3f(0, 0, 1)
	gl.Vertex3f(0, 0, 0)
	gl.Vertex3f(0, 0, a.Lengths[2])
	gl.End()
}

// Stand-in for a volume mapper: the volume's world-space bounding box drawn
// as a wire frame tinted by the top of its color transfer function. The
// transfer functions themselves are the real, mutable curves owned by the
// volume's property; the GPU ray-casting path is outside this backend.
type VolumeActor struct {
	BoundsMin types.Vec3
	BoundsMax types.Vec3

	Opacity *PiecewiseFunction
	Color   *ColorTransferFunction

	// Requested mapper name, kept for diagnostics.
	Mapper string
}

func (a *VolumeActor) Bounds() (types.Vec3, types.Vec3, bool) {
	return a.BoundsMin, a.BoundsMax, true
}

func (a *VolumeActor) draw() {
	tint := Color{0.8, 0.8, 0.8}
	if a.Color != nil && a.Color.Size() > 0 {
		top := a.Color.NodeValue(a.Color.Size() - 1)
		tint = a.Color.ColorAt(top[0])
	}

	lo, hi := a.BoundsMin, a.BoundsMax
	corners := [8]types.Vec3{
		{lo[0], lo[1], lo[2]}, {hi[0], lo[1], lo[2]},
		{hi[0], hi[1], lo[2]}, {lo[0], hi[1], lo[2]},
		{lo[0], lo[1], hi[2]}, {hi[0], lo[1], hi[2]},
		{hi[0], hi[1], hi[2]}, {lo[0], hi[1], hi[2]},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	gl.LineWidth(1.0)
	gl.Color3f(tint[0], tint[1], tint[2])
	gl.Begin(gl.LINES)
	for _, e := range edges {
		p, q := corners[e[0]], corners[e[1]]
		gl.Vertex3f(p[0], p[1], p[2])
		gl.Vertex3f(q[0], q[1], q[2])
	}
	gl.End()
}
