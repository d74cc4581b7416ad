package render

import (
	"sort"

	"github.com/UnrealYue/SimpleVolumeViewer/log"
)

var logger = log.New("render")

// A piecewise-linear mapping from a scalar data value to an opacity value,
// defined by control points ordered by position. This is the opacity curve
// consumed by the volume rendering path.
type PiecewiseFunction struct {
	nodes [][2]float32 // (position, value)
}

func NewPiecewiseFunction() *PiecewiseFunction {
	return &PiecewiseFunction{nodes: make([][2]float32, 0, 2)}
}

// Insert a control point, keeping the curve ordered by position.
func (f *PiecewiseFunction) AddPoint(x, y float32) {
	f.nodes = append(f.nodes, [2]float32{x, y})
	sort.SliceStable(f.nodes, func(i, j int) bool { return f.nodes[i][0] < f.nodes[j][0] })
}

// Number of control points.
func (f *PiecewiseFunction) Size() int {
	return len(f.nodes)
}

// Fetch control point k as (position, value).
func (f *PiecewiseFunction) NodeValue(k int) [2]float32 {
	return f.nodes[k]
}

// Overwrite control point k.
func (f *PiecewiseFunction) SetNodeValue(k int, v [2]float32) {
	f.nodes[k] = v
}

// Evaluate the curve at x with linear interpolation and clamped ends.
func (f *PiecewiseFunction) Value(x float32) float32 {
	if len(f.nodes) == 0 {
		return 0
	}
	if x <= f.nodes[0][0] {
		return f.nodes[0][1]
	}
	last := f.nodes[len(f.nodes)-1]
	if x >= last[0] {
		return last[1]
	}
	for k := 1; k < len(f.nodes); k++ {
		if x <= f.nodes[k][0] {
			lo, hi := f.nodes[k-1], f.nodes[k]
			t := (x - lo[0]) / (hi[0] - lo[0])
			return lo[1] + t*(hi[1]-lo[1])
		}
	}
	return last[1]
}

// A piecewise-linear mapping from a scalar data value to an RGB color,
// defined by control points ordered by position.
type ColorTransferFunction struct {
	nodes [][4]float32 // (position, r, g, b)
}

func NewColorTransferFunction() *ColorTransferFunction {
	return &ColorTransferFunction{nodes: make([][4]float32, 0, 4)}
}

// Insert a color control point, keeping the curve ordered by position.
func (f *ColorTransferFunction) AddRGBPoint(x, r, g, b float32) {
	f.nodes = append(f.nodes, [4]float32{x, r, g, b})
	sort.SliceStable(f.nodes, func(i, j int) bool { return f.nodes[i][0] < f.nodes[j][0] })
}

// Number of control points.
func (f *ColorTransferFunction) Size() int {
	return len(f.nodes)
}

// Fetch control point k as (position, r, g, b).
func (f *ColorTransferFunction) NodeValue(k int) [4]float32 {
	return f.nodes[k]
}

// Overwrite control point k.
func (f *ColorTransferFunction) SetNodeValue(k int, v [4]float32) {
	f.nodes[k] = v
}

// Evaluate the curve at x with linear interpolation and clamped ends.
func (f *ColorTransferFunction) ColorAt(x float32) Color {
	if len(f.nodes) == 0 {
		return Color{}
	}
	if x <= f.nodes[0][0] {
		return Color{f.nodes[0][1], f.nodes[0][2], f.nodes[0][3]}
	}
	last := f.nodes[len(f.nodes)-1]
	if x >= last[0] {
		return Color{last[1], last[2], last[3]}
	}
	for k := 1; k < len(f.nodes); k++ {
		if x <= f.nodes[k][0] {
			lo, hi := f.nodes[k-1], f.nodes[k]
			t := (x - lo[0]) / (hi[0] - lo[0])
			return Color{
				lo[1] + t*(hi[1]-lo[1]),
				lo[2] + t*(hi[2]-lo[2]),
				lo[3] + t*(hi[3]-lo[3]),
			}
		}
	}
	return Color{last[1], last[2], last[3]}
}
