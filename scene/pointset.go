package scene

import "github.com/UnrealYue/SimpleVolumeViewer/types"

// An append-only flat index of pickable 3D points. Each contributing object
// owns a contiguous index sub-range recorded under its name. The scene
// graph is the only writer; the picker reads it between input events.
type PointSet struct {
	points []types.Vec3
	ranges map[string][2]int
}

func NewPointSet() *PointSet {
	return &PointSet{
		points: make([]types.Vec3, 0, 1024),
		ranges: make(map[string][2]int),
	}
}

// Append the points contributed by the named source object.
func (s *PointSet) AddPoints(name string, pts []types.Vec3) {
	start := len(s.points)
	s.points = append(s.points, pts...)
	s.ranges[name] = [2]int{start, len(s.points)}
}

func (s *PointSet) Len() int {
	return len(s.points)
}

func (s *PointSet) At(i int) types.Vec3 {
	return s.points[i]
}

// Name of the source object that contributed point index i.
func (s *PointSet) NameAt(i int) (string, bool) {
	for name, rg := range s.ranges {
		if i >= rg[0] && i < rg[1] {
			return name, true
		}
	}
	return "", false
}

// Index sub-range contributed by the named object.
func (s *PointSet) RangeOf(name string) ([2]int, bool) {
	rg, ok := s.ranges[name]
	return rg, ok
}
