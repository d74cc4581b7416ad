// Package swc loads neuron tracing skeletons in the SWC point format and
// decomposes them into linear paths suitable for line-strip rendering.
package swc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/UnrealYue/SimpleVolumeViewer/log"
	"github.com/UnrealYue/SimpleVolumeViewer/types"
)

var logger = log.New("swc")

// A single traced point. ParentID is negative for the root node.
type Node struct {
	ID       int32
	ParentID int32
	Type     int32

	Pos    types.Vec3
	Radius float32
}

// A parent-pointer skeleton tree. Node IDs are arbitrary; exactly one node
// carries the "no parent" sentinel.
type Tree struct {
	Nodes []Node
}

// Read a skeleton from an SWC file: whitespace-delimited rows of
// (id, type, x, y, z, radius, parent_id), '#' starting a comment line.
func ReadFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("swc: could not open %s: %v", path, err)
	}
	defer f.Close()

	tree, err := Read(f, path)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %s: %d nodes", path, len(tree.Nodes))
	return tree, nil
}

// Read a skeleton from an io.Reader; name is used in error messages.
func Read(r io.Reader, name string) (*Tree, error) {
	tree := &Tree{Nodes: make([]Node, 0, 1024)}

	var lineNum int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 7 {
			return nil, fmt.Errorf("swc: [%s: %d] expected 7 columns; got %d", name, lineNum, len(fields))
		}

		var node Node
		var err error
		if node.ID, err = parseInt(fields[0]); err != nil {
			return nil, fmt.Errorf("swc: [%s: %d] bad id: %v", name, lineNum, err)
		}
		if node.Type, err = parseInt(fields[1]); err != nil {
			return nil, fmt.Errorf("swc: [%s: %d] bad type: %v", name, lineNum, err)
		}
		for i := 0; i < 3; i++ {
			val, err := strconv.ParseFloat(fields[2+i], 32)
			if err != nil {
				return nil, fmt.Errorf("swc: [%s: %d] bad coordinate: %v", name, lineNum, err)
			}
			node.Pos[i] = float32(val)
		}
		radius, err := strconv.ParseFloat(fields[5], 32)
		if err != nil {
			return nil, fmt.Errorf("swc: [%s: %d] bad radius: %v", name, lineNum, err)
		}
		node.Radius = float32(radius)
		if node.ParentID, err = parseInt(fields[6]); err != nil {
			return nil, fmt.Errorf("swc: [%s: %d] bad parent id: %v", name, lineNum, err)
		}

		tree.Nodes = append(tree.Nodes, node)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("swc: [%s] read error: %v", name, err)
	}
	if len(tree.Nodes) == 0 {
		return nil, fmt.Errorf("swc: [%s] file contains no nodes", name)
	}

	return tree, nil
}

func parseInt(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

// The traced point positions in node order, ready for the point cloud
// index and the line actor.
func (t *Tree) Points() []types.Vec3 {
	pts := make([]types.Vec3, len(t.Nodes))
	for i, node := range t.Nodes {
		pts[i] = node.Pos
	}
	return pts
}

// Axis-aligned bounds over all traced points.
func (t *Tree) Bounds() (types.Vec3, types.Vec3) {
	if len(t.Nodes) == 0 {
		return types.Vec3{}, types.Vec3{}
	}
	min, max := t.Nodes[0].Pos, t.Nodes[0].Pos
	for _, node := range t.Nodes[1:] {
		min = types.MinVec3(min, node.Pos)
		max = types.MaxVec3(max, node.Pos)
	}
	return min, max
}
