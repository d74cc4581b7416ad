// Package asset loads volumetric image blocks from disk and prepares them
// for the rendering backend.
package asset

import (
	"math"

	"github.com/UnrealYue/SimpleVolumeViewer/log"
	"github.com/UnrealYue/SimpleVolumeViewer/types"
)

var logger = log.New("asset")

// A 3D image block. Voxels are stored slice-major (z, then y, then x) with
// 16-bit samples packed little-endian.
type Block struct {
	Data []byte
	Bits int // bits per voxel: 8 or 16

	// Voxel counts along x, y, z.
	Dims [3]int

	// Physical voxel size in micrometers.
	VoxelSize [3]float32

	// Placement in world space.
	Origin    types.Vec3
	Direction types.Mat3

	// Non-orthogonal voxel geometry from oblique-plane acquisition.
	// Always supplied by the caller, never inferred from image shape.
	Oblique bool
}

func NewBlock(dims [3]int, bits int) *Block {
	return &Block{
		Data:      make([]byte, dims[0]*dims[1]*dims[2]*(bits/8)),
		Bits:      bits,
		Dims:      dims,
		VoxelSize: [3]float32{1, 1, 1},
		Direction: types.Ident3(),
	}
}

// Number of voxels in the block.
func (b *Block) VoxelCount() int {
	return b.Dims[0] * b.Dims[1] * b.Dims[2]
}

// Voxel value at (x, y, z) widened to uint16.
func (b *Block) At(x, y, z int) uint16 {
	idx := (z*b.Dims[1]+y)*b.Dims[0] + x
	if b.Bits == 8 {
		return uint16(b.Data[idx])
	}
	return uint16(b.Data[idx*2]) | uint16(b.Data[idx*2+1])<<8
}

// Physical extent of the block: dims scaled by voxel size.
func (b *Block) Extent() types.Vec3 {
	return types.Vec3{
		float32(b.Dims[0]) * b.VoxelSize[0],
		float32(b.Dims[1]) * b.VoxelSize[1],
		float32(b.Dims[2]) * b.VoxelSize[2],
	}
}

// World-space bounds of the block under its origin and direction matrix.
func (b *Block) Bounds() (types.Vec3, types.Vec3) {
	ext := b.Extent()
	min, max := b.Origin, b.Origin
	for i := 0; i < 8; i++ {
		corner := types.Vec3{}
		if i&1 != 0 {
			corner[0] = ext[0]
		}
		if i&2 != 0 {
			corner[1] = ext[1]
		}
		if i&4 != 0 {
			corner[2] = ext[2]
		}
		p := b.Origin.Add(b.Direction.MulVec3(corner))
		min = types.MinVec3(min, p)
		max = types.MaxVec3(max, p)
	}
	return min, max
}

// Apply the oblique-plane acquisition correction: a 45 degree shear of the
// voxel lattice and a sqrt(2) stretch of the slice spacing. Invoked only
// when the caller flags the block as oblique.
func (b *Block) ApplyObliqueCorrection() {
	if !b.Oblique {
		return
	}
	s := float32(math.Sqrt2)
	b.VoxelSize[2] *= s

	cos45 := float32(math.Cos(math.Pi / 4))
	sin45 := float32(math.Sin(math.Pi / 4))
	// column-major: shear the slice axis into the row axis
	shear := types.Mat3{
		1, 0, 0,
		0, cos45, -sin45,
		0, 0, 1,
	}
	b.Direction = shear.Mul3(b.Direction)
}

// Compose an extra rotation into the block's direction matrix.
func (b *Block) Rotate(rot types.Mat3) {
	b.Direction = rot.Mul3(b.Direction)
}
