package asset

import (
	"fmt"
	"os"
)

// Read a raw voxel block: tightly packed samples, slice-major, 8 or 16 bits
// per voxel (16-bit samples little-endian). Dims are voxel counts along
// (x, y, z) and must match the file size exactly.
func ReadRaw(path string, dims [3]int, bits int) (*Block, error) {
	if bits != 8 && bits != 16 {
		return nil, fmt.Errorf("asset: unsupported raw bit depth %d", bits)
	}
	if dims[0] <= 0 || dims[1] <= 0 || dims[2] <= 0 {
		return nil, fmt.Errorf("asset: invalid raw dims %v", dims)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: could not read %s: %v", path, err)
	}

	expected := dims[0] * dims[1] * dims[2] * (bits / 8)
	if len(data) != expected {
		return nil, fmt.Errorf("asset: %s: expected %d bytes for dims %v at %d bits; got %d",
			path, expected, dims, bits, len(data))
	}

	block := NewBlock(dims, bits)
	block.Data = data
	logger.Infof("loaded raw block %s: dims %v, %d bits", path, dims, bits)
	return block, nil
}
