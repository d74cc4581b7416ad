package asset

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/tiff"
)

// Read a volume from TIFF data. The path may name a single grayscale TIFF
// file (one slice) or a directory of slice files stacked in lexicographic
// order. 8 and 16 bit grayscale images are supported; all slices must share
// the same dimensions and bit depth.
func ReadTIFF(path string) (*Block, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("asset: could not stat %s: %v", path, err)
	}

	var slicePaths []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("asset: could not list %s: %v", path, err)
		}
		for _, entry := range entries {
			name := entry.Name()
			if strings.HasSuffix(name, ".tif") || strings.HasSuffix(name, ".tiff") {
				slicePaths = append(slicePaths, filepath.Join(path, name))
			}
		}
		sort.Strings(slicePaths)
		if len(slicePaths) == 0 {
			return nil, fmt.Errorf("asset: no .tif slices under %s", path)
		}
	} else {
		slicePaths = []string{path}
	}

	var block *Block
	for z, slicePath := range slicePaths {
		img, err := decodeSlice(slicePath)
		if err != nil {
			return nil, err
		}

		bounds := img.Bounds()
		w, h := bounds.Dx(), bounds.Dy()
		bits := sliceBits(img)

		if block == nil {
			block = NewBlock([3]int{w, h, len(slicePaths)}, bits)
		} else if w != block.Dims[0] || h != block.Dims[1] || bits != block.Bits {
			return nil, fmt.Errorf("asset: slice %s does not match stack geometry %dx%d@%d",
				slicePath, block.Dims[0], block.Dims[1], block.Bits)
		}

		copySlice(block, z, img)
	}

	logger.Infof("loaded tiff stack %s: dims %v, %d bits", path, block.Dims, block.Bits)
	return block, nil
}

func decodeSlice(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset: could not open %s: %v", path, err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("asset: could not decode %s: %v", path, err)
	}

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return img, nil
	}
	return nil, fmt.Errorf("asset: %s: only grayscale tiff slices are supported", path)
}

func sliceBits(img image.Image) int {
	if _, ok := img.(*image.Gray16); ok {
		return 16
	}
	return 8
}

func copySlice(block *Block, z int, img image.Image) {
	w, h := block.Dims[0], block.Dims[1]
	switch t := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			row := t.Pix[y*t.Stride : y*t.Stride+w]
			off := (z*h + y) * w
			copy(block.Data[off:off+w], row)
		}
	case *image.Gray16:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				// Gray16 stores big-endian samples; the block is little-endian
				hi := t.Pix[y*t.Stride+x*2]
				lo := t.Pix[y*t.Stride+x*2+1]
				off := ((z*h+y)*w + x) * 2
				block.Data[off] = lo
				block.Data[off+1] = hi
			}
		}
	}
}
