package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/go-gl/gl/v2.1/gl"
)

// Save the current front buffer contents as a PNG file.
func (w *Window) Screenshot(path string) error {
	width, height := w.Size()

	pixels := make([]byte, width*height*4)
	gl.ReadBuffer(gl.FRONT)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// GL rows run bottom-up; image.RGBA expects top-down.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowLen : (height-y)*rowLen]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], src)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: could not create screenshot file: %v", err)
	}
	defer f.Close()

	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("render: could not encode screenshot: %v", err)
	}
	logger.Noticef("saved screenshot to %s", path)
	return nil
}
