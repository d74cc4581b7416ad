package render

type Options struct {
	// Window dims.
	Width  uint32
	Height uint32

	// Window title.
	Title string

	// Number of renderer layers the window composites.
	NumberOfLayers uint32
}
