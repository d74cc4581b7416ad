package render

import (
	"fmt"
	"sort"

	"github.com/UnrealYue/SimpleVolumeViewer/types"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// A GLFW window with a fixed-function OpenGL 2.1 context that composites a
// set of layered views each frame.
type Window struct {
	opts   Options
	handle *glfw.Window
}

// Create the viewer window and initialize the GL context.
func NewWindow(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGlfwInit, err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	handle, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("render: could not create window: %v", err)
	}
	handle.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("render: could not init opengl: %v", err)
	}

	return &Window{opts: opts, handle: handle}, nil
}

// The underlying GLFW handle, used by the input layer to attach callbacks.
func (w *Window) Handle() *glfw.Window {
	return w.handle
}

// Framebuffer size in pixels.
func (w *Window) Size() (int, int) {
	return w.handle.GetFramebufferSize()
}

func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

func (w *Window) Close() {
	w.handle.SetShouldClose(true)
}

// Release the window and the GLFW state.
func (w *Window) Destroy() {
	w.handle.Destroy()
	glfw.Terminate()
}

// Draw one frame: views are rendered in layer order, each clipped to its
// viewport rectangle; only the base layer clears the color buffer so upper
// layers composite over it.
func (w *Window) Draw(views []*View) {
	fbW, fbH := w.Size()

	ordered := make([]*View, len(views))
	copy(ordered, views)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Layer < ordered[j].Layer })

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	for _, view := range ordered {
		x0 := int32(view.Viewport[0] * float32(fbW))
		y0 := int32(view.Viewport[1] * float32(fbH))
		x1 := int32(view.Viewport[2] * float32(fbW))
		y1 := int32(view.Viewport[3] * float32(fbH))
		vw, vh := x1-x0, y1-y0
		if vw <= 0 || vh <= 0 {
			continue
		}

		gl.Viewport(x0, y0, vw, vh)
		gl.Scissor(x0, y0, vw, vh)

		if view.Layer == 0 {
			bg := view.Background
			gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
			gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		} else {
			gl.Clear(gl.DEPTH_BUFFER_BIT)
		}

		cam := view.ActiveCamera()
		aspect := float32(vw) / float32(vh)
		proj := types.Perspective4(cam.ViewAngle, aspect, cam.ClippingRange[0], cam.ClippingRange[1])
		modelView := cam.ViewMatrix()

		gl.MatrixMode(gl.PROJECTION)
		gl.LoadMatrixf(&proj[0])
		gl.MatrixMode(gl.MODELVIEW)
		gl.LoadMatrixf(&modelView[0])

		for _, actor := range view.Actors() {
			actor.draw()
		}
	}

	gl.Disable(gl.SCISSOR_TEST)
	w.handle.SwapBuffers()
}

// Process pending window events. Must be called from the main thread.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}
