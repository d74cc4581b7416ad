package viewer

import (
	"fmt"
	"time"

	"github.com/UnrealYue/SimpleVolumeViewer/render"
	"github.com/UnrealYue/SimpleVolumeViewer/scene"
	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// one notch of the transfer-function scale wheel
var scaleStep = math32.Pow(2, 0.25)

const (
	orbitDegPerPixel = 0.3
	dollyPerNotch    = 1.2
	rotationRate     = 60.0 // deg/s
	rotationSpan     = 6 * time.Second
)

// Interactor binds window input to scene operations. It owns no scene
// state beyond transient drag tracking; everything it does goes through
// the graph.
type Interactor struct {
	graph  *scene.Graph
	window *render.Window

	dragging   bool
	lastCursor [2]float64

	timer *scene.RotationTimer
}

func NewInteractor(graph *scene.Graph, window *render.Window) *Interactor {
	in := &Interactor{graph: graph, window: window}

	handle := window.Handle()
	handle.SetKeyCallback(in.onKey)
	handle.SetMouseButtonCallback(in.onMouseButton)
	handle.SetCursorPosCallback(in.onCursorPos)
	handle.SetScrollCallback(in.onScroll)
	return in
}

func (in *Interactor) onKey(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	switch key {
	case glfw.KeyQ, glfw.KeyEscape:
		in.window.Close()
	case glfw.KeyEqual, glfw.KeyKPAdd:
		in.graph.RescaleSelectedObject(scaleStep)
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		in.graph.RescaleSelectedObject(1 / scaleStep)
	case glfw.KeyS:
		path := fmt.Sprintf("screenshot_%s.png", time.Now().Format("20060102_150405"))
		if err := in.window.Screenshot(path); err != nil {
			logger.Errorf("screenshot: %v", err)
		} else {
			logger.Noticef("screenshot saved to %s", path)
		}
	case glfw.KeyR:
		in.toggleRotation()
	case glfw.KeySpace:
		in.flyToSelected()
	case glfw.Key0, glfw.KeyKP0:
		in.flyToCursor()
	}
}

func (in *Interactor) onMouseButton(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	switch button {
	case glfw.MouseButtonLeft:
		in.dragging = action == glfw.Press
		if in.dragging {
			in.lastCursor[0], in.lastCursor[1] = w.GetCursorPos()
		}
	case glfw.MouseButtonRight:
		if action != glfw.Press {
			return
		}
		x, y := w.GetCursorPos()
		// cursor coordinates are in screen units, not framebuffer pixels
		width, height := w.GetSize()
		// window cursor origin is top-left, the picker expects bottom-left
		pos, name, ok := in.graph.PickAt(x, float64(height)-y, width, height)
		if !ok {
			return
		}
		logger.Noticef("picked point %v on %q", pos, name)
		in.graph.Set3DCursor(pos)
	}
}

func (in *Interactor) onCursorPos(w *glfw.Window, x, y float64) {
	if !in.dragging {
		return
	}
	dx := x - in.lastCursor[0]
	dy := y - in.lastCursor[1]
	in.lastCursor = [2]float64{x, y}

	view := in.graph.MainView()
	if view == nil {
		return
	}
	cam := view.ActiveCamera()
	cam.Azimuth(-float32(dx) * orbitDegPerPixel)
	cam.Elevation(float32(dy) * orbitDegPerPixel)
	view.ResetCameraClippingRange()
}

func (in *Interactor) onScroll(w *glfw.Window, xoff, yoff float64) {
	view := in.graph.MainView()
	if view == nil {
		return
	}
	view.ActiveCamera().Dolly(math32.Pow(dollyPerNotch, float32(yoff)))
	view.ResetCameraClippingRange()
}

func (in *Interactor) toggleRotation() {
	if in.timer != nil && in.timer.Active() {
		in.timer.Stop()
		return
	}
	view := in.graph.MainView()
	if view == nil {
		return
	}
	in.timer = &scene.RotationTimer{
		Rotation: &scene.SmoothRotation{
			Camera:           view.ActiveCamera(),
			DegreesPerSecond: rotationRate,
		},
		Duration: rotationSpan,
	}
	in.timer.Start(time.Now())
}

func (in *Interactor) flyToSelected() {
	obj := in.graph.SelectedObject()
	if obj == nil || obj.Actor == nil {
		return
	}
	lo, hi, ok := obj.Actor.Bounds()
	if !ok {
		return
	}
	center := lo.Add(hi.Sub(lo).Mul(0.5))
	view := in.graph.MainView()
	if view == nil {
		return
	}
	view.ActiveCamera().SetFocalPoint(center)
	view.ResetCameraClippingRange()
}

func (in *Interactor) flyToCursor() {
	pos, ok := in.graph.CursorPosition()
	if !ok {
		return
	}
	view := in.graph.MainView()
	if view == nil {
		return
	}
	view.ActiveCamera().SetFocalPoint(pos)
	view.ResetCameraClippingRange()
}
