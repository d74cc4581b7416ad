package viewer

import (
	"time"

	"github.com/UnrealYue/SimpleVolumeViewer/log"
	"github.com/UnrealYue/SimpleVolumeViewer/render"
	"github.com/UnrealYue/SimpleVolumeViewer/scene"
)

var logger = log.New("viewer")

// Run opens a window for the graph and services input until the window is
// closed. It must be called from the main goroutine; GLFW event handling
// is tied to the thread that created the window.
func Run(graph *scene.Graph) error {
	window, err := render.NewWindow(graph.WindowOptions())
	if err != nil {
		return err
	}
	defer window.Destroy()

	in := NewInteractor(graph, window)

	for !window.ShouldClose() {
		window.PollEvents()
		if in.timer != nil && in.timer.Active() {
			in.timer.Tick(time.Now())
		}
		window.Draw(graph.Views())
	}
	return nil
}
