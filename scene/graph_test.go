package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/UnrealYue/SimpleVolumeViewer/config"
	"github.com/UnrealYue/SimpleVolumeViewer/render"
	"github.com/UnrealYue/SimpleVolumeViewer/types"
)

func setupGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	g.Setup(config.DefaultWindow())
	return g
}

func TestSetupBuildsViews(t *testing.T) {
	g := setupGraph(t)

	if got := len(g.Views()); got != 2 {
		t.Fatalf("expected 2 views from the default window; got %d", got)
	}
	main := g.MainView()
	if main == nil || main.Name != "0" || main.Layer != 0 {
		t.Fatalf("expected main view to be layer-0 renderer %q; got %+v", "0", main)
	}
	overlay, ok := g.View("1")
	if !ok || overlay.Layer != 1 {
		t.Fatal("expected overlay renderer 1 on layer 1")
	}
	if overlay.Viewport == ([4]float32{0, 0, 1, 1}) {
		t.Fatalf("expected overlay viewport from config; got %v", overlay.Viewport)
	}

	opts := g.WindowOptions()
	if opts.Width != 1200 || opts.Height != 900 || opts.NumberOfLayers != 2 {
		t.Fatalf("expected 1200x900 with 2 layers; got %+v", opts)
	}
}

func TestAddObjectRenamesOnConflict(t *testing.T) {
	g := setupGraph(t)
	conf := config.Node{"type": "Sphere", "radius": 5.0}

	first, err := g.AddObject("ball", config.DeepCopy(conf))
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.AddObject("ball", config.DeepCopy(conf))
	if err != nil {
		t.Fatal(err)
	}
	if first != "ball" || second != "ball.001" {
		t.Fatalf("expected ball then ball.001; got %q, %q", first, second)
	}
	if got := len(g.MainView().Actors()); got != 2 {
		t.Fatalf("expected 2 actors in the main view; got %d", got)
	}
}

func TestAddObjectUnknownTypeIsSkipped(t *testing.T) {
	g := setupGraph(t)
	name, err := g.AddObject("weird", config.Node{"type": "Teapot"})
	if err != nil {
		t.Fatalf("expected unknown type to be skipped, not failed; got %v", err)
	}
	if name != "" {
		t.Fatalf("expected no object to be registered; got %q", name)
	}
}

func TestRemoveObjectDetachesActor(t *testing.T) {
	g := setupGraph(t)
	name, err := g.AddObject("ball", config.Node{"type": "Sphere"})
	if err != nil {
		t.Fatal(err)
	}
	g.SetSelected(name)

	if err := g.RemoveObject(name); err != nil {
		t.Fatal(err)
	}
	if got := len(g.MainView().Actors()); got != 0 {
		t.Fatalf("expected actor detached from view; got %d actors", got)
	}
	if _, ok := g.Object(name); ok {
		t.Fatal("expected object to leave the registry")
	}
	if g.SelectedObject() != nil {
		t.Fatal("expected selection to clear with the removed object")
	}
	if err := g.RemoveObject(name); err == nil {
		t.Fatal("expected removing twice to fail")
	}
}

func TestRemovePropertyReAnchorsDerived(t *testing.T) {
	g := setupGraph(t)
	g.AddProperty("volume", volumePropConf(1, 1))
	g.AddProperty("volume.001", config.Node{
		"copy_from": "volume",
		"color_transfer_function": config.Node{"trans_scale": 2.0},
	})

	g.removeProperty("volume")

	derived, ok := g.Property("volume.001")
	if !ok {
		t.Fatal("expected derived property to survive")
	}
	if derived.Ref != nil {
		t.Fatal("expected derived property to drop its dangling reference")
	}
	// rescaling still works from the inherited authored points
	SetColorScale(derived, 4.0)
	if got := derived.Color.NodeValue(3); got[0] != 4*255 {
		t.Fatalf("expected rescale from inherited authored points; got %v", got)
	}
}

func TestRescaleSelectedObjectCompounds(t *testing.T) {
	g := setupGraph(t)
	g.AddProperty("volume", volumePropConf(1, 1))
	g.objects["vol"] = &Object{Name: "vol", Kind: "volume", ViewName: "0", PropertyName: "volume"}
	g.SetSelected("vol")

	// relative steps compound: recovered from the curve, not cached
	g.RescaleSelectedObject(2)
	g.RescaleSelectedObject(2)

	prop, _ := g.Property("volume")
	if got := prop.Color.NodeValue(3); !almostEqual(got[0], 4*255) {
		t.Fatalf("expected last color position 1020 after two x2 steps; got %v", got)
	}
	otf, _ := ColorScale(prop)
	if !almostEqual(otf, 4) {
		t.Fatalf("expected opacity curve scaled in lockstep; got %v", otf)
	}
}

func TestRescaleSelectedObjectKeepsScalesIndependent(t *testing.T) {
	g := setupGraph(t)
	g.AddProperty("volume", volumePropConf(3, 10))
	g.objects["vol"] = &Object{Name: "vol", Kind: "volume", ViewName: "0", PropertyName: "volume"}
	g.SetSelected("vol")

	g.RescaleSelectedObject(2)

	// a property authored with differing curve scales keeps the gap
	prop, _ := g.Property("volume")
	otf, ctf := ColorScale(prop)
	if !almostEqual(otf, 6) || !almostEqual(ctf, 20) {
		t.Fatalf("expected scales 6/20 after one x2 step; got %v/%v", otf, ctf)
	}
	if got := prop.Opacity.NodeValue(prop.Opacity.Size() - 1); !almostEqual(got[0], 6*255) {
		t.Fatalf("expected last opacity position 1530; got %v", got)
	}
	if got := prop.Color.NodeValue(prop.Color.Size() - 1); !almostEqual(got[0], 20*255) {
		t.Fatalf("expected last color position 5100; got %v", got)
	}
}

func TestSet3DCursor(t *testing.T) {
	g := setupGraph(t)

	g.Set3DCursor(types.Vec3{1, 2, 3})
	pos, ok := g.CursorPosition()
	if !ok || pos != (types.Vec3{1, 2, 3}) {
		t.Fatalf("expected cursor at (1,2,3); got %v (ok=%v)", pos, ok)
	}

	// moving the cursor reuses the same object
	before := len(g.ObjectNames())
	g.Set3DCursor(types.Vec3{4, 5, 6})
	if got := len(g.ObjectNames()); got != before {
		t.Fatalf("expected cursor object to be reused; object count %d -> %d", before, got)
	}
	pos, _ = g.CursorPosition()
	if pos != (types.Vec3{4, 5, 6}) {
		t.Fatalf("expected cursor at (4,5,6); got %v", pos)
	}
}

func writeSampleSWC(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cell.swc")
	body := "1 1 0 0 0 1 -1\n2 3 10 0 0 1 1\n3 3 10 5 0 1 2\n4 3 10 -5 0 1 2\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestAppendSceneWithSkeleton(t *testing.T) {
	g := setupGraph(t)
	g.Append(config.Node{
		"objects": config.Node{
			"background": config.Node{"type": "Background", "color": "Black"},
			"cell":       config.Node{"type": "swc", "file_path": writeSampleSWC(t)},
		},
	})

	obj, ok := g.Object("cell")
	if !ok {
		t.Fatal("expected skeleton object to load")
	}
	line, ok := obj.Actor.(*render.LineActor)
	if !ok {
		t.Fatalf("expected a line actor; got %T", obj.Actor)
	}
	if len(line.Points) != 4 || len(line.Strips) != 3 {
		t.Fatalf("expected 4 points in 3 strips; got %d points, %d strips",
			len(line.Points), len(line.Strips))
	}
	if g.Points().Len() != 4 {
		t.Fatalf("expected 4 pickable points; got %d", g.Points().Len())
	}
	rg, ok := g.Points().RangeOf("cell")
	if !ok || rg != [2]int{0, 4} {
		t.Fatalf("expected point range [0,4); got %v (ok=%v)", rg, ok)
	}

	// removal detaches the actor; the pickable cloud is append-only
	if err := g.RemoveObject("cell"); err != nil {
		t.Fatal(err)
	}
	if g.Points().Len() != 4 {
		t.Fatal("expected the point cloud to stay append-only after removal")
	}
}

func TestAppendDefaultScene(t *testing.T) {
	g := setupGraph(t)
	g.Append(config.DefaultScene())

	if _, ok := g.Property("volume"); !ok {
		t.Fatal("expected the default volume property")
	}
	cam, ok := g.Object("camera1")
	if !ok || cam.Camera == nil {
		t.Fatal("expected camera1 bound to a renderer camera")
	}
	follower, ok := g.Object("camera2")
	if !ok || follower.Camera == nil {
		t.Fatal("expected camera2 bound to the overlay renderer camera")
	}

	// moving the main camera re-aligns the follower's direction
	cam.Camera.Azimuth(90)
	mainDir := cam.Camera.Direction().Normalize()
	followDir := follower.Camera.Direction().Normalize()
	if d := mainDir.Sub(followDir).Len(); d > 1e-5 {
		t.Fatalf("expected follower camera direction to match; diverged by %v", d)
	}
	if follower.Camera.FocalPoint != (types.Vec3{0, 0, 0}) {
		t.Fatalf("expected follower focal point at the origin; got %v", follower.Camera.FocalPoint)
	}
}

func TestEasyImportVolumeWithColorScale(t *testing.T) {
	g := setupGraph(t)
	g.Append(config.DefaultScene())

	// 2x2x2 8-bit raw block
	path := filepath.Join(t.TempDir(), "block.raw")
	if err := os.WriteFile(path, make([]byte, 8), 0644); err != nil {
		t.Fatal(err)
	}
	g.EasyImport(ObjectDescription{
		FilePath:   path,
		Dims:       [3]int{2, 2, 2},
		Bits:       8,
		Origin:     []float64{10, 0, 0},
		ColorScale: 2.0,
	})

	obj, ok := g.Object("block")
	if !ok {
		t.Fatal("expected volume object named after its file")
	}
	vol, ok := obj.Actor.(*render.VolumeActor)
	if !ok {
		t.Fatalf("expected a volume actor; got %T", obj.Actor)
	}
	if vol.BoundsMin != (types.Vec3{10, 0, 0}) || vol.BoundsMax != (types.Vec3{12, 2, 2}) {
		t.Fatalf("expected block bounds (10,0,0)..(12,2,2); got %v..%v", vol.BoundsMin, vol.BoundsMax)
	}

	// the import derived a private property scaled from the stock one
	prop, ok := g.Property(obj.PropertyName)
	if !ok {
		t.Fatalf("expected property %q to exist", obj.PropertyName)
	}
	last := prop.Color.NodeValue(prop.Color.Size() - 1)
	if last[0] != 2*255 {
		t.Fatalf("expected final control point at 510 for colorscale 2; got %v", last[0])
	}

	// the stock property is untouched; its scale is still the default 40
	stock, _ := g.Property("volume")
	_, ctf := ColorScale(stock)
	if !almostEqual(ctf, 40) {
		t.Fatalf("expected stock property to keep scale 40; got %v", ctf)
	}

	// view_point auto refits the camera to everything visible: the block at
	// x 10..12 combined with the stock cursor sphere spanning (-2..2)^3
	if got := g.MainView().ActiveCamera().FocalPoint; got != (types.Vec3{5, 0, 0}) {
		t.Fatalf("expected camera focused on the combined bounds center (5,0,0); got %v", got)
	}

	// the object owns the derived property; removal cascades
	if err := g.RemoveObject("block"); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Property(obj.PropertyName); ok {
		t.Fatal("expected the private property to be removed with the object")
	}
}

func TestEasyImportSkeletons(t *testing.T) {
	g := setupGraph(t)
	path := writeSampleSWC(t)
	g.EasyImport(ObjectDescription{
		SWCPaths:   []string{path},
		FiberColor: "Red",
	})

	obj, ok := g.Object("cell")
	if !ok {
		t.Fatal("expected skeleton named after its file")
	}
	line := obj.Actor.(*render.LineActor)
	if line.Color != (render.Color{1, 0, 0}) {
		t.Fatalf("expected red fibers; got %v", line.Color)
	}
}
