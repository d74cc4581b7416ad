package scene

import (
	"fmt"
	"sort"

	"github.com/UnrealYue/SimpleVolumeViewer/config"
	"github.com/UnrealYue/SimpleVolumeViewer/log"
	"github.com/UnrealYue/SimpleVolumeViewer/render"
	"github.com/UnrealYue/SimpleVolumeViewer/types"
	"github.com/chewxy/math32"
)

var logger = log.New("scene")

// A scene object: the unit the graph manages. Every object lives in exactly
// one view and owns at most one actor and, for cameras, a camera handle.
// Volume objects additionally reference a rendering property by name; when
// the property was created privately for this object the object owns it and
// removal cascades.
type Object struct {
	Name     string
	Kind     string
	ViewName string

	Actor  render.Actor
	Camera *render.Camera

	PropertyName string
	ownsProperty bool

	// world-space anchor, set for objects that have a natural position
	WorldCoor types.Vec3
	hasCoor   bool

	// reset the view's camera once the actor is attached
	resetView bool
}

// Graph holds the window layout, the named views, and the registries of
// objects and properties. It is the single owner of scene state; the
// interactor and the CLI manipulate the scene only through its operations.
type Graph struct {
	winOpts render.Options

	views        map[string]*render.View
	viewOrder    []string
	mainViewName string

	objects    map[string]*Object
	properties map[string]*Property

	selected string
	cursor   string

	points *PointSet
}

func NewGraph() *Graph {
	return &Graph{
		winOpts:    render.Options{Width: 1200, Height: 900, Title: "SimpleVolumeViewer", NumberOfLayers: 1},
		views:      make(map[string]*render.View),
		objects:    make(map[string]*Object),
		properties: make(map[string]*Property),
		points:     NewPointSet(),
	}
}

// Apply a window configuration: window geometry plus the set of named
// renderers with their layers and viewports. Calling Setup again replaces
// the view layout but keeps registered objects and properties.
func (g *Graph) Setup(conf config.Node) {
	if winConf, ok := conf.Node("window"); ok {
		if size, ok := winConf.Floats("size"); ok && len(size) == 2 {
			g.winOpts.Width = uint32(size[0])
			g.winOpts.Height = uint32(size[1])
		}
		if title, ok := winConf.String("title"); ok {
			g.winOpts.Title = title
		}
		if layers, ok := winConf.Float("number_of_layers"); ok {
			g.winOpts.NumberOfLayers = uint32(layers)
		}
	}

	rdConf, ok := conf.Node("renderers")
	if !ok {
		return
	}

	g.views = make(map[string]*render.View)
	g.viewOrder = g.viewOrder[:0]
	g.mainViewName = ""

	names := sortedKeys(rdConf)
	for _, name := range names {
		viewConf, ok := rdConf.Node(name)
		if !ok {
			logger.Warningf("Setup: renderer %q is not a mapping", name)
			continue
		}
		view := render.NewView(name)
		view.Layer = int(viewConf.FloatOr("layer", 0))
		if vp, ok := viewConf.Floats("view_port"); ok && len(vp) == 4 {
			for i := range view.Viewport {
				view.Viewport[i] = float32(vp[i])
			}
		}
		g.views[name] = view
		g.viewOrder = append(g.viewOrder, name)
		if g.mainViewName == "" && view.Layer == 0 {
			g.mainViewName = name
		}
	}
	logger.Infof("Setup: %d renderer(s), window %dx%d",
		len(g.views), g.winOpts.Width, g.winOpts.Height)
}

func (g *Graph) WindowOptions() render.Options {
	return g.winOpts
}

// Views in their configured order, for drawing.
func (g *Graph) Views() []*render.View {
	out := make([]*render.View, 0, len(g.viewOrder))
	for _, name := range g.viewOrder {
		out = append(out, g.views[name])
	}
	return out
}

func (g *Graph) View(name string) (*render.View, bool) {
	view, ok := g.views[name]
	return view, ok
}

// The layer-0 view that user interaction targets. Falls back to the first
// configured view when no layer-0 view exists.
func (g *Graph) MainView() *render.View {
	if view, ok := g.views[g.mainViewName]; ok {
		return view
	}
	if len(g.viewOrder) > 0 {
		return g.views[g.viewOrder[0]]
	}
	return nil
}

// Append a scene description: first its object properties, then its
// objects, each in sorted name order so repeated loads are deterministic.
// A failing object is logged and skipped; the rest of the scene loads.
func (g *Graph) Append(conf config.Node) {
	if propsConf, ok := conf.Node("object_properties"); ok {
		for _, name := range sortedKeys(propsConf) {
			propConf, ok := propsConf.Node(name)
			if !ok {
				logger.Warningf("Append: property %q is not a mapping", name)
				continue
			}
			g.AddProperty(name, propConf)
		}
	}
	if objsConf, ok := conf.Node("objects"); ok {
		for _, name := range sortedKeys(objsConf) {
			objConf, ok := objsConf.Node(name)
			if !ok {
				logger.Warningf("Append: object %q is not a mapping", name)
				continue
			}
			if _, err := g.AddObject(name, objConf); err != nil {
				logger.Errorf("Append: add object %q: %v", name, err)
			}
		}
	}
}

// Add one object to the scene. A conflicting name is resolved by
// allocating the next free "name.NNN" variant; the final name is returned.
// The object's type selects its builder from a closed set.
func (g *Graph) AddObject(name string, conf config.Node) (string, error) {
	if _, exists := g.objects[name]; exists {
		renamed := g.nonConflictObjectName(name)
		logger.Warningf("AddObject: name %q taken, renamed to %q", name, renamed)
		name = renamed
	}

	kind, ok := conf.String("type")
	if !ok {
		return "", fmt.Errorf("object %q: missing type", name)
	}
	build, ok := objectBuilders[kind]
	if !ok {
		logger.Warningf("AddObject: unknown object type %q for %q, skipped", kind, name)
		return "", nil
	}

	viewName := conf.StringOr("renderer", "0")
	view, ok := g.views[viewName]
	if !ok {
		return "", fmt.Errorf("object %q: unknown renderer %q", name, viewName)
	}

	obj := &Object{Name: name, Kind: kind, ViewName: viewName}
	if err := build(g, view, obj, conf); err != nil {
		return "", fmt.Errorf("object %q: %w", name, err)
	}
	if obj.Actor != nil {
		view.AddActor(obj.Actor)
	}
	if obj.resetView {
		if err := view.ResetCamera(); err != nil {
			logger.Warningf("AddObject: reset camera for %q: %v", name, err)
		}
		view.ResetCameraClippingRange()
	}
	g.objects[name] = obj
	logger.Infof("AddObject: %q (%s) in renderer %q", name, kind, viewName)
	return name, nil
}

func (g *Graph) Object(name string) (*Object, bool) {
	obj, ok := g.objects[name]
	return obj, ok
}

// Object names in sorted order.
func (g *Graph) ObjectNames() []string {
	names := make([]string, 0, len(g.objects))
	for name := range g.objects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove an object completely: detach its actor from its view, drop it
// from the registry, clear selection if it was selected, and remove any
// property it privately owned. Properties derived from a removed one are
// re-anchored first so their scaling state survives.
func (g *Graph) RemoveObject(name string) error {
	obj, exists := g.objects[name]
	if !exists {
		return fmt.Errorf("remove object: unknown object %q", name)
	}
	if obj.Actor != nil {
		if view, ok := g.views[obj.ViewName]; ok {
			view.RemoveActor(obj.Actor)
		}
	}
	delete(g.objects, name)
	if g.selected == name {
		g.selected = ""
	}
	if g.cursor == name {
		g.cursor = ""
	}
	if obj.ownsProperty && obj.PropertyName != "" {
		g.removeProperty(obj.PropertyName)
	}
	logger.Infof("RemoveObject: %q", name)
	return nil
}

// The currently selected object, or nil.
func (g *Graph) SelectedObject() *Object {
	if obj, ok := g.objects[g.selected]; ok {
		return obj
	}
	return nil
}

func (g *Graph) SetSelected(name string) {
	if _, ok := g.objects[name]; !ok && name != "" {
		logger.Warningf("SetSelected: unknown object %q", name)
		return
	}
	g.selected = name
}

// Move the 3D cursor to a world position, creating it on first use. A
// "3d_cursor" object already present in the scene description is adopted.
func (g *Graph) Set3DCursor(pos types.Vec3) {
	if g.cursor == "" {
		if _, ok := g.objects["3d_cursor"]; ok {
			g.cursor = "3d_cursor"
		}
	}
	if obj, ok := g.objects[g.cursor]; ok {
		if sphere, isSphere := obj.Actor.(*render.SphereActor); isSphere {
			sphere.Center = pos
			obj.WorldCoor = pos
			obj.hasCoor = true
			return
		}
	}
	name, err := g.AddObject("3d_cursor", config.Node{
		"type":     "Sphere",
		"renderer": "0",
	})
	if err != nil {
		logger.Errorf("Set3DCursor: %v", err)
		return
	}
	g.cursor = name
	obj := g.objects[name]
	obj.Actor.(*render.SphereActor).Center = pos
	obj.WorldCoor = pos
	obj.hasCoor = true
}

// World position of the 3D cursor.
func (g *Graph) CursorPosition() (types.Vec3, bool) {
	if obj, ok := g.objects[g.cursor]; ok {
		return obj.WorldCoor, true
	}
	return types.Vec3{}, false
}

// Multiply the selected volume's transfer-function scale by k. The new
// scale is recovered from the current curves so repeated calls compound.
func (g *Graph) RescaleSelectedObject(k float32) {
	obj := g.SelectedObject()
	if obj == nil || obj.PropertyName == "" {
		logger.Warningf("rescale: no volume object selected")
		return
	}
	prop, ok := g.properties[obj.PropertyName]
	if !ok {
		logger.Warningf("rescale: object %q has no property %q", obj.Name, obj.PropertyName)
		return
	}
	otfScale, ctfScale := ColorScale(prop)
	if math32.IsNaN(otfScale) || math32.IsNaN(ctfScale) {
		logger.Warningf("rescale: property %q has no recoverable curve scales", prop.Name)
		return
	}
	updateOpacityScale(prop, k*otfScale)
	updateColorScale(prop, k*ctfScale)
	logger.Infof("rescale: %q now at scales %g/%g", prop.Name, k*otfScale, k*ctfScale)
}

// Pick the skeleton point nearest (in angular distance) to the given
// screen position, seen from the main view's camera. The position uses a
// bottom-left pixel origin.
func (g *Graph) PickAt(x, y float64, screenW, screenH int) (types.Vec3, string, bool) {
	view := g.MainView()
	if view == nil || g.points.Len() == 0 {
		return types.Vec3{}, "", false
	}
	picker := NewPointPicker(g.points, view.ActiveCamera(), screenW, screenH)
	idx, pos, ok := picker.Pick(x, y)
	if !ok {
		return types.Vec3{}, "", false
	}
	name, _ := g.points.NameAt(idx)
	return pos, name, true
}

// The scene's pickable skeleton point cloud.
func (g *Graph) Points() *PointSet {
	return g.points
}

func sortedKeys(n config.Node) []string {
	keys := make([]string, 0, len(n))
	for key := range n {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
