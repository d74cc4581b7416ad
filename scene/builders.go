package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/UnrealYue/SimpleVolumeViewer/asset"
	"github.com/UnrealYue/SimpleVolumeViewer/config"
	"github.com/UnrealYue/SimpleVolumeViewer/render"
	"github.com/UnrealYue/SimpleVolumeViewer/swc"
	"github.com/UnrealYue/SimpleVolumeViewer/types"
)

// The closed set of object types the scene knows how to build. Dispatch is
// by the "type" string in the object configuration; a type outside this
// map is reported and skipped, never guessed at.
var objectBuilders = map[string]func(*Graph, *render.View, *Object, config.Node) error{
	"volume":            buildVolume,
	"swc":               buildSkeleton,
	"AxesActor":         buildAxes,
	"Sphere":            buildSphere,
	"OrientationMarker": buildOrientationMarker,
	"Background":        buildBackground,
	"Camera":            buildCamera,
}

var knownVolumeMappers = map[string]bool{
	"GPUVolumeRayCastMapper":        true,
	"FixedPointVolumeRayCastMapper": true,
}

func buildVolume(g *Graph, view *render.View, obj *Object, conf config.Node) error {
	path, ok := conf.String("file_path")
	if !ok {
		return fmt.Errorf("volume: missing file_path")
	}

	block, err := loadVolumeFile(path, conf)
	if err != nil {
		return fmt.Errorf("volume: %w", err)
	}

	if rangeStr, ok := conf.String("range"); ok && rangeStr != "" {
		ranges, err := asset.ParseRangeString(rangeStr)
		if err != nil {
			return fmt.Errorf("volume: %w", err)
		}
		block.Crop(ranges)
	}

	// Oblique acquisition geometry is never inferred from the image
	// shape; the caller states it.
	if conf.BoolOr("oblique_image", false) {
		block.Oblique = true
		block.ApplyObliqueCorrection()
	}

	if origin, ok := conf.Floats("origin"); ok && len(origin) == 3 {
		block.Origin = types.XYZ(float32(origin[0]), float32(origin[1]), float32(origin[2]))
	}
	if rot, ok := conf.Floats("rotation_matrix"); ok && len(rot) == 9 {
		var m types.Mat3
		// configuration rows are world rows; storage is column-major
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				m[col*3+row] = float32(rot[row*3+col])
			}
		}
		block.Rotate(m)
	}

	prop, err := g.resolveVolumeProperty(obj, conf)
	if err != nil {
		return fmt.Errorf("volume: %w", err)
	}

	mapper := conf.StringOr("mapper", "GPUVolumeRayCastMapper")
	if !knownVolumeMappers[mapper] {
		logger.Warningf("volume %q: unknown mapper type %q", obj.Name, mapper)
	}

	lo, hi := block.Bounds()
	actor := &render.VolumeActor{
		BoundsMin: lo,
		BoundsMax: hi,
		Mapper:    mapper,
	}
	if prop != nil {
		actor.Opacity = prop.Opacity
		actor.Color = prop.Color
	}
	obj.Actor = actor
	obj.WorldCoor = lo.Add(hi.Sub(lo).Mul(0.5))
	obj.hasCoor = true

	// camera reset must wait until the actor is attached to the view
	obj.resetView = conf.StringOr("view_point", "") == "auto"

	if g.selected == "" {
		g.selected = obj.Name
	}
	return nil
}

func loadVolumeFile(path string, conf config.Node) (*asset.Block, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff", "":
		return asset.ReadTIFF(path)
	case ".raw", ".bin":
		dims, ok := conf.Floats("dims")
		if !ok || len(dims) != 3 {
			return nil, fmt.Errorf("raw volume needs dims [x, y, z]")
		}
		bits := int(conf.FloatOr("bits", 16))
		return asset.ReadRaw(path, [3]int{int(dims[0]), int(dims[1]), int(dims[2])}, bits)
	default:
		return nil, fmt.Errorf("unsupported volume format %q", filepath.Ext(path))
	}
}

// Bind the volume's rendering property. A string names a registered
// property shared with other volumes; a mapping is built into a private
// property the object owns and removal cascades to.
func (g *Graph) resolveVolumeProperty(obj *Object, conf config.Node) (*Property, error) {
	raw, exists := conf["property"]
	if !exists {
		if prop, ok := g.properties["volume"]; ok {
			obj.PropertyName = prop.Name
			return prop, nil
		}
		return nil, nil
	}
	if name, ok := raw.(string); ok {
		prop, ok := g.properties[name]
		if !ok {
			return nil, fmt.Errorf("unknown property %q", name)
		}
		obj.PropertyName = name
		return prop, nil
	}
	inline, ok := conf.Node("property")
	if !ok {
		return nil, fmt.Errorf("property must be a name or a mapping")
	}
	name := g.nonConflictPropertyName("volume")
	g.AddProperty(name, inline)
	prop, ok := g.properties[name]
	if !ok {
		return nil, fmt.Errorf("inline property %q failed to build", name)
	}
	obj.PropertyName = name
	obj.ownsProperty = true
	return prop, nil
}

func buildSkeleton(g *Graph, view *render.View, obj *Object, conf config.Node) error {
	path, ok := conf.String("file_path")
	if !ok {
		return fmt.Errorf("swc: missing file_path")
	}
	tree, err := swc.ReadFile(path)
	if err != nil {
		return err
	}
	segments, err := tree.Split()
	if err != nil {
		return fmt.Errorf("swc %q: %w", path, err)
	}

	points := tree.Points()
	g.points.AddPoints(obj.Name, points)

	color := colorFromConf(conf, "color", render.NamedColorOr("Tomato", render.Color{1, 0.388, 0.278}))
	obj.Actor = &render.LineActor{
		Points: points,
		Strips: segments,
		Color:  color,
		Width:  float32(conf.FloatOr("line_width", 1.0)),
	}
	if len(points) > 0 {
		obj.WorldCoor = points[0]
		obj.hasCoor = true
	}
	return nil
}

func buildAxes(g *Graph, view *render.View, obj *Object, conf config.Node) error {
	length := float32(conf.FloatOr("length", 100))
	obj.Actor = &render.AxesActor{
		Lengths:    [3]float32{length, length, length},
		ShowLabels: conf.BoolOr("show_axis_labels", false),
	}
	return nil
}

func buildSphere(g *Graph, view *render.View, obj *Object, conf config.Node) error {
	actor := &render.SphereActor{
		Radius: float32(conf.FloatOr("radius", 2.0)),
		Color:  colorFromConf(conf, "color", render.NamedColorOr("Peacock", render.Color{0.2, 0.631, 0.788})),
	}
	if pos, ok := conf.Floats("position"); ok && len(pos) == 3 {
		actor.Center = types.XYZ(float32(pos[0]), float32(pos[1]), float32(pos[2]))
		obj.WorldCoor = actor.Center
		obj.hasCoor = true
	}
	obj.Actor = actor
	return nil
}

func buildOrientationMarker(g *Graph, view *render.View, obj *Object, conf config.Node) error {
	// small axes triad at the origin of its own view; the paired camera
	// keeps it aligned with the main view's orientation
	obj.Actor = &render.AxesActor{
		Lengths:    [3]float32{1, 1, 1},
		ShowLabels: conf.BoolOr("show_axis_labels", true),
	}
	return nil
}

func buildBackground(g *Graph, view *render.View, obj *Object, conf config.Node) error {
	view.Background = colorFromConf(conf, "color", render.Color{0, 0, 0})
	return nil
}

func buildCamera(g *Graph, view *render.View, obj *Object, conf config.Node) error {
	cam := view.ActiveCamera()
	obj.Camera = cam

	if deg, ok := conf.Float("Azimuth"); ok {
		cam.Azimuth(float32(deg))
	}
	if deg, ok := conf.Float("Elevation"); ok {
		cam.Elevation(float32(deg))
	}
	if cr, ok := conf.Floats("clipping_range"); ok && len(cr) == 2 {
		cam.SetClippingRange(float32(cr[0]), float32(cr[1]))
	}

	if srcName, ok := conf.String("follow_direction"); ok {
		src, exists := g.objects[srcName]
		if !exists || src.Camera == nil {
			return fmt.Errorf("camera: follow_direction references unknown camera %q", srcName)
		}
		follow := &cameraFollow{src: src.Camera, dst: cam}
		src.Camera.AddObserver(follow.align)
		follow.align(src.Camera)
	}
	return nil
}

// Pairs the orientation view's camera to the main camera. The link is held
// by this struct and registered as an observer; there is no global state
// involved, so multiple windows can each carry their own pairing.
type cameraFollow struct {
	src *render.Camera
	dst *render.Camera
}

const (
	followDistance = 4.0
	followClipNear = 0.1
	followClipFar  = 1000.0
)

func (f *cameraFollow) align(*render.Camera) {
	f.dst.CopyFrom(f.src)
	render.AlignDirection(f.dst, f.src, followDistance)
	f.dst.ClippingRange = [2]float32{followClipNear, followClipFar}
}

func colorFromConf(conf config.Node, key string, fallback render.Color) render.Color {
	if name, ok := conf.String(key); ok {
		return render.NamedColorOr(name, fallback)
	}
	if rgb, ok := conf.Floats(key); ok && len(rgb) == 3 {
		return render.Color{float32(rgb[0]), float32(rgb[1]), float32(rgb[2])}
	}
	return fallback
}
