package scene

import (
	"strings"

	"github.com/UnrealYue/SimpleVolumeViewer/config"
	"github.com/UnrealYue/SimpleVolumeViewer/render"
)

// A rendering property: the pair of live transfer-function curves consumed
// by the volume mapper plus the authored configuration they were built
// from. A property derived via copy_from keeps an immutable back-reference
// to its source so rescaling always recomputes from the authored baseline
// instead of compounding on the current curve.
type Property struct {
	Name string

	// authored spec for this property (may be partial for derived ones)
	Conf config.Node

	// source property for derived properties; nil otherwise
	Ref *Property

	Opacity       *render.PiecewiseFunction
	Color         *render.ColorTransferFunction
	Interpolation string
}

// The configuration holding the authored control points: the source
// property's for derived properties, this property's own otherwise.
func (p *Property) authoredConf() config.Node {
	if p.Ref != nil {
		return p.Ref.authoredConf()
	}
	return p.Conf
}

// Authored opacity control points as (position, opacity) pairs.
func (p *Property) authoredOpacityPoints() [][2]float32 {
	return curvePoints2(p.authoredConf(), "opacity_transfer_function", "AddPoint")
}

// Authored color control points as (position, r, g, b) tuples.
func (p *Property) authoredColorPoints() [][4]float32 {
	conf, ok := p.authoredConf().Node("color_transfer_function")
	if !ok {
		return nil
	}
	seq, ok := conf["AddRGBPoint"].([]interface{})
	if !ok {
		return nil
	}
	out := make([][4]float32, 0, len(seq))
	for _, item := range seq {
		pt, ok := item.([]interface{})
		if !ok || len(pt) < 4 {
			continue
		}
		var v [4]float32
		bad := false
		for i := 0; i < 4; i++ {
			f, ok := pt[i].(float64)
			if !ok {
				bad = true
				break
			}
			v[i] = float32(f)
		}
		if !bad {
			out = append(out, v)
		}
	}
	return out
}

func curvePoints2(conf config.Node, section, key string) [][2]float32 {
	sectionConf, ok := conf.Node(section)
	if !ok {
		return nil
	}
	seq, ok := sectionConf[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([][2]float32, 0, len(seq))
	for _, item := range seq {
		pt, ok := item.([]interface{})
		if !ok || len(pt) < 2 {
			continue
		}
		x, okX := pt[0].(float64)
		y, okY := pt[1].(float64)
		if okX && okY {
			out = append(out, [2]float32{float32(x), float32(y)})
		}
	}
	return out
}

// Register a named rendering property built from its configuration.
// Volume properties support opacity and color transfer functions, an
// interpolation mode and derivation from an existing property through
// copy_from. Name conflicts warn and overwrite, matching the loader's
// read-once configuration lifecycle.
func (g *Graph) AddProperty(name string, conf config.Node) {
	if _, exists := g.properties[name]; exists {
		logger.Warningf("AddProperty: conflicting property name %q", name)
	}
	if !strings.HasPrefix(name, "volume") {
		logger.Warningf("AddProperty: unknown property type for %q", name)
		return
	}
	logger.Infof("AddProperty: %q", name)

	prop := &Property{Name: name, Conf: conf}

	if refName, ok := conf.String("copy_from"); ok {
		ref, exists := g.properties[refName]
		if !exists {
			logger.Warningf("AddProperty: copy_from references unknown property %q", refName)
			return
		}
		logger.Infof("AddProperty: deriving %q from %q", name, refName)
		prop.Ref = ref
		prop.Opacity = copyPiecewise(ref.Opacity)
		prop.Color = copyColorFunction(ref.Color)
		prop.Interpolation = ref.Interpolation
		g.properties[name] = prop
		g.ModifyProperty(name, conf)
		return
	}

	if otfConf, ok := conf.Node("opacity_transfer_function"); ok {
		scale := float32(otfConf.FloatOr("opacity_scale", 1.0))
		otf := render.NewPiecewiseFunction()
		for _, pt := range curvePoints2(conf, "opacity_transfer_function", "AddPoint") {
			otf.AddPoint(scale*pt[0], pt[1])
		}
		prop.Opacity = otf
	}

	if ctfConf, ok := conf.Node("color_transfer_function"); ok {
		scale := float32(ctfConf.FloatOr("trans_scale", 1.0))
		ctf := render.NewColorTransferFunction()
		for _, pt := range prop.authoredColorPoints() {
			ctf.AddRGBPoint(scale*pt[0], pt[1], pt[2], pt[3])
		}
		prop.Color = ctf
	}

	switch interp := conf.StringOr("interpolation", ""); interp {
	case "cubic", "linear":
		prop.Interpolation = interp
	case "":
	default:
		logger.Warningf("AddProperty: unknown interpolation type %q", interp)
	}

	g.properties[name] = prop
}

// Re-apply the transfer-function scaler to an existing property using the
// scale factors present in the given (possibly partial) configuration.
func (g *Graph) ModifyProperty(name string, conf config.Node) {
	prop, exists := g.properties[name]
	if !exists {
		logger.Warningf("ModifyProperty: unknown property %q", name)
		return
	}
	logger.Infof("ModifyProperty: %q", name)

	if otfConf, ok := conf.Node("opacity_transfer_function"); ok {
		if scale, ok := otfConf.Float("opacity_scale"); ok {
			updateOpacityScale(prop, float32(scale))
		}
	}
	if ctfConf, ok := conf.Node("color_transfer_function"); ok {
		if scale, ok := ctfConf.Float("trans_scale"); ok {
			updateColorScale(prop, float32(scale))
		}
	}
}

// Look up a property by name.
func (g *Graph) Property(name string) (*Property, bool) {
	prop, ok := g.properties[name]
	return prop, ok
}

// Remove a property, re-anchoring any property derived from it so no
// back-reference dangles: the derived property inherits a deep copy of the
// authored configuration and becomes self-contained.
func (g *Graph) removeProperty(name string) {
	prop, exists := g.properties[name]
	if !exists {
		return
	}
	for _, other := range g.properties {
		if other.Ref == prop {
			other.Conf = config.Merge(config.DeepCopy(prop.authoredConf()), other.Conf)
			other.Ref = nil
		}
	}
	delete(g.properties, name)
}

func copyPiecewise(src *render.PiecewiseFunction) *render.PiecewiseFunction {
	if src == nil {
		return nil
	}
	out := render.NewPiecewiseFunction()
	for k := 0; k < src.Size(); k++ {
		v := src.NodeValue(k)
		out.AddPoint(v[0], v[1])
	}
	return out
}

func copyColorFunction(src *render.ColorTransferFunction) *render.ColorTransferFunction {
	if src == nil {
		return nil
	}
	out := render.NewColorTransferFunction()
	for k := 0; k < src.Size(); k++ {
		v := src.NodeValue(k)
		out.AddRGBPoint(v[0], v[1], v[2], v[3])
	}
	return out
}
