package scene

import (
	"github.com/chewxy/math32"
)

// Rescale the opacity curve of a property in place: every control point is
// moved to scale times its authored position while its opacity value is
// preserved. Computing from the authored points makes the operation
// idempotent for a fixed scale.
func updateOpacityScale(prop *Property, scale float32) {
	if prop == nil || prop.Opacity == nil {
		return
	}
	authored := prop.authoredOpacityPoints()
	if len(authored) != prop.Opacity.Size() {
		logger.Warningf("opacity scale: curve has %d points, authored spec has %d",
			prop.Opacity.Size(), len(authored))
		return
	}
	for k, pt := range authored {
		cur := prop.Opacity.NodeValue(k)
		cur[0] = scale * pt[0]
		cur[1] = pt[1]
		prop.Opacity.SetNodeValue(k, cur)
	}
}

// Rescale the color curve of a property in place, moving control points to
// scale times their authored positions and restoring the authored colors.
func updateColorScale(prop *Property, scale float32) {
	if prop == nil || prop.Color == nil {
		return
	}
	authored := prop.authoredColorPoints()
	if len(authored) != prop.Color.Size() {
		logger.Warningf("color scale: curve has %d points, authored spec has %d",
			prop.Color.Size(), len(authored))
		return
	}
	for k, pt := range authored {
		prop.Color.SetNodeValue(k, pt)
	}
	for k := 0; k < prop.Color.Size(); k++ {
		cur := prop.Color.NodeValue(k)
		cur[0] = scale * authored[k][0]
		prop.Color.SetNodeValue(k, cur)
	}
}

// Recover the scale factors currently applied to a property's curves as the
// ratio between the last control point's current and authored positions.
// A missing or empty curve reports NaN for its factor.
func ColorScale(prop *Property) (otfScale, ctfScale float32) {
	otfScale = math32.NaN()
	ctfScale = math32.NaN()
	if prop == nil {
		return otfScale, ctfScale
	}
	if prop.Opacity != nil {
		authored := prop.authoredOpacityPoints()
		if n := prop.Opacity.Size(); n > 0 && len(authored) == n && authored[n-1][0] != 0 {
			otfScale = prop.Opacity.NodeValue(n-1)[0] / authored[n-1][0]
		}
	}
	if prop.Color != nil {
		authored := prop.authoredColorPoints()
		if n := prop.Color.Size(); n > 0 && len(authored) == n && authored[n-1][0] != 0 {
			ctfScale = prop.Color.NodeValue(n-1)[0] / authored[n-1][0]
		}
	}
	return otfScale, ctfScale
}

// Apply the same scale factor to both curves of a property.
func SetColorScale(prop *Property, scale float32) {
	updateOpacityScale(prop, scale)
	updateColorScale(prop, scale)
}
