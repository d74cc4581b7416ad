package scene

import (
	"testing"

	"github.com/UnrealYue/SimpleVolumeViewer/config"
	"github.com/chewxy/math32"
)

func volumePropConf(opacityScale, transScale float64) config.Node {
	return config.Node{
		"opacity_transfer_function": config.Node{
			"AddPoint": []interface{}{
				[]interface{}{20.0, 0.0},
				[]interface{}{255.0, 0.2},
			},
			"opacity_scale": opacityScale,
		},
		"color_transfer_function": config.Node{
			"AddRGBPoint": []interface{}{
				[]interface{}{0.0, 0.0, 0.0, 0.0},
				[]interface{}{64.0, 0.0, 0.2, 0.3},
				[]interface{}{128.0, 0.1, 0.5, 0.6},
				[]interface{}{255.0, 0.9, 0.9, 0.9},
			},
			"trans_scale": transScale,
		},
		"interpolation": "cubic",
	}
}

func almostEqual(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestAddPropertyAppliesCreationScale(t *testing.T) {
	g := NewGraph()
	g.AddProperty("volume", volumePropConf(40, 40))

	prop, ok := g.Property("volume")
	if !ok {
		t.Fatal("expected property to be registered")
	}
	if prop.Opacity.Size() != 2 || prop.Color.Size() != 4 {
		t.Fatalf("expected 2 opacity and 4 color points; got %d and %d",
			prop.Opacity.Size(), prop.Color.Size())
	}
	if got := prop.Opacity.NodeValue(1); !almostEqual(got[0], 40*255) || !almostEqual(got[1], 0.2) {
		t.Fatalf("expected last opacity point (10200, 0.2); got %v", got)
	}
	if got := prop.Color.NodeValue(3); !almostEqual(got[0], 40*255) {
		t.Fatalf("expected last color point at 10200; got %v", got)
	}

	otf, ctf := ColorScale(prop)
	if !almostEqual(otf, 40) || !almostEqual(ctf, 40) {
		t.Fatalf("expected recovered scales (40, 40); got (%v, %v)", otf, ctf)
	}
}

func TestSetColorScaleRecomputesFromAuthoredPoints(t *testing.T) {
	g := NewGraph()
	g.AddProperty("volume", volumePropConf(1, 1))
	prop, _ := g.Property("volume")

	// repeated absolute scaling never compounds
	SetColorScale(prop, 2.0)
	SetColorScale(prop, 2.0)
	if got := prop.Color.NodeValue(3); !almostEqual(got[0], 510) {
		t.Fatalf("expected last color position 510 after scale 2; got %v", got)
	}
	if got := prop.Color.NodeValue(1); !almostEqual(got[0], 128) {
		t.Fatalf("expected interior position 2*64; got %v", got)
	}
	// colors are untouched by position rescaling
	if got := prop.Color.NodeValue(2); !almostEqual(got[2], 0.5) {
		t.Fatalf("expected color channels preserved; got %v", got)
	}

	SetColorScale(prop, 1.0)
	if got := prop.Opacity.NodeValue(1); !almostEqual(got[0], 255) || !almostEqual(got[1], 0.2) {
		t.Fatalf("expected scale 1 to restore authored points; got %v", got)
	}

	otf, ctf := ColorScale(prop)
	if !almostEqual(otf, 1) || !almostEqual(ctf, 1) {
		t.Fatalf("expected recovered scales (1, 1); got (%v, %v)", otf, ctf)
	}
}

func TestDerivedPropertyScalesFromSourceAuthoredPoints(t *testing.T) {
	g := NewGraph()
	g.AddProperty("volume", volumePropConf(1, 1))
	g.AddProperty("volume.001", config.Node{
		"copy_from": "volume",
		"color_transfer_function": config.Node{
			"trans_scale": 3.0,
		},
	})

	derived, ok := g.Property("volume.001")
	if !ok {
		t.Fatal("expected derived property to be registered")
	}
	if derived.Ref == nil || derived.Ref.Name != "volume" {
		t.Fatal("expected derived property to reference its source")
	}
	if got := derived.Color.NodeValue(3); !almostEqual(got[0], 3*255) {
		t.Fatalf("expected derived last position 765; got %v", got)
	}

	// the source keeps its own curves
	src, _ := g.Property("volume")
	if got := src.Color.NodeValue(3); !almostEqual(got[0], 255) {
		t.Fatalf("expected source untouched; got %v", got)
	}

	_, ctf := ColorScale(derived)
	if !almostEqual(ctf, 3) {
		t.Fatalf("expected recovered derived scale 3; got %v", ctf)
	}
}

func TestColorScaleWithoutCurves(t *testing.T) {
	otf, ctf := ColorScale(&Property{Name: "empty"})
	if !math32.IsNaN(otf) || !math32.IsNaN(ctf) {
		t.Fatalf("expected NaN scales for empty property; got (%v, %v)", otf, ctf)
	}
}
