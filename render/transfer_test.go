package render

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestPiecewiseFunction(t *testing.T) {
	f := NewPiecewiseFunction()
	f.AddPoint(255, 0.2)
	f.AddPoint(20, 0)

	if f.Size() != 2 {
		t.Fatalf("expected 2 points; got %d", f.Size())
	}
	// points are kept ordered by position regardless of insertion order
	if got := f.NodeValue(0); got != [2]float32{20, 0} {
		t.Fatalf("expected first point (20, 0); got %v", got)
	}

	if got := f.Value(0); got != 0 {
		t.Fatalf("expected clamped low end 0; got %v", got)
	}
	if got := f.Value(1000); got != 0.2 {
		t.Fatalf("expected clamped high end 0.2; got %v", got)
	}
	mid := f.Value((20 + 255) / 2.0)
	if math32.Abs(mid-0.1) > 1e-6 {
		t.Fatalf("expected linear midpoint 0.1; got %v", mid)
	}

	f.SetNodeValue(1, [2]float32{510, 0.2})
	if got := f.NodeValue(1); got[0] != 510 {
		t.Fatalf("expected overwritten position 510; got %v", got)
	}
}

func TestColorTransferFunction(t *testing.T) {
	f := NewColorTransferFunction()
	f.AddRGBPoint(100, 1, 1, 1)
	f.AddRGBPoint(0, 0, 0, 0)

	if got := f.ColorAt(-5); got != (Color{0, 0, 0}) {
		t.Fatalf("expected clamped black; got %v", got)
	}
	if got := f.ColorAt(500); got != (Color{1, 1, 1}) {
		t.Fatalf("expected clamped white; got %v", got)
	}
	got := f.ColorAt(25)
	for i := 0; i < 3; i++ {
		if math32.Abs(got[i]-0.25) > 1e-6 {
			t.Fatalf("expected 25%% gray; got %v", got)
		}
	}
}

func TestNamedColor(t *testing.T) {
	if c, ok := NamedColor("Red"); !ok || c != (Color{1, 0, 0}) {
		t.Fatalf("expected Red = (1,0,0); got %v (ok=%v)", c, ok)
	}
	// extra palette entries missing from the SVG set
	if _, ok := NamedColor("Peacock"); !ok {
		t.Fatal("expected Peacock to resolve")
	}
	if _, ok := NamedColor("NotAColor"); ok {
		t.Fatal("expected unknown name to be rejected")
	}
	if c := NamedColorOr("NotAColor", Color{0.5, 0.5, 0.5}); c != (Color{0.5, 0.5, 0.5}) {
		t.Fatalf("expected fallback color; got %v", c)
	}
}
