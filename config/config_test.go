package config

import (
	"reflect"
	"testing"
)

func TestMergeEmptyOverride(t *testing.T) {
	base := Node{"a": 1.0, "b": Node{"c": "x"}}
	out := Merge(base, Node{})
	if !reflect.DeepEqual(out, base) {
		t.Fatalf("expected merge with empty override to equal base; got %v", out)
	}
}

func TestMergeOverridesLeaves(t *testing.T) {
	base := Node{
		"window": Node{"title": "a", "size": []interface{}{1.0, 2.0}},
		"keep":   "base",
	}
	override := Node{
		"window": Node{"title": "b"},
		"extra":  42.0,
	}
	out := Merge(base, override)

	win, ok := out.Node("window")
	if !ok {
		t.Fatal("expected merged config to keep the window section")
	}
	if title, _ := win.String("title"); title != "b" {
		t.Fatalf("expected overridden title to be %q; got %q", "b", title)
	}
	if _, ok := win["size"]; !ok {
		t.Fatal("expected merge to keep base keys absent from the override")
	}
	if keep, _ := out.String("keep"); keep != "base" {
		t.Fatalf("expected untouched key to stay %q; got %q", "base", keep)
	}
	if v, _ := out.Float("extra"); v != 42.0 {
		t.Fatalf("expected new key from override to be 42; got %v", v)
	}
}

func TestMergeTypeMismatchKeepsBase(t *testing.T) {
	base := Node{"size": []interface{}{1.0, 2.0}}
	override := Node{"size": "not-a-list"}
	out := Merge(base, override)

	got, ok := out["size"].([]interface{})
	if !ok {
		t.Fatalf("expected mismatched override to be discarded; got %v", out["size"])
	}
	if len(got) != 2 {
		t.Fatalf("expected base value to survive the mismatch; got %v", got)
	}
}

func TestMergeIdempotent(t *testing.T) {
	base := Node{"a": Node{"b": 1.0}, "c": "x"}
	override := Node{"a": Node{"b": 2.0}, "d": true}

	once := Merge(DeepCopy(base), override)
	twice := Merge(DeepCopy(once), override)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected repeated merge to be a no-op; got %v then %v", once, twice)
	}
}

func TestMergeDoesNotAliasOverride(t *testing.T) {
	override := Node{"a": Node{"b": 1.0}}
	out := Merge(Node{}, override)

	sub, _ := out.Node("a")
	sub["b"] = 99.0
	if v, _ := override["a"].(Node)["b"].(float64); v != 1.0 {
		t.Fatalf("expected override to be unaffected by mutating the result; got %v", v)
	}
}

func TestDeepCopyIndependence(t *testing.T) {
	src := Node{"a": Node{"b": []interface{}{1.0, 2.0}}}
	dup := DeepCopy(src)

	sub, _ := dup.Node("a")
	sub["b"].([]interface{})[0] = 9.0
	if src["a"].(Node)["b"].([]interface{})[0].(float64) != 1.0 {
		t.Fatal("expected deep copy to be independent of the source")
	}
}

func TestAccessors(t *testing.T) {
	n := Node{
		"s": "hello",
		"f": 3.5,
		"b": true,
		"l": []interface{}{1.0, 2.0, 3.0},
	}
	if v := n.StringOr("s", "x"); v != "hello" {
		t.Fatalf("expected hello; got %q", v)
	}
	if v := n.StringOr("missing", "x"); v != "x" {
		t.Fatalf("expected fallback x; got %q", v)
	}
	if v := n.FloatOr("f", 0); v != 3.5 {
		t.Fatalf("expected 3.5; got %v", v)
	}
	if !n.BoolOr("b", false) {
		t.Fatal("expected true")
	}
	vals, ok := n.Floats("l")
	if !ok || len(vals) != 3 || vals[2] != 3.0 {
		t.Fatalf("expected [1 2 3]; got %v (ok=%v)", vals, ok)
	}
}
