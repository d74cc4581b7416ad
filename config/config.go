// Package config holds the declarative GUI and scene descriptions consumed
// by the scene graph. Descriptions are free-form trees of string-keyed maps,
// scalar leaves and number sequences, the shape produced by decoding JSON.
package config

import (
	"reflect"

	"github.com/UnrealYue/SimpleVolumeViewer/log"
)

var logger = log.New("config")

// A configuration node. Values are scalars (string, bool, float64), ordered
// sequences ([]interface{}) or nested nodes.
type Node map[string]interface{}

// Deep-merge override into base and return base. Values present in override
// overwrite the matching leaf in base when their types agree; values missing
// from base are added verbatim; nested nodes are merged recursively instead
// of being replaced wholesale. A leaf whose type conflicts with the existing
// value is discarded with a warning and traversal continues, so merging the
// same override twice yields no further change.
func Merge(base, override Node) Node {
	for key, value := range override {
		old, exists := base[key]
		if !exists {
			base[key] = copyValue(value)
			continue
		}

		valueMap, valueIsMap := asNode(value)
		oldMap, oldIsMap := asNode(old)
		if valueIsMap && oldIsMap {
			Merge(oldMap, valueMap)
			continue
		}

		if valueIsMap != oldIsMap || reflect.TypeOf(old) != reflect.TypeOf(value) {
			logger.Warningf("merge: type mismatch for key %q; value discarded", key)
			continue
		}

		base[key] = copyValue(value)
	}

	return base
}

// Create a recursive copy of a node. Sequences are copied shallowly element
// by element; nested nodes are copied recursively.
func DeepCopy(n Node) Node {
	out := make(Node, len(n))
	for key, value := range n {
		out[key] = copyValue(value)
	}
	return out
}

func copyValue(value interface{}) interface{} {
	if m, ok := asNode(value); ok {
		return DeepCopy(m)
	}
	if seq, ok := value.([]interface{}); ok {
		out := make([]interface{}, len(seq))
		for i, item := range seq {
			out[i] = copyValue(item)
		}
		return out
	}
	return value
}

func asNode(value interface{}) (Node, bool) {
	switch t := value.(type) {
	case Node:
		return t, true
	case map[string]interface{}:
		return Node(t), true
	}
	return nil, false
}

// Fetch a nested node by key.
func (n Node) Node(key string) (Node, bool) {
	m, ok := asNode(n[key])
	return m, ok
}

// Fetch a string leaf by key.
func (n Node) String(key string) (string, bool) {
	s, ok := n[key].(string)
	return s, ok
}

// Fetch a string leaf, falling back to a default.
func (n Node) StringOr(key, fallback string) string {
	if s, ok := n[key].(string); ok {
		return s
	}
	return fallback
}

// Fetch a numeric leaf by key.
func (n Node) Float(key string) (float64, bool) {
	f, ok := n[key].(float64)
	return f, ok
}

// Fetch a numeric leaf, falling back to a default.
func (n Node) FloatOr(key string, fallback float64) float64 {
	if f, ok := n[key].(float64); ok {
		return f
	}
	return fallback
}

// Fetch a boolean leaf, falling back to a default.
func (n Node) BoolOr(key string, fallback bool) bool {
	if b, ok := n[key].(bool); ok {
		return b
	}
	return fallback
}

// Fetch a sequence leaf as a float slice. Returns false if the key is
// missing or any element is not a number.
func (n Node) Floats(key string) ([]float64, bool) {
	seq, ok := n[key].([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]float64, len(seq))
	for i, item := range seq {
		f, ok := item.(float64)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}
