package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load a configuration document from a JSON or YAML file. YAML documents are
// normalized so they decode to the exact same dynamic shapes as JSON (string
// keys, float64 numbers), keeping type-checked merges format agnostic.
func Load(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: could not read %s: %v", path, err)
	}

	var raw map[string]interface{}
	switch {
	case strings.HasSuffix(path, ".yaml"), strings.HasSuffix(path, ".yml"):
		if err = yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("config: could not parse %s: %v", path, err)
		}
	default:
		if err = json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("config: could not parse %s: %v", path, err)
		}
	}

	return normalize(raw), nil
}

func normalize(raw map[string]interface{}) Node {
	out := make(Node, len(raw))
	for key, value := range raw {
		out[key] = normalizeValue(value)
	}
	return out
}

func normalizeValue(value interface{}) interface{} {
	switch t := value.(type) {
	case map[string]interface{}:
		return normalize(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = normalizeValue(item)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float32:
		return float64(t)
	}
	return value
}
