package scene

import (
	"path/filepath"
	"strings"

	"github.com/UnrealYue/SimpleVolumeViewer/config"
	"github.com/chewxy/math32"
)

// Command-line description of data to load: one optional volume plus any
// number of skeleton files. EasyImport translates it to the same object
// configurations a scene file would carry.
type ObjectDescription struct {
	FilePath string

	// raw volumes
	Dims [3]int
	Bits int

	Range          string
	ColorScale     float32
	Origin         []float64
	RotationMatrix []float64
	Oblique        bool

	SWCPaths   []string
	FiberColor string
}

// Build scene objects from a command-line description and add them to the
// graph. The volume is selected and brought into view; a color scale spins
// up a private property derived from the default volume property.
func (g *Graph) EasyImport(desc ObjectDescription) {
	if desc.FilePath != "" {
		conf := config.Node{
			"type":       "volume",
			"file_path":  desc.FilePath,
			"view_point": "auto",
		}
		if desc.Dims != [3]int{} {
			conf["dims"] = []interface{}{
				float64(desc.Dims[0]), float64(desc.Dims[1]), float64(desc.Dims[2]),
			}
			conf["bits"] = float64(desc.Bits)
		}
		if desc.Range != "" {
			conf["range"] = desc.Range
		}
		if desc.Oblique {
			conf["oblique_image"] = true
		}
		if len(desc.Origin) == 3 {
			conf["origin"] = toInterfaces(desc.Origin)
		}
		if len(desc.RotationMatrix) == 9 {
			conf["rotation_matrix"] = toInterfaces(desc.RotationMatrix)
		}
		if desc.ColorScale > 0 && !math32.IsNaN(desc.ColorScale) {
			conf["property"] = map[string]interface{}{
				"copy_from": "volume",
				"opacity_transfer_function": map[string]interface{}{
					"opacity_scale": float64(desc.ColorScale),
				},
				"color_transfer_function": map[string]interface{}{
					"trans_scale": float64(desc.ColorScale),
				},
			}
		}
		name := strings.TrimSuffix(filepath.Base(desc.FilePath), filepath.Ext(desc.FilePath))
		if name == "" {
			name = "volume"
		}
		if _, err := g.AddObject(name, conf); err != nil {
			logger.Errorf("import volume %q: %v", desc.FilePath, err)
		}
	}

	for _, path := range desc.SWCPaths {
		conf := config.Node{
			"type":      "swc",
			"file_path": path,
		}
		if desc.FiberColor != "" {
			conf["color"] = desc.FiberColor
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if name == "" {
			name = "swc"
		}
		if _, err := g.AddObject(name, conf); err != nil {
			logger.Errorf("import swc %q: %v", path, err)
		}
	}
}

func toInterfaces(vals []float64) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
