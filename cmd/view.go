package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/UnrealYue/SimpleVolumeViewer/config"
	"github.com/UnrealYue/SimpleVolumeViewer/scene"
	"github.com/UnrealYue/SimpleVolumeViewer/viewer"
	"github.com/urfave/cli"
)

// Open the interactive viewer: compose the default window and scene with
// an optional user scene file, import any command-line data, and run the
// event loop until the window closes.
func View(ctx *cli.Context) error {
	setupLogging(ctx)

	winConf := config.DefaultWindow()
	sceneConf := config.DefaultScene()

	if scenePath := ctx.String("scene"); scenePath != "" {
		userConf, err := config.Load(scenePath)
		if err != nil {
			return fmt.Errorf("load scene file: %w", err)
		}
		winConf = config.Merge(winConf, userConf)
		sceneConf = config.Merge(sceneConf, userConf)
	}

	graph := scene.NewGraph()
	graph.Setup(winConf)
	graph.Append(sceneConf)

	desc, err := descriptionFromFlags(ctx)
	if err != nil {
		return err
	}
	graph.EasyImport(desc)

	return viewer.Run(graph)
}

func descriptionFromFlags(ctx *cli.Context) (scene.ObjectDescription, error) {
	desc := scene.ObjectDescription{
		FilePath:   ctx.String("filepath"),
		Range:      ctx.String("range"),
		ColorScale: float32(ctx.Float64("colorscale")),
		Oblique:    ctx.Bool("oblique"),
		SWCPaths:   ctx.StringSlice("swc"),
		FiberColor: ctx.String("fibercolor"),
	}

	if dims := ctx.String("dims"); dims != "" {
		vals, err := parseFloats(dims, 3)
		if err != nil {
			return desc, fmt.Errorf("parse dims: %w", err)
		}
		desc.Dims = [3]int{int(vals[0]), int(vals[1]), int(vals[2])}
		desc.Bits = ctx.Int("bits")
	}
	if origin := ctx.String("origin"); origin != "" {
		vals, err := parseFloats(origin, 3)
		if err != nil {
			return desc, fmt.Errorf("parse origin: %w", err)
		}
		desc.Origin = vals
	}
	if rot := ctx.String("rotation-matrix"); rot != "" {
		vals, err := parseFloats(rot, 9)
		if err != nil {
			return desc, fmt.Errorf("parse rotation-matrix: %w", err)
		}
		desc.RotationMatrix = vals
	}
	return desc, nil
}

// Parse a whitespace or comma separated list of exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d values; got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", field, err)
		}
		out[i] = v
	}
	return out, nil
}
