package main

import (
	"os"
	"runtime"

	"github.com/UnrealYue/SimpleVolumeViewer/cmd"
	"github.com/urfave/cli"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	viewFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "filepath, i",
			Usage: "volume image to load (TIFF file, directory of TIFF slices, or raw)",
		},
		cli.StringFlag{
			Name:  "dims",
			Usage: "raw volume dimensions as \"x y z\"",
		},
		cli.IntFlag{
			Name:  "bits",
			Value: 16,
			Usage: "raw volume bits per voxel (8 or 16)",
		},
		cli.StringFlag{
			Name:  "range",
			Usage: "sub-volume to cut out, e.g. \"[0:16, :, 1/2]\" (z, y, x order)",
		},
		cli.Float64Flag{
			Name:  "colorscale",
			Usage: "scale factor applied to the volume transfer functions",
		},
		cli.StringFlag{
			Name:  "origin",
			Usage: "world-space origin of the volume as \"x y z\"",
		},
		cli.StringFlag{
			Name:  "rotation-matrix",
			Usage: "row-major 3x3 rotation applied to the volume (9 numbers)",
		},
		cli.BoolFlag{
			Name:  "oblique",
			Usage: "apply oblique acquisition geometry correction to the volume",
		},
		cli.StringSliceFlag{
			Name:  "swc",
			Usage: "neuron skeleton file to load (repeatable)",
		},
		cli.StringFlag{
			Name:  "fibercolor",
			Usage: "color for loaded skeletons, e.g. \"Tomato\"",
		},
		cli.StringFlag{
			Name:  "scene",
			Usage: "scene description file (JSON or YAML) merged over the defaults",
		},
	}

	app := cli.NewApp()
	app.Name = "SimpleVolumeViewer"
	app.Usage = "interactive viewer for volumetric microscopy images and neuron skeletons"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "view",
			Usage: "open the interactive viewer",
			Description: `
Load a volume image and/or neuron skeletons and show them in an interactive
window. Right click picks skeleton points, +/- rescale the transfer
functions, r starts a smooth rotation, s saves a screenshot.`,
			Flags:  viewFlags,
			Action: cmd.View,
		},
		{
			Name:      "info",
			Usage:     "print summary tables for volume and skeleton files",
			ArgsUsage: "file1.swc volume.tiff ...",
			Action:    cmd.Info,
		},
	}
	// plain invocation with flags opens the viewer
	app.Flags = append(app.Flags, viewFlags...)
	app.Action = cmd.View

	app.Run(os.Args)
}
