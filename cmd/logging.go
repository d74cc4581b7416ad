package cmd

import (
	"github.com/UnrealYue/SimpleVolumeViewer/log"
	"github.com/urfave/cli"
)

var logger = log.New("simplevolumeviewer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
