package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/UnrealYue/SimpleVolumeViewer/asset"
	"github.com/UnrealYue/SimpleVolumeViewer/swc"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print summary tables for the given data files: geometry and bit depth
// for volumes, node and segment counts for skeletons.
func Info(ctx *cli.Context) error {
	setupLogging(ctx)
	if ctx.NArg() == 0 {
		return fmt.Errorf("info: no input files")
	}

	var volumes, skeletons [][]string
	for idx := 0; idx < ctx.NArg(); idx++ {
		path := ctx.Args().Get(idx)
		switch strings.ToLower(filepath.Ext(path)) {
		case ".swc":
			row, err := skeletonRow(path)
			if err != nil {
				logger.Errorf("info: %s: %v", path, err)
				continue
			}
			skeletons = append(skeletons, row)
		case ".tif", ".tiff", "":
			row, err := volumeRow(path)
			if err != nil {
				logger.Errorf("info: %s: %v", path, err)
				continue
			}
			volumes = append(volumes, row)
		default:
			logger.Warningf("info: skipping unsupported file %s", path)
		}
	}

	if len(volumes) > 0 {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Volume", "Dims", "Bits", "Voxels"})
		table.AppendBulk(volumes)
		table.Render()
	}
	if len(skeletons) > 0 {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Skeleton", "Nodes", "Segments", "Bounds Min", "Bounds Max"})
		table.AppendBulk(skeletons)
		table.Render()
	}
	return nil
}

func volumeRow(path string) ([]string, error) {
	block, err := asset.ReadTIFF(path)
	if err != nil {
		return nil, err
	}
	return []string{
		filepath.Base(path),
		fmt.Sprintf("%dx%dx%d", block.Dims[0], block.Dims[1], block.Dims[2]),
		fmt.Sprintf("%d", block.Bits),
		fmt.Sprintf("%d", block.VoxelCount()),
	}, nil
}

func skeletonRow(path string) ([]string, error) {
	tree, err := swc.ReadFile(path)
	if err != nil {
		return nil, err
	}
	segments, err := tree.Split()
	if err != nil {
		return nil, err
	}
	lo, hi := tree.Bounds()
	return []string{
		filepath.Base(path),
		fmt.Sprintf("%d", len(tree.Nodes)),
		fmt.Sprintf("%d", len(segments)),
		fmt.Sprintf("(%.1f, %.1f, %.1f)", lo[0], lo[1], lo[2]),
		fmt.Sprintf("(%.1f, %.1f, %.1f)", hi[0], hi[1], hi[2]),
	}, nil
}
