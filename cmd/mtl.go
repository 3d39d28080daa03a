package cmd

import (
	"errors"

	"github.com/achilleasa/wavefront/asset"
	"github.com/urfave/cli"
)

// Parse mtl files and display information about the defined materials.
func ShowMtlInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing mtl file argument")
	}

	for _, mtlFile := range ctx.Args() {
		res, err := asset.NewResource(mtlFile, nil)
		if err != nil {
			return err
		}

		materials, err := readMtl(res)
		res.Close()
		if err != nil {
			return err
		}

		logger.Noticef("material information for %s:\n%s", res.Name(), materialStats(materials))
	}

	return nil
}
