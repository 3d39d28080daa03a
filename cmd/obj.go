package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/achilleasa/wavefront/asset"
	"github.com/achilleasa/wavefront/wavefront"
	"github.com/urfave/cli"
)

// The result of loading an obj resource and its material libraries.
type objReport struct {
	name      string
	data      *wavefront.ObjData
	materials wavefront.MaterialLibrary
	missing   []string
}

// Parse obj files and display information about their contents.
func ShowObjInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing obj file argument")
	}

	opts := wavefront.Options{RejectUnsupported: ctx.Bool("strict")}
	for _, objFile := range ctx.Args() {
		res, err := asset.NewResource(objFile, nil)
		if err != nil {
			return err
		}

		report, err := loadObj(res, opts, !ctx.Bool("no-mtllib"))
		res.Close()
		if err != nil {
			return err
		}

		for _, name := range report.missing {
			logger.Warningf("%s: material %q is not defined by any material library", report.name, name)
		}

		logger.Noticef("geometry information for %s:\n%s", report.name, objStats(report.data))
		logger.Noticef("group information for %s:\n%s", report.name, groupStats(report.data))
		if len(report.materials) != 0 {
			logger.Noticef("material information for %s:\n%s", report.name, materialStats(report.materials))
		}
	}

	return nil
}

// Parse an obj resource. If loadLibs is true, any referenced material
// library is located relative to the obj resource and parsed.
func loadObj(res *asset.Resource, opts wavefront.Options, loadLibs bool) (*objReport, error) {
	logger.Infof("parsing %s", res.Path())
	start := time.Now()
	data, err := wavefront.ReadObj(res, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", res.Name(), err)
	}
	logger.Debugf("parsed %s in %d ms", res.Name(), time.Since(start).Nanoseconds()/1e6)

	report := &objReport{
		name:      res.Name(),
		data:      data,
		materials: make(wavefront.MaterialLibrary, 0),
	}
	if !loadLibs {
		return report, nil
	}

	for _, libFile := range data.MaterialLibraries {
		materials, err := loadMtl(res, libFile)
		if err != nil {
			return nil, err
		}
		report.materials = append(report.materials, materials...)
	}
	report.missing = missingMaterials(data, report.materials)

	return report, nil
}

// Open and parse a material library relative to an obj resource.
func loadMtl(objRes *asset.Resource, libFile string) (wavefront.MaterialLibrary, error) {
	libRes, err := objRes.Resolve(libFile)
	if err != nil {
		return nil, err
	}
	defer libRes.Close()

	return readMtl(libRes)
}

func readMtl(res *asset.Resource) (wavefront.MaterialLibrary, error) {
	logger.Infof("parsing material library %s", res.Path())
	materials, err := wavefront.ReadMtl(res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", res.Name(), err)
	}
	logger.Debugf("loaded %d material(s) from %s", len(materials), res.Name())
	return materials, nil
}
