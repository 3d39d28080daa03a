package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/wavefront/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "objinfo"
	app.Usage = "parse and inspect wavefront obj and mtl files"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "obj",
			Usage: "parse obj files and display geometry, group and material information",
			Description: `
Parse one or more wavefront obj files (local paths or http/https URLs) and
display a summary of the parsed geometry and groups.

Material libraries referenced via mtllib are located relative to the obj
file, parsed and listed. Materials used by the obj file but not defined by
any library are reported as warnings.`,
			ArgsUsage: "model1.obj model2.obj ...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "strict",
					Usage: "fail on free-form geometry and other unsupported directives",
				},
				cli.BoolFlag{
					Name:  "no-mtllib",
					Usage: "do not load material libraries",
				},
			},
			Action: cmd.ShowObjInfo,
		},
		{
			Name:      "mtl",
			Usage:     "parse mtl files and display material information",
			ArgsUsage: "materials1.mtl materials2.mtl ...",
			Action:    cmd.ShowMtlInfo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
