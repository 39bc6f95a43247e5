package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hysios/etrace/gen"
	icli "github.com/hysios/etrace/internal/cli"
	"github.com/hysios/etrace/internal/gen/template"
	"github.com/hysios/etrace/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/mod/modfile"
)

// modulePath is the import path consumers need for the generated code.
const modulePath = "github.com/hysios/etrace"

func genCmd() *cli.Command {
	return &cli.Command{
		Name:  "gen",
		Usage: "generate a named error wrapper type",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "name",
				Usage:    "wrapper type spec, format <name>[:<package>]",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "kind",
				Usage: "emission kind, one of alias, struct (alias needs Go 1.24+)",
				Value: "alias",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "output directory",
				Aliases: []string{
					"o",
				},
				Value: ".",
			},
			&cli.BoolFlag{
				Name:  "overwrite",
				Usage: "overwrite existing files",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "verbose output",
			},
		},
		Action: runGen,
	}
}

func runGen(c *cli.Context) error {
	spec, err := icli.ParseTypeSpec(c.String("name"))
	if err != nil {
		return err
	}

	var fsys *gen.FileSystem
	switch kind := c.String("kind"); kind {
	case "alias":
		fsys = template.Alias
	case "struct":
		fsys = template.Struct
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	if c.Bool("verbose") {
		logger.Verbose()
	}

	outdir := c.String("output")
	checkModule(outdir)

	return fsys.Gen(&gen.Output{
		Directory: outdir,
		Verbose:   c.Bool("verbose"),
		Overwrite: c.Bool("overwrite"),
	}, template.NewWrapperContext(spec))
}

// checkModule warns when the output directory is a module root whose
// go.mod does not require etrace yet.
func checkModule(dir string) {
	f, err := parseModfile(dir)
	if err != nil {
		// Not a module root, nothing to check.
		return
	}

	logger.Cli.Debug("target module", zap.String("module", f.Module.Mod.Path))

	for _, r := range f.Require {
		if r.Mod.Path == modulePath {
			return
		}
	}

	logger.Cli.Warn("target module does not require etrace yet",
		zap.String("hint", "go get "+modulePath))
}

func parseModfile(dir string) (*modfile.File, error) {
	content, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return nil, err
	}

	return modfile.Parse("go.mod", content, nil)
}
