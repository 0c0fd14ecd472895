package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"model-generator/internal/gen"
	"model-generator/internal/tmpl"
)

var sourceFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "schema",
		Aliases: []string{"s"},
		Usage:   "YAML schema document",
		EnvVars: []string{"MODELGEN_SCHEMA"},
	},
	&cli.StringFlag{
		Name:    "swift-dir",
		Usage:   "directory of swagger-codegen Swift models to read classes from",
		EnvVars: []string{"MODELGEN_SWIFT_DIR"},
	},
	&cli.StringSliceFlag{
		Name:    "go-pkg",
		Usage:   "Go package pattern whose exported structs are read as classes (repeatable)",
		EnvVars: []string{"MODELGEN_GO_PKG"},
	},
	&cli.StringFlag{
		Name:    "dialect",
		Aliases: []string{"d"},
		Usage:   "target dialect (see 'dialects')",
		Value:   "go",
		EnvVars: []string{"MODELGEN_DIALECT"},
	},
}

var cmdGen = &cli.Command{
	Name:  "gen",
	Usage: "generate model classes",
	Flags: append(append([]cli.Flag{}, sourceFlags...),
		&cli.StringFlag{
			Name:     "out",
			Aliases:  []string{"o"},
			Usage:    "output directory",
			Required: true,
			EnvVars:  []string{"MODELGEN_OUT"},
		},
		&cli.StringFlag{
			Name:    "package",
			Usage:   "package name of generated Go files",
			Value:   gen.DefaultConfig().PackageName,
			EnvVars: []string{"MODELGEN_PACKAGE"},
		},
		&cli.StringFlag{
			Name:    "runtime-import",
			Usage:   "import path of the encodable runtime in generated Go files",
			Value:   gen.DefaultRuntimeImport,
			EnvVars: []string{"MODELGEN_RUNTIME_IMPORT"},
		},
		&cli.StringFlag{
			Name:    "template",
			Usage:   "class template file overriding the dialect default",
			EnvVars: []string{"MODELGEN_TEMPLATE"},
		},
		&cli.StringFlag{
			Name:    "engine",
			Usage:   "template engine: strict or pongo2",
			Value:   "strict",
			EnvVars: []string{"MODELGEN_ENGINE"},
		},
		&cli.BoolFlag{
			Name:  "no-format",
			Usage: "skip formatting of generated source",
		},
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "write into a non-empty output directory",
		},
	),
	Action: runGen,
}

func runGen(cctx *cli.Context) error {
	config := gen.DefaultConfig()
	config.Dialect = cctx.String("dialect")
	config.PackageName = cctx.String("package")
	config.RuntimeImport = cctx.String("runtime-import")
	config.OutputDir = cctx.String("out")
	config.Format = !cctx.Bool("no-format")

	if path := cctx.String("template"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template: %w", err)
		}

		config.Template = string(data)
	}

	engine, err := selectEngine(cctx.String("engine"))
	if err != nil {
		return err
	}

	g, err := gen.NewGenerator(config, engine)
	if err != nil {
		return err
	}

	classes, err := loadClasses(sourcesFromFlags(cctx), g.Dialect().Primitives())
	if err != nil {
		return err
	}

	files, err := g.Generate(classes)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, config.OutputDir, cctx.Bool("force")); err != nil {
		return err
	}

	for _, f := range files {
		slog.Info("generated", "class", f.ClassName, "file", f.Filename)
	}

	return nil
}

func selectEngine(name string) (tmpl.Engine, error) {
	switch name {
	case "", "strict":
		return gen.DefaultEngine(), nil
	case "pongo2", "pongo", "jinja":
		return tmpl.NewPongo(true, true), nil
	default:
		return nil, fmt.Errorf("unknown template engine: %s", name)
	}
}
