package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"model-generator/internal/gen"
	"model-generator/internal/schema"
	"model-generator/internal/schemafile"
)

var cmdConvert = &cli.Command{
	Name:      "convert",
	Usage:     "add ResponseObjectSerializable conformance to swagger-codegen Swift models",
	ArgsUsage: `<input-dir> <output-dir>`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "force",
			Aliases: []string{"f"},
			Usage:   "overwrite files in the output directory",
		},
		&cli.StringFlag{
			Name:  "emit-schema",
			Usage: "also write the parsed classes as a YAML schema document",
		},
	},
	Action: runConvert,
}

func runConvert(cctx *cli.Context) error {
	if cctx.Args().Len() != 2 {
		return fmt.Errorf("expected input and output directories")
	}

	input, output := cctx.Args().Get(0), cctx.Args().Get(1)

	paths, err := inputFiles(input)
	if err != nil {
		return err
	}

	var (
		files   []gen.GeneratedFile
		classes []*schema.ClassSpec
	)

	for _, path := range paths {
		file, class, err := convertFile(path)
		if err != nil {
			slog.Error("could not convert", "path", path, "err", err)
			continue
		}

		files = append(files, *file)
		classes = append(classes, class)
	}

	if err := gen.WriteFiles(files, output, cctx.Bool("force")); err != nil {
		return err
	}

	for _, f := range files {
		slog.Info("converted", "class", f.ClassName, "path", filepath.Join(output, f.Filename))
	}

	if path := cctx.String("emit-schema"); path != "" {
		if err := schemafile.WriteFile(classes, path); err != nil {
			return err
		}
	}

	return nil
}

// convertFile re-renders one Swift model with the swift dialect. The output
// keeps the input's base name and import lines.
func convertFile(path string) (*gen.GeneratedFile, *schema.ClassSpec, error) {
	model, diags, err := schemafile.LoadSwiftFile(path)
	if err != nil {
		return nil, nil, err
	}

	logDiagnostics(diags)

	if err := diags.Err(); err != nil {
		return nil, nil, err
	}

	base := filepath.Base(path)

	config := gen.DefaultConfig()
	config.Dialect = "swift"
	config.Header = fmt.Sprintf("//\n// %s\n//\n// Generated by swagger-codegen, made Alamofire compatible by model-generator\n//", base)

	if len(model.Imports) > 0 {
		config.Imports = strings.Join(model.Imports, "\n")
	}

	g, err := gen.NewGenerator(config, nil)
	if err != nil {
		return nil, nil, err
	}

	files, err := g.Generate([]*schema.ClassSpec{model.Class})
	if err != nil {
		return nil, nil, err
	}

	file := files[0]
	file.Filename = base

	return &file, model.Class, nil
}
