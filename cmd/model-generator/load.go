package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	"model-generator/internal/analyze"
	"model-generator/internal/diagnostic"
	"model-generator/internal/schema"
	"model-generator/internal/schemafile"
)

var errNoSource = errors.New("no class source given: use --schema, --swift-dir or --go-pkg")

// sources names where classes are read from.
type sources struct {
	schemaPath string
	swiftDir   string
	goPkgs     []string
}

func sourcesFromFlags(cctx *cli.Context) sources {
	return sources{
		schemaPath: cctx.String("schema"),
		swiftDir:   cctx.String("swift-dir"),
		goPkgs:     cctx.StringSlice("go-pkg"),
	}
}

// loadClasses reads classes from a YAML schema document, a directory of
// Swift models and Go packages, in that order. Warnings are logged; error
// diagnostics fail the load.
func loadClasses(src sources, primitives schema.PrimitiveSet) ([]*schema.ClassSpec, error) {
	schemaPath, swiftDir := src.schemaPath, src.swiftDir
	if schemaPath == "" && swiftDir == "" && len(src.goPkgs) == 0 {
		return nil, errNoSource
	}

	diags := &diagnostic.Diagnostics{}

	var classes []*schema.ClassSpec

	if schemaPath != "" {
		loaded, d, err := schemafile.LoadFile(schemaPath, primitives)
		if err != nil {
			return nil, err
		}

		diags.Merge(d)
		classes = append(classes, loaded...)
	}

	if swiftDir != "" {
		paths, err := swiftFiles(swiftDir)
		if err != nil {
			return nil, err
		}

		for _, path := range paths {
			model, d, err := schemafile.LoadSwiftFile(path)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}

			diags.Merge(d)
			classes = append(classes, model.Class)
		}
	}

	if len(src.goPkgs) > 0 {
		loaded, d, err := analyze.NewAnalyzer("").LoadPackages(src.goPkgs...)
		if err != nil {
			return nil, err
		}

		diags.Merge(d)
		classes = append(classes, loaded...)
	}

	logDiagnostics(diags)

	if err := diags.Err(); err != nil {
		return nil, err
	}

	return classes, nil
}

// swiftFiles lists the .swift files directly inside dir, sorted by name.
func swiftFiles(dir string) ([]string, error) {
	paths, err := inputFiles(dir)
	if err != nil {
		return nil, err
	}

	var res []string

	for _, path := range paths {
		if strings.EqualFold(filepath.Ext(path), ".swift") {
			res = append(res, path)
		}
	}

	return res, nil
}

// inputFiles lists the regular files directly inside dir, sorted by name.
func inputFiles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string

	for _, e := range entries {
		if e.Type().IsRegular() {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(paths)

	return paths, nil
}

func logDiagnostics(diags *diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		slog.Warn(d.Message, "code", d.Code, "class", d.Class, "field", d.Field)
	}

	for _, d := range diags.Errors {
		slog.Error(d.Message, "code", d.Code, "class", d.Class, "field", d.Field)
	}
}
