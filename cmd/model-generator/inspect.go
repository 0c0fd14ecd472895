package main

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
	"github.com/xlab/treeprint"

	"model-generator/internal/gen"
	"model-generator/internal/schema"
)

var cmdInspect = &cli.Command{
	Name:  "inspect",
	Usage: "dump loaded class definitions",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "tree",
			Usage: "print classes and fields as a tree",
		},
	}, sourceFlags...),
	Action: runInspect,
}

func runInspect(cctx *cli.Context) error {
	d, err := gen.LookupDialect(cctx.String("dialect"))
	if err != nil {
		return err
	}

	classes, err := loadClasses(sourcesFromFlags(cctx), d.Primitives())
	if err != nil {
		return err
	}

	if cctx.Bool("tree") {
		printClassTree(cctx.App.Writer, classes)
		return nil
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}

	for _, c := range classes {
		fmt.Fprintf(cctx.App.Writer, "%s:\n", c.ClassName())
		cfg.Fdump(cctx.App.Writer, c.Fields())
	}

	return nil
}

// printClassTree writes one branch per class with a node per field,
// tagged with the field kind.
func printClassTree(w io.Writer, classes []*schema.ClassSpec) {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%d classes", len(classes)))

	for _, c := range classes {
		branch := tree.AddBranch(c.ClassName())
		for _, f := range c.Fields() {
			branch.AddMetaNode(f.Kind.String(), fmt.Sprintf("%s %s", f.Name, f.TypeName))
		}
	}

	fmt.Fprint(w, tree.String())
}

var cmdDialects = &cli.Command{
	Name:  "dialects",
	Usage: "list target dialects",
	Action: func(cctx *cli.Context) error {
		for _, name := range gen.Dialects() {
			d, err := gen.LookupDialect(name)
			if err != nil {
				return err
			}

			fmt.Fprintf(cctx.App.Writer, "%s\t%s\n", name, d.FileName("ExampleClass"))
		}

		return nil
	},
}
