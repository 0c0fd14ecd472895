// Package main provides the CLI entrypoint for model-generator.
//
// model-generator renders JSON-encodable model classes from class
// definitions:
//   - gen: load a YAML schema (and/or Swift models) and emit Go or Swift
//   - convert: rewrite a directory of swagger-codegen Swift models
//   - inspect: dump the loaded class definitions
//   - dialects: list the target dialects
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	app := cli.App{
		Name:    "model-generator",
		Usage:   "generate JSON-encodable model classes",
		Version: versioninfo.Short(),
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			Value:   "info",
			EnvVars: []string{"MODELGEN_LOG_LEVEL", "LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		configLogger(cctx, cctx.App.ErrWriter)
		return nil
	}
	app.Commands = []*cli.Command{
		cmdGen,
		cmdConvert,
		cmdInspect,
		cmdDialects,
	}

	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	if writer == nil {
		writer = os.Stderr
	}

	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return logger
}
