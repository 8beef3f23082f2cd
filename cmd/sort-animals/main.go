package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/diwise/animal-sorter/internal/pkg/application/sorter"
	"github.com/diwise/animal-sorter/pkg/animals"
	"github.com/diwise/animal-sorter/pkg/animals/encoding"
	"github.com/diwise/animal-sorter/pkg/animals/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const (
	appName string = "sort-animals"
)

func main() {
	cmd := newRootCmd(context.Background(), os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	color   bool
	weight  bool
	reverse bool
	debug   bool

	inputFormat  string
	outputFormat string
}

func newRootCmd(ctx context.Context, stdout, stderr io.Writer) *cobra.Command {
	f := flags{}

	cmd := &cobra.Command{
		Use:          appName + " [flags] <path>",
		Short:        "Sort a file of animals by color and/or weight",
		Long:         "Reads a JSON or YAML sequence of animals, such as\n\n  [{\"type\": \"dog\", \"weight\": 17, \"color\": \"white\"}]\n\nand writes the dogs, cats and snakes back, optionally sorted. Other kinds of animals are dropped.\nWhen both --color and --weight are given the weight sort is applied last.",
		Version:      buildinfo.SourceVersion(),
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := logging.NewContextWithLogger(ctx, newLogger(stderr, f.debug), "run_id", uuid.New().String())
			return run(ctx, f, args[0], stdout)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().BoolVarP(&f.color, "color", "c", false, "sort by color")
	cmd.Flags().BoolVarP(&f.weight, "weight", "w", false, "sort by weight")
	cmd.Flags().BoolVarP(&f.reverse, "reverse", "r", false, "reverse the sort order")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable debug logging to stderr")
	cmd.Flags().StringVar(&f.inputFormat, "input-format", "", "format of the input file, json or yaml (default from the file extension)")
	cmd.Flags().StringVarP(&f.outputFormat, "output", "o", env.GetVariableOrDefault(ctx, "ANIMALS_OUTPUT_FORMAT", "json"), "output format, json or yaml")

	return cmd
}

func run(ctx context.Context, f flags, path string, stdout io.Writer) error {
	log := logging.GetFromContext(ctx)

	in := encoding.FormatFromPath(path)
	if f.inputFormat != "" {
		var err error
		if in, err = encoding.ParseFormat(f.inputFormat); err != nil {
			return err
		}
	}

	out, err := encoding.ParseFormat(f.outputFormat)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.NewReadError(fmt.Sprintf("could not read file: %s", err.Error()))
	}

	log.Debug("read input file", "path", path, "bytes", len(content), "format", in)

	opts := animals.SortOptions{
		ByColor:  f.color,
		ByWeight: f.weight,
		Reverse:  f.reverse,
	}

	b, err := sorter.New().Run(ctx, content, in, out, opts)
	if err != nil {
		return err
	}

	_, err = stdout.Write(append(b, '\n'))
	return err
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})).With(
		slog.String("service", appName),
	)
}
