package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geoschema/geojson"
	"github.com/woozymasta/geoschema/internal/config"
	"github.com/woozymasta/geoschema/internal/logger"
	"github.com/woozymasta/geoschema/internal/output"

	"github.com/jessevdk/go-flags"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile     string `short:"c" long:"config"          env:"CONFIG_FILE" description:"Path to configuration file"`
	Input          string `short:"i" long:"in"              description:"Input file path. Reads from stdin if empty"`
	Output         string `short:"o" long:"out"             description:"Output file path. Writes to stdout if empty"`
	Format         string `short:"f" long:"format"          description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Unknown        string `short:"u" long:"unknown"         description:"Unknown member policy, overrides config" choice:"include" choice:"exclude" choice:"raise"`
	MaxDepth       int    `long:"max-depth"                 description:"GeometryCollection nesting limit, overrides config"`
	Many           bool   `short:"m" long:"many"            description:"Input is an array of objects"`
	GeometriesOnly bool   `short:"g" long:"geometries-only" description:"Accept geometry objects only"`
	Minify         bool   `long:"minify"                    description:"Write compact JSON"`
	Check          bool   `long:"check"                     description:"Validate only, write no output"`
	Inspect        bool   `long:"inspect"                   description:"Write a geometry summary instead of the objects"`
	Verbose        bool   `short:"v" long:"verbose"         description:"Dump decoded objects to stderr"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(&opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		var verr *geojson.ValidationError
		if errors.As(err, &verr) {
			log.Error().
				Str("kind", verr.Kind.String()).
				Str("path", verr.Path).
				Msg(verr.Message)
		} else {
			log.Error().Err(err).Msg("Failed to process input")
		}
		os.Exit(1)
	}
}

func run(opts *Options, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if opts.Unknown != "" {
		cfg.Unknown = opts.Unknown
	}
	if opts.MaxDepth > 0 {
		cfg.MaxDepth = opts.MaxDepth
	}
	if opts.GeometriesOnly {
		cfg.GeometriesOnly = true
	}
	schema := cfg.Schema(geojson.WithMany(opts.Many))

	var data []byte
	if opts.Input != "" {
		data, err = os.ReadFile(opts.Input)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	objs, err := schema.DecodeJSON(data)
	if err != nil {
		return err
	}
	log.Debug().
		Int("objects", len(objs)).
		Bool("many", opts.Many).
		Msg("Input decoded")

	if opts.Verbose {
		for _, obj := range objs {
			fmt.Fprintf(stderr, "%# v\n", pretty.Formatter(obj))
		}
	}

	if opts.Check {
		log.Info().Int("objects", len(objs)).Msg("Input is valid")
		return nil
	}

	var result any
	switch {
	case opts.Inspect:
		if result, err = inspect(objs); err != nil {
			return err
		}
	case opts.Many:
		if result, err = schema.Encode(objs); err != nil {
			return err
		}
	default:
		if result, err = schema.Encode(objs[0]); err != nil {
			return err
		}
	}

	outputData, err := output.Render(result, opts.Format, opts.Minify)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, outputData, 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		log.Info().
			Int("objects", len(objs)).
			Str("path", opts.Output).
			Str("format", opts.Format).
			Msg("Output written")
		return nil
	}

	_, err = fmt.Fprintln(stdout, string(outputData))
	return err
}
