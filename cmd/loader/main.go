package main

import (
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/woozymasta/geoschema/geojson"
	"github.com/woozymasta/geoschema/internal/config"
	"github.com/woozymasta/geoschema/internal/logger"
	"github.com/woozymasta/geoschema/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile  string `short:"c" long:"config"      env:"CONFIG_FILE" description:"Path to configuration file"`
	OutDir      string `short:"o" long:"out-dir"     env:"OUT_DIR"     description:"Write normalized documents to this directory"`
	Format      string `short:"f" long:"format"      description:"Output format" choice:"json" choice:"yaml" default:"json"`
	Concurrency int    `short:"p" long:"concurrency" env:"CONCURRENCY" description:"Concurrency" default:"8"`
	Timeout     int    `short:"t" long:"timeout"     env:"TIMEOUT"     description:"HTTP timeout in seconds" default:"15"`
	Many        bool   `short:"m" long:"many"        description:"Each source is an array of objects"`
	Minify      bool   `long:"minify"                description:"Write compact JSON"`
	Force       bool   `long:"force"                 description:"Force overwrite of existing files"`

	Args struct {
		Sources []string `positional-arg-name:"source" description:"GeoJSON file path or http(s) URL" required:"1"`
	} `positional-args:"yes"`
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

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	client := &http.Client{
		Transport: &http.Transport{
			TLSNextProto:        make(map[string]func(string, *tls.Conn) http.RoundTripper),
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
		Timeout: time.Duration(opts.Timeout) * time.Second,
	}

	p := &processor.Processor{
		Client: client,
		Schema: cfg.Schema(geojson.WithMany(opts.Many)),
		OutDir: opts.OutDir,
		Format: opts.Format,
		Minify: opts.Minify,
		Force:  opts.Force,
	}

	log.Info().
		Int("sources", len(opts.Args.Sources)).
		Int("concurrency", opts.Concurrency).
		Msg("Starting loader")

	failed := 0
	for _, res := range p.Process(opts.Args.Sources, opts.Concurrency) {
		var verr *geojson.ValidationError
		switch {
		case res.Err == nil:
			log.Info().
				Str("source", res.Source).
				Int("objects", res.Objects).
				Str("output", res.Output).
				Msg("Source valid")
		case errors.Is(res.Err, processor.ErrExists):
			log.Warn().
				Str("source", res.Source).
				Str("output", res.Output).
				Msg("Output exists, use --force to overwrite")
		case errors.As(res.Err, &verr):
			failed++
			log.Error().
				Str("source", res.Source).
				Str("kind", verr.Kind.String()).
				Str("path", verr.Path).
				Msg(verr.Message)
		default:
			failed++
			log.Error().Err(res.Err).Str("source", res.Source).Msg("Failed to process source")
		}
	}

	if failed > 0 {
		log.Error().Int("failed", failed).Msg("Loader finished with errors")
		os.Exit(1)
	}
	log.Info().Msg("Loader finished successfully")
}
