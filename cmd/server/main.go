package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/woozymasta/geoschema/internal/config"
	"github.com/woozymasta/geoschema/internal/logger"
	"github.com/woozymasta/geoschema/internal/server"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile   string `short:"c" long:"config"         env:"CONFIG_FILE"    description:"Path to configuration file"`
	Addr         string `short:"a" long:"addr"           env:"LISTEN_ADDRESS" description:"Address to listen on" default:"0.0.0.0"`
	Port         int    `short:"p" long:"port"           env:"LISTEN_PORT"    description:"Port to listen on"    default:"8080"`
	MaxBodyBytes int64  `short:"b" long:"max-body-bytes" env:"MAX_BODY_BYTES" description:"Request body limit, overrides config"`
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

	// Setup Logging
	opts.Logger.Setup()

	// Load Config
	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if opts.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = opts.MaxBodyBytes
	}

	srvCtx := server.NewServerContext(cfg)

	// Routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/validate", srvCtx.HandleValidate)
	mux.HandleFunc("/api/types", srvCtx.HandleTypes)

	handler := server.RequestLogger(mux)

	listenAddr := fmt.Sprintf("%s:%d", opts.Addr, opts.Port)
	log.Info().
		Str("addr", listenAddr).
		Bool("geometries_only", cfg.GeometriesOnly).
		Msg("Web server started")

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
