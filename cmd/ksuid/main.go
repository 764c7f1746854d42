package main

import (
	"os"

	"github.com/ecstatic-morse/ksuid/internal/cmd/cli"
	"github.com/ecstatic-morse/ksuid/internal/config"
	"github.com/ecstatic-morse/ksuid/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger := log.L()
		logger.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}

	log.Init(log.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Service: "ksuid"})

	root := cli.NewRoot(cfg)
	if err := root.Execute(); err != nil {
		// Cobra already printed the error to stderr.
		os.Exit(1)
	}
}
