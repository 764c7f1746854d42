// Package config provides configuration for the ksuid CLI. It exposes a
// Default() baseline and a viper-backed Load() that overlays KSUID_*
// environment variables.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil { ... }
//	log.Init(log.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
package config
