// Package log provides structured logging for the ksuid CLI, built on
// zerolog.
//
// Construct a logger with New, or call Init once at startup to configure the
// process-wide logger returned by L. Init also redirects the standard
// library's log package so stray log.Printf calls produce structured output.
//
// Usage
//
//	log.Init(log.Config{Level: "info", Format: "text"})
//	log.L().Info().Str("id", s).Msg("generated")
package log
