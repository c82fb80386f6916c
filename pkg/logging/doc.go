// Package logging configures log/slog for the roulette CLI and library.
//
// Library code takes a *slog.Logger through an option and falls back to
// Nop. The CLI builds one logger from its --log-level and --log-format
// flags:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatJSON,
//	})
//	logger.Debug("spin", "status", 418)
//
// Logs always go to stderr by default so they never mix with rendered
// responses on stdout.
package logging
