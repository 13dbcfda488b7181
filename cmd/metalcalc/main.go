// Command metalcalc evaluates Team Fortress 2 metal expressions.
//
// With arguments, every argument is evaluated and printed on its own line.
// Without arguments, expressions are read from standard input at a prompt.
//
// Configuration is read from the environment or a .env file:
//
//	METALCALC_KEY_RATE   initial key rate, for example key=50-51ref
//	METALCALC_LAYOUT     layout of metal in argument mode, default "%r ref"
//	METALCALC_LOG_LEVEL  debug, info, warn or error, default info
package main

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/metalcalc/metal/calc"
	"github.com/metalcalc/metal/internal/config"
)

const version = "1.2.0"

func main() {
	logger := newLogger(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}
	if logger, err = filterLevel(logger, cfg); err != nil {
		level.Error(logger).Log("msg", "configuring log level", "err", err)
		os.Exit(1)
	}

	var svc calc.Service = calc.New()
	svc = calc.NewLoggingService(log.With(logger, "component", "calc"), svc)

	if cfg.KeyRate != "" {
		if _, err := svc.SetExchangeRate(cfg.KeyRate); err != nil {
			level.Error(logger).Log("msg", "setting initial key rate", "err", err)
			os.Exit(1)
		}
	}

	if args := exprArgs(os.Args[1:]); len(args) > 0 {
		os.Exit(runArgs(svc, args, cfg.Layout, os.Stdout))
	}
	if err := runPrompt(svc, os.Stdin, os.Stdout); err != nil {
		level.Error(logger).Log("msg", "reading input", "err", err)
		os.Exit(1)
	}
}

// filterLevel drops log records below the configured level.
func filterLevel(logger log.Logger, cfg *config.Config) (log.Logger, error) {
	opt, err := cfg.LevelOption()
	if err != nil {
		return logger, err
	}
	return level.NewFilter(logger, opt), nil
}

func newLogger(w io.Writer) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
