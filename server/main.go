package main

import (
	nhttp "net/http"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-money/config"
	"go-money/exchange"
	"go-money/http"
	"go-money/logging"
)

func main() {
	logger := logging.NewLogger(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		level.Error(logger).Log("msg", "loading config", "err", err)
		os.Exit(1)
	}

	filtered, err := logging.WithLevel(logger, cfg.LogLevel)
	if err != nil {
		level.Error(logger).Log("msg", "configuring logger", "err", err)
		os.Exit(1)
	}
	logger = filtered

	exchangeService := exchange.NewService(exchange.DefaultTable.Lookup, log.With(logger, "component", "exchange"))
	exchangeService = exchange.NewLoggingService(level.Debug(log.With(logger, "component", "exchange")), exchangeService)

	handler := http.NewServer(exchangeService)

	level.Info(logger).Log("msg", "listening", "addr", cfg.Addr)
	if err := nhttp.ListenAndServe(cfg.Addr, handler); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
