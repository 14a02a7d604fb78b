// Command server exposes the sentence morpher as a JSON REST API.
//
// Flags:
//
//	--config  path to YAML config file (default: CONFIG_PATH or ./config.yaml)
//	--dict    dictionary path, overrides dictionary.path
//	--addr    listen address, overrides server.host/server.port
//
// See package internal/api for the endpoints.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/6o6p/morphology/internal/api"
	"github.com/6o6p/morphology/internal/app"
	"github.com/6o6p/morphology/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	dictFlag := flag.String("dict", "", "dictionary path (overrides config)")
	addrFlag := flag.String("addr", "", "listen address host:port (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *dictFlag != "" {
		cfg.Dictionary.Path = *dictFlag
	}
	if *addrFlag != "" {
		host, port, err := net.SplitHostPort(*addrFlag)
		if err != nil {
			log.Fatalf("parse addr: %v", err)
		}
		cfg.Server.Host = host
		if cfg.Server.Port, err = strconv.Atoi(port); err != nil {
			log.Fatalf("parse addr port: %v", err)
		}
	}

	logger := app.NewLogger(cfg.Log)

	morpher, stats, err := app.LoadMorpher(logger, cfg.Dictionary)
	if err != nil {
		logger.Error("failed to load data", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(api.NewHandlers(morpher, stats), cfg.CORS, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}
