// Command server runs the cable-tray routing HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trayweave/cableroute/api"
	"github.com/trayweave/cableroute/routing"
)

func main() {
	cfg := configFromEnv()

	logger, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "server: building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	engine := routing.NewEngine(logger.Named("routing"))
	srv := api.NewServer(engine, logger.Named("api"))

	httpServer := &http.Server{
		Addr:    cfg.addr,
		Handler: http.MaxBytesHandler(srv.Handler(), cfg.maxBody),
	}

	run(logger, httpServer)
}

type serverConfig struct {
	addr     string
	logLevel string
	maxBody  int64
}

// configFromEnv reads the three scalar knobs cmd/server needs from the
// environment: ADDR (default ":8080"), LOG_LEVEL (default "info"), and
// MAX_REQUEST_BODY_BYTES (default 8MiB). No config library is pulled in
// for three scalars — see DESIGN.md.
func configFromEnv() serverConfig {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	maxBody := int64(8 << 20)
	if v := os.Getenv("MAX_REQUEST_BODY_BYTES"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed > 0 {
			maxBody = parsed
		}
	}

	return serverConfig{addr: addr, logLevel: logLevel, maxBody: maxBody}
}

func newLogger(level string) (*zap.Logger, error) {
	var zl zapcore.Level
	if err := zl.UnmarshalText([]byte(level)); err != nil {
		zl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zl)

	return zcfg.Build()
}

func run(logger *zap.Logger, httpServer *http.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
