package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/NataliaMilgevskaya/Zapp.ie/internal/analytics"
	"github.com/NataliaMilgevskaya/Zapp.ie/internal/lnbits"
	"github.com/NataliaMilgevskaya/Zapp.ie/internal/metrics"
	"github.com/NataliaMilgevskaya/Zapp.ie/internal/service"
	"github.com/NataliaMilgevskaya/Zapp.ie/internal/transport"
)

type config struct {
	Addr           string        `long:"addr" env:"DASHBOARD_ADDR" description:"HTTP listen address" default:":8000"`
	LNbitsURL      string        `long:"lnbits-url" env:"DASHBOARD_LNBITS_URL" description:"LNbits base URL" default:"http://127.0.0.1:5000"`
	LNbitsUsername string        `long:"lnbits-username" env:"DASHBOARD_LNBITS_USERNAME" description:"LNbits account username"`
	LNbitsPassword string        `long:"lnbits-password" env:"DASHBOARD_LNBITS_PASSWORD" description:"LNbits account password"`
	LNbitsAdminKey string        `long:"lnbits-admin-key" env:"DASHBOARD_LNBITS_ADMIN_KEY" description:"LNbits admin API key for the user directory"`
	WalletFilter   string        `long:"wallet-filter" env:"DASHBOARD_WALLET_FILTER" description:"only scan wallets whose name contains this substring"`
	ScanInterval   time.Duration `long:"scan-interval" env:"DASHBOARD_SCAN_INTERVAL" description:"delay between wallet scan cycles" default:"1m"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"DASHBOARD_HTTP_TIMEOUT" description:"HTTP timeout for LNbits requests" default:"30s"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env file", zap.Error(err))
	}

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("dashboard failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	client, err := lnbits.NewClient(lnbits.Config{
		BaseURL:  cfg.LNbitsURL,
		Username: cfg.LNbitsUsername,
		Password: cfg.LNbitsPassword,
		Timeout:  cfg.HTTPTimeout,
	}, logger)
	if err != nil {
		return fmt.Errorf("init lnbits client: %w", err)
	}
	api := lnbits.NewObservedClient(client, metrics.NewLNbitsClient())

	session := analytics.NewSession()

	ingester := service.NewZapIngesterService(
		api,
		session,
		metrics.NewZapIngester(),
		cfg.WalletFilter,
		cfg.LNbitsAdminKey,
		cfg.ScanInterval,
		logger.Named("ingester"),
	)

	ingesterDone := make(chan error, 1)
	go func() {
		ingesterDone <- ingester.Run(ctx)
	}()

	handler := transport.NewDashboardHandler(session, logger)
	mux := handler.Router()
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	if err := <-ingesterDone; err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("ingester: %w", err)
	}
	return nil
}
