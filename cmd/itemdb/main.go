package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/itemdb/internal/config"
	"github.com/udisondev/itemdb/internal/data"
	"github.com/udisondev/itemdb/internal/game/equip"
	"github.com/udisondev/itemdb/internal/metrics"
	"github.com/udisondev/itemdb/internal/restree"
)

const DefaultConfigPath = "config/itemdb.yaml"

var errUsage = errors.New("usage: itemdb [-config path] <stats|lookup ID...|search TEXT|audit>")

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	// .env необязателен
	_ = godotenv.Load()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("itemdb", flag.ContinueOnError)
	cfgPath := fs.String("config", DefaultConfigPath, "path to YAML config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}
	command, cmdArgs := fs.Arg(0), fs.Args()[1:]

	cfg, err := config.LoadItemDB(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	src, err := restree.OpenFS(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening data dir: %w", err)
	}
	catalog, err := data.Build(src, data.WithMetrics(m))
	if err != nil {
		return fmt.Errorf("building catalog: %w", err)
	}

	engine := equip.New(catalog,
		equip.WithVariation(cfg.Variation.Func()),
		equip.WithMetrics(m),
	)

	app := &app{
		out:     out,
		cfg:     cfg,
		catalog: catalog,
		engine:  engine,
	}

	g, gctx := errgroup.WithContext(ctx)
	cmdCtx, cmdDone := context.WithCancel(gctx)
	defer cmdDone()

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			slog.Info("starting metrics server", "addr", cfg.MetricsAddr)
			if err := serveMetrics(cmdCtx, cfg.MetricsAddr, reg); err != nil {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cmdDone()
		return app.dispatch(cmdCtx, command, cmdArgs)
	})

	return g.Wait()
}

func metricsRouter(reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

// serveMetrics serves /metrics until ctx is cancelled.
func serveMetrics(ctx context.Context, addr string, reg *prometheus.Registry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           metricsRouter(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
