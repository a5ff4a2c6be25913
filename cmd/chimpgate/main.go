package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/lzjever/chimpgate/internal/api"
	"github.com/lzjever/chimpgate/internal/client"
	"github.com/lzjever/chimpgate/internal/oauth"
	"github.com/lzjever/chimpgate/internal/observability"
	"github.com/lzjever/chimpgate/internal/statestore"
	"github.com/lzjever/chimpgate/internal/store"
)

func main() {
	var cfg api.Config
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, _ := observability.NewLogger(cfg.LogLevel)
	defer log.Sync()

	// Replace global logger
	zap.ReplaceGlobals(log)

	reg := prometheus.DefaultRegisterer
	observability.RegisterAll(reg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := store.NewPool(ctx, cfg.DBDSN, cfg.DBMaxConns)
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}
	defer pool.Close()

	if err := store.Migrate(ctx, pool); err != nil {
		log.Fatal("db migrate failed", zap.Error(err))
	}

	states := statestore.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer states.Close()

	var auth *oauth.Authorizer
	if cfg.OAuthClientID != "" {
		auth, err = oauth.New(oauth.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			RedirectURI:  cfg.OAuthRedirectURI,
			UserAgent:    cfg.UserAgent,
			Logger:       log.Named("oauth"),
		})
		if err != nil {
			log.Fatal("oauth config invalid", zap.Error(err))
		}
	} else {
		log.Info("oauth disabled, no client id configured")
	}

	clientOpts := []client.Option{
		client.WithSecure(cfg.UpstreamSecure),
		client.WithTimeout(cfg.UpstreamTimeout),
		client.WithRateLimit(rate.Limit(cfg.UpstreamRateLimit), cfg.UpstreamBurst),
		client.WithUserAgent(cfg.UserAgent),
		client.WithLogger(log.Named("client")),
	}
	if cfg.UpstreamProxy != "" {
		clientOpts = append(clientOpts, client.WithProxy(cfg.UpstreamProxy))
	}

	// Main API server
	apiHandler := api.NewAPI(pool, states, auth, cfg, log, clientOpts...)
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      apiHandler.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Metrics server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:    cfg.MetricsAddr,
		Handler: mux,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("metrics server starting", zap.String("addr", cfg.MetricsAddr))
		if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		log.Info("API server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("API server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down API server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		_ = srv.Shutdown(shutdownCtx)
		_ = metricsSrv.Shutdown(shutdownCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server failed", zap.Error(err))
	}
	log.Info("API server stopped")
}
