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

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/catalog-manager/internal/config"
	api "github.com/rogerio-castellano/catalog-manager/internal/http"
	"github.com/rogerio-castellano/catalog-manager/internal/http/handlers"
	rl "github.com/rogerio-castellano/catalog-manager/internal/http/rate_limiter"
	"github.com/rogerio-castellano/catalog-manager/internal/logging"
	"github.com/rogerio-castellano/catalog-manager/internal/notify"
	"github.com/rogerio-castellano/catalog-manager/internal/repo"
	"github.com/rogerio-castellano/catalog-manager/internal/seed"
	"github.com/rogerio-castellano/catalog-manager/internal/session"
)

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	log, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := newStore(cfg, log)
	if err != nil {
		return err
	}

	sinks := notify.Multi{notify.LogNotifier{Logger: log}}
	var serverOpts []handlers.ServerOption
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			return fmt.Errorf("could not connect to Redis: %w", err)
		}
		redisSink := notify.NewRedisNotifier(rdb, cfg.Redis.Channel)
		sinks = append(sinks, redisSink)
		serverOpts = append(serverOpts, handlers.WithRecentNotifications(redisSink))
		log.WithField("channel", cfg.Redis.Channel).Info("publishing notifications to Redis")
	}

	ctrl, err := session.NewController(cfg.Session, store,
		session.WithNotifier(sinks),
		session.WithLogger(log),
	)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	var limiter *rl.Limiter
	if cfg.HTTP.RateLimit > 0 {
		limiter = rl.New(cfg.HTTP.RateLimit, cfg.HTTP.RateBurst)
		go limiter.StartCleanupLoop(ctx, time.Minute)
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewRouter(handlers.NewServer(ctrl, log, serverOpts...), limiter, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":      cfg.HTTP.Addr,
			"page_size": cfg.Session.PageSize,
			"debounce":  cfg.Session.DebounceDelay.String(),
			"products":  store.Len(),
		}).Info("server running")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStore builds the session repository with the configured seed data.
func newStore(cfg config.Config, log logrus.FieldLogger) (*repo.InMemoryProductRepository, error) {
	store := repo.NewInMemoryProductRepository()
	if cfg.Seed.Default {
		if err := store.Seed(seed.DefaultCatalog()...); err != nil {
			return nil, fmt.Errorf("seed default catalog: %w", err)
		}
	}

	if cfg.Seed.CSV != "" {
		result, err := seed.ImportFile(cfg.Seed.CSV, store)
		if err != nil {
			return nil, err
		}
		for _, rowErr := range result.Errors {
			log.WithField("file", cfg.Seed.CSV).Warn(rowErr.Error())
		}
		log.WithFields(logrus.Fields{"file": cfg.Seed.CSV, "imported": result.Imported}).Info("seed file loaded")
	}
	return store, nil
}
