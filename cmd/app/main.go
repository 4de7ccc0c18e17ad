package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"signupservice/internal/app/config"
	httpapi "signupservice/internal/app/http"
	"signupservice/internal/app/http/handler"
	"signupservice/internal/domain/activity"
	"signupservice/internal/infrastructure/async"
	"signupservice/internal/infrastructure/fixtures"
	"signupservice/internal/infrastructure/logging"
	"signupservice/internal/infrastructure/memory"
	"signupservice/internal/infrastructure/metrics"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	store := memory.NewRosterStore()
	seed, err := fixtures.Load(cfg.SeedPath)
	if err != nil {
		log.Fatal("seed load error", zap.Error(err))
	}
	n, err := fixtures.Apply(ctx, store, seed)
	if err != nil {
		log.Fatal("seed apply error", zap.Error(err))
	}
	log.Info("roster seeded", zap.Int("activities", n), zap.String("source", seedSource(cfg.SeedPath)))

	eventBus := async.NewAsyncEventBus(ctx, cfg.EventWorkers, log, m)
	defer eventBus.Close()

	policy := activity.PolicyFromFlag(cfg.EnforceCapacity)
	if policy == activity.CapacityDisplayOnly {
		log.Warn("capacity enforcement disabled, max_participants is display only")
	}

	activitySvc := activity.NewService(store, eventBus, m, policy)

	h := handler.New(activitySvc, log)
	router := httpapi.NewRouter(h, log, httpapi.RouterOptions{
		StaticDir: cfg.StaticDir,
		Metrics:   m,
		Gatherer:  reg,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.Stringer("capacity_policy", policy),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}

func seedSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
