package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scoutline/backend/internal/db"
	"scoutline/backend/internal/logging"
	"scoutline/backend/internal/routes"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development"
	}

	if err := logging.Init(appEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Scoutline starting up",
		"environment", appEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to the document store
	if err := db.InitMongo(); err != nil {
		logging.Error("Failed to connect to Mongo", "error", err.Error())
		log.Fatalf("❌ Failed to connect to Mongo: %v", err)
	}
	logging.Info("Connected to Mongo")

	// Seed and validate the vocabulary the engine depends on. A failed
	// validation means the deployment is broken; refuse to serve.
	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureSeedData(seedCtx, db.Database); err != nil {
		cancel()
		logging.Error("Failed to ensure seed data", "error", err.Error())
		log.Fatalf("❌ Failed to ensure seed data: %v", err)
	}
	if err := db.ValidateSeedData(seedCtx, db.Database); err != nil {
		cancel()
		logging.Error("Seed validation failed", "error", err.Error())
		log.Fatalf("❌ Seed validation failed: %v", err)
	}
	cancel()
	logging.Info("Seed data validated")

	upSince := time.Now()

	// Initialize router with Chi
	router := routes.RegisterRoutes(upSince)

	// Metrics endpoint lives outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logging.Info("Server starting", "port", port, "environment", appEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logging.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Error("Server exited with error", "error", err.Error())
		log.Fatalf("❌ Server exited with error: %v", err)
	}
}
