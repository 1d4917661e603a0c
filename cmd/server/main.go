package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chawalitkim/veritas-lens-project/internal/scheduler"
	"github.com/chawalitkim/veritas-lens-project/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := server.NewServer()

	if srv.Config.Scheduler.Enabled {
		sched, err := scheduler.New(srv.Lens, srv.Config.Scheduler, srv.Log)
		if err != nil {
			srv.Log.Fatal("failed to start scheduler", zap.Error(err))
		}
		sched.Start()
		defer sched.Stop()
	}

	httpServer := &http.Server{
		Addr:    ":" + port,
		Handler: srv.SetupRouter(),
	}

	go func() {
		srv.Log.Info("starting server", zap.String("port", port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	srv.Log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		srv.Log.Error("forced shutdown", zap.Error(err))
	}
	srv.Close(ctx)
}
