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

	"studio-console/internal/api/routes"
	"studio-console/internal/config"
	"studio-console/internal/realtime"
	"studio-console/internal/service"
	"studio-console/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "studio-console/docs" // This is needed for swag
)

//	@title			Studio Console API
//	@version		1.0
//	@description	Operator API of the studio control console: episode selection, source switching, assignments and volume.

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	layout, err := config.LoadSceneLayout(cfg.SceneLayoutPath)
	if err != nil {
		logrus.Fatal("Failed to load scene layout:", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := realtime.NewClient(cfg.RealtimeURL, cfg.RPCTimeout(), cfg.RealtimeEIO)

	hub := ws.NewHub()
	go hub.Run(ctx)

	backend := service.NewAssignmentClient(cfg.BackendURL, cfg.HTTPTimeout())
	console := service.NewConsole(backend, engine, layout, hub, validator.New(), service.ConsoleOptions{
		SwitchDelay: cfg.SwitchDelay(),
	})
	go console.Reconciler().Run(ctx, engine.Events())

	// pushes missed while disconnected are recovered by reading state again
	engine.OnConnect(func(ctx context.Context) {
		if err := console.Resync(ctx, cfg.EpisodeID); err != nil {
			logrus.Warnf("Console state not fully loaded: %v", err)
		}
	})

	if err := engine.Connect(ctx); err != nil {
		logrus.Warnf("Realtime channel not available yet, retrying in background: %v", err)
	}
	go engine.Run(ctx)

	router := routes.SetupRoutes(cfg, console, hub, engine)

	port := cfg.Port
	if port == "" {
		port = "7010"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server shutdown failed: %v", err)
	}
	_ = engine.Close()
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
