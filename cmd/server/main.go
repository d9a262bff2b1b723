package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/assistant-directory/internal/conf"
	"github.com/lk2023060901/assistant-directory/internal/pkg/injector"
	"github.com/lk2023060901/assistant-directory/internal/pkg/logger"
	"go.uber.org/zap"
)

var (
	app = kingpin.New("assistant-directory", "HTTP backend for the voice assistant directory")

	configFile = app.Flag("config", "Config file path").Short('c').Default("config.yaml").String()
	port       = app.Flag("port", "Override the listen port").Int()
	dev        = app.Flag("dev", "Debug console logging and gin debug mode").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	// Load configuration
	config, err := conf.LoadConfig(*configFile)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	if *port > 0 {
		config.Server.Port = *port
	}

	var log *logger.Logger
	if *dev {
		log, err = logger.Development()
	} else {
		log, err = logger.New(&config.Log)
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	log.Info("config loaded successfully",
		zap.String("driver", config.Database.Driver),
		zap.String("addr", config.Server.Addr()),
	)

	if !*dev {
		gin.SetMode(gin.ReleaseMode)
	}

	application, cleanup, err := injector.InitializeApp(config, log)
	if err != nil {
		log.Fatal("failed to initialize application", zap.Error(err))
	}
	defer cleanup()

	if err := application.HTTPServer.Listen(); err != nil {
		log.Fatal("failed to bind HTTP server", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.HTTPServer.Start()
	}()

	log.Info("server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutting down server...", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", zap.Error(err))
		}
		return
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), config.Server.ShutdownTimeout)
	defer cancel()

	if err := application.HTTPServer.Stop(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
