package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/autotrack-server/api"
	"github.com/carson-networks/autotrack-server/internal/config"
	"github.com/carson-networks/autotrack-server/internal/extraction"
	"github.com/carson-networks/autotrack-server/internal/logging"
	"github.com/carson-networks/autotrack-server/internal/ner"
	"github.com/carson-networks/autotrack-server/internal/service"
	"github.com/carson-networks/autotrack-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("autotrack-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err = logging.ApplyLevel(logger, envConfig.LogLevel); err != nil {
		logrus.WithError(err).Fatal("logging.ApplyLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 10*time.Second)
	err = dbStorage.Ping(pingCtx)
	cancelPing()
	if err != nil {
		logrus.WithError(err).Fatal("storage.Ping")
		return
	}

	// The recognizer is only set on success so a failed load leaves a nil
	// interface and vendor extraction uses the line scan for the process lifetime.
	var recognizer extraction.EntityRecognizer
	nerClient, err := ner.Load(ctx, ner.Config{
		Endpoint: envConfig.NEREndpoint,
		Model:    envConfig.NERModel,
		Token:    envConfig.NERToken,
	}, logger)
	if err != nil {
		logger.WithError(err).Warn("ner.Load: vendor extraction will use the line scan fallback")
	} else {
		recognizer = nerClient
	}

	httpRest := api.Rest{
		Logger:         logger,
		Address:        envConfig.ListenAddress(),
		AllowedOrigins: envConfig.Origins(),
		Service:        service.NewService(dbStorage),
		Extractor:      extraction.NewExtractor(recognizer, logger),
	}

	if err = httpRest.Serve(ctx); err != nil {
		logrus.WithError(err).Error("api.Rest.Serve")
	}
}
