package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/api"
	"github.com/carson-networks/budget-reconciler/internal/config"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator"
	"github.com/carson-networks/budget-reconciler/internal/service"
	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("storageBackend", envConfig.StorageBackend).Info("budget-reconciler starting")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store, err := storage.New(ctx, envConfig)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("storage.New")
		return
	}
	defer store.Close()

	svc := service.NewService(store, service.Options{
		Logger: logger,
		RetryPolicy: service.RetryPolicy{
			MaxAttempts: envConfig.CommitMaxAttempts,
			Retryable:   sqlconfig.IsStalePeriodViolation,
		},
	})

	delegator := operator.NewOperatorDelegator(svc, logger, envConfig.OperatorWorkers)
	delegator.Start()

	httpRest := api.NewRest(logger, envConfig.HTTPPort, store, svc, delegator)
	done := make(chan struct{})
	go func() {
		httpRest.Serve()
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		logger.WithField("signal", sig.String()).Info("budget-reconciler shutting down")
	case <-done:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HttpServer.Shutdown")
	}
	<-done
	delegator.Stop()
}
