package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/anything-list/internal/adapter"
	"github.com/MKhiriev/anything-list/internal/config"
	"github.com/MKhiriev/anything-list/internal/handler"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/server"
	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/internal/store"
	"github.com/MKhiriev/anything-list/internal/workers"
	"github.com/MKhiriev/anything-list/models"
)

type App struct {
	Services  *service.ClientServices
	BuildInfo models.AppBuildInfo

	cfg      *config.StructuredConfig
	storages *store.Storages
	logger   *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	accounts, err := adapter.NewAccountStatusSource(cfg.Adapter)
	if err != nil {
		return nil, fmt.Errorf("create account status source: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return &App{
		Services:  service.NewClientServices(cfg.App.ContainerID, storages, accounts),
		BuildInfo: buildInfo,
		cfg:       cfg,
		storages:  storages,
		logger:    log,
	}, nil
}

// Serve runs the local API. The binding watcher runs alongside it unless
// watchBinding is false.
func (a *App) Serve(ctx context.Context, watchBinding bool) error {
	handlers, err := handler.NewHandlers(a.Services, a.BuildInfo, a.cfg.Server, a.logger)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var jobs []workers.Worker
	if watchBinding {
		jobs = append(jobs, workers.NewBindingWatcher(a.Services.BindingService, a.cfg.Workers.BindingPollInterval, a.logger))
	}
	background := workers.NewWorkers(jobs...)

	workersDone := make(chan struct{})
	go func() {
		background.Run(ctx)
		close(workersDone)
	}()

	err = srv.RunServer(ctx)
	cancel()
	<-workersDone

	return err
}

func (a *App) Close() error {
	return a.storages.Close()
}
