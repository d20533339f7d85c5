package http

import (
	"sync"

	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/models"
)

type Handler struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	// switchMu keeps one binding switch in flight at a time.
	switchMu sync.Mutex

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
