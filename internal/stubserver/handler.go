package stubserver

import (
	"github.com/MKhiriev/shelfsync/internal/logger"
)

type Handler struct {
	store *memoryStore

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Info().Msg("stub inventory handler created")
	return &Handler{
		store:  newMemoryStore(),
		logger: logger,
	}
}
