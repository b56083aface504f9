package http

import (
	"net/http"
	"time"

	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/config"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/logger"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/service"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/internal/utils"
	"github.com/CaioMelo204/A4PM-Challenge-TechLead/models"
)

type Handler struct {
	services *service.Services

	// version is reported in the metadata block of every response.
	version string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		version:  cfg.Version,
		logger:   logger,
	}
}

// metadata assembles the response metadata block from the request context.
// UserID is zero (and omitted from JSON) on unauthenticated responses.
func (h *Handler) metadata(r *http.Request) models.Metadata {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	return models.Metadata{
		RequestID: utils.GetRequestIDFromContext(ctx),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		UserID:    userID,
		Version:   h.version,
	}
}

// writeError emits the uniform error envelope with the given status code.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{
		Message:  message,
		Metadata: h.metadata(r),
	}, statusCode)
}
