package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mp-alertify/backend/internal/domain"
	"github.com/mp-alertify/backend/pkg/response"
)

// ReportHandler handles report publication
type ReportHandler struct {
	service *domain.PublishService
	logger  *zap.Logger
}

func NewReportHandler(service *domain.PublishService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// PublicizeRequest is the body for POST /publicize_report
type PublicizeRequest struct {
	ReportID string `json:"reportId"`
}

// Publicize marks a report publicized and triggers the notification fan-out
func (h *ReportHandler) Publicize(w http.ResponseWriter, r *http.Request) {
	var req PublicizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReportID == "" {
		response.BadRequest(w, "Missing reportId")
		return
	}

	if err := h.service.Publicize(r.Context(), req.ReportID); err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			response.NotFound(w, "Report not found")
			return
		}
		h.logger.Error("publicize failed", zap.String("report_id", req.ReportID), zap.Error(err))
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, "Report publicized & notifications sent")
}
