package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/mp-alertify/backend/internal/domain"
	"github.com/mp-alertify/backend/pkg/response"
)

// UserHandler handles token registration and the admin account toggle
type UserHandler struct {
	service *domain.AccountService
	logger  *zap.Logger
}

func NewUserHandler(service *domain.AccountService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterTokenRequest is the body for POST /register_fcm_token
type RegisterTokenRequest struct {
	UID   string `json:"uid"`
	Token string `json:"token"`
}

// RegisterToken stores a device push token for a user
func (h *UserHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	var req RegisterTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UID == "" || req.Token == "" {
		response.BadRequest(w, "Missing uid or token")
		return
	}

	if err := h.service.RegisterToken(r.Context(), req.UID, req.Token); err != nil {
		h.logger.Error("token registration failed", zap.String("uid", req.UID), zap.Error(err))
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, "Token saved")
}

// DisableUserRequest is the body for POST /disable_user. Disable is a
// pointer so a missing field can be told apart from false.
type DisableUserRequest struct {
	UID     string `json:"uid"`
	Disable *bool  `json:"disable"`
}

// Disable toggles the disabled flag on a user account
func (h *UserHandler) Disable(w http.ResponseWriter, r *http.Request) {
	var req DisableUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UID == "" || req.Disable == nil {
		response.BadRequest(w, "Missing uid or disable")
		return
	}

	if err := h.service.SetDisabled(r.Context(), req.UID, *req.Disable); err != nil {
		h.logger.Error("account toggle failed", zap.String("uid", req.UID), zap.Error(err))
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, fmt.Sprintf("User %s updated", req.UID))
}
