package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"notebook/internal/config"
)

// ConfigHandler serves the public deployment configuration.
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler creates a new config handler.
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// ConfigResponse describes the deployment flags clients may read before
// authenticating.
type ConfigResponse struct {
	Version           string `json:"version"`
	MultiUser         bool   `json:"multi_user"`
	PasswordProtected bool   `json:"password_protected"`
}

// Get godoc
// @Summary Read public deployment configuration
// @Tags config
// @Produce json
// @Success 200 {object} ConfigResponse
// @Router /config [get]
func (h *ConfigHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, ConfigResponse{
		Version:           h.cfg.Version,
		MultiUser:         true,
		PasswordProtected: h.cfg.Password != "",
	})
}
