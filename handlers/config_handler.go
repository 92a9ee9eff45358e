package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/g-67560126-commits/e-Asrama/models"
)

type ConfigHandler struct {
	db *gorm.DB
}

func NewConfigHandler(db *gorm.DB) *ConfigHandler {
	return &ConfigHandler{db: db}
}

type configPayload struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// GET /config
//
// Public: the portal shell needs the name and logo before anyone logs in.
// Until the super-admin saves one, the default identity is served.
func (h *ConfigHandler) Get(c echo.Context) error {
	var cfg models.SystemConfig
	if err := h.db.First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, models.SystemConfig{Name: models.DefaultSystemName})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusOK, cfg)
}

// PUT /admin/config
//
// There is only ever one row; the first update creates it.
func (h *ConfigHandler) Update(c echo.Context) error {
	var p configPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "NAME_REQUIRED"})
	}

	var cfg models.SystemConfig
	err := h.db.First(&cfg).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		cfg = models.SystemConfig{Name: p.Name, LogoURL: p.LogoURL}
		if err := h.db.Create(&cfg).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_SAVE_ERROR"})
		}
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	default:
		cfg.Name = p.Name
		cfg.LogoURL = p.LogoURL
		if err := h.db.Save(&cfg).Error; err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_SAVE_ERROR"})
		}
	}
	return c.JSON(http.StatusOK, cfg)
}
