package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/g-67560126-commits/e-Asrama/models"
)

type WardenAccountHandler struct {
	db *gorm.DB
}

func NewWardenAccountHandler(db *gorm.DB) *WardenAccountHandler {
	return &WardenAccountHandler{db: db}
}

type createWardenReq struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
}

// GET /admin/wardens
func (h *WardenAccountHandler) List(c echo.Context) error {
	var rows []models.Warden
	if err := h.db.Order("created_at desc").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusOK, rows)
}

// POST /admin/wardens
func (h *WardenAccountHandler) Create(c echo.Context) error {
	var req createWardenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  "VALIDATION_ERROR",
			"fields": fieldErrors(err),
		})
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var cnt int64
	if err := h.db.Model(&models.Warden{}).
		Where("LOWER(username) = ?", username).Count(&cnt).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	if cnt > 0 {
		return c.JSON(http.StatusConflict, map[string]any{"error": "USERNAME_TAKEN"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "HASH_ERROR"})
	}

	w := models.Warden{
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := h.db.Create(&w).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_SAVE_ERROR"})
	}
	return c.JSON(http.StatusCreated, w)
}

// DELETE /admin/wardens/:id
func (h *WardenAccountHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_ID"})
	}

	var w models.Warden
	if err := h.db.First(&w, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	if err := h.db.Delete(&w).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	return c.JSON(http.StatusOK, map[string]any{"ok": true})
}
