package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/g-67560126-commits/e-Asrama/config"
	"github.com/g-67560126-commits/e-Asrama/middlewares"
	"github.com/g-67560126-commits/e-Asrama/models"
)

type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

func (h *AuthHandler) signJWT(role, name, phone string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := middlewares.Claims{
		Role:  role,
		Name:  name,
		Phone: phone,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.cfg.JWTSecret))
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /auth/login
//
// One login surface for both staff roles: the fixed super-admin pair from
// config first, then the warden list (username matched case-insensitively,
// password against the bcrypt hash).
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"error": "MISSING_FIELDS"})
	}

	// Super-admin: accepted as "admin" or "superadmin".
	if (username == strings.ToLower(h.cfg.SuperAdminUser) || username == "superadmin") &&
		req.Password == h.cfg.SuperAdminPassword {
		token, err := h.signJWT(middlewares.RoleSuperAdmin, "Super Admin", "-", 7*24*time.Hour)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"token": token,
			"user":  map[string]any{"role": middlewares.RoleSuperAdmin, "name": "Super Admin"},
		})
	}

	var w models.Warden
	if err := h.db.Where("LOWER(username) = ?", username).First(&w).Error; err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}
	if bcrypt.CompareHashAndPassword([]byte(w.PasswordHash), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_CREDENTIALS"})
	}

	token, err := h.signJWT(middlewares.RoleWarden, w.Name, w.Phone, 7*24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "TOKEN_GEN_FAILED"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user": map[string]any{
			"id":       w.ID,
			"role":     middlewares.RoleWarden,
			"username": w.Username,
			"name":     w.Name,
			"phone":    w.Phone,
		},
	})
}
