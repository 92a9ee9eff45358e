package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/g-67560126-commits/e-Asrama/events"
	"github.com/g-67560126-commits/e-Asrama/models"
	"github.com/g-67560126-commits/e-Asrama/notify"
)

type ApplicationHandler struct {
	db       *gorm.DB
	hub      *events.Hub
	notifier notify.Notifier
}

func NewApplicationHandler(db *gorm.DB, hub *events.Hub, notifier notify.Notifier) *ApplicationHandler {
	return &ApplicationHandler{db: db, hub: hub, notifier: notifier}
}

type submitReq struct {
	Type         string `json:"type" validate:"required"`
	StudentName  string `json:"student_name" validate:"required"`
	StudentForm  string `json:"student_form" validate:"required"`
	ParentName   string `json:"parent_name" validate:"required"`
	ParentPhone  string `json:"parent_phone" validate:"required"`
	ParentEmail  string `json:"parent_email" validate:"required,email"`
	VehicleType  string `json:"vehicle_type" validate:"required"`
	VehiclePlate string `json:"vehicle_plate" validate:"required"`
	DateOut      string `json:"date_out" validate:"required,datetime=2006-01-02"`
	DateReturn   string `json:"date_return" validate:"required,datetime=2006-01-02"`
	Reason       string `json:"reason" validate:"required"`
	Attachment   string `json:"attachment"`
}

// POST /applications
//
// Guardian submission. A fresh id, pending status and creation timestamp are
// assigned here; the window check (return >= out) runs before any mutation.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":  "VALIDATION_ERROR",
			"fields": fieldErrors(err),
		})
	}
	if !models.ValidType(req.Type) {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_TYPE"})
	}
	if err := models.ValidateWindow(req.DateOut, req.DateReturn); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_DATE_RANGE"})
	}

	app := models.Application{
		ID:           uuid.NewString(),
		Type:         req.Type,
		StudentName:  strings.TrimSpace(req.StudentName),
		StudentForm:  strings.TrimSpace(req.StudentForm),
		ParentName:   strings.TrimSpace(req.ParentName),
		ParentPhone:  strings.TrimSpace(req.ParentPhone),
		ParentEmail:  strings.TrimSpace(strings.ToLower(req.ParentEmail)),
		VehicleType:  strings.TrimSpace(req.VehicleType),
		VehiclePlate: models.NormalizePlate(req.VehiclePlate),
		DateOut:      req.DateOut,
		DateReturn:   req.DateReturn,
		Reason:       req.Reason,
		Attachment:   req.Attachment,
		Status:       models.StatusPending,
	}
	if err := h.db.Create(&app).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_SAVE_ERROR"})
	}

	h.hub.Publish(events.Event{Type: events.ApplicationCreated, Application: app})
	go h.notifier.NotifyWardens(context.Background(), app)

	return c.JSON(http.StatusCreated, app)
}

// GET /applications?status=&type=&q=&from=&to=&page=&size=
//
// Newest-first, always. Guardians track their own history here; the same
// handler backs the warden dashboard with the filters applied.
func (h *ApplicationHandler) List(c echo.Context) error {
	var rows []models.Application

	status := strings.TrimSpace(c.QueryParam("status"))
	typ := strings.TrimSpace(c.QueryParam("type"))
	from := strings.TrimSpace(c.QueryParam("from")) // YYYY-MM-DD
	to := strings.TrimSpace(c.QueryParam("to"))     // YYYY-MM-DD
	q := strings.TrimSpace(c.QueryParam("q"))       // keyword in reason / student name

	page := atoiOr(c.QueryParam("page"), 1)
	size := atoiOr(c.QueryParam("size"), 20)
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}

	tx := h.db.Model(&models.Application{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}
	if typ != "" {
		tx = tx.Where("type = ?", typ)
	}
	if from != "" && to != "" {
		// window overlap: (date_out <= to) AND (date_return >= from)
		tx = tx.Where("date_out <= ? AND date_return >= ?", to, from)
	}
	if q != "" {
		like := "%" + q + "%"
		tx = tx.Where("reason LIKE ? OR student_name LIKE ?", like, like)
	}

	offset := (page - 1) * size
	if err := tx.Order("created_at DESC, id DESC").Offset(offset).Limit(size).Find(&rows).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /warden/applications/pending-count
func (h *ApplicationHandler) PendingCount(c echo.Context) error {
	var n int64
	if err := h.db.Model(&models.Application{}).
		Where("status = ?", models.StatusPending).Count(&n).Error; err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"count": n})
}

type decisionReq struct {
	Comment string `json:"comment"`
}

// POST /warden/applications/:id/approve
func (h *ApplicationHandler) Approve(c echo.Context) error {
	var body decisionReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	return h.decide(c, c.Param("id"), models.StatusApproved, body.Comment)
}

// POST /warden/applications/:id/reject
func (h *ApplicationHandler) Reject(c echo.Context) error {
	var body decisionReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_PAYLOAD"})
	}
	if strings.TrimSpace(body.Comment) == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "REJECT_COMMENT_REQUIRED"})
	}
	return h.decide(c, c.Param("id"), models.StatusRejected, body.Comment)
}

// decide runs the single permitted transition: pending → approved|rejected.
// The acting warden's identity comes from the JWT claims the auth middleware
// put on the context. Notification failure never blocks the mutation.
func (h *ApplicationHandler) decide(c echo.Context, id, status, comment string) error {
	var app models.Application
	if err := h.db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "NOT_FOUND"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}

	name, _ := c.Get("name").(string)
	phone, _ := c.Get("phone").(string)

	if err := app.Resolve(status, strings.TrimSpace(comment), name, phone, time.Now()); err != nil {
		if errors.Is(err, models.ErrAlreadyDecided) {
			return c.JSON(http.StatusConflict, map[string]any{"error": "ALREADY_DECIDED"})
		}
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_STATUS"})
	}

	if err := h.db.Save(&app).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_SAVE_ERROR"})
	}

	h.hub.Publish(events.Event{Type: events.ApplicationDecided, Application: app})
	go h.notifier.NotifyParentAndWardens(context.Background(), app)

	return c.JSON(http.StatusOK, app)
}
