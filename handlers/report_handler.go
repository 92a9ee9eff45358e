package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/g-67560126-commits/e-Asrama/models"
)

type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

// exportHeader is the fixed 16-column report layout. Order matters to the
// downstream spreadsheets, do not reorder.
var exportHeader = []string{
	"ID", "Jenis", "Nama Pelajar", "Tingkatan", "Nama Penjaga", "Telefon",
	"Emel", "Kenderaan", "No Plat", "Tarikh Keluar", "Tarikh Kembali",
	"Sebab", "Status", "Pelulus", "No Tel Warden", "Tarikh Mohon",
}

// exportRow flattens one application into the report column order.
func exportRow(app models.Application) []string {
	wardenName := app.WardenName
	if wardenName == "" {
		wardenName = "-"
	}
	wardenPhone := app.WardenPhone
	if wardenPhone == "" {
		wardenPhone = "-"
	}
	return []string{
		app.ID,
		app.Type,
		app.StudentName,
		app.StudentForm,
		app.ParentName,
		app.ParentPhone,
		app.ParentEmail,
		app.VehicleType,
		app.VehiclePlate,
		app.DateOut,
		app.DateReturn,
		app.Reason,
		app.Status,
		wardenName,
		wardenPhone,
		app.CreatedAt.Format("2006-01-02"),
	}
}

// GET /admin/reports/stats
func (h *ReportHandler) Stats(c echo.Context) error {
	var total, pending, approved, rejected int64
	if err := h.db.Model(&models.Application{}).Count(&total).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}
	h.db.Model(&models.Application{}).Where("status = ?", models.StatusPending).Count(&pending)
	h.db.Model(&models.Application{}).Where("status = ?", models.StatusApproved).Count(&approved)
	h.db.Model(&models.Application{}).Where("status = ?", models.StatusRejected).Count(&rejected)

	return c.JSON(http.StatusOK, map[string]any{
		"total":    total,
		"pending":  pending,
		"approved": approved,
		"rejected": rejected,
	})
}

// GET /admin/reports/export?format=csv|xlsx
//
// Pure derived view over the full collection, newest-first like every other
// read. Reason text goes through the CSV writer, which doubles embedded
// quotes and wraps the field.
func (h *ReportHandler) Export(c echo.Context) error {
	var rows []models.Application
	if err := h.db.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "DB_ERROR"})
	}

	filename := fmt.Sprintf("Laporan_eAsrama_%s", time.Now().Format("2006-01-02"))

	switch c.QueryParam("format") {
	case "", "csv":
		c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s.csv"`, filename))
		c.Response().WriteHeader(http.StatusOK)

		w := csv.NewWriter(c.Response())
		if err := w.Write(exportHeader); err != nil {
			return err
		}
		for _, app := range rows {
			if err := w.Write(exportRow(app)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	case "xlsx":
		f := excelize.NewFile()
		defer f.Close()
		sheet := f.GetSheetName(0)

		for i, hname := range exportHeader {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, hname)
		}
		for r, app := range rows {
			for i, val := range exportRow(app) {
				cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
				if err := f.SetCellValue(sheet, cell, val); err != nil {
					return c.JSON(http.StatusInternalServerError, map[string]any{"error": "EXPORT_ERROR"})
				}
			}
		}

		c.Response().Header().Set(echo.HeaderContentType,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Response().Header().Set(echo.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s.xlsx"`, filename))
		c.Response().WriteHeader(http.StatusOK)
		return f.Write(c.Response())

	default:
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "INVALID_FORMAT"})
	}
}
