package routes

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/g-67560126-commits/e-Asrama/config"
	"github.com/g-67560126-commits/e-Asrama/events"
	"github.com/g-67560126-commits/e-Asrama/handlers"
	"github.com/g-67560126-commits/e-Asrama/middlewares"
	"github.com/g-67560126-commits/e-Asrama/notify"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, db *gorm.DB, hub *events.Hub, notifier notify.Notifier, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(db, cfg)
	app := handlers.NewApplicationHandler(db, hub, notifier)
	acc := handlers.NewWardenAccountHandler(db)
	sys := handlers.NewConfigHandler(db)
	rep := handlers.NewReportHandler(db)
	evt := handlers.NewEventHandler(hub)

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.GET("/config", sys.Get)
	e.POST("/auth/login", auth.Login)

	// Guardian surface: submit and track, no authentication.
	e.POST("/applications", app.Submit)
	e.GET("/applications", app.List)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Warden routes (super-admin is read-only, so no access here) =====
	warden := e.Group("/warden", authMW, middlewares.RequireRole(middlewares.RoleWarden))
	warden.GET("/applications", app.List)
	warden.GET("/applications/pending-count", app.PendingCount)
	warden.POST("/applications/:id/approve", app.Approve)
	warden.POST("/applications/:id/reject", app.Reject)

	// ===== Staff routes (warden or super-admin) =====
	staff := e.Group("/staff", authMW,
		middlewares.RequireRole(middlewares.RoleWarden, middlewares.RoleSuperAdmin))
	staff.GET("/events", evt.Stream)
	staff.GET("/applications", app.List)

	// ===== Super-admin routes =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole(middlewares.RoleSuperAdmin))
	admin.PUT("/config", sys.Update)
	admin.GET("/wardens", acc.List)
	admin.POST("/wardens", acc.Create)
	admin.DELETE("/wardens/:id", acc.Delete)
	admin.GET("/reports/stats", rep.Stats)
	admin.GET("/reports/export", rep.Export)
}
